package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

type fakeSender struct {
	to, name string
	err      error
}

func (f *fakeSender) SendWelcomeEmail(to, name string) error {
	f.to, f.name = to, name
	return f.err
}

func newTestService(sender welcomeSender) *JobService {
	logger := zerolog.Nop()
	return &JobService{emails: sender, logger: &logger}
}

func TestNewDeveloperWelcomeTask(t *testing.T) {
	task, err := NewDeveloperWelcomeTask("ana@x.com", "Ana")
	if err != nil {
		t.Fatal(err)
	}
	if task.Type() != TaskDeveloperWelcome {
		t.Fatalf("type = %q", task.Type())
	}

	var p DeveloperWelcomePayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		t.Fatal(err)
	}
	if p.To != "ana@x.com" || p.Name != "Ana" {
		t.Fatalf("payload = %+v", p)
	}
}

func TestHandleDeveloperWelcomeTask(t *testing.T) {
	sender := &fakeSender{}
	j := newTestService(sender)

	task, _ := NewDeveloperWelcomeTask("ana@x.com", "Ana")
	if err := j.handleDeveloperWelcomeTask(context.Background(), task); err != nil {
		t.Fatal(err)
	}
	if sender.to != "ana@x.com" || sender.name != "Ana" {
		t.Fatalf("sender got %q %q", sender.to, sender.name)
	}
}

func TestHandleDeveloperWelcomeTaskErrors(t *testing.T) {
	t.Run("send failure is retried", func(t *testing.T) {
		j := newTestService(&fakeSender{err: errors.New("resend down")})
		task, _ := NewDeveloperWelcomeTask("ana@x.com", "Ana")

		err := j.handleDeveloperWelcomeTask(context.Background(), task)
		if err == nil || errors.Is(err, asynq.SkipRetry) {
			t.Fatalf("expected retryable error, got %v", err)
		}
	})

	t.Run("bad payload is not retried", func(t *testing.T) {
		j := newTestService(&fakeSender{})
		task := asynq.NewTask(TaskDeveloperWelcome, []byte("{"))

		if err := j.handleDeveloperWelcomeTask(context.Background(), task); !errors.Is(err, asynq.SkipRetry) {
			t.Fatalf("expected SkipRetry, got %v", err)
		}
	})
}
