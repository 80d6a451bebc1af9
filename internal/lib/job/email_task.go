package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskDeveloperWelcome is the task type sent after a developer is created.
	TaskDeveloperWelcome = "developer:welcome"
)

type DeveloperWelcomePayload struct {
	To   string `json:"to"`
	Name string `json:"name"`
}

// NewDeveloperWelcomeTask builds the task: up to 3 retries on the default
// queue, 30s per attempt.
func NewDeveloperWelcomeTask(to, name string) (*asynq.Task, error) {
	payload, err := json.Marshal(DeveloperWelcomePayload{
		To:   to,
		Name: name,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskDeveloperWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
