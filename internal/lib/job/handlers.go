package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deppfellow/timesheet/internal/config"
	"github.com/deppfellow/timesheet/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// welcomeSender is the part of the email client the handlers use.
type welcomeSender interface {
	SendWelcomeEmail(to, developerName string) error
}

// InitHandlers builds the dependencies of the task handlers.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	j.emails = email.NewClient(cfg, logger)
}

func (j *JobService) handleDeveloperWelcomeTask(ctx context.Context, t *asynq.Task) error {
	var p DeveloperWelcomePayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal developer welcome payload: %w: %w", err, asynq.SkipRetry)
	}

	j.logger.Info().
		Str("type", TaskDeveloperWelcome).
		Str("to", p.To).
		Msg("processing developer welcome task")

	if err := j.emails.SendWelcomeEmail(p.To, p.Name); err != nil {
		j.logger.Error().
			Str("type", TaskDeveloperWelcome).
			Str("to", p.To).
			Err(err).
			Msg("failed to send developer welcome email")
		return err
	}

	j.logger.Info().
		Str("type", TaskDeveloperWelcome).
		Str("to", p.To).
		Msg("sent developer welcome email")

	return nil
}
