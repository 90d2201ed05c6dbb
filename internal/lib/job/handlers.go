package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// Notifier delivers the emails behind notification tasks.
type Notifier interface {
	SendMemberValidatedEmail(to, username, profileURL string) error
}

func (j *JobService) handleMemberValidatedTask(ctx context.Context, t *asynq.Task) error {
	var p MemberValidatedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		// A payload that cannot decode will never succeed.
		return fmt.Errorf("failed to unmarshal member validated payload: %v: %w", err, asynq.SkipRetry)
	}

	log := j.logger.With().
		Str("type", TaskMemberValidated).
		Int64("member_id", p.MemberID).
		Logger()

	log.Info().Msg("processing member validated task")

	if err := j.notifier.SendMemberValidatedEmail(p.To, p.Username, p.ProfileURL); err != nil {
		log.Error().Err(err).Msg("failed to send member validated email")
		return err
	}

	log.Info().Msg("sent member validated email")
	return nil
}
