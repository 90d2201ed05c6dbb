package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskMemberValidated notifies a member that an admin approved them.
	TaskMemberValidated = "member:validated"
)

// MemberValidatedPayload is the JSON payload of TaskMemberValidated.
type MemberValidatedPayload struct {
	MemberID   int64  `json:"id_member"`
	To         string `json:"to"`
	Username   string `json:"username"`
	ProfileURL string `json:"profile_url,omitempty"`
}

// NewMemberValidatedTask builds the notification task.
//
// Retried up to 3 times on the default queue; a run is killed after 30s.
func NewMemberValidatedTask(p MemberValidatedPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskMemberValidated,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
