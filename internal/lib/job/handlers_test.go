package job

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	to, username, url string
	err               error
}

func (n *recordingNotifier) SendMemberValidatedEmail(to, username, profileURL string) error {
	n.to, n.username, n.url = to, username, profileURL
	return n.err
}

func newTestJobService(n Notifier) *JobService {
	logger := zerolog.Nop()
	j := &JobService{logger: &logger}
	j.InitHandlers(n)
	return j
}

func TestMemberValidatedTaskPayload(t *testing.T) {
	task, err := NewMemberValidatedTask(MemberValidatedPayload{MemberID: 4, To: "a@example.com", Username: "alice"})

	require.NoError(t, err)
	assert.Equal(t, TaskMemberValidated, task.Type())
	assert.JSONEq(t, `{"id_member":4,"to":"a@example.com","username":"alice"}`, string(task.Payload()))
}

func TestHandleMemberValidatedTask(t *testing.T) {
	notifier := &recordingNotifier{}
	j := newTestJobService(notifier)
	task, err := NewMemberValidatedTask(MemberValidatedPayload{MemberID: 4, To: "a@example.com", Username: "alice", ProfileURL: "https://alice.dev"})
	require.NoError(t, err)

	require.NoError(t, j.handleMemberValidatedTask(context.Background(), task))
	assert.Equal(t, "a@example.com", notifier.to)
	assert.Equal(t, "alice", notifier.username)
	assert.Equal(t, "https://alice.dev", notifier.url)
}

func TestHandleMemberValidatedTaskFailures(t *testing.T) {
	t.Run("bad payload skips retry", func(t *testing.T) {
		j := newTestJobService(&recordingNotifier{})
		err := j.handleMemberValidatedTask(context.Background(), asynq.NewTask(TaskMemberValidated, []byte("{")))
		assert.ErrorIs(t, err, asynq.SkipRetry)
	})

	t.Run("send failure is retried", func(t *testing.T) {
		j := newTestJobService(&recordingNotifier{err: errors.New("down")})
		task, err := NewMemberValidatedTask(MemberValidatedPayload{To: "a@example.com"})
		require.NoError(t, err)

		err = j.handleMemberValidatedTask(context.Background(), task)
		require.Error(t, err)
		assert.NotErrorIs(t, err, asynq.SkipRetry)
	})
}
