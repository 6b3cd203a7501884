package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMailer struct {
	to, name string
	err      error
}

func (m *recordingMailer) SendWelcomeEmail(to, name string) error {
	m.to, m.name = to, name
	return m.err
}

func newTestJobService(m welcomeMailer) *JobService {
	logger := zerolog.Nop()
	return &JobService{logger: &logger, mailer: m}
}

func TestNewWelcomeEmailTask(t *testing.T) {
	task, err := NewWelcomeEmailTask("victoriablackwell@outlook.com", "Victoria Blackwell")
	require.NoError(t, err)

	assert.Equal(t, TaskWelcome, task.Type())

	var p WelcomeEmailPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.Equal(t, WelcomeEmailPayload{To: "victoriablackwell@outlook.com", Name: "Victoria Blackwell"}, p)
	assert.JSONEq(t, `{"to":"victoriablackwell@outlook.com","name":"Victoria Blackwell"}`, string(task.Payload()))
}

func TestHandleWelcomeEmailTask(t *testing.T) {
	mailer := &recordingMailer{}
	j := newTestJobService(mailer)

	task, err := NewWelcomeEmailTask("victoriablackwell@outlook.com", "Victoria Blackwell")
	require.NoError(t, err)

	require.NoError(t, j.mux().ProcessTask(context.Background(), task))
	assert.Equal(t, "victoriablackwell@outlook.com", mailer.to)
	assert.Equal(t, "Victoria Blackwell", mailer.name)
}

func TestHandleWelcomeEmailTaskSendFailure(t *testing.T) {
	boom := errors.New("provider unavailable")
	j := newTestJobService(&recordingMailer{err: boom})

	task, err := NewWelcomeEmailTask("a@b.c", "A")
	require.NoError(t, err)

	assert.ErrorIs(t, j.handleWelcomeEmailTask(context.Background(), task), boom)
}

func TestHandleWelcomeEmailTaskBadPayload(t *testing.T) {
	j := newTestJobService(&recordingMailer{})

	err := j.handleWelcomeEmailTask(context.Background(), asynq.NewTask(TaskWelcome, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}
