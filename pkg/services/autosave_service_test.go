package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillforge/skillforge/ent/assessmentsession"
	testdb "github.com/skillforge/skillforge/test/database"
)

func TestAutosaveService_Autosave(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAutosaveService(client.Client)
	sessions := NewSessionService(client.Client)
	ctx := context.Background()
	survey := createTestSurvey(t, client.Client, "user-1")

	t.Run("first save creates the answer and starts the clock", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "user-1", survey.ID, 1, 600000)
		q := createTestQuestion(t, client.Client, sess.ID, 1, "databases", 5)

		result, err := svc.Autosave(ctx, AutosaveRequest{
			SessionID:      sess.ID,
			QuestionID:     q.ID,
			UserAnswer:     map[string]any{"selected_key": "404"},
			ResponseTimeMS: 2500,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, result.AnswerID)
		assert.False(t, result.Updated)
		assert.False(t, result.AutoPaused)
		require.NotNil(t, result.Time)

		reloaded, err := sessions.GetSession(ctx, sess.ID)
		require.NoError(t, err)
		assert.NotNil(t, reloaded.StartedAt)
	})

	t.Run("re-save updates in place and clears any verdict", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "user-1", survey.ID, 1, 600000)
		q := createTestQuestion(t, client.Client, sess.ID, 1, "databases", 5)

		first, err := svc.Autosave(ctx, AutosaveRequest{
			SessionID:  sess.ID,
			QuestionID: q.ID,
			UserAnswer: map[string]any{"selected_key": "200"},
		})
		require.NoError(t, err)

		second, err := svc.Autosave(ctx, AutosaveRequest{
			SessionID:      sess.ID,
			QuestionID:     q.ID,
			UserAnswer:     map[string]any{"selected_key": "404"},
			ResponseTimeMS: 9000,
		})
		require.NoError(t, err)
		assert.True(t, second.Updated)
		assert.Equal(t, first.AnswerID, second.AnswerID)

		answer, err := client.AttemptAnswer.Get(ctx, second.AnswerID)
		require.NoError(t, err)
		assert.Equal(t, "404", answer.UserAnswer["selected_key"])
		assert.Equal(t, int64(9000), answer.ResponseTimeMs)
		assert.Nil(t, answer.IsCorrect)
		assert.Nil(t, answer.Score)
	})

	t.Run("validates input", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "user-1", survey.ID, 1, 600000)
		q := createTestQuestion(t, client.Client, sess.ID, 1, "databases", 5)

		_, err := svc.Autosave(ctx, AutosaveRequest{SessionID: sess.ID, QuestionID: q.ID})
		assert.True(t, IsValidationError(err), "nil user_answer must be rejected")

		_, err = svc.Autosave(ctx, AutosaveRequest{
			SessionID:      sess.ID,
			QuestionID:     q.ID,
			UserAnswer:     map[string]any{"selected_key": "404"},
			ResponseTimeMS: -1,
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("question must belong to the session", func(t *testing.T) {
		sessA := createTestSession(t, client.Client, "user-1", survey.ID, 1, 600000)
		sessB := createTestSession(t, client.Client, "user-1", survey.ID, 2, 600000)
		foreign := createTestQuestion(t, client.Client, sessB.ID, 1, "databases", 5)

		_, err := svc.Autosave(ctx, AutosaveRequest{
			SessionID:  sessA.ID,
			QuestionID: foreign.ID,
			UserAnswer: map[string]any{"selected_key": "404"},
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("accepts paused sessions, rejects completed ones", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "user-1", survey.ID, 1, 600000)
		q := createTestQuestion(t, client.Client, sess.ID, 1, "databases", 5)

		paused, err := sessions.PauseSession(ctx, sess.ID)
		require.NoError(t, err)
		require.NotNil(t, paused.PausedAt)

		// A save against a paused session lands; only completed is terminal.
		result, err := svc.Autosave(ctx, AutosaveRequest{
			SessionID:  sess.ID,
			QuestionID: q.ID,
			UserAnswer: map[string]any{"selected_key": "404"},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, result.AnswerID)
		assert.False(t, result.AutoPaused)

		// The session stays paused with its clock frozen where it was.
		reloaded, err := sessions.GetSession(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, assessmentsession.StatusPaused, reloaded.Status)
		require.NotNil(t, reloaded.PausedAt)
		assert.True(t, reloaded.PausedAt.Equal(*paused.PausedAt))

		_, err = sessions.ResumeSession(ctx, sess.ID)
		require.NoError(t, err)
		_, err = sessions.CompleteSession(ctx, sess.ID)
		require.NoError(t, err)

		_, err = svc.Autosave(ctx, AutosaveRequest{
			SessionID:  sess.ID,
			QuestionID: q.ID,
			UserAnswer: map[string]any{"selected_key": "200"},
		})
		assert.ErrorIs(t, err, ErrSessionTerminal)
	})

	t.Run("past-deadline save lands and auto-pauses", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "user-1", survey.ID, 1, 1000)
		q := createTestQuestion(t, client.Client, sess.ID, 1, "databases", 5)
		markStarted(t, client.Client, sess.ID, 5000)

		result, err := svc.Autosave(ctx, AutosaveRequest{
			SessionID:  sess.ID,
			QuestionID: q.ID,
			UserAnswer: map[string]any{"selected_key": "404"},
		})
		require.NoError(t, err)
		assert.True(t, result.AutoPaused)
		assert.True(t, result.Time.Exceeded)

		// The answer is stored and the session is paused.
		answer, err := client.AttemptAnswer.Get(ctx, result.AnswerID)
		require.NoError(t, err)
		assert.Equal(t, "404", answer.UserAnswer["selected_key"])
		assert.Equal(t, assessmentsession.StatusPaused, sessionStatus(t, client.Client, sess.ID))
	})

	t.Run("overdue save against an already-paused session keeps the pause", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "user-1", survey.ID, 1, 1000)
		q := createTestQuestion(t, client.Client, sess.ID, 1, "databases", 5)
		markStarted(t, client.Client, sess.ID, 5000)

		paused, err := sessions.PauseSession(ctx, sess.ID)
		require.NoError(t, err)
		require.NotNil(t, paused.PausedAt)

		result, err := svc.Autosave(ctx, AutosaveRequest{
			SessionID:  sess.ID,
			QuestionID: q.ID,
			UserAnswer: map[string]any{"selected_key": "404"},
		})
		require.NoError(t, err)
		assert.True(t, result.Time.Exceeded)
		assert.False(t, result.AutoPaused, "an existing pause is not re-reported")

		reloaded, err := sessions.GetSession(ctx, sess.ID)
		require.NoError(t, err)
		require.NotNil(t, reloaded.PausedAt)
		assert.True(t, reloaded.PausedAt.Equal(*paused.PausedAt))
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := svc.Autosave(ctx, AutosaveRequest{
			SessionID:  "no-such-session",
			QuestionID: "whatever",
			UserAnswer: map[string]any{"selected_key": "404"},
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
