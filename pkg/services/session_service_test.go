package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillforge/skillforge/ent"
	"github.com/skillforge/skillforge/ent/assessmentsession"
	testdb "github.com/skillforge/skillforge/test/database"
)

func TestSessionService_OpenSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()
	survey := createTestSurvey(t, client.Client, "user-1")

	t.Run("creates in_progress session with nil clock", func(t *testing.T) {
		sess, err := svc.OpenSession(ctx, "user-1", survey.ID, 1, 600000)
		require.NoError(t, err)
		assert.Equal(t, assessmentsession.StatusInProgress, sess.Status)
		assert.Nil(t, sess.StartedAt)
		assert.Nil(t, sess.PausedAt)
		assert.Equal(t, int64(600000), sess.TimeLimitMs)
		assert.Equal(t, 1, sess.RoundIndex)
	})

	t.Run("validates inputs", func(t *testing.T) {
		_, err := svc.OpenSession(ctx, "", survey.ID, 1, 600000)
		assert.True(t, IsValidationError(err))

		_, err = svc.OpenSession(ctx, "user-1", survey.ID, 0, 600000)
		assert.True(t, IsValidationError(err))

		_, err = svc.OpenSession(ctx, "user-1", survey.ID, 1, 0)
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown survey is not found", func(t *testing.T) {
		_, err := svc.OpenSession(ctx, "user-1", "no-such-survey", 1, 600000)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSessionService_Transitions(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()
	survey := createTestSurvey(t, client.Client, "user-1")

	t.Run("pause and resume", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "user-1", survey.ID, 1, 600000)

		paused, err := svc.PauseSession(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, assessmentsession.StatusPaused, paused.Status)
		assert.NotNil(t, paused.PausedAt)

		// Pausing a paused session is a precondition failure.
		_, err = svc.PauseSession(ctx, sess.ID)
		assert.ErrorIs(t, err, ErrPreconditionFailed)

		resumed, err := svc.ResumeSession(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, assessmentsession.StatusInProgress, resumed.Status)
		assert.Nil(t, resumed.PausedAt)

		_, err = svc.ResumeSession(ctx, sess.ID)
		assert.ErrorIs(t, err, ErrPreconditionFailed)
	})

	t.Run("resume shifts started_at by the pause length", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "user-1", survey.ID, 1, 600000)
		markStarted(t, client.Client, sess.ID, 60000)

		paused, err := svc.PauseSession(ctx, sess.ID)
		require.NoError(t, err)
		startedBefore, err := client.AssessmentSession.Get(ctx, sess.ID)
		require.NoError(t, err)

		time.Sleep(50 * time.Millisecond)

		resumed, err := svc.ResumeSession(ctx, sess.ID)
		require.NoError(t, err)
		require.NotNil(t, resumed.StartedAt)

		// The clock moved forward by at least the pause duration, so the
		// elapsed time excludes the pause.
		shift := resumed.StartedAt.Sub(*startedBefore.StartedAt)
		assert.GreaterOrEqual(t, shift, 50*time.Millisecond)
		assert.NotNil(t, paused.PausedAt)
	})

	t.Run("completed is terminal", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "user-1", survey.ID, 1, 600000)

		completed, err := svc.CompleteSession(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, assessmentsession.StatusCompleted, completed.Status)

		_, err = svc.PauseSession(ctx, sess.ID)
		assert.ErrorIs(t, err, ErrSessionTerminal)
		_, err = svc.ResumeSession(ctx, sess.ID)
		assert.ErrorIs(t, err, ErrSessionTerminal)
		_, err = svc.CompleteSession(ctx, sess.ID)
		assert.ErrorIs(t, err, ErrSessionTerminal)
	})

	t.Run("completing a paused session clears paused_at", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "user-1", survey.ID, 1, 600000)
		_, err := svc.PauseSession(ctx, sess.ID)
		require.NoError(t, err)

		completed, err := svc.CompleteSession(ctx, sess.ID)
		require.NoError(t, err)
		assert.Nil(t, completed.PausedAt)
	})

	t.Run("explicit complete requires every question answered", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "user-1", survey.ID, 1, 600000)
		q := createTestQuestion(t, client.Client, sess.ID, 1, "databases", 5)

		_, err := svc.CompleteSession(ctx, sess.ID)
		assert.ErrorIs(t, err, ErrPreconditionFailed)

		autosave := NewAutosaveService(client.Client)
		_, err = autosave.Autosave(ctx, AutosaveRequest{
			SessionID:  sess.ID,
			QuestionID: q.ID,
			UserAnswer: map[string]any{"selected_key": "404"},
		})
		require.NoError(t, err)

		completed, err := svc.CompleteSession(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, assessmentsession.StatusCompleted, completed.Status)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := svc.PauseSession(ctx, "no-such-session")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestComputeTimeStatus(t *testing.T) {
	now := time.Now()
	started := now.Add(-5 * time.Minute)
	pausedAt := now.Add(-2 * time.Minute)

	t.Run("clock not started", func(t *testing.T) {
		sess := &ent.AssessmentSession{TimeLimitMs: 600000, Status: assessmentsession.StatusInProgress}
		ts := ComputeTimeStatus(sess, now)
		assert.Equal(t, int64(0), ts.ElapsedMS)
		assert.Equal(t, int64(600000), ts.RemainingMS)
		assert.False(t, ts.Exceeded)
	})

	t.Run("running clock", func(t *testing.T) {
		sess := &ent.AssessmentSession{
			TimeLimitMs: 600000,
			Status:      assessmentsession.StatusInProgress,
			StartedAt:   &started,
		}
		ts := ComputeTimeStatus(sess, now)
		assert.Equal(t, int64(300000), ts.ElapsedMS)
		assert.Equal(t, int64(300000), ts.RemainingMS)
		assert.False(t, ts.Exceeded)
	})

	t.Run("paused clock freezes at paused_at", func(t *testing.T) {
		sess := &ent.AssessmentSession{
			TimeLimitMs: 600000,
			Status:      assessmentsession.StatusPaused,
			StartedAt:   &started,
			PausedAt:    &pausedAt,
		}
		ts := ComputeTimeStatus(sess, now)
		assert.Equal(t, int64(180000), ts.ElapsedMS)
	})

	t.Run("exceeded past the limit", func(t *testing.T) {
		sess := &ent.AssessmentSession{
			TimeLimitMs: 60000,
			Status:      assessmentsession.StatusInProgress,
			StartedAt:   &started,
		}
		ts := ComputeTimeStatus(sess, now)
		assert.True(t, ts.Exceeded)
		assert.Equal(t, int64(0), ts.RemainingMS)
	})

	t.Run("exactly at the limit is not exceeded", func(t *testing.T) {
		sess := &ent.AssessmentSession{
			TimeLimitMs: 300000,
			Status:      assessmentsession.StatusInProgress,
			StartedAt:   &started,
		}
		ts := ComputeTimeStatus(sess, now)
		assert.False(t, ts.Exceeded)
	})
}

func TestSessionService_ResumeLatest(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()
	survey := createTestSurvey(t, client.Client, "user-1")

	t.Run("no sessions", func(t *testing.T) {
		_, err := svc.ResumeLatest(ctx, "user-1")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("skips completed sessions", func(t *testing.T) {
		done := createTestSession(t, client.Client, "user-1", survey.ID, 1, 600000)
		_, err := svc.CompleteSession(ctx, done.ID)
		require.NoError(t, err)

		_, err = svc.ResumeLatest(ctx, "user-1")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("returns questions, answers, and the time status", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "user-1", survey.ID, 2, 600000)
		q1 := createTestQuestion(t, client.Client, sess.ID, 1, "databases", 5)
		createTestQuestion(t, client.Client, sess.ID, 2, "networking", 5)

		autosave := NewAutosaveService(client.Client)
		_, err := autosave.Autosave(ctx, AutosaveRequest{
			SessionID:  sess.ID,
			QuestionID: q1.ID,
			UserAnswer: map[string]any{"selected_key": "404"},
		})
		require.NoError(t, err)

		resumable, err := svc.ResumeLatest(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, sess.ID, resumable.Session.ID)
		require.Len(t, resumable.Questions, 2)
		assert.Equal(t, 1, resumable.Questions[0].Ordinal)
		require.Len(t, resumable.Answers, 1)
		assert.Equal(t, q1.ID, resumable.Answers[0].QuestionID)
		assert.NotNil(t, resumable.Time)
	})
}

func TestSessionService_DeleteAbandonedSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSessionService(client.Client)
	ctx := context.Background()
	survey := createTestSurvey(t, client.Client, "user-1")

	// created_at is immutable, so backdated sessions are created directly.
	openBackdated := func(round int, age time.Duration) *ent.AssessmentSession {
		sess, err := client.AssessmentSession.Create().
			SetID(uuid.New().String()).
			SetUserID("user-1").
			SetSurveyID(survey.ID).
			SetRoundIndex(round).
			SetStatus(assessmentsession.StatusInProgress).
			SetTimeLimitMs(600000).
			SetCreatedAt(time.Now().Add(-age)).
			Save(ctx)
		require.NoError(t, err)
		return sess
	}

	stale := openBackdated(1, 48*time.Hour)
	createTestQuestion(t, client.Client, stale.ID, 1, "databases", 5)
	fresh := createTestSession(t, client.Client, "user-1", survey.ID, 2, 600000)
	finished := openBackdated(3, 48*time.Hour)
	_, err := svc.CompleteSession(ctx, finished.ID)
	require.NoError(t, err)

	deleted, err := svc.DeleteAbandonedSessions(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	// Only the stale in-progress session is gone; completed history stays.
	_, err = svc.GetSession(ctx, stale.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.GetSession(ctx, fresh.ID)
	assert.NoError(t, err)
	_, err = svc.GetSession(ctx, finished.ID)
	assert.NoError(t, err)

	// The cascade removed the stale session's questions.
	questions, err := svc.SessionQuestions(ctx, stale.ID)
	require.NoError(t, err)
	assert.Empty(t, questions)
}
