package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillforge/skillforge/ent/assessmentsession"
	testdb "github.com/skillforge/skillforge/test/database"
)

func TestScoringService_ScoreRound(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewScoringService(client.Client)
	autosave := NewAutosaveService(client.Client)
	ctx := context.Background()
	survey := createTestSurvey(t, client.Client, "user-1")

	t.Run("scores answered, wrong, and unanswered questions", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "user-1", survey.ID, 1, 600000)
		q1 := createTestQuestion(t, client.Client, sess.ID, 1, "databases", 5)
		q2 := createTestQuestion(t, client.Client, sess.ID, 2, "databases", 5)
		createTestQuestion(t, client.Client, sess.ID, 3, "networking", 5)

		_, err := autosave.Autosave(ctx, AutosaveRequest{
			SessionID:  sess.ID,
			QuestionID: q1.ID,
			UserAnswer: map[string]any{"selected_key": "404"},
		})
		require.NoError(t, err)
		_, err = autosave.Autosave(ctx, AutosaveRequest{
			SessionID:  sess.ID,
			QuestionID: q2.ID,
			UserAnswer: map[string]any{"selected_key": "500"},
		})
		require.NoError(t, err)

		score, err := svc.ScoreRound(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, score.CorrectCount)
		assert.Equal(t, 3, score.TotalCount)
		assert.InDelta(t, 100.0/3.0, score.Score, 0.001)
		assert.Equal(t, map[string]int{"databases": 1, "networking": 1}, score.WrongCategories)

		// One question has no answer yet, so the round does not finalize.
		assert.False(t, score.AutoCompleted)
		assert.Equal(t, assessmentsession.StatusInProgress, sessionStatus(t, client.Client, sess.ID))
		answer, err := client.AttemptAnswer.Query().All(ctx)
		require.NoError(t, err)
		for _, a := range answer {
			if a.SessionID != sess.ID {
				continue
			}
			require.NotNil(t, a.IsCorrect)
			require.NotNil(t, a.Score)
		}
	})

	t.Run("repeat scoring returns the stored result", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "user-1", survey.ID, 1, 600000)
		q := createTestQuestion(t, client.Client, sess.ID, 1, "databases", 5)
		_, err := autosave.Autosave(ctx, AutosaveRequest{
			SessionID:  sess.ID,
			QuestionID: q.ID,
			UserAnswer: map[string]any{"selected_key": "404"},
		})
		require.NoError(t, err)

		first, err := svc.ScoreRound(ctx, sess.ID)
		require.NoError(t, err)
		assert.True(t, first.AutoCompleted)

		second, err := svc.ScoreRound(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, first.Score, second.Score)
		assert.Equal(t, first.CorrectCount, second.CorrectCount)
		assert.False(t, second.AutoCompleted)

		// Only one round result row exists.
		n, err := client.RoundResult.Query().Count(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1)
	})

	t.Run("answers saved after a partial score are settled on the next call", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "user-1", survey.ID, 1, 600000)
		q1 := createTestQuestion(t, client.Client, sess.ID, 1, "databases", 5)
		q2 := createTestQuestion(t, client.Client, sess.ID, 2, "networking", 5)

		_, err := autosave.Autosave(ctx, AutosaveRequest{
			SessionID:  sess.ID,
			QuestionID: q1.ID,
			UserAnswer: map[string]any{"selected_key": "404"},
		})
		require.NoError(t, err)

		first, err := svc.ScoreRound(ctx, sess.ID)
		require.NoError(t, err)
		assert.False(t, first.AutoCompleted)
		assert.Equal(t, assessmentsession.StatusInProgress, sessionStatus(t, client.Client, sess.ID))

		// The second answer arrives after the round was scored.
		late, err := autosave.Autosave(ctx, AutosaveRequest{
			SessionID:  sess.ID,
			QuestionID: q2.ID,
			UserAnswer: map[string]any{"selected_key": "404"},
		})
		require.NoError(t, err)

		second, err := svc.ScoreRound(ctx, sess.ID)
		require.NoError(t, err)

		// The late answer got a verdict and the round finalized.
		answer, err := client.AttemptAnswer.Get(ctx, late.AnswerID)
		require.NoError(t, err)
		require.NotNil(t, answer.IsCorrect)
		assert.True(t, *answer.IsCorrect)
		assert.True(t, second.AutoCompleted)
		assert.Equal(t, assessmentsession.StatusCompleted, sessionStatus(t, client.Client, sess.ID))

		// The stored round result itself is never rewritten.
		assert.Equal(t, first.Score, second.Score)
		assert.Equal(t, first.CorrectCount, second.CorrectCount)
		assert.Equal(t, first.TotalCount, second.TotalCount)

		third, err := svc.ScoreRound(ctx, sess.ID)
		require.NoError(t, err)
		assert.False(t, third.AutoCompleted)
	})

	t.Run("concurrent scoring converges on one result", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "user-1", survey.ID, 1, 600000)
		q := createTestQuestion(t, client.Client, sess.ID, 1, "databases", 5)
		_, err := autosave.Autosave(ctx, AutosaveRequest{
			SessionID:  sess.ID,
			QuestionID: q.ID,
			UserAnswer: map[string]any{"selected_key": "404"},
		})
		require.NoError(t, err)

		var wg sync.WaitGroup
		scores := make([]float64, 4)
		errs := make([]error, 4)
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				s, err := svc.ScoreRound(context.Background(), sess.ID)
				errs[i] = err
				if err == nil {
					scores[i] = s.Score
				}
			}(i)
		}
		wg.Wait()

		for i := 0; i < 4; i++ {
			require.NoError(t, errs[i])
			assert.Equal(t, float64(100), scores[i])
		}
	})

	t.Run("session without questions is rejected", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "user-1", survey.ID, 1, 600000)
		_, err := svc.ScoreRound(ctx, sess.ID)
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown session", func(t *testing.T) {
		_, err := svc.ScoreRound(ctx, "no-such-session")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("overtime applies the linear penalty", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "user-1", survey.ID, 1, 60000)
		q := createTestQuestion(t, client.Client, sess.ID, 1, "databases", 5)
		_, err := autosave.Autosave(ctx, AutosaveRequest{
			SessionID:  sess.ID,
			QuestionID: q.ID,
			UserAnswer: map[string]any{"selected_key": "404"},
		})
		require.NoError(t, err)

		// 50% over the limit halves a correct answer's score.
		markStarted(t, client.Client, sess.ID, 90000)

		score, err := svc.ScoreRound(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, score.CorrectCount)
		assert.InDelta(t, 50.0, score.Score, 1.0)
	})
}

func TestScoringService_ScoreAnswer(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewScoringService(client.Client)
	autosave := NewAutosaveService(client.Client)
	ctx := context.Background()
	survey := createTestSurvey(t, client.Client, "user-1")

	t.Run("scores the stored answer without persisting a verdict", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "user-1", survey.ID, 1, 600000)
		q := createTestQuestion(t, client.Client, sess.ID, 1, "databases", 5)
		saved, err := autosave.Autosave(ctx, AutosaveRequest{
			SessionID:  sess.ID,
			QuestionID: q.ID,
			UserAnswer: map[string]any{"selected_key": "404"},
		})
		require.NoError(t, err)

		score, explanation, err := svc.ScoreAnswer(ctx, sess.ID, q.ID)
		require.NoError(t, err)
		assert.Equal(t, q.ID, score.QuestionID)
		assert.True(t, score.IsCorrect)
		assert.Equal(t, float64(100), score.Score)
		assert.Equal(t, float64(100), score.FinalScore)
		assert.False(t, score.ScoredAt.IsZero())
		assert.NotEmpty(t, explanation)

		// Immediate feedback leaves the verdict to round scoring.
		answer, err := client.AttemptAnswer.Get(ctx, saved.AnswerID)
		require.NoError(t, err)
		assert.Nil(t, answer.IsCorrect)
		assert.Nil(t, answer.Score)
	})

	t.Run("wrong stored answer", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "user-1", survey.ID, 1, 600000)
		q := createTestQuestion(t, client.Client, sess.ID, 1, "databases", 5)
		_, err := autosave.Autosave(ctx, AutosaveRequest{
			SessionID:  sess.ID,
			QuestionID: q.ID,
			UserAnswer: map[string]any{"selected_key": "200"},
		})
		require.NoError(t, err)

		score, _, err := svc.ScoreAnswer(ctx, sess.ID, q.ID)
		require.NoError(t, err)
		assert.False(t, score.IsCorrect)
		assert.Equal(t, float64(0), score.FinalScore)
	})

	t.Run("applies the session time penalty", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "user-1", survey.ID, 1, 600000)
		q := createTestQuestion(t, client.Client, sess.ID, 1, "databases", 5)
		_, err := autosave.Autosave(ctx, AutosaveRequest{
			SessionID:  sess.ID,
			QuestionID: q.ID,
			UserAnswer: map[string]any{"selected_key": "404"},
		})
		require.NoError(t, err)

		// 50% over the limit halves a correct answer's score.
		markStarted(t, client.Client, sess.ID, 900000)

		score, _, err := svc.ScoreAnswer(ctx, sess.ID, q.ID)
		require.NoError(t, err)
		assert.True(t, score.IsCorrect)
		assert.Equal(t, float64(100), score.Score)
		assert.InDelta(t, 50.0, score.FinalScore, 1.0)
	})

	t.Run("question with no saved answer", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "user-1", survey.ID, 1, 600000)
		q := createTestQuestion(t, client.Client, sess.ID, 1, "databases", 5)

		_, _, err := svc.ScoreAnswer(ctx, sess.ID, q.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("question from another session", func(t *testing.T) {
		sessA := createTestSession(t, client.Client, "user-1", survey.ID, 1, 600000)
		sessB := createTestSession(t, client.Client, "user-1", survey.ID, 2, 600000)
		foreign := createTestQuestion(t, client.Client, sessB.ID, 1, "databases", 5)

		_, _, err := svc.ScoreAnswer(ctx, sessA.ID, foreign.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown question", func(t *testing.T) {
		sess := createTestSession(t, client.Client, "user-1", survey.ID, 1, 600000)
		_, _, err := svc.ScoreAnswer(ctx, sess.ID, "no-such-question")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestScoringService_DeriveAdaptiveInput(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewScoringService(client.Client)
	autosave := NewAutosaveService(client.Client)
	ctx := context.Background()
	survey := createTestSurvey(t, client.Client, "user-1")

	sess := createTestSession(t, client.Client, "user-1", survey.ID, 1, 600000)
	q1 := createTestQuestion(t, client.Client, sess.ID, 1, "databases", 4)
	sa := createShortAnswerQuestion(t, client.Client, sess.ID, 2, "databases", 6, []string{"explain", "analyze"})

	_, err := autosave.Autosave(ctx, AutosaveRequest{
		SessionID:  sess.ID,
		QuestionID: q1.ID,
		UserAnswer: map[string]any{"selected_key": "404"},
	})
	require.NoError(t, err)
	_, err = autosave.Autosave(ctx, AutosaveRequest{
		SessionID:  sess.ID,
		QuestionID: sa.ID,
		UserAnswer: map[string]any{"text": "run explain on the query"},
	})
	require.NoError(t, err)

	t.Run("unscored session has no adaptive input", func(t *testing.T) {
		_, err := svc.DeriveAdaptiveInput(ctx, sess.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("aggregates difficulty and short-answer recall", func(t *testing.T) {
		_, err := svc.ScoreRound(ctx, sess.ID)
		require.NoError(t, err)

		src, err := svc.DeriveAdaptiveInput(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, sess.ID, src.Session.ID)
		assert.Equal(t, 5, src.MeanDifficulty)
		assert.Equal(t, 1, src.ShortAnswerTotal)
		// Only one of two keywords hit, so the short answer was not correct.
		assert.Equal(t, 0, src.ShortAnswerCorrect)
	})
}
