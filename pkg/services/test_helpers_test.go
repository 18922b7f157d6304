package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/skillforge/skillforge/ent"
	"github.com/skillforge/skillforge/ent/assessmentsession"
	"github.com/skillforge/skillforge/ent/question"
	"github.com/skillforge/skillforge/pkg/models"
)

// createTestSurvey stores a minimal valid survey for userID.
func createTestSurvey(t *testing.T, client *ent.Client, userID string) *ent.ProfileSurvey {
	t.Helper()
	survey, err := NewSurveyService(client).CreateSurvey(context.Background(), models.CreateSurveyRequest{
		UserID:    userID,
		SelfLevel: models.SelfLevelIntermediate,
		Years:     4,
		JobRole:   "backend developer",
		Interests: []string{"databases", "networking"},
	})
	require.NoError(t, err)
	return survey
}

// createTestSession opens an in_progress session for the survey.
func createTestSession(t *testing.T, client *ent.Client, userID, surveyID string, round int, timeLimitMS int64) *ent.AssessmentSession {
	t.Helper()
	sess, err := NewSessionService(client).OpenSession(context.Background(), userID, surveyID, round, timeLimitMS)
	require.NoError(t, err)
	return sess
}

// createTestQuestion stores a multiple-choice question with "404" as the
// correct answer.
func createTestQuestion(t *testing.T, client *ent.Client, sessionID string, ordinal int, category string, difficulty int) *ent.Question {
	t.Helper()
	q, err := client.Question.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetOrdinal(ordinal).
		SetItemType(question.ItemTypeMultipleChoice).
		SetStem("Which HTTP status code means a resource was not found?").
		SetChoices([]string{"404", "200", "500", "302"}).
		SetAnswerSchema(models.AnswerSchema{
			Kind:        models.AnswerKindExactMatch,
			Payload:     models.AnswerPayload{CorrectAnswer: "404"},
			Explanation: "404 Not Found signals a missing resource.",
		}).
		SetDifficulty(difficulty).
		SetCategory(category).
		Save(context.Background())
	require.NoError(t, err)
	return q
}

// createShortAnswerQuestion stores a keyword-match short-answer question.
func createShortAnswerQuestion(t *testing.T, client *ent.Client, sessionID string, ordinal int, category string, difficulty int, keywords []string) *ent.Question {
	t.Helper()
	q, err := client.Question.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetOrdinal(ordinal).
		SetItemType(question.ItemTypeShortAnswer).
		SetStem("Explain how to inspect a slow query's execution plan.").
		SetAnswerSchema(models.AnswerSchema{
			Kind:        models.AnswerKindKeywordMatch,
			Payload:     models.AnswerPayload{Keywords: keywords},
			Explanation: "EXPLAIN ANALYZE shows the actual plan with timing.",
		}).
		SetDifficulty(difficulty).
		SetCategory(category).
		Save(context.Background())
	require.NoError(t, err)
	return q
}

// markStarted backdates started_at so elapsed-time paths can be exercised.
func markStarted(t *testing.T, client *ent.Client, sessionID string, startedAtMSAgo int64) {
	t.Helper()
	_, err := client.AssessmentSession.UpdateOneID(sessionID).
		SetStartedAt(nowMinusMS(startedAtMSAgo)).
		Save(context.Background())
	require.NoError(t, err)
}

func nowMinusMS(ms int64) time.Time {
	return time.Now().Add(-time.Duration(ms) * time.Millisecond)
}

// sessionStatus reloads a session's status.
func sessionStatus(t *testing.T, client *ent.Client, sessionID string) assessmentsession.Status {
	t.Helper()
	sess, err := client.AssessmentSession.Get(context.Background(), sessionID)
	require.NoError(t, err)
	return sess.Status
}
