package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillforge/skillforge/ent"
	"github.com/skillforge/skillforge/ent/assessmentsession"
	"github.com/skillforge/skillforge/ent/question"
	"github.com/skillforge/skillforge/pkg/agent"
	"github.com/skillforge/skillforge/pkg/models"
	testdb "github.com/skillforge/skillforge/test/database"
)

func createSurvey(t *testing.T, client *ent.Client, userID string) *ent.ProfileSurvey {
	t.Helper()
	survey, err := client.ProfileSurvey.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetSelfLevel("intermediate").
		SetYears(4).
		SetJobRole("backend developer").
		SetInterests([]string{"databases", "networking"}).
		Save(context.Background())
	require.NoError(t, err)
	return survey
}

func createSession(t *testing.T, client *ent.Client, userID, surveyID string, status assessmentsession.Status) *ent.AssessmentSession {
	t.Helper()
	sess, err := client.AssessmentSession.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetSurveyID(surveyID).
		SetRoundIndex(1).
		SetStatus(status).
		SetTimeLimitMs(600000).
		Save(context.Background())
	require.NoError(t, err)
	return sess
}

func createMCQuestion(t *testing.T, client *ent.Client, sessionID string, ordinal int, category string) *ent.Question {
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
		SetDifficulty(5).
		SetCategory(category).
		Save(context.Background())
	require.NoError(t, err)
	return q
}

func createScoredAnswer(t *testing.T, client *ent.Client, sessionID, questionID string, correct bool) {
	t.Helper()
	_, err := client.AttemptAnswer.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetQuestionID(questionID).
		SetUserAnswer(map[string]any{"selected_key": "404"}).
		SetResponseTimeMs(4000).
		SetIsCorrect(correct).
		SetSavedAt(time.Now()).
		Save(context.Background())
	require.NoError(t, err)
}

// callTool executes one tool and decodes its JSON result.
func callTool(t *testing.T, reg *Registry, name, args string) (map[string]any, *agent.ToolResult) {
	t.Helper()
	res, err := reg.Execute(context.Background(), agent.ToolCall{
		ID:        "call-test",
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err)
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.Content), &payload))
	return payload, res
}

func TestRegistry_Execute(t *testing.T) {
	client := testdb.NewTestClient(t)
	survey := createSurvey(t, client.Client, "user-1")
	sess := createSession(t, client.Client, "user-1", survey.ID, assessmentsession.StatusInProgress)
	reg := NewRegistry(client.Client, sess.ID, "user-1", survey.ID)

	t.Run("lists all six tools", func(t *testing.T) {
		tools, err := reg.ListTools(context.Background())
		require.NoError(t, err)
		names := make([]string, 0, len(tools))
		for _, tool := range tools {
			names = append(names, tool.Name)
			assert.NotEmpty(t, tool.Description)
			assert.NotEmpty(t, tool.ParametersSchema)
		}
		assert.ElementsMatch(t, []string{
			"get_user_profile",
			"search_question_templates",
			"get_difficulty_keywords",
			"validate_question_quality",
			"save_generated_question",
			"score_and_explain",
		}, names)
	})

	t.Run("unknown tool is an infrastructure error", func(t *testing.T) {
		_, err := reg.Execute(context.Background(), agent.ToolCall{Name: "frobnicate"})
		assert.Error(t, err)
	})

	t.Run("invalid JSON arguments come back as a tool error", func(t *testing.T) {
		payload, res := callTool(t, reg, "get_difficulty_keywords", "not json {")
		assert.True(t, res.IsError)
		assert.Equal(t, ErrCodeBadInput, payload["error"])
	})

	t.Run("validate_question_quality requires a question object", func(t *testing.T) {
		payload, res := callTool(t, reg, "validate_question_quality", `{}`)
		assert.True(t, res.IsError)
		assert.Equal(t, ErrCodeBadInput, payload["error"])
	})

	t.Run("validate_question_quality reports on a draft", func(t *testing.T) {
		draft, err := json.Marshal(map[string]any{"question": validDraft()})
		require.NoError(t, err)
		payload, res := callTool(t, reg, "validate_question_quality", string(draft))
		require.False(t, res.IsError)
		assert.Equal(t, true, payload["passed"])
		assert.Equal(t, true, payload["is_valid"])
		assert.Equal(t, RecommendPass, payload["recommendation"])
		assert.Equal(t, float64(1), payload["final_score"])
	})

	t.Run("validate_question_quality rejects a rule violation outright", func(t *testing.T) {
		question := validDraft()
		question["choices"] = []any{"404", "200", "500"}
		draft, err := json.Marshal(map[string]any{"question": question})
		require.NoError(t, err)
		payload, res := callTool(t, reg, "validate_question_quality", string(draft))
		require.False(t, res.IsError)
		assert.Equal(t, false, payload["is_valid"])
		assert.Equal(t, RecommendReject, payload["recommendation"])
		assert.GreaterOrEqual(t, payload["final_score"].(float64), QualityThreshold)
	})
}

func TestGetUserProfile(t *testing.T) {
	client := testdb.NewTestClient(t)
	survey := createSurvey(t, client.Client, "user-1")
	sess := createSession(t, client.Client, "user-1", survey.ID, assessmentsession.StatusInProgress)

	t.Run("returns the bound survey", func(t *testing.T) {
		reg := NewRegistry(client.Client, sess.ID, "user-1", survey.ID)
		payload, res := callTool(t, reg, "get_user_profile", "")
		assert.False(t, res.IsError)
		assert.Equal(t, survey.ID, payload["survey_id"])
		assert.Equal(t, "intermediate", payload["self_level"])
		assert.Equal(t, float64(4), payload["years"])
		assert.ElementsMatch(t, []any{"databases", "networking"}, payload["interests"])
	})

	t.Run("falls back to the latest survey for the user", func(t *testing.T) {
		reg := NewRegistry(client.Client, sess.ID, "user-1", "gone-"+uuid.New().String())
		payload, res := callTool(t, reg, "get_user_profile", "")
		assert.False(t, res.IsError)
		assert.Equal(t, survey.ID, payload["survey_id"])
	})

	t.Run("no survey at all", func(t *testing.T) {
		reg := NewRegistry(client.Client, sess.ID, "user-without-survey", "missing")
		payload, res := callTool(t, reg, "get_user_profile", "")
		assert.True(t, res.IsError)
		assert.Equal(t, ErrCodeNotFound, payload["error"])
	})
}

func TestGetDifficultyKeywords(t *testing.T) {
	client := testdb.NewTestClient(t)
	survey := createSurvey(t, client.Client, "user-1")
	sess := createSession(t, client.Client, "user-1", survey.ID, assessmentsession.StatusInProgress)
	reg := NewRegistry(client.Client, sess.ID, "user-1", survey.ID)

	vocabulary := func(difficulty int) map[string]any {
		payload, res := callTool(t, reg, "get_difficulty_keywords",
			fmt.Sprintf(`{"difficulty": %d, "category": "databases"}`, difficulty))
		require.False(t, res.IsError)
		return payload
	}

	assert.Equal(t, "foundational", vocabulary(1)["band"])
	assert.Equal(t, "applied-basics", vocabulary(3)["band"])
	assert.Equal(t, "working-knowledge", vocabulary(6)["band"])
	assert.Equal(t, "advanced", vocabulary(8)["band"])
	assert.Equal(t, "expert", vocabulary(10)["band"])

	t.Run("examples are phrased for the requested category", func(t *testing.T) {
		payload := vocabulary(5)
		assert.Equal(t, float64(5), payload["difficulty"])
		assert.Equal(t, "databases", payload["category"])
		assert.NotEmpty(t, payload["keywords"])
		assert.NotEmpty(t, payload["concepts"])

		examples, ok := payload["example_questions"].([]any)
		require.True(t, ok)
		require.NotEmpty(t, examples)
		for _, e := range examples {
			assert.Contains(t, e.(string), "databases")
		}
	})

	t.Run("category is required", func(t *testing.T) {
		payload, res := callTool(t, reg, "get_difficulty_keywords", `{"difficulty": 5}`)
		assert.True(t, res.IsError)
		assert.Equal(t, ErrCodeBadInput, payload["error"])

		payload, res = callTool(t, reg, "get_difficulty_keywords", `{"difficulty": 5, "category": "   "}`)
		assert.True(t, res.IsError)
		assert.Equal(t, ErrCodeBadInput, payload["error"])
	})

	t.Run("out of range", func(t *testing.T) {
		payload, res := callTool(t, reg, "get_difficulty_keywords", `{"difficulty": 0, "category": "databases"}`)
		assert.True(t, res.IsError)
		assert.Equal(t, ErrCodeBadInput, payload["error"])
	})
}

func TestSearchQuestionTemplates(t *testing.T) {
	client := testdb.NewTestClient(t)
	survey := createSurvey(t, client.Client, "user-1")
	sess := createSession(t, client.Client, "user-1", survey.ID, assessmentsession.StatusInProgress)
	reg := NewRegistry(client.Client, sess.ID, "user-1", survey.ID)

	templates := func(args string) []map[string]any {
		payload, res := callTool(t, reg, "search_question_templates", args)
		require.False(t, res.IsError, "unexpected tool error: %v", payload)
		rawList, ok := payload["templates"].([]any)
		require.True(t, ok)
		out := make([]map[string]any, 0, len(rawList))
		for _, e := range rawList {
			out = append(out, e.(map[string]any))
		}
		return out
	}

	t.Run("category is required", func(t *testing.T) {
		payload, res := callTool(t, reg, "search_question_templates", `{}`)
		assert.True(t, res.IsError)
		assert.Equal(t, ErrCodeBadInput, payload["error"])
	})

	t.Run("unknown item_type is rejected", func(t *testing.T) {
		payload, res := callTool(t, reg, "search_question_templates",
			`{"category": "databases", "item_type": "essay"}`)
		assert.True(t, res.IsError)
		assert.Equal(t, ErrCodeBadInput, payload["error"])
	})

	t.Run("seeds are capped and sorted by correct rate", func(t *testing.T) {
		list := templates(`{"category": "database"}`)
		require.Len(t, list, maxTemplateResults)
		for i := 1; i < len(list); i++ {
			assert.GreaterOrEqual(t,
				list[i-1]["correct_rate"].(float64),
				list[i]["correct_rate"].(float64))
		}
	})

	t.Run("item_type filter narrows the seed set", func(t *testing.T) {
		list := templates(`{"category": "general", "item_type": "true_false"}`)
		require.NotEmpty(t, list)
		for _, tpl := range list {
			assert.Equal(t, "true_false", tpl["item_type"])
		}
	})

	t.Run("scored questions are mined as templates", func(t *testing.T) {
		q := createMCQuestion(t, client.Client, sess.ID, 1, "kubernetes")
		createScoredAnswer(t, client.Client, sess.ID, q.ID, true)
		createScoredAnswer(t, client.Client, sess.ID, q.ID, false)

		// Kubernetes has no dedicated seeds, so results are general seeds
		// plus the mined pattern.
		list := templates(`{"category": "Kubernetes", "item_type": "multiple_choice"}`)
		var mined map[string]any
		for _, tpl := range list {
			if tpl["pattern"] == q.Stem {
				mined = tpl
			}
		}
		require.NotNil(t, mined, "mined template missing from %v", list)
		assert.InDelta(t, 0.5, mined["correct_rate"].(float64), 0.001)
		assert.Equal(t, float64(2), mined["usage_count"])
		assert.Equal(t, "kubernetes", mined["category"])
	})

	t.Run("unscored questions are not mined", func(t *testing.T) {
		createMCQuestion(t, client.Client, sess.ID, 2, "terraform")
		list := templates(`{"category": "terraform"}`)
		for _, tpl := range list {
			assert.Equal(t, "general", tpl["category"])
		}
	})
}

func TestSaveGeneratedQuestion(t *testing.T) {
	client := testdb.NewTestClient(t)
	survey := createSurvey(t, client.Client, "user-1")
	sess := createSession(t, client.Client, "user-1", survey.ID, assessmentsession.StatusInProgress)
	reg := NewRegistry(client.Client, sess.ID, "user-1", survey.ID)
	ctx := context.Background()

	validArgs := `{
		"ordinal": 1,
		"stem": "Which HTTP status code means a resource was not found?",
		"item_type": "multiple_choice",
		"choices": ["404", "200", "500", "302"],
		"difficulty": 5,
		"category": "networking",
		"answer_schema": {
			"kind": "exact_match",
			"payload": {"correct_answer": "404"},
			"explanation": "404 Not Found signals a missing resource."
		}
	}`

	t.Run("persists a passing draft", func(t *testing.T) {
		payload, res := callTool(t, reg, "save_generated_question", validArgs)
		require.False(t, res.IsError, "unexpected tool error: %v", payload)
		assert.Equal(t, false, payload["replaced"])

		q, err := client.Question.Get(ctx, payload["question_id"].(string))
		require.NoError(t, err)
		assert.Equal(t, sess.ID, q.SessionID)
		assert.Equal(t, 1, q.Ordinal)
		assert.Equal(t, []string{"404", "200", "500", "302"}, q.Choices)
		assert.Equal(t, models.AnswerKindExactMatch, q.AnswerSchema.Kind)
	})

	t.Run("re-saving an ordinal replaces the earlier row", func(t *testing.T) {
		before, err := client.Question.Query().
			Where(question.SessionID(sess.ID), question.Ordinal(1)).
			Only(ctx)
		require.NoError(t, err)

		payload, res := callTool(t, reg, "save_generated_question", validArgs)
		require.False(t, res.IsError)
		assert.Equal(t, true, payload["replaced"])
		assert.NotEqual(t, before.ID, payload["question_id"])

		count, err := client.Question.Query().
			Where(question.SessionID(sess.ID), question.Ordinal(1)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("quality failures are refused", func(t *testing.T) {
		payload, res := callTool(t, reg, "save_generated_question", `{
			"ordinal": 2,
			"stem": "Locks?",
			"item_type": "short_answer",
			"difficulty": 0,
			"category": "",
			"answer_schema": {"kind": "keyword_match", "payload": {"keywords": ["mutex"]}}
		}`)
		assert.True(t, res.IsError)
		assert.Equal(t, ErrCodeQualityFailed, payload["error"])

		count, err := client.Question.Query().
			Where(question.SessionID(sess.ID), question.Ordinal(2)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("ordinal must be positive", func(t *testing.T) {
		payload, res := callTool(t, reg, "save_generated_question",
			`{"ordinal": 0, "stem": "x", "item_type": "true_false", "difficulty": 3, "category": "go"}`)
		assert.True(t, res.IsError)
		assert.Equal(t, ErrCodeBadInput, payload["error"])
	})

	t.Run("completed sessions refuse new questions", func(t *testing.T) {
		done := createSession(t, client.Client, "user-1", survey.ID, assessmentsession.StatusCompleted)
		doneReg := NewRegistry(client.Client, done.ID, "user-1", survey.ID)

		payload, res := callTool(t, doneReg, "save_generated_question", validArgs)
		assert.True(t, res.IsError)
		assert.Equal(t, ErrCodeSessionTerminal, payload["error"])
	})

	t.Run("unknown session", func(t *testing.T) {
		ghostReg := NewRegistry(client.Client, uuid.New().String(), "user-1", survey.ID)
		payload, res := callTool(t, ghostReg, "save_generated_question", validArgs)
		assert.True(t, res.IsError)
		assert.Equal(t, ErrCodeNotFound, payload["error"])
	})
}

func TestScoreAndExplain(t *testing.T) {
	client := testdb.NewTestClient(t)
	survey := createSurvey(t, client.Client, "user-1")
	sess := createSession(t, client.Client, "user-1", survey.ID, assessmentsession.StatusInProgress)
	reg := NewRegistry(client.Client, sess.ID, "user-1", survey.ID)
	q := createMCQuestion(t, client.Client, sess.ID, 1, "networking")

	t.Run("correct answer with explanation", func(t *testing.T) {
		payload, res := callTool(t, reg, "score_and_explain",
			`{"question_id": "`+q.ID+`", "user_answer": {"selected_key": "404"}, "elapsed_ms": 4000}`)
		require.False(t, res.IsError)
		assert.Equal(t, true, payload["is_correct"])
		assert.Equal(t, float64(100), payload["base_score"])
		assert.Equal(t, float64(100), payload["final_score"])
		assert.Contains(t, payload["explanation"], "Not Found")
	})

	t.Run("overtime answers are penalized", func(t *testing.T) {
		// Session limit is 600s; 900s elapsed halves the score.
		payload, res := callTool(t, reg, "score_and_explain",
			`{"question_id": "`+q.ID+`", "user_answer": {"selected_key": "404"}, "elapsed_ms": 900000}`)
		require.False(t, res.IsError)
		assert.Equal(t, float64(100), payload["base_score"])
		assert.InDelta(t, 50.0, payload["final_score"].(float64), 0.001)
	})

	t.Run("wrong answer", func(t *testing.T) {
		payload, res := callTool(t, reg, "score_and_explain",
			`{"question_id": "`+q.ID+`", "user_answer": {"selected_key": "200"}, "elapsed_ms": 4000}`)
		require.False(t, res.IsError)
		assert.Equal(t, false, payload["is_correct"])
		assert.Equal(t, float64(0), payload["final_score"])
	})

	t.Run("unknown question", func(t *testing.T) {
		payload, res := callTool(t, reg, "score_and_explain",
			`{"question_id": "missing", "user_answer": {"selected_key": "404"}, "elapsed_ms": 0}`)
		assert.True(t, res.IsError)
		assert.Equal(t, ErrCodeNotFound, payload["error"])
	})

	t.Run("answer is required", func(t *testing.T) {
		payload, res := callTool(t, reg, "score_and_explain",
			`{"question_id": "`+q.ID+`"}`)
		assert.True(t, res.IsError)
		assert.Equal(t, ErrCodeBadInput, payload["error"])
	})
}
