package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// ────────────────────────────────────────────────────────────
// HTTP Client Helpers
// ────────────────────────────────────────────────────────────

// SubmitSurvey posts a profile survey and returns the parsed response.
func (app *TestApp) SubmitSurvey(t *testing.T, userID, selfLevel string, interests []string) map[string]interface{} {
	t.Helper()
	body := map[string]interface{}{
		"user_id":    userID,
		"self_level": selfLevel,
		"years":      4,
		"job_role":   "backend developer",
		"duty":       "builds and operates services",
		"interests":  interests,
	}
	return app.postJSON(t, "/api/v1/surveys", body, http.StatusCreated)
}

// GenerateRound posts a generation request and returns the parsed response.
func (app *TestApp) GenerateRound(t *testing.T, userID string, count int) map[string]interface{} {
	t.Helper()
	body := map[string]interface{}{
		"user_id": userID,
		"count":   count,
	}
	return app.postJSON(t, "/api/v1/questions/generate", body, http.StatusCreated)
}

// GenerateAdaptiveRound posts an adaptive generation request.
func (app *TestApp) GenerateAdaptiveRound(t *testing.T, userID, priorSessionID string) map[string]interface{} {
	t.Helper()
	body := map[string]interface{}{
		"user_id":          userID,
		"prior_session_id": priorSessionID,
	}
	return app.postJSON(t, "/api/v1/questions/generate-adaptive", body, http.StatusCreated)
}

// AutosaveAnswer posts an answer snapshot for a question.
func (app *TestApp) AutosaveAnswer(t *testing.T, sessionID, questionID string, answer map[string]interface{}, responseTimeMS int64) map[string]interface{} {
	t.Helper()
	body := map[string]interface{}{
		"question_id":      questionID,
		"user_answer":      answer,
		"response_time_ms": responseTimeMS,
	}
	return app.postJSON(t, "/api/v1/sessions/"+sessionID+"/autosave", body, http.StatusOK)
}

// SetSessionStatus puts a status transition and returns the session response.
func (app *TestApp) SetSessionStatus(t *testing.T, sessionID, status string) map[string]interface{} {
	t.Helper()
	return app.putJSON(t, "/api/v1/sessions/"+sessionID+"/status",
		map[string]string{"status": status}, http.StatusOK)
}

// ScoreRound posts a round-scoring request and returns the round score.
func (app *TestApp) ScoreRound(t *testing.T, sessionID string) map[string]interface{} {
	t.Helper()
	return app.postJSON(t, "/api/v1/sessions/"+sessionID+"/score", nil, http.StatusOK)
}

// GetSession retrieves a session by ID.
func (app *TestApp) GetSession(t *testing.T, sessionID string) map[string]interface{} {
	t.Helper()
	return app.getJSON(t, "/api/v1/sessions/"+sessionID, http.StatusOK)
}

// GetTimeStatus retrieves a session's position against its time limit.
func (app *TestApp) GetTimeStatus(t *testing.T, sessionID string) map[string]interface{} {
	t.Helper()
	return app.getJSON(t, "/api/v1/sessions/"+sessionID+"/time-status", http.StatusOK)
}

// ResumeLatest retrieves the user's most recent resumable session.
func (app *TestApp) ResumeLatest(t *testing.T, userID string) map[string]interface{} {
	t.Helper()
	return app.getJSON(t, "/api/v1/sessions/resume?user_id="+userID, http.StatusOK)
}

// GetHealth calls GET /health.
func (app *TestApp) GetHealth(t *testing.T) map[string]interface{} {
	t.Helper()
	return app.getJSON(t, "/health", http.StatusOK)
}

func (app *TestApp) postJSON(t *testing.T, path string, body interface{}, expectedStatus int) map[string]interface{} {
	t.Helper()
	return app.doJSON(t, http.MethodPost, path, body, expectedStatus)
}

func (app *TestApp) putJSON(t *testing.T, path string, body interface{}, expectedStatus int) map[string]interface{} {
	t.Helper()
	return app.doJSON(t, http.MethodPut, path, body, expectedStatus)
}

func (app *TestApp) getJSON(t *testing.T, path string, expectedStatus int) map[string]interface{} {
	t.Helper()
	return app.doJSON(t, http.MethodGet, path, nil, expectedStatus)
}

func (app *TestApp) doJSON(t *testing.T, method, path string, body interface{}, expectedStatus int) map[string]interface{} {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, app.BaseURL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, expectedStatus, resp.StatusCode, "%s %s: unexpected status, body: %s", method, path, raw)
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &result))
	return result
}

// ────────────────────────────────────────────────────────────
// Scripted ReAct Response Builders
// ────────────────────────────────────────────────────────────

// ReActSaveQuestion builds a scripted LLM turn that calls
// save_generated_question with the given arguments.
func ReActSaveQuestion(argsJSON string) string {
	return "Thought: This draft covers the target category at the requested difficulty.\n" +
		"Action: save_generated_question\n" +
		"Action Input: " + argsJSON
}

// ReActFinalAnswer builds a scripted concluding turn carrying the given JSON.
func ReActFinalAnswer(answerJSON string) string {
	return "Thought: All questions are saved and validated.\n" +
		"Final Answer: " + answerJSON
}

// MultipleChoiceArgs builds save_generated_question arguments for a
// multiple-choice item that passes every quality check.
func MultipleChoiceArgs(ordinal int, category string, difficulty int) string {
	stem := fmt.Sprintf("Which HTTP status code indicates that a %s resource was not found (variant %d)?", category, ordinal)
	args := map[string]interface{}{
		"ordinal":   ordinal,
		"stem":      stem,
		"item_type": "multiple_choice",
		"choices":   []string{"404", "200", "500", "302"},
		"answer_schema": map[string]interface{}{
			"kind":        "exact_match",
			"payload":     map[string]interface{}{"correct_answer": "404"},
			"explanation": "404 Not Found is returned when the server cannot locate the requested resource.",
		},
		"difficulty": difficulty,
		"category":   category,
	}
	data, _ := json.Marshal(args)
	return string(data)
}

// TrueFalseArgs builds save_generated_question arguments for a true/false item.
func TrueFalseArgs(ordinal int, category string, difficulty int) string {
	args := map[string]interface{}{
		"ordinal":   ordinal,
		"stem":      fmt.Sprintf("TCP guarantees in-order delivery of the %s byte stream (statement %d).", category, ordinal),
		"item_type": "true_false",
		"answer_schema": map[string]interface{}{
			"kind":        "true_false",
			"payload":     map[string]interface{}{"correct_answer": true},
			"explanation": "TCP sequences segments and reassembles them in order before delivery.",
		},
		"difficulty": difficulty,
		"category":   category,
	}
	data, _ := json.Marshal(args)
	return string(data)
}

// ShortAnswerArgs builds save_generated_question arguments for a short-answer item.
func ShortAnswerArgs(ordinal int, category string, difficulty int) string {
	args := map[string]interface{}{
		"ordinal":   ordinal,
		"stem":      fmt.Sprintf("Name the command used to inspect %s table state (task %d): describe it briefly.", category, ordinal),
		"item_type": "short_answer",
		"answer_schema": map[string]interface{}{
			"kind":        "keyword_match",
			"payload":     map[string]interface{}{"keywords": []string{"explain", "analyze"}},
			"explanation": "EXPLAIN ANALYZE shows the actual execution plan with timing.",
		},
		"difficulty": difficulty,
		"category":   category,
	}
	data, _ := json.Marshal(args)
	return string(data)
}

// FinalAnswerQuestions builds a Final Answer JSON body from raw item objects.
func FinalAnswerQuestions(items ...map[string]interface{}) string {
	data, _ := json.Marshal(map[string]interface{}{"questions": items})
	return string(data)
}

// FinalAnswerItem builds one item object for a Final Answer payload.
func FinalAnswerItem(ordinal int, category string, difficulty int) map[string]interface{} {
	return map[string]interface{}{
		"stem":      fmt.Sprintf("Which isolation level prevents dirty reads in %s systems (case %d)?", category, ordinal),
		"item_type": "multiple_choice",
		"choices":   []string{"read committed", "read uncommitted", "none", "dirty snapshot"},
		"answer_schema": map[string]interface{}{
			"kind":        "exact_match",
			"payload":     map[string]interface{}{"correct_answer": "read committed"},
			"explanation": "Read committed guarantees only committed data is visible to readers.",
		},
		"difficulty": difficulty,
		"category":   category,
	}
}

// ScriptFullRound loads the LLM script with count tool-save turns followed by
// a concluding Final Answer, producing a complete generated round.
func ScriptFullRound(llm *ScriptedLLMClient, count int, category string, difficulty int) {
	for i := 1; i <= count; i++ {
		llm.AddText(ReActSaveQuestion(MultipleChoiceArgs(i, category, difficulty)))
	}
	llm.AddText(ReActFinalAnswer(`{"questions": []}`))
}
