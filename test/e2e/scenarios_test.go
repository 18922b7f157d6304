package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillforge/skillforge/ent/assessmentsession"
	"github.com/skillforge/skillforge/ent/question"
)

// Full round lifecycle: survey → generation via tool saves → autosave →
// batch scoring → idempotent re-score.
func TestFullRoundLifecycle(t *testing.T) {
	llm := NewScriptedLLMClient()
	ScriptFullRound(llm, 3, "databases", 5)
	app := NewTestApp(t, WithLLMClient(llm))

	app.SubmitSurvey(t, "user-1", "intermediate", []string{"databases", "networking"})

	gen := app.GenerateRound(t, "user-1", 3)
	session := gen["session"].(map[string]interface{})
	sessionID := session["session_id"].(string)
	questions := gen["questions"].([]interface{})
	require.Len(t, questions, 3)
	assert.Equal(t, false, gen["partial"])
	assert.Equal(t, "in_progress", session["status"])

	// The round reports which attempt produced it and what it cost.
	assert.Equal(t, float64(1), gen["attempt_number"])
	assert.Greater(t, gen["total_tokens"].(float64), float64(0))

	// Answer schemas must never leak to the client.
	for _, raw := range questions {
		q := raw.(map[string]interface{})
		assert.NotContains(t, q, "answer_schema")
	}

	q1 := questions[0].(map[string]interface{})["question_id"].(string)
	q2 := questions[1].(map[string]interface{})["question_id"].(string)

	// First autosave starts the session clock.
	app.AutosaveAnswer(t, sessionID, q1, map[string]interface{}{"selected_key": "404"}, 4000)
	after := app.GetSession(t, sessionID)
	assert.NotNil(t, after["started_at"])

	// Wrong answer on q2; q3 stays unanswered.
	app.AutosaveAnswer(t, sessionID, q2, map[string]interface{}{"selected_key": "200"}, 6000)

	// Immediate feedback scores the stored answer; the request carries no
	// answer payload of its own.
	feedback := app.doJSON(t, http.MethodPost, "/api/v1/answers/score", map[string]string{
		"session_id":  sessionID,
		"question_id": q1,
	}, http.StatusOK)
	assert.Equal(t, true, feedback["is_correct"])
	assert.Equal(t, float64(100), feedback["final_score"])

	score := app.ScoreRound(t, sessionID)
	assert.Equal(t, float64(1), score["correct_count"])
	assert.Equal(t, float64(3), score["total_count"])
	assert.InDelta(t, 100.0/3.0, score["score"].(float64), 0.01)

	// Wrong and unanswered questions both count against the category.
	wrong := score["wrong_categories"].(map[string]interface{})
	assert.Equal(t, float64(2), wrong["databases"])

	// A question is still unanswered, so the round does not finalize and an
	// explicit complete is rejected.
	assert.Equal(t, false, score["auto_completed"])
	assert.Equal(t, "in_progress", app.GetSession(t, sessionID)["status"])
	app.doJSON(t, http.MethodPut, "/api/v1/sessions/"+sessionID+"/status",
		map[string]string{"status": "completed"}, http.StatusConflict)

	// Re-scoring returns the stored result instead of recomputing.
	again := app.ScoreRound(t, sessionID)
	assert.Equal(t, score["score"], again["score"])
	assert.Equal(t, score["correct_count"], again["correct_count"])

	// Once the last answer lands, the explicit complete goes through.
	q3 := questions[2].(map[string]interface{})["question_id"].(string)
	app.AutosaveAnswer(t, sessionID, q3, map[string]interface{}{"selected_key": "404"}, 2000)
	final := app.SetSessionStatus(t, sessionID, "completed")
	assert.Equal(t, "completed", final["status"])
}

// The agent may skip the save tool entirely and emit everything in the Final
// Answer; the converter plus reconcile must still persist the round.
func TestGenerationViaFinalAnswerOnly(t *testing.T) {
	llm := NewScriptedLLMClient()
	llm.AddText(ReActFinalAnswer(FinalAnswerQuestions(
		FinalAnswerItem(1, "databases", 4),
		FinalAnswerItem(2, "databases", 5),
	)))
	app := NewTestApp(t, WithLLMClient(llm))

	app.SubmitSurvey(t, "user-2", "beginner", []string{"databases"})
	gen := app.GenerateRound(t, "user-2", 2)

	questions := gen["questions"].([]interface{})
	require.Len(t, questions, 2)
	assert.Equal(t, float64(1), questions[0].(map[string]interface{})["ordinal"])
	assert.Equal(t, float64(2), questions[1].(map[string]interface{})["ordinal"])
	assert.Equal(t, 1, llm.CallCount())
}

// Fewer items than requested is a partial success as long as the floor holds.
func TestGenerationPartialAcceptance(t *testing.T) {
	llm := NewScriptedLLMClient()
	// Three attempts, each saving only the same single question.
	for i := 0; i < 3; i++ {
		llm.AddText(ReActSaveQuestion(MultipleChoiceArgs(1, "networking", 5)))
		llm.AddText(ReActFinalAnswer(`{"questions": []}`))
	}
	app := NewTestApp(t, WithLLMClient(llm))

	app.SubmitSurvey(t, "user-3", "intermediate", []string{"networking"})
	gen := app.GenerateRound(t, "user-3", 3)

	require.Len(t, gen["questions"].([]interface{}), 1)
	assert.Equal(t, true, gen["partial"])
	assert.Equal(t, float64(3), gen["attempt_number"])
}

// Zero usable items after all attempts deletes the session so it cannot
// surface through resume.
func TestGenerationExhaustion(t *testing.T) {
	llm := NewScriptedLLMClient()
	for i := 0; i < 3; i++ {
		llm.AddText(ReActFinalAnswer(`{"questions": []}`))
	}
	app := NewTestApp(t, WithLLMClient(llm))

	app.SubmitSurvey(t, "user-4", "advanced", []string{"security"})

	body, _ := json.Marshal(map[string]interface{}{"user_id": "user-4", "count": 2})
	resp, err := http.Post(app.BaseURL+"/api/v1/questions/generate", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	// No session left behind.
	n, err := app.EntClient.AssessmentSession.Query().
		Where(assessmentsession.UserID("user-4")).
		Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	app.getJSON(t, "/api/v1/sessions/resume?user_id=user-4", http.StatusNotFound)
}

// Round 2 derives its parameters from the scored round 1.
func TestAdaptiveSecondRound(t *testing.T) {
	llm := NewScriptedLLMClient()
	ScriptFullRound(llm, 2, "databases", 5)
	app := NewTestApp(t, WithLLMClient(llm))

	app.SubmitSurvey(t, "user-5", "intermediate", []string{"databases"})
	gen := app.GenerateRound(t, "user-5", 2)
	session := gen["session"].(map[string]interface{})
	sessionID := session["session_id"].(string)
	questions := gen["questions"].([]interface{})

	// Answer everything correctly: score 100 → next difficulty +2.
	for _, raw := range questions {
		q := raw.(map[string]interface{})
		app.AutosaveAnswer(t, sessionID, q["question_id"].(string),
			map[string]interface{}{"selected_key": "404"}, 3000)
	}
	score := app.ScoreRound(t, sessionID)
	assert.Equal(t, float64(100), score["score"])

	// Adaptive round asks for the default count of 5.
	ScriptFullRound(llm, 5, "databases", 7)
	gen2 := app.GenerateAdaptiveRound(t, "user-5", sessionID)
	session2 := gen2["session"].(map[string]interface{})
	assert.Equal(t, float64(2), session2["round"])
	require.Len(t, gen2["questions"].([]interface{}), 5)

	// Prior difficulty was 5 and score 100, so the new items target 7.
	saved, err := app.EntClient.Question.Query().
		Where(question.SessionID(session2["session_id"].(string))).
		All(context.Background())
	require.NoError(t, err)
	for _, q := range saved {
		assert.Equal(t, 7, q.Difficulty)
	}
}

// Pausing freezes the clock; resuming shifts the start forward so paused time
// never counts against the limit. Completed sessions reject further autosaves.
func TestPauseResumeAndTerminalState(t *testing.T) {
	llm := NewScriptedLLMClient()
	ScriptFullRound(llm, 1, "networking", 4)
	app := NewTestApp(t, WithLLMClient(llm))

	app.SubmitSurvey(t, "user-6", "beginner", []string{"networking"})
	gen := app.GenerateRound(t, "user-6", 1)
	session := gen["session"].(map[string]interface{})
	sessionID := session["session_id"].(string)
	questionID := gen["questions"].([]interface{})[0].(map[string]interface{})["question_id"].(string)

	app.AutosaveAnswer(t, sessionID, questionID, map[string]interface{}{"selected_key": "404"}, 1500)

	paused := app.SetSessionStatus(t, sessionID, "paused")
	assert.Equal(t, "paused", paused["status"])
	assert.NotNil(t, paused["paused_at"])

	ts := app.GetTimeStatus(t, sessionID)
	assert.Equal(t, false, ts["exceeded"])

	// A paused session still accepts saves and stays paused.
	app.AutosaveAnswer(t, sessionID, questionID, map[string]interface{}{"selected_key": "200"}, 2000)
	assert.Equal(t, "paused", app.GetSession(t, sessionID)["status"])

	resumed := app.SetSessionStatus(t, sessionID, "in_progress")
	assert.Equal(t, "in_progress", resumed["status"])
	assert.Nil(t, resumed["paused_at"])

	completed := app.SetSessionStatus(t, sessionID, "completed")
	assert.Equal(t, "completed", completed["status"])

	// Completed is terminal: no more transitions, no more autosaves.
	app.doJSON(t, http.MethodPut, "/api/v1/sessions/"+sessionID+"/status",
		map[string]string{"status": "in_progress"}, http.StatusConflict)
	app.doJSON(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/autosave", map[string]interface{}{
		"question_id": questionID,
		"user_answer": map[string]interface{}{"selected_key": "404"},
	}, http.StatusConflict)
}

// Resume restores the newest non-completed session with questions, saved
// answers, and the time status.
func TestResumeLatestSession(t *testing.T) {
	llm := NewScriptedLLMClient()
	ScriptFullRound(llm, 2, "databases", 5)
	app := NewTestApp(t, WithLLMClient(llm))

	app.SubmitSurvey(t, "user-7", "intermediate", []string{"databases"})
	gen := app.GenerateRound(t, "user-7", 2)
	sessionID := gen["session"].(map[string]interface{})["session_id"].(string)
	q1 := gen["questions"].([]interface{})[0].(map[string]interface{})["question_id"].(string)

	app.AutosaveAnswer(t, sessionID, q1, map[string]interface{}{"selected_key": "404"}, 2500)

	resumed := app.ResumeLatest(t, "user-7")
	assert.Equal(t, sessionID, resumed["session"].(map[string]interface{})["session_id"])
	require.Len(t, resumed["questions"].([]interface{}), 2)

	answers := resumed["answers"].([]interface{})
	require.Len(t, answers, 1)
	saved := answers[0].(map[string]interface{})
	assert.Equal(t, q1, saved["question_id"])
	assert.Equal(t, "404", saved["user_answer"].(map[string]interface{})["selected_key"])
	assert.Equal(t, float64(2500), saved["response_time_ms"])
	assert.NotNil(t, resumed["time"])
}

// Only one generation may hold the semaphore when the cap is 1; a concurrent
// request is turned away with 429.
func TestGenerationConcurrencyCap(t *testing.T) {
	llm := NewScriptedLLMClient()
	release := make(chan struct{})
	blocked := make(chan struct{}, 1)
	llm.Add(LLMScriptEntry{
		Text: ReActFinalAnswer(FinalAnswerQuestions(
			FinalAnswerItem(1, "databases", 5),
		)),
		WaitCh:  release,
		OnBlock: blocked,
	})

	cfg := defaultTestGenerationConfig()
	cfg.MaxConcurrent = 1
	app := NewTestApp(t, WithLLMClient(llm), WithGenerationConfig(cfg))

	app.SubmitSurvey(t, "user-8", "intermediate", []string{"databases"})

	done := make(chan map[string]interface{}, 1)
	go func() {
		body, _ := json.Marshal(map[string]interface{}{"user_id": "user-8", "count": 1})
		resp, err := http.Post(app.BaseURL+"/api/v1/questions/generate", "application/json", bytes.NewReader(body))
		if err != nil {
			done <- nil
			return
		}
		defer func() { _ = resp.Body.Close() }()
		var result map[string]interface{}
		_ = json.NewDecoder(resp.Body).Decode(&result)
		result["_status"] = float64(resp.StatusCode)
		done <- result
	}()

	// Wait for the first run to be inside the LLM call, then race a second one.
	<-blocked
	body, _ := json.Marshal(map[string]interface{}{"user_id": "user-8", "count": 1})
	resp, err := http.Post(app.BaseURL+"/api/v1/questions/generate", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

	close(release)
	first := <-done
	require.NotNil(t, first)
	assert.Equal(t, float64(http.StatusCreated), first["_status"])
}

// Generation requests without a stored survey fail before touching the agent.
func TestGenerationRequiresSurvey(t *testing.T) {
	app := NewTestApp(t)

	body, _ := json.Marshal(map[string]interface{}{"user_id": "nobody", "count": 1})
	resp, err := http.Post(app.BaseURL+"/api/v1/questions/generate", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, 0, app.LLMClient.CallCount())
}

func TestHealthEndpoint(t *testing.T) {
	app := NewTestApp(t)
	health := app.GetHealth(t)
	assert.Equal(t, "healthy", health["status"])
}
