package api

// AutosaveBody is the request body for POST /sessions/:id/autosave.
type AutosaveBody struct {
	QuestionID     string         `json:"question_id" binding:"required"`
	UserAnswer     map[string]any `json:"user_answer" binding:"required"`
	ResponseTimeMS int64          `json:"response_time_ms"`
}

// UpdateStatusBody is the request body for PUT /sessions/:id/status.
type UpdateStatusBody struct {
	Status string `json:"status" binding:"required"`
}

// GenerateAdaptiveBody is the request body for POST /questions/generate-adaptive.
type GenerateAdaptiveBody struct {
	UserID         string `json:"user_id"`
	PriorSessionID string `json:"prior_session_id" binding:"required"`
}

// ScoreAnswerBody is the request body for POST /answers/score. The answer
// itself is read from the store, never from the client.
type ScoreAnswerBody struct {
	SessionID  string `json:"session_id" binding:"required"`
	QuestionID string `json:"question_id" binding:"required"`
}
