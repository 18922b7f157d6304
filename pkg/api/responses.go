package api

import (
	"time"

	"github.com/skillforge/skillforge/ent"
	"github.com/skillforge/skillforge/pkg/models"
)

// SurveyResponse is the wire form of a profile survey.
type SurveyResponse struct {
	SurveyID    string    `json:"survey_id"`
	UserID      string    `json:"user_id"`
	SelfLevel   string    `json:"self_level"`
	Years       int       `json:"years"`
	JobRole     string    `json:"job_role,omitempty"`
	Duty        string    `json:"duty,omitempty"`
	Interests   []string  `json:"interests"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func toSurveyResponse(s *ent.ProfileSurvey) SurveyResponse {
	return SurveyResponse{
		SurveyID:    s.ID,
		UserID:      s.UserID,
		SelfLevel:   string(s.SelfLevel),
		Years:       s.Years,
		JobRole:     s.JobRole,
		Duty:        s.Duty,
		Interests:   s.Interests,
		SubmittedAt: s.SubmittedAt,
	}
}

// SessionResponse is the wire form of an assessment session.
type SessionResponse struct {
	SessionID   string     `json:"session_id"`
	UserID      string     `json:"user_id"`
	SurveyID    string     `json:"survey_id"`
	Round       int        `json:"round"`
	Status      string     `json:"status"`
	TimeLimitMS int64      `json:"time_limit_ms"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	PausedAt    *time.Time `json:"paused_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func toSessionResponse(s *ent.AssessmentSession) SessionResponse {
	return SessionResponse{
		SessionID:   s.ID,
		UserID:      s.UserID,
		SurveyID:    s.SurveyID,
		Round:       s.RoundIndex,
		Status:      string(s.Status),
		TimeLimitMS: s.TimeLimitMs,
		StartedAt:   s.StartedAt,
		PausedAt:    s.PausedAt,
		CreatedAt:   s.CreatedAt,
	}
}

// QuestionResponse is the wire form of a question. The answer schema is
// never exposed to test takers; only the explanation-free public fields go
// out.
type QuestionResponse struct {
	QuestionID string   `json:"question_id"`
	Ordinal    int      `json:"ordinal"`
	ItemType   string   `json:"item_type"`
	Stem       string   `json:"stem"`
	Choices    []string `json:"choices,omitempty"`
	Difficulty int      `json:"difficulty"`
	Category   string   `json:"category"`
}

func toQuestionResponses(questions []*ent.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, QuestionResponse{
			QuestionID: q.ID,
			Ordinal:    q.Ordinal,
			ItemType:   string(q.ItemType),
			Stem:       q.Stem,
			Choices:    q.Choices,
			Difficulty: q.Difficulty,
			Category:   q.Category,
		})
	}
	return out
}

// GenerateResponse is the response for the generation endpoints.
type GenerateResponse struct {
	Session       SessionResponse    `json:"session"`
	Questions     []QuestionResponse `json:"questions"`
	Partial       bool               `json:"partial"`
	AttemptNumber int                `json:"attempt_number"`
	TotalTokens   int                `json:"total_tokens,omitempty"`
}

// AnswerStateResponse is the saved-answer slice of a resumed session.
type AnswerStateResponse struct {
	QuestionID     string         `json:"question_id"`
	UserAnswer     map[string]any `json:"user_answer"`
	ResponseTimeMS int64          `json:"response_time_ms"`
	SavedAt        time.Time      `json:"saved_at"`
}

// ResumeResponse restores a client to its in-flight session.
type ResumeResponse struct {
	Session   SessionResponse       `json:"session"`
	Questions []QuestionResponse    `json:"questions"`
	Answers   []AnswerStateResponse `json:"answers"`
	Time      *models.TimeStatus    `json:"time"`
}

// ScoreAnswerResponse is the immediate-feedback scoring response.
type ScoreAnswerResponse struct {
	models.AnswerScore
	Explanation string `json:"explanation,omitempty"`
}
