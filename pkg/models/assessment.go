package models

import "time"

// SelfLevel is the user's self-reported skill level from the profile survey.
type SelfLevel string

const (
	SelfLevelBeginner     SelfLevel = "beginner"
	SelfLevelIntermediate SelfLevel = "intermediate"
	SelfLevelAdvanced     SelfLevel = "advanced"
)

// Valid reports whether l is a known self level.
func (l SelfLevel) Valid() bool {
	switch l {
	case SelfLevelBeginner, SelfLevelIntermediate, SelfLevelAdvanced:
		return true
	}
	return false
}

// BaselineDifficulty maps a self level to the round-1 target difficulty.
func (l SelfLevel) BaselineDifficulty() int {
	switch l {
	case SelfLevelBeginner:
		return 3
	case SelfLevelAdvanced:
		return 7
	default:
		return 5
	}
}

// CreateSurveyRequest is the input for submitting a profile survey.
type CreateSurveyRequest struct {
	UserID    string    `json:"user_id"`
	SelfLevel SelfLevel `json:"self_level"`
	Years     int       `json:"years"`
	JobRole   string    `json:"job_role"`
	Duty      string    `json:"duty"`
	Interests []string  `json:"interests"`
}

// AdaptiveParams are the hints the adaptive deriver produces for the next
// round. They feed directly into the generation agent's input.
type AdaptiveParams struct {
	TargetDifficulty   int                `json:"target_difficulty"`
	CategoryWeights    map[string]float64 `json:"category_weights"`
	RequireShortAnswer bool               `json:"require_short_answer"`
	Count              int                `json:"count"`
}

// GenerateRoundRequest is the input for opening a round and generating items.
type GenerateRoundRequest struct {
	UserID   string `json:"user_id"`
	SurveyID string `json:"survey_id"`
	Round    int    `json:"round"`
	Count    int    `json:"count,omitempty"`
	Domain   string `json:"domain,omitempty"`

	// Adaptive hints, nil for round 1 / non-adaptive retakes.
	Adaptive *AdaptiveParams `json:"adaptive,omitempty"`
}

// TimeStatus reports a session's position against its time limit.
type TimeStatus struct {
	ElapsedMS   int64 `json:"elapsed_ms"`
	RemainingMS int64 `json:"remaining_ms"`
	Exceeded    bool  `json:"exceeded"`
}

// RoundScore is the aggregated outcome of a scored round.
type RoundScore struct {
	SessionID       string         `json:"session_id"`
	RoundIndex      int            `json:"round"`
	Score           float64        `json:"score"`
	CorrectCount    int            `json:"correct_count"`
	TotalCount      int            `json:"total_count"`
	WrongCategories map[string]int `json:"wrong_categories"`
	AutoCompleted   bool           `json:"auto_completed"`
	CreatedAt       time.Time      `json:"created_at"`
}

// AnswerScore is the outcome of scoring a single stored answer.
type AnswerScore struct {
	QuestionID string    `json:"question_id"`
	IsCorrect  bool      `json:"is_correct"`
	Score      float64   `json:"score"`
	FinalScore float64   `json:"final_score"`
	ScoredAt   time.Time `json:"scored_at"`
}
