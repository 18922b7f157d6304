package tools

import (
	"context"
	"encoding/json"

	"github.com/skillforge/skillforge/ent"
	"github.com/skillforge/skillforge/pkg/models"
	"github.com/skillforge/skillforge/pkg/scoring"
)

type scoreAndExplainArgs struct {
	QuestionID string         `json:"question_id"`
	UserAnswer map[string]any `json:"user_answer"`
	ElapsedMS  int64          `json:"elapsed_ms"`
}

type scoreAndExplainResponse struct {
	QuestionID  string  `json:"question_id"`
	IsCorrect   bool    `json:"is_correct"`
	BaseScore   float64 `json:"base_score"`
	FinalScore  float64 `json:"final_score"`
	Explanation string  `json:"explanation,omitempty"`
}

// scoreAndExplain scores one answer against a saved question and returns the
// verdict with the stored explanation. The deterministic scorer is the same
// one the batch scoring pipeline uses.
func (r *Registry) scoreAndExplain(ctx context.Context, args json.RawMessage) (any, *toolError) {
	var req scoreAndExplainArgs
	if terr := decodeArgs(args, &req); terr != nil {
		return nil, terr
	}
	if req.QuestionID == "" {
		return nil, errBadInput("question_id is required")
	}
	if req.UserAnswer == nil {
		return nil, errBadInput("user_answer is required")
	}
	if req.ElapsedMS < 0 {
		return nil, errBadInput("elapsed_ms must be >= 0")
	}

	q, err := r.client.Question.Get(ctx, req.QuestionID)
	if ent.IsNotFound(err) {
		return nil, errNotFound("question %s not found", req.QuestionID)
	}
	if err != nil {
		return nil, errStore(err)
	}

	result := scoring.Score(q.AnswerSchema, models.ItemType(q.ItemType), req.UserAnswer)

	final := result.BaseScore
	if req.ElapsedMS > 0 {
		sess, err := r.client.AssessmentSession.Get(ctx, q.SessionID)
		if err != nil && !ent.IsNotFound(err) {
			return nil, errStore(err)
		}
		if err == nil {
			final = scoring.ApplyTimePenalty(result.BaseScore, req.ElapsedMS, sess.TimeLimitMs)
		}
	}

	return scoreAndExplainResponse{
		QuestionID:  q.ID,
		IsCorrect:   result.IsCorrect,
		BaseScore:   result.BaseScore,
		FinalScore:  final,
		Explanation: q.AnswerSchema.Explanation,
	}, nil
}
