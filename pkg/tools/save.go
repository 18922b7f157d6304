package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/skillforge/skillforge/ent"
	"github.com/skillforge/skillforge/ent/assessmentsession"
	"github.com/skillforge/skillforge/ent/question"
	"github.com/skillforge/skillforge/pkg/models"
)

// ErrCodeQualityFailed is returned when a draft fails quality validation.
const ErrCodeQualityFailed = "QUALITY_FAILED"

type saveQuestionArgs struct {
	Ordinal      int      `json:"ordinal"`
	Stem         string   `json:"stem"`
	ItemType     string   `json:"item_type"`
	Choices      []string `json:"choices"`
	AnswerSchema any      `json:"answer_schema"`
	Difficulty   int      `json:"difficulty"`
	Category     string   `json:"category"`
}

type saveQuestionResponse struct {
	QuestionID string `json:"question_id"`
	Ordinal    int    `json:"ordinal"`
	Replaced   bool   `json:"replaced"`
}

// saveGeneratedQuestion persists a validated question at an ordinal within
// the current session. Re-saving the same ordinal replaces the earlier row,
// so agent retries converge instead of duplicating.
func (r *Registry) saveGeneratedQuestion(ctx context.Context, args json.RawMessage) (any, *toolError) {
	var req saveQuestionArgs
	if terr := decodeArgs(args, &req); terr != nil {
		return nil, terr
	}
	if req.Ordinal < 1 {
		return nil, errBadInput("ordinal must be >= 1")
	}

	raw := map[string]any{
		"stem":          req.Stem,
		"item_type":     req.ItemType,
		"difficulty":    float64(req.Difficulty),
		"category":      req.Category,
		"answer_schema": req.AnswerSchema,
	}
	if len(req.Choices) > 0 {
		raw["choices"] = req.Choices
	}
	report := EvaluateQuality(raw)
	if !report.Passed {
		return nil, &toolError{
			Code: ErrCodeQualityFailed,
			Message: fmt.Sprintf("draft failed quality validation (score %.2f, recommendation %s): %s",
				report.FinalScore, report.Recommendation, strings.Join(report.Issues, "; ")),
		}
	}

	itemType := models.ItemType(req.ItemType)
	schema, err := models.NormalizeAnswerSchema(req.AnswerSchema, itemType, "")
	if err != nil {
		return nil, errBadInput("answer_schema: %s", err)
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, errStore(err)
	}
	defer tx.Rollback()

	sess, err := tx.AssessmentSession.Get(ctx, r.sessionID)
	if ent.IsNotFound(err) {
		return nil, errNotFound("session %s not found", r.sessionID)
	}
	if err != nil {
		return nil, errStore(err)
	}
	if sess.Status == assessmentsession.StatusCompleted {
		return nil, &toolError{
			Code:    ErrCodeSessionTerminal,
			Message: "session is completed; questions can no longer be added",
		}
	}

	// Question fields are immutable, so "upsert" is delete-then-create.
	deleted, err := tx.Question.Delete().
		Where(
			question.SessionID(r.sessionID),
			question.Ordinal(req.Ordinal),
		).
		Exec(ctx)
	if err != nil {
		return nil, errStore(err)
	}

	questionID := uuid.New().String()
	builder := tx.Question.Create().
		SetID(questionID).
		SetSessionID(r.sessionID).
		SetOrdinal(req.Ordinal).
		SetItemType(question.ItemType(itemType)).
		SetStem(strings.TrimSpace(req.Stem)).
		SetAnswerSchema(schema).
		SetDifficulty(req.Difficulty).
		SetCategory(strings.TrimSpace(req.Category))
	if itemType == models.ItemTypeMultipleChoice {
		builder.SetChoices(req.Choices)
	}
	if _, err := builder.Save(ctx); err != nil {
		return nil, errStore(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, errStore(err)
	}

	return saveQuestionResponse{
		QuestionID: questionID,
		Ordinal:    req.Ordinal,
		Replaced:   deleted > 0,
	}, nil
}
