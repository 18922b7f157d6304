package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/skillforge/skillforge/ent"
	"github.com/skillforge/skillforge/ent/assessmentsession"
	"github.com/skillforge/skillforge/ent/attemptanswer"
	"github.com/skillforge/skillforge/ent/question"
	"github.com/skillforge/skillforge/pkg/models"
)

// AutosaveService persists in-flight answers. Saving is an upsert per
// (session, question); the last save wins and scoring reads whatever the
// final autosave left behind.
type AutosaveService struct {
	client *ent.Client
}

// NewAutosaveService creates a new AutosaveService
func NewAutosaveService(client *ent.Client) *AutosaveService {
	return &AutosaveService{client: client}
}

// AutosaveRequest is one autosave write.
type AutosaveRequest struct {
	SessionID      string         `json:"session_id"`
	QuestionID     string         `json:"question_id"`
	UserAnswer     map[string]any `json:"user_answer"`
	ResponseTimeMS int64          `json:"response_time_ms"`
}

// AutosaveResult reports what the save did.
type AutosaveResult struct {
	AnswerID   string             `json:"answer_id"`
	Updated    bool               `json:"updated"`
	AutoPaused bool               `json:"auto_paused"`
	Time       *models.TimeStatus `json:"time"`
}

// Autosave upserts one answer. The first autosave of a session starts its
// clock; an autosave past the deadline still lands but pauses the session in
// the same transaction.
func (s *AutosaveService) Autosave(httpCtx context.Context, req AutosaveRequest) (*AutosaveResult, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.QuestionID == "" {
		return nil, NewValidationError("question_id", "required")
	}
	// Answers must be objects; bare strings and arrays are rejected at the
	// boundary so the scorer only ever sees dict-shaped payloads.
	if req.UserAnswer == nil {
		return nil, NewValidationError("user_answer", "must be a JSON object")
	}
	if req.ResponseTimeMS < 0 {
		return nil, NewValidationError("response_time_ms", "must be >= 0")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	sess, err := tx.AssessmentSession.Get(ctx, req.SessionID)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	// Paused sessions still accept saves; only completed is terminal.
	if sess.Status == assessmentsession.StatusCompleted {
		return nil, ErrSessionTerminal
	}

	belongs, err := tx.Question.Query().
		Where(
			question.ID(req.QuestionID),
			question.SessionID(req.SessionID),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check question: %w", err)
	}
	if !belongs {
		return nil, fmt.Errorf("question %s in session %s: %w", req.QuestionID, req.SessionID, ErrNotFound)
	}

	now := time.Now()

	// First autosave starts the clock.
	if sess.StartedAt == nil {
		sess, err = tx.AssessmentSession.UpdateOneID(sess.ID).
			SetStartedAt(now).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to set started_at: %w", err)
		}
	}

	result := &AutosaveResult{}

	existing, err := tx.AttemptAnswer.Query().
		Where(
			attemptanswer.SessionID(req.SessionID),
			attemptanswer.QuestionID(req.QuestionID),
		).
		Only(ctx)
	switch {
	case err == nil:
		updated, err := tx.AttemptAnswer.UpdateOneID(existing.ID).
			SetUserAnswer(req.UserAnswer).
			SetResponseTimeMs(req.ResponseTimeMS).
			SetSavedAt(now).
			ClearIsCorrect().
			ClearScore().
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update answer: %w", err)
		}
		result.AnswerID = updated.ID
		result.Updated = true
	case ent.IsNotFound(err):
		created, err := tx.AttemptAnswer.Create().
			SetID(uuid.New().String()).
			SetSessionID(req.SessionID).
			SetQuestionID(req.QuestionID).
			SetUserAnswer(req.UserAnswer).
			SetResponseTimeMs(req.ResponseTimeMS).
			SetSavedAt(now).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create answer: %w", err)
		}
		result.AnswerID = created.ID
	default:
		return nil, fmt.Errorf("failed to query answer: %w", err)
	}

	// Past-deadline saves land, but the session pauses with them. An
	// already-paused session keeps its paused_at so the clock stays frozen.
	status := ComputeTimeStatus(sess, now)
	if status.Exceeded && sess.Status != assessmentsession.StatusPaused {
		if _, err := tx.AssessmentSession.UpdateOneID(sess.ID).
			SetStatus(assessmentsession.StatusPaused).
			SetPausedAt(now).
			Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to auto-pause session: %w", err)
		}
		result.AutoPaused = true
	}
	result.Time = status

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return result, nil
}
