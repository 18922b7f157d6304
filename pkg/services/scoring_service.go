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
	"github.com/skillforge/skillforge/ent/roundresult"
	"github.com/skillforge/skillforge/pkg/models"
	"github.com/skillforge/skillforge/pkg/scoring"
)

// ScoringService runs the batch scoring pipeline: it scores every stored
// answer, treats unanswered questions as zero, writes the RoundResult, and
// auto-completes the session when every question has a stored answer, all in
// one transaction. Scoring is idempotent: the unique constraint on
// round_results.session_id makes the second scorer lose the race and return
// the first one's result.
type ScoringService struct {
	client *ent.Client
}

// NewScoringService creates a new ScoringService
func NewScoringService(client *ent.Client) *ScoringService {
	return &ScoringService{client: client}
}

// ScoreRound scores a whole session. Repeat calls keep the stored aggregate,
// but still score answers saved after the first call and apply the
// completion rule to them.
func (s *ScoringService) ScoreRound(httpCtx context.Context, sessionID string) (*models.RoundScore, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 30*time.Second)
	defer cancel()

	// A stored result short-circuits the aggregate, not the unscored scan.
	if existing, err := s.storedResult(ctx, sessionID); err == nil {
		completed, err := s.settleLateAnswers(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		existing.AutoCompleted = completed
		return existing, nil
	} else if err != ErrNotFound {
		return nil, err
	}

	score, err := s.scoreInTx(ctx, sessionID)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost the race to a concurrent scorer.
			return s.storedResult(ctx, sessionID)
		}
		return nil, err
	}
	return score, nil
}

// settleLateAnswers scores answers that arrived after the round result was
// written. The stored aggregate stays untouched; only per-answer verdicts
// move, and the session completes once every question has a scored answer.
func (s *ScoringService) settleLateAnswers(ctx context.Context, sessionID string) (bool, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	sess, err := tx.AssessmentSession.Get(ctx, sessionID)
	if ent.IsNotFound(err) {
		return false, ErrNotFound
	}
	if err != nil {
		return false, fmt.Errorf("failed to get session: %w", err)
	}
	if sess.Status == assessmentsession.StatusCompleted {
		return false, nil
	}

	questions, err := tx.Question.Query().
		Where(question.SessionID(sessionID)).
		All(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load questions: %w", err)
	}
	answers, err := tx.AttemptAnswer.Query().
		Where(attemptanswer.SessionID(sessionID)).
		All(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load answers: %w", err)
	}
	byQuestion := make(map[string]*ent.AttemptAnswer, len(answers))
	for _, a := range answers {
		byQuestion[a.QuestionID] = a
	}

	elapsed := ComputeTimeStatus(sess, time.Now()).ElapsedMS

	answeredCount := 0
	for _, q := range questions {
		answer, ok := byQuestion[q.ID]
		if !ok {
			continue
		}
		answeredCount++
		if answer.IsCorrect != nil {
			continue
		}
		result := scoring.Score(q.AnswerSchema, models.ItemType(q.ItemType), map[string]any(answer.UserAnswer))
		final := scoring.ApplyTimePenalty(result.BaseScore, elapsed, sess.TimeLimitMs)
		if _, err := tx.AttemptAnswer.UpdateOneID(answer.ID).
			SetIsCorrect(result.IsCorrect).
			SetScore(final).
			Save(ctx); err != nil {
			return false, fmt.Errorf("failed to store answer score: %w", err)
		}
	}

	completed := false
	if len(questions) > 0 && answeredCount == len(questions) {
		if _, err := tx.AssessmentSession.UpdateOneID(sessionID).
			SetStatus(assessmentsession.StatusCompleted).
			ClearPausedAt().
			Save(ctx); err != nil {
			return false, fmt.Errorf("failed to complete session: %w", err)
		}
		completed = true
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return completed, nil
}

// storedResult loads an existing round result.
func (s *ScoringService) storedResult(ctx context.Context, sessionID string) (*models.RoundScore, error) {
	res, err := s.client.RoundResult.Query().
		Where(roundresult.SessionID(sessionID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query round result: %w", err)
	}
	return &models.RoundScore{
		SessionID:       res.SessionID,
		RoundIndex:      res.RoundIndex,
		Score:           res.Score,
		CorrectCount:    res.CorrectCount,
		TotalCount:      res.TotalCount,
		WrongCategories: res.WrongCategories,
		AutoCompleted:   false,
		CreatedAt:       res.CreatedAt,
	}, nil
}

func (s *ScoringService) scoreInTx(ctx context.Context, sessionID string) (*models.RoundScore, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	sess, err := tx.AssessmentSession.Get(ctx, sessionID)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	questions, err := tx.Question.Query().
		Where(question.SessionID(sessionID)).
		Order(ent.Asc(question.FieldOrdinal)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, NewValidationError("session_id", "session has no questions to score")
	}

	answers, err := tx.AttemptAnswer.Query().
		Where(attemptanswer.SessionID(sessionID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load answers: %w", err)
	}
	byQuestion := make(map[string]*ent.AttemptAnswer, len(answers))
	for _, a := range answers {
		byQuestion[a.QuestionID] = a
	}

	now := time.Now()
	elapsed := ComputeTimeStatus(sess, now).ElapsedMS

	var totalScore float64
	correctCount := 0
	answeredCount := 0
	wrongCategories := make(map[string]int)

	for _, q := range questions {
		answer, ok := byQuestion[q.ID]
		if !ok {
			// Unanswered questions count against the total and the category.
			wrongCategories[q.Category]++
			continue
		}
		answeredCount++

		result := scoring.Score(q.AnswerSchema, models.ItemType(q.ItemType), map[string]any(answer.UserAnswer))
		final := scoring.ApplyTimePenalty(result.BaseScore, elapsed, sess.TimeLimitMs)

		if _, err := tx.AttemptAnswer.UpdateOneID(answer.ID).
			SetIsCorrect(result.IsCorrect).
			SetScore(final).
			Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to store answer score: %w", err)
		}

		totalScore += final
		if result.IsCorrect {
			correctCount++
		} else {
			wrongCategories[q.Category]++
		}
	}

	roundScore := totalScore / float64(len(questions))

	res, err := tx.RoundResult.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetRoundIndex(sess.RoundIndex).
		SetScore(roundScore).
		SetCorrectCount(correctCount).
		SetTotalCount(len(questions)).
		SetWrongCategories(wrongCategories).
		Save(ctx)
	if err != nil {
		// Constraint errors bubble up so ScoreRound can return the winner's row.
		return nil, err
	}

	// Only a fully answered round finalizes the session; a partial score
	// leaves it open so the user can answer the rest.
	autoCompleted := false
	if answeredCount == len(questions) && sess.Status != assessmentsession.StatusCompleted {
		if _, err := tx.AssessmentSession.UpdateOneID(sessionID).
			SetStatus(assessmentsession.StatusCompleted).
			ClearPausedAt().
			Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to complete session: %w", err)
		}
		autoCompleted = true
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &models.RoundScore{
		SessionID:       sessionID,
		RoundIndex:      sess.RoundIndex,
		Score:           roundScore,
		CorrectCount:    correctCount,
		TotalCount:      len(questions),
		WrongCategories: wrongCategories,
		AutoCompleted:   autoCompleted,
		CreatedAt:       res.CreatedAt,
	}, nil
}

// ScoreAnswer scores one stored answer for immediate feedback. The answer is
// read from the store, never taken from the caller, and no verdict is
// persisted; the batch pipeline remains authoritative.
func (s *ScoringService) ScoreAnswer(ctx context.Context, sessionID, questionID string) (*models.AnswerScore, string, error) {
	if sessionID == "" {
		return nil, "", NewValidationError("session_id", "required")
	}
	if questionID == "" {
		return nil, "", NewValidationError("question_id", "required")
	}

	q, err := s.client.Question.Query().
		Where(
			question.ID(questionID),
			question.SessionID(sessionID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, "", fmt.Errorf("question %s in session %s: %w", questionID, sessionID, ErrNotFound)
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to get question: %w", err)
	}

	answer, err := s.client.AttemptAnswer.Query().
		Where(
			attemptanswer.SessionID(sessionID),
			attemptanswer.QuestionID(questionID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, "", fmt.Errorf("no saved answer for question %s: %w", questionID, ErrNotFound)
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to get answer: %w", err)
	}

	sess, err := s.client.AssessmentSession.Get(ctx, sessionID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get session: %w", err)
	}

	result := scoring.Score(q.AnswerSchema, models.ItemType(q.ItemType), map[string]any(answer.UserAnswer))
	elapsed := ComputeTimeStatus(sess, time.Now()).ElapsedMS
	final := scoring.ApplyTimePenalty(result.BaseScore, elapsed, sess.TimeLimitMs)

	return &models.AnswerScore{
		QuestionID: q.ID,
		IsCorrect:  result.IsCorrect,
		Score:      result.BaseScore,
		FinalScore: final,
		ScoredAt:   time.Now(),
	}, q.AnswerSchema.Explanation, nil
}

// DeriveAdaptiveInput assembles the deriver's input from a scored session.
func (s *ScoringService) DeriveAdaptiveInput(ctx context.Context, sessionID string) (*AdaptiveSource, error) {
	sess, err := s.client.AssessmentSession.Get(ctx, sessionID)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	score, err := s.storedResult(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	questions, err := s.client.Question.Query().
		Where(question.SessionID(sessionID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}
	answers, err := s.client.AttemptAnswer.Query().
		Where(attemptanswer.SessionID(sessionID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load answers: %w", err)
	}
	correctByQuestion := make(map[string]bool, len(answers))
	for _, a := range answers {
		if a.IsCorrect != nil {
			correctByQuestion[a.QuestionID] = *a.IsCorrect
		}
	}

	src := &AdaptiveSource{
		Session: sess,
		Score:   score,
	}
	difficultySum := 0
	for _, q := range questions {
		difficultySum += q.Difficulty
		if models.ItemType(q.ItemType) == models.ItemTypeShortAnswer {
			src.ShortAnswerTotal++
			if correctByQuestion[q.ID] {
				src.ShortAnswerCorrect++
			}
		}
	}
	if len(questions) > 0 {
		src.MeanDifficulty = difficultySum / len(questions)
	}
	return src, nil
}

// AdaptiveSource is the scored-round data the generation service feeds into
// the adaptive deriver.
type AdaptiveSource struct {
	Session            *ent.AssessmentSession
	Score              *models.RoundScore
	MeanDifficulty     int
	ShortAnswerTotal   int
	ShortAnswerCorrect int
}
