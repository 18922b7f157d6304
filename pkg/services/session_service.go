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

// SessionService manages the assessment session lifecycle:
// in_progress <-> paused, and the terminal completed state.
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// OpenSession creates a fresh in_progress session for a round.
// started_at stays nil until the first autosave arrives.
func (s *SessionService) OpenSession(httpCtx context.Context, userID, surveyID string, roundIndex int, timeLimitMS int64) (*ent.AssessmentSession, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if surveyID == "" {
		return nil, NewValidationError("survey_id", "required")
	}
	if roundIndex < 1 {
		return nil, NewValidationError("round", "must be >= 1")
	}
	if timeLimitMS <= 0 {
		return nil, NewValidationError("time_limit_ms", "must be > 0")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	sess, err := s.client.AssessmentSession.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetSurveyID(surveyID).
		SetRoundIndex(roundIndex).
		SetStatus(assessmentsession.StatusInProgress).
		SetTimeLimitMs(timeLimitMS).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("survey %s: %w", surveyID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return sess, nil
}

// GetSession fetches one session by ID.
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*ent.AssessmentSession, error) {
	sess, err := s.client.AssessmentSession.Get(ctx, sessionID)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return sess, nil
}

// PauseSession transitions in_progress -> paused.
func (s *SessionService) PauseSession(ctx context.Context, sessionID string) (*ent.AssessmentSession, error) {
	return s.transition(ctx, sessionID, func(_ context.Context, _ *ent.Tx, sess *ent.AssessmentSession, upd *ent.AssessmentSessionUpdateOne) error {
		switch sess.Status {
		case assessmentsession.StatusCompleted:
			return ErrSessionTerminal
		case assessmentsession.StatusPaused:
			return ErrPreconditionFailed
		}
		upd.SetStatus(assessmentsession.StatusPaused).
			SetPausedAt(time.Now())
		return nil
	})
}

// ResumeSession transitions paused -> in_progress. Paused time is excluded
// from the elapsed clock by shifting started_at forward by the pause length.
func (s *SessionService) ResumeSession(ctx context.Context, sessionID string) (*ent.AssessmentSession, error) {
	return s.transition(ctx, sessionID, func(_ context.Context, _ *ent.Tx, sess *ent.AssessmentSession, upd *ent.AssessmentSessionUpdateOne) error {
		switch sess.Status {
		case assessmentsession.StatusCompleted:
			return ErrSessionTerminal
		case assessmentsession.StatusInProgress:
			return ErrPreconditionFailed
		}
		if sess.StartedAt != nil && sess.PausedAt != nil {
			shifted := sess.StartedAt.Add(time.Since(*sess.PausedAt))
			upd.SetStartedAt(shifted)
		}
		upd.SetStatus(assessmentsession.StatusInProgress).
			ClearPausedAt()
		return nil
	})
}

// CompleteSession transitions any non-terminal status -> completed. An
// explicit complete requires every question to have a saved answer; scoring
// handles the auto-complete path itself.
func (s *SessionService) CompleteSession(ctx context.Context, sessionID string) (*ent.AssessmentSession, error) {
	return s.transition(ctx, sessionID, func(txCtx context.Context, tx *ent.Tx, sess *ent.AssessmentSession, upd *ent.AssessmentSessionUpdateOne) error {
		if sess.Status == assessmentsession.StatusCompleted {
			return ErrSessionTerminal
		}

		questionCount, err := tx.Question.Query().
			Where(question.SessionID(sess.ID)).
			Count(txCtx)
		if err != nil {
			return fmt.Errorf("failed to count questions: %w", err)
		}
		answerCount, err := tx.AttemptAnswer.Query().
			Where(attemptanswer.SessionID(sess.ID)).
			Count(txCtx)
		if err != nil {
			return fmt.Errorf("failed to count answers: %w", err)
		}
		if answerCount < questionCount {
			return fmt.Errorf("%d of %d questions unanswered: %w",
				questionCount-answerCount, questionCount, ErrPreconditionFailed)
		}

		upd.SetStatus(assessmentsession.StatusCompleted).
			ClearPausedAt()
		return nil
	})
}

// transition loads a session, applies the mutation rule, and saves. The rule
// runs inside the transaction so it can consult related rows.
func (s *SessionService) transition(
	httpCtx context.Context,
	sessionID string,
	apply func(context.Context, *ent.Tx, *ent.AssessmentSession, *ent.AssessmentSessionUpdateOne) error,
) (*ent.AssessmentSession, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

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

	upd := tx.AssessmentSession.UpdateOneID(sessionID)
	if err := apply(ctx, tx, sess, upd); err != nil {
		return nil, err
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return updated, nil
}

// TimeStatus reports a session's position against its time limit. The clock
// starts at the first autosave and freezes while paused.
func (s *SessionService) TimeStatus(ctx context.Context, sessionID string) (*models.TimeStatus, error) {
	sess, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return ComputeTimeStatus(sess, time.Now()), nil
}

// ComputeTimeStatus derives the time status at a given instant.
func ComputeTimeStatus(sess *ent.AssessmentSession, now time.Time) *models.TimeStatus {
	var elapsed int64
	switch {
	case sess.StartedAt == nil:
		elapsed = 0
	case sess.Status == assessmentsession.StatusPaused && sess.PausedAt != nil:
		elapsed = sess.PausedAt.Sub(*sess.StartedAt).Milliseconds()
	default:
		elapsed = now.Sub(*sess.StartedAt).Milliseconds()
	}
	if elapsed < 0 {
		elapsed = 0
	}

	remaining := sess.TimeLimitMs - elapsed
	if remaining < 0 {
		remaining = 0
	}
	return &models.TimeStatus{
		ElapsedMS:   elapsed,
		RemainingMS: remaining,
		Exceeded:    elapsed > sess.TimeLimitMs,
	}
}

// ResumableSession bundles everything a client needs to restore a session.
type ResumableSession struct {
	Session   *ent.AssessmentSession `json:"session"`
	Questions []*ent.Question        `json:"questions"`
	Answers   []*ent.AttemptAnswer   `json:"answers"`
	Time      *models.TimeStatus     `json:"time"`
}

// ResumeLatest finds the user's newest non-completed session and returns it
// with its questions and saved answers.
func (s *SessionService) ResumeLatest(ctx context.Context, userID string) (*ResumableSession, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "required")
	}

	sess, err := s.client.AssessmentSession.Query().
		Where(
			assessmentsession.UserID(userID),
			assessmentsession.StatusNEQ(assessmentsession.StatusCompleted),
		).
		Order(ent.Desc(assessmentsession.FieldCreatedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query resumable session: %w", err)
	}

	questions, err := s.client.Question.Query().
		Where(question.SessionID(sess.ID)).
		Order(ent.Asc(question.FieldOrdinal)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}

	answers, err := s.client.AttemptAnswer.Query().
		Where(attemptanswer.SessionID(sess.ID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load answers: %w", err)
	}

	return &ResumableSession{
		Session:   sess,
		Questions: questions,
		Answers:   answers,
		Time:      ComputeTimeStatus(sess, time.Now()),
	}, nil
}

// SessionQuestions returns a session's questions in ordinal order.
func (s *SessionService) SessionQuestions(ctx context.Context, sessionID string) ([]*ent.Question, error) {
	questions, err := s.client.Question.Query().
		Where(question.SessionID(sessionID)).
		Order(ent.Asc(question.FieldOrdinal)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}
	return questions, nil
}

// DeleteAbandonedSessions removes non-completed sessions older than the
// cutoff, cascading to their questions and answers. Completed sessions are
// history and never touched.
func (s *SessionService) DeleteAbandonedSessions(httpCtx context.Context, olderThan time.Duration) (int, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 30*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-olderThan)
	count, err := s.client.AssessmentSession.Delete().
		Where(
			assessmentsession.StatusNEQ(assessmentsession.StatusCompleted),
			assessmentsession.CreatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete abandoned sessions: %w", err)
	}
	return count, nil
}

// DeleteSession removes a session and, via cascade, its questions, answers,
// and round result.
func (s *SessionService) DeleteSession(httpCtx context.Context, sessionID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	err := s.client.AssessmentSession.DeleteOneID(sessionID).Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
