package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/skillforge/skillforge/ent"
	"github.com/skillforge/skillforge/ent/question"
	"github.com/skillforge/skillforge/pkg/adaptive"
	"github.com/skillforge/skillforge/pkg/agent"
	"github.com/skillforge/skillforge/pkg/agent/controller"
	"github.com/skillforge/skillforge/pkg/agent/output"
	"github.com/skillforge/skillforge/pkg/agent/prompt"
	"github.com/skillforge/skillforge/pkg/models"
	"github.com/skillforge/skillforge/pkg/tools"
)

// GenerationConfig bounds a generation run.
type GenerationConfig struct {
	LLMModel        string
	Temperature     float32
	MaxTokens       int32
	MaxIterations   int           // ReAct iterations per attempt, default 10
	CallTimeout     time.Duration // per-LLM-call budget, default 30s
	RoundBudget     time.Duration // whole-round budget, default 90s
	MaxConcurrent   int64         // concurrent generation cap
	DefaultCount    int           // items per round when unspecified
	MinItems        int           // partial-acceptance floor, default 1
	MaxAttempts     int           // agent attempts per round, default 3
	TimeLimitMS     int64         // session time limit
	BackoffSchedule []time.Duration
}

// DefaultGenerationConfig returns the production defaults.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Temperature:     0.3,
		MaxIterations:   10,
		CallTimeout:     30 * time.Second,
		RoundBudget:     90 * time.Second,
		MaxConcurrent:   4,
		DefaultCount:    adaptive.DefaultCount,
		MinItems:        1,
		MaxAttempts:     3,
		TimeLimitMS:     10 * 60 * 1000,
		BackoffSchedule: []time.Duration{time.Second, 2 * time.Second},
	}
}

// GenerationService orchestrates item generation: it opens the session, runs
// the ReAct agent over the tool surface, reconciles converter output with
// what the agent saved, and enforces the partial-acceptance floor.
type GenerationService struct {
	client   *ent.Client
	llm      agent.LLMClient
	sessions *SessionService
	surveys  *SurveyService
	scoring  *ScoringService
	cfg      GenerationConfig

	// Caps concurrent runs; each run holds an LLM conversation and a
	// several-second transaction tail.
	sem *semaphore.Weighted
}

// NewGenerationService creates a new GenerationService
func NewGenerationService(
	client *ent.Client,
	llm agent.LLMClient,
	sessions *SessionService,
	surveys *SurveyService,
	scoring *ScoringService,
	cfg GenerationConfig,
) *GenerationService {
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 1
	}
	return &GenerationService{
		client:   client,
		llm:      llm,
		sessions: sessions,
		surveys:  surveys,
		scoring:  scoring,
		cfg:      cfg,
		sem:      semaphore.NewWeighted(cfg.MaxConcurrent),
	}
}

// GeneratedRound is a successful generation outcome.
type GeneratedRound struct {
	Session   *ent.AssessmentSession `json:"session"`
	Questions []*ent.Question        `json:"questions"`
	Partial   bool                   `json:"partial"`
	Attempts  int                    `json:"attempts"`
	Tokens    agent.TokenUsage       `json:"tokens"`
}

// GenerateRound opens a session and fills it with generated items.
// Fewer items than requested is a partial success as long as at least
// MinItems landed; zero items deletes the session and fails the round.
func (s *GenerationService) GenerateRound(ctx context.Context, req models.GenerateRoundRequest) (*GeneratedRound, error) {
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if req.Round < 1 {
		req.Round = 1
	}
	count := req.Count
	if count <= 0 {
		count = s.cfg.DefaultCount
	}
	if req.Adaptive != nil && req.Adaptive.Count > 0 {
		count = req.Adaptive.Count
	}

	survey, err := s.resolveSurvey(ctx, req)
	if err != nil {
		return nil, err
	}

	if !s.sem.TryAcquire(1) {
		return nil, ErrGenerationBusy
	}
	defer s.sem.Release(1)

	sess, err := s.sessions.OpenSession(ctx, req.UserID, survey.ID, req.Round, s.cfg.TimeLimitMS)
	if err != nil {
		return nil, err
	}

	runCtx, cancel := context.WithTimeout(ctx, s.cfg.RoundBudget)
	defer cancel()

	execCtx := s.buildExecutionContext(sess, survey, req, count)

	outcome, err := s.runWithRetries(runCtx, execCtx, count)
	if err != nil || len(outcome.questions) < s.cfg.MinItems {
		// Nothing usable: the empty session must not leak into resume flows.
		if delErr := s.sessions.DeleteSession(context.Background(), sess.ID); delErr != nil {
			slog.Error("failed to delete exhausted session",
				"session_id", sess.ID, "error", delErr)
		}
		if err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s", ErrGenerationExhausted, err)
		}
		return nil, ErrGenerationExhausted
	}

	slog.Info("generation round complete",
		"session_id", sess.ID,
		"round", req.Round,
		"requested", count,
		"saved", len(outcome.questions),
		"attempts", outcome.attempts,
		"total_tokens", outcome.tokens.TotalTokens)

	return &GeneratedRound{
		Session:   sess,
		Questions: outcome.questions,
		Partial:   len(outcome.questions) < count,
		Attempts:  outcome.attempts,
		Tokens:    outcome.tokens,
	}, nil
}

// GenerateAdaptiveRound derives the next round's parameters from a scored
// prior session, then generates round N+1.
func (s *GenerationService) GenerateAdaptiveRound(ctx context.Context, userID, priorSessionID string) (*GeneratedRound, error) {
	if priorSessionID == "" {
		return nil, NewValidationError("prior_session_id", "required")
	}

	src, err := s.scoring.DeriveAdaptiveInput(ctx, priorSessionID)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		userID = src.Session.UserID
	}
	if src.Session.UserID != userID {
		return nil, fmt.Errorf("session %s for user %s: %w", priorSessionID, userID, ErrNotFound)
	}

	survey, err := s.surveys.GetSurvey(ctx, src.Session.SurveyID)
	if err != nil {
		return nil, err
	}

	params := adaptive.Derive(adaptive.Input{
		SelfLevel:          models.SelfLevel(survey.SelfLevel),
		PriorDifficulty:    src.MeanDifficulty,
		Score:              src.Score.Score,
		WrongCategories:    src.Score.WrongCategories,
		Categories:         survey.Interests,
		ShortAnswerTotal:   src.ShortAnswerTotal,
		ShortAnswerCorrect: src.ShortAnswerCorrect,
		NextRound:          src.Session.RoundIndex + 1,
	})

	return s.GenerateRound(ctx, models.GenerateRoundRequest{
		UserID:   userID,
		SurveyID: survey.ID,
		Round:    src.Session.RoundIndex + 1,
		Count:    params.Count,
		Adaptive: &params,
	})
}

func (s *GenerationService) resolveSurvey(ctx context.Context, req models.GenerateRoundRequest) (*ent.ProfileSurvey, error) {
	if req.SurveyID != "" {
		return s.surveys.GetSurvey(ctx, req.SurveyID)
	}
	return s.surveys.LatestSurvey(ctx, req.UserID)
}

func (s *GenerationService) buildExecutionContext(
	sess *ent.AssessmentSession,
	survey *ent.ProfileSurvey,
	req models.GenerateRoundRequest,
	count int,
) *agent.ExecutionContext {
	return &agent.ExecutionContext{
		SessionID:  sess.ID,
		UserID:     sess.UserID,
		RoundIndex: sess.RoundIndex,
		Count:      count,
		Profile: agent.Profile{
			SelfLevel: models.SelfLevel(survey.SelfLevel),
			Years:     survey.Years,
			JobRole:   survey.JobRole,
			Duty:      survey.Duty,
			Interests: survey.Interests,
		},
		Adaptive: req.Adaptive,
		Domain:   req.Domain,
		Config: &agent.RunConfig{
			LLM: &agent.LLMConfig{
				Model:       s.cfg.LLMModel,
				Temperature: s.cfg.Temperature,
				MaxTokens:   s.cfg.MaxTokens,
			},
			MaxIterations:    s.cfg.MaxIterations,
			IterationTimeout: s.cfg.CallTimeout,
		},
		LLMClient:     s.llm,
		ToolExecutor:  tools.NewRegistry(s.client, sess.ID, sess.UserID, survey.ID),
		PromptBuilder: prompt.NewPromptBuilder(),
	}
}

// runOutcome is what the retry loop produced: the saved questions, how many
// attempts it took, and the token usage accumulated across them.
type runOutcome struct {
	questions []*ent.Question
	attempts  int
	tokens    agent.TokenUsage
}

// runWithRetries drives the agent up to MaxAttempts times, reconciling after
// each attempt. Retries stop as soon as enough items are saved.
func (s *GenerationService) runWithRetries(ctx context.Context, execCtx *agent.ExecutionContext, count int) (runOutcome, error) {
	ctrl := controller.NewReActController()
	outcome := runOutcome{}
	var lastErr error

	for attempt := 1; attempt <= s.cfg.MaxAttempts; attempt++ {
		outcome.attempts = attempt
		result, err := ctrl.Run(ctx, execCtx)
		if err != nil {
			lastErr = err
		} else {
			outcome.tokens.Add(result.TokensUsed)
			if result.Status == agent.RunStatusFailed && result.Error != nil {
				lastErr = result.Error
			}
			items, diag := output.Convert(result)
			if err := s.reconcile(ctx, execCtx.SessionID, items); err != nil {
				lastErr = err
			}
			if diag.UsedTranscriptFallback {
				slog.Warn("generation recovered items from transcript",
					"session_id", execCtx.SessionID, "attempt", attempt)
			}
		}

		saved, err := s.sessions.SessionQuestions(ctx, execCtx.SessionID)
		if err != nil {
			return outcome, err
		}
		outcome.questions = saved
		if len(saved) >= count || (attempt == s.cfg.MaxAttempts && len(saved) >= s.cfg.MinItems) {
			return outcome, nil
		}
		if len(saved) >= s.cfg.MinItems && ctx.Err() != nil {
			return outcome, nil
		}

		if attempt < s.cfg.MaxAttempts {
			if err := s.backoff(ctx, attempt); err != nil {
				saved, qerr := s.sessions.SessionQuestions(context.Background(), execCtx.SessionID)
				if qerr == nil && len(saved) >= s.cfg.MinItems {
					outcome.questions = saved
					return outcome, nil
				}
				return outcome, err
			}
			slog.Debug("retrying generation",
				"session_id", execCtx.SessionID, "attempt", attempt+1, "last_error", lastErr)
		}
	}

	saved, err := s.sessions.SessionQuestions(context.Background(), execCtx.SessionID)
	if err != nil {
		return outcome, err
	}
	outcome.questions = saved
	if len(saved) >= s.cfg.MinItems {
		return outcome, nil
	}
	if lastErr != nil {
		return outcome, lastErr
	}
	return outcome, nil
}

// backoff sleeps per the retry schedule, aborting on context cancellation.
func (s *GenerationService) backoff(ctx context.Context, attempt int) error {
	schedule := s.cfg.BackoffSchedule
	if len(schedule) == 0 {
		schedule = []time.Duration{time.Second, 2 * time.Second}
	}
	idx := attempt - 1
	if idx >= len(schedule) {
		idx = len(schedule) - 1
	}
	select {
	case <-time.After(schedule[idx]):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// reconcile persists converter items the agent never saved through the tool,
// appending them after the highest stored ordinal. Stems are matched
// case-insensitively to avoid duplicating tool-saved questions.
func (s *GenerationService) reconcile(httpCtx context.Context, sessionID string, items []models.GeneratedItem) error {
	if len(items) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := s.client.Question.Query().
		Where(question.SessionID(sessionID)).
		Order(ent.Asc(question.FieldOrdinal)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load existing questions: %w", err)
	}

	seen := make(map[string]bool, len(existing))
	nextOrdinal := 1
	for _, q := range existing {
		seen[normalizeStem(q.Stem)] = true
		if q.Ordinal >= nextOrdinal {
			nextOrdinal = q.Ordinal + 1
		}
	}

	for _, item := range items {
		key := normalizeStem(item.Stem)
		if seen[key] {
			continue
		}
		builder := s.client.Question.Create().
			SetID(uuid.New().String()).
			SetSessionID(sessionID).
			SetOrdinal(nextOrdinal).
			SetItemType(question.ItemType(item.ItemType)).
			SetStem(item.Stem).
			SetAnswerSchema(item.AnswerSchema).
			SetDifficulty(item.Difficulty).
			SetCategory(item.Category)
		if item.ItemType == models.ItemTypeMultipleChoice {
			builder.SetChoices(item.Choices)
		}
		if _, err := builder.Save(ctx); err != nil {
			if ent.IsConstraintError(err) {
				// A concurrent tool save took this ordinal.
				nextOrdinal++
				continue
			}
			return fmt.Errorf("failed to persist converted item: %w", err)
		}
		seen[key] = true
		nextOrdinal++
	}
	return nil
}

func normalizeStem(stem string) string {
	return strings.ToLower(strings.Join(strings.Fields(stem), " "))
}
