package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skillforge/skillforge/ent"
	"github.com/skillforge/skillforge/ent/profilesurvey"
	"github.com/skillforge/skillforge/pkg/models"
)

// SurveyService manages profile survey intake. Surveys are immutable; a
// re-take creates a new row and the newest one wins.
type SurveyService struct {
	client *ent.Client
}

// NewSurveyService creates a new SurveyService
func NewSurveyService(client *ent.Client) *SurveyService {
	return &SurveyService{client: client}
}

// CreateSurvey validates and stores a new profile survey.
func (s *SurveyService) CreateSurvey(httpCtx context.Context, req models.CreateSurveyRequest) (*ent.ProfileSurvey, error) {
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if !req.SelfLevel.Valid() {
		return nil, NewValidationError("self_level", "must be one of beginner, intermediate, advanced")
	}
	if req.Years < 0 {
		return nil, NewValidationError("years", "must be >= 0")
	}
	interests := make([]string, 0, len(req.Interests))
	for _, tag := range req.Interests {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" {
			interests = append(interests, tag)
		}
	}
	if len(interests) == 0 {
		return nil, NewValidationError("interests", "at least one interest tag is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	survey, err := s.client.ProfileSurvey.Create().
		SetID(uuid.New().String()).
		SetUserID(req.UserID).
		SetSelfLevel(profilesurvey.SelfLevel(req.SelfLevel)).
		SetYears(req.Years).
		SetJobRole(strings.TrimSpace(req.JobRole)).
		SetDuty(strings.TrimSpace(req.Duty)).
		SetInterests(interests).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create survey: %w", err)
	}
	return survey, nil
}

// GetSurvey fetches one survey by ID.
func (s *SurveyService) GetSurvey(ctx context.Context, surveyID string) (*ent.ProfileSurvey, error) {
	survey, err := s.client.ProfileSurvey.Get(ctx, surveyID)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get survey: %w", err)
	}
	return survey, nil
}

// LatestSurvey fetches the user's most recently submitted survey.
func (s *SurveyService) LatestSurvey(ctx context.Context, userID string) (*ent.ProfileSurvey, error) {
	survey, err := s.client.ProfileSurvey.Query().
		Where(profilesurvey.UserID(userID)).
		Order(ent.Desc(profilesurvey.FieldSubmittedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest survey: %w", err)
	}
	return survey, nil
}
