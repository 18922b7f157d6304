package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillforge/skillforge/pkg/models"
	testdb "github.com/skillforge/skillforge/test/database"
)

func TestSurveyService_CreateSurvey(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSurveyService(client.Client)
	ctx := context.Background()

	t.Run("stores a valid survey", func(t *testing.T) {
		survey, err := svc.CreateSurvey(ctx, models.CreateSurveyRequest{
			UserID:    "user-1",
			SelfLevel: models.SelfLevelAdvanced,
			Years:     8,
			JobRole:   "  SRE  ",
			Duty:      "on-call and incident response",
			Interests: []string{"Kubernetes", " networking "},
		})
		require.NoError(t, err)
		assert.Equal(t, "user-1", survey.UserID)
		assert.Equal(t, "SRE", survey.JobRole)
		// Interest tags are normalized to lowercase.
		assert.Equal(t, []string{"kubernetes", "networking"}, survey.Interests)
		assert.False(t, survey.SubmittedAt.IsZero())
	})

	t.Run("validates fields", func(t *testing.T) {
		_, err := svc.CreateSurvey(ctx, models.CreateSurveyRequest{
			SelfLevel: models.SelfLevelBeginner,
			Interests: []string{"go"},
		})
		assert.True(t, IsValidationError(err), "user_id required")

		_, err = svc.CreateSurvey(ctx, models.CreateSurveyRequest{
			UserID:    "user-1",
			SelfLevel: "expert",
			Interests: []string{"go"},
		})
		assert.True(t, IsValidationError(err), "self_level must be known")

		_, err = svc.CreateSurvey(ctx, models.CreateSurveyRequest{
			UserID:    "user-1",
			SelfLevel: models.SelfLevelBeginner,
			Years:     -1,
			Interests: []string{"go"},
		})
		assert.True(t, IsValidationError(err), "years must be >= 0")

		_, err = svc.CreateSurvey(ctx, models.CreateSurveyRequest{
			UserID:    "user-1",
			SelfLevel: models.SelfLevelBeginner,
			Interests: []string{"  ", ""},
		})
		assert.True(t, IsValidationError(err), "interests must have a usable tag")
	})
}

func TestSurveyService_LatestSurvey(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewSurveyService(client.Client)
	ctx := context.Background()

	t.Run("no surveys", func(t *testing.T) {
		_, err := svc.LatestSurvey(ctx, "user-1")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("newest submission wins", func(t *testing.T) {
		_, err := svc.CreateSurvey(ctx, models.CreateSurveyRequest{
			UserID:    "user-1",
			SelfLevel: models.SelfLevelBeginner,
			Interests: []string{"go"},
		})
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)

		second, err := svc.CreateSurvey(ctx, models.CreateSurveyRequest{
			UserID:    "user-1",
			SelfLevel: models.SelfLevelIntermediate,
			Interests: []string{"go", "sql"},
		})
		require.NoError(t, err)

		latest, err := svc.LatestSurvey(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, second.ID, latest.ID)
	})

	t.Run("scoped per user", func(t *testing.T) {
		_, err := svc.LatestSurvey(ctx, "user-2")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
