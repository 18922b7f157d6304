package tools

import (
	"context"
	"encoding/json"

	"github.com/skillforge/skillforge/ent"
	"github.com/skillforge/skillforge/ent/profilesurvey"
)

// profileResponse is the tool-visible shape of a profile survey.
type profileResponse struct {
	SurveyID  string   `json:"survey_id"`
	SelfLevel string   `json:"self_level"`
	Years     int      `json:"years"`
	JobRole   string   `json:"job_role,omitempty"`
	Duty      string   `json:"duty,omitempty"`
	Interests []string `json:"interests"`
}

// getUserProfile returns the survey bound to this run, falling back to the
// user's latest survey when the bound one is gone.
func (r *Registry) getUserProfile(ctx context.Context, _ json.RawMessage) (any, *toolError) {
	survey, err := r.client.ProfileSurvey.Get(ctx, r.surveyID)
	if ent.IsNotFound(err) {
		survey, err = r.client.ProfileSurvey.Query().
			Where(profilesurvey.UserID(r.userID)).
			Order(ent.Desc(profilesurvey.FieldSubmittedAt)).
			First(ctx)
	}
	if ent.IsNotFound(err) {
		return nil, errNotFound("no profile survey for user %s", r.userID)
	}
	if err != nil {
		return nil, errStore(err)
	}

	return profileResponse{
		SurveyID:  survey.ID,
		SelfLevel: string(survey.SelfLevel),
		Years:     survey.Years,
		JobRole:   survey.JobRole,
		Duty:      survey.Duty,
		Interests: survey.Interests,
	}, nil
}
