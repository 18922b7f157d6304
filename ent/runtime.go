// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/skillforge/skillforge/ent/assessmentsession"
	"github.com/skillforge/skillforge/ent/attemptanswer"
	"github.com/skillforge/skillforge/ent/profilesurvey"
	"github.com/skillforge/skillforge/ent/question"
	"github.com/skillforge/skillforge/ent/roundresult"
	"github.com/skillforge/skillforge/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmentsessionFields := schema.AssessmentSession{}.Fields()
	_ = assessmentsessionFields
	// assessmentsessionDescRoundIndex is the schema descriptor for round_index field.
	assessmentsessionDescRoundIndex := assessmentsessionFields[3].Descriptor()
	// assessmentsession.RoundIndexValidator is a validator for the "round_index" field. It is called by the builders before save.
	assessmentsession.RoundIndexValidator = assessmentsessionDescRoundIndex.Validators[0].(func(int) error)
	// assessmentsessionDescTimeLimitMs is the schema descriptor for time_limit_ms field.
	assessmentsessionDescTimeLimitMs := assessmentsessionFields[5].Descriptor()
	// assessmentsession.TimeLimitMsValidator is a validator for the "time_limit_ms" field. It is called by the builders before save.
	assessmentsession.TimeLimitMsValidator = assessmentsessionDescTimeLimitMs.Validators[0].(func(int64) error)
	// assessmentsessionDescCreatedAt is the schema descriptor for created_at field.
	assessmentsessionDescCreatedAt := assessmentsessionFields[8].Descriptor()
	// assessmentsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	assessmentsession.DefaultCreatedAt = assessmentsessionDescCreatedAt.Default.(func() time.Time)
	attemptanswerFields := schema.AttemptAnswer{}.Fields()
	_ = attemptanswerFields
	// attemptanswerDescResponseTimeMs is the schema descriptor for response_time_ms field.
	attemptanswerDescResponseTimeMs := attemptanswerFields[4].Descriptor()
	// attemptanswer.ResponseTimeMsValidator is a validator for the "response_time_ms" field. It is called by the builders before save.
	attemptanswer.ResponseTimeMsValidator = attemptanswerDescResponseTimeMs.Validators[0].(func(int64) error)
	// attemptanswerDescScore is the schema descriptor for score field.
	attemptanswerDescScore := attemptanswerFields[6].Descriptor()
	// attemptanswer.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	attemptanswer.ScoreValidator = func() func(float64) error {
		validators := attemptanswerDescScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(score float64) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// attemptanswerDescCreatedAt is the schema descriptor for created_at field.
	attemptanswerDescCreatedAt := attemptanswerFields[8].Descriptor()
	// attemptanswer.DefaultCreatedAt holds the default value on creation for the created_at field.
	attemptanswer.DefaultCreatedAt = attemptanswerDescCreatedAt.Default.(func() time.Time)
	profilesurveyFields := schema.ProfileSurvey{}.Fields()
	_ = profilesurveyFields
	// profilesurveyDescYears is the schema descriptor for years field.
	profilesurveyDescYears := profilesurveyFields[3].Descriptor()
	// profilesurvey.YearsValidator is a validator for the "years" field. It is called by the builders before save.
	profilesurvey.YearsValidator = profilesurveyDescYears.Validators[0].(func(int) error)
	// profilesurveyDescSubmittedAt is the schema descriptor for submitted_at field.
	profilesurveyDescSubmittedAt := profilesurveyFields[7].Descriptor()
	// profilesurvey.DefaultSubmittedAt holds the default value on creation for the submitted_at field.
	profilesurvey.DefaultSubmittedAt = profilesurveyDescSubmittedAt.Default.(func() time.Time)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescOrdinal is the schema descriptor for ordinal field.
	questionDescOrdinal := questionFields[2].Descriptor()
	// question.OrdinalValidator is a validator for the "ordinal" field. It is called by the builders before save.
	question.OrdinalValidator = questionDescOrdinal.Validators[0].(func(int) error)
	// questionDescStem is the schema descriptor for stem field.
	questionDescStem := questionFields[4].Descriptor()
	// question.StemValidator is a validator for the "stem" field. It is called by the builders before save.
	question.StemValidator = questionDescStem.Validators[0].(func(string) error)
	// questionDescDifficulty is the schema descriptor for difficulty field.
	questionDescDifficulty := questionFields[7].Descriptor()
	// question.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	question.DifficultyValidator = func() func(int) error {
		validators := questionDescDifficulty.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(difficulty int) error {
			for _, fn := range fns {
				if err := fn(difficulty); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// questionDescCategory is the schema descriptor for category field.
	questionDescCategory := questionFields[8].Descriptor()
	// question.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	question.CategoryValidator = questionDescCategory.Validators[0].(func(string) error)
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionFields[9].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	roundresultFields := schema.RoundResult{}.Fields()
	_ = roundresultFields
	// roundresultDescRoundIndex is the schema descriptor for round_index field.
	roundresultDescRoundIndex := roundresultFields[2].Descriptor()
	// roundresult.RoundIndexValidator is a validator for the "round_index" field. It is called by the builders before save.
	roundresult.RoundIndexValidator = roundresultDescRoundIndex.Validators[0].(func(int) error)
	// roundresultDescScore is the schema descriptor for score field.
	roundresultDescScore := roundresultFields[3].Descriptor()
	// roundresult.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	roundresult.ScoreValidator = func() func(float64) error {
		validators := roundresultDescScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(score float64) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// roundresultDescCorrectCount is the schema descriptor for correct_count field.
	roundresultDescCorrectCount := roundresultFields[4].Descriptor()
	// roundresult.CorrectCountValidator is a validator for the "correct_count" field. It is called by the builders before save.
	roundresult.CorrectCountValidator = roundresultDescCorrectCount.Validators[0].(func(int) error)
	// roundresultDescTotalCount is the schema descriptor for total_count field.
	roundresultDescTotalCount := roundresultFields[5].Descriptor()
	// roundresult.TotalCountValidator is a validator for the "total_count" field. It is called by the builders before save.
	roundresult.TotalCountValidator = roundresultDescTotalCount.Validators[0].(func(int) error)
	// roundresultDescCreatedAt is the schema descriptor for created_at field.
	roundresultDescCreatedAt := roundresultFields[7].Descriptor()
	// roundresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	roundresult.DefaultCreatedAt = roundresultDescCreatedAt.Default.(func() time.Time)
}
