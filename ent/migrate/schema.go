// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssessmentSessionsColumns holds the columns for the "assessment_sessions" table.
	AssessmentSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "round_index", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"in_progress", "paused", "completed"}, Default: "in_progress"},
		{Name: "time_limit_ms", Type: field.TypeInt64},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "paused_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "survey_id", Type: field.TypeString},
	}
	// AssessmentSessionsTable holds the schema information for the "assessment_sessions" table.
	AssessmentSessionsTable = &schema.Table{
		Name:       "assessment_sessions",
		Columns:    AssessmentSessionsColumns,
		PrimaryKey: []*schema.Column{AssessmentSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "assessment_sessions_profile_surveys_sessions",
				Columns:    []*schema.Column{AssessmentSessionsColumns[8]},
				RefColumns: []*schema.Column{ProfileSurveysColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "assessmentsession_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{AssessmentSessionsColumns[1], AssessmentSessionsColumns[3]},
			},
			{
				Name:    "assessmentsession_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AssessmentSessionsColumns[1], AssessmentSessionsColumns[7]},
			},
			{
				Name:    "assessmentsession_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{AssessmentSessionsColumns[3], AssessmentSessionsColumns[7]},
			},
		},
	}
	// AttemptAnswersColumns holds the columns for the "attempt_answers" table.
	AttemptAnswersColumns = []*schema.Column{
		{Name: "answer_id", Type: field.TypeString, Unique: true},
		{Name: "question_id", Type: field.TypeString},
		{Name: "user_answer", Type: field.TypeJSON},
		{Name: "response_time_ms", Type: field.TypeInt64},
		{Name: "is_correct", Type: field.TypeBool, Nullable: true},
		{Name: "score", Type: field.TypeFloat64, Nullable: true},
		{Name: "saved_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// AttemptAnswersTable holds the schema information for the "attempt_answers" table.
	AttemptAnswersTable = &schema.Table{
		Name:       "attempt_answers",
		Columns:    AttemptAnswersColumns,
		PrimaryKey: []*schema.Column{AttemptAnswersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "attempt_answers_assessment_sessions_attempt_answers",
				Columns:    []*schema.Column{AttemptAnswersColumns[8]},
				RefColumns: []*schema.Column{AssessmentSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "attemptanswer_session_id_question_id",
				Unique:  true,
				Columns: []*schema.Column{AttemptAnswersColumns[8], AttemptAnswersColumns[1]},
			},
		},
	}
	// ProfileSurveysColumns holds the columns for the "profile_surveys" table.
	ProfileSurveysColumns = []*schema.Column{
		{Name: "survey_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "self_level", Type: field.TypeEnum, Enums: []string{"beginner", "intermediate", "advanced"}},
		{Name: "years", Type: field.TypeInt},
		{Name: "job_role", Type: field.TypeString, Nullable: true},
		{Name: "duty", Type: field.TypeString, Nullable: true},
		{Name: "interests", Type: field.TypeJSON},
		{Name: "submitted_at", Type: field.TypeTime},
	}
	// ProfileSurveysTable holds the schema information for the "profile_surveys" table.
	ProfileSurveysTable = &schema.Table{
		Name:       "profile_surveys",
		Columns:    ProfileSurveysColumns,
		PrimaryKey: []*schema.Column{ProfileSurveysColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "profilesurvey_user_id_submitted_at",
				Unique:  false,
				Columns: []*schema.Column{ProfileSurveysColumns[1], ProfileSurveysColumns[7]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "question_id", Type: field.TypeString, Unique: true},
		{Name: "ordinal", Type: field.TypeInt},
		{Name: "item_type", Type: field.TypeEnum, Enums: []string{"multiple_choice", "true_false", "short_answer"}},
		{Name: "stem", Type: field.TypeString, Size: 2147483647},
		{Name: "choices", Type: field.TypeJSON, Nullable: true},
		{Name: "answer_schema", Type: field.TypeJSON},
		{Name: "difficulty", Type: field.TypeInt},
		{Name: "category", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "questions_assessment_sessions_questions",
				Columns:    []*schema.Column{QuestionsColumns[9]},
				RefColumns: []*schema.Column{AssessmentSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "question_session_id_ordinal",
				Unique:  true,
				Columns: []*schema.Column{QuestionsColumns[9], QuestionsColumns[1]},
			},
		},
	}
	// RoundResultsColumns holds the columns for the "round_results" table.
	RoundResultsColumns = []*schema.Column{
		{Name: "result_id", Type: field.TypeString, Unique: true},
		{Name: "round_index", Type: field.TypeInt},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "correct_count", Type: field.TypeInt},
		{Name: "total_count", Type: field.TypeInt},
		{Name: "wrong_categories", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true},
	}
	// RoundResultsTable holds the schema information for the "round_results" table.
	RoundResultsTable = &schema.Table{
		Name:       "round_results",
		Columns:    RoundResultsColumns,
		PrimaryKey: []*schema.Column{RoundResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "round_results_assessment_sessions_round_result",
				Columns:    []*schema.Column{RoundResultsColumns[7]},
				RefColumns: []*schema.Column{AssessmentSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "roundresult_round_index",
				Unique:  false,
				Columns: []*schema.Column{RoundResultsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssessmentSessionsTable,
		AttemptAnswersTable,
		ProfileSurveysTable,
		QuestionsTable,
		RoundResultsTable,
	}
)

func init() {
	AssessmentSessionsTable.ForeignKeys[0].RefTable = ProfileSurveysTable
	AttemptAnswersTable.ForeignKeys[0].RefTable = AssessmentSessionsTable
	QuestionsTable.ForeignKeys[0].RefTable = AssessmentSessionsTable
	RoundResultsTable.ForeignKeys[0].RefTable = AssessmentSessionsTable
}
