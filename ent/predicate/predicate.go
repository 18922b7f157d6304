// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AssessmentSession is the predicate function for assessmentsession builders.
type AssessmentSession func(*sql.Selector)

// AttemptAnswer is the predicate function for attemptanswer builders.
type AttemptAnswer func(*sql.Selector)

// ProfileSurvey is the predicate function for profilesurvey builders.
type ProfileSurvey func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// RoundResult is the predicate function for roundresult builders.
type RoundResult func(*sql.Selector)
