// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/skillforge/skillforge/ent/assessmentsession"
	"github.com/skillforge/skillforge/ent/predicate"
	"github.com/skillforge/skillforge/ent/profilesurvey"
)

// ProfileSurveyUpdate is the builder for updating ProfileSurvey entities.
type ProfileSurveyUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileSurveyMutation
}

// Where appends a list predicates to the ProfileSurveyUpdate builder.
func (_u *ProfileSurveyUpdate) Where(ps ...predicate.ProfileSurvey) *ProfileSurveyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// AddSessionIDs adds the "sessions" edge to the AssessmentSession entity by IDs.
func (_u *ProfileSurveyUpdate) AddSessionIDs(ids ...string) *ProfileSurveyUpdate {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the AssessmentSession entity.
func (_u *ProfileSurveyUpdate) AddSessions(v ...*AssessmentSession) *ProfileSurveyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// Mutation returns the ProfileSurveyMutation object of the builder.
func (_u *ProfileSurveyUpdate) Mutation() *ProfileSurveyMutation {
	return _u.mutation
}

// ClearSessions clears all "sessions" edges to the AssessmentSession entity.
func (_u *ProfileSurveyUpdate) ClearSessions() *ProfileSurveyUpdate {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to AssessmentSession entities by IDs.
func (_u *ProfileSurveyUpdate) RemoveSessionIDs(ids ...string) *ProfileSurveyUpdate {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to AssessmentSession entities.
func (_u *ProfileSurveyUpdate) RemoveSessions(v ...*AssessmentSession) *ProfileSurveyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfileSurveyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileSurveyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfileSurveyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileSurveyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProfileSurveyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(profilesurvey.Table, profilesurvey.Columns, sqlgraph.NewFieldSpec(profilesurvey.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.JobRoleCleared() {
		_spec.ClearField(profilesurvey.FieldJobRole, field.TypeString)
	}
	if _u.mutation.DutyCleared() {
		_spec.ClearField(profilesurvey.FieldDuty, field.TypeString)
	}
	if _u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profilesurvey.SessionsTable,
			Columns: []string{profilesurvey.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assessmentsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profilesurvey.SessionsTable,
			Columns: []string{profilesurvey.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assessmentsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profilesurvey.SessionsTable,
			Columns: []string{profilesurvey.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assessmentsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profilesurvey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfileSurveyUpdateOne is the builder for updating a single ProfileSurvey entity.
type ProfileSurveyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileSurveyMutation
}

// AddSessionIDs adds the "sessions" edge to the AssessmentSession entity by IDs.
func (_u *ProfileSurveyUpdateOne) AddSessionIDs(ids ...string) *ProfileSurveyUpdateOne {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the AssessmentSession entity.
func (_u *ProfileSurveyUpdateOne) AddSessions(v ...*AssessmentSession) *ProfileSurveyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// Mutation returns the ProfileSurveyMutation object of the builder.
func (_u *ProfileSurveyUpdateOne) Mutation() *ProfileSurveyMutation {
	return _u.mutation
}

// ClearSessions clears all "sessions" edges to the AssessmentSession entity.
func (_u *ProfileSurveyUpdateOne) ClearSessions() *ProfileSurveyUpdateOne {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to AssessmentSession entities by IDs.
func (_u *ProfileSurveyUpdateOne) RemoveSessionIDs(ids ...string) *ProfileSurveyUpdateOne {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to AssessmentSession entities.
func (_u *ProfileSurveyUpdateOne) RemoveSessions(v ...*AssessmentSession) *ProfileSurveyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// Where appends a list predicates to the ProfileSurveyUpdate builder.
func (_u *ProfileSurveyUpdateOne) Where(ps ...predicate.ProfileSurvey) *ProfileSurveyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfileSurveyUpdateOne) Select(field string, fields ...string) *ProfileSurveyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProfileSurvey entity.
func (_u *ProfileSurveyUpdateOne) Save(ctx context.Context) (*ProfileSurvey, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileSurveyUpdateOne) SaveX(ctx context.Context) *ProfileSurvey {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfileSurveyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileSurveyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProfileSurveyUpdateOne) sqlSave(ctx context.Context) (_node *ProfileSurvey, err error) {
	_spec := sqlgraph.NewUpdateSpec(profilesurvey.Table, profilesurvey.Columns, sqlgraph.NewFieldSpec(profilesurvey.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProfileSurvey.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profilesurvey.FieldID)
		for _, f := range fields {
			if !profilesurvey.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profilesurvey.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.JobRoleCleared() {
		_spec.ClearField(profilesurvey.FieldJobRole, field.TypeString)
	}
	if _u.mutation.DutyCleared() {
		_spec.ClearField(profilesurvey.FieldDuty, field.TypeString)
	}
	if _u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profilesurvey.SessionsTable,
			Columns: []string{profilesurvey.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assessmentsession.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profilesurvey.SessionsTable,
			Columns: []string{profilesurvey.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assessmentsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   profilesurvey.SessionsTable,
			Columns: []string{profilesurvey.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assessmentsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ProfileSurvey{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profilesurvey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
