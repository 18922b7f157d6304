// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/skillforge/skillforge/ent/assessmentsession"
	"github.com/skillforge/skillforge/ent/profilesurvey"
)

// ProfileSurveyCreate is the builder for creating a ProfileSurvey entity.
type ProfileSurveyCreate struct {
	config
	mutation *ProfileSurveyMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ProfileSurveyCreate) SetUserID(v string) *ProfileSurveyCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSelfLevel sets the "self_level" field.
func (_c *ProfileSurveyCreate) SetSelfLevel(v profilesurvey.SelfLevel) *ProfileSurveyCreate {
	_c.mutation.SetSelfLevel(v)
	return _c
}

// SetYears sets the "years" field.
func (_c *ProfileSurveyCreate) SetYears(v int) *ProfileSurveyCreate {
	_c.mutation.SetYears(v)
	return _c
}

// SetJobRole sets the "job_role" field.
func (_c *ProfileSurveyCreate) SetJobRole(v string) *ProfileSurveyCreate {
	_c.mutation.SetJobRole(v)
	return _c
}

// SetNillableJobRole sets the "job_role" field if the given value is not nil.
func (_c *ProfileSurveyCreate) SetNillableJobRole(v *string) *ProfileSurveyCreate {
	if v != nil {
		_c.SetJobRole(*v)
	}
	return _c
}

// SetDuty sets the "duty" field.
func (_c *ProfileSurveyCreate) SetDuty(v string) *ProfileSurveyCreate {
	_c.mutation.SetDuty(v)
	return _c
}

// SetNillableDuty sets the "duty" field if the given value is not nil.
func (_c *ProfileSurveyCreate) SetNillableDuty(v *string) *ProfileSurveyCreate {
	if v != nil {
		_c.SetDuty(*v)
	}
	return _c
}

// SetInterests sets the "interests" field.
func (_c *ProfileSurveyCreate) SetInterests(v []string) *ProfileSurveyCreate {
	_c.mutation.SetInterests(v)
	return _c
}

// SetSubmittedAt sets the "submitted_at" field.
func (_c *ProfileSurveyCreate) SetSubmittedAt(v time.Time) *ProfileSurveyCreate {
	_c.mutation.SetSubmittedAt(v)
	return _c
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_c *ProfileSurveyCreate) SetNillableSubmittedAt(v *time.Time) *ProfileSurveyCreate {
	if v != nil {
		_c.SetSubmittedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProfileSurveyCreate) SetID(v string) *ProfileSurveyCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddSessionIDs adds the "sessions" edge to the AssessmentSession entity by IDs.
func (_c *ProfileSurveyCreate) AddSessionIDs(ids ...string) *ProfileSurveyCreate {
	_c.mutation.AddSessionIDs(ids...)
	return _c
}

// AddSessions adds the "sessions" edges to the AssessmentSession entity.
func (_c *ProfileSurveyCreate) AddSessions(v ...*AssessmentSession) *ProfileSurveyCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSessionIDs(ids...)
}

// Mutation returns the ProfileSurveyMutation object of the builder.
func (_c *ProfileSurveyCreate) Mutation() *ProfileSurveyMutation {
	return _c.mutation
}

// Save creates the ProfileSurvey in the database.
func (_c *ProfileSurveyCreate) Save(ctx context.Context) (*ProfileSurvey, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProfileSurveyCreate) SaveX(ctx context.Context) *ProfileSurvey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileSurveyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileSurveyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProfileSurveyCreate) defaults() {
	if _, ok := _c.mutation.SubmittedAt(); !ok {
		v := profilesurvey.DefaultSubmittedAt()
		_c.mutation.SetSubmittedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProfileSurveyCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ProfileSurvey.user_id"`)}
	}
	if _, ok := _c.mutation.SelfLevel(); !ok {
		return &ValidationError{Name: "self_level", err: errors.New(`ent: missing required field "ProfileSurvey.self_level"`)}
	}
	if v, ok := _c.mutation.SelfLevel(); ok {
		if err := profilesurvey.SelfLevelValidator(v); err != nil {
			return &ValidationError{Name: "self_level", err: fmt.Errorf(`ent: validator failed for field "ProfileSurvey.self_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Years(); !ok {
		return &ValidationError{Name: "years", err: errors.New(`ent: missing required field "ProfileSurvey.years"`)}
	}
	if v, ok := _c.mutation.Years(); ok {
		if err := profilesurvey.YearsValidator(v); err != nil {
			return &ValidationError{Name: "years", err: fmt.Errorf(`ent: validator failed for field "ProfileSurvey.years": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Interests(); !ok {
		return &ValidationError{Name: "interests", err: errors.New(`ent: missing required field "ProfileSurvey.interests"`)}
	}
	if _, ok := _c.mutation.SubmittedAt(); !ok {
		return &ValidationError{Name: "submitted_at", err: errors.New(`ent: missing required field "ProfileSurvey.submitted_at"`)}
	}
	return nil
}

func (_c *ProfileSurveyCreate) sqlSave(ctx context.Context) (*ProfileSurvey, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ProfileSurvey.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProfileSurveyCreate) createSpec() (*ProfileSurvey, *sqlgraph.CreateSpec) {
	var (
		_node = &ProfileSurvey{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(profilesurvey.Table, sqlgraph.NewFieldSpec(profilesurvey.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(profilesurvey.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SelfLevel(); ok {
		_spec.SetField(profilesurvey.FieldSelfLevel, field.TypeEnum, value)
		_node.SelfLevel = value
	}
	if value, ok := _c.mutation.Years(); ok {
		_spec.SetField(profilesurvey.FieldYears, field.TypeInt, value)
		_node.Years = value
	}
	if value, ok := _c.mutation.JobRole(); ok {
		_spec.SetField(profilesurvey.FieldJobRole, field.TypeString, value)
		_node.JobRole = value
	}
	if value, ok := _c.mutation.Duty(); ok {
		_spec.SetField(profilesurvey.FieldDuty, field.TypeString, value)
		_node.Duty = value
	}
	if value, ok := _c.mutation.Interests(); ok {
		_spec.SetField(profilesurvey.FieldInterests, field.TypeJSON, value)
		_node.Interests = value
	}
	if value, ok := _c.mutation.SubmittedAt(); ok {
		_spec.SetField(profilesurvey.FieldSubmittedAt, field.TypeTime, value)
		_node.SubmittedAt = value
	}
	if nodes := _c.mutation.SessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProfileSurveyCreateBulk is the builder for creating many ProfileSurvey entities in bulk.
type ProfileSurveyCreateBulk struct {
	config
	err      error
	builders []*ProfileSurveyCreate
}

// Save creates the ProfileSurvey entities in the database.
func (_c *ProfileSurveyCreateBulk) Save(ctx context.Context) ([]*ProfileSurvey, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProfileSurvey, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProfileSurveyMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ProfileSurveyCreateBulk) SaveX(ctx context.Context) []*ProfileSurvey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileSurveyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileSurveyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
