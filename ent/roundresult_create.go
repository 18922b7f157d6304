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
	"github.com/skillforge/skillforge/ent/roundresult"
)

// RoundResultCreate is the builder for creating a RoundResult entity.
type RoundResultCreate struct {
	config
	mutation *RoundResultMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *RoundResultCreate) SetSessionID(v string) *RoundResultCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetRoundIndex sets the "round_index" field.
func (_c *RoundResultCreate) SetRoundIndex(v int) *RoundResultCreate {
	_c.mutation.SetRoundIndex(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *RoundResultCreate) SetScore(v float64) *RoundResultCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *RoundResultCreate) SetCorrectCount(v int) *RoundResultCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetTotalCount sets the "total_count" field.
func (_c *RoundResultCreate) SetTotalCount(v int) *RoundResultCreate {
	_c.mutation.SetTotalCount(v)
	return _c
}

// SetWrongCategories sets the "wrong_categories" field.
func (_c *RoundResultCreate) SetWrongCategories(v map[string]int) *RoundResultCreate {
	_c.mutation.SetWrongCategories(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RoundResultCreate) SetCreatedAt(v time.Time) *RoundResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RoundResultCreate) SetNillableCreatedAt(v *time.Time) *RoundResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RoundResultCreate) SetID(v string) *RoundResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the AssessmentSession entity.
func (_c *RoundResultCreate) SetSession(v *AssessmentSession) *RoundResultCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the RoundResultMutation object of the builder.
func (_c *RoundResultCreate) Mutation() *RoundResultMutation {
	return _c.mutation
}

// Save creates the RoundResult in the database.
func (_c *RoundResultCreate) Save(ctx context.Context) (*RoundResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RoundResultCreate) SaveX(ctx context.Context) *RoundResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoundResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoundResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RoundResultCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := roundresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RoundResultCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "RoundResult.session_id"`)}
	}
	if _, ok := _c.mutation.RoundIndex(); !ok {
		return &ValidationError{Name: "round_index", err: errors.New(`ent: missing required field "RoundResult.round_index"`)}
	}
	if v, ok := _c.mutation.RoundIndex(); ok {
		if err := roundresult.RoundIndexValidator(v); err != nil {
			return &ValidationError{Name: "round_index", err: fmt.Errorf(`ent: validator failed for field "RoundResult.round_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "RoundResult.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := roundresult.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "RoundResult.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "RoundResult.correct_count"`)}
	}
	if v, ok := _c.mutation.CorrectCount(); ok {
		if err := roundresult.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "RoundResult.correct_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalCount(); !ok {
		return &ValidationError{Name: "total_count", err: errors.New(`ent: missing required field "RoundResult.total_count"`)}
	}
	if v, ok := _c.mutation.TotalCount(); ok {
		if err := roundresult.TotalCountValidator(v); err != nil {
			return &ValidationError{Name: "total_count", err: fmt.Errorf(`ent: validator failed for field "RoundResult.total_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WrongCategories(); !ok {
		return &ValidationError{Name: "wrong_categories", err: errors.New(`ent: missing required field "RoundResult.wrong_categories"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RoundResult.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "RoundResult.session"`)}
	}
	return nil
}

func (_c *RoundResultCreate) sqlSave(ctx context.Context) (*RoundResult, error) {
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
			return nil, fmt.Errorf("unexpected RoundResult.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RoundResultCreate) createSpec() (*RoundResult, *sqlgraph.CreateSpec) {
	var (
		_node = &RoundResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(roundresult.Table, sqlgraph.NewFieldSpec(roundresult.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RoundIndex(); ok {
		_spec.SetField(roundresult.FieldRoundIndex, field.TypeInt, value)
		_node.RoundIndex = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(roundresult.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(roundresult.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.TotalCount(); ok {
		_spec.SetField(roundresult.FieldTotalCount, field.TypeInt, value)
		_node.TotalCount = value
	}
	if value, ok := _c.mutation.WrongCategories(); ok {
		_spec.SetField(roundresult.FieldWrongCategories, field.TypeJSON, value)
		_node.WrongCategories = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(roundresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   roundresult.SessionTable,
			Columns: []string{roundresult.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assessmentsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RoundResultCreateBulk is the builder for creating many RoundResult entities in bulk.
type RoundResultCreateBulk struct {
	config
	err      error
	builders []*RoundResultCreate
}

// Save creates the RoundResult entities in the database.
func (_c *RoundResultCreateBulk) Save(ctx context.Context) ([]*RoundResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RoundResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RoundResultMutation)
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
func (_c *RoundResultCreateBulk) SaveX(ctx context.Context) []*RoundResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoundResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoundResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
