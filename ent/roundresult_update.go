// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/skillforge/skillforge/ent/predicate"
	"github.com/skillforge/skillforge/ent/roundresult"
)

// RoundResultUpdate is the builder for updating RoundResult entities.
type RoundResultUpdate struct {
	config
	hooks    []Hook
	mutation *RoundResultMutation
}

// Where appends a list predicates to the RoundResultUpdate builder.
func (_u *RoundResultUpdate) Where(ps ...predicate.RoundResult) *RoundResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWrongCategories sets the "wrong_categories" field.
func (_u *RoundResultUpdate) SetWrongCategories(v map[string]int) *RoundResultUpdate {
	_u.mutation.SetWrongCategories(v)
	return _u
}

// Mutation returns the RoundResultMutation object of the builder.
func (_u *RoundResultUpdate) Mutation() *RoundResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RoundResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoundResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RoundResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoundResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoundResultUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RoundResult.session"`)
	}
	return nil
}

func (_u *RoundResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(roundresult.Table, roundresult.Columns, sqlgraph.NewFieldSpec(roundresult.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WrongCategories(); ok {
		_spec.SetField(roundresult.FieldWrongCategories, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roundresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RoundResultUpdateOne is the builder for updating a single RoundResult entity.
type RoundResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RoundResultMutation
}

// SetWrongCategories sets the "wrong_categories" field.
func (_u *RoundResultUpdateOne) SetWrongCategories(v map[string]int) *RoundResultUpdateOne {
	_u.mutation.SetWrongCategories(v)
	return _u
}

// Mutation returns the RoundResultMutation object of the builder.
func (_u *RoundResultUpdateOne) Mutation() *RoundResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the RoundResultUpdate builder.
func (_u *RoundResultUpdateOne) Where(ps ...predicate.RoundResult) *RoundResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RoundResultUpdateOne) Select(field string, fields ...string) *RoundResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RoundResult entity.
func (_u *RoundResultUpdateOne) Save(ctx context.Context) (*RoundResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoundResultUpdateOne) SaveX(ctx context.Context) *RoundResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RoundResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoundResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoundResultUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RoundResult.session"`)
	}
	return nil
}

func (_u *RoundResultUpdateOne) sqlSave(ctx context.Context) (_node *RoundResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(roundresult.Table, roundresult.Columns, sqlgraph.NewFieldSpec(roundresult.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RoundResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, roundresult.FieldID)
		for _, f := range fields {
			if !roundresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != roundresult.FieldID {
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
	if value, ok := _u.mutation.WrongCategories(); ok {
		_spec.SetField(roundresult.FieldWrongCategories, field.TypeJSON, value)
	}
	_node = &RoundResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roundresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
