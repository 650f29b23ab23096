// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jobsarthi/notification-parser/gen/ent/jobpost"
	"github.com/jobsarthi/notification-parser/gen/ent/parserun"
)

// JobPostCreate is the builder for creating a JobPost entity.
type JobPostCreate struct {
	config
	mutation *JobPostMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *JobPostCreate) SetRunID(v uuid.UUID) *JobPostCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetPostName sets the "post_name" field.
func (_c *JobPostCreate) SetPostName(v string) *JobPostCreate {
	_c.mutation.SetPostName(v)
	return _c
}

// SetVacancies sets the "vacancies" field.
func (_c *JobPostCreate) SetVacancies(v int) *JobPostCreate {
	_c.mutation.SetVacancies(v)
	return _c
}

// SetNillableVacancies sets the "vacancies" field if the given value is not nil.
func (_c *JobPostCreate) SetNillableVacancies(v *int) *JobPostCreate {
	if v != nil {
		_c.SetVacancies(*v)
	}
	return _c
}

// SetEligibility sets the "eligibility" field.
func (_c *JobPostCreate) SetEligibility(v string) *JobPostCreate {
	_c.mutation.SetEligibility(v)
	return _c
}

// SetNillableEligibility sets the "eligibility" field if the given value is not nil.
func (_c *JobPostCreate) SetNillableEligibility(v *string) *JobPostCreate {
	if v != nil {
		_c.SetEligibility(*v)
	}
	return _c
}

// SetPayLevel sets the "pay_level" field.
func (_c *JobPostCreate) SetPayLevel(v string) *JobPostCreate {
	_c.mutation.SetPayLevel(v)
	return _c
}

// SetNillablePayLevel sets the "pay_level" field if the given value is not nil.
func (_c *JobPostCreate) SetNillablePayLevel(v *string) *JobPostCreate {
	if v != nil {
		_c.SetPayLevel(*v)
	}
	return _c
}

// SetAgeLimit sets the "age_limit" field.
func (_c *JobPostCreate) SetAgeLimit(v string) *JobPostCreate {
	_c.mutation.SetAgeLimit(v)
	return _c
}

// SetNillableAgeLimit sets the "age_limit" field if the given value is not nil.
func (_c *JobPostCreate) SetNillableAgeLimit(v *string) *JobPostCreate {
	if v != nil {
		_c.SetAgeLimit(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobPostCreate) SetID(v uuid.UUID) *JobPostCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *JobPostCreate) SetNillableID(v *uuid.UUID) *JobPostCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetRun sets the "run" edge to the ParseRun entity.
func (_c *JobPostCreate) SetRun(v *ParseRun) *JobPostCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the JobPostMutation object of the builder.
func (_c *JobPostCreate) Mutation() *JobPostMutation {
	return _c.mutation
}

// Save creates the JobPost in the database.
func (_c *JobPostCreate) Save(ctx context.Context) (*JobPost, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobPostCreate) SaveX(ctx context.Context) *JobPost {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobPostCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobPostCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobPostCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := jobpost.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobPostCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "JobPost.run_id"`)}
	}
	if _, ok := _c.mutation.PostName(); !ok {
		return &ValidationError{Name: "post_name", err: errors.New(`ent: missing required field "JobPost.post_name"`)}
	}
	if v, ok := _c.mutation.PostName(); ok {
		if err := jobpost.PostNameValidator(v); err != nil {
			return &ValidationError{Name: "post_name", err: fmt.Errorf(`ent: validator failed for field "JobPost.post_name": %w`, err)}
		}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "JobPost.run"`)}
	}
	return nil
}

func (_c *JobPostCreate) sqlSave(ctx context.Context) (*JobPost, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobPostCreate) createSpec() (*JobPost, *sqlgraph.CreateSpec) {
	var (
		_node = &JobPost{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(jobpost.Table, sqlgraph.NewFieldSpec(jobpost.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.PostName(); ok {
		_spec.SetField(jobpost.FieldPostName, field.TypeString, value)
		_node.PostName = value
	}
	if value, ok := _c.mutation.Vacancies(); ok {
		_spec.SetField(jobpost.FieldVacancies, field.TypeInt, value)
		_node.Vacancies = &value
	}
	if value, ok := _c.mutation.Eligibility(); ok {
		_spec.SetField(jobpost.FieldEligibility, field.TypeString, value)
		_node.Eligibility = &value
	}
	if value, ok := _c.mutation.PayLevel(); ok {
		_spec.SetField(jobpost.FieldPayLevel, field.TypeString, value)
		_node.PayLevel = &value
	}
	if value, ok := _c.mutation.AgeLimit(); ok {
		_spec.SetField(jobpost.FieldAgeLimit, field.TypeString, value)
		_node.AgeLimit = &value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobpost.RunTable,
			Columns: []string{jobpost.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parserun.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// JobPostCreateBulk is the builder for creating many JobPost entities in bulk.
type JobPostCreateBulk struct {
	config
	err      error
	builders []*JobPostCreate
}

// Save creates the JobPost entities in the database.
func (_c *JobPostCreateBulk) Save(ctx context.Context) ([]*JobPost, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JobPost, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobPostMutation)
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
func (_c *JobPostCreateBulk) SaveX(ctx context.Context) []*JobPost {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobPostCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobPostCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
