// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jobsarthi/notification-parser/gen/ent/jobpost"
	"github.com/jobsarthi/notification-parser/gen/ent/parserun"
	"github.com/jobsarthi/notification-parser/gen/ent/predicate"
)

// JobPostUpdate is the builder for updating JobPost entities.
type JobPostUpdate struct {
	config
	hooks    []Hook
	mutation *JobPostMutation
}

// Where appends a list predicates to the JobPostUpdate builder.
func (_u *JobPostUpdate) Where(ps ...predicate.JobPost) *JobPostUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *JobPostUpdate) SetRunID(v uuid.UUID) *JobPostUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *JobPostUpdate) SetNillableRunID(v *uuid.UUID) *JobPostUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetPostName sets the "post_name" field.
func (_u *JobPostUpdate) SetPostName(v string) *JobPostUpdate {
	_u.mutation.SetPostName(v)
	return _u
}

// SetNillablePostName sets the "post_name" field if the given value is not nil.
func (_u *JobPostUpdate) SetNillablePostName(v *string) *JobPostUpdate {
	if v != nil {
		_u.SetPostName(*v)
	}
	return _u
}

// SetVacancies sets the "vacancies" field.
func (_u *JobPostUpdate) SetVacancies(v int) *JobPostUpdate {
	_u.mutation.ResetVacancies()
	_u.mutation.SetVacancies(v)
	return _u
}

// SetNillableVacancies sets the "vacancies" field if the given value is not nil.
func (_u *JobPostUpdate) SetNillableVacancies(v *int) *JobPostUpdate {
	if v != nil {
		_u.SetVacancies(*v)
	}
	return _u
}

// AddVacancies adds value to the "vacancies" field.
func (_u *JobPostUpdate) AddVacancies(v int) *JobPostUpdate {
	_u.mutation.AddVacancies(v)
	return _u
}

// ClearVacancies clears the value of the "vacancies" field.
func (_u *JobPostUpdate) ClearVacancies() *JobPostUpdate {
	_u.mutation.ClearVacancies()
	return _u
}

// SetEligibility sets the "eligibility" field.
func (_u *JobPostUpdate) SetEligibility(v string) *JobPostUpdate {
	_u.mutation.SetEligibility(v)
	return _u
}

// SetNillableEligibility sets the "eligibility" field if the given value is not nil.
func (_u *JobPostUpdate) SetNillableEligibility(v *string) *JobPostUpdate {
	if v != nil {
		_u.SetEligibility(*v)
	}
	return _u
}

// ClearEligibility clears the value of the "eligibility" field.
func (_u *JobPostUpdate) ClearEligibility() *JobPostUpdate {
	_u.mutation.ClearEligibility()
	return _u
}

// SetPayLevel sets the "pay_level" field.
func (_u *JobPostUpdate) SetPayLevel(v string) *JobPostUpdate {
	_u.mutation.SetPayLevel(v)
	return _u
}

// SetNillablePayLevel sets the "pay_level" field if the given value is not nil.
func (_u *JobPostUpdate) SetNillablePayLevel(v *string) *JobPostUpdate {
	if v != nil {
		_u.SetPayLevel(*v)
	}
	return _u
}

// ClearPayLevel clears the value of the "pay_level" field.
func (_u *JobPostUpdate) ClearPayLevel() *JobPostUpdate {
	_u.mutation.ClearPayLevel()
	return _u
}

// SetAgeLimit sets the "age_limit" field.
func (_u *JobPostUpdate) SetAgeLimit(v string) *JobPostUpdate {
	_u.mutation.SetAgeLimit(v)
	return _u
}

// SetNillableAgeLimit sets the "age_limit" field if the given value is not nil.
func (_u *JobPostUpdate) SetNillableAgeLimit(v *string) *JobPostUpdate {
	if v != nil {
		_u.SetAgeLimit(*v)
	}
	return _u
}

// ClearAgeLimit clears the value of the "age_limit" field.
func (_u *JobPostUpdate) ClearAgeLimit() *JobPostUpdate {
	_u.mutation.ClearAgeLimit()
	return _u
}

// SetRun sets the "run" edge to the ParseRun entity.
func (_u *JobPostUpdate) SetRun(v *ParseRun) *JobPostUpdate {
	return _u.SetRunID(v.ID)
}

// Mutation returns the JobPostMutation object of the builder.
func (_u *JobPostUpdate) Mutation() *JobPostMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the ParseRun entity.
func (_u *JobPostUpdate) ClearRun() *JobPostUpdate {
	_u.mutation.ClearRun()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobPostUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobPostUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobPostUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobPostUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobPostUpdate) check() error {
	if v, ok := _u.mutation.PostName(); ok {
		if err := jobpost.PostNameValidator(v); err != nil {
			return &ValidationError{Name: "post_name", err: fmt.Errorf(`ent: validator failed for field "JobPost.post_name": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobPost.run"`)
	}
	return nil
}

func (_u *JobPostUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobpost.Table, jobpost.Columns, sqlgraph.NewFieldSpec(jobpost.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PostName(); ok {
		_spec.SetField(jobpost.FieldPostName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Vacancies(); ok {
		_spec.SetField(jobpost.FieldVacancies, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVacancies(); ok {
		_spec.AddField(jobpost.FieldVacancies, field.TypeInt, value)
	}
	if _u.mutation.VacanciesCleared() {
		_spec.ClearField(jobpost.FieldVacancies, field.TypeInt)
	}
	if value, ok := _u.mutation.Eligibility(); ok {
		_spec.SetField(jobpost.FieldEligibility, field.TypeString, value)
	}
	if _u.mutation.EligibilityCleared() {
		_spec.ClearField(jobpost.FieldEligibility, field.TypeString)
	}
	if value, ok := _u.mutation.PayLevel(); ok {
		_spec.SetField(jobpost.FieldPayLevel, field.TypeString, value)
	}
	if _u.mutation.PayLevelCleared() {
		_spec.ClearField(jobpost.FieldPayLevel, field.TypeString)
	}
	if value, ok := _u.mutation.AgeLimit(); ok {
		_spec.SetField(jobpost.FieldAgeLimit, field.TypeString, value)
	}
	if _u.mutation.AgeLimitCleared() {
		_spec.ClearField(jobpost.FieldAgeLimit, field.TypeString)
	}
	if _u.mutation.RunCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobpost.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobPostUpdateOne is the builder for updating a single JobPost entity.
type JobPostUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobPostMutation
}

// SetRunID sets the "run_id" field.
func (_u *JobPostUpdateOne) SetRunID(v uuid.UUID) *JobPostUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *JobPostUpdateOne) SetNillableRunID(v *uuid.UUID) *JobPostUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetPostName sets the "post_name" field.
func (_u *JobPostUpdateOne) SetPostName(v string) *JobPostUpdateOne {
	_u.mutation.SetPostName(v)
	return _u
}

// SetNillablePostName sets the "post_name" field if the given value is not nil.
func (_u *JobPostUpdateOne) SetNillablePostName(v *string) *JobPostUpdateOne {
	if v != nil {
		_u.SetPostName(*v)
	}
	return _u
}

// SetVacancies sets the "vacancies" field.
func (_u *JobPostUpdateOne) SetVacancies(v int) *JobPostUpdateOne {
	_u.mutation.ResetVacancies()
	_u.mutation.SetVacancies(v)
	return _u
}

// SetNillableVacancies sets the "vacancies" field if the given value is not nil.
func (_u *JobPostUpdateOne) SetNillableVacancies(v *int) *JobPostUpdateOne {
	if v != nil {
		_u.SetVacancies(*v)
	}
	return _u
}

// AddVacancies adds value to the "vacancies" field.
func (_u *JobPostUpdateOne) AddVacancies(v int) *JobPostUpdateOne {
	_u.mutation.AddVacancies(v)
	return _u
}

// ClearVacancies clears the value of the "vacancies" field.
func (_u *JobPostUpdateOne) ClearVacancies() *JobPostUpdateOne {
	_u.mutation.ClearVacancies()
	return _u
}

// SetEligibility sets the "eligibility" field.
func (_u *JobPostUpdateOne) SetEligibility(v string) *JobPostUpdateOne {
	_u.mutation.SetEligibility(v)
	return _u
}

// SetNillableEligibility sets the "eligibility" field if the given value is not nil.
func (_u *JobPostUpdateOne) SetNillableEligibility(v *string) *JobPostUpdateOne {
	if v != nil {
		_u.SetEligibility(*v)
	}
	return _u
}

// ClearEligibility clears the value of the "eligibility" field.
func (_u *JobPostUpdateOne) ClearEligibility() *JobPostUpdateOne {
	_u.mutation.ClearEligibility()
	return _u
}

// SetPayLevel sets the "pay_level" field.
func (_u *JobPostUpdateOne) SetPayLevel(v string) *JobPostUpdateOne {
	_u.mutation.SetPayLevel(v)
	return _u
}

// SetNillablePayLevel sets the "pay_level" field if the given value is not nil.
func (_u *JobPostUpdateOne) SetNillablePayLevel(v *string) *JobPostUpdateOne {
	if v != nil {
		_u.SetPayLevel(*v)
	}
	return _u
}

// ClearPayLevel clears the value of the "pay_level" field.
func (_u *JobPostUpdateOne) ClearPayLevel() *JobPostUpdateOne {
	_u.mutation.ClearPayLevel()
	return _u
}

// SetAgeLimit sets the "age_limit" field.
func (_u *JobPostUpdateOne) SetAgeLimit(v string) *JobPostUpdateOne {
	_u.mutation.SetAgeLimit(v)
	return _u
}

// SetNillableAgeLimit sets the "age_limit" field if the given value is not nil.
func (_u *JobPostUpdateOne) SetNillableAgeLimit(v *string) *JobPostUpdateOne {
	if v != nil {
		_u.SetAgeLimit(*v)
	}
	return _u
}

// ClearAgeLimit clears the value of the "age_limit" field.
func (_u *JobPostUpdateOne) ClearAgeLimit() *JobPostUpdateOne {
	_u.mutation.ClearAgeLimit()
	return _u
}

// SetRun sets the "run" edge to the ParseRun entity.
func (_u *JobPostUpdateOne) SetRun(v *ParseRun) *JobPostUpdateOne {
	return _u.SetRunID(v.ID)
}

// Mutation returns the JobPostMutation object of the builder.
func (_u *JobPostUpdateOne) Mutation() *JobPostMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the ParseRun entity.
func (_u *JobPostUpdateOne) ClearRun() *JobPostUpdateOne {
	_u.mutation.ClearRun()
	return _u
}

// Where appends a list predicates to the JobPostUpdate builder.
func (_u *JobPostUpdateOne) Where(ps ...predicate.JobPost) *JobPostUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobPostUpdateOne) Select(field string, fields ...string) *JobPostUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JobPost entity.
func (_u *JobPostUpdateOne) Save(ctx context.Context) (*JobPost, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobPostUpdateOne) SaveX(ctx context.Context) *JobPost {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobPostUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobPostUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobPostUpdateOne) check() error {
	if v, ok := _u.mutation.PostName(); ok {
		if err := jobpost.PostNameValidator(v); err != nil {
			return &ValidationError{Name: "post_name", err: fmt.Errorf(`ent: validator failed for field "JobPost.post_name": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobPost.run"`)
	}
	return nil
}

func (_u *JobPostUpdateOne) sqlSave(ctx context.Context) (_node *JobPost, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobpost.Table, jobpost.Columns, sqlgraph.NewFieldSpec(jobpost.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JobPost.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, jobpost.FieldID)
		for _, f := range fields {
			if !jobpost.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != jobpost.FieldID {
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
	if value, ok := _u.mutation.PostName(); ok {
		_spec.SetField(jobpost.FieldPostName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Vacancies(); ok {
		_spec.SetField(jobpost.FieldVacancies, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVacancies(); ok {
		_spec.AddField(jobpost.FieldVacancies, field.TypeInt, value)
	}
	if _u.mutation.VacanciesCleared() {
		_spec.ClearField(jobpost.FieldVacancies, field.TypeInt)
	}
	if value, ok := _u.mutation.Eligibility(); ok {
		_spec.SetField(jobpost.FieldEligibility, field.TypeString, value)
	}
	if _u.mutation.EligibilityCleared() {
		_spec.ClearField(jobpost.FieldEligibility, field.TypeString)
	}
	if value, ok := _u.mutation.PayLevel(); ok {
		_spec.SetField(jobpost.FieldPayLevel, field.TypeString, value)
	}
	if _u.mutation.PayLevelCleared() {
		_spec.ClearField(jobpost.FieldPayLevel, field.TypeString)
	}
	if value, ok := _u.mutation.AgeLimit(); ok {
		_spec.SetField(jobpost.FieldAgeLimit, field.TypeString, value)
	}
	if _u.mutation.AgeLimitCleared() {
		_spec.ClearField(jobpost.FieldAgeLimit, field.TypeString)
	}
	if _u.mutation.RunCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &JobPost{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobpost.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
