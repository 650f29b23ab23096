// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jobsarthi/notification-parser/gen/ent/jobpost"
	"github.com/jobsarthi/notification-parser/gen/ent/parserun"
)

// ParseRunCreate is the builder for creating a ParseRun entity.
type ParseRunCreate struct {
	config
	mutation *ParseRunMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *ParseRunCreate) SetJobID(v string) *ParseRunCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetSourceID sets the "source_id" field.
func (_c *ParseRunCreate) SetSourceID(v string) *ParseRunCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *ParseRunCreate) SetCategory(v string) *ParseRunCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *ParseRunCreate) SetNillableCategory(v *string) *ParseRunCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ParseRunCreate) SetStatus(v string) *ParseRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetErrorKind sets the "error_kind" field.
func (_c *ParseRunCreate) SetErrorKind(v string) *ParseRunCreate {
	_c.mutation.SetErrorKind(v)
	return _c
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_c *ParseRunCreate) SetNillableErrorKind(v *string) *ParseRunCreate {
	if v != nil {
		_c.SetErrorKind(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ParseRunCreate) SetErrorMessage(v string) *ParseRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ParseRunCreate) SetNillableErrorMessage(v *string) *ParseRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetValidationErrors sets the "validation_errors" field.
func (_c *ParseRunCreate) SetValidationErrors(v []string) *ParseRunCreate {
	_c.mutation.SetValidationErrors(v)
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *ParseRunCreate) SetDurationMs(v int64) *ParseRunCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *ParseRunCreate) SetNillableDurationMs(v *int64) *ParseRunCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetTokensUsed sets the "tokens_used" field.
func (_c *ParseRunCreate) SetTokensUsed(v int) *ParseRunCreate {
	_c.mutation.SetTokensUsed(v)
	return _c
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_c *ParseRunCreate) SetNillableTokensUsed(v *int) *ParseRunCreate {
	if v != nil {
		_c.SetTokensUsed(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *ParseRunCreate) SetAttempts(v int) *ParseRunCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *ParseRunCreate) SetNillableAttempts(v *int) *ParseRunCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetChunks sets the "chunks" field.
func (_c *ParseRunCreate) SetChunks(v int) *ParseRunCreate {
	_c.mutation.SetChunks(v)
	return _c
}

// SetNillableChunks sets the "chunks" field if the given value is not nil.
func (_c *ParseRunCreate) SetNillableChunks(v *int) *ParseRunCreate {
	if v != nil {
		_c.SetChunks(*v)
	}
	return _c
}

// SetIsCorrigendum sets the "is_corrigendum" field.
func (_c *ParseRunCreate) SetIsCorrigendum(v bool) *ParseRunCreate {
	_c.mutation.SetIsCorrigendum(v)
	return _c
}

// SetNillableIsCorrigendum sets the "is_corrigendum" field if the given value is not nil.
func (_c *ParseRunCreate) SetNillableIsCorrigendum(v *bool) *ParseRunCreate {
	if v != nil {
		_c.SetIsCorrigendum(*v)
	}
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *ParseRunCreate) SetNeedsReview(v bool) *ParseRunCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *ParseRunCreate) SetNillableNeedsReview(v *bool) *ParseRunCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *ParseRunCreate) SetModelName(v string) *ParseRunCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_c *ParseRunCreate) SetNillableModelName(v *string) *ParseRunCreate {
	if v != nil {
		_c.SetModelName(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *ParseRunCreate) SetSummary(v string) *ParseRunCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *ParseRunCreate) SetNillableSummary(v *string) *ParseRunCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetResultJSON sets the "result_json" field.
func (_c *ParseRunCreate) SetResultJSON(v json.RawMessage) *ParseRunCreate {
	_c.mutation.SetResultJSON(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ParseRunCreate) SetStartedAt(v time.Time) *ParseRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ParseRunCreate) SetNillableStartedAt(v *time.Time) *ParseRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ParseRunCreate) SetFinishedAt(v time.Time) *ParseRunCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ParseRunCreate) SetNillableFinishedAt(v *time.Time) *ParseRunCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ParseRunCreate) SetID(v uuid.UUID) *ParseRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ParseRunCreate) SetNillableID(v *uuid.UUID) *ParseRunCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddPostIDs adds the "posts" edge to the JobPost entity by IDs.
func (_c *ParseRunCreate) AddPostIDs(ids ...uuid.UUID) *ParseRunCreate {
	_c.mutation.AddPostIDs(ids...)
	return _c
}

// AddPosts adds the "posts" edges to the JobPost entity.
func (_c *ParseRunCreate) AddPosts(v ...*JobPost) *ParseRunCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPostIDs(ids...)
}

// Mutation returns the ParseRunMutation object of the builder.
func (_c *ParseRunCreate) Mutation() *ParseRunMutation {
	return _c.mutation
}

// Save creates the ParseRun in the database.
func (_c *ParseRunCreate) Save(ctx context.Context) (*ParseRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ParseRunCreate) SaveX(ctx context.Context) *ParseRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParseRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParseRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ParseRunCreate) defaults() {
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := parserun.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		v := parserun.DefaultTokensUsed
		_c.mutation.SetTokensUsed(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := parserun.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.Chunks(); !ok {
		v := parserun.DefaultChunks
		_c.mutation.SetChunks(v)
	}
	if _, ok := _c.mutation.IsCorrigendum(); !ok {
		v := parserun.DefaultIsCorrigendum
		_c.mutation.SetIsCorrigendum(v)
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := parserun.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := parserun.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := parserun.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ParseRunCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "ParseRun.job_id"`)}
	}
	if v, ok := _c.mutation.JobID(); ok {
		if err := parserun.JobIDValidator(v); err != nil {
			return &ValidationError{Name: "job_id", err: fmt.Errorf(`ent: validator failed for field "ParseRun.job_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceID(); !ok {
		return &ValidationError{Name: "source_id", err: errors.New(`ent: missing required field "ParseRun.source_id"`)}
	}
	if v, ok := _c.mutation.SourceID(); ok {
		if err := parserun.SourceIDValidator(v); err != nil {
			return &ValidationError{Name: "source_id", err: fmt.Errorf(`ent: validator failed for field "ParseRun.source_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ParseRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := parserun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ParseRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "ParseRun.duration_ms"`)}
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		return &ValidationError{Name: "tokens_used", err: errors.New(`ent: missing required field "ParseRun.tokens_used"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "ParseRun.attempts"`)}
	}
	if _, ok := _c.mutation.Chunks(); !ok {
		return &ValidationError{Name: "chunks", err: errors.New(`ent: missing required field "ParseRun.chunks"`)}
	}
	if _, ok := _c.mutation.IsCorrigendum(); !ok {
		return &ValidationError{Name: "is_corrigendum", err: errors.New(`ent: missing required field "ParseRun.is_corrigendum"`)}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "ParseRun.needs_review"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ParseRun.started_at"`)}
	}
	return nil
}

func (_c *ParseRunCreate) sqlSave(ctx context.Context) (*ParseRun, error) {
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

func (_c *ParseRunCreate) createSpec() (*ParseRun, *sqlgraph.CreateSpec) {
	var (
		_node = &ParseRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(parserun.Table, sqlgraph.NewFieldSpec(parserun.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(parserun.FieldJobID, field.TypeString, value)
		_node.JobID = value
	}
	if value, ok := _c.mutation.SourceID(); ok {
		_spec.SetField(parserun.FieldSourceID, field.TypeString, value)
		_node.SourceID = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(parserun.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(parserun.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorKind(); ok {
		_spec.SetField(parserun.FieldErrorKind, field.TypeString, value)
		_node.ErrorKind = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(parserun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ValidationErrors(); ok {
		_spec.SetField(parserun.FieldValidationErrors, field.TypeJSON, value)
		_node.ValidationErrors = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(parserun.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.TokensUsed(); ok {
		_spec.SetField(parserun.FieldTokensUsed, field.TypeInt, value)
		_node.TokensUsed = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(parserun.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.Chunks(); ok {
		_spec.SetField(parserun.FieldChunks, field.TypeInt, value)
		_node.Chunks = value
	}
	if value, ok := _c.mutation.IsCorrigendum(); ok {
		_spec.SetField(parserun.FieldIsCorrigendum, field.TypeBool, value)
		_node.IsCorrigendum = value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(parserun.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(parserun.FieldModelName, field.TypeString, value)
		_node.ModelName = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(parserun.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.ResultJSON(); ok {
		_spec.SetField(parserun.FieldResultJSON, field.TypeJSON, value)
		_node.ResultJSON = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(parserun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(parserun.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if nodes := _c.mutation.PostsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   parserun.PostsTable,
			Columns: []string{parserun.PostsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobpost.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ParseRunCreateBulk is the builder for creating many ParseRun entities in bulk.
type ParseRunCreateBulk struct {
	config
	err      error
	builders []*ParseRunCreate
}

// Save creates the ParseRun entities in the database.
func (_c *ParseRunCreateBulk) Save(ctx context.Context) ([]*ParseRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ParseRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ParseRunMutation)
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
func (_c *ParseRunCreateBulk) SaveX(ctx context.Context) []*ParseRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParseRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParseRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
