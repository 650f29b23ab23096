// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jobsarthi/notification-parser/gen/ent/jobpost"
	"github.com/jobsarthi/notification-parser/gen/ent/parserun"
	"github.com/jobsarthi/notification-parser/gen/ent/predicate"
)

// ParseRunUpdate is the builder for updating ParseRun entities.
type ParseRunUpdate struct {
	config
	hooks    []Hook
	mutation *ParseRunMutation
}

// Where appends a list predicates to the ParseRunUpdate builder.
func (_u *ParseRunUpdate) Where(ps ...predicate.ParseRun) *ParseRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *ParseRunUpdate) SetJobID(v string) *ParseRunUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *ParseRunUpdate) SetNillableJobID(v *string) *ParseRunUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetSourceID sets the "source_id" field.
func (_u *ParseRunUpdate) SetSourceID(v string) *ParseRunUpdate {
	_u.mutation.SetSourceID(v)
	return _u
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_u *ParseRunUpdate) SetNillableSourceID(v *string) *ParseRunUpdate {
	if v != nil {
		_u.SetSourceID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ParseRunUpdate) SetCategory(v string) *ParseRunUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ParseRunUpdate) SetNillableCategory(v *string) *ParseRunUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *ParseRunUpdate) ClearCategory() *ParseRunUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ParseRunUpdate) SetStatus(v string) *ParseRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ParseRunUpdate) SetNillableStatus(v *string) *ParseRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *ParseRunUpdate) SetErrorKind(v string) *ParseRunUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *ParseRunUpdate) SetNillableErrorKind(v *string) *ParseRunUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *ParseRunUpdate) ClearErrorKind() *ParseRunUpdate {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ParseRunUpdate) SetErrorMessage(v string) *ParseRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ParseRunUpdate) SetNillableErrorMessage(v *string) *ParseRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ParseRunUpdate) ClearErrorMessage() *ParseRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetValidationErrors sets the "validation_errors" field.
func (_u *ParseRunUpdate) SetValidationErrors(v []string) *ParseRunUpdate {
	_u.mutation.SetValidationErrors(v)
	return _u
}

// AppendValidationErrors appends value to the "validation_errors" field.
func (_u *ParseRunUpdate) AppendValidationErrors(v []string) *ParseRunUpdate {
	_u.mutation.AppendValidationErrors(v)
	return _u
}

// ClearValidationErrors clears the value of the "validation_errors" field.
func (_u *ParseRunUpdate) ClearValidationErrors() *ParseRunUpdate {
	_u.mutation.ClearValidationErrors()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ParseRunUpdate) SetDurationMs(v int64) *ParseRunUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ParseRunUpdate) SetNillableDurationMs(v *int64) *ParseRunUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ParseRunUpdate) AddDurationMs(v int64) *ParseRunUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *ParseRunUpdate) SetTokensUsed(v int) *ParseRunUpdate {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *ParseRunUpdate) SetNillableTokensUsed(v *int) *ParseRunUpdate {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *ParseRunUpdate) AddTokensUsed(v int) *ParseRunUpdate {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ParseRunUpdate) SetAttempts(v int) *ParseRunUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ParseRunUpdate) SetNillableAttempts(v *int) *ParseRunUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ParseRunUpdate) AddAttempts(v int) *ParseRunUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetChunks sets the "chunks" field.
func (_u *ParseRunUpdate) SetChunks(v int) *ParseRunUpdate {
	_u.mutation.ResetChunks()
	_u.mutation.SetChunks(v)
	return _u
}

// SetNillableChunks sets the "chunks" field if the given value is not nil.
func (_u *ParseRunUpdate) SetNillableChunks(v *int) *ParseRunUpdate {
	if v != nil {
		_u.SetChunks(*v)
	}
	return _u
}

// AddChunks adds value to the "chunks" field.
func (_u *ParseRunUpdate) AddChunks(v int) *ParseRunUpdate {
	_u.mutation.AddChunks(v)
	return _u
}

// SetIsCorrigendum sets the "is_corrigendum" field.
func (_u *ParseRunUpdate) SetIsCorrigendum(v bool) *ParseRunUpdate {
	_u.mutation.SetIsCorrigendum(v)
	return _u
}

// SetNillableIsCorrigendum sets the "is_corrigendum" field if the given value is not nil.
func (_u *ParseRunUpdate) SetNillableIsCorrigendum(v *bool) *ParseRunUpdate {
	if v != nil {
		_u.SetIsCorrigendum(*v)
	}
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *ParseRunUpdate) SetNeedsReview(v bool) *ParseRunUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *ParseRunUpdate) SetNillableNeedsReview(v *bool) *ParseRunUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *ParseRunUpdate) SetModelName(v string) *ParseRunUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *ParseRunUpdate) SetNillableModelName(v *string) *ParseRunUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *ParseRunUpdate) ClearModelName() *ParseRunUpdate {
	_u.mutation.ClearModelName()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ParseRunUpdate) SetSummary(v string) *ParseRunUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ParseRunUpdate) SetNillableSummary(v *string) *ParseRunUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ParseRunUpdate) ClearSummary() *ParseRunUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetResultJSON sets the "result_json" field.
func (_u *ParseRunUpdate) SetResultJSON(v json.RawMessage) *ParseRunUpdate {
	_u.mutation.SetResultJSON(v)
	return _u
}

// AppendResultJSON appends value to the "result_json" field.
func (_u *ParseRunUpdate) AppendResultJSON(v json.RawMessage) *ParseRunUpdate {
	_u.mutation.AppendResultJSON(v)
	return _u
}

// ClearResultJSON clears the value of the "result_json" field.
func (_u *ParseRunUpdate) ClearResultJSON() *ParseRunUpdate {
	_u.mutation.ClearResultJSON()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ParseRunUpdate) SetStartedAt(v time.Time) *ParseRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ParseRunUpdate) SetNillableStartedAt(v *time.Time) *ParseRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ParseRunUpdate) SetFinishedAt(v time.Time) *ParseRunUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ParseRunUpdate) SetNillableFinishedAt(v *time.Time) *ParseRunUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ParseRunUpdate) ClearFinishedAt() *ParseRunUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// AddPostIDs adds the "posts" edge to the JobPost entity by IDs.
func (_u *ParseRunUpdate) AddPostIDs(ids ...uuid.UUID) *ParseRunUpdate {
	_u.mutation.AddPostIDs(ids...)
	return _u
}

// AddPosts adds the "posts" edges to the JobPost entity.
func (_u *ParseRunUpdate) AddPosts(v ...*JobPost) *ParseRunUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPostIDs(ids...)
}

// Mutation returns the ParseRunMutation object of the builder.
func (_u *ParseRunUpdate) Mutation() *ParseRunMutation {
	return _u.mutation
}

// ClearPosts clears all "posts" edges to the JobPost entity.
func (_u *ParseRunUpdate) ClearPosts() *ParseRunUpdate {
	_u.mutation.ClearPosts()
	return _u
}

// RemovePostIDs removes the "posts" edge to JobPost entities by IDs.
func (_u *ParseRunUpdate) RemovePostIDs(ids ...uuid.UUID) *ParseRunUpdate {
	_u.mutation.RemovePostIDs(ids...)
	return _u
}

// RemovePosts removes "posts" edges to JobPost entities.
func (_u *ParseRunUpdate) RemovePosts(v ...*JobPost) *ParseRunUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePostIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ParseRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParseRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ParseRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParseRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParseRunUpdate) check() error {
	if v, ok := _u.mutation.JobID(); ok {
		if err := parserun.JobIDValidator(v); err != nil {
			return &ValidationError{Name: "job_id", err: fmt.Errorf(`ent: validator failed for field "ParseRun.job_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceID(); ok {
		if err := parserun.SourceIDValidator(v); err != nil {
			return &ValidationError{Name: "source_id", err: fmt.Errorf(`ent: validator failed for field "ParseRun.source_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := parserun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ParseRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ParseRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(parserun.Table, parserun.Columns, sqlgraph.NewFieldSpec(parserun.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(parserun.FieldJobID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceID(); ok {
		_spec.SetField(parserun.FieldSourceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(parserun.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(parserun.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(parserun.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(parserun.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(parserun.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(parserun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(parserun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ValidationErrors(); ok {
		_spec.SetField(parserun.FieldValidationErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValidationErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, parserun.FieldValidationErrors, value)
		})
	}
	if _u.mutation.ValidationErrorsCleared() {
		_spec.ClearField(parserun.FieldValidationErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(parserun.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(parserun.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(parserun.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(parserun.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(parserun.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(parserun.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Chunks(); ok {
		_spec.SetField(parserun.FieldChunks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunks(); ok {
		_spec.AddField(parserun.FieldChunks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsCorrigendum(); ok {
		_spec.SetField(parserun.FieldIsCorrigendum, field.TypeBool, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(parserun.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(parserun.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(parserun.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(parserun.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(parserun.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ResultJSON(); ok {
		_spec.SetField(parserun.FieldResultJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResultJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, parserun.FieldResultJSON, value)
		})
	}
	if _u.mutation.ResultJSONCleared() {
		_spec.ClearField(parserun.FieldResultJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(parserun.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(parserun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(parserun.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.PostsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPostsIDs(); len(nodes) > 0 && !_u.mutation.PostsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PostsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{parserun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ParseRunUpdateOne is the builder for updating a single ParseRun entity.
type ParseRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ParseRunMutation
}

// SetJobID sets the "job_id" field.
func (_u *ParseRunUpdateOne) SetJobID(v string) *ParseRunUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *ParseRunUpdateOne) SetNillableJobID(v *string) *ParseRunUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetSourceID sets the "source_id" field.
func (_u *ParseRunUpdateOne) SetSourceID(v string) *ParseRunUpdateOne {
	_u.mutation.SetSourceID(v)
	return _u
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_u *ParseRunUpdateOne) SetNillableSourceID(v *string) *ParseRunUpdateOne {
	if v != nil {
		_u.SetSourceID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ParseRunUpdateOne) SetCategory(v string) *ParseRunUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ParseRunUpdateOne) SetNillableCategory(v *string) *ParseRunUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *ParseRunUpdateOne) ClearCategory() *ParseRunUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ParseRunUpdateOne) SetStatus(v string) *ParseRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ParseRunUpdateOne) SetNillableStatus(v *string) *ParseRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *ParseRunUpdateOne) SetErrorKind(v string) *ParseRunUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *ParseRunUpdateOne) SetNillableErrorKind(v *string) *ParseRunUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *ParseRunUpdateOne) ClearErrorKind() *ParseRunUpdateOne {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ParseRunUpdateOne) SetErrorMessage(v string) *ParseRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ParseRunUpdateOne) SetNillableErrorMessage(v *string) *ParseRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ParseRunUpdateOne) ClearErrorMessage() *ParseRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetValidationErrors sets the "validation_errors" field.
func (_u *ParseRunUpdateOne) SetValidationErrors(v []string) *ParseRunUpdateOne {
	_u.mutation.SetValidationErrors(v)
	return _u
}

// AppendValidationErrors appends value to the "validation_errors" field.
func (_u *ParseRunUpdateOne) AppendValidationErrors(v []string) *ParseRunUpdateOne {
	_u.mutation.AppendValidationErrors(v)
	return _u
}

// ClearValidationErrors clears the value of the "validation_errors" field.
func (_u *ParseRunUpdateOne) ClearValidationErrors() *ParseRunUpdateOne {
	_u.mutation.ClearValidationErrors()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ParseRunUpdateOne) SetDurationMs(v int64) *ParseRunUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ParseRunUpdateOne) SetNillableDurationMs(v *int64) *ParseRunUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ParseRunUpdateOne) AddDurationMs(v int64) *ParseRunUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *ParseRunUpdateOne) SetTokensUsed(v int) *ParseRunUpdateOne {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *ParseRunUpdateOne) SetNillableTokensUsed(v *int) *ParseRunUpdateOne {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *ParseRunUpdateOne) AddTokensUsed(v int) *ParseRunUpdateOne {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ParseRunUpdateOne) SetAttempts(v int) *ParseRunUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ParseRunUpdateOne) SetNillableAttempts(v *int) *ParseRunUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ParseRunUpdateOne) AddAttempts(v int) *ParseRunUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetChunks sets the "chunks" field.
func (_u *ParseRunUpdateOne) SetChunks(v int) *ParseRunUpdateOne {
	_u.mutation.ResetChunks()
	_u.mutation.SetChunks(v)
	return _u
}

// SetNillableChunks sets the "chunks" field if the given value is not nil.
func (_u *ParseRunUpdateOne) SetNillableChunks(v *int) *ParseRunUpdateOne {
	if v != nil {
		_u.SetChunks(*v)
	}
	return _u
}

// AddChunks adds value to the "chunks" field.
func (_u *ParseRunUpdateOne) AddChunks(v int) *ParseRunUpdateOne {
	_u.mutation.AddChunks(v)
	return _u
}

// SetIsCorrigendum sets the "is_corrigendum" field.
func (_u *ParseRunUpdateOne) SetIsCorrigendum(v bool) *ParseRunUpdateOne {
	_u.mutation.SetIsCorrigendum(v)
	return _u
}

// SetNillableIsCorrigendum sets the "is_corrigendum" field if the given value is not nil.
func (_u *ParseRunUpdateOne) SetNillableIsCorrigendum(v *bool) *ParseRunUpdateOne {
	if v != nil {
		_u.SetIsCorrigendum(*v)
	}
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *ParseRunUpdateOne) SetNeedsReview(v bool) *ParseRunUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *ParseRunUpdateOne) SetNillableNeedsReview(v *bool) *ParseRunUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *ParseRunUpdateOne) SetModelName(v string) *ParseRunUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *ParseRunUpdateOne) SetNillableModelName(v *string) *ParseRunUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *ParseRunUpdateOne) ClearModelName() *ParseRunUpdateOne {
	_u.mutation.ClearModelName()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ParseRunUpdateOne) SetSummary(v string) *ParseRunUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ParseRunUpdateOne) SetNillableSummary(v *string) *ParseRunUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ParseRunUpdateOne) ClearSummary() *ParseRunUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetResultJSON sets the "result_json" field.
func (_u *ParseRunUpdateOne) SetResultJSON(v json.RawMessage) *ParseRunUpdateOne {
	_u.mutation.SetResultJSON(v)
	return _u
}

// AppendResultJSON appends value to the "result_json" field.
func (_u *ParseRunUpdateOne) AppendResultJSON(v json.RawMessage) *ParseRunUpdateOne {
	_u.mutation.AppendResultJSON(v)
	return _u
}

// ClearResultJSON clears the value of the "result_json" field.
func (_u *ParseRunUpdateOne) ClearResultJSON() *ParseRunUpdateOne {
	_u.mutation.ClearResultJSON()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ParseRunUpdateOne) SetStartedAt(v time.Time) *ParseRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ParseRunUpdateOne) SetNillableStartedAt(v *time.Time) *ParseRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ParseRunUpdateOne) SetFinishedAt(v time.Time) *ParseRunUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ParseRunUpdateOne) SetNillableFinishedAt(v *time.Time) *ParseRunUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ParseRunUpdateOne) ClearFinishedAt() *ParseRunUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// AddPostIDs adds the "posts" edge to the JobPost entity by IDs.
func (_u *ParseRunUpdateOne) AddPostIDs(ids ...uuid.UUID) *ParseRunUpdateOne {
	_u.mutation.AddPostIDs(ids...)
	return _u
}

// AddPosts adds the "posts" edges to the JobPost entity.
func (_u *ParseRunUpdateOne) AddPosts(v ...*JobPost) *ParseRunUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPostIDs(ids...)
}

// Mutation returns the ParseRunMutation object of the builder.
func (_u *ParseRunUpdateOne) Mutation() *ParseRunMutation {
	return _u.mutation
}

// ClearPosts clears all "posts" edges to the JobPost entity.
func (_u *ParseRunUpdateOne) ClearPosts() *ParseRunUpdateOne {
	_u.mutation.ClearPosts()
	return _u
}

// RemovePostIDs removes the "posts" edge to JobPost entities by IDs.
func (_u *ParseRunUpdateOne) RemovePostIDs(ids ...uuid.UUID) *ParseRunUpdateOne {
	_u.mutation.RemovePostIDs(ids...)
	return _u
}

// RemovePosts removes "posts" edges to JobPost entities.
func (_u *ParseRunUpdateOne) RemovePosts(v ...*JobPost) *ParseRunUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePostIDs(ids...)
}

// Where appends a list predicates to the ParseRunUpdate builder.
func (_u *ParseRunUpdateOne) Where(ps ...predicate.ParseRun) *ParseRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ParseRunUpdateOne) Select(field string, fields ...string) *ParseRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ParseRun entity.
func (_u *ParseRunUpdateOne) Save(ctx context.Context) (*ParseRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParseRunUpdateOne) SaveX(ctx context.Context) *ParseRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ParseRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParseRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParseRunUpdateOne) check() error {
	if v, ok := _u.mutation.JobID(); ok {
		if err := parserun.JobIDValidator(v); err != nil {
			return &ValidationError{Name: "job_id", err: fmt.Errorf(`ent: validator failed for field "ParseRun.job_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceID(); ok {
		if err := parserun.SourceIDValidator(v); err != nil {
			return &ValidationError{Name: "source_id", err: fmt.Errorf(`ent: validator failed for field "ParseRun.source_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := parserun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ParseRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ParseRunUpdateOne) sqlSave(ctx context.Context) (_node *ParseRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(parserun.Table, parserun.Columns, sqlgraph.NewFieldSpec(parserun.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ParseRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, parserun.FieldID)
		for _, f := range fields {
			if !parserun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != parserun.FieldID {
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
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(parserun.FieldJobID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceID(); ok {
		_spec.SetField(parserun.FieldSourceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(parserun.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(parserun.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(parserun.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(parserun.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(parserun.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(parserun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(parserun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ValidationErrors(); ok {
		_spec.SetField(parserun.FieldValidationErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValidationErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, parserun.FieldValidationErrors, value)
		})
	}
	if _u.mutation.ValidationErrorsCleared() {
		_spec.ClearField(parserun.FieldValidationErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(parserun.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(parserun.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(parserun.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(parserun.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(parserun.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(parserun.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Chunks(); ok {
		_spec.SetField(parserun.FieldChunks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunks(); ok {
		_spec.AddField(parserun.FieldChunks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsCorrigendum(); ok {
		_spec.SetField(parserun.FieldIsCorrigendum, field.TypeBool, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(parserun.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(parserun.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(parserun.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(parserun.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(parserun.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ResultJSON(); ok {
		_spec.SetField(parserun.FieldResultJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResultJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, parserun.FieldResultJSON, value)
		})
	}
	if _u.mutation.ResultJSONCleared() {
		_spec.ClearField(parserun.FieldResultJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(parserun.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(parserun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(parserun.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.PostsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPostsIDs(); len(nodes) > 0 && !_u.mutation.PostsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PostsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ParseRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{parserun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
