// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jobsarthi/notification-parser/gen/ent/jobpost"
	"github.com/jobsarthi/notification-parser/gen/ent/parserun"
	"github.com/jobsarthi/notification-parser/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeJobPost  = "JobPost"
	TypeParseRun = "ParseRun"
)

// JobPostMutation represents an operation that mutates the JobPost nodes in the graph.
type JobPostMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	post_name     *string
	vacancies     *int
	addvacancies  *int
	eligibility   *string
	pay_level     *string
	age_limit     *string
	clearedFields map[string]struct{}
	run           *uuid.UUID
	clearedrun    bool
	done          bool
	oldValue      func(context.Context) (*JobPost, error)
	predicates    []predicate.JobPost
}

var _ ent.Mutation = (*JobPostMutation)(nil)

// jobpostOption allows management of the mutation configuration using functional options.
type jobpostOption func(*JobPostMutation)

// newJobPostMutation creates new mutation for the JobPost entity.
func newJobPostMutation(c config, op Op, opts ...jobpostOption) *JobPostMutation {
	m := &JobPostMutation{
		config:        c,
		op:            op,
		typ:           TypeJobPost,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobPostID sets the ID field of the mutation.
func withJobPostID(id uuid.UUID) jobpostOption {
	return func(m *JobPostMutation) {
		var (
			err   error
			once  sync.Once
			value *JobPost
		)
		m.oldValue = func(ctx context.Context) (*JobPost, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JobPost.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJobPost sets the old JobPost of the mutation.
func withJobPost(node *JobPost) jobpostOption {
	return func(m *JobPostMutation) {
		m.oldValue = func(context.Context) (*JobPost, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobPostMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobPostMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of JobPost entities.
func (m *JobPostMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobPostMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobPostMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JobPost.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *JobPostMutation) SetRunID(u uuid.UUID) {
	m.run = &u
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *JobPostMutation) RunID() (r uuid.UUID, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the JobPost entity.
// If the JobPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPostMutation) OldRunID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *JobPostMutation) ResetRunID() {
	m.run = nil
}

// SetPostName sets the "post_name" field.
func (m *JobPostMutation) SetPostName(s string) {
	m.post_name = &s
}

// PostName returns the value of the "post_name" field in the mutation.
func (m *JobPostMutation) PostName() (r string, exists bool) {
	v := m.post_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPostName returns the old "post_name" field's value of the JobPost entity.
// If the JobPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPostMutation) OldPostName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostName: %w", err)
	}
	return oldValue.PostName, nil
}

// ResetPostName resets all changes to the "post_name" field.
func (m *JobPostMutation) ResetPostName() {
	m.post_name = nil
}

// SetVacancies sets the "vacancies" field.
func (m *JobPostMutation) SetVacancies(i int) {
	m.vacancies = &i
	m.addvacancies = nil
}

// Vacancies returns the value of the "vacancies" field in the mutation.
func (m *JobPostMutation) Vacancies() (r int, exists bool) {
	v := m.vacancies
	if v == nil {
		return
	}
	return *v, true
}

// OldVacancies returns the old "vacancies" field's value of the JobPost entity.
// If the JobPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPostMutation) OldVacancies(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVacancies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVacancies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVacancies: %w", err)
	}
	return oldValue.Vacancies, nil
}

// AddVacancies adds i to the "vacancies" field.
func (m *JobPostMutation) AddVacancies(i int) {
	if m.addvacancies != nil {
		*m.addvacancies += i
	} else {
		m.addvacancies = &i
	}
}

// AddedVacancies returns the value that was added to the "vacancies" field in this mutation.
func (m *JobPostMutation) AddedVacancies() (r int, exists bool) {
	v := m.addvacancies
	if v == nil {
		return
	}
	return *v, true
}

// ClearVacancies clears the value of the "vacancies" field.
func (m *JobPostMutation) ClearVacancies() {
	m.vacancies = nil
	m.addvacancies = nil
	m.clearedFields[jobpost.FieldVacancies] = struct{}{}
}

// VacanciesCleared returns if the "vacancies" field was cleared in this mutation.
func (m *JobPostMutation) VacanciesCleared() bool {
	_, ok := m.clearedFields[jobpost.FieldVacancies]
	return ok
}

// ResetVacancies resets all changes to the "vacancies" field.
func (m *JobPostMutation) ResetVacancies() {
	m.vacancies = nil
	m.addvacancies = nil
	delete(m.clearedFields, jobpost.FieldVacancies)
}

// SetEligibility sets the "eligibility" field.
func (m *JobPostMutation) SetEligibility(s string) {
	m.eligibility = &s
}

// Eligibility returns the value of the "eligibility" field in the mutation.
func (m *JobPostMutation) Eligibility() (r string, exists bool) {
	v := m.eligibility
	if v == nil {
		return
	}
	return *v, true
}

// OldEligibility returns the old "eligibility" field's value of the JobPost entity.
// If the JobPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPostMutation) OldEligibility(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEligibility is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEligibility requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEligibility: %w", err)
	}
	return oldValue.Eligibility, nil
}

// ClearEligibility clears the value of the "eligibility" field.
func (m *JobPostMutation) ClearEligibility() {
	m.eligibility = nil
	m.clearedFields[jobpost.FieldEligibility] = struct{}{}
}

// EligibilityCleared returns if the "eligibility" field was cleared in this mutation.
func (m *JobPostMutation) EligibilityCleared() bool {
	_, ok := m.clearedFields[jobpost.FieldEligibility]
	return ok
}

// ResetEligibility resets all changes to the "eligibility" field.
func (m *JobPostMutation) ResetEligibility() {
	m.eligibility = nil
	delete(m.clearedFields, jobpost.FieldEligibility)
}

// SetPayLevel sets the "pay_level" field.
func (m *JobPostMutation) SetPayLevel(s string) {
	m.pay_level = &s
}

// PayLevel returns the value of the "pay_level" field in the mutation.
func (m *JobPostMutation) PayLevel() (r string, exists bool) {
	v := m.pay_level
	if v == nil {
		return
	}
	return *v, true
}

// OldPayLevel returns the old "pay_level" field's value of the JobPost entity.
// If the JobPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPostMutation) OldPayLevel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayLevel: %w", err)
	}
	return oldValue.PayLevel, nil
}

// ClearPayLevel clears the value of the "pay_level" field.
func (m *JobPostMutation) ClearPayLevel() {
	m.pay_level = nil
	m.clearedFields[jobpost.FieldPayLevel] = struct{}{}
}

// PayLevelCleared returns if the "pay_level" field was cleared in this mutation.
func (m *JobPostMutation) PayLevelCleared() bool {
	_, ok := m.clearedFields[jobpost.FieldPayLevel]
	return ok
}

// ResetPayLevel resets all changes to the "pay_level" field.
func (m *JobPostMutation) ResetPayLevel() {
	m.pay_level = nil
	delete(m.clearedFields, jobpost.FieldPayLevel)
}

// SetAgeLimit sets the "age_limit" field.
func (m *JobPostMutation) SetAgeLimit(s string) {
	m.age_limit = &s
}

// AgeLimit returns the value of the "age_limit" field in the mutation.
func (m *JobPostMutation) AgeLimit() (r string, exists bool) {
	v := m.age_limit
	if v == nil {
		return
	}
	return *v, true
}

// OldAgeLimit returns the old "age_limit" field's value of the JobPost entity.
// If the JobPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPostMutation) OldAgeLimit(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgeLimit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgeLimit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgeLimit: %w", err)
	}
	return oldValue.AgeLimit, nil
}

// ClearAgeLimit clears the value of the "age_limit" field.
func (m *JobPostMutation) ClearAgeLimit() {
	m.age_limit = nil
	m.clearedFields[jobpost.FieldAgeLimit] = struct{}{}
}

// AgeLimitCleared returns if the "age_limit" field was cleared in this mutation.
func (m *JobPostMutation) AgeLimitCleared() bool {
	_, ok := m.clearedFields[jobpost.FieldAgeLimit]
	return ok
}

// ResetAgeLimit resets all changes to the "age_limit" field.
func (m *JobPostMutation) ResetAgeLimit() {
	m.age_limit = nil
	delete(m.clearedFields, jobpost.FieldAgeLimit)
}

// ClearRun clears the "run" edge to the ParseRun entity.
func (m *JobPostMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[jobpost.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the ParseRun entity was cleared.
func (m *JobPostMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *JobPostMutation) RunIDs() (ids []uuid.UUID) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *JobPostMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the JobPostMutation builder.
func (m *JobPostMutation) Where(ps ...predicate.JobPost) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobPostMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobPostMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JobPost, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobPostMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobPostMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JobPost).
func (m *JobPostMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobPostMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.run != nil {
		fields = append(fields, jobpost.FieldRunID)
	}
	if m.post_name != nil {
		fields = append(fields, jobpost.FieldPostName)
	}
	if m.vacancies != nil {
		fields = append(fields, jobpost.FieldVacancies)
	}
	if m.eligibility != nil {
		fields = append(fields, jobpost.FieldEligibility)
	}
	if m.pay_level != nil {
		fields = append(fields, jobpost.FieldPayLevel)
	}
	if m.age_limit != nil {
		fields = append(fields, jobpost.FieldAgeLimit)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobPostMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case jobpost.FieldRunID:
		return m.RunID()
	case jobpost.FieldPostName:
		return m.PostName()
	case jobpost.FieldVacancies:
		return m.Vacancies()
	case jobpost.FieldEligibility:
		return m.Eligibility()
	case jobpost.FieldPayLevel:
		return m.PayLevel()
	case jobpost.FieldAgeLimit:
		return m.AgeLimit()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobPostMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case jobpost.FieldRunID:
		return m.OldRunID(ctx)
	case jobpost.FieldPostName:
		return m.OldPostName(ctx)
	case jobpost.FieldVacancies:
		return m.OldVacancies(ctx)
	case jobpost.FieldEligibility:
		return m.OldEligibility(ctx)
	case jobpost.FieldPayLevel:
		return m.OldPayLevel(ctx)
	case jobpost.FieldAgeLimit:
		return m.OldAgeLimit(ctx)
	}
	return nil, fmt.Errorf("unknown JobPost field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobPostMutation) SetField(name string, value ent.Value) error {
	switch name {
	case jobpost.FieldRunID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case jobpost.FieldPostName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostName(v)
		return nil
	case jobpost.FieldVacancies:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVacancies(v)
		return nil
	case jobpost.FieldEligibility:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEligibility(v)
		return nil
	case jobpost.FieldPayLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayLevel(v)
		return nil
	case jobpost.FieldAgeLimit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgeLimit(v)
		return nil
	}
	return fmt.Errorf("unknown JobPost field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobPostMutation) AddedFields() []string {
	var fields []string
	if m.addvacancies != nil {
		fields = append(fields, jobpost.FieldVacancies)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobPostMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case jobpost.FieldVacancies:
		return m.AddedVacancies()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobPostMutation) AddField(name string, value ent.Value) error {
	switch name {
	case jobpost.FieldVacancies:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVacancies(v)
		return nil
	}
	return fmt.Errorf("unknown JobPost numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobPostMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(jobpost.FieldVacancies) {
		fields = append(fields, jobpost.FieldVacancies)
	}
	if m.FieldCleared(jobpost.FieldEligibility) {
		fields = append(fields, jobpost.FieldEligibility)
	}
	if m.FieldCleared(jobpost.FieldPayLevel) {
		fields = append(fields, jobpost.FieldPayLevel)
	}
	if m.FieldCleared(jobpost.FieldAgeLimit) {
		fields = append(fields, jobpost.FieldAgeLimit)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobPostMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobPostMutation) ClearField(name string) error {
	switch name {
	case jobpost.FieldVacancies:
		m.ClearVacancies()
		return nil
	case jobpost.FieldEligibility:
		m.ClearEligibility()
		return nil
	case jobpost.FieldPayLevel:
		m.ClearPayLevel()
		return nil
	case jobpost.FieldAgeLimit:
		m.ClearAgeLimit()
		return nil
	}
	return fmt.Errorf("unknown JobPost nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobPostMutation) ResetField(name string) error {
	switch name {
	case jobpost.FieldRunID:
		m.ResetRunID()
		return nil
	case jobpost.FieldPostName:
		m.ResetPostName()
		return nil
	case jobpost.FieldVacancies:
		m.ResetVacancies()
		return nil
	case jobpost.FieldEligibility:
		m.ResetEligibility()
		return nil
	case jobpost.FieldPayLevel:
		m.ResetPayLevel()
		return nil
	case jobpost.FieldAgeLimit:
		m.ResetAgeLimit()
		return nil
	}
	return fmt.Errorf("unknown JobPost field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobPostMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, jobpost.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobPostMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case jobpost.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobPostMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobPostMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobPostMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, jobpost.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobPostMutation) EdgeCleared(name string) bool {
	switch name {
	case jobpost.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobPostMutation) ClearEdge(name string) error {
	switch name {
	case jobpost.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown JobPost unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobPostMutation) ResetEdge(name string) error {
	switch name {
	case jobpost.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown JobPost edge %s", name)
}

// ParseRunMutation represents an operation that mutates the ParseRun nodes in the graph.
type ParseRunMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	job_id                  *string
	source_id               *string
	category                *string
	status                  *string
	error_kind              *string
	error_message           *string
	validation_errors       *[]string
	appendvalidation_errors []string
	duration_ms             *int64
	addduration_ms          *int64
	tokens_used             *int
	addtokens_used          *int
	attempts                *int
	addattempts             *int
	chunks                  *int
	addchunks               *int
	is_corrigendum          *bool
	needs_review            *bool
	model_name              *string
	summary                 *string
	result_json             *json.RawMessage
	appendresult_json       json.RawMessage
	started_at              *time.Time
	finished_at             *time.Time
	clearedFields           map[string]struct{}
	posts                   map[uuid.UUID]struct{}
	removedposts            map[uuid.UUID]struct{}
	clearedposts            bool
	done                    bool
	oldValue                func(context.Context) (*ParseRun, error)
	predicates              []predicate.ParseRun
}

var _ ent.Mutation = (*ParseRunMutation)(nil)

// parserunOption allows management of the mutation configuration using functional options.
type parserunOption func(*ParseRunMutation)

// newParseRunMutation creates new mutation for the ParseRun entity.
func newParseRunMutation(c config, op Op, opts ...parserunOption) *ParseRunMutation {
	m := &ParseRunMutation{
		config:        c,
		op:            op,
		typ:           TypeParseRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withParseRunID sets the ID field of the mutation.
func withParseRunID(id uuid.UUID) parserunOption {
	return func(m *ParseRunMutation) {
		var (
			err   error
			once  sync.Once
			value *ParseRun
		)
		m.oldValue = func(ctx context.Context) (*ParseRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ParseRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withParseRun sets the old ParseRun of the mutation.
func withParseRun(node *ParseRun) parserunOption {
	return func(m *ParseRunMutation) {
		m.oldValue = func(context.Context) (*ParseRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ParseRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ParseRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ParseRun entities.
func (m *ParseRunMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ParseRunMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ParseRunMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ParseRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *ParseRunMutation) SetJobID(s string) {
	m.job_id = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *ParseRunMutation) JobID() (r string, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the ParseRun entity.
// If the ParseRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseRunMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *ParseRunMutation) ResetJobID() {
	m.job_id = nil
}

// SetSourceID sets the "source_id" field.
func (m *ParseRunMutation) SetSourceID(s string) {
	m.source_id = &s
}

// SourceID returns the value of the "source_id" field in the mutation.
func (m *ParseRunMutation) SourceID() (r string, exists bool) {
	v := m.source_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceID returns the old "source_id" field's value of the ParseRun entity.
// If the ParseRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseRunMutation) OldSourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceID: %w", err)
	}
	return oldValue.SourceID, nil
}

// ResetSourceID resets all changes to the "source_id" field.
func (m *ParseRunMutation) ResetSourceID() {
	m.source_id = nil
}

// SetCategory sets the "category" field.
func (m *ParseRunMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *ParseRunMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the ParseRun entity.
// If the ParseRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseRunMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *ParseRunMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[parserun.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *ParseRunMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[parserun.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *ParseRunMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, parserun.FieldCategory)
}

// SetStatus sets the "status" field.
func (m *ParseRunMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ParseRunMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ParseRun entity.
// If the ParseRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseRunMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ParseRunMutation) ResetStatus() {
	m.status = nil
}

// SetErrorKind sets the "error_kind" field.
func (m *ParseRunMutation) SetErrorKind(s string) {
	m.error_kind = &s
}

// ErrorKind returns the value of the "error_kind" field in the mutation.
func (m *ParseRunMutation) ErrorKind() (r string, exists bool) {
	v := m.error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorKind returns the old "error_kind" field's value of the ParseRun entity.
// If the ParseRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseRunMutation) OldErrorKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorKind: %w", err)
	}
	return oldValue.ErrorKind, nil
}

// ClearErrorKind clears the value of the "error_kind" field.
func (m *ParseRunMutation) ClearErrorKind() {
	m.error_kind = nil
	m.clearedFields[parserun.FieldErrorKind] = struct{}{}
}

// ErrorKindCleared returns if the "error_kind" field was cleared in this mutation.
func (m *ParseRunMutation) ErrorKindCleared() bool {
	_, ok := m.clearedFields[parserun.FieldErrorKind]
	return ok
}

// ResetErrorKind resets all changes to the "error_kind" field.
func (m *ParseRunMutation) ResetErrorKind() {
	m.error_kind = nil
	delete(m.clearedFields, parserun.FieldErrorKind)
}

// SetErrorMessage sets the "error_message" field.
func (m *ParseRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ParseRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ParseRun entity.
// If the ParseRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ParseRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[parserun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ParseRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[parserun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ParseRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, parserun.FieldErrorMessage)
}

// SetValidationErrors sets the "validation_errors" field.
func (m *ParseRunMutation) SetValidationErrors(s []string) {
	m.validation_errors = &s
	m.appendvalidation_errors = nil
}

// ValidationErrors returns the value of the "validation_errors" field in the mutation.
func (m *ParseRunMutation) ValidationErrors() (r []string, exists bool) {
	v := m.validation_errors
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationErrors returns the old "validation_errors" field's value of the ParseRun entity.
// If the ParseRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseRunMutation) OldValidationErrors(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationErrors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationErrors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationErrors: %w", err)
	}
	return oldValue.ValidationErrors, nil
}

// AppendValidationErrors adds s to the "validation_errors" field.
func (m *ParseRunMutation) AppendValidationErrors(s []string) {
	m.appendvalidation_errors = append(m.appendvalidation_errors, s...)
}

// AppendedValidationErrors returns the list of values that were appended to the "validation_errors" field in this mutation.
func (m *ParseRunMutation) AppendedValidationErrors() ([]string, bool) {
	if len(m.appendvalidation_errors) == 0 {
		return nil, false
	}
	return m.appendvalidation_errors, true
}

// ClearValidationErrors clears the value of the "validation_errors" field.
func (m *ParseRunMutation) ClearValidationErrors() {
	m.validation_errors = nil
	m.appendvalidation_errors = nil
	m.clearedFields[parserun.FieldValidationErrors] = struct{}{}
}

// ValidationErrorsCleared returns if the "validation_errors" field was cleared in this mutation.
func (m *ParseRunMutation) ValidationErrorsCleared() bool {
	_, ok := m.clearedFields[parserun.FieldValidationErrors]
	return ok
}

// ResetValidationErrors resets all changes to the "validation_errors" field.
func (m *ParseRunMutation) ResetValidationErrors() {
	m.validation_errors = nil
	m.appendvalidation_errors = nil
	delete(m.clearedFields, parserun.FieldValidationErrors)
}

// SetDurationMs sets the "duration_ms" field.
func (m *ParseRunMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *ParseRunMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the ParseRun entity.
// If the ParseRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseRunMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *ParseRunMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *ParseRunMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *ParseRunMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetTokensUsed sets the "tokens_used" field.
func (m *ParseRunMutation) SetTokensUsed(i int) {
	m.tokens_used = &i
	m.addtokens_used = nil
}

// TokensUsed returns the value of the "tokens_used" field in the mutation.
func (m *ParseRunMutation) TokensUsed() (r int, exists bool) {
	v := m.tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensUsed returns the old "tokens_used" field's value of the ParseRun entity.
// If the ParseRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseRunMutation) OldTokensUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensUsed: %w", err)
	}
	return oldValue.TokensUsed, nil
}

// AddTokensUsed adds i to the "tokens_used" field.
func (m *ParseRunMutation) AddTokensUsed(i int) {
	if m.addtokens_used != nil {
		*m.addtokens_used += i
	} else {
		m.addtokens_used = &i
	}
}

// AddedTokensUsed returns the value that was added to the "tokens_used" field in this mutation.
func (m *ParseRunMutation) AddedTokensUsed() (r int, exists bool) {
	v := m.addtokens_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensUsed resets all changes to the "tokens_used" field.
func (m *ParseRunMutation) ResetTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
}

// SetAttempts sets the "attempts" field.
func (m *ParseRunMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *ParseRunMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the ParseRun entity.
// If the ParseRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseRunMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *ParseRunMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *ParseRunMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *ParseRunMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetChunks sets the "chunks" field.
func (m *ParseRunMutation) SetChunks(i int) {
	m.chunks = &i
	m.addchunks = nil
}

// Chunks returns the value of the "chunks" field in the mutation.
func (m *ParseRunMutation) Chunks() (r int, exists bool) {
	v := m.chunks
	if v == nil {
		return
	}
	return *v, true
}

// OldChunks returns the old "chunks" field's value of the ParseRun entity.
// If the ParseRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseRunMutation) OldChunks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunks: %w", err)
	}
	return oldValue.Chunks, nil
}

// AddChunks adds i to the "chunks" field.
func (m *ParseRunMutation) AddChunks(i int) {
	if m.addchunks != nil {
		*m.addchunks += i
	} else {
		m.addchunks = &i
	}
}

// AddedChunks returns the value that was added to the "chunks" field in this mutation.
func (m *ParseRunMutation) AddedChunks() (r int, exists bool) {
	v := m.addchunks
	if v == nil {
		return
	}
	return *v, true
}

// ResetChunks resets all changes to the "chunks" field.
func (m *ParseRunMutation) ResetChunks() {
	m.chunks = nil
	m.addchunks = nil
}

// SetIsCorrigendum sets the "is_corrigendum" field.
func (m *ParseRunMutation) SetIsCorrigendum(b bool) {
	m.is_corrigendum = &b
}

// IsCorrigendum returns the value of the "is_corrigendum" field in the mutation.
func (m *ParseRunMutation) IsCorrigendum() (r bool, exists bool) {
	v := m.is_corrigendum
	if v == nil {
		return
	}
	return *v, true
}

// OldIsCorrigendum returns the old "is_corrigendum" field's value of the ParseRun entity.
// If the ParseRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseRunMutation) OldIsCorrigendum(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsCorrigendum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsCorrigendum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsCorrigendum: %w", err)
	}
	return oldValue.IsCorrigendum, nil
}

// ResetIsCorrigendum resets all changes to the "is_corrigendum" field.
func (m *ParseRunMutation) ResetIsCorrigendum() {
	m.is_corrigendum = nil
}

// SetNeedsReview sets the "needs_review" field.
func (m *ParseRunMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *ParseRunMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the ParseRun entity.
// If the ParseRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseRunMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *ParseRunMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetModelName sets the "model_name" field.
func (m *ParseRunMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *ParseRunMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the ParseRun entity.
// If the ParseRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseRunMutation) OldModelName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ClearModelName clears the value of the "model_name" field.
func (m *ParseRunMutation) ClearModelName() {
	m.model_name = nil
	m.clearedFields[parserun.FieldModelName] = struct{}{}
}

// ModelNameCleared returns if the "model_name" field was cleared in this mutation.
func (m *ParseRunMutation) ModelNameCleared() bool {
	_, ok := m.clearedFields[parserun.FieldModelName]
	return ok
}

// ResetModelName resets all changes to the "model_name" field.
func (m *ParseRunMutation) ResetModelName() {
	m.model_name = nil
	delete(m.clearedFields, parserun.FieldModelName)
}

// SetSummary sets the "summary" field.
func (m *ParseRunMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *ParseRunMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the ParseRun entity.
// If the ParseRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseRunMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *ParseRunMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[parserun.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *ParseRunMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[parserun.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *ParseRunMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, parserun.FieldSummary)
}

// SetResultJSON sets the "result_json" field.
func (m *ParseRunMutation) SetResultJSON(jm json.RawMessage) {
	m.result_json = &jm
	m.appendresult_json = nil
}

// ResultJSON returns the value of the "result_json" field in the mutation.
func (m *ParseRunMutation) ResultJSON() (r json.RawMessage, exists bool) {
	v := m.result_json
	if v == nil {
		return
	}
	return *v, true
}

// OldResultJSON returns the old "result_json" field's value of the ParseRun entity.
// If the ParseRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseRunMutation) OldResultJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultJSON: %w", err)
	}
	return oldValue.ResultJSON, nil
}

// AppendResultJSON adds jm to the "result_json" field.
func (m *ParseRunMutation) AppendResultJSON(jm json.RawMessage) {
	m.appendresult_json = append(m.appendresult_json, jm...)
}

// AppendedResultJSON returns the list of values that were appended to the "result_json" field in this mutation.
func (m *ParseRunMutation) AppendedResultJSON() (json.RawMessage, bool) {
	if len(m.appendresult_json) == 0 {
		return nil, false
	}
	return m.appendresult_json, true
}

// ClearResultJSON clears the value of the "result_json" field.
func (m *ParseRunMutation) ClearResultJSON() {
	m.result_json = nil
	m.appendresult_json = nil
	m.clearedFields[parserun.FieldResultJSON] = struct{}{}
}

// ResultJSONCleared returns if the "result_json" field was cleared in this mutation.
func (m *ParseRunMutation) ResultJSONCleared() bool {
	_, ok := m.clearedFields[parserun.FieldResultJSON]
	return ok
}

// ResetResultJSON resets all changes to the "result_json" field.
func (m *ParseRunMutation) ResetResultJSON() {
	m.result_json = nil
	m.appendresult_json = nil
	delete(m.clearedFields, parserun.FieldResultJSON)
}

// SetStartedAt sets the "started_at" field.
func (m *ParseRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ParseRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ParseRun entity.
// If the ParseRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseRunMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ParseRunMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ParseRunMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ParseRunMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ParseRun entity.
// If the ParseRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseRunMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ParseRunMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[parserun.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ParseRunMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[parserun.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ParseRunMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, parserun.FieldFinishedAt)
}

// AddPostIDs adds the "posts" edge to the JobPost entity by ids.
func (m *ParseRunMutation) AddPostIDs(ids ...uuid.UUID) {
	if m.posts == nil {
		m.posts = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.posts[ids[i]] = struct{}{}
	}
}

// ClearPosts clears the "posts" edge to the JobPost entity.
func (m *ParseRunMutation) ClearPosts() {
	m.clearedposts = true
}

// PostsCleared reports if the "posts" edge to the JobPost entity was cleared.
func (m *ParseRunMutation) PostsCleared() bool {
	return m.clearedposts
}

// RemovePostIDs removes the "posts" edge to the JobPost entity by IDs.
func (m *ParseRunMutation) RemovePostIDs(ids ...uuid.UUID) {
	if m.removedposts == nil {
		m.removedposts = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.posts, ids[i])
		m.removedposts[ids[i]] = struct{}{}
	}
}

// RemovedPosts returns the removed IDs of the "posts" edge to the JobPost entity.
func (m *ParseRunMutation) RemovedPostsIDs() (ids []uuid.UUID) {
	for id := range m.removedposts {
		ids = append(ids, id)
	}
	return
}

// PostsIDs returns the "posts" edge IDs in the mutation.
func (m *ParseRunMutation) PostsIDs() (ids []uuid.UUID) {
	for id := range m.posts {
		ids = append(ids, id)
	}
	return
}

// ResetPosts resets all changes to the "posts" edge.
func (m *ParseRunMutation) ResetPosts() {
	m.posts = nil
	m.clearedposts = false
	m.removedposts = nil
}

// Where appends a list predicates to the ParseRunMutation builder.
func (m *ParseRunMutation) Where(ps ...predicate.ParseRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ParseRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ParseRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ParseRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ParseRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ParseRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ParseRun).
func (m *ParseRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ParseRunMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.job_id != nil {
		fields = append(fields, parserun.FieldJobID)
	}
	if m.source_id != nil {
		fields = append(fields, parserun.FieldSourceID)
	}
	if m.category != nil {
		fields = append(fields, parserun.FieldCategory)
	}
	if m.status != nil {
		fields = append(fields, parserun.FieldStatus)
	}
	if m.error_kind != nil {
		fields = append(fields, parserun.FieldErrorKind)
	}
	if m.error_message != nil {
		fields = append(fields, parserun.FieldErrorMessage)
	}
	if m.validation_errors != nil {
		fields = append(fields, parserun.FieldValidationErrors)
	}
	if m.duration_ms != nil {
		fields = append(fields, parserun.FieldDurationMs)
	}
	if m.tokens_used != nil {
		fields = append(fields, parserun.FieldTokensUsed)
	}
	if m.attempts != nil {
		fields = append(fields, parserun.FieldAttempts)
	}
	if m.chunks != nil {
		fields = append(fields, parserun.FieldChunks)
	}
	if m.is_corrigendum != nil {
		fields = append(fields, parserun.FieldIsCorrigendum)
	}
	if m.needs_review != nil {
		fields = append(fields, parserun.FieldNeedsReview)
	}
	if m.model_name != nil {
		fields = append(fields, parserun.FieldModelName)
	}
	if m.summary != nil {
		fields = append(fields, parserun.FieldSummary)
	}
	if m.result_json != nil {
		fields = append(fields, parserun.FieldResultJSON)
	}
	if m.started_at != nil {
		fields = append(fields, parserun.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, parserun.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ParseRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case parserun.FieldJobID:
		return m.JobID()
	case parserun.FieldSourceID:
		return m.SourceID()
	case parserun.FieldCategory:
		return m.Category()
	case parserun.FieldStatus:
		return m.Status()
	case parserun.FieldErrorKind:
		return m.ErrorKind()
	case parserun.FieldErrorMessage:
		return m.ErrorMessage()
	case parserun.FieldValidationErrors:
		return m.ValidationErrors()
	case parserun.FieldDurationMs:
		return m.DurationMs()
	case parserun.FieldTokensUsed:
		return m.TokensUsed()
	case parserun.FieldAttempts:
		return m.Attempts()
	case parserun.FieldChunks:
		return m.Chunks()
	case parserun.FieldIsCorrigendum:
		return m.IsCorrigendum()
	case parserun.FieldNeedsReview:
		return m.NeedsReview()
	case parserun.FieldModelName:
		return m.ModelName()
	case parserun.FieldSummary:
		return m.Summary()
	case parserun.FieldResultJSON:
		return m.ResultJSON()
	case parserun.FieldStartedAt:
		return m.StartedAt()
	case parserun.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ParseRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case parserun.FieldJobID:
		return m.OldJobID(ctx)
	case parserun.FieldSourceID:
		return m.OldSourceID(ctx)
	case parserun.FieldCategory:
		return m.OldCategory(ctx)
	case parserun.FieldStatus:
		return m.OldStatus(ctx)
	case parserun.FieldErrorKind:
		return m.OldErrorKind(ctx)
	case parserun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case parserun.FieldValidationErrors:
		return m.OldValidationErrors(ctx)
	case parserun.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case parserun.FieldTokensUsed:
		return m.OldTokensUsed(ctx)
	case parserun.FieldAttempts:
		return m.OldAttempts(ctx)
	case parserun.FieldChunks:
		return m.OldChunks(ctx)
	case parserun.FieldIsCorrigendum:
		return m.OldIsCorrigendum(ctx)
	case parserun.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case parserun.FieldModelName:
		return m.OldModelName(ctx)
	case parserun.FieldSummary:
		return m.OldSummary(ctx)
	case parserun.FieldResultJSON:
		return m.OldResultJSON(ctx)
	case parserun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case parserun.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ParseRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParseRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case parserun.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case parserun.FieldSourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceID(v)
		return nil
	case parserun.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case parserun.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case parserun.FieldErrorKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorKind(v)
		return nil
	case parserun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case parserun.FieldValidationErrors:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationErrors(v)
		return nil
	case parserun.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case parserun.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensUsed(v)
		return nil
	case parserun.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case parserun.FieldChunks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunks(v)
		return nil
	case parserun.FieldIsCorrigendum:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsCorrigendum(v)
		return nil
	case parserun.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case parserun.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case parserun.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case parserun.FieldResultJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultJSON(v)
		return nil
	case parserun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case parserun.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ParseRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ParseRunMutation) AddedFields() []string {
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, parserun.FieldDurationMs)
	}
	if m.addtokens_used != nil {
		fields = append(fields, parserun.FieldTokensUsed)
	}
	if m.addattempts != nil {
		fields = append(fields, parserun.FieldAttempts)
	}
	if m.addchunks != nil {
		fields = append(fields, parserun.FieldChunks)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ParseRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case parserun.FieldDurationMs:
		return m.AddedDurationMs()
	case parserun.FieldTokensUsed:
		return m.AddedTokensUsed()
	case parserun.FieldAttempts:
		return m.AddedAttempts()
	case parserun.FieldChunks:
		return m.AddedChunks()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParseRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case parserun.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case parserun.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensUsed(v)
		return nil
	case parserun.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case parserun.FieldChunks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChunks(v)
		return nil
	}
	return fmt.Errorf("unknown ParseRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ParseRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(parserun.FieldCategory) {
		fields = append(fields, parserun.FieldCategory)
	}
	if m.FieldCleared(parserun.FieldErrorKind) {
		fields = append(fields, parserun.FieldErrorKind)
	}
	if m.FieldCleared(parserun.FieldErrorMessage) {
		fields = append(fields, parserun.FieldErrorMessage)
	}
	if m.FieldCleared(parserun.FieldValidationErrors) {
		fields = append(fields, parserun.FieldValidationErrors)
	}
	if m.FieldCleared(parserun.FieldModelName) {
		fields = append(fields, parserun.FieldModelName)
	}
	if m.FieldCleared(parserun.FieldSummary) {
		fields = append(fields, parserun.FieldSummary)
	}
	if m.FieldCleared(parserun.FieldResultJSON) {
		fields = append(fields, parserun.FieldResultJSON)
	}
	if m.FieldCleared(parserun.FieldFinishedAt) {
		fields = append(fields, parserun.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ParseRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ParseRunMutation) ClearField(name string) error {
	switch name {
	case parserun.FieldCategory:
		m.ClearCategory()
		return nil
	case parserun.FieldErrorKind:
		m.ClearErrorKind()
		return nil
	case parserun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case parserun.FieldValidationErrors:
		m.ClearValidationErrors()
		return nil
	case parserun.FieldModelName:
		m.ClearModelName()
		return nil
	case parserun.FieldSummary:
		m.ClearSummary()
		return nil
	case parserun.FieldResultJSON:
		m.ClearResultJSON()
		return nil
	case parserun.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown ParseRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ParseRunMutation) ResetField(name string) error {
	switch name {
	case parserun.FieldJobID:
		m.ResetJobID()
		return nil
	case parserun.FieldSourceID:
		m.ResetSourceID()
		return nil
	case parserun.FieldCategory:
		m.ResetCategory()
		return nil
	case parserun.FieldStatus:
		m.ResetStatus()
		return nil
	case parserun.FieldErrorKind:
		m.ResetErrorKind()
		return nil
	case parserun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case parserun.FieldValidationErrors:
		m.ResetValidationErrors()
		return nil
	case parserun.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case parserun.FieldTokensUsed:
		m.ResetTokensUsed()
		return nil
	case parserun.FieldAttempts:
		m.ResetAttempts()
		return nil
	case parserun.FieldChunks:
		m.ResetChunks()
		return nil
	case parserun.FieldIsCorrigendum:
		m.ResetIsCorrigendum()
		return nil
	case parserun.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case parserun.FieldModelName:
		m.ResetModelName()
		return nil
	case parserun.FieldSummary:
		m.ResetSummary()
		return nil
	case parserun.FieldResultJSON:
		m.ResetResultJSON()
		return nil
	case parserun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case parserun.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown ParseRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ParseRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.posts != nil {
		edges = append(edges, parserun.EdgePosts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ParseRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case parserun.EdgePosts:
		ids := make([]ent.Value, 0, len(m.posts))
		for id := range m.posts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ParseRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedposts != nil {
		edges = append(edges, parserun.EdgePosts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ParseRunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case parserun.EdgePosts:
		ids := make([]ent.Value, 0, len(m.removedposts))
		for id := range m.removedposts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ParseRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedposts {
		edges = append(edges, parserun.EdgePosts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ParseRunMutation) EdgeCleared(name string) bool {
	switch name {
	case parserun.EdgePosts:
		return m.clearedposts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ParseRunMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ParseRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ParseRunMutation) ResetEdge(name string) error {
	switch name {
	case parserun.EdgePosts:
		m.ResetPosts()
		return nil
	}
	return fmt.Errorf("unknown ParseRun edge %s", name)
}
