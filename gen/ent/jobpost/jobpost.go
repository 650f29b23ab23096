// Code generated by ent, DO NOT EDIT.

package jobpost

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the jobpost type in the database.
	Label = "job_post"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldPostName holds the string denoting the post_name field in the database.
	FieldPostName = "post_name"
	// FieldVacancies holds the string denoting the vacancies field in the database.
	FieldVacancies = "vacancies"
	// FieldEligibility holds the string denoting the eligibility field in the database.
	FieldEligibility = "eligibility"
	// FieldPayLevel holds the string denoting the pay_level field in the database.
	FieldPayLevel = "pay_level"
	// FieldAgeLimit holds the string denoting the age_limit field in the database.
	FieldAgeLimit = "age_limit"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// Table holds the table name of the jobpost in the database.
	Table = "job_post"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "job_post"
	// RunInverseTable is the table name for the ParseRun entity.
	// It exists in this package in order to avoid circular dependency with the "parserun" package.
	RunInverseTable = "parse_run"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
)

// Columns holds all SQL columns for jobpost fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldPostName,
	FieldVacancies,
	FieldEligibility,
	FieldPayLevel,
	FieldAgeLimit,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// PostNameValidator is a validator for the "post_name" field. It is called by the builders before save.
	PostNameValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the JobPost queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByPostName orders the results by the post_name field.
func ByPostName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPostName, opts...).ToFunc()
}

// ByVacancies orders the results by the vacancies field.
func ByVacancies(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVacancies, opts...).ToFunc()
}

// ByEligibility orders the results by the eligibility field.
func ByEligibility(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEligibility, opts...).ToFunc()
}

// ByPayLevel orders the results by the pay_level field.
func ByPayLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPayLevel, opts...).ToFunc()
}

// ByAgeLimit orders the results by the age_limit field.
func ByAgeLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgeLimit, opts...).ToFunc()
}

// ByRunField orders the results by run field.
func ByRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunStep(), sql.OrderByField(field, opts...))
	}
}
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
	)
}
