// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jobsarthi/notification-parser/gen/ent/jobpost"
	"github.com/jobsarthi/notification-parser/gen/ent/parserun"
)

// JobPost is the model entity for the JobPost schema.
type JobPost struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID uuid.UUID `json:"run_id,omitempty"`
	// PostName holds the value of the "post_name" field.
	PostName string `json:"post_name,omitempty"`
	// Vacancies holds the value of the "vacancies" field.
	Vacancies *int `json:"vacancies,omitempty"`
	// Eligibility holds the value of the "eligibility" field.
	Eligibility *string `json:"eligibility,omitempty"`
	// PayLevel holds the value of the "pay_level" field.
	PayLevel *string `json:"pay_level,omitempty"`
	// AgeLimit holds the value of the "age_limit" field.
	AgeLimit *string `json:"age_limit,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the JobPostQuery when eager-loading is set.
	Edges        JobPostEdges `json:"edges"`
	selectValues sql.SelectValues
}

// JobPostEdges holds the relations/edges for other nodes in the graph.
type JobPostEdges struct {
	// Run holds the value of the run edge.
	Run *ParseRun `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e JobPostEdges) RunOrErr() (*ParseRun, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: parserun.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*JobPost) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case jobpost.FieldVacancies:
			values[i] = new(sql.NullInt64)
		case jobpost.FieldPostName, jobpost.FieldEligibility, jobpost.FieldPayLevel, jobpost.FieldAgeLimit:
			values[i] = new(sql.NullString)
		case jobpost.FieldID, jobpost.FieldRunID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the JobPost fields.
func (_m *JobPost) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case jobpost.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case jobpost.FieldRunID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value != nil {
				_m.RunID = *value
			}
		case jobpost.FieldPostName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field post_name", values[i])
			} else if value.Valid {
				_m.PostName = value.String
			}
		case jobpost.FieldVacancies:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field vacancies", values[i])
			} else if value.Valid {
				_m.Vacancies = new(int)
				*_m.Vacancies = int(value.Int64)
			}
		case jobpost.FieldEligibility:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field eligibility", values[i])
			} else if value.Valid {
				_m.Eligibility = new(string)
				*_m.Eligibility = value.String
			}
		case jobpost.FieldPayLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pay_level", values[i])
			} else if value.Valid {
				_m.PayLevel = new(string)
				*_m.PayLevel = value.String
			}
		case jobpost.FieldAgeLimit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field age_limit", values[i])
			} else if value.Valid {
				_m.AgeLimit = new(string)
				*_m.AgeLimit = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the JobPost.
// This includes values selected through modifiers, order, etc.
func (_m *JobPost) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the JobPost entity.
func (_m *JobPost) QueryRun() *ParseRunQuery {
	return NewJobPostClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this JobPost.
// Note that you need to call JobPost.Unwrap() before calling this method if this JobPost
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *JobPost) Update() *JobPostUpdateOne {
	return NewJobPostClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the JobPost entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *JobPost) Unwrap() *JobPost {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: JobPost is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *JobPost) String() string {
	var builder strings.Builder
	builder.WriteString("JobPost(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RunID))
	builder.WriteString(", ")
	builder.WriteString("post_name=")
	builder.WriteString(_m.PostName)
	builder.WriteString(", ")
	if v := _m.Vacancies; v != nil {
		builder.WriteString("vacancies=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Eligibility; v != nil {
		builder.WriteString("eligibility=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PayLevel; v != nil {
		builder.WriteString("pay_level=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AgeLimit; v != nil {
		builder.WriteString("age_limit=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// JobPosts is a parsable slice of JobPost.
type JobPosts []*JobPost
