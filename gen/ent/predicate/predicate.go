// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// JobPost is the predicate function for jobpost builders.
type JobPost func(*sql.Selector)

// ParseRun is the predicate function for parserun builders.
type ParseRun func(*sql.Selector)
