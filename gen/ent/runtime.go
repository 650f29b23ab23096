// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/jobsarthi/notification-parser/db/ent/schema"
	"github.com/jobsarthi/notification-parser/gen/ent/jobpost"
	"github.com/jobsarthi/notification-parser/gen/ent/parserun"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	jobpostFields := schema.JobPost{}.Fields()
	_ = jobpostFields
	// jobpostDescPostName is the schema descriptor for post_name field.
	jobpostDescPostName := jobpostFields[2].Descriptor()
	// jobpost.PostNameValidator is a validator for the "post_name" field. It is called by the builders before save.
	jobpost.PostNameValidator = jobpostDescPostName.Validators[0].(func(string) error)
	// jobpostDescID is the schema descriptor for id field.
	jobpostDescID := jobpostFields[0].Descriptor()
	// jobpost.DefaultID holds the default value on creation for the id field.
	jobpost.DefaultID = jobpostDescID.Default.(func() uuid.UUID)
	parserunFields := schema.ParseRun{}.Fields()
	_ = parserunFields
	// parserunDescJobID is the schema descriptor for job_id field.
	parserunDescJobID := parserunFields[1].Descriptor()
	// parserun.JobIDValidator is a validator for the "job_id" field. It is called by the builders before save.
	parserun.JobIDValidator = parserunDescJobID.Validators[0].(func(string) error)
	// parserunDescSourceID is the schema descriptor for source_id field.
	parserunDescSourceID := parserunFields[2].Descriptor()
	// parserun.SourceIDValidator is a validator for the "source_id" field. It is called by the builders before save.
	parserun.SourceIDValidator = parserunDescSourceID.Validators[0].(func(string) error)
	// parserunDescStatus is the schema descriptor for status field.
	parserunDescStatus := parserunFields[4].Descriptor()
	// parserun.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	parserun.StatusValidator = parserunDescStatus.Validators[0].(func(string) error)
	// parserunDescDurationMs is the schema descriptor for duration_ms field.
	parserunDescDurationMs := parserunFields[8].Descriptor()
	// parserun.DefaultDurationMs holds the default value on creation for the duration_ms field.
	parserun.DefaultDurationMs = parserunDescDurationMs.Default.(int64)
	// parserunDescTokensUsed is the schema descriptor for tokens_used field.
	parserunDescTokensUsed := parserunFields[9].Descriptor()
	// parserun.DefaultTokensUsed holds the default value on creation for the tokens_used field.
	parserun.DefaultTokensUsed = parserunDescTokensUsed.Default.(int)
	// parserunDescAttempts is the schema descriptor for attempts field.
	parserunDescAttempts := parserunFields[10].Descriptor()
	// parserun.DefaultAttempts holds the default value on creation for the attempts field.
	parserun.DefaultAttempts = parserunDescAttempts.Default.(int)
	// parserunDescChunks is the schema descriptor for chunks field.
	parserunDescChunks := parserunFields[11].Descriptor()
	// parserun.DefaultChunks holds the default value on creation for the chunks field.
	parserun.DefaultChunks = parserunDescChunks.Default.(int)
	// parserunDescIsCorrigendum is the schema descriptor for is_corrigendum field.
	parserunDescIsCorrigendum := parserunFields[12].Descriptor()
	// parserun.DefaultIsCorrigendum holds the default value on creation for the is_corrigendum field.
	parserun.DefaultIsCorrigendum = parserunDescIsCorrigendum.Default.(bool)
	// parserunDescNeedsReview is the schema descriptor for needs_review field.
	parserunDescNeedsReview := parserunFields[13].Descriptor()
	// parserun.DefaultNeedsReview holds the default value on creation for the needs_review field.
	parserun.DefaultNeedsReview = parserunDescNeedsReview.Default.(bool)
	// parserunDescStartedAt is the schema descriptor for started_at field.
	parserunDescStartedAt := parserunFields[17].Descriptor()
	// parserun.DefaultStartedAt holds the default value on creation for the started_at field.
	parserun.DefaultStartedAt = parserunDescStartedAt.Default.(func() time.Time)
	// parserunDescID is the schema descriptor for id field.
	parserunDescID := parserunFields[0].Descriptor()
	// parserun.DefaultID holds the default value on creation for the id field.
	parserun.DefaultID = parserunDescID.Default.(func() uuid.UUID)
}
