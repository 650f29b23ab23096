// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// JobPostColumns holds the columns for the "job_post" table.
	JobPostColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "post_name", Type: field.TypeString},
		{Name: "vacancies", Type: field.TypeInt, Nullable: true},
		{Name: "eligibility", Type: field.TypeString, Nullable: true},
		{Name: "pay_level", Type: field.TypeString, Nullable: true},
		{Name: "age_limit", Type: field.TypeString, Nullable: true},
		{Name: "run_id", Type: field.TypeUUID},
	}
	// JobPostTable holds the schema information for the "job_post" table.
	JobPostTable = &schema.Table{
		Name:       "job_post",
		Columns:    JobPostColumns,
		PrimaryKey: []*schema.Column{JobPostColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "job_post_parse_run_posts",
				Columns:    []*schema.Column{JobPostColumns[6]},
				RefColumns: []*schema.Column{ParseRunColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "jobpost_run_id",
				Unique:  false,
				Columns: []*schema.Column{JobPostColumns[6]},
			},
		},
	}
	// ParseRunColumns holds the columns for the "parse_run" table.
	ParseRunColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "job_id", Type: field.TypeString},
		{Name: "source_id", Type: field.TypeString},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString},
		{Name: "error_kind", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "validation_errors", Type: field.TypeJSON, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
		{Name: "tokens_used", Type: field.TypeInt, Default: 0},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "chunks", Type: field.TypeInt, Default: 0},
		{Name: "is_corrigendum", Type: field.TypeBool, Default: false},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "result_json", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
	}
	// ParseRunTable holds the schema information for the "parse_run" table.
	ParseRunTable = &schema.Table{
		Name:       "parse_run",
		Columns:    ParseRunColumns,
		PrimaryKey: []*schema.Column{ParseRunColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "parserun_job_id",
				Unique:  false,
				Columns: []*schema.Column{ParseRunColumns[1]},
			},
			{
				Name:    "parserun_source_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ParseRunColumns[2], ParseRunColumns[4], ParseRunColumns[17]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		JobPostTable,
		ParseRunTable,
	}
)

func init() {
	JobPostTable.ForeignKeys[0].RefTable = ParseRunTable
	JobPostTable.Annotation = &entsql.Annotation{
		Table: "job_post",
	}
	ParseRunTable.Annotation = &entsql.Annotation{
		Table: "parse_run",
	}
}
