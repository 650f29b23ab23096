package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/jobsarthi/notification-parser/constants"
	"github.com/jobsarthi/notification-parser/db/ent/schema/utils"
)

// ParseRun is the audit row for one notification-parsing run. Exactly one
// row is written per run regardless of outcome.
type ParseRun struct{ ent.Schema }

func (ParseRun) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "parse_run"},
	}
}

func (ParseRun) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("job_id").NotEmpty(),
		field.String("source_id").NotEmpty(),
		field.String("category").Optional(),
		field.String("status").
			Validate(utils.EnumValidator(constants.RunStatuses...)),
		field.String("error_kind").Optional(),
		field.String("error_message").Optional().Nillable(),
		field.JSON("validation_errors", []string{}).Optional(),
		field.Int64("duration_ms").Default(0),
		field.Int("tokens_used").Default(0),
		field.Int("attempts").Default(0),
		field.Int("chunks").Default(0),
		field.Bool("is_corrigendum").Default(false),
		field.Bool("needs_review").Default(false),
		field.String("model_name").Optional(),
		field.String("summary").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("result_json", json.RawMessage{}).Optional(),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
	}
}

func (ParseRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("posts", JobPost.Type),
	}
}

func (ParseRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id"),
		index.Fields("source_id", "status", "started_at"),
	}
}
