package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// JobPost is one post of a multi-post notification, produced by the
// splitter pass and linked to its parse run.
type JobPost struct{ ent.Schema }

func (JobPost) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "job_post"},
	}
}

func (JobPost) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("run_id", uuid.UUID{}),
		field.String("post_name").NotEmpty(),
		field.Int("vacancies").Optional().Nillable(),
		field.String("eligibility").Optional().Nillable(),
		field.String("pay_level").Optional().Nillable(),
		field.String("age_limit").Optional().Nillable(),
	}
}

func (JobPost) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", ParseRun.Type).
			Ref("posts").
			Field("run_id").
			Unique().
			Required(),
	}
}

func (JobPost) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
	}
}
