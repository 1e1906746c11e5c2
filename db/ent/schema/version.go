package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Version struct{ ent.Schema }

func (Version) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "versions"},
	}
}

func (Version) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("document_id", uuid.UUID{}),
		field.Int("version_number").Positive(),
		field.Int("major_version").Default(1),
		field.Int("minor_version").Default(0),
		field.String("version_label").NotEmpty(),
		field.Bool("major_flag").Default(true),
		field.String("content_id").NotEmpty(),
		field.String("mime_type").Optional(),
		field.Int64("file_size").Default(0),
		field.String("content_hash").Optional(),
		field.String("comment").Optional(),
		field.String("created_by").Optional(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Version) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("versions").
			Field("document_id").
			Unique().
			Required(),
	}
}

func (Version) Indexes() []ent.Index {
	return []ent.Index{
		// one version number per document
		index.Fields("document_id", "version_number").Unique(),
	}
}
