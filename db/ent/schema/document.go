package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/docshelf/docshelf/constants"
	"github.com/docshelf/docshelf/db/ent/schema/utils"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty(),
		field.UUID("parent_folder_id", uuid.UUID{}).Optional().Nillable(),
		field.String("mime_type").Optional(),
		field.Int64("file_size").Default(0),
		field.String("content_id").NotEmpty(),
		field.String("content_hash").Optional(),
		field.String("text_content").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("metadata", map[string]string{}).Optional(),
		field.JSON("tags", []string{}).Optional(),
		field.JSON("categories", []string{}).Optional(),
		field.String("correspondent").Optional().Nillable(),
		field.String("status").Default(string(constants.NodeActive)).
			Validate(utils.EnumValidator(constants.NodeStatuses...)),
		field.Bool("versioned").Default(true),
		field.Int("major_version").Default(1),
		field.Int("minor_version").Default(0),
		field.String("version_label").Optional(),
		field.UUID("current_version_id", uuid.UUID{}).Optional().Nillable(),
		field.String("preview_status").Optional().
			Validate(utils.EnumValidator(constants.PreviewStatuses...)),
		field.String("preview_failure_reason").Optional(),
		field.Time("preview_last_updated").Optional().Nillable(),
		field.String("created_by").NotEmpty(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("versions", Version.Type),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("content_hash"),
		index.Fields("parent_folder_id"),
		index.Fields("preview_status"),
	}
}
