package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"

	"github.com/docshelf/docshelf/db/ent/schema/utils"
)

type Correspondent struct{ ent.Schema }

func (Correspondent) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "correspondents"},
	}
}

func (Correspondent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty().Unique(),
		field.String("match_pattern").Optional(),
		field.String("match_algorithm").Default("AUTO").
			Validate(utils.EnumValidator("AUTO", "ANY", "ALL", "EXACT", "REGEX", "FUZZY")),
		field.Bool("insensitive").Default(true),
	}
}
