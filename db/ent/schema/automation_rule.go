package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"

	"github.com/docshelf/docshelf/constants"
	"github.com/docshelf/docshelf/db/ent/schema/utils"
)

type AutomationRule struct{ ent.Schema }

func (AutomationRule) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "automation_rules"},
	}
}

func (AutomationRule) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.String("trigger").
			Validate(utils.EnumValidator(constants.TriggerTypes...)),
		field.Bool("enabled").Default(true),
		// conditions and actions are stored as JSON documents; action params
		// are validated against per-type schemas at load time.
		field.JSON("conditions", json.RawMessage{}).Optional(),
		field.JSON("actions", json.RawMessage{}).Optional(),
		field.String("owner").Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}
