// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docshelf/docshelf/gen/ent/correspondent"
	"github.com/google/uuid"
)

// Correspondent is the model entity for the Correspondent schema.
type Correspondent struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// MatchPattern holds the value of the "match_pattern" field.
	MatchPattern string `json:"match_pattern,omitempty"`
	// MatchAlgorithm holds the value of the "match_algorithm" field.
	MatchAlgorithm string `json:"match_algorithm,omitempty"`
	// Insensitive holds the value of the "insensitive" field.
	Insensitive  bool `json:"insensitive,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Correspondent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case correspondent.FieldInsensitive:
			values[i] = new(sql.NullBool)
		case correspondent.FieldName, correspondent.FieldMatchPattern, correspondent.FieldMatchAlgorithm:
			values[i] = new(sql.NullString)
		case correspondent.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Correspondent fields.
func (c *Correspondent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case correspondent.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				c.ID = *value
			}
		case correspondent.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				c.Name = value.String
			}
		case correspondent.FieldMatchPattern:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field match_pattern", values[i])
			} else if value.Valid {
				c.MatchPattern = value.String
			}
		case correspondent.FieldMatchAlgorithm:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field match_algorithm", values[i])
			} else if value.Valid {
				c.MatchAlgorithm = value.String
			}
		case correspondent.FieldInsensitive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field insensitive", values[i])
			} else if value.Valid {
				c.Insensitive = value.Bool
			}
		default:
			c.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Correspondent.
// This includes values selected through modifiers, order, etc.
func (c *Correspondent) Value(name string) (ent.Value, error) {
	return c.selectValues.Get(name)
}

// Update returns a builder for updating this Correspondent.
// Note that you need to call Correspondent.Unwrap() before calling this method if this Correspondent
// was returned from a transaction, and the transaction was committed or rolled back.
func (c *Correspondent) Update() *CorrespondentUpdateOne {
	return NewCorrespondentClient(c.config).UpdateOne(c)
}

// Unwrap unwraps the Correspondent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (c *Correspondent) Unwrap() *Correspondent {
	_tx, ok := c.config.driver.(*txDriver)
	if !ok {
		panic("ent: Correspondent is not a transactional entity")
	}
	c.config.driver = _tx.drv
	return c
}

// String implements the fmt.Stringer.
func (c *Correspondent) String() string {
	var builder strings.Builder
	builder.WriteString("Correspondent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", c.ID))
	builder.WriteString("name=")
	builder.WriteString(c.Name)
	builder.WriteString(", ")
	builder.WriteString("match_pattern=")
	builder.WriteString(c.MatchPattern)
	builder.WriteString(", ")
	builder.WriteString("match_algorithm=")
	builder.WriteString(c.MatchAlgorithm)
	builder.WriteString(", ")
	builder.WriteString("insensitive=")
	builder.WriteString(fmt.Sprintf("%v", c.Insensitive))
	builder.WriteByte(')')
	return builder.String()
}

// Correspondents is a parsable slice of Correspondent.
type Correspondents []*Correspondent
