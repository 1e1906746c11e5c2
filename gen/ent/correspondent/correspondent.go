// Code generated by ent, DO NOT EDIT.

package correspondent

import (
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the correspondent type in the database.
	Label = "correspondent"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldMatchPattern holds the string denoting the match_pattern field in the database.
	FieldMatchPattern = "match_pattern"
	// FieldMatchAlgorithm holds the string denoting the match_algorithm field in the database.
	FieldMatchAlgorithm = "match_algorithm"
	// FieldInsensitive holds the string denoting the insensitive field in the database.
	FieldInsensitive = "insensitive"
	// Table holds the table name of the correspondent in the database.
	Table = "correspondents"
)

// Columns holds all SQL columns for correspondent fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldMatchPattern,
	FieldMatchAlgorithm,
	FieldInsensitive,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultMatchAlgorithm holds the default value on creation for the "match_algorithm" field.
	DefaultMatchAlgorithm string
	// MatchAlgorithmValidator is a validator for the "match_algorithm" field. It is called by the builders before save.
	MatchAlgorithmValidator func(string) error
	// DefaultInsensitive holds the default value on creation for the "insensitive" field.
	DefaultInsensitive bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Correspondent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByMatchPattern orders the results by the match_pattern field.
func ByMatchPattern(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatchPattern, opts...).ToFunc()
}

// ByMatchAlgorithm orders the results by the match_algorithm field.
func ByMatchAlgorithm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatchAlgorithm, opts...).ToFunc()
}

// ByInsensitive orders the results by the insensitive field.
func ByInsensitive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInsensitive, opts...).ToFunc()
}
