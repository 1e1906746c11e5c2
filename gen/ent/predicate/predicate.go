// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AutomationRule is the predicate function for automationrule builders.
type AutomationRule func(*sql.Selector)

// Category is the predicate function for category builders.
type Category func(*sql.Selector)

// Correspondent is the predicate function for correspondent builders.
type Correspondent func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// Version is the predicate function for version builders.
type Version func(*sql.Selector)
