// Code generated by ent, DO NOT EDIT.

package correspondent

import (
	"entgo.io/ent/dialect/sql"
	"github.com/docshelf/docshelf/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldEQ(FieldName, v))
}

// MatchPattern applies equality check predicate on the "match_pattern" field. It's identical to MatchPatternEQ.
func MatchPattern(v string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldEQ(FieldMatchPattern, v))
}

// MatchAlgorithm applies equality check predicate on the "match_algorithm" field. It's identical to MatchAlgorithmEQ.
func MatchAlgorithm(v string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldEQ(FieldMatchAlgorithm, v))
}

// Insensitive applies equality check predicate on the "insensitive" field. It's identical to InsensitiveEQ.
func Insensitive(v bool) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldEQ(FieldInsensitive, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldContainsFold(FieldName, v))
}

// MatchPatternEQ applies the EQ predicate on the "match_pattern" field.
func MatchPatternEQ(v string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldEQ(FieldMatchPattern, v))
}

// MatchPatternNEQ applies the NEQ predicate on the "match_pattern" field.
func MatchPatternNEQ(v string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldNEQ(FieldMatchPattern, v))
}

// MatchPatternIn applies the In predicate on the "match_pattern" field.
func MatchPatternIn(vs ...string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldIn(FieldMatchPattern, vs...))
}

// MatchPatternNotIn applies the NotIn predicate on the "match_pattern" field.
func MatchPatternNotIn(vs ...string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldNotIn(FieldMatchPattern, vs...))
}

// MatchPatternGT applies the GT predicate on the "match_pattern" field.
func MatchPatternGT(v string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldGT(FieldMatchPattern, v))
}

// MatchPatternGTE applies the GTE predicate on the "match_pattern" field.
func MatchPatternGTE(v string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldGTE(FieldMatchPattern, v))
}

// MatchPatternLT applies the LT predicate on the "match_pattern" field.
func MatchPatternLT(v string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldLT(FieldMatchPattern, v))
}

// MatchPatternLTE applies the LTE predicate on the "match_pattern" field.
func MatchPatternLTE(v string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldLTE(FieldMatchPattern, v))
}

// MatchPatternContains applies the Contains predicate on the "match_pattern" field.
func MatchPatternContains(v string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldContains(FieldMatchPattern, v))
}

// MatchPatternHasPrefix applies the HasPrefix predicate on the "match_pattern" field.
func MatchPatternHasPrefix(v string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldHasPrefix(FieldMatchPattern, v))
}

// MatchPatternHasSuffix applies the HasSuffix predicate on the "match_pattern" field.
func MatchPatternHasSuffix(v string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldHasSuffix(FieldMatchPattern, v))
}

// MatchPatternIsNil applies the IsNil predicate on the "match_pattern" field.
func MatchPatternIsNil() predicate.Correspondent {
	return predicate.Correspondent(sql.FieldIsNull(FieldMatchPattern))
}

// MatchPatternNotNil applies the NotNil predicate on the "match_pattern" field.
func MatchPatternNotNil() predicate.Correspondent {
	return predicate.Correspondent(sql.FieldNotNull(FieldMatchPattern))
}

// MatchPatternEqualFold applies the EqualFold predicate on the "match_pattern" field.
func MatchPatternEqualFold(v string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldEqualFold(FieldMatchPattern, v))
}

// MatchPatternContainsFold applies the ContainsFold predicate on the "match_pattern" field.
func MatchPatternContainsFold(v string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldContainsFold(FieldMatchPattern, v))
}

// MatchAlgorithmEQ applies the EQ predicate on the "match_algorithm" field.
func MatchAlgorithmEQ(v string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldEQ(FieldMatchAlgorithm, v))
}

// MatchAlgorithmNEQ applies the NEQ predicate on the "match_algorithm" field.
func MatchAlgorithmNEQ(v string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldNEQ(FieldMatchAlgorithm, v))
}

// MatchAlgorithmIn applies the In predicate on the "match_algorithm" field.
func MatchAlgorithmIn(vs ...string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldIn(FieldMatchAlgorithm, vs...))
}

// MatchAlgorithmNotIn applies the NotIn predicate on the "match_algorithm" field.
func MatchAlgorithmNotIn(vs ...string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldNotIn(FieldMatchAlgorithm, vs...))
}

// MatchAlgorithmGT applies the GT predicate on the "match_algorithm" field.
func MatchAlgorithmGT(v string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldGT(FieldMatchAlgorithm, v))
}

// MatchAlgorithmGTE applies the GTE predicate on the "match_algorithm" field.
func MatchAlgorithmGTE(v string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldGTE(FieldMatchAlgorithm, v))
}

// MatchAlgorithmLT applies the LT predicate on the "match_algorithm" field.
func MatchAlgorithmLT(v string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldLT(FieldMatchAlgorithm, v))
}

// MatchAlgorithmLTE applies the LTE predicate on the "match_algorithm" field.
func MatchAlgorithmLTE(v string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldLTE(FieldMatchAlgorithm, v))
}

// MatchAlgorithmContains applies the Contains predicate on the "match_algorithm" field.
func MatchAlgorithmContains(v string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldContains(FieldMatchAlgorithm, v))
}

// MatchAlgorithmHasPrefix applies the HasPrefix predicate on the "match_algorithm" field.
func MatchAlgorithmHasPrefix(v string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldHasPrefix(FieldMatchAlgorithm, v))
}

// MatchAlgorithmHasSuffix applies the HasSuffix predicate on the "match_algorithm" field.
func MatchAlgorithmHasSuffix(v string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldHasSuffix(FieldMatchAlgorithm, v))
}

// MatchAlgorithmEqualFold applies the EqualFold predicate on the "match_algorithm" field.
func MatchAlgorithmEqualFold(v string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldEqualFold(FieldMatchAlgorithm, v))
}

// MatchAlgorithmContainsFold applies the ContainsFold predicate on the "match_algorithm" field.
func MatchAlgorithmContainsFold(v string) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldContainsFold(FieldMatchAlgorithm, v))
}

// InsensitiveEQ applies the EQ predicate on the "insensitive" field.
func InsensitiveEQ(v bool) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldEQ(FieldInsensitive, v))
}

// InsensitiveNEQ applies the NEQ predicate on the "insensitive" field.
func InsensitiveNEQ(v bool) predicate.Correspondent {
	return predicate.Correspondent(sql.FieldNEQ(FieldInsensitive, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Correspondent) predicate.Correspondent {
	return predicate.Correspondent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Correspondent) predicate.Correspondent {
	return predicate.Correspondent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Correspondent) predicate.Correspondent {
	return predicate.Correspondent(sql.NotPredicates(p))
}
