package models

import "strings"

// NormalizeField canonicalizes a raw header string into a field name:
// surrounding whitespace is trimmed and internal whitespace runs collapse
// to a single space. Casing is preserved for display. Normalization is
// idempotent.
func NormalizeField(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// FieldKey returns the identity of a field name. Two raw header strings
// with the same key are the same field.
func FieldKey(s string) string {
	return strings.ToLower(NormalizeField(s))
}
