// Package category maps normalized field names to business categories
// using a static keyword rule table.
package category

import (
	"strings"

	"fieldscan/pkg/fieldscan/models"
)

// Rule pairs a category with the keyword substrings that select it.
type Rule struct {
	Category models.Category
	Keywords []string
}

// table is the ordered rule set. A field name matches a rule when its
// lower-cased normalized text contains any of the rule's keywords; the
// first matching rule wins. The table is static configuration: never
// mutated after init, safe for concurrent lookups.
//
// Ordering constraint: Production Details keeps only compound keywords
// ("build time", not "build") so that names like "Production Date" fall
// through to Timing and "Built By" to Build Information.
var table = []Rule{
	{models.CategoryOrder, []string{"purchase order", "order detail", "order", "purchase", "assigned"}},
	{models.CategoryProduction, []string{"build time", "cut time", "man min", "man mins"}},
	{models.CategoryTiming, []string{"due date", "due in", "production date", "date", "due", "time"}},
	{models.CategoryProduct, []string{"product", "description"}},
	{models.CategoryBuild, []string{"built by", "build information"}},
	{models.CategoryDespatch, []string{"shipping code", "shipping", "despatch", "pallet", "apc", "dx", "van", "label", "carrier", "tracking"}},
	{models.CategoryCapacity, []string{"capacity", "planning"}},
}

// Categorize returns the business category for a field name. It is a pure
// function of the normalized name and the static table: identical input
// always yields identical output, and the result is never absent:
// unmatched names resolve to Uncategorized.
func Categorize(name string) models.Category {
	lower := models.FieldKey(name)
	for _, rule := range table {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Category
			}
		}
	}
	return models.CategoryUncategorized
}

// Rules returns a copy of the rule table for documentation and reporting.
func Rules() []Rule {
	out := make([]Rule, len(table))
	copy(out, table)
	return out
}

// Keywords returns every keyword in the table, in table order. The header
// detector uses these as a positive signal that a row holds field names
// rather than data.
func Keywords() []string {
	var out []string
	for _, rule := range table {
		out = append(out, rule.Keywords...)
	}
	return out
}
