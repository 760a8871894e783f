package category

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fieldscan/pkg/fieldscan/models"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name     string
		expected models.Category
	}{
		{"Purchase Order", models.CategoryOrder},
		{"Order Details", models.CategoryOrder},
		{"Assigned To", models.CategoryOrder},
		{"Build Time", models.CategoryProduction},
		{"Cut Time", models.CategoryProduction},
		{"Man Mins", models.CategoryProduction},
		{"Due Date", models.CategoryTiming},
		{"Due In", models.CategoryTiming},
		{"Production Date", models.CategoryTiming},
		{"Delivery Date", models.CategoryTiming},
		{"Product", models.CategoryProduct},
		{"Description", models.CategoryProduct},
		{"Built By", models.CategoryBuild},
		{"Build Information", models.CategoryBuild},
		{"Shipping Code", models.CategoryDespatch},
		{"Despatch Notes", models.CategoryDespatch},
		{"Pallet Count", models.CategoryDespatch},
		{"Capacity", models.CategoryCapacity},
		{"Planning Notes", models.CategoryCapacity},
		{"xyz123", models.CategoryUncategorized},
		{"Notes", models.CategoryUncategorized},
		{"", models.CategoryUncategorized},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Categorize(tt.name), "Categorize(%q)", tt.name)
	}
}

// Categorization is identity-based: raw strings with the same normalized
// form land in the same category.
func TestCategorizeNormalizesInput(t *testing.T) {
	assert.Equal(t, Categorize("Shipping Code"), Categorize("  SHIPPING   code "))
}

// Every name resolves to exactly one category from the closed set.
func TestCategorizeTotality(t *testing.T) {
	valid := make(map[models.Category]bool)
	for _, c := range models.Categories() {
		valid[c] = true
	}

	names := []string{"Purchase Order", "xyz123", "", "   ", "123", "Due Date", "Œ∑", "order ORDER order"}
	for _, name := range names {
		got := Categorize(name)
		assert.True(t, valid[got], "Categorize(%q) returned %q, outside the closed set", name, got)
	}
}

func TestCategorizeDeterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.Equal(t, models.CategoryDespatch, Categorize("Shipping Code"))
	}
}

// First matching rule wins: "Order Due Date" hits Order Information before
// Timing because the Order rule precedes it in the table.
func TestCategorizePriorityOrder(t *testing.T) {
	assert.Equal(t, models.CategoryOrder, Categorize("Order Due Date"))
	// "Build Time" must hit Production Details, not Timing, despite "time".
	assert.Equal(t, models.CategoryProduction, Categorize("Build Time"))
}

func TestKeywordsCoversEveryRule(t *testing.T) {
	kws := Keywords()
	assert.NotEmpty(t, kws)

	seen := make(map[string]bool)
	for _, kw := range kws {
		seen[kw] = true
	}
	for _, rule := range Rules() {
		for _, kw := range rule.Keywords {
			assert.True(t, seen[kw], "keyword %q missing from Keywords()", kw)
		}
	}
}
