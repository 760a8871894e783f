package models

// Category is a business grouping for a field name. The set is closed;
// every field maps to exactly one category, with Uncategorized as the
// terminal fallback.
type Category string

const (
	// CategoryOrder groups purchase-order and order-detail fields.
	CategoryOrder Category = "Order Information"
	// CategoryProduction groups build/cut time and man-minute fields.
	CategoryProduction Category = "Production Details"
	// CategoryTiming groups due-date and other date fields.
	CategoryTiming Category = "Timing"
	// CategoryProduct groups product and description fields.
	CategoryProduct Category = "Product Information"
	// CategoryBuild groups built-by and build-information fields.
	CategoryBuild Category = "Build Information"
	// CategoryDespatch groups shipping, carrier and despatch fields.
	CategoryDespatch Category = "Despatch Information"
	// CategoryCapacity groups capacity and planning fields.
	CategoryCapacity Category = "Capacity & Planning"
	// CategoryUncategorized is the terminal fallback for unmatched names.
	CategoryUncategorized Category = "Uncategorized"
)

// Categories lists the closed category set in rule-table order, with the
// Uncategorized fallback last.
func Categories() []Category {
	return []Category{
		CategoryOrder,
		CategoryProduction,
		CategoryTiming,
		CategoryProduct,
		CategoryBuild,
		CategoryDespatch,
		CategoryCapacity,
		CategoryUncategorized,
	}
}
