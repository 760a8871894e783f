package models

// FieldUsage records where one field appears across the workbook.
type FieldUsage struct {
	// Name is the field's display name (first-seen casing).
	Name string `json:"name"`
	// Category is the field's business category.
	Category Category `json:"category"`
	// Sheets lists the worksheets containing the field, in workbook order.
	Sheets []string `json:"sheets"`
	// Count is len(Sheets).
	Count int `json:"count"`
}

// Stats summarizes field distribution across the workbook.
type Stats struct {
	// TotalSheets is the worksheet count.
	TotalSheets int `json:"total_sheets"`
	// TotalFields is the size of the field universe.
	TotalFields int `json:"total_fields"`
	// FieldsPerSheet maps worksheet name to its detected field count.
	FieldsPerSheet map[string]int `json:"fields_per_sheet"`
	// MeanFieldsPerSheet is the mean detected field count per sheet.
	MeanFieldsPerSheet float64 `json:"mean_fields_per_sheet"`
	// MedianFieldsPerSheet is the median detected field count per sheet.
	MedianFieldsPerSheet float64 `json:"median_fields_per_sheet"`
	// StdDevFieldsPerSheet is the population standard deviation of the
	// per-sheet field counts.
	StdDevFieldsPerSheet float64 `json:"stddev_fields_per_sheet"`
}

// Result is the full output of one workbook analysis: the field universe,
// the dense presence matrix, per-field usage, and the classification
// buckets. All slices are in deterministic first-seen order so repeated
// runs on the same input produce identical output.
type Result struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetNames lists worksheets in workbook order.
	SheetNames []string `json:"sheet_names"`
	// SheetFields holds the per-worksheet detection results, in
	// workbook order.
	SheetFields []SheetFields `json:"sheet_fields"`
	// Universe lists every distinct field's display name in first-seen
	// order across worksheets.
	Universe []string `json:"universe"`
	// Usage maps field display name to its usage record.
	Usage map[string]FieldUsage `json:"usage"`
	// Matrix is the dense presence matrix: field name -> sheet name ->
	// present. Every (field, sheet) pair has an entry, including false.
	Matrix map[string]map[string]bool `json:"matrix"`
	// Universal lists fields present in every worksheet.
	Universal []string `json:"universal"`
	// Common lists fields present in more than one but fewer than all
	// worksheets.
	Common []string `json:"common"`
	// Unique lists fields present in exactly one worksheet.
	Unique []string `json:"unique"`
	// Stats carries summary distribution statistics.
	Stats Stats `json:"stats"`
}
