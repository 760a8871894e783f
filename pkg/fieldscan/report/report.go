// Package report turns an analysis Result into machine- and
// human-readable artifacts: a JSON document, an xlsx workbook, and a
// Markdown/HTML summary. It contains formatting only, no analysis logic.
package report

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"fieldscan/pkg/fieldscan/models"
)

// Report is the serializable summary document built from a Result.
type Report struct {
	AnalysisID      string                       `json:"analysis_id"`
	AnalysisDate    string                       `json:"analysis_date"`
	BookName        string                       `json:"book_name"`
	TotalSheets     int                          `json:"total_sheets"`
	TotalFields     int                          `json:"total_unique_fields"`
	SheetNames      []string                     `json:"sheet_names"`
	FieldsPerSheet  map[string]int               `json:"fields_per_sheet"`
	SheetsPerField  map[string]int               `json:"sheets_per_field"`
	UniversalFields map[string]int               `json:"universal_fields"`
	CommonFields    map[string]int               `json:"common_fields"`
	UniqueFields    map[string]int               `json:"unique_fields"`
	AllFieldNames   []string                     `json:"all_field_names"`
	FieldCategories map[models.Category][]string `json:"field_categories"`
	Stats           models.Stats                 `json:"stats"`
	SheetFields     []models.SheetFields         `json:"sheet_fields"`
	Matrix          map[string]map[string]bool   `json:"matrix"`
}

// Build assembles the report document for one analysis run.
func Build(res *models.Result) *Report {
	r := &Report{
		AnalysisID:      uuid.NewString(),
		AnalysisDate:    time.Now().Format(time.RFC3339),
		BookName:        res.BookName,
		TotalSheets:     res.Stats.TotalSheets,
		TotalFields:     res.Stats.TotalFields,
		SheetNames:      res.SheetNames,
		FieldsPerSheet:  res.Stats.FieldsPerSheet,
		SheetsPerField:  make(map[string]int, len(res.Universe)),
		UniversalFields: bucketCounts(res, res.Universal),
		CommonFields:    bucketCounts(res, res.Common),
		UniqueFields:    bucketCounts(res, res.Unique),
		FieldCategories: make(map[models.Category][]string),
		Stats:           res.Stats,
		SheetFields:     res.SheetFields,
		Matrix:          res.Matrix,
	}

	for _, name := range res.Universe {
		usage := res.Usage[name]
		r.SheetsPerField[name] = usage.Count
		r.FieldCategories[usage.Category] = append(r.FieldCategories[usage.Category], name)
	}

	r.AllFieldNames = append(r.AllFieldNames, res.Universe...)
	sort.Strings(r.AllFieldNames)
	for _, fields := range r.FieldCategories {
		sort.Strings(fields)
	}

	return r
}

func bucketCounts(res *models.Result, bucket []string) map[string]int {
	out := make(map[string]int, len(bucket))
	for _, name := range bucket {
		out[name] = res.Usage[name].Count
	}
	return out
}

// fieldsByUsage returns universe fields sorted by descending sheet count,
// name ascending within equal counts.
func fieldsByUsage(res *models.Result) []models.FieldUsage {
	out := make([]models.FieldUsage, 0, len(res.Universe))
	for _, name := range res.Universe {
		out = append(out, res.Usage[name])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}
