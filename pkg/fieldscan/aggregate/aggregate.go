// Package aggregate merges per-worksheet field lists into the cross-sheet
// field universe, presence matrix, and classification buckets.
package aggregate

import (
	"github.com/montanaflynn/stats"

	"fieldscan/pkg/fieldscan/category"
	"fieldscan/pkg/fieldscan/models"
)

// Aggregate reduces the ordered per-worksheet detection results into one
// Result. It is a total function: any valid SheetFields sequence produces
// a result. The reduction is single-threaded: insertion order
// and first-seen display casing are observable, so the universe comes out
// in deterministic first-seen order across worksheets in their given
// order.
func Aggregate(sheetFields []models.SheetFields) *models.Result {
	res := &models.Result{
		SheetFields: sheetFields,
		Usage:       make(map[string]models.FieldUsage),
		Matrix:      make(map[string]map[string]bool),
	}

	// display name per identity, first seen wins
	display := make(map[string]string)
	// per-sheet membership by identity
	membership := make([]map[string]struct{}, len(sheetFields))

	for i, sf := range sheetFields {
		res.SheetNames = append(res.SheetNames, sf.Sheet)
		membership[i] = make(map[string]struct{}, len(sf.Fields))
		for _, f := range sf.Fields {
			key := models.FieldKey(f)
			membership[i][key] = struct{}{}
			if _, ok := display[key]; !ok {
				display[key] = f
				res.Universe = append(res.Universe, f)
			}
		}
	}

	totalSheets := len(sheetFields)
	fieldsPerSheet := make(map[string]int, totalSheets)
	for i, sf := range sheetFields {
		fieldsPerSheet[sf.Sheet] = len(membership[i])
	}

	for _, name := range res.Universe {
		key := models.FieldKey(name)

		row := make(map[string]bool, totalSheets)
		var sheets []string
		for i, sf := range sheetFields {
			_, present := membership[i][key]
			row[sf.Sheet] = present
			if present {
				sheets = append(sheets, sf.Sheet)
			}
		}
		res.Matrix[name] = row

		count := len(sheets)
		res.Usage[name] = models.FieldUsage{
			Name:     name,
			Category: category.Categorize(name),
			Sheets:   sheets,
			Count:    count,
		}

		// Exhaustive, disjoint partition of the universe. With a single
		// worksheet the Common bucket is impossible by construction.
		switch {
		case count == totalSheets:
			res.Universal = append(res.Universal, name)
		case count == 1:
			res.Unique = append(res.Unique, name)
		default:
			res.Common = append(res.Common, name)
		}
	}

	res.Stats = buildStats(totalSheets, len(res.Universe), fieldsPerSheet, sheetFields)
	return res
}

func buildStats(totalSheets, totalFields int, fieldsPerSheet map[string]int, sheetFields []models.SheetFields) models.Stats {
	s := models.Stats{
		TotalSheets:    totalSheets,
		TotalFields:    totalFields,
		FieldsPerSheet: fieldsPerSheet,
	}

	counts := make(stats.Float64Data, 0, len(sheetFields))
	for _, sf := range sheetFields {
		counts = append(counts, float64(fieldsPerSheet[sf.Sheet]))
	}
	if len(counts) == 0 {
		return s
	}

	// stats errors only on empty input, guarded above
	s.MeanFieldsPerSheet, _ = stats.Mean(counts)
	s.MedianFieldsPerSheet, _ = stats.Median(counts)
	s.StdDevFieldsPerSheet, _ = stats.StandardDeviationPopulation(counts)
	return s
}
