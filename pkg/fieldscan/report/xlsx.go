package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"fieldscan/pkg/fieldscan/models"
)

// WriteWorkbook writes the detailed analysis workbook to path: a
// Field_Matrix sheet (worksheets as rows, fields as columns, 1/0), a
// Summary sheet, a Field_Details sheet sorted by usage, and one sheet per
// non-empty category.
func WriteWorkbook(res *models.Result, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeMatrixSheet(f, res); err != nil {
		return err
	}
	if err := writeSummarySheet(f, res); err != nil {
		return err
	}
	if err := writeDetailSheet(f, res); err != nil {
		return err
	}
	if err := writeCategorySheets(f, res); err != nil {
		return err
	}

	// Drop the default sheet created by NewFile.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func writeMatrixSheet(f *excelize.File, res *models.Result) error {
	const sheet = "Field_Matrix"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	if err := f.SetCellValue(sheet, "A1", "Sheet"); err != nil {
		return err
	}
	for col, field := range res.Universe {
		cell, err := excelize.CoordinatesToCellName(col+2, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, field); err != nil {
			return err
		}
	}

	for row, name := range res.SheetNames {
		cell, err := excelize.CoordinatesToCellName(1, row+2)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
		for col, field := range res.Universe {
			cell, err := excelize.CoordinatesToCellName(col+2, row+2)
			if err != nil {
				return err
			}
			v := 0
			if res.Matrix[field][name] {
				v = 1
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, res *models.Result) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Metric", "Count"},
		{"Total Sheets", res.Stats.TotalSheets},
		{"Total Unique Fields", res.Stats.TotalFields},
		{"Universal Fields", len(res.Universal)},
		{"Common Fields", len(res.Common)},
		{"Unique Fields", len(res.Unique)},
		{"Mean Fields per Sheet", res.Stats.MeanFieldsPerSheet},
		{"Median Fields per Sheet", res.Stats.MedianFieldsPerSheet},
		{"StdDev Fields per Sheet", res.Stats.StdDevFieldsPerSheet},
	}
	return writeRows(f, sheet, rows)
}

func writeDetailSheet(f *excelize.File, res *models.Result) error {
	const sheet = "Field_Details"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{{"Field_Name", "Category", "Sheets_Present", "Percentage_of_Sheets"}}
	for _, usage := range fieldsByUsage(res) {
		rows = append(rows, []interface{}{
			usage.Name,
			string(usage.Category),
			usage.Count,
			percentage(usage.Count, res.Stats.TotalSheets),
		})
	}
	return writeRows(f, sheet, rows)
}

func writeCategorySheets(f *excelize.File, res *models.Result) error {
	grouped := make(map[models.Category][]models.FieldUsage)
	for _, usage := range fieldsByUsage(res) {
		grouped[usage.Category] = append(grouped[usage.Category], usage)
	}

	for _, cat := range models.Categories() {
		usages := grouped[cat]
		if len(usages) == 0 {
			continue
		}
		sheet := categorySheetName(cat)
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
		rows := [][]interface{}{{"Field_Name", "Sheets_Present", "Percentage_of_Sheets"}}
		for _, usage := range usages {
			rows = append(rows, []interface{}{
				usage.Name,
				usage.Count,
				percentage(usage.Count, res.Stats.TotalSheets),
			})
		}
		if err := writeRows(f, sheet, rows); err != nil {
			return err
		}
	}
	return nil
}

// categorySheetName maps a category to a valid worksheet name: spaces to
// underscores, capped at the 31-character xlsx limit.
func categorySheetName(cat models.Category) string {
	name := strings.ReplaceAll(string(cat), " ", "_")
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}

func percentage(count, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(count)/float64(total)*100)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}
