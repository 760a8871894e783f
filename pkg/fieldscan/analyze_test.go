package fieldscan

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"fieldscan/pkg/fieldscan/models"
	"fieldscan/pkg/fieldscan/sample"
)

// writeMessyWorkbook builds a workbook where one sheet buries its header
// under a title block and the other starts with a clean header row.
func writeMessyWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "Week 32"))
	require.NoError(t, f.SetCellValue("Week 32", "A1", "Production Schedule Week 32"))
	// row 2 left blank
	for col, v := range []string{"Purchase Order", "Due Date", "Quantity"} {
		cell, err := excelize.CoordinatesToCellName(col+1, 3)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue("Week 32", cell, v))
	}
	for i := 0; i < 3; i++ {
		row := 4 + i
		require.NoError(t, f.SetCellValue("Week 32", cellName(t, 1, row), "PO-000"+string(rune('1'+i))))
		require.NoError(t, f.SetCellValue("Week 32", cellName(t, 2, row), "2026-08-0"+string(rune('1'+i))))
		require.NoError(t, f.SetCellValue("Week 32", cellName(t, 3, row), i+5))
	}

	_, err := f.NewSheet("Summary")
	require.NoError(t, err)
	for col, v := range []string{"Purchase Order", "Product"} {
		require.NoError(t, f.SetCellValue("Summary", cellName(t, col+1, 1), v))
	}
	require.NoError(t, f.SetCellValue("Summary", cellName(t, 1, 2), "PO-0001"))
	require.NoError(t, f.SetCellValue("Summary", cellName(t, 2, 2), "Product A1"))

	path := filepath.Join(t.TempDir(), "messy.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func cellName(t *testing.T, col, row int) string {
	t.Helper()
	cell, err := excelize.CoordinatesToCellName(col, row)
	require.NoError(t, err)
	return cell
}

func TestAnalyzeMessyWorkbook(t *testing.T) {
	path := writeMessyWorkbook(t)

	res, err := Analyze(path, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "messy.xlsx", res.BookName)
	assert.Equal(t, []string{"Week 32", "Summary"}, res.SheetNames)

	week := res.SheetFields[0]
	assert.Equal(t, 2, week.HeaderRow, "header buried under the title block")
	assert.False(t, week.Fallback)
	assert.Equal(t, []string{"Purchase Order", "Due Date", "Quantity"}, week.Fields)

	assert.Equal(t, []string{"Purchase Order", "Due Date", "Quantity", "Product"}, res.Universe)
	assert.Equal(t, []string{"Purchase Order"}, res.Universal)
	assert.ElementsMatch(t, []string{"Due Date", "Quantity", "Product"}, res.Unique)
	assert.Empty(t, res.Common)
}

func TestAnalyzeSheetsDeterministic(t *testing.T) {
	sheets := []models.RawSheet{
		{Name: "A", Rows: [][]models.Cell{{models.TextCell("Purchase Order"), models.TextCell("Due Date")}}},
		{Name: "B", Rows: [][]models.Cell{{models.TextCell("Purchase Order"), models.TextCell("Product")}}},
	}

	first, err := AnalyzeSheets("book.xlsx", sheets, DefaultOptions())
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := AnalyzeSheets("book.xlsx", sheets, DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, first.Universe, again.Universe)
		assert.Equal(t, first.Matrix, again.Matrix)
	}
}

func TestAnalyzeSheetsNilRows(t *testing.T) {
	sheets := []models.RawSheet{
		{Name: "OK", Rows: [][]models.Cell{}},
		{Name: "Broken"},
	}

	_, err := AnalyzeSheets("book.xlsx", sheets, DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingRows))

	var sheetErr *SheetError
	require.True(t, errors.As(err, &sheetErr))
	assert.Equal(t, "Broken", sheetErr.Sheet)
}

func TestAnalyzeLoadFailureSentinels(t *testing.T) {
	_, err := Analyze(filepath.Join(t.TempDir(), "nope.xlsx"), DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileNotFound))

	path := filepath.Join(t.TempDir(), "bad.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a workbook"), 0644))
	_, err = Analyze(path, DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidFormat))
}

func TestAnalyzeSampleWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.xlsx")
	require.NoError(t, sample.Generate(path))

	res, err := Analyze(path, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 5, res.Stats.TotalSheets)
	assert.Equal(t, []string{"Orders", "Production", "Shipping", "Inventory", "Customers"}, res.SheetNames)

	// Headers sit on row one in every sample sheet.
	for _, sf := range res.SheetFields {
		assert.Equal(t, 0, sf.HeaderRow, "sheet %q", sf.Sheet)
		assert.False(t, sf.Fallback, "sheet %q", sf.Sheet)
	}

	assert.Empty(t, res.Universal, "no field spans all five sample sheets")
	assert.Equal(t, 3, res.Usage["Purchase Order"].Count)
	assert.Equal(t, 4, res.Usage["Product"].Count)
	assert.Contains(t, res.Unique, "Customer ID")
	assert.Equal(t, models.CategoryDespatch, res.Usage["Shipping Code"].Category)
}
