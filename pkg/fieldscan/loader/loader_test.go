package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"fieldscan/pkg/fieldscan/models"
)

func TestParseCell(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Cell
	}{
		{"", models.BlankCell()},
		{"   ", models.BlankCell()},
		{"123", models.NumberCell("123", 123)},
		{"200.5", models.NumberCell("200.5", 200.5)},
		{"-42", models.NumberCell("-42", -42)},
		{"2026-08-01", models.DateCell("2026-08-01")},
		{"01/08/2026", models.DateCell("01/08/2026")},
		{"14:30", models.DateCell("14:30")},
		{"14:30:05", models.DateCell("14:30:05")},
		{"Purchase Order", models.TextCell("Purchase Order")},
		{"  hello ", models.TextCell("hello")},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseCell(tt.input), "ParseCell(%q)", tt.input)
	}
}

func TestLoad(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetCellValue("Sheet1", "A1", "Name"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "Qty"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "Widget"))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", 3))

	_, err := f.NewSheet("Empty")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))

	bookName, sheets, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "book.xlsx", bookName)
	require.Len(t, sheets, 2)

	first := sheets[0]
	assert.Equal(t, "Sheet1", first.Name)
	require.Len(t, first.Rows, 2)
	assert.Equal(t, models.TextCell("Name"), first.Rows[0][0])
	assert.Equal(t, models.KindNumber, first.Rows[1][1].Kind)
	assert.Equal(t, float64(3), first.Rows[1][1].Number)

	// Legitimately empty sheet: zero rows but a non-nil slice, so callers
	// can tell it apart from a contract violation.
	empty := sheets[1]
	assert.Equal(t, "Empty", empty.Name)
	assert.NotNil(t, empty.Rows)
	assert.Empty(t, empty.Rows)
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.xlsx"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileNotFound))
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a workbook"), 0644))

	_, _, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidFormat))
}

// flakyReader serves two readable sheets around one whose rows error.
type flakyReader struct{}

func (flakyReader) GetSheetList() []string {
	return []string{"Good", "Bad", "Also Good"}
}

func (flakyReader) GetRows(sheet string, opts ...excelize.Options) ([][]string, error) {
	if sheet == "Bad" {
		return nil, errors.New("corrupt sheet xml")
	}
	return [][]string{{"Name", "Qty"}, {"Widget", "3"}}, nil
}

// One unreadable sheet is skipped; the rest of the workbook still loads.
func TestLoadSheetsSkipsUnreadableSheet(t *testing.T) {
	sheets := loadSheets(flakyReader{})

	require.Len(t, sheets, 2)
	assert.Equal(t, "Good", sheets[0].Name)
	assert.Equal(t, "Also Good", sheets[1].Name)
	for _, s := range sheets {
		require.Len(t, s.Rows, 2)
		assert.Equal(t, models.TextCell("Name"), s.Rows[0][0])
		assert.Equal(t, models.NumberCell("3", 3), s.Rows[1][1])
	}
}
