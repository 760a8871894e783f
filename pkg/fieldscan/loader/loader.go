// Package loader decodes an xlsx workbook into worksheets of typed cells.
package loader

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"fieldscan/pkg/fieldscan/models"
)

// ErrFileNotFound indicates the workbook path does not exist.
var ErrFileNotFound = errors.New("workbook file not found")

// ErrInvalidFormat indicates the file could not be opened as an xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx workbook")

// datePatterns match cell text shaped like a date or time stamp.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`),
	regexp.MustCompile(`^\d{2}/\d{2}/\d{4}`),
	regexp.MustCompile(`^\d{2}-\d{2}-\d{4}`),
	regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`),
}

// rowReader is the slice of excelize.File the loader walks sheets through.
type rowReader interface {
	GetSheetList() []string
	GetRows(sheet string, opts ...excelize.Options) ([][]string, error)
}

// Load opens the workbook at path and returns its file name plus all
// worksheets in workbook order. Failures wrap ErrFileNotFound or
// ErrInvalidFormat so callers can errors.Is the two load failure modes.
// A worksheet whose rows cannot be read is skipped with a logged warning
// so one bad sheet never aborts the rest. Every returned sheet carries a
// non-nil row slice; a legitimately empty worksheet has zero rows.
func Load(path string) (string, []models.RawSheet, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	return filepath.Base(path), loadSheets(f), nil
}

// loadSheets converts every readable worksheet to typed cells, skipping
// unreadable ones with a warning.
func loadSheets(f rowReader) []models.RawSheet {
	sheetList := f.GetSheetList()
	sheets := make([]models.RawSheet, 0, len(sheetList))

	for _, name := range sheetList {
		raw, err := f.GetRows(name)
		if err != nil {
			log.Printf("[loader] skipping unreadable sheet %q: %v", name, err)
			continue
		}

		rows := make([][]models.Cell, 0, len(raw))
		for _, r := range raw {
			cells := make([]models.Cell, len(r))
			for i, v := range r {
				cells[i] = ParseCell(v)
			}
			rows = append(rows, cells)
		}
		sheets = append(sheets, models.RawSheet{Name: name, Rows: rows})
	}

	return sheets
}

// ParseCell resolves a raw cell string to a typed Cell: blank for empty or
// whitespace-only text, number via strconv, date via pattern match, text
// otherwise. The raw display text is always retained.
func ParseCell(s string) models.Cell {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return models.BlankCell()
	}
	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return models.NumberCell(trimmed, v)
	}
	for _, p := range datePatterns {
		if p.MatchString(trimmed) {
			return models.DateCell(trimmed)
		}
	}
	return models.TextCell(trimmed)
}
