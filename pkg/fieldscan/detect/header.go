package detect

import (
	"errors"
	"fmt"
	"strconv"

	"fieldscan/pkg/fieldscan/models"
)

// ErrMissingRows signals a loader contract violation: a worksheet reported
// as present but carrying a nil row set. Distinct from a legitimately
// empty worksheet, which has a non-nil empty row slice.
var ErrMissingRows = errors.New("worksheet has no row data")

// Config holds header detection parameters.
type Config struct {
	// Window is the number of leading rows scanned for a header.
	Window int
	// MinScore is the acceptance threshold for the best-scoring row;
	// below it detection falls back to the first row.
	MinScore float64
	// MinHeaderCells is the minimum count of header-like cells a row
	// needs to be a candidate at all.
	MinHeaderCells int
	// IncludeUnnamed keeps blank header cells as positional "Column N"
	// placeholders instead of dropping them.
	IncludeUnnamed bool
}

// DefaultConfig returns the default detection parameters.
func DefaultConfig() Config {
	return Config{
		Window:         10,
		MinScore:       0.45,
		MinHeaderCells: 2,
	}
}

// DetectHeader decides which row of the worksheet is the header and
// returns the ordered field list built from it. It never fails on sheet
// content: an empty worksheet yields empty SheetFields, and a sheet with
// no acceptable header row falls back to the first row so the field
// universe is never silently undercounted. The only error is a nil row
// set, wrapping ErrMissingRows.
func DetectHeader(sheet models.RawSheet, cfg Config) (models.SheetFields, error) {
	if sheet.Rows == nil {
		return models.SheetFields{}, fmt.Errorf("worksheet %q: %w", sheet.Name, ErrMissingRows)
	}
	if len(sheet.Rows) == 0 {
		return models.SheetFields{Sheet: sheet.Name}, nil
	}

	idx, ok := SelectHeaderRow(sheet.Rows, cfg)
	return models.SheetFields{
		Sheet:     sheet.Name,
		Fields:    extractFields(sheet.Rows[idx], cfg),
		HeaderRow: idx,
		Fallback:  !ok,
	}, nil
}

// extractFields builds the ordered, deduplicated field list from the
// chosen header row. Non-empty cells become normalized field names; blank
// cells are dropped or, with IncludeUnnamed, kept as "Column N". Duplicate
// identities keep the first occurrence's display casing.
func extractFields(row []models.Cell, cfg Config) []string {
	var fields []string
	seen := make(map[string]struct{})
	for col, c := range row {
		var name string
		if c.IsBlank() {
			if !cfg.IncludeUnnamed {
				continue
			}
			name = "Column " + strconv.Itoa(col+1)
		} else {
			name = models.NormalizeField(c.Text)
			if name == "" {
				continue
			}
		}
		key := models.FieldKey(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		fields = append(fields, name)
	}
	return fields
}
