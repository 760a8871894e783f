package models

// RawSheet is one worksheet as produced by the loader: the sheet name and
// its rows of typed cells in sheet order. The loader always sets Rows to a
// non-nil slice; a nil Rows is a loader contract violation, not an empty
// worksheet.
type RawSheet struct {
	// Name is the worksheet name.
	Name string
	// Rows holds the sheet contents, positionally indexed by column.
	Rows [][]Cell
}

// SheetFields is the detected schema of one worksheet.
type SheetFields struct {
	// Sheet is the worksheet name.
	Sheet string `json:"sheet"`
	// Fields is the ordered field list, deduplicated by normalized
	// identity. Order follows column order of the detected header row.
	Fields []string `json:"fields"`
	// HeaderRow is the zero-based index of the row chosen as the header.
	HeaderRow int `json:"header_row"`
	// Fallback is true when no row in the detection window was accepted
	// and the first row was used as a best-effort header.
	Fallback bool `json:"fallback,omitempty"`
}
