// Package models defines data structures for workbook field analysis.
package models

// Kind identifies the parsed type of a cell value.
type Kind string

const (
	// KindBlank marks an empty or whitespace-only cell.
	KindBlank Kind = "blank"
	// KindText marks a cell holding free text.
	KindText Kind = "text"
	// KindNumber marks a cell parsed as an integer or decimal.
	KindNumber Kind = "number"
	// KindDate marks a cell whose text matches a date or time pattern.
	KindDate Kind = "date"
)

// Cell is a single worksheet cell after type resolution.
type Cell struct {
	// Kind is the resolved value type.
	Kind Kind
	// Text is the raw display text as read from the sheet.
	Text string
	// Number holds the parsed value when Kind is KindNumber.
	Number float64
}

// IsBlank reports whether the cell holds no value.
func (c Cell) IsBlank() bool {
	return c.Kind == KindBlank
}

// BlankCell returns the canonical empty cell.
func BlankCell() Cell {
	return Cell{Kind: KindBlank}
}

// TextCell builds a text cell.
func TextCell(s string) Cell {
	return Cell{Kind: KindText, Text: s}
}

// NumberCell builds a numeric cell, retaining the original display text.
func NumberCell(text string, v float64) Cell {
	return Cell{Kind: KindNumber, Text: text, Number: v}
}

// DateCell builds a date cell, retaining the original display text.
func DateCell(text string) Cell {
	return Cell{Kind: KindDate, Text: text}
}
