package fieldscan

import (
	"fmt"

	"fieldscan/pkg/fieldscan/detect"
	"fieldscan/pkg/fieldscan/loader"
)

// Sentinel failure modes, re-exported from the subpackages that produce
// them so callers can errors.Is against the package they imported.
var (
	// ErrFileNotFound indicates the workbook path does not exist.
	ErrFileNotFound = loader.ErrFileNotFound
	// ErrInvalidFormat indicates the file is not a readable xlsx workbook.
	ErrInvalidFormat = loader.ErrInvalidFormat
	// ErrMissingRows signals a loader contract violation: a worksheet
	// present in the input but with a nil row set.
	ErrMissingRows = detect.ErrMissingRows
)

// SheetError carries the worksheet and analysis stage an error came from.
type SheetError struct {
	Sheet string
	Stage string // "load", "detect"
	Err   error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("analysis error in sheet %q (%s): %v", e.Sheet, e.Stage, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}
