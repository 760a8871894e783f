package fieldscan

import (
	"golang.org/x/sync/errgroup"

	"fieldscan/pkg/fieldscan/aggregate"
	"fieldscan/pkg/fieldscan/detect"
	"fieldscan/pkg/fieldscan/loader"
	"fieldscan/pkg/fieldscan/models"
)

// Analyze loads the workbook at path and runs the full field analysis.
func Analyze(path string, opts Options) (*models.Result, error) {
	bookName, sheets, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	return AnalyzeSheets(bookName, sheets, opts)
}

// AnalyzeSheets runs field analysis over already-loaded worksheets. Header
// detection runs per sheet in parallel: sheets share no mutable state and
// results land in an index-addressed slice, so output stays deterministic.
// Aggregation waits for all sheets and runs as a single reduction.
func AnalyzeSheets(bookName string, sheets []models.RawSheet, opts Options) (*models.Result, error) {
	cfg := opts.detectConfig()

	detected := make([]models.SheetFields, len(sheets))
	var g errgroup.Group
	for i, sheet := range sheets {
		i, sheet := i, sheet
		g.Go(func() error {
			sf, err := detect.DetectHeader(sheet, cfg)
			if err != nil {
				return &SheetError{Sheet: sheet.Name, Stage: "detect", Err: err}
			}
			detected[i] = sf
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := aggregate.Aggregate(detected)
	res.BookName = bookName
	return res, nil
}
