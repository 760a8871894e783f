// Package fieldscan discovers the logical data fields in use across the
// worksheets of an xlsx workbook and aggregates field usage into a
// presence matrix with universal/common/unique classification.
package fieldscan

import "fieldscan/pkg/fieldscan/detect"

// Options configures workbook analysis. Zero values mean defaults.
type Options struct {
	// IncludeUnnamedColumns keeps blank header cells as positional
	// "Column N" placeholders instead of dropping them.
	IncludeUnnamedColumns bool
	// HeaderWindow is the number of leading rows scanned per worksheet
	// for a plausible header row. Default 10.
	HeaderWindow int
	// MinHeaderScore is the acceptance threshold for header detection;
	// when no scanned row reaches it the first row is used as a
	// best-effort header. Default 0.45.
	MinHeaderScore float64
}

// DefaultOptions returns default analysis options.
func DefaultOptions() Options {
	return Options{}
}

// detectConfig resolves the options into header detection parameters.
func (o Options) detectConfig() detect.Config {
	cfg := detect.DefaultConfig()
	cfg.IncludeUnnamed = o.IncludeUnnamedColumns
	if o.HeaderWindow > 0 {
		cfg.Window = o.HeaderWindow
	}
	if o.MinHeaderScore > 0 {
		cfg.MinScore = o.MinHeaderScore
	}
	return cfg
}
