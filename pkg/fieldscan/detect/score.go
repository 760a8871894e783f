// Package detect locates the header row of a worksheet and extracts its
// ordered field list.
package detect

import (
	"regexp"
	"strconv"
	"strings"

	"fieldscan/pkg/fieldscan/category"
	"fieldscan/pkg/fieldscan/models"
)

// Scoring weights for header confidence. Tunable defaults validated
// against the worked scenarios in the tests, not exact constants.
const (
	textWeight    = 0.6
	dataPenalty   = 0.3
	keywordWeight = 0.4
)

// dataPatterns match cell text that is almost certainly a data value
// rather than a field name: order numbers, product/shipping codes,
// monetary amounts, UK-style postcodes.
var dataPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^PO[-]?\d+`),
	regexp.MustCompile(`^[A-Z]{2,5}-\d+$`),
	regexp.MustCompile(`^[A-Z]{1,2}\d{1,2}\s+\d[A-Z]{2}$`),
	regexp.MustCompile(`^[£$€]\s?\d`),
	regexp.MustCompile(`^\d[\d,]*\.?\d*$`),
}

var keywords = category.Keywords()

// headerish reports whether a cell plausibly holds a field name: non-blank
// text that is neither purely numeric nor shaped like a known data value.
func headerish(c models.Cell) bool {
	if c.Kind != models.KindText {
		return false
	}
	text := strings.TrimSpace(c.Text)
	if text == "" {
		return false
	}
	if _, err := strconv.ParseFloat(text, 64); err == nil {
		return false
	}
	return !looksLikeData(text)
}

// looksLikeData reports whether text matches a known data-value pattern.
func looksLikeData(text string) bool {
	for _, p := range dataPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// hasKeyword reports whether the normalized cell text contains any keyword
// from the categorization rule table.
func hasKeyword(text string) bool {
	lower := models.FieldKey(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// ScoreRow returns a header confidence for one row in [0, 1]. It is a pure
// function of the row and config: higher proportions of header-like text
// raise the score, data-shaped cells (numbers, dates, code or monetary
// text) lower it, and categorizer keyword hits add a capped bonus. Rows
// with fewer than cfg.MinHeaderCells header-like cells score zero.
func ScoreRow(row []models.Cell, cfg Config) float64 {
	var nonBlank, header, data, keyword int
	for _, c := range row {
		if c.IsBlank() {
			continue
		}
		nonBlank++
		switch {
		case headerish(c):
			header++
			if hasKeyword(c.Text) {
				keyword++
			}
		default:
			// numbers, dates, and data-patterned text
			data++
		}
	}
	if nonBlank == 0 || header < cfg.MinHeaderCells {
		return 0
	}

	textFrac := float64(header) / float64(nonBlank)
	dataFrac := float64(data) / float64(nonBlank)
	kwFrac := float64(keyword) / float64(nonBlank)
	if kwFrac > 1 {
		kwFrac = 1
	}

	score := textWeight*textFrac - dataPenalty*dataFrac + keywordWeight*kwFrac
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// SelectHeaderRow scans the leading cfg.Window rows, scores each, and
// returns the index of the highest-scoring row (earliest index wins ties)
// together with whether that row met cfg.MinScore. When no row is
// accepted the returned index is 0, the fallback header.
func SelectHeaderRow(rows [][]models.Cell, cfg Config) (int, bool) {
	window := cfg.Window
	if window > len(rows) {
		window = len(rows)
	}

	best, bestScore := 0, 0.0
	for i := 0; i < window; i++ {
		if s := ScoreRow(rows[i], cfg); s > bestScore {
			best, bestScore = i, s
		}
	}
	if bestScore < cfg.MinScore {
		return 0, false
	}
	return best, true
}
