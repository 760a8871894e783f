package report

import (
	"bytes"
	"fmt"
	"os"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"fieldscan/pkg/fieldscan/models"
)

// Markdown renders the human-readable analysis summary.
func Markdown(r *Report, res *models.Result) []byte {
	var b bytes.Buffer

	fmt.Fprintf(&b, "# Field Analysis: %s\n\n", r.BookName)
	fmt.Fprintf(&b, "Analysis %s, run %s.\n\n", r.AnalysisID, r.AnalysisDate)

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "| Metric | Count |\n|---|---|\n")
	fmt.Fprintf(&b, "| Total Sheets | %d |\n", r.TotalSheets)
	fmt.Fprintf(&b, "| Total Unique Fields | %d |\n", r.TotalFields)
	fmt.Fprintf(&b, "| Universal Fields | %d |\n", len(r.UniversalFields))
	fmt.Fprintf(&b, "| Common Fields | %d |\n", len(r.CommonFields))
	fmt.Fprintf(&b, "| Unique Fields | %d |\n", len(r.UniqueFields))
	fmt.Fprintf(&b, "| Mean Fields per Sheet | %.1f |\n\n", r.Stats.MeanFieldsPerSheet)

	b.WriteString("## Worksheets\n\n")
	for i, name := range r.SheetNames {
		fmt.Fprintf(&b, "%d. %s (%d fields)\n", i+1, name, r.FieldsPerSheet[name])
	}
	b.WriteString("\n")

	b.WriteString("## Fields by usage\n\n")
	b.WriteString("| Field | Category | Sheets | % of Sheets |\n|---|---|---|---|\n")
	for _, usage := range fieldsByUsage(res) {
		fmt.Fprintf(&b, "| %s | %s | %d | %s |\n",
			usage.Name, usage.Category, usage.Count, percentage(usage.Count, r.TotalSheets))
	}
	b.WriteString("\n")

	b.WriteString("## Categories\n\n")
	for _, cat := range models.Categories() {
		fields := r.FieldCategories[cat]
		if len(fields) == 0 {
			continue
		}
		fmt.Fprintf(&b, "### %s (%d fields)\n\n", cat, len(fields))
		for _, field := range fields {
			fmt.Fprintf(&b, "- %s (%d sheets)\n", field, r.SheetsPerField[field])
		}
		b.WriteString("\n")
	}

	return b.Bytes()
}

// ToHTML renders the Markdown summary as a standalone HTML page.
func ToHTML(md []byte, title string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{
		Title: title,
		Flags: html.CommonFlags | html.CompletePage,
	})
	return markdown.ToHTML(md, p, renderer)
}

// WriteMarkdown writes both the Markdown summary and its HTML rendering.
func WriteMarkdown(r *Report, res *models.Result, mdPath, htmlPath string) error {
	md := Markdown(r, res)
	if err := os.WriteFile(mdPath, md, 0644); err != nil {
		return err
	}
	return os.WriteFile(htmlPath, ToHTML(md, "Field Analysis: "+r.BookName), 0644)
}
