package output

import (
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/yuuyeah/review-and-assessment-powered-by-intelligent-documentation/internal/review"
)

// TableFormatter renders a review bundle as an ASCII table.
type TableFormatter struct{}

// FormatBundle renders the bundle's results as a table.
func (f *TableFormatter) FormatBundle(bundle *review.Bundle) (string, error) {
	results := bundle.Results()
	if len(results) == 0 {
		return "", nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Category", "Check", "Status", "Confidence", "Sources"})

	for _, r := range results {
		t.AppendRow(table.Row{
			r.ParentName(),
			r.CheckName(),
			statusCell(r),
			confidenceCell(r),
			sourcesCell(r),
		})
	}

	t.AppendFooter(table.Row{"", "", summaryLine(results), "", ""})

	return t.Render(), nil
}
