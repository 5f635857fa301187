package output

import (
	"fmt"
	"strings"

	"github.com/yuuyeah/review-and-assessment-powered-by-intelligent-documentation/internal/review"
)

// MarkdownFormatter renders a review bundle as a markdown table.
type MarkdownFormatter struct{}

// FormatBundle renders the bundle's results as Markdown.
func (f *MarkdownFormatter) FormatBundle(bundle *review.Bundle) (string, error) {
	results := bundle.Results()
	if len(results) == 0 {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString("## Review results\n\n")
	sb.WriteString("| Category | Check | Status | Confidence | Sources |\n")
	sb.WriteString("|----------|-------|--------|------------|---------|\n")

	for _, r := range results {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
			escapeMarkdownCell(r.ParentName()),
			escapeMarkdownCell(r.CheckName()),
			escapeMarkdownCell(statusCell(r)),
			escapeMarkdownCell(confidenceCell(r)),
			escapeMarkdownCell(sourcesCell(r)),
		))
	}

	sb.WriteString(fmt.Sprintf("\n**Summary**: %s\n", summaryLine(results)))
	return sb.String(), nil
}

func escapeMarkdownCell(value string) string {
	return strings.ReplaceAll(value, "|", "\\|")
}
