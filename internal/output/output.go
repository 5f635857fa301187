// Package output renders review bundles for CLI inspection.
package output

import (
	"fmt"
	"strings"

	"github.com/yuuyeah/review-and-assessment-powered-by-intelligent-documentation/internal/review"
)

// Format represents an output format.
type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Formatter renders a review bundle.
type Formatter interface {
	FormatBundle(bundle *review.Bundle) (string, error)
}

// ParseFormat validates and normalizes a format string.
func ParseFormat(value string) (Format, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch normalized {
	case "", string(FormatTable):
		return FormatTable, nil
	case string(FormatJSON):
		return FormatJSON, nil
	case string(FormatMarkdown):
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", value)
	}
}

// NewFormatter returns a formatter for the requested format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: true}
	case FormatMarkdown:
		return &MarkdownFormatter{}
	default:
		return &TableFormatter{}
	}
}

// statusCell renders the status column, marking human overrides.
func statusCell(r review.Result) string {
	label := r.StatusLabel()
	if r.UserOverride {
		label += " (override)"
	}
	return label
}

// confidenceCell renders the confidence column, empty when absent.
func confidenceCell(r review.Result) string {
	pct, ok := r.ConfidencePercent()
	if !ok {
		return ""
	}
	return fmt.Sprintf("%d%%", pct)
}

// sourcesCell renders the source references joined for a single cell.
func sourcesCell(r review.Result) string {
	if len(r.SourceReferences) == 0 {
		return ""
	}
	labels := make([]string, 0, len(r.SourceReferences))
	for _, ref := range r.SourceReferences {
		labels = append(labels, ref.Label())
	}
	return strings.Join(labels, ", ")
}

// summaryLine counts results by status for footers.
func summaryLine(results []review.Result) string {
	var pass, fail, pending int
	for _, r := range results {
		switch r.StatusLabel() {
		case "Pass":
			pass++
		case "Fail":
			fail++
		default:
			pending++
		}
	}
	return fmt.Sprintf("%d pass, %d fail, %d pending", pass, fail, pending)
}
