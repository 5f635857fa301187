package prompt

import (
	"fmt"
	"strings"

	"github.com/yuuyeah/review-and-assessment-powered-by-intelligent-documentation/internal/review"
)

// NoResultsSentinel is returned by FormatAllResults for an empty result list.
const NoResultsSentinel = "No results available."

const (
	maxFragments  = 3
	maxReferences = 5
)

// FormatAllResults renders review results as one text block per record,
// blocks separated by a blank line, in input order. Absent fields omit their
// line entirely; no record is ever dropped.
func FormatAllResults(items []review.Result) string {
	if len(items) == 0 {
		return NoResultsSentinel
	}

	blocks := make([]string, 0, len(items))
	for _, item := range items {
		blocks = append(blocks, formatResult(item))
	}
	return strings.Join(blocks, "\n\n")
}

func formatResult(item review.Result) string {
	lines := []string{headerLine(item)}

	if rule := item.Rule(); rule != "" {
		lines = append(lines, "- Rule: "+rule)
	}

	// A confidence of exactly 0 still renders; only an absent score omits
	// the line.
	if pct, ok := item.ConfidencePercent(); ok {
		lines = append(lines, fmt.Sprintf("- Confidence: %d%%", pct))
	}

	if item.Explanation != "" {
		lines = append(lines, "- Explanation: "+item.Explanation)
	}

	if fragments := ParseFragments(item.ExtractedText); len(fragments) > 0 {
		if len(fragments) > maxFragments {
			fragments = fragments[:maxFragments]
		}
		lines = append(lines, `- Extracted text: "`+strings.Join(fragments, `", "`)+`"`)
	}

	if refs := item.SourceReferences; len(refs) > 0 {
		if len(refs) > maxReferences {
			refs = refs[:maxReferences]
		}
		labels := make([]string, 0, len(refs))
		for _, ref := range refs {
			labels = append(labels, ref.Label())
		}
		lines = append(lines, "- Sources: "+strings.Join(labels, ", "))
	}

	if item.UserComment != "" {
		lines = append(lines, "- User comment: "+item.UserComment)
	}

	return strings.Join(lines, "\n")
}

func headerLine(item review.Result) string {
	override := ""
	if item.UserOverride {
		override = " (User Override)"
	}

	if parent := item.ParentName(); parent != "" {
		return fmt.Sprintf("### [%s] %s: %s%s", parent, item.CheckName(), item.StatusLabel(), override)
	}
	return fmt.Sprintf("### %s: %s%s", item.CheckName(), item.StatusLabel(), override)
}
