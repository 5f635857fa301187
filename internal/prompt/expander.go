// Package prompt builds next-action generation prompts from review results.
// It expands placeholder tokens in a prompt template with formatted renderings
// of the data bundle, and manages the template definitions themselves.
package prompt

import (
	"strings"

	"github.com/yuuyeah/review-and-assessment-powered-by-intelligent-documentation/internal/review"
)

// AllResultsToken is the placeholder replaced with the formatted result list.
const AllResultsToken = "{{all_results}}"

// Expand replaces every occurrence of each recognized placeholder in template
// with its rendering for bundle. Unrecognized content passes through
// byte-for-byte, and a nil or empty bundle degrades to the formatter's
// no-data sentinel rather than failing.
//
// Each token is an independent replace step; new tokens slot in alongside
// AllResultsToken without changing this contract.
func Expand(template string, bundle *review.Bundle) string {
	expanded := template

	expanded = strings.ReplaceAll(expanded, AllResultsToken, FormatAllResults(bundle.Results()))

	return expanded
}
