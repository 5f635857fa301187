package prompt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yuuyeah/review-and-assessment-powered-by-intelligent-documentation/internal/review"
)

func TestExpandPassThrough(t *testing.T) {
	template := "Review the document and report {{other_token}} findings."
	bundle := &review.Bundle{AllResults: []review.Result{{Result: "pass"}}}

	require.Equal(t, template, Expand(template, bundle))
}

func TestExpandReplacesToken(t *testing.T) {
	bundle := &review.Bundle{AllResults: []review.Result{
		{CheckList: &review.CheckItem{Name: "Totals Match"}, Result: "pass"},
	}}

	got := Expand("Results:\n{{all_results}}\nEnd.", bundle)
	require.Equal(t, "Results:\n### Totals Match: Pass\nEnd.", got)
}

func TestExpandMultipleOccurrences(t *testing.T) {
	bundle := &review.Bundle{AllResults: []review.Result{
		{CheckList: &review.CheckItem{Name: "Check"}, Result: "fail"},
	}}

	got := Expand("{{all_results}} -- {{all_results}}", bundle)
	require.Equal(t, "### Check: Fail -- ### Check: Fail", got)
}

func TestExpandNilBundleUsesSentinel(t *testing.T) {
	require.Equal(t, "No results available.", Expand("{{all_results}}", nil))
}

func TestExpandEmptyBundleUsesSentinel(t *testing.T) {
	require.Equal(t, "No results available.", Expand("{{all_results}}", &review.Bundle{}))
}

func TestTemplateRender(t *testing.T) {
	tmpl := &Template{
		Meta: Meta{Slug: "test"},
		Text: "Before\n{{all_results}}\nAfter",
	}

	got := tmpl.Render(&review.Bundle{})
	require.Equal(t, "Before\nNo results available.\nAfter", got)
}
