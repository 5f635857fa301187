package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yuuyeah/review-and-assessment-powered-by-intelligent-documentation/internal/review"
)

func sampleBundle() *review.Bundle {
	score := 0.92
	return &review.Bundle{AllResults: []review.Result{
		{
			Result:          "pass",
			CheckList:       &review.CheckItem{Name: "Totals Match", ParentName: "Financial"},
			ConfidenceScore: &score,
			SourceReferences: []review.SourceReference{
				{Filename: "invoice.pdf", PageNumber: 3},
			},
		},
		{
			Result:       "fail",
			UserOverride: true,
			CheckList:    &review.CheckItem{Name: "Signature Present"},
		},
	}}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "", want: FormatTable},
		{input: "table", want: FormatTable},
		{input: "JSON", want: FormatJSON},
		{input: " markdown ", want: FormatMarkdown},
		{input: "xml", wantErr: true},
	}

	for _, tc := range tests {
		got, err := ParseFormat(tc.input)
		if tc.wantErr {
			require.Error(t, err, "input %q", tc.input)
			continue
		}
		require.NoError(t, err, "input %q", tc.input)
		require.Equal(t, tc.want, got)
	}
}

func TestTableFormatter(t *testing.T) {
	rendered, err := (&TableFormatter{}).FormatBundle(sampleBundle())
	require.NoError(t, err)
	require.Contains(t, rendered, "Totals Match")
	require.Contains(t, rendered, "92%")
	require.Contains(t, rendered, "Fail (override)")
	// go-pretty upper-cases footer text by default.
	require.Contains(t, strings.ToUpper(rendered), "1 PASS, 1 FAIL, 0 PENDING")
}

func TestMarkdownFormatter(t *testing.T) {
	rendered, err := (&MarkdownFormatter{}).FormatBundle(sampleBundle())
	require.NoError(t, err)
	require.Contains(t, rendered, "| Financial | Totals Match | Pass | 92% | invoice.pdf (p.3) |")
	require.Contains(t, rendered, "**Summary**: 1 pass, 1 fail, 0 pending")
}

func TestJSONFormatter(t *testing.T) {
	rendered, err := (&JSONFormatter{}).FormatBundle(sampleBundle())
	require.NoError(t, err)
	require.Contains(t, rendered, `"Totals Match"`)
}

func TestFormattersEmptyBundle(t *testing.T) {
	for _, format := range []Format{FormatTable, FormatMarkdown} {
		rendered, err := NewFormatter(format).FormatBundle(&review.Bundle{})
		require.NoError(t, err)
		require.Empty(t, rendered)
	}
}
