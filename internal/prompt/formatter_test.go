package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yuuyeah/review-and-assessment-powered-by-intelligent-documentation/internal/review"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestFormatAllResultsEmpty(t *testing.T) {
	require.Equal(t, "No results available.", FormatAllResults(nil))
	require.Equal(t, "No results available.", FormatAllResults([]review.Result{}))
}

func TestFormatAllResultsBlockCountAndOrder(t *testing.T) {
	items := []review.Result{
		{CheckList: &review.CheckItem{Name: "First"}},
		{CheckList: &review.CheckItem{Name: "Second"}},
		{CheckList: &review.CheckItem{Name: "Third"}},
	}

	got := FormatAllResults(items)
	blocks := strings.Split(got, "\n\n")
	require.Len(t, blocks, 3)
	require.Equal(t, "### First: Pending", blocks[0])
	require.Equal(t, "### Second: Pending", blocks[1])
	require.Equal(t, "### Third: Pending", blocks[2])
}

func TestFormatAllResultsHeaderVariants(t *testing.T) {
	tests := []struct {
		name string
		item review.Result
		want string
	}{
		{
			name: "parent category with override",
			item: review.Result{
				CheckList:    &review.CheckItem{Name: "Check A", ParentName: "Category 1"},
				Result:       "fail",
				UserOverride: true,
			},
			want: "### [Category 1] Check A: Fail (User Override)",
		},
		{
			name: "no parent",
			item: review.Result{
				CheckList: &review.CheckItem{Name: "Check B"},
				Result:    "pass",
			},
			want: "### Check B: Pass",
		},
		{
			name: "missing check list defaults to Unknown",
			item: review.Result{Result: "weird"},
			want: "### Unknown: Pending",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatAllResults([]review.Result{tc.item})
			require.Equal(t, tc.want, strings.Split(got, "\n")[0])
		})
	}
}

func TestFormatAllResultsConfidenceTruncation(t *testing.T) {
	got := FormatAllResults([]review.Result{{ConfidenceScore: floatPtr(0.456)}})
	require.Contains(t, got, "- Confidence: 45%")
}

func TestFormatAllResultsConfidenceZeroStillRenders(t *testing.T) {
	got := FormatAllResults([]review.Result{{ConfidenceScore: floatPtr(0)}})
	require.Contains(t, got, "- Confidence: 0%")
}

func TestFormatAllResultsConfidenceAbsentOmitsLine(t *testing.T) {
	got := FormatAllResults([]review.Result{{Result: "pass"}})
	require.NotContains(t, got, "Confidence")
}

func TestFormatAllResultsReferenceCapping(t *testing.T) {
	refs := make([]review.SourceReference, 0, 7)
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		refs = append(refs, review.SourceReference{Filename: name + ".pdf"})
	}

	got := FormatAllResults([]review.Result{{SourceReferences: refs}})
	require.Contains(t, got, "- Sources: a.pdf, b.pdf, c.pdf, d.pdf, e.pdf")
	require.NotContains(t, got, "f.pdf")
}

func TestFormatAllResultsReferenceDefaults(t *testing.T) {
	got := FormatAllResults([]review.Result{{
		SourceReferences: []review.SourceReference{
			{PageNumber: 2},
			{Filename: "report.pdf"},
		},
	}})
	require.Contains(t, got, "- Sources: Unknown (p.2), report.pdf")
}

func TestFormatAllResultsFragmentCapping(t *testing.T) {
	got := FormatAllResults([]review.Result{{ExtractedText: `["a","b","c","d"]`}})
	require.Contains(t, got, `- Extracted text: "a", "b", "c"`)
	require.NotContains(t, got, `"d"`)
}

func TestFormatAllResultsPlainTextFragment(t *testing.T) {
	got := FormatAllResults([]review.Result{{ExtractedText: "hello world"}})
	require.Contains(t, got, `- Extracted text: "hello world"`)
}

func TestFormatAllResultsEmptyFragmentsOmitLine(t *testing.T) {
	got := FormatAllResults([]review.Result{{ExtractedText: "[]"}})
	require.NotContains(t, got, "Extracted text")
}

func TestFormatAllResultsUserCommentWithoutOverride(t *testing.T) {
	// A comment renders whenever present, independent of the override flag.
	got := FormatAllResults([]review.Result{{UserComment: "looks fine to me"}})
	require.Contains(t, got, "- User comment: looks fine to me")
	require.NotContains(t, got, "(User Override)")
}

func TestFormatAllResultsFieldLineOrder(t *testing.T) {
	got := FormatAllResults([]review.Result{{
		Result:       "fail",
		UserOverride: true,
		CheckList: &review.CheckItem{
			Name:        "Signature Present",
			ParentName:  "Compliance",
			Description: "The document must be signed.",
		},
		ConfidenceScore:  floatPtr(0.875),
		Explanation:      "No signature found on the last page.",
		ExtractedText:    `["page 12 is unsigned"]`,
		SourceReferences: []review.SourceReference{{Filename: "contract.pdf", PageNumber: 12}},
		UserComment:      "Signed copy received by mail.",
	}})

	want := strings.Join([]string{
		"### [Compliance] Signature Present: Fail (User Override)",
		"- Rule: The document must be signed.",
		"- Confidence: 87%",
		"- Explanation: No signature found on the last page.",
		`- Extracted text: "page 12 is unsigned"`,
		"- Sources: contract.pdf (p.12)",
		"- User comment: Signed copy received by mail.",
	}, "\n")
	require.Equal(t, want, got)
}

func TestFormatAllResultsEndToEndScenario(t *testing.T) {
	got := FormatAllResults([]review.Result{{
		CheckList:        &review.CheckItem{Name: "Totals Match"},
		Result:           "pass",
		ConfidenceScore:  floatPtr(0.92),
		SourceReferences: []review.SourceReference{{Filename: "invoice.pdf", PageNumber: 3}},
	}})

	want := "### Totals Match: Pass\n- Confidence: 92%\n- Sources: invoice.pdf (p.3)"
	require.Equal(t, want, got)
}
