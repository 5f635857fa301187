package prompt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFragments(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty string", raw: "", want: nil},
		{name: "whitespace only", raw: "   \n\t ", want: nil},
		{name: "json array", raw: `["a","b","c"]`, want: []string{"a", "b", "c"}},
		{name: "empty json array", raw: `[]`, want: []string{}},
		{name: "plain text", raw: "hello world", want: []string{"hello world"}},
		{name: "plain text is trimmed", raw: "  hello  ", want: []string{"hello"}},
		{name: "malformed json falls back to plain text", raw: `["unterminated`, want: []string{`["unterminated`}},
		{name: "json object falls back to plain text", raw: `{"a":1}`, want: []string{`{"a":1}`}},
		{name: "json string falls back to plain text", raw: `"quoted"`, want: []string{`"quoted"`}},
		{name: "non-string elements are stringified", raw: `["a",2]`, want: []string{"a", "2"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ParseFragments(tc.raw))
		})
	}
}
