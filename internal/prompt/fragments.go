package prompt

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseFragments interprets extracted text as either a JSON array of
// fragments or a single plain-text fragment. Decode failures and non-array
// values degrade to the plain-text path; this never reports an error.
func ParseFragments(raw string) []string {
	if raw == "" {
		return nil
	}

	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err == nil {
		if list, ok := decoded.([]any); ok {
			fragments := make([]string, 0, len(list))
			for _, item := range list {
				if s, ok := item.(string); ok {
					fragments = append(fragments, s)
					continue
				}
				fragments = append(fragments, fmt.Sprint(item))
			}
			return fragments
		}
		// Valid JSON but not an array: fall through to plain text.
	}

	if trimmed := strings.TrimSpace(raw); trimmed != "" {
		return []string{trimmed}
	}
	return nil
}
