package output

import (
	"encoding/json"

	"github.com/yuuyeah/review-and-assessment-powered-by-intelligent-documentation/internal/review"
)

// JSONFormatter renders a review bundle as JSON.
type JSONFormatter struct {
	Indent bool
}

// FormatBundle renders the bundle's results as JSON.
func (f *JSONFormatter) FormatBundle(bundle *review.Bundle) (string, error) {
	results := bundle.Results()

	var (
		data []byte
		err  error
	)

	if f.Indent {
		data, err = json.MarshalIndent(results, "", "  ")
	} else {
		data, err = json.Marshal(results)
	}
	if err != nil {
		return "", err
	}

	return string(data), nil
}
