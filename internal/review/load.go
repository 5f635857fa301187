package review

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// DecodeBundle parses a data bundle from JSON bytes. Unknown fields are
// ignored; absent fields decode to their zero values and get defaulted at
// access time.
func DecodeBundle(data []byte) (*Bundle, error) {
	bundle := &Bundle{}
	if err := json.Unmarshal(data, bundle); err != nil {
		return nil, fmt.Errorf("decode bundle: %w", err)
	}
	return bundle, nil
}

// ReadBundle reads and decodes a data bundle from r.
func ReadBundle(r io.Reader) (*Bundle, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read bundle: %w", err)
	}
	return DecodeBundle(data)
}

// ReadBundleFile reads and decodes a data bundle from a JSON file.
func ReadBundleFile(path string) (*Bundle, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- bundle path is user-provided
	if err != nil {
		return nil, fmt.Errorf("read bundle %s: %w", path, err)
	}
	return DecodeBundle(data)
}
