package prompt

import (
	"embed"
	"fmt"
)

//go:embed templates/*.md
var defaultTemplatesFS embed.FS

// LoadDefaults loads the embedded template set.
func LoadDefaults() ([]*Template, error) {
	entries, err := defaultTemplatesFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}
	results := make([]*Template, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := defaultTemplatesFS.ReadFile("templates/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read embedded template %s: %w", entry.Name(), err)
		}
		tmpl, err := Load(entry.Name(), data)
		if err != nil {
			return nil, err
		}
		results = append(results, tmpl)
	}
	return results, nil
}

// DefaultRegistry builds a registry from embedded templates.
func DefaultRegistry() (Registry, error) {
	templates, err := LoadDefaults()
	if err != nil {
		return nil, err
	}
	return NewRegistry(templates)
}
