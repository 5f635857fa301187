package prompt

import (
	"github.com/yuuyeah/review-and-assessment-powered-by-intelligent-documentation/internal/review"
)

// Meta describes a prompt template definition loaded from YAML frontmatter.
type Meta struct {
	Slug        string `yaml:"slug" json:"slug"`
	Name        string `yaml:"name,omitempty" json:"name,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string `yaml:"version,omitempty" json:"version,omitempty"`
	Updated     string `yaml:"updated,omitempty" json:"updated,omitempty"`
}

// Template is a validated prompt template with its source path.
type Template struct {
	Meta   Meta
	Text   string
	Source string
}

// Render expands the template's placeholders with the bundle's data.
func (t *Template) Render(bundle *review.Bundle) string {
	return Expand(t.Text, bundle)
}
