package prompt

import (
	"fmt"
	"sort"
	"strings"
)

// Registry provides access to template definitions.
type Registry interface {
	Get(slug string) (*Template, error)
	List() []*Template
}

// InMemoryRegistry stores templates by slug.
type InMemoryRegistry struct {
	templates map[string]*Template
}

// NewRegistry builds a registry from templates.
func NewRegistry(templates []*Template) (*InMemoryRegistry, error) {
	reg := &InMemoryRegistry{templates: make(map[string]*Template)}
	for _, tmpl := range templates {
		if tmpl == nil {
			continue
		}
		slug := strings.TrimSpace(tmpl.Meta.Slug)
		if slug == "" {
			return nil, fmt.Errorf("template missing slug")
		}
		if _, ok := reg.templates[slug]; ok {
			return nil, fmt.Errorf("duplicate template slug: %s", slug)
		}
		reg.templates[slug] = tmpl
	}
	return reg, nil
}

// Get returns the template for the slug.
func (r *InMemoryRegistry) Get(slug string) (*Template, error) {
	if r == nil {
		return nil, fmt.Errorf("template registry not configured")
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, fmt.Errorf("template slug is required")
	}
	tmpl, ok := r.templates[slug]
	if !ok {
		return nil, fmt.Errorf("template %q not found", slug)
	}
	return tmpl, nil
}

// List returns templates sorted by slug.
func (r *InMemoryRegistry) List() []*Template {
	if r == nil {
		return nil
	}
	keys := make([]string, 0, len(r.templates))
	for slug := range r.templates {
		keys = append(keys, slug)
	}
	sort.Strings(keys)
	result := make([]*Template, 0, len(keys))
	for _, slug := range keys {
		result = append(result, r.templates[slug])
	}
	return result
}
