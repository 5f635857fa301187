package prompt

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load parses a template definition from a .md file's bytes: YAML
// frontmatter between "---" markers, template text as the body.
func Load(source string, data []byte) (*Template, error) {
	meta, body, err := parseFrontmatter(data)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", source, err)
	}

	text := strings.TrimSpace(body)
	if text == "" {
		return nil, fmt.Errorf("template %s has no body", source)
	}
	if strings.TrimSpace(meta.Slug) == "" {
		return nil, fmt.Errorf("template %s missing slug", source)
	}

	return &Template{Meta: meta, Text: text, Source: source}, nil
}

// LoadFromDir reads all template files (.md with YAML frontmatter) from a
// directory.
func LoadFromDir(dir string) ([]*Template, error) {
	entries, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("scan templates: %w", err)
	}
	results := make([]*Template, 0, len(entries))
	for _, path := range entries {
		data, err := os.ReadFile(path) // #nosec G304 -- template path is user-provided
		if err != nil {
			return nil, fmt.Errorf("read template %s: %w", path, err)
		}
		tmpl, err := Load(path, data)
		if err != nil {
			return nil, err
		}
		results = append(results, tmpl)
	}
	return results, nil
}

func parseFrontmatter(data []byte) (Meta, string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Meta{}, "", fmt.Errorf("empty template")
	}

	lines := bufio.NewScanner(bytes.NewReader(trimmed))
	lines.Split(bufio.ScanLines)

	var (
		frontmatter []string
		body        []string
		inFront     bool
		headerSeen  bool
	)

	for lines.Scan() {
		line := lines.Text()
		switch {
		case !headerSeen && strings.TrimSpace(line) == "---":
			headerSeen = true
			inFront = true
		case headerSeen && inFront && strings.TrimSpace(line) == "---":
			inFront = false
		default:
			if inFront {
				frontmatter = append(frontmatter, line)
			} else {
				body = append(body, line)
			}
		}
	}
	if err := lines.Err(); err != nil {
		return Meta{}, "", err
	}

	var meta Meta
	if headerSeen {
		if err := yaml.Unmarshal([]byte(strings.Join(frontmatter, "\n")), &meta); err != nil {
			return Meta{}, "", fmt.Errorf("invalid frontmatter: %w", err)
		}
	}

	return meta, strings.Join(body, "\n"), nil
}
