package markdown

import (
	"bytes"
	"fmt"
	"path"
	"strings"

	"github.com/adrg/frontmatter"
	goslug "github.com/goliatone/go-slug"
)

// Descriptor is the parsed frontmatter of one content file. Each file seeds
// one navigation node and one content record scoped to the node's key.
type Descriptor struct {
	Slug     string            `yaml:"slug"`
	Type     string            `yaml:"type"`
	Key      string            `yaml:"key"`
	Parent   string            `yaml:"parent"`
	Position int               `yaml:"position"`
	Language string            `yaml:"language"`
	Titles   map[string]string `yaml:"titles"`
	Fields   map[string]string `yaml:"fields"`
	Photos   []string          `yaml:"photos"`
	Phone    string            `yaml:"phone"`
	Email    string            `yaml:"email"`
	Photo    string            `yaml:"photo"`
}

// ParseDescriptor extracts the descriptor and the Markdown body from the
// provided source bytes.
func ParseDescriptor(source []byte) (Descriptor, []byte, error) {
	var desc Descriptor
	body, err := frontmatter.Parse(bytes.NewReader(source), &desc)
	if err != nil {
		return Descriptor{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	return desc, body, nil
}

// normalizeSlug fills a missing slug from the source file name and makes the
// derived segment URL safe. Explicit slugs pass through untouched so seeded
// paths stay byte-for-byte what resolution will compare against.
func normalizeSlug(desc Descriptor, filePath string) (string, error) {
	if s := strings.TrimSpace(desc.Slug); s != "" {
		return s, nil
	}

	base := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))
	segment, err := goslug.Normalize(base)
	if err != nil {
		return "", fmt.Errorf("derive slug from %q: %w", filePath, err)
	}
	parent := strings.TrimSpace(desc.Parent)
	if parent == "" {
		return "/" + segment, nil
	}
	return strings.TrimSuffix(parent, "/") + "/" + segment, nil
}
