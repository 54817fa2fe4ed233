package sitemeta

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileOverrides is the on-disk shape of a metadata override file.
type fileOverrides struct {
	BaseURL          string   `yaml:"base_url"`
	Title            string   `yaml:"title"`
	Description      string   `yaml:"description"`
	Keywords         []string `yaml:"keywords"`
	PreviewImagePath string   `yaml:"preview_image_path"`
}

// LoadFile reads a YAML override file. Fields missing from the file keep
// the authored values. The result is validated before it is returned.
func LoadFile(path string) (Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("read metadata file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML override data. See LoadFile.
func Parse(data []byte) (Metadata, error) {
	var f fileOverrides
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Metadata{}, fmt.Errorf("parse metadata yaml: %w", err)
	}

	base := f.BaseURL
	if base == "" {
		base = BaseURL
	}
	var opts []Option
	if f.Title != "" {
		opts = append(opts, WithTitle(f.Title))
	}
	if f.Description != "" {
		opts = append(opts, WithDescription(f.Description))
	}
	if f.Keywords != nil {
		opts = append(opts, WithKeywords(f.Keywords...))
	}
	if f.PreviewImagePath != "" {
		opts = append(opts, WithPreviewImagePath(f.PreviewImagePath))
	}

	m, err := New(base, opts...)
	if err != nil {
		return Metadata{}, err
	}
	if err := m.Validate(); err != nil {
		return Metadata{}, fmt.Errorf("metadata validation failed: %w", err)
	}
	return m, nil
}
