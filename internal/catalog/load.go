package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported catalog format")

type fileDepartment struct {
	Title string   `toml:"title" yaml:"title"`
	Items []string `toml:"items" yaml:"items"`
}

type file struct {
	Departments []fileDepartment `toml:"departments" yaml:"departments"`
}

// Load reads a catalog from a .toml, .yaml or .yml file.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes a catalog in the format named by ext (".toml", ".yaml" or
// ".yml").
func Parse(data []byte, ext string) (Catalog, error) {
	var f file
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return Catalog{}, fmt.Errorf("parse catalog: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return Catalog{}, fmt.Errorf("parse catalog: %w", err)
		}
	default:
		return Catalog{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	entries := make([]Titles, 0, len(f.Departments))
	for _, d := range f.Departments {
		entries = append(entries, Titles{Department: d.Title, Items: d.Items})
	}
	cat, err := Build(entries)
	if err != nil {
		return Catalog{}, fmt.Errorf("validate catalog: %w", err)
	}
	return cat, nil
}
