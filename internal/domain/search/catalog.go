package search

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

//go:embed engines.yaml
var bundledCatalog []byte

// Catalog is a list of engines plus the engine used by default
type Catalog struct {
	Default string   `json:"default" yaml:"default" toml:"default"`
	Engines []Engine `json:"engines" yaml:"engines" toml:"engines"`
}

// Format of a catalog document
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

var ErrEmptyCatalog = errors.New("search catalog has no engines")

// BundledCatalog returns the catalog shipped with the binary
func BundledCatalog() *Catalog {
	cat, err := ParseCatalog(bundledCatalog, FormatYAML)
	if err != nil {
		panic(fmt.Sprintf("bundled search catalog is invalid: %v", err))
	}
	return cat
}

// LoadCatalogFile reads a catalog, picking the decoder from the extension
func LoadCatalogFile(path string) (*Catalog, error) {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = FormatYAML
	case ".toml":
		format = FormatTOML
	case ".json":
		format = FormatJSON
	default:
		return nil, fmt.Errorf("unsupported catalog file type: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	return ParseCatalog(data, format)
}

// ParseCatalog decodes and validates a catalog document
func ParseCatalog(data []byte, format Format) (*Catalog, error) {
	var cat Catalog
	var err error

	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &cat)
	case FormatTOML:
		err = toml.Unmarshal(data, &cat)
	case FormatJSON:
		err = sonic.Unmarshal(data, &cat)
	default:
		return nil, fmt.Errorf("unsupported catalog format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s catalog: %w", format, err)
	}

	if err := cat.validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Catalog) validate() error {
	if len(c.Engines) == 0 {
		return ErrEmptyCatalog
	}

	seen := make(map[string]bool, len(c.Engines))
	for i, e := range c.Engines {
		if e.ID == "" || e.Name == "" {
			return fmt.Errorf("engine %d: id and name are required", i)
		}
		if seen[e.ID] {
			return fmt.Errorf("engine %s: duplicate id", e.ID)
		}
		seen[e.ID] = true

		if !strings.Contains(e.SearchTemplate, TermsPlaceholder) {
			return fmt.Errorf("engine %s: search template lacks %s", e.ID, TermsPlaceholder)
		}
	}

	if c.Default != "" && !seen[c.Default] {
		return fmt.Errorf("default engine %s is not in the catalog", c.Default)
	}
	return nil
}
