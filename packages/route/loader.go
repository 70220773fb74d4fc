package route

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definition is the declarative form of a route used in fixture files.
type Definition struct {
	Name        string            `json:"name,omitempty" yaml:"name,omitempty"`
	Pattern     string            `json:"pattern" yaml:"pattern"`
	Defaults    map[string]any    `json:"defaults,omitempty" yaml:"defaults,omitempty"`
	Optional    []string          `json:"optional,omitempty" yaml:"optional,omitempty"` // parameters defaulting to Optional
	Constraints map[string]string `json:"constraints,omitempty" yaml:"constraints,omitempty"`
	Methods     []string          `json:"methods,omitempty" yaml:"methods,omitempty"`
	DataTokens  map[string]any    `json:"dataTokens,omitempty" yaml:"dataTokens,omitempty"`
}

// TableDefinition is the root of a route fixture file.
type TableDefinition struct {
	Routes []Definition `json:"routes" yaml:"routes"`
}

// Format identifies a fixture encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the fixture format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported route file extension: %s", filepath.Ext(path))
	}
}

// LoadTable reads a route fixture file and builds a table from it.
func LoadTable(path string) (*Table, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read route file %s: %w", path, err)
	}
	table, err := ParseTable(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to load routes from %s: %w", path, err)
	}
	return table, nil
}

// ParseTable decodes a fixture and builds a table from it.
func ParseTable(data []byte, format Format) (*Table, error) {
	var def TableDefinition
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, err
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &def); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported route format: %s", format)
	}
	return def.Build()
}

// Build creates a table with one route per definition, in order.
func (d TableDefinition) Build() (*Table, error) {
	table := NewTable()
	for i, rd := range d.Routes {
		defaults := make(map[string]any, len(rd.Defaults)+len(rd.Optional))
		for k, v := range rd.Defaults {
			defaults[k] = v
		}
		for _, name := range rd.Optional {
			defaults[name] = Optional
		}

		opts := []Option{WithConstraints(rd.Constraints), WithDataTokens(rd.DataTokens)}
		if len(rd.Methods) > 0 {
			opts = append(opts, WithMethods(rd.Methods...))
		}
		if _, err := table.MapRoute(rd.Name, rd.Pattern, defaults, opts...); err != nil {
			return nil, fmt.Errorf("route %d (%s): %w", i, rd.Pattern, err)
		}
	}
	return table, nil
}
