// Package schema loads required-name schemas: the list of color names an
// external consumer expects a palette to provide.
package schema

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/jfelder/swatch/internal/log"
)

// Schema is an ordered list of required color names. It satisfies
// palette.RequiredNamesQuery.
type Schema struct {
	names []string
}

// document is the on-disk schema file shape.
type document struct {
	Required []string `yaml:"required"`
}

// Load reads a schema document from path.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the CLI user
	if err != nil {
		return nil, fmt.Errorf("reading schema file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	log.Debug(log.CatSchema, "schema loaded", "path", path, "required", len(s.names))
	return s, nil
}

// Parse decodes a schema document.
func Parse(data []byte) (*Schema, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding schema document: %w", err)
	}
	for _, name := range doc.Required {
		if name == "" {
			return nil, fmt.Errorf("schema requires an empty color name")
		}
	}
	return &Schema{names: slices.Clone(doc.Required)}, nil
}

// Static builds an in-process schema from a fixed name list.
func Static(names ...string) *Schema {
	return &Schema{names: slices.Clone(names)}
}

// RequiredNames returns the required names in schema order.
func (s *Schema) RequiredNames() []string {
	return slices.Clone(s.names)
}
