// Package loader parses YAML palette documents into raw palette entries.
//
// Coercion of literals happens here, at construction time: a value that is
// a "#..." string or an [r, g, b] sequence becomes a concrete color, and
// any other string becomes an alias to the entry it names. Resolution never
// has to guess what a string means.
package loader

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jfelder/swatch/internal/color"
	"github.com/jfelder/swatch/internal/log"
	"github.com/jfelder/swatch/internal/palette"
)

// document is the on-disk palette file shape.
type document struct {
	Colors map[string]any `yaml:"colors"`
}

// Load reads a palette document from path.
func Load(path string) (*palette.Palette, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the CLI user
	if err != nil {
		return nil, fmt.Errorf("reading palette file: %w", err)
	}
	p, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	log.Debug(log.CatLoader, "palette file loaded", "path", path, "entries", p.Len())
	return p, nil
}

// Parse decodes a palette document and coerces its values into entries.
func Parse(r io.Reader) (*palette.Palette, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding palette document: %w", err)
	}
	if len(doc.Colors) == 0 {
		return nil, fmt.Errorf("palette document has no colors")
	}

	raw, err := coerceEntries(doc.Colors)
	if err != nil {
		return nil, err
	}
	return palette.New(raw), nil
}

func coerceEntries(values map[string]any) (map[string]palette.Entry, error) {
	raw := make(map[string]palette.Entry, len(values))
	for name, value := range values {
		if name == "" {
			return nil, fmt.Errorf("palette entry with empty name")
		}
		entry, err := coerceEntry(name, value)
		if err != nil {
			return nil, err
		}
		raw[name] = entry
	}
	return raw, nil
}

func coerceEntry(name string, value any) (palette.Entry, error) {
	c, isLiteral, err := color.FromLiteral(value)
	if err != nil {
		return palette.Entry{}, fmt.Errorf("color %q: %w", name, err)
	}
	if isLiteral {
		return palette.Concrete(c), nil
	}

	target, ok := value.(string)
	if !ok || target == "" {
		return palette.Entry{}, fmt.Errorf("color %q: empty alias target", name)
	}
	return palette.Alias(target), nil
}
