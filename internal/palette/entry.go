package palette

import "github.com/jfelder/swatch/internal/color"

type entryKind int

const (
	kindConcrete entryKind = iota
	kindAlias
)

// Entry is one raw palette value: either a concrete color or the name of
// another entry. The variant is fixed when the entry is built — resolution
// never guesses from value shape.
type Entry struct {
	kind   entryKind
	color  color.Color
	target string
}

// Concrete builds an entry holding a color value.
func Concrete(c color.Color) Entry {
	return Entry{kind: kindConcrete, color: c}
}

// Alias builds an entry that names another palette entry.
func Alias(target string) Entry {
	return Entry{kind: kindAlias, target: target}
}

// IsAlias reports whether the entry names another entry.
func (e Entry) IsAlias() bool {
	return e.kind == kindAlias
}

// Color returns the concrete color; ok is false for alias entries.
func (e Entry) Color() (color.Color, bool) {
	return e.color, e.kind == kindConcrete
}

// Target returns the aliased name; ok is false for concrete entries.
func (e Entry) Target() (string, bool) {
	return e.target, e.kind == kindAlias
}
