// Package palette resolves a named dictionary of colors in which entries
// either hold a concrete color or alias another entry by name. Resolution
// follows alias chains to a concrete color, detecting dangling references
// and cycles, and runs exactly once per palette.
package palette

import (
	"maps"
	"slices"
	"sync"

	"github.com/jfelder/swatch/internal/color"
	"github.com/jfelder/swatch/internal/log"
)

// Palette owns an immutable raw entry map and the resolved colors derived
// from it. Resolution is memoized: the first read operation triggers it,
// and every later read observes the same result, success or failure.
type Palette struct {
	raw map[string]Entry

	once     sync.Once
	resolved map[string]color.Color
	err      error
}

// New constructs a Palette from raw entries. Alias targets are not
// validated here; the first read operation validates the whole dictionary
// atomically.
func New(raw map[string]Entry) *Palette {
	entries := make(map[string]Entry, len(raw))
	maps.Copy(entries, raw)
	return &Palette{raw: entries}
}

func (p *Palette) resolve() (map[string]color.Color, error) {
	p.once.Do(func() {
		p.resolved, p.err = resolveEntries(p.raw)
		if p.err != nil {
			log.ErrorErr(log.CatPalette, "palette resolution failed", p.err)
			return
		}
		log.Debug(log.CatPalette, "palette resolved", "entries", len(p.resolved))
	})
	return p.resolved, p.err
}

// resolveEntries computes the full name → color mapping. Concrete entries
// are copied first so every alias walk can stop at the nearest name that
// already has a resolved color, bounding total work to one walk per entry.
func resolveEntries(raw map[string]Entry) (map[string]color.Color, error) {
	resolved := make(map[string]color.Color, len(raw))

	for name, entry := range raw {
		if c, ok := entry.Color(); ok {
			resolved[name] = c
		}
	}

	for name, entry := range raw {
		if !entry.IsAlias() {
			continue
		}
		c, err := followAlias(name, entry, raw, resolved)
		if err != nil {
			return nil, err
		}
		resolved[name] = c
	}

	return resolved, nil
}

// followAlias walks the chain starting at key's entry until it lands on a
// name with a resolved color. The seen set is local to this walk; prior
// completed walks are visible only through the resolved map.
func followAlias(key string, entry Entry, raw map[string]Entry, resolved map[string]color.Color) (color.Color, error) {
	seen := map[string]struct{}{key: {}}
	current, _ := entry.Target()

	for {
		if c, ok := resolved[current]; ok {
			return c, nil
		}
		if _, ok := seen[current]; ok {
			return color.Color{}, &CycleError{Name: current}
		}
		next, ok := raw[current]
		if !ok {
			return color.Color{}, &MissingReferenceError{Key: key, Target: current}
		}
		seen[current] = struct{}{}
		// current is an alias: every concrete entry was already copied
		// into resolved before any walk started.
		current, _ = next.Target()
	}
}

// Has reports whether name resolves in this palette. A palette whose
// resolution failed has no names.
func (p *Palette) Has(name string) bool {
	resolved, err := p.resolve()
	if err != nil {
		return false
	}
	_, ok := resolved[name]
	return ok
}

// Get returns the resolved color for name.
func (p *Palette) Get(name string) (color.Color, error) {
	resolved, err := p.resolve()
	if err != nil {
		return color.Color{}, err
	}
	c, ok := resolved[name]
	if !ok {
		return color.Color{}, &UnknownColorError{Name: name}
	}
	return c, nil
}

// Names returns every resolved name, sorted.
func (p *Palette) Names() ([]string, error) {
	resolved, err := p.resolve()
	if err != nil {
		return nil, err
	}
	return slices.Sorted(maps.Keys(resolved)), nil
}

// Len returns the number of raw entries.
func (p *Palette) Len() int {
	return len(p.raw)
}
