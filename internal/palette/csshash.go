package palette

import (
	"maps"
	"slices"
)

// CSSHash returns the resolved palette as a name → "#rrggbb" map.
func (p *Palette) CSSHash() (map[string]string, error) {
	resolved, err := p.resolve()
	if err != nil {
		return nil, err
	}
	hash := make(map[string]string, len(resolved))
	for name, c := range resolved {
		hash[name] = c.CSSHex()
	}
	return hash, nil
}

// StrictCSSHash is a read-only view over a resolved palette's CSS hex
// values whose lookups fail on absent keys instead of returning a zero
// value.
type StrictCSSHash struct {
	values map[string]string
}

// StrictCSSHash returns the same content as CSSHash behind a view that
// rejects unknown keys.
func (p *Palette) StrictCSSHash() (*StrictCSSHash, error) {
	hash, err := p.CSSHash()
	if err != nil {
		return nil, err
	}
	return &StrictCSSHash{values: hash}, nil
}

// Get returns the hex value for name, or a *StrictLookupError if the
// palette never defined it.
func (h *StrictCSSHash) Get(name string) (string, error) {
	v, ok := h.values[name]
	if !ok {
		return "", &StrictLookupError{Name: name}
	}
	return v, nil
}

// Has reports whether name has a value in the view.
func (h *StrictCSSHash) Has(name string) bool {
	_, ok := h.values[name]
	return ok
}

// Len returns the number of entries in the view.
func (h *StrictCSSHash) Len() int {
	return len(h.values)
}

// Keys returns every key in the view, sorted.
func (h *StrictCSSHash) Keys() []string {
	return slices.Sorted(maps.Keys(h.values))
}
