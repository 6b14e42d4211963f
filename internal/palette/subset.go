package palette

import "github.com/jfelder/swatch/internal/log"

// RequiredNamesQuery yields the color names an external consumer requires,
// in the consumer's order.
type RequiredNamesQuery interface {
	RequiredNames() []string
}

// OptimizedFor projects the palette down to exactly the required names.
//
// Every required name must resolve in the source palette; a name the source
// does not define surfaces as *UnknownColorError. This is also how a
// palette is validated against a schema: attempt the projection and see
// whether it fails.
//
// The returned palette is independent of the source and holds only
// concrete entries, so its own resolution can never fail.
func (p *Palette) OptimizedFor(q RequiredNamesQuery) (*Palette, error) {
	required := q.RequiredNames()
	raw := make(map[string]Entry, len(required))
	for _, name := range required {
		c, err := p.Get(name)
		if err != nil {
			return nil, err
		}
		raw[name] = Concrete(c)
	}
	log.Debug(log.CatPalette, "palette optimized", "required", len(required))
	return New(raw), nil
}

// OptimizePalette is the old name for OptimizedFor.
//
// Deprecated: use OptimizedFor.
func (p *Palette) OptimizePalette(q RequiredNamesQuery) (*Palette, error) {
	return p.OptimizedFor(q)
}
