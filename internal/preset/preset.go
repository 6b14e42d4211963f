// Package preset ships built-in palettes. Each preset defines its base
// colors as concrete entries and its semantic tokens as aliases to the
// bases, so presets flow through the same alias resolution as user
// palettes.
package preset

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/jfelder/swatch/internal/color"
	"github.com/jfelder/swatch/internal/palette"
)

// ErrUnknownPreset is returned when a requested preset is not built in.
var ErrUnknownPreset = errors.New("unknown preset")

func hex(s string) palette.Entry {
	return palette.Concrete(color.MustHex(s))
}

func alias(target string) palette.Entry {
	return palette.Alias(target)
}

var presets = map[string]map[string]palette.Entry{
	"default": {
		"white":   hex("#ffffff"),
		"silver":  hex("#cccccc"),
		"gray":    hex("#999999"),
		"dimgray": hex("#696969"),
		"blue":    hex("#54a0ff"),
		"green":   hex("#73f59f"),
		"yellow":  hex("#feca57"),
		"red":     hex("#ff8787"),

		"accent":           alias("blue"),
		"text.primary":     alias("silver"),
		"text.description": alias("gray"),
		"text.muted":       alias("dimgray"),
		"border.default":   alias("text.muted"),
		"border.focus":     alias("white"),
		"border.highlight": alias("accent"),
		"status.success":   alias("green"),
		"status.warning":   alias("yellow"),
		"status.error":     alias("red"),
	},
	"dracula": {
		"background": hex("#282a36"),
		"foreground": hex("#f8f8f2"),
		"comment":    hex("#6272a4"),
		"purple":     hex("#bd93f9"),
		"pink":       hex("#ff79c6"),
		"green":      hex("#50fa7b"),
		"yellow":     hex("#f1fa8c"),
		"red":        hex("#ff5555"),
		"cyan":       hex("#8be9fd"),
		"orange":     hex("#ffb86c"),

		"accent":           alias("purple"),
		"text.primary":     alias("foreground"),
		"text.description": alias("foreground"),
		"text.muted":       alias("comment"),
		"border.default":   alias("comment"),
		"border.focus":     alias("foreground"),
		"border.highlight": alias("accent"),
		"status.success":   alias("green"),
		"status.warning":   alias("yellow"),
		"status.error":     alias("red"),
	},
	"nord": {
		"polar.night":   hex("#4c566a"),
		"snow.storm1":   hex("#d8dee9"),
		"snow.storm2":   hex("#e5e9f0"),
		"snow.storm3":   hex("#eceff4"),
		"frost":         hex("#88c0d0"),
		"aurora.green":  hex("#a3be8c"),
		"aurora.yellow": hex("#ebcb8b"),
		"aurora.red":    hex("#bf616a"),

		"accent":           alias("frost"),
		"text.primary":     alias("snow.storm3"),
		"text.description": alias("snow.storm1"),
		"text.muted":       alias("polar.night"),
		"border.default":   alias("text.muted"),
		"border.focus":     alias("text.primary"),
		"border.highlight": alias("accent"),
		"status.success":   alias("aurora.green"),
		"status.warning":   alias("aurora.yellow"),
		"status.error":     alias("aurora.red"),
	},
	"catppuccin-mocha": {
		"base":     hex("#1e1e2e"),
		"text":     hex("#cdd6f4"),
		"subtext0": hex("#a6adc8"),
		"overlay0": hex("#6c7086"),
		"blue":     hex("#89b4fa"),
		"lavender": hex("#b4befe"),
		"mauve":    hex("#cba6f7"),
		"green":    hex("#a6e3a1"),
		"yellow":   hex("#f9e2af"),
		"red":      hex("#f38ba8"),
		"peach":    hex("#fab387"),

		"accent":           alias("blue"),
		"text.primary":     alias("text"),
		"text.description": alias("subtext0"),
		"text.muted":       alias("overlay0"),
		"border.default":   alias("text.muted"),
		"border.focus":     alias("text.primary"),
		"border.highlight": alias("accent"),
		"status.success":   alias("green"),
		"status.warning":   alias("yellow"),
		"status.error":     alias("red"),
	},
	"high-contrast": {
		"black":  hex("#000000"),
		"white":  hex("#ffffff"),
		"green":  hex("#00ff00"),
		"yellow": hex("#ffff00"),
		"red":    hex("#ff0000"),

		"accent":           alias("white"),
		"text.primary":     alias("white"),
		"text.description": alias("white"),
		"text.muted":       alias("white"),
		"border.default":   alias("white"),
		"border.focus":     alias("white"),
		"border.highlight": alias("accent"),
		"status.success":   alias("green"),
		"status.warning":   alias("yellow"),
		"status.error":     alias("red"),
	},
}

// Names returns every built-in preset name, sorted.
func Names() []string {
	return slices.Sorted(maps.Keys(presets))
}

// Load builds a fresh Palette for a built-in preset.
func Load(name string) (*palette.Palette, error) {
	raw, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	return palette.New(raw), nil
}
