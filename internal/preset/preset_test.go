package preset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jfelder/swatch/internal/preset"
	"github.com/jfelder/swatch/internal/schema"
)

// semanticTokens is the token set every built-in preset must provide.
var semanticTokens = []string{
	"accent",
	"text.primary",
	"text.description",
	"text.muted",
	"border.default",
	"border.focus",
	"border.highlight",
	"status.success",
	"status.warning",
	"status.error",
}

func TestNames(t *testing.T) {
	names := preset.Names()
	require.Contains(t, names, "default")
	require.Contains(t, names, "dracula")
	require.Contains(t, names, "nord")
	require.Contains(t, names, "catppuccin-mocha")
	require.Contains(t, names, "high-contrast")
	require.IsIncreasing(t, names)
}

func TestLoad_Unknown(t *testing.T) {
	_, err := preset.Load("solarized")
	require.ErrorIs(t, err, preset.ErrUnknownPreset)
}

func TestAllPresetsResolve(t *testing.T) {
	for _, name := range preset.Names() {
		t.Run(name, func(t *testing.T) {
			p, err := preset.Load(name)
			require.NoError(t, err)

			hash, err := p.CSSHash()
			require.NoError(t, err)
			require.NotEmpty(t, hash)
		})
	}
}

func TestAllPresetsCoverSemanticTokens(t *testing.T) {
	required := schema.Static(semanticTokens...)
	for _, name := range preset.Names() {
		t.Run(name, func(t *testing.T) {
			p, err := preset.Load(name)
			require.NoError(t, err)

			sub, err := p.OptimizedFor(required)
			require.NoError(t, err)
			require.Equal(t, len(semanticTokens), sub.Len())
		})
	}
}

func TestDracula_SemanticAliases(t *testing.T) {
	p, err := preset.Load("dracula")
	require.NoError(t, err)

	text, err := p.Get("text.primary")
	require.NoError(t, err)
	require.Equal(t, "#f8f8f2", text.CSSHex())

	// border.highlight -> accent -> purple is a two-step chain.
	highlight, err := p.Get("border.highlight")
	require.NoError(t, err)
	purple, err := p.Get("purple")
	require.NoError(t, err)
	require.Equal(t, purple.CSSHex(), highlight.CSSHex())
	require.Equal(t, "#bd93f9", highlight.CSSHex())
}

func TestLoad_ReturnsFreshPalette(t *testing.T) {
	first, err := preset.Load("nord")
	require.NoError(t, err)
	second, err := preset.Load("nord")
	require.NoError(t, err)
	require.NotSame(t, first, second)
}
