package color_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jfelder/swatch/internal/color"
)

func TestHex_Valid(t *testing.T) {
	c, err := color.Hex("#112233")
	require.NoError(t, err)
	require.Equal(t, "#112233", c.CSSHex())
}

func TestHex_ShortForm(t *testing.T) {
	c, err := color.Hex("#abc")
	require.NoError(t, err)
	require.Equal(t, "#aabbcc", c.CSSHex())
}

func TestHex_CanonicalLowercase(t *testing.T) {
	c, err := color.Hex("#ABCDEF")
	require.NoError(t, err)
	require.Equal(t, "#abcdef", c.CSSHex())
}

func TestHex_Invalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#11223", "#gggggg", "red"} {
		_, err := color.Hex(in)
		require.Error(t, err, "input %q", in)
	}
}

func TestMustHex_PanicsOnBadInput(t *testing.T) {
	require.Panics(t, func() { color.MustHex("#nope") })
}

func TestRGB(t *testing.T) {
	require.Equal(t, "#000000", color.RGB(0, 0, 0).CSSHex())
	require.Equal(t, "#ffffff", color.RGB(255, 255, 255).CSSHex())
	require.Equal(t, "#112233", color.RGB(0x11, 0x22, 0x33).CSSHex())
}

func TestString_MatchesCSSHex(t *testing.T) {
	c := color.MustHex("#54a0ff")
	require.Equal(t, c.CSSHex(), c.String())
}

func TestLuminance(t *testing.T) {
	require.Greater(t, color.MustHex("#ffffff").Luminance(), color.MustHex("#000000").Luminance())
	require.InDelta(t, 1.0, color.MustHex("#ffffff").Luminance(), 0.01)
	require.InDelta(t, 0.0, color.MustHex("#000000").Luminance(), 0.01)
}

func TestFromLiteral_HexString(t *testing.T) {
	c, isLiteral, err := color.FromLiteral("#112233")
	require.NoError(t, err)
	require.True(t, isLiteral)
	require.Equal(t, "#112233", c.CSSHex())
}

func TestFromLiteral_MalformedHexIsStillALiteral(t *testing.T) {
	_, isLiteral, err := color.FromLiteral("#xyz")
	require.True(t, isLiteral)
	require.Error(t, err)
}

func TestFromLiteral_BareStringIsNotALiteral(t *testing.T) {
	_, isLiteral, err := color.FromLiteral("primary")
	require.NoError(t, err)
	require.False(t, isLiteral)
}

func TestFromLiteral_RGBSequence(t *testing.T) {
	c, isLiteral, err := color.FromLiteral([]any{17, 34, 51})
	require.NoError(t, err)
	require.True(t, isLiteral)
	require.Equal(t, "#112233", c.CSSHex())
}

func TestFromLiteral_BadSequences(t *testing.T) {
	cases := []any{
		[]any{1, 2},
		[]any{1, 2, 3, 4},
		[]any{-1, 0, 0},
		[]any{0, 256, 0},
		[]any{"r", "g", "b"},
	}
	for _, in := range cases {
		_, isLiteral, err := color.FromLiteral(in)
		require.True(t, isLiteral)
		require.Error(t, err, "input %v", in)
	}
}

func TestFromLiteral_UnsupportedType(t *testing.T) {
	_, isLiteral, err := color.FromLiteral(42)
	require.True(t, isLiteral)
	require.Error(t, err)
}
