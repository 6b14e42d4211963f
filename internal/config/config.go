// Package config provides configuration types and defaults for swatch.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Valid output formats for the resolve command.
const (
	FormatText = "text"
	FormatCSS  = "css"
	FormatJSON = "json"
)

// Config holds all configuration options for swatch.
type Config struct {
	Palette string        `mapstructure:"palette"` // default palette file path
	Schema  string        `mapstructure:"schema"`  // default schema file path
	Format  string        `mapstructure:"format"`  // "text", "css" or "json"
	Preview PreviewConfig `mapstructure:"preview"`
}

// PreviewConfig holds terminal preview options.
type PreviewConfig struct {
	// Width is the rendered width of each swatch cell in characters.
	Width int `mapstructure:"width"`

	// ShowHex prints the hex value next to each swatch.
	ShowHex bool `mapstructure:"show_hex"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Format: FormatText,
		Preview: PreviewConfig{
			Width:   16,
			ShowHex: true,
		},
	}
}

// ValidateFormat checks that format names a supported output format.
func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatCSS, FormatJSON:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, css or json)", format)
	}
}

// defaultConfigTemplate is written when no config file exists anywhere.
const defaultConfigTemplate = `# swatch configuration
# Default palette file used when a command gets no argument.
# palette: palette.yaml

# Default schema file for 'swatch check'.
# schema: schema.yaml

# Output format for 'swatch resolve': text, css or json.
format: text

preview:
  # Rendered width of each swatch cell.
  width: 16
  # Print the hex value next to each swatch.
  show_hex: true
`

// WriteDefaultConfig writes a commented default config file at path,
// creating parent directories as needed.
func WriteDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigTemplate), 0o644) //nolint:gosec // config template, not a secret
}
