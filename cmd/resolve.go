package cmd

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jfelder/swatch/internal/config"
	"github.com/jfelder/swatch/internal/log"
)

var (
	resolveFormat string
	resolvePreset string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [palette.yaml]",
	Short: "Resolve a palette to concrete colors",
	Long: `resolve follows every alias chain in the palette and prints the fully
resolved name to hex mapping. Dangling aliases and cycles fail the whole
resolution.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveFormat, "format", "f", "",
		"output format: text, css or json (default from config)")
	resolveCmd.Flags().StringVar(&resolvePreset, "preset", "",
		"resolve a built-in preset instead of a file")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	format := resolveFormat
	if format == "" {
		format = cfg.Format
	}
	if err := config.ValidateFormat(format); err != nil {
		return err
	}

	p, source, err := loadPalette(resolvePreset, args)
	if err != nil {
		return err
	}

	hash, err := p.CSSHash()
	if err != nil {
		return fmt.Errorf("resolving %s: %w", source, err)
	}
	log.Info(log.CatCLI, "palette resolved", "source", source, "colors", len(hash), "format", format)

	out, err := renderHash(hash, format)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// renderHash formats a resolved name to hex mapping, names sorted.
func renderHash(hash map[string]string, format string) (string, error) {
	names := slices.Sorted(maps.Keys(hash))

	switch format {
	case config.FormatText:
		var b strings.Builder
		for _, name := range names {
			fmt.Fprintf(&b, "%s\t%s\n", name, hash[name])
		}
		return b.String(), nil

	case config.FormatCSS:
		var b strings.Builder
		b.WriteString(":root {\n")
		for _, name := range names {
			fmt.Fprintf(&b, "  --%s: %s;\n", cssIdent(name), hash[name])
		}
		b.WriteString("}\n")
		return b.String(), nil

	case config.FormatJSON:
		data, err := json.MarshalIndent(hash, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding palette: %w", err)
		}
		return string(data) + "\n", nil

	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

// cssIdent turns a palette name into a custom-property identifier.
// Dotted token names like "text.primary" become "text-primary".
func cssIdent(name string) string {
	return strings.ReplaceAll(name, ".", "-")
}
