package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jfelder/swatch/internal/config"
	"github.com/jfelder/swatch/internal/preset"
)

var presetsCmd = &cobra.Command{
	Use:   "presets [name]",
	Short: "List built-in presets, or resolve one by name",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPresets,
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		for _, name := range preset.Names() {
			p, err := preset.Load(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s\t%d colors\n", name, p.Len())
		}
		return nil
	}

	p, err := preset.Load(args[0])
	if err != nil {
		return err
	}
	hash, err := p.CSSHash()
	if err != nil {
		return fmt.Errorf("resolving preset %s: %w", args[0], err)
	}
	rendered, err := renderHash(hash, config.FormatText)
	if err != nil {
		return err
	}
	fmt.Fprint(out, rendered)
	return nil
}
