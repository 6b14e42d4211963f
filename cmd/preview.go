package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jfelder/swatch/internal/styles"
)

var previewPreset string

var previewCmd = &cobra.Command{
	Use:   "preview [palette.yaml]",
	Short: "Render resolved colors as terminal swatches",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&previewPreset, "preset", "",
		"preview a built-in preset instead of a file")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	p, source, err := loadPalette(previewPreset, args)
	if err != nil {
		return err
	}

	names, err := p.Names()
	if err != nil {
		return fmt.Errorf("resolving %s: %w", source, err)
	}

	out := cmd.OutOrStdout()
	for _, name := range names {
		c, err := p.Get(name)
		if err != nil {
			return err
		}
		hexv := c.CSSHex()

		// Pick the readable label color for the swatch background.
		fg := "#ffffff"
		if c.Luminance() > 0.5 {
			fg = "#000000"
		}

		label := ""
		if cfg.Preview.ShowHex {
			label = hexv
		}
		block := styles.Swatch(hexv, fg, label, cfg.Preview.Width)
		fmt.Fprintf(out, "%s %s\n", block, styles.NameStyle.Render(name))
	}
	return nil
}
