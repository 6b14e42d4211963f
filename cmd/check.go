package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jfelder/swatch/internal/log"
	"github.com/jfelder/swatch/internal/schema"
	"github.com/jfelder/swatch/internal/styles"
)

var checkSchemaPath string

var checkCmd = &cobra.Command{
	Use:   "check [palette.yaml]",
	Short: "Validate a palette against a required-name schema",
	Long: `check resolves the palette and projects it onto the schema's required
names. A required name the palette does not define fails the check.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkSchemaPath, "schema", "s", "",
		"schema file listing required color names (default from config)")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	p, source, err := loadPalette("", args)
	if err != nil {
		return err
	}

	schemaPath := checkSchemaPath
	if schemaPath == "" {
		schemaPath = cfg.Schema
	}
	if schemaPath == "" {
		return fmt.Errorf("no schema file given and none configured")
	}

	s, err := schema.Load(schemaPath)
	if err != nil {
		return err
	}

	sub, err := p.OptimizedFor(s)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), styles.ErrorStyle.Render("fail: "+err.Error()))
		return fmt.Errorf("checking %s: %w", source, err)
	}

	log.Info(log.CatCLI, "palette check passed", "source", source, "required", sub.Len())
	fmt.Fprintln(cmd.OutOrStdout(), styles.SuccessStyle.Render(
		fmt.Sprintf("ok: %d colors cover %d required names", p.Len(), sub.Len())))
	return nil
}
