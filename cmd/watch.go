package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jfelder/swatch/internal/config"
	"github.com/jfelder/swatch/internal/loader"
	"github.com/jfelder/swatch/internal/log"
	"github.com/jfelder/swatch/internal/schema"
	"github.com/jfelder/swatch/internal/styles"
	"github.com/jfelder/swatch/internal/watcher"
)

var watchSchemaPath string

var watchCmd = &cobra.Command{
	Use:   "watch [palette.yaml]",
	Short: "Re-resolve a palette whenever its file changes",
	Long: `watch resolves the palette, prints the result, and reloads on every
write to the file. Each reload builds a fresh palette; a broken edit is
reported without disturbing the last good output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchSchemaPath, "schema", "s", "",
		"also re-check against this schema on every reload")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path, err := palettePath(args)
	if err != nil {
		return err
	}

	var required *schema.Schema
	if watchSchemaPath != "" {
		if required, err = schema.Load(watchSchemaPath); err != nil {
			return err
		}
	}

	w, err := watcher.New(watcher.DefaultConfig(path))
	if err != nil {
		return err
	}
	changes, err := w.Start()
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reload := func() {
		// A palette is immutable once resolved; every reload constructs a
		// new one from the file.
		out := cmd.OutOrStdout()
		p, err := loader.Load(path)
		if err != nil {
			fmt.Fprintln(out, styles.ErrorStyle.Render(err.Error()))
			return
		}
		hash, err := p.CSSHash()
		if err != nil {
			fmt.Fprintln(out, styles.ErrorStyle.Render(err.Error()))
			return
		}
		rendered, err := renderHash(hash, config.FormatText)
		if err != nil {
			fmt.Fprintln(out, styles.ErrorStyle.Render(err.Error()))
			return
		}
		fmt.Fprint(out, rendered)

		if required != nil {
			if _, err := p.OptimizedFor(required); err != nil {
				fmt.Fprintln(out, styles.ErrorStyle.Render("fail: "+err.Error()))
				return
			}
			fmt.Fprintln(out, styles.SuccessStyle.Render("ok: schema satisfied"))
		}
	}

	reload()
	for {
		select {
		case <-ctx.Done():
			log.Info(log.CatWatch, "watch stopped", "path", path)
			return nil
		case <-changes:
			log.Debug(log.CatWatch, "palette changed", "path", path)
			reload()
		}
	}
}
