package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jfelder/swatch/internal/config"
	"github.com/jfelder/swatch/internal/loader"
	"github.com/jfelder/swatch/internal/log"
	"github.com/jfelder/swatch/internal/palette"
	"github.com/jfelder/swatch/internal/preset"
)

var (
	version = "dev"
	cfgFile string
	debug   bool
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "swatch",
	Short: "Resolve named color palettes with aliases",
	Long: `swatch reads palette documents whose entries are either concrete colors
(hex strings or [r, g, b] triples) or aliases naming other entries, resolves
every alias chain to a concrete color, and exports, previews or validates
the result.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	cobra.OnInitialize(initConfig, initLogging)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/swatch/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"write debug logs to swatch.log")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("format", defaults.Format)
	viper.SetDefault("preview.width", defaults.Preview.Width)
	viper.SetDefault("preview.show_hex", defaults.Preview.ShowHex)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .swatch/config.yaml (current directory)
		// 2. ~/.config/swatch/config.yaml (user config)
		if _, err := os.Stat(".swatch/config.yaml"); err == nil {
			viper.SetConfigFile(".swatch/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "swatch"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.ErrorErr(log.CatConfig, "reading config", err)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func initLogging() {
	enabled := debug
	if !enabled {
		if v, err := strconv.ParseBool(os.Getenv("SWATCH_DEBUG")); err == nil {
			enabled = v
		}
	}
	if !enabled {
		return
	}
	if _, err := log.Init("swatch.log"); err != nil {
		fmt.Fprintln(os.Stderr, "warning: debug log unavailable:", err)
	}
}

// palettePath picks the palette file from args or config.
func palettePath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Palette != "" {
		return cfg.Palette, nil
	}
	return "", fmt.Errorf("no palette file given and none configured")
}

// loadPalette builds a palette from a built-in preset (when presetName is
// set) or from the palette file named by args/config. The second return
// value names the source for error messages.
func loadPalette(presetName string, args []string) (*palette.Palette, string, error) {
	if presetName != "" {
		p, err := preset.Load(presetName)
		return p, "preset " + presetName, err
	}
	path, err := palettePath(args)
	if err != nil {
		return nil, "", err
	}
	p, err := loader.Load(path)
	return p, path, err
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
