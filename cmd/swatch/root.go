package main

import (
	"swatch/internal/config"
	"swatch/internal/log"
	"swatch/pkg/theme"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
	cfg     *config.Config
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "swatch",
		Short: "Design token toolkit for the tracker UI theme",
		Long: `Swatch holds the tracker UI's design tokens - color palettes, shadows,
animations and keyframes - validates them, and exports the theme
configuration consumed by the CSS class-generation engine.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetDebug(debug)

			var configErr error
			if cfgFile != "" {
				cfg, configErr = config.LoadConfigFile(cfgFile)
			} else {
				cfg, configErr = config.LoadConfig()
			}
			if configErr != nil {
				log.Warn("config: %v, using defaults", configErr)
				cfg = config.New()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/swatch/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(NewExportCmd())
	rootCmd.AddCommand(NewValidateCmd())
	rootCmd.AddCommand(NewShowCmd())
	rootCmd.AddCommand(NewContentCmd())
	rootCmd.AddCommand(NewWatchCmd())
	rootCmd.AddCommand(NewBrowseCmd())
	rootCmd.AddCommand(NewThemesCmd())

	return rootCmd
}

// loadTokens builds the effective token record: the built-in set plus the
// configured override file, when one is set.
func loadTokens() (theme.Config, error) {
	tokens := theme.Default()
	if cfg.Overrides == "" {
		return tokens, nil
	}
	log.With("path", cfg.Overrides).Debug("applying theme overrides")
	return config.LoadOverrides(cfg.Overrides, tokens)
}
