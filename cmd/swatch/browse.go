package main

import (
	"swatch/internal/config"
	"swatch/internal/tui"

	"github.com/spf13/cobra"
)

// NewBrowseCmd creates the browse command
func NewBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse tokens interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := loadTokens()
			if err != nil {
				return err
			}
			return tui.Run(tokens, config.GetTheme(cfg.Terminal.Theme))
		},
	}
}
