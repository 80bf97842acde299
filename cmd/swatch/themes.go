package main

import (
	"fmt"

	"swatch/internal/config"

	"github.com/spf13/cobra"
)

// NewThemesCmd creates the themes command
func NewThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available terminal themes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListThemes() {
				marker := "  "
				if name == cfg.Terminal.Theme {
					marker = "* "
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", marker, name)
			}
		},
	}
}
