package main

import (
	"fmt"

	"swatch/internal/config"
	"swatch/internal/preview"

	"github.com/spf13/cobra"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	var themeName string

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Render the token overview in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := loadTokens()
			if err != nil {
				return err
			}

			if themeName == "" {
				themeName = cfg.Terminal.Theme
			}
			styles := preview.NewStyles(config.GetTheme(themeName))
			fmt.Fprintln(cmd.OutOrStdout(), preview.Render(tokens, styles))
			return nil
		},
	}

	showCmd.Flags().StringVarP(&themeName, "theme", "t", "", "terminal theme (default from config)")

	return showCmd
}
