package main

import (
	"fmt"

	"swatch/internal/content"
	"swatch/internal/log"

	"github.com/spf13/cobra"
)

// NewContentCmd creates the content command
func NewContentCmd() *cobra.Command {
	var root string

	contentCmd := &cobra.Command{
		Use:   "content",
		Short: "List files the engine would scan with the content globs",
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := loadTokens()
			if err != nil {
				return err
			}

			if root == "" {
				root = cfg.Content.Root
			}

			scanner, err := content.NewScanner(tokens.Content)
			if err != nil {
				return err
			}

			matched, err := scanner.Scan(root)
			if err != nil {
				return err
			}

			for _, path := range matched {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			log.Debug("%d file(s) matched under %s", len(matched), root)
			return nil
		},
	}

	contentCmd.Flags().StringVarP(&root, "root", "r", "", "directory to scan (default from config)")

	return contentCmd
}
