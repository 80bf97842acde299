package main

import (
	"fmt"

	"swatch/internal/content"
	"swatch/internal/errors"
	"swatch/pkg/theme"

	"github.com/spf13/cobra"
)

// NewValidateCmd creates the validate command
func NewValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the theme configuration for problems",
		Long: `Validate checks every token: color values must be hex or rgba, every
animation must reference a defined keyframe, keyframe stops must be
well-formed, and content globs must compile. All findings are reported,
not just the first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := loadTokens()
			if err != nil {
				return err
			}

			problems := tokens.Validate()
			if _, err := content.NewScanner(tokens.Content); err != nil {
				var patternErr *errors.PatternError
				if errors.As(err, &patternErr) {
					problems = append(problems, theme.Problem{
						Path:    "content",
						Message: patternErr.Error(),
					})
				} else {
					return err
				}
			}

			if len(problems) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "theme configuration is sound")
				return nil
			}

			for _, p := range problems {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", p.Path, p.Message)
			}
			return fmt.Errorf("%d problem(s) found", len(problems))
		},
	}
}
