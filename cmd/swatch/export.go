package main

import (
	"fmt"
	"os"
	"path/filepath"

	"swatch/internal/errors"
	"swatch/internal/log"
	"swatch/pkg/theme"

	"github.com/spf13/cobra"
)

// NewExportCmd creates the export command
func NewExportCmd() *cobra.Command {
	var (
		outPath string
		format  string
	)

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Emit the theme configuration for the build pipeline",
		Long: `Export writes the effective theme configuration (built-in tokens plus
overrides) as JSON, or as a CommonJS module ready to be used as
tailwind.config.js. Invalid token data aborts the export.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := loadTokens()
			if err != nil {
				return err
			}
			if err := tokens.Check(); err != nil {
				return err
			}

			if outPath == "" {
				outPath = cfg.Export.Path
			}
			if format == "" {
				format = cfg.Export.Format
			}

			return writeExport(tokens, format, outPath, cmd)
		},
	}

	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default from config, \"\" means stdout)")
	exportCmd.Flags().StringVarP(&format, "format", "f", "", "output format: json or js (default from config)")

	return exportCmd
}

// writeExport encodes tokens in the requested format and writes them to path,
// or to the command's stdout when path is empty.
func writeExport(tokens theme.Config, format, path string, cmd *cobra.Command) error {
	var data []byte
	var err error
	switch format {
	case "json":
		data, err = tokens.JSON()
	case "js":
		data, err = tokens.ConfigJS()
	default:
		return errors.NewConfigError("export format must be json or js", "format", errors.InvalidConfig, nil)
	}
	if err != nil {
		return err
	}

	if path == "" {
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.NewFileError("cannot create output directory", dir, errors.FileAccessDenied, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.NewFileError("cannot write export", path, errors.FileAccessDenied, err)
	}
	log.With("path", path).Info("theme configuration exported")
	return nil
}
