// Export command writes the catalog to another file or encoding.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

var (
	exportFormat string
	exportPath   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to a file",
	Long: `Export writes the full catalog, including id watermarks, to the
given path without touching the configured store. Exporting to one encoding
and importing from it reproduces the catalog exactly.

Example:
  till export --format xml --path backup.xml`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "target encoding, json or xml")
	exportCmd.Flags().StringVar(&exportPath, "path", "", "target file (required)")
	_ = exportCmd.MarkFlagRequired("path")
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := types.ParseFormat(exportFormat)
	if err != nil {
		return fmt.Errorf("--format %q: %w", exportFormat, err)
	}

	c, err := loadCatalog()
	if err != nil {
		return err
	}

	if err := c.Save(format, exportPath); err != nil {
		return fmt.Errorf("export to %s: %w", exportPath, err)
	}

	fmt.Printf("Exported catalog to %s (%s)\n", exportPath, format)
	return nil
}
