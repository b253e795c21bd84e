// Import command replaces the catalog from a file.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/internal/catalog"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

var (
	importFormat string
	importPath   string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a catalog from a file",
	Long: `Import reads a catalog snapshot from the given path and writes it
to the configured store, replacing whatever was there.

Example:
  till import --format xml --path backup.xml`,
	Args: cobra.NoArgs,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importFormat, "format", "json", "source encoding, json or xml")
	importCmd.Flags().StringVar(&importPath, "path", "", "source file (required)")
	_ = importCmd.MarkFlagRequired("path")
}

func runImport(cmd *cobra.Command, args []string) error {
	format, err := types.ParseFormat(importFormat)
	if err != nil {
		return fmt.Errorf("--format %q: %w", importFormat, err)
	}

	c := catalog.New(cfg.StoreName)
	c.SetLogger(log)
	if err := c.Load(format, importPath); err != nil {
		return fmt.Errorf("import from %s: %w", importPath, err)
	}

	if err := saveCatalog(c); err != nil {
		return err
	}

	fmt.Printf("Imported catalog %q from %s (%s)\n", c.Name(), importPath, format)
	return nil
}
