// Init command creates a new catalog store.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/internal/catalog"
	"github.com/mesh-intelligence/stockroom/internal/seed"
)

var initDemo bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new catalog store",
	Long: `Init creates the store file for a fresh catalog. It refuses to
overwrite an existing store.

Example:
  till init
  till init --demo`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initDemo, "demo", false, "seed the demo inventory")
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(cfg.StoreFile); err == nil {
		return fmt.Errorf("store %s: %w", cfg.StoreFile, os.ErrExist)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat store %s: %w", cfg.StoreFile, err)
	}

	c := catalog.New(cfg.StoreName)
	c.SetLogger(log)
	if initDemo {
		seed.Demo(c)
	}

	if err := saveCatalog(c); err != nil {
		return err
	}

	fmt.Printf("Initialized catalog %q at %s\n", c.Name(), cfg.StoreFile)
	return nil
}
