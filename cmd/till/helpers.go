// Shared helpers for till CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/stockroom/internal/catalog"
	"github.com/mesh-intelligence/stockroom/internal/store"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// storeFormat returns the configured snapshot encoding. Config validation
// has already vetted the name.
func storeFormat() types.Format {
	f, err := types.ParseFormat(cfg.Format)
	if err != nil {
		return types.FormatJSON
	}
	return f
}

// loadCatalog reads the configured store file into a fresh catalog. A
// missing store file yields an empty catalog, so every command works before
// the first save.
func loadCatalog() (*catalog.Catalog, error) {
	c := catalog.New(cfg.StoreName)
	c.SetLogger(log)

	err := c.Load(storeFormat(), cfg.StoreFile)
	if errors.Is(err, store.ErrFileNotFound) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load store %s: %w", cfg.StoreFile, err)
	}
	return c, nil
}

// saveCatalog writes the catalog back to the configured store file.
func saveCatalog(c *catalog.Catalog) error {
	if err := c.Save(storeFormat(), cfg.StoreFile); err != nil {
		return fmt.Errorf("save store %s: %w", cfg.StoreFile, err)
	}
	return nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// errInvalidInput marks flag values the user got wrong.
var errInvalidInput = errors.New("invalid input")

// parseMoney converts a flag value into a decimal amount.
func parseMoney(flagName, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("--%s: bad amount %q: %w", flagName, value, errInvalidInput)
	}
	return d, nil
}

// requirePositive validates that a count or id flag is positive.
func requirePositive(flagName string, v int64) error {
	if v <= 0 {
		return fmt.Errorf("--%s: expected a positive integer, got %d: %w", flagName, v, errInvalidInput)
	}
	return nil
}

// isUserError reports whether the error is the user's fault (unknown ids,
// bad amounts, unknown formats) rather than a system fault.
func isUserError(err error) bool {
	switch {
	case errors.Is(err, types.ErrItemNotFound),
		errors.Is(err, types.ErrCustomerNotFound),
		errors.Is(err, types.ErrStaffNotFound),
		errors.Is(err, types.ErrInsufficientQuantity),
		errors.Is(err, types.ErrFormatUnknown),
		errors.Is(err, types.ErrStoreNameEmpty),
		errors.Is(err, errInvalidInput),
		errors.Is(err, os.ErrExist):
		return true
	}
	return false
}

// exitCode maps an error to the process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	if isUserError(err) {
		return exitUserError
	}
	return exitSysError
}
