// Info command summarizes the catalog.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show catalog counts, inventory value, and revenue",
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}

	s := c.Summary()
	if flagJSON {
		return printJSON(s)
	}

	fmt.Printf("Catalog: %s\n", s.Name)
	fmt.Printf("Items:           %d\n", s.Items)
	fmt.Printf("Staff:           %d\n", s.Staff)
	fmt.Printf("Customers:       %d\n", s.Customers)
	fmt.Printf("Sales:           %d\n", s.Transactions)
	fmt.Printf("Inventory value: %s\n", s.InventoryValue.String())
	fmt.Printf("Revenue:         %s\n", s.Revenue.String())
	return nil
}
