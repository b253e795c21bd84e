// Item list command prints the inventory.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

var itemListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog items",
	Args:  cobra.NoArgs,
	RunE:  runItemList,
}

func runItemList(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}

	items := c.Items()
	if flagJSON {
		return printJSON(items)
	}

	printItems(items)
	return nil
}

// printItems writes the human-readable item table.
func printItems(items []types.Item) {
	if len(items) == 0 {
		fmt.Println("No items.")
		return
	}
	for _, item := range items {
		fmt.Printf("%4d  %-42s %-20s %-10s %10s  x%-4d %d\n",
			item.ID, item.Title, item.Creator, item.Category,
			item.Price.String(), item.Quantity, item.Year)
	}
}
