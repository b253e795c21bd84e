// Item remove command takes stock out of the catalog.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	itemRemoveID       int64
	itemRemoveQuantity int64
)

var itemRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove units of an item",
	Long: `Remove takes units out of stock. When the count reaches zero the
item record is deleted and its id is never assigned again.

Example:
  till item remove --id 3 --quantity 2`,
	Args: cobra.NoArgs,
	RunE: runItemRemove,
}

func init() {
	itemRemoveCmd.Flags().Int64Var(&itemRemoveID, "id", 0, "item id (required)")
	itemRemoveCmd.Flags().Int64Var(&itemRemoveQuantity, "quantity", 1, "units to remove")
	_ = itemRemoveCmd.MarkFlagRequired("id")
}

func runItemRemove(cmd *cobra.Command, args []string) error {
	if err := requirePositive("quantity", itemRemoveQuantity); err != nil {
		return err
	}

	c, err := loadCatalog()
	if err != nil {
		return err
	}

	item, err := c.RemoveItem(itemRemoveID, itemRemoveQuantity)
	if err != nil {
		return err
	}

	if err := saveCatalog(c); err != nil {
		return err
	}

	if flagJSON {
		return printJSON(item)
	}
	if item.Quantity == 0 {
		fmt.Printf("Removed item %d: %s (deleted)\n", item.ID, item.Title)
	} else {
		fmt.Printf("Removed %d of item %d: %s (quantity now %d)\n",
			itemRemoveQuantity, item.ID, item.Title, item.Quantity)
	}
	return nil
}
