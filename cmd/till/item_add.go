// Item add command stocks new inventory.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

var (
	itemAddID       int64
	itemAddTitle    string
	itemAddCreator  string
	itemAddCategory string
	itemAddPrice    string
	itemAddQuantity int64
	itemAddYear     int
)

var itemAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an item to the catalog",
	Long: `Add stocks an item. Without --id a fresh identifier is assigned;
with --id of an existing item, the quantity is merged into that record.

Example:
  till item add --title "1984" --creator "George Orwell" --category Dystopia --price 520 --quantity 8 --year 1949
  till item add --id 3 --title "1984" --price 520 --quantity 4`,
	Args: cobra.NoArgs,
	RunE: runItemAdd,
}

func init() {
	itemAddCmd.Flags().Int64Var(&itemAddID, "id", 0, "item id (default: assigned)")
	itemAddCmd.Flags().StringVar(&itemAddTitle, "title", "", "item title (required)")
	itemAddCmd.Flags().StringVar(&itemAddCreator, "creator", "", "author or maker")
	itemAddCmd.Flags().StringVar(&itemAddCategory, "category", "", "category label")
	itemAddCmd.Flags().StringVar(&itemAddPrice, "price", "", "unit price (required)")
	itemAddCmd.Flags().Int64Var(&itemAddQuantity, "quantity", 1, "units to stock")
	itemAddCmd.Flags().IntVar(&itemAddYear, "year", 0, "year of publication or manufacture")
	_ = itemAddCmd.MarkFlagRequired("title")
	_ = itemAddCmd.MarkFlagRequired("price")
}

func runItemAdd(cmd *cobra.Command, args []string) error {
	price, err := parseMoney("price", itemAddPrice)
	if err != nil {
		return err
	}
	if err := requirePositive("quantity", itemAddQuantity); err != nil {
		return err
	}

	c, err := loadCatalog()
	if err != nil {
		return err
	}

	item, merged := c.AddItem(types.NewItem(itemAddID, itemAddTitle, itemAddCreator,
		itemAddCategory, price, itemAddQuantity, itemAddYear))

	if err := saveCatalog(c); err != nil {
		return err
	}

	if flagJSON {
		return printJSON(item)
	}
	if merged {
		fmt.Printf("Merged into item %d: %s (quantity now %d)\n", item.ID, item.Title, item.Quantity)
	} else {
		fmt.Printf("Added item %d: %s\n", item.ID, item.Title)
	}
	return nil
}
