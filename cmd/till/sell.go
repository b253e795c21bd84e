// Sell command records a sale.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	sellItemID     int64
	sellQuantity   int64
	sellCustomerID int64
	sellStaffID    int64
)

var sellCmd = &cobra.Command{
	Use:   "sell",
	Short: "Sell units of an item to a customer",
	Long: `Sell records a transaction: units of an item sold to a customer,
handled by a staff member. The item, customer, and staff must all exist and
the item must have enough stock; otherwise nothing changes.

Example:
  till sell --item 1 --quantity 5 --customer 1 --staff 1`,
	Args: cobra.NoArgs,
	RunE: runSell,
}

func init() {
	sellCmd.Flags().Int64Var(&sellItemID, "item", 0, "item id (required)")
	sellCmd.Flags().Int64Var(&sellQuantity, "quantity", 1, "units to sell")
	sellCmd.Flags().Int64Var(&sellCustomerID, "customer", 0, "customer id (required)")
	sellCmd.Flags().Int64Var(&sellStaffID, "staff", 0, "staff id (required)")
	_ = sellCmd.MarkFlagRequired("item")
	_ = sellCmd.MarkFlagRequired("customer")
	_ = sellCmd.MarkFlagRequired("staff")
}

func runSell(cmd *cobra.Command, args []string) error {
	if err := requirePositive("quantity", sellQuantity); err != nil {
		return err
	}

	c, err := loadCatalog()
	if err != nil {
		return err
	}

	tx, err := c.SellItem(sellItemID, sellQuantity, sellCustomerID, sellStaffID)
	if err != nil {
		return err
	}

	if err := saveCatalog(c); err != nil {
		return err
	}

	if flagJSON {
		return printJSON(tx)
	}
	fmt.Printf("Sale %d: item %d x%d to customer %d by staff %d, total %s\n",
		tx.ID, tx.ItemID, tx.Quantity, tx.CustomerID, tx.StaffID, tx.Total.String())
	return nil
}
