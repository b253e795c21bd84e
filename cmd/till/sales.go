// Sales command reports transactions.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

var (
	salesCustomerID int64
	salesStaffID    int64
)

var salesCmd = &cobra.Command{
	Use:   "sales",
	Short: "List recorded sales",
	Long: `Sales lists transactions, optionally narrowed to one customer or
one staff member.

Example:
  till sales
  till sales --customer 1
  till sales --staff 2`,
	Args: cobra.NoArgs,
	RunE: runSales,
}

func init() {
	salesCmd.Flags().Int64Var(&salesCustomerID, "customer", 0, "only sales to this customer")
	salesCmd.Flags().Int64Var(&salesStaffID, "staff", 0, "only sales handled by this staff member")
	salesCmd.MarkFlagsMutuallyExclusive("customer", "staff")
}

func runSales(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}

	var sales []types.Transaction
	switch {
	case salesCustomerID > 0:
		sales = c.SalesByCustomer(salesCustomerID)
	case salesStaffID > 0:
		sales = c.SalesByStaff(salesStaffID)
	default:
		sales = c.Transactions()
	}

	if flagJSON {
		return printJSON(sales)
	}

	if len(sales) == 0 {
		fmt.Println("No sales.")
		return nil
	}
	for _, tx := range sales {
		fmt.Printf("%4d  item %-4d x%-4d customer %-4d staff %-4d %10s\n",
			tx.ID, tx.ItemID, tx.Quantity, tx.CustomerID, tx.StaffID, tx.Total.String())
	}
	return nil
}
