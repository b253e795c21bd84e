// Customer command group for the till CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

var customerCmd = &cobra.Command{
	Use:   "customer",
	Short: "Manage customer records",
}

var (
	customerAddID    int64
	customerAddName  string
	customerAddEmail string
	customerAddPhone string
)

var customerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a customer",
	Long: `Add registers a customer. Without --id a fresh identifier is
assigned; adding an existing id changes nothing.

Example:
  till customer add --name "Anna Smirnova" --email anna@mail.com --phone +7-123-456-7890`,
	Args: cobra.NoArgs,
	RunE: runCustomerAdd,
}

var customerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List customers",
	Args:  cobra.NoArgs,
	RunE:  runCustomerList,
}

func init() {
	customerAddCmd.Flags().Int64Var(&customerAddID, "id", 0, "customer id (default: assigned)")
	customerAddCmd.Flags().StringVar(&customerAddName, "name", "", "full name (required)")
	customerAddCmd.Flags().StringVar(&customerAddEmail, "email", "", "email address")
	customerAddCmd.Flags().StringVar(&customerAddPhone, "phone", "", "phone number")
	_ = customerAddCmd.MarkFlagRequired("name")

	customerCmd.AddCommand(customerAddCmd)
	customerCmd.AddCommand(customerListCmd)
}

func runCustomerAdd(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}

	customer, added := c.AddCustomer(types.NewCustomer(customerAddID, customerAddName,
		customerAddEmail, customerAddPhone))
	if !added {
		fmt.Printf("Customer %d already exists: %s\n", customer.ID, customer.Name)
		return nil
	}

	if err := saveCatalog(c); err != nil {
		return err
	}

	if flagJSON {
		return printJSON(customer)
	}
	fmt.Printf("Added customer %d: %s\n", customer.ID, customer.Name)
	return nil
}

func runCustomerList(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}

	customers := c.Customers()
	if flagJSON {
		return printJSON(customers)
	}

	if len(customers) == 0 {
		fmt.Println("No customers.")
		return nil
	}
	for _, cu := range customers {
		fmt.Printf("%4d  %-24s %-24s %s\n", cu.ID, cu.Name, cu.Email, cu.Phone)
	}
	return nil
}
