// Staff command group for the till CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

var staffCmd = &cobra.Command{
	Use:   "staff",
	Short: "Manage staff records",
}

var (
	staffAddID     int64
	staffAddName   string
	staffAddRole   string
	staffAddSalary string
)

var staffAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a staff member",
	Long: `Add registers a staff member. Without --id a fresh identifier is
assigned; adding an existing id changes nothing.

Example:
  till staff add --name "Ivan Petrov" --role Manager --salary 50000`,
	Args: cobra.NoArgs,
	RunE: runStaffAdd,
}

var staffListCmd = &cobra.Command{
	Use:   "list",
	Short: "List staff members",
	Args:  cobra.NoArgs,
	RunE:  runStaffList,
}

func init() {
	staffAddCmd.Flags().Int64Var(&staffAddID, "id", 0, "staff id (default: assigned)")
	staffAddCmd.Flags().StringVar(&staffAddName, "name", "", "full name (required)")
	staffAddCmd.Flags().StringVar(&staffAddRole, "role", "", "job title")
	staffAddCmd.Flags().StringVar(&staffAddSalary, "salary", "0", "salary")
	_ = staffAddCmd.MarkFlagRequired("name")

	staffCmd.AddCommand(staffAddCmd)
	staffCmd.AddCommand(staffListCmd)
}

func runStaffAdd(cmd *cobra.Command, args []string) error {
	salary, err := parseMoney("salary", staffAddSalary)
	if err != nil {
		return err
	}

	c, err := loadCatalog()
	if err != nil {
		return err
	}

	member, added := c.AddStaff(types.NewStaff(staffAddID, staffAddName, staffAddRole, salary))
	if !added {
		fmt.Printf("Staff %d already exists: %s\n", member.ID, member.Name)
		return nil
	}

	if err := saveCatalog(c); err != nil {
		return err
	}

	if flagJSON {
		return printJSON(member)
	}
	fmt.Printf("Added staff %d: %s\n", member.ID, member.Name)
	return nil
}

func runStaffList(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog()
	if err != nil {
		return err
	}

	members := c.StaffList()
	if flagJSON {
		return printJSON(members)
	}

	if len(members) == 0 {
		fmt.Println("No staff.")
		return nil
	}
	for _, m := range members {
		fmt.Printf("%4d  %-24s %-16s %10s\n", m.ID, m.Name, m.Role, m.Salary.String())
	}
	return nil
}
