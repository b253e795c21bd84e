// Version command for the till CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/pkg/stockroom"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the till version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("till", stockroom.Version)
	},
}
