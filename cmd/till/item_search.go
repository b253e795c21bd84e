// Item search command filters the inventory.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

var (
	searchTitle    string
	searchCreator  string
	searchCategory string
	searchMaxPrice string
)

var itemSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search items by title, creator, category, or price",
	Long: `Search filters items. Supplied criteria must all match: title,
creator, and category match case-insensitively on substrings, and
--max-price is an inclusive upper bound.

Example:
  till item search --title master
  till item search --category Novel --max-price 400`,
	Args: cobra.NoArgs,
	RunE: runItemSearch,
}

func init() {
	itemSearchCmd.Flags().StringVar(&searchTitle, "title", "", "title substring")
	itemSearchCmd.Flags().StringVar(&searchCreator, "creator", "", "creator substring")
	itemSearchCmd.Flags().StringVar(&searchCategory, "category", "", "category substring")
	itemSearchCmd.Flags().StringVar(&searchMaxPrice, "max-price", "", "inclusive price ceiling")
}

func runItemSearch(cmd *cobra.Command, args []string) error {
	filter := types.ItemFilter{
		Title:    searchTitle,
		Creator:  searchCreator,
		Category: searchCategory,
	}
	if searchMaxPrice != "" {
		max, err := parseMoney("max-price", searchMaxPrice)
		if err != nil {
			return err
		}
		filter.MaxPrice = &max
	}

	c, err := loadCatalog()
	if err != nil {
		return err
	}

	matches := c.SearchItems(filter)
	if flagJSON {
		return printJSON(matches)
	}

	printItems(matches)
	return nil
}
