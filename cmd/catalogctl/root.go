// Command catalogctl normalizes scraped seed-retailer data from the command
// line and manages the known-name registry.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "catalogctl",
	Short: "catalogctl — normalize scraped seed listings into catalog records",
	Long: `catalogctl turns raw scraped product titles, sizes and prices into
normalized catalog records with botanical names, kilogram weights and CAD
landed costs.

Usage:
  catalogctl normalize <scrape.json> [flags]
  catalogctl registry seed|list [flags]`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
