// storefront is the terminal front for the catalog and cart stores.
//
// Usage:
//
//	storefront products list [--query q] [--gender g] [--category c]... [--sort asc|desc]
//	storefront products show <id>
//	storefront cart show|add|remove|update|clear
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "storefront",
	Short:         "Browse the catalog and manage the local cart",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(productsCmd, cartCmd)
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
