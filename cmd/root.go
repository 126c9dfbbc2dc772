// Package cmd implements the CLI commands for RecipePipe using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "recipepipe",
	Short: "RecipePipe — convert scraped recipe pages into normalized JSON",
	Long: `RecipePipe is a batch extraction pipeline that converts scraped
Chinese recipe documents (HTML pages or the plain-text export format)
into a normalized JSON array of recipes.

Usage:
  recipepipe html <dir> [flags]
  recipepipe text <file> [flags]`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
