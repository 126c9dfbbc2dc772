// Package cmd — text command: parse the plain-text structured-block
// export format (【label】 sections separated by long '=' runs).
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/recipepipe/core/block"
	"github.com/gaurav-prasanna/recipepipe/core/category"
	"github.com/gaurav-prasanna/recipepipe/core/decode"
	"github.com/gaurav-prasanna/recipepipe/logging"
)

var (
	flagTextOut     string
	flagTextVerbose bool
)

var textCmd = &cobra.Command{
	Use:   "text <file>",
	Short: "Parse a plain-text recipe export file",
	Long: `Text parses a recipes_extracted.txt-style export: sections separated
by a long run of '=' characters, each carrying 【菜名】/【食材明细】/【制作信息】/
【做法步骤】 fields.

Example:
  recipepipe text recipes_extracted.txt --out recipes.json`,
	Args: cobra.ExactArgs(1),
	RunE: runText,
}

func init() {
	rootCmd.AddCommand(textCmd)

	textCmd.Flags().StringVar(&flagTextOut, "out", "recipes.json", "Output JSON path")
	textCmd.Flags().BoolVar(&flagTextVerbose, "verbose", false, "Development logging")
}

func runText(cmd *cobra.Command, args []string) error {
	file := args[0]

	logger := logging.New(flagTextVerbose)
	defer func() { _ = logger.Sync() }()

	raw, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading export file %s: %w", file, err)
	}

	parser := block.New(category.NewIndex())
	recipes := parser.ParseFile(decode.New().Decode(raw))

	if err := writeRecipes(recipes, flagTextOut); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Parsed %d recipes from %s\n", len(recipes), file)
	return nil
}
