// Package cmd — html command.
// This is the main command that orchestrates the batch pipeline:
// read → decode → extract → assemble → render → write.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/recipepipe/core"
	"github.com/gaurav-prasanna/recipepipe/core/assemble"
	"github.com/gaurav-prasanna/recipepipe/core/batch"
	"github.com/gaurav-prasanna/recipepipe/core/category"
	"github.com/gaurav-prasanna/recipepipe/core/decode"
	"github.com/gaurav-prasanna/recipepipe/core/extract"
	"github.com/gaurav-prasanna/recipepipe/core/output"
	"github.com/gaurav-prasanna/recipepipe/core/render"
	"github.com/gaurav-prasanna/recipepipe/logging"
)

// maxSummaryReasons bounds the rejection reasons printed to operators.
const maxSummaryReasons = 10

// Flag variables.
var (
	flagOut         string
	flagMarkdownDir string
	flagVerbose     bool
)

var htmlCmd = &cobra.Command{
	Use:   "html <dir>",
	Short: "Batch-parse a directory of scraped recipe HTML files",
	Long: `Html reads every *.html/*.htm file in the directory (ordered by the
number embedded in the filename), resolves each file's encoding, extracts a
normalized recipe, and writes the accepted recipes as a pretty-printed
UTF-8 JSON array.

Examples:
  recipepipe html ./recipe_new
  recipepipe html ./recipe_new --out recipes.json --markdown_dir ./preview`,
	Args: cobra.ExactArgs(1),
	RunE: runHTML,
}

func init() {
	rootCmd.AddCommand(htmlCmd)

	htmlCmd.Flags().StringVar(&flagOut, "out", "recipes.json", "Output JSON path")
	htmlCmd.Flags().StringVar(&flagMarkdownDir, "markdown_dir", "", "Also export one Markdown file per recipe into this directory")
	htmlCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Development logging")
}

func runHTML(cmd *cobra.Command, args []string) error {
	dir := args[0]

	logger := logging.New(flagVerbose)
	defer func() { _ = logger.Sync() }()

	// Initialize pipeline components.
	categories := category.NewIndex()
	extractor := extract.New(categories)
	assembler := assemble.New(extractor)
	driver := batch.New(decode.New(), assembler, logger)

	recipes, summary, err := driver.Run(dir)
	if err != nil {
		return err
	}

	if err := writeRecipes(recipes, flagOut); err != nil {
		return err
	}
	if flagMarkdownDir != "" {
		if err := writeMarkdown(recipes, flagMarkdownDir); err != nil {
			return err
		}
	}

	printSummary(summary)
	return nil
}

// writeRecipes renders and writes the JSON artifact.
func writeRecipes(recipes []core.Recipe, out string) error {
	data, err := render.NewJSONRenderer().Render(recipes)
	if err != nil {
		return err
	}

	writer, err := output.New(filepath.Dir(out))
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}
	path, err := writer.Write(filepath.Base(out), data)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s (%d recipes)\n", path, len(recipes))
	return nil
}

// writeMarkdown exports one recipe card per file.
func writeMarkdown(recipes []core.Recipe, dir string) error {
	writer, err := output.New(dir)
	if err != nil {
		return fmt.Errorf("initializing markdown writer: %w", err)
	}

	renderer := render.NewMarkdownRenderer()
	for i := range recipes {
		name := output.RecipeFilename(i+1, recipes[i].Name, renderer.Extension())
		if _, err := writer.Write(name, renderer.RenderOne(&recipes[i])); err != nil {
			return err
		}
	}
	fmt.Fprintf(os.Stdout, "✓ Exported %d markdown files to %s\n", len(recipes), dir)
	return nil
}

// printSummary emits the operator-facing batch summary.
func printSummary(s *batch.Summary) {
	fmt.Fprintf(os.Stdout, "Accepted: %d\n", s.Accepted)
	fmt.Fprintf(os.Stdout, "Rejected: %d\n", s.Rejected)
	if len(s.Reasons) == 0 {
		return
	}

	reasons := make([]string, 0, len(s.Reasons))
	for r := range s.Reasons {
		reasons = append(reasons, r)
	}
	sort.Slice(reasons, func(i, j int) bool {
		return s.Reasons[reasons[i]] > s.Reasons[reasons[j]]
	})
	if len(reasons) > maxSummaryReasons {
		reasons = reasons[:maxSummaryReasons]
	}
	for _, r := range reasons {
		fmt.Fprintf(os.Stdout, "  ✗ %s: %d\n", r, s.Reasons[r])
	}
}
