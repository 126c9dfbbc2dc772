// Package output handles file naming and writing for pipeline outputs:
// the JSON artifact and optional per-recipe Markdown exports.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Writer writes rendered output to disk under one output directory.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	return &Writer{OutputDir: outputDir}, nil
}

// Write writes data to name (relative to the output directory),
// creating parent directories as needed. Returns the full path.
func (w *Writer) Write(name string, data []byte) (string, error) {
	path := filepath.Join(w.OutputDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// RecipeFilename builds a safe filename for one recipe export. The
// index prefix keeps same-named dishes from clobbering each other.
func RecipeFilename(index int, name, ext string) string {
	return fmt.Sprintf("%04d_%s%s", index, sanitizeName(name), ext)
}

// sanitizeName keeps letters, digits, and CJK characters; everything
// else (path separators included) becomes an underscore.
func sanitizeName(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "recipe"
	}
	return b.String()
}
