// Package render provides output renderers for the recipe pipeline.
// This file implements the JSON renderer, the pipeline's primary
// output artifact: a pretty-printed UTF-8 array of Recipe records.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/recipepipe/core"
)

// JSONRenderer produces the JSON array artifact.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the accepted recipes, pretty-printed. Output is
// always UTF-8 with no BOM, regardless of source encodings.
func (r *JSONRenderer) Render(recipes []core.Recipe) ([]byte, error) {
	if recipes == nil {
		recipes = []core.Recipe{}
	}
	data, err := json.MarshalIndent(recipes, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling recipes: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
