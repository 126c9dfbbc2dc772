// Package render — Markdown renderer. Produces a human-readable recipe
// card per record, mainly for reviewing a batch before import.
package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/recipepipe/core"
)

// MarkdownRenderer formats recipes as Markdown documents.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render concatenates all recipe cards into one document.
func (r *MarkdownRenderer) Render(recipes []core.Recipe) ([]byte, error) {
	parts := make([]string, 0, len(recipes))
	for i := range recipes {
		parts = append(parts, string(r.RenderOne(&recipes[i])))
	}
	return []byte(strings.Join(parts, "\n---\n\n")), nil
}

// RenderOne formats a single recipe card.
func (r *MarkdownRenderer) RenderOne(rec *core.Recipe) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", rec.Name)
	if rec.Image != "" {
		fmt.Fprintf(&b, "![%s](%s)\n\n", rec.Name, rec.Image)
	}
	fmt.Fprintf(&b, "%s\n\n", rec.Description)

	fmt.Fprintf(&b, "- 分类：%s\n", strings.Join(rec.Category, "、"))
	fmt.Fprintf(&b, "- 耗时：约%d分钟\n", rec.CookTime)
	fmt.Fprintf(&b, "- 份量：%d人份\n", rec.Servings)
	if rec.Taste != "" {
		fmt.Fprintf(&b, "- 口味：%s\n", rec.Taste)
	}
	if rec.Craft != "" {
		fmt.Fprintf(&b, "- 工艺：%s\n", rec.Craft)
	}
	if rec.Difficulty != "" {
		fmt.Fprintf(&b, "- 难度：%s\n", rec.Difficulty)
	}
	if rec.Cookware != "" {
		fmt.Fprintf(&b, "- 厨具：%s\n", rec.Cookware)
	}
	b.WriteString("\n")

	if len(rec.Ingredients) > 0 {
		b.WriteString("## 食材\n\n")
		for _, ing := range rec.Ingredients {
			if ing.Quantity > 0 {
				fmt.Fprintf(&b, "- %s：%s%s\n", ing.IngredientName, formatQuantity(ing.Quantity), ing.Unit)
			} else {
				fmt.Fprintf(&b, "- %s：%s\n", ing.IngredientName, ing.Unit)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("## 做法\n\n")
	for _, s := range rec.Steps {
		fmt.Fprintf(&b, "%d. %s\n", s.Number, s.Description)
		if s.Image != "" {
			fmt.Fprintf(&b, "   ![步骤%d](%s)\n", s.Number, s.Image)
		}
	}

	if rec.Tips != "" {
		fmt.Fprintf(&b, "\n## 小窍门\n\n%s\n", rec.Tips)
	}
	return []byte(b.String())
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

func formatQuantity(q float64) string {
	if q == float64(int64(q)) {
		return fmt.Sprintf("%d", int64(q))
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", q), "0"), ".")
}
