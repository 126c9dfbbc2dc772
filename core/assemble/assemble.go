// Package assemble builds final Recipe records from extractor output,
// applying every documented default. It is also the panic boundary:
// whatever goes wrong while processing one document is converted into
// a nil result with a reason, never propagated to the batch.
package assemble

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/gaurav-prasanna/recipepipe/core"
	"github.com/gaurav-prasanna/recipepipe/core/steps"
)

// Assembler runs one decoded document through an extractor and
// normalizes the result.
type Assembler struct {
	extractor core.Extractor
}

// New creates an Assembler around the given extractor.
func New(extractor core.Extractor) *Assembler {
	return &Assembler{extractor: extractor}
}

// Assemble extracts and finalizes one document. A nil recipe comes with
// a non-empty reason; the caller logs it and moves on.
func (a *Assembler) Assemble(html string) (rec *core.Recipe, reason string) {
	defer func() {
		if p := recover(); p != nil {
			rec, reason = nil, fmt.Sprintf("提取异常: %v", p)
		}
	}()

	r := a.extractor.Extract(html)
	if r == nil {
		return nil, "无法解析出菜谱"
	}
	Finalize(r)
	return r, ""
}

// Finalize fills every defaulted field in place. Safe to call on
// recipes from any source format; already-set fields are left alone.
func Finalize(r *core.Recipe) {
	if r.ID == "" {
		r.ID = "recipe_" + uuid.NewString()
	}
	if len(r.Category) == 0 {
		r.Category = []string{core.CategoryOther}
	}
	if r.Description == "" && r.Name != "" {
		r.Description = r.Name + "的制作方法"
	}
	if r.Servings == 0 {
		r.Servings = core.DefaultServings
	}
	if len(r.Steps) == 0 {
		r.Steps = []core.Step{steps.Default(r.Image)}
	}
	if r.CookTime == 0 {
		if t, ok := core.ParseCookTime(r.RawDuration); ok {
			r.CookTime = t
		} else {
			r.CookTime = core.FallbackCookTime(len(r.Steps))
		}
	}

	// Invariants: no blank ingredient names, contiguous 1-based steps.
	kept := r.Ingredients[:0]
	for _, ing := range r.Ingredients {
		if ing.IngredientName != "" {
			kept = append(kept, ing)
		}
	}
	r.Ingredients = kept
	for i := range r.Steps {
		r.Steps[i].Number = i + 1
	}
}
