// Package ingredient converts a free-form ingredient text blob into
// discrete {name, quantity, unit} records. The blob may be a single
// labeled line ("主料：粳米100克，桂皮2克"), several concatenated
// sections, or whitespace-separated pairs; everything is linearized
// into one flat list before per-fragment parsing.
package ingredient

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/gaurav-prasanna/recipepipe/core"
	"github.com/gaurav-prasanna/recipepipe/core/sanitize"
)

// unitWords is the alternation of known measure words, tuned against
// the source site's ingredient lists.
const unitWords = `克|g|千克|kg|斤|两|个|只|根|片|瓣|把|勺|毫升|ml|升|l|碗|杯|条|块|张|包|袋|瓶|盒|大匙|茶匙`

var (
	// Embedded category labels become list separators so multi-section
	// blobs linearize into one flat list.
	labelRe = regexp.MustCompile(`\s*(?:所需材料|制作材料|食材清单|主料|辅料|调料|配料|原料|材料|食材)[：:]\s*`)

	// "100克 桂皮" → "100克，桂皮": the source sometimes separates
	// entries with bare whitespace after a quantity+unit token.
	spaceSplitRe = regexp.MustCompile(`(\d+(?:\.\d+)?\s*(?:` + unitWords + `))\s+([^0-9，,、;；。\s])`)

	leadingPunctRe = regexp.MustCompile(`^[，,、;；。]+`)
	separatorRe    = regexp.MustCompile(`[，,、;；。]`)
	prefixRe       = regexp.MustCompile(`^(?:主料|辅料|调料|配料|原料)[：:]\s*`)

	nameQtyUnitRe  = regexp.MustCompile(`^([^0-9]+?)(\d+(?:\.\d+)?)\s*([^\d\s]+?)$`)
	nameQtyRe      = regexp.MustCompile(`^([^0-9]+?)(\d+(?:\.\d+)?)$`)
	trailingUnitRe = regexp.MustCompile(`(?:` + unitWords + `|适量|少许)$`)

	numericNoiseRe = regexp.MustCompile(`^[\d\s.\-]+$`)
	idCleanRe      = regexp.MustCompile(`[\s（）()]+`)
)

// sentinelUnits mean "unspecified small amount"; a fragment ending in
// one is a name plus the sentinel, with quantity 0.
var sentinelUnits = []string{"适量", "少许", "适当", "若干"}

// ParseList parses an ingredient blob into ordered records. Fragments
// that are pure numbers or punctuation are discarded as noise; nothing
// else is dropped, since a bare name is still a usable ingredient.
func ParseList(blob string) []core.Ingredient {
	var out []core.Ingredient
	if blob == "" {
		return out
	}

	text := sanitize.Clean(blob)
	text = labelRe.ReplaceAllString(text, "，")
	text = spaceSplitRe.ReplaceAllString(text, "$1，$2")
	text = leadingPunctRe.ReplaceAllString(text, "")

	for _, part := range separatorRe.Split(text, -1) {
		frag := strings.TrimSpace(part)
		frag = prefixRe.ReplaceAllString(frag, "")
		if frag == "" {
			continue
		}

		// Parenthetical qualifiers are dropped: 猪肉（肥瘦） → 猪肉.
		if i := strings.IndexAny(frag, "（("); i > 0 {
			frag = strings.TrimSpace(frag[:i])
		}
		if frag == "" || numericNoiseRe.MatchString(frag) {
			continue
		}

		if ing, ok := parseFragment(frag); ok {
			out = append(out, ing)
		}
	}
	return out
}

func parseFragment(frag string) (core.Ingredient, bool) {
	// Explicit sentinel suffix: 盐适量 → name 盐, quantity 0.
	if !strings.ContainsAny(frag, "0123456789") {
		for _, s := range sentinelUnits {
			if name := strings.TrimSpace(strings.TrimSuffix(frag, s)); strings.HasSuffix(frag, s) {
				if name == "" {
					return core.Ingredient{}, false
				}
				return newIngredient(name, 0, s), true
			}
		}
	}

	if m := nameQtyUnitRe.FindStringSubmatch(frag); m != nil {
		qty, _ := strconv.ParseFloat(m[2], 64)
		return newIngredient(strings.TrimSpace(m[1]), qty, strings.TrimSpace(m[3])), true
	}

	if m := nameQtyRe.FindStringSubmatch(frag); m != nil {
		qty, _ := strconv.ParseFloat(m[2], 64)
		unit := core.UnitToTaste
		if u := trailingUnitRe.FindString(m[1]); u != "" {
			unit = u
		}
		return newIngredient(strings.TrimSpace(m[1]), qty, unit), true
	}

	// Bare name with no amount at all.
	return newIngredient(frag, 1, core.UnitToTaste), true
}

func newIngredient(name string, qty float64, unit string) core.Ingredient {
	return core.Ingredient{
		IngredientID:   NewID(name),
		IngredientName: name,
		Quantity:       qty,
		Unit:           unit,
	}
}

// NewID generates an opaque ingredient identifier. Uniqueness per run
// is all that matters; duplicates across runs are acceptable.
func NewID(name string) string {
	return "ing_" + idCleanRe.ReplaceAllString(name, "_") + "_" + uuid.NewString()[:6]
}
