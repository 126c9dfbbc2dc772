// Package block parses the plain-text export format: sections
// separated by long runs of '=', each carrying 【label】-delimited
// fields for name, cover image, ingredients, metadata, and steps.
package block

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gaurav-prasanna/recipepipe/core"
	"github.com/gaurav-prasanna/recipepipe/core/assemble"
	"github.com/gaurav-prasanna/recipepipe/core/category"
	"github.com/gaurav-prasanna/recipepipe/core/ingredient"
)

var (
	sectionSplitRe = regexp.MustCompile(`={80,}`)
	ingredientRe   = regexp.MustCompile(`^(.+?)[：:]\s*(.+)$`)
	qtyUnitRe      = regexp.MustCompile(`^([\d.]+)\s*(.+)$`)
	stepLineRe     = regexp.MustCompile(`^步骤\s*(\d+)[：:]\s*(.+)$`)
)

type section int

const (
	sectionNone section = iota
	sectionName
	sectionIngredients
	sectionMetadata
	sectionSteps
)

// Parser parses structured-block export files.
type Parser struct {
	categories *category.Index
}

// New creates a Parser using the given category index.
func New(idx *category.Index) *Parser {
	return &Parser{categories: idx}
}

// ParseFile splits an export file into sections and parses each,
// skipping the banner section and anything without a usable name.
func (p *Parser) ParseFile(content string) []core.Recipe {
	content = strings.TrimPrefix(content, "\uFEFF")

	var recipes []core.Recipe
	for _, sec := range sectionSplitRe.Split(content, -1) {
		if strings.TrimSpace(sec) == "" || strings.Contains(sec, "菜谱提取结果") {
			continue
		}
		if r := p.ParseSection(sec); r != nil {
			recipes = append(recipes, *r)
		}
	}
	return recipes
}

// ParseSection parses one delimited section into a Recipe, or nil when
// the section yields no usable name.
func (p *Parser) ParseSection(text string) *core.Recipe {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	if len(lines) == 0 {
		return nil
	}

	r := &core.Recipe{
		Category: []string{core.CategoryOther},
		CookTime: core.DefaultCookTime,
		Servings: core.DefaultServings,
	}

	state := sectionNone
	var main, aux []core.Ingredient
	isMain := true

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		switch {
		case strings.HasPrefix(line, "【菜名】"):
			r.Name = strings.TrimSpace(strings.TrimPrefix(line, "【菜名】"))
			state = sectionName
		case strings.HasPrefix(line, "【首图】"):
			r.Image = strings.TrimSpace(strings.TrimPrefix(line, "【首图】"))
		case strings.HasPrefix(line, "【食材明细】"):
			state = sectionIngredients
			main, aux = nil, nil
			isMain = true
		case strings.HasPrefix(line, "【制作信息】"):
			state = sectionMetadata
		case strings.HasPrefix(line, "【做法步骤】"):
			state = sectionSteps
		default:
			switch state {
			case sectionIngredients:
				switch trimColon(line) {
				case "主料":
					isMain = true
				case "辅料":
					isMain = false
				default:
					if bullet, ok := strings.CutPrefix(line, "- "); ok {
						if ing, ok := parseBullet(bullet); ok {
							if isMain {
								main = append(main, ing)
							} else {
								aux = append(aux, ing)
							}
						}
					}
				}
			case sectionMetadata:
				p.parseMetadataLine(r, line)
			case sectionSteps:
				if m := stepLineRe.FindStringSubmatch(line); m != nil {
					step := core.Step{
						Number:      len(r.Steps) + 1,
						Description: strings.TrimSpace(m[2]),
					}
					// One-line lookahead for the step's image marker.
					if i+1 < len(lines) {
						if img, ok := strings.CutPrefix(lines[i+1], "图片:"); ok {
							step.Image = strings.TrimSpace(img)
							i++
						}
					}
					r.Steps = append(r.Steps, step)
				}
			}
		}
	}

	if r.Name == "" {
		return nil
	}
	r.Ingredients = append(main, aux...)
	if r.Craft != "" {
		if c, ok := p.categories.FromCraft(r.Craft); ok {
			r.Category = []string{c}
		}
	}
	assemble.Finalize(r)
	return r
}

func (p *Parser) parseMetadataLine(r *core.Recipe, line string) {
	switch {
	case hasLabel(line, "口味"):
		r.Taste = labelValue(line, "口味")
	case hasLabel(line, "工艺"):
		r.Craft = labelValue(line, "工艺")
	case hasLabel(line, "耗时"):
		r.RawDuration = labelValue(line, "耗时")
		if t, ok := core.ParseCookTime(r.RawDuration); ok {
			r.CookTime = t
		}
	case hasLabel(line, "难度"):
		r.Difficulty = labelValue(line, "难度")
	}
}

// parseBullet parses a "- name: quantity" ingredient line. Quantity is
// split into a leading number and trailing unit, or recognized as the
// to-taste sentinel, or kept whole as a unit-only annotation.
func parseBullet(line string) (core.Ingredient, bool) {
	m := ingredientRe.FindStringSubmatch(line)
	if m == nil {
		return core.Ingredient{}, false
	}
	name := strings.TrimSpace(m[1])
	quantity := strings.TrimSpace(m[2])
	if name == "" {
		return core.Ingredient{}, false
	}

	var qty float64
	unit := quantity
	if qm := qtyUnitRe.FindStringSubmatch(quantity); qm != nil {
		qty, _ = strconv.ParseFloat(qm[1], 64)
		unit = strings.TrimSpace(qm[2])
	} else if quantity == core.UnitToTaste {
		unit = core.UnitToTaste
	}

	return core.Ingredient{
		IngredientID:   ingredient.NewID(name),
		IngredientName: name,
		Quantity:       qty,
		Unit:           unit,
	}, true
}

func trimColon(s string) string {
	return strings.TrimRight(s, "：:")
}

func hasLabel(line, label string) bool {
	return strings.HasPrefix(line, label+":") || strings.HasPrefix(line, label+"：")
}

func labelValue(line, label string) string {
	v := strings.TrimPrefix(line, label)
	v = strings.TrimLeft(v, "：:")
	return strings.TrimSpace(v)
}
