package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/recipepipe/core"
	"github.com/gaurav-prasanna/recipepipe/core/ingredient"
	"github.com/gaurav-prasanna/recipepipe/core/sanitize"
	"github.com/gaurav-prasanna/recipepipe/core/steps"
)

var (
	featureRe      = regexp.MustCompile(`特色[：:]\s*([^<\n]+)`)
	effectRe       = regexp.MustCompile(`功效[：:]\s*([^<\n]+)`)
	cuisineEffRe   = regexp.MustCompile(`菜系相关功效[：:]\s*([^<\n]+)`)
	cuisineRe      = regexp.MustCompile(`菜系[：:]\s*([^<\n]+)`)
	regionRe       = regexp.MustCompile(`所属地区[：:]\s*([^<\n]+)`)
	labelValueRe   = regexp.MustCompile(`(主料|辅料|调料|配料|原料|材料|食材)[：:]\s*([^<\n]+)`)
	mainRe         = regexp.MustCompile(`主料[：:]\s*([^<\n]+)`)
	auxRe          = regexp.MustCompile(`辅料[：:]\s*([^<\n]+)`)
	seasoningRe    = regexp.MustCompile(`调料[：:]\s*([^<\n]+)`)
	materialsLiPre = regexp.MustCompile(`^(?:主料|辅料|调料|配料|原料)[：:]\s*`)
	materialsPPre  = regexp.MustCompile(`^(?:所需材料|制作材料|材料|原料|食材)[：:]\s*`)
	recipeLinePre  = regexp.MustCompile(`^(?:原料配方|制作材料|原料|配方|配料)[：:]`)
	startsDigitRe  = regexp.MustCompile(`^\d`)

	materialsListRe = regexp.MustCompile(`(?i)(?:所需材料|制作材料|食材清单|材料|原料)[：:]?[\s\S]*?<ul[^>]*>([\s\S]*?)</ul>`)
	nestedListRe    = regexp.MustCompile(`(?i)准备原料[\s\S]*?<ul[^>]*>([\s\S]*?)</ul>`)
	materialsTailRe = regexp.MustCompile(`制作材料[：:]\s*([\s\S]*?)(?:<p[ >]|\z)`)

	liRe = regexp.MustCompile(`<li[^>]*>([\s\S]*?)</li>`)
	ulRe = regexp.MustCompile(`<ul[^>]*>([\s\S]*?)</ul>`)
	pRe  = regexp.MustCompile(`<p[^>]*>([\s\S]*?)</p>`)

	stepsHeaderRe = regexp.MustCompile(`(详细做法步骤|详细制作步骤|制作步骤|做法步骤|教您[^<\n]*怎么做)[：:]?([\s\S]*)`)
	stepsFooterRe = regexp.MustCompile(`<(?:h[3-6]|hr)[^>]*>|温馨提示|制作要诀|健康提示|小贴士|注意事项`)
	numberedRe    = regexp.MustCompile(`\d+[\.。、]\s*[^0-9]+`)
)

// extractGeneric handles documents without the known site's markup.
// A top-level <article> container is required; without one no recipe
// can be extracted at all.
func (e *HTMLExtractor) extractGeneric(htmlText string) *core.Recipe {
	doc, ok := parseDocument(htmlText)
	if !ok {
		return nil
	}
	article := doc.Find("article").First()
	if article.Length() == 0 {
		return nil
	}
	articleHTML, err := article.Html()
	if err != nil {
		return nil
	}

	r := &core.Recipe{
		Name:        genericName(doc),
		Description: genericDescription(articleHTML, doc),
	}
	r.Category = []string{e.genericCategory(articleHTML, r.Name, r.Description)}
	r.Ingredients = ingredient.ParseList(genericIngredientText(articleHTML))
	r.Steps = genericSteps(articleHTML)
	return r
}

func genericName(doc *goquery.Document) string {
	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
		if name := trimSuffixes(h1, "家常做法", "怎么做"); name != "" {
			return name
		}
	}
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		if name := trimSuffixes(title, "-", "怎么做", "家常做法"); name != "" {
			return name
		}
	}
	return core.UnknownName
}

// genericDescription searches labeled text in priority order, then the
// meta description. An empty result gets the synthesized default at
// assembly time.
func genericDescription(articleHTML string, doc *goquery.Document) string {
	for _, re := range []*regexp.Regexp{featureRe, effectRe, cuisineEffRe} {
		if m := re.FindStringSubmatch(articleHTML); m != nil {
			if desc := sanitize.Clean(m[1]); desc != "" {
				return desc
			}
		}
	}
	return metaDescription(doc)
}

// genericCategory resolves an explicit 菜系/所属地区 field through the
// cuisine table, or infers from name+description text. An 其他 result
// is re-attempted from the description alone.
func (e *HTMLExtractor) genericCategory(articleHTML, name, description string) string {
	var cat string
	if m := cuisineRe.FindStringSubmatch(articleHTML); m != nil {
		cat = e.categories.FromCuisine(strings.TrimSpace(sanitize.Clean(m[1])))
	} else if m := regionRe.FindStringSubmatch(articleHTML); m != nil {
		cat = e.categories.FromCuisine(strings.TrimSpace(sanitize.Clean(m[1])))
	} else {
		cat = e.categories.Infer(name + " " + description)
	}

	if cat == core.CategoryOther {
		if refined := e.categories.Infer(description); refined != core.CategoryOther {
			cat = refined
		}
	}
	return cat
}

// genericIngredientText runs the four-tier fallback cascade, returning
// one linearized blob for the ingredient parser.
func genericIngredientText(articleHTML string) string {
	var parts []string
	seen := map[string]bool{}
	add := func(text string) {
		if text != "" && !seen[text] {
			seen[text] = true
			parts = append(parts, text)
		}
	}
	joined := func() string { return strings.Join(parts, "，") }

	// Tier 1: collect every explicitly labeled value in the document.
	for _, m := range labelValueRe.FindAllStringSubmatch(articleHTML, -1) {
		text := sanitize.Clean(m[2])
		if len([]rune(text)) > 1 && !strings.Contains(text, "注意事项") {
			add(text)
		}
	}

	// Tier 2: a materials-labeled list container.
	if len([]rune(joined())) < 10 {
		if m := materialsListRe.FindStringSubmatch(articleHTML); m != nil {
			for _, li := range liRe.FindAllStringSubmatch(m[1], -1) {
				text := materialsLiPre.ReplaceAllString(sanitize.Clean(li[1]), "")
				if len([]rune(text)) > 1 && !strings.Contains(text, "注意事项") {
					add(text)
				}
			}
		}
	}

	// Tier 3: a "准备原料" nested list inside the steps.
	if len(parts) == 0 {
		if m := nestedListRe.FindStringSubmatch(articleHTML); m != nil {
			for _, li := range liRe.FindAllStringSubmatch(m[1], -1) {
				text := sanitize.Clean(li[1])
				if strings.Contains(text, "主料") || strings.Contains(text, "辅料") ||
					strings.Contains(text, "调料") || startsDigitRe.MatchString(text) {
					add(materialsLiPre.ReplaceAllString(text, ""))
				}
			}
		}
	}

	// Tier 4: paragraphs with explicit ingredient-section language.
	if len(parts) == 0 {
		for _, p := range pRe.FindAllStringSubmatch(articleHTML, -1) {
			text := sanitize.Clean(p[1])
			if recipeLinePre.MatchString(text) {
				content := recipeLinePre.ReplaceAllString(text, "")
				content = strings.TrimLeft(content, " ")
				if len([]rune(content)) > 5 {
					add(content)
					continue
				}
			}
			if strings.Contains(text, "主料") || strings.Contains(text, "辅料") ||
				strings.Contains(text, "原料") {
				if strings.Contains(text, "介绍") || strings.Contains(text, "特色") ||
					strings.Contains(text, "工艺") {
					continue
				}
				add(materialsPPre.ReplaceAllString(text, ""))
			}
		}
	}

	// Too little text usually means a tier matched the wrong thing; try
	// three independent single-field extractions.
	if len([]rune(joined())) < 5 {
		for _, re := range []*regexp.Regexp{mainRe, auxRe, seasoningRe} {
			if m := re.FindStringSubmatch(articleHTML); m != nil {
				add(strings.TrimSpace(sanitize.Clean(m[1])))
			}
		}
	}
	if len(parts) == 0 {
		if m := materialsTailRe.FindStringSubmatch(articleHTML); m != nil {
			add(sanitize.Clean(m[1]))
		}
	}
	return joined()
}

// genericSteps bounds the step region below a steps-header phrase and
// above the next sub-heading or footer label, then extracts candidates
// from list items, paragraphs, any list in the document, and finally
// whole-document numbered lines (needing ≥2 matches to accept).
func genericSteps(articleHTML string) []core.Step {
	lst := steps.NewList()

	var region string
	if m := stepsHeaderRe.FindStringSubmatch(articleHTML); m != nil {
		region = m[2]
		if loc := stepsFooterRe.FindStringIndex(region); loc != nil {
			region = region[:loc[0]]
		}
	}

	if region != "" {
		for _, li := range liRe.FindAllStringSubmatch(region, -1) {
			lst.Add(li[1])
		}
		if lst.Len() == 0 {
			for _, p := range pRe.FindAllStringSubmatch(region, -1) {
				lst.Add(p[1])
			}
		}
	}

	if lst.Len() == 0 {
		for _, ul := range ulRe.FindAllStringSubmatch(articleHTML, -1) {
			for _, li := range liRe.FindAllStringSubmatch(ul[1], -1) {
				lst.Add(li[1])
			}
		}
	}

	if lst.Len() == 0 {
		allText := sanitize.Clean(articleHTML)
		if numbered := numberedRe.FindAllString(allText, -1); len(numbered) >= 2 {
			for _, n := range numbered {
				lst.Add(n)
			}
		}
	}

	return lst.Steps()
}
