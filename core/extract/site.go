package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/recipepipe/core"
	"github.com/gaurav-prasanna/recipepipe/core/ingredient"
	"github.com/gaurav-prasanna/recipepipe/core/sanitize"
	"github.com/gaurav-prasanna/recipepipe/core/steps"
)

var (
	photoArrayRe = regexp.MustCompile(`var\s+J_photo\s*=\s*(\[[\s\S]*?\])`)
	photoSrcRe   = regexp.MustCompile(`"src"\s*:\s*"([^"]+)"`)
	recipeSlugRe = regexp.MustCompile(`/recipe/([^/]+)/`)
)

// extractSite handles the known recipe site's fixed markup. Every field
// has a dedicated pattern with ordered fallbacks; missing fields become
// defaults at assembly, never errors.
func (e *HTMLExtractor) extractSite(htmlText string) *core.Recipe {
	doc, ok := parseDocument(htmlText)
	if !ok {
		return nil
	}

	r := &core.Recipe{
		Name:     e.siteName(doc),
		Category: []string{core.CategoryHotDish},
	}
	if c, ok := e.siteCategory(doc); ok {
		r.Category = []string{c}
	}

	r.Description = siteDescription(doc)
	r.Image, r.Images = siteImages(doc, htmlText)
	r.Ingredients = ingredient.ParseList(siteIngredientText(doc))
	r.Steps = siteSteps(doc)
	siteMetadata(doc, r)
	r.Tips = siteTips(doc)
	r.Cookware = siteCookware(doc)
	return r
}

// siteName reads the primary heading, falling back to the document
// title with its "的做法"/"怎么做"/underscore-suffix segments stripped.
func (e *HTMLExtractor) siteName(doc *goquery.Document) string {
	if h1 := doc.Find("h1.recipe_De_title").First(); h1.Length() > 0 {
		name := sanitize.Clean(h1.Text())
		name = strings.TrimSpace(strings.ReplaceAll(name, "独家", ""))
		if name != "" {
			return name
		}
	}
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		if name := trimSuffixes(title, "的做法", "怎么做", "_"); name != "" {
			return name
		}
	}
	return core.UnknownName
}

func siteDescription(doc *goquery.Document) string {
	block := doc.Find("blockquote#block_txt, blockquote.block_txt").First()
	if block.Length() > 0 {
		inner := block.Find("div").First()
		if inner.Length() == 0 {
			inner = block
		}
		desc := sanitize.Clean(inner.Text())
		desc = strings.Trim(desc, `“”"`)
		if desc != "" {
			return strings.TrimSpace(desc)
		}
	}
	return metaDescription(doc)
}

// siteImages returns the cover image plus the full J_photo gallery.
// blank.gif is the site's lazy-load placeholder.
func siteImages(doc *goquery.Document, htmlText string) (string, []string) {
	var cover string
	if img := doc.Find("#recipe_De_imgBox img").First(); img.Length() > 0 {
		src, _ := img.Attr("src")
		if strings.Contains(src, "blank.gif") || src == "" {
			src, _ = img.Attr("data-src")
		}
		if src != "" && !strings.Contains(src, "blank.gif") {
			cover = src
		}
	}

	seen := map[string]bool{}
	var gallery []string
	add := func(u string) {
		if u != "" && !seen[u] {
			seen[u] = true
			gallery = append(gallery, u)
		}
	}
	add(cover)
	if m := photoArrayRe.FindStringSubmatch(htmlText); m != nil {
		var photos []struct {
			Src string `json:"src"`
		}
		if err := json.Unmarshal([]byte(m[1]), &photos); err == nil {
			for _, p := range photos {
				add(p.Src)
			}
		} else {
			for _, sm := range photoSrcRe.FindAllStringSubmatch(m[1], -1) {
				add(sm[1])
			}
		}
	}
	if cover == "" && len(gallery) > 0 {
		cover = gallery[0]
	}
	return cover, gallery
}

// siteCategory matches the breadcrumb link title and URL slug against
// the category keyword table, trying the path first, then the active
// nav item.
func (e *HTMLExtractor) siteCategory(doc *goquery.Document) (string, bool) {
	type candidate struct{ title, slug string }
	var cands []candidate

	doc.Find(`a[title][href*="/recipe/"]`).EachWithBreak(func(_ int, a *goquery.Selection) bool {
		title, _ := a.Attr("title")
		href, _ := a.Attr("href")
		if m := recipeSlugRe.FindStringSubmatch(href); m != nil {
			cands = append(cands, candidate{title, m[1]})
		}
		return len(cands) < 1
	})
	doc.Find(`li a.on[title]`).EachWithBreak(func(_ int, a *goquery.Selection) bool {
		title, _ := a.Attr("title")
		href, _ := a.Attr("href")
		slug := ""
		if m := recipeSlugRe.FindStringSubmatch(href); m != nil {
			slug = m[1]
		}
		cands = append(cands, candidate{title, slug})
		return false
	})

	for _, c := range cands {
		if cat, ok := e.categories.FromBreadcrumb(c.title, c.slug); ok {
			return cat, true
		}
	}
	return "", false
}

// siteIngredientText walks every structurally-identified ingredient
// container (whatever its legend says) and linearizes "name quantity"
// pairs for the ingredient parser.
func siteIngredientText(doc *goquery.Document) string {
	var parts []string
	doc.Find("fieldset.particulars").Each(func(_ int, fs *goquery.Selection) {
		fs.Find("ul li").Each(func(_ int, li *goquery.Selection) {
			name := sanitize.Clean(li.Find("a b").First().Text())
			if name == "" {
				name = sanitize.Clean(li.Find("b").First().Text())
			}
			if name == "" {
				return
			}
			qty := sanitize.Clean(li.Find("span.category_s2").First().Text())
			if qty == "" {
				qty = core.UnitToTaste
			}
			parts = append(parts, name+" "+qty)
		})
	})
	return strings.Join(parts, "，")
}

// siteSteps walks the designated step container's list items. Removing
// the numeric-label and image sub-containers from a clone leaves exactly
// the step text, however deeply nested.
func siteSteps(doc *goquery.Document) []core.Step {
	lst := steps.NewLenient()
	doc.Find("div.recipeStep ul li").Each(func(_ int, li *goquery.Selection) {
		img := stepImage(li)

		var text string
		if word := li.Find("div.recipeStep_word").First(); word.Length() > 0 {
			clone := word.Clone()
			clone.Find("div.grey").Remove()
			text = sanitize.Clean(clone.Text())
		}
		if len([]rune(text)) < 3 {
			clone := li.Clone()
			clone.Find("div.recipeStep_img, div.grey").Remove()
			text = sanitize.Clean(clone.Text())
		}
		lst.AddWithImage(text, img)
	})
	return lst.Steps()
}

func stepImage(li *goquery.Selection) string {
	img := li.Find("div.recipeStep_img img").First()
	if img.Length() == 0 {
		img = li.Find("img").First()
	}
	if img.Length() == 0 {
		return ""
	}
	if src, ok := img.Attr("data-src"); ok && src != "" {
		return src
	}
	src, _ := img.Attr("src")
	return src
}

// siteMetadata reads the 口味/工艺/耗时/难度 label-value pairs.
func siteMetadata(doc *goquery.Document, r *core.Recipe) {
	assign := func(label, value string) {
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		switch label {
		case "口味":
			r.Taste = value
		case "工艺":
			r.Craft = value
		case "耗时":
			r.RawDuration = value
		case "难度":
			r.Difficulty = value
		}
	}

	doc.Find("div.recipeCategory_sub_R li").Each(func(_ int, li *goquery.Selection) {
		label := strings.TrimSpace(li.Find("span.category_s2").First().Text())
		value := li.Find("a").First()
		text, ok := value.Attr("title")
		if !ok {
			text = value.Text()
		}
		assign(label, text)
	})
	if r.Taste != "" || r.Craft != "" || r.RawDuration != "" || r.Difficulty != "" {
		return
	}

	// Older pages pair the spans directly without the list wrapper.
	doc.Find("span.category_s1").Each(func(_ int, s *goquery.Selection) {
		next := s.Next()
		if !next.HasClass("category_s2") {
			return
		}
		a := s.Find("a").First()
		text, ok := a.Attr("title")
		if !ok {
			text = a.Text()
		}
		assign(strings.TrimSpace(next.Text()), text)
	})
}

// siteTips finds the 小窍门 heading and takes its sibling tip block,
// converting the HTML to Markdown so <br> separators survive as line
// breaks. Blocks that are really attribution or category footers are
// rejected.
func siteTips(doc *goquery.Document) string {
	var tips string
	doc.Find("h3").EachWithBreak(func(_ int, h3 *goquery.Selection) bool {
		t := h3.Text()
		if !strings.Contains(t, "小窍门") && !strings.Contains(t, "小贴士") {
			return true
		}
		next := h3.Parent().Next()
		if next.Length() == 0 || !next.HasClass("recipeTip") {
			return true
		}
		check := next.Text()
		if strings.Contains(check, "来自 美食天下") ||
			strings.Contains(check, "使用的厨具") ||
			strings.Contains(check, "所属分类") {
			return true
		}
		if h, err := goquery.OuterHtml(next); err == nil {
			if md, err := htmltomarkdown.ConvertString(h); err == nil {
				tips = strings.TrimSpace(md)
			}
		}
		return tips == ""
	})
	return tips
}

func siteCookware(doc *goquery.Document) string {
	var cookware string
	doc.Find("div.recipeTip").EachWithBreak(func(_ int, div *goquery.Selection) bool {
		text := sanitize.Clean(div.Text())
		if !strings.Contains(text, "厨具") {
			return true
		}
		cookware = strings.TrimSpace(strings.TrimLeft(
			strings.TrimPrefix(text, "使用的厨具"), "：:"))
		return false
	})
	return cookware
}
