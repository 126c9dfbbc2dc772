// Package steps validates and accumulates method-step candidates.
// Candidates arrive as HTML or text fragments from whichever fallback
// tier produced them; the list renumbers everything contiguously from 1
// in extraction order, since source numbering is unreliable.
package steps

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gaurav-prasanna/recipepipe/core"
	"github.com/gaurav-prasanna/recipepipe/core/sanitize"
)

const (
	strictMinRunes  = 5
	lenientMinRunes = 3
)

var (
	numPrefixRe = regexp.MustCompile(`^(\d+)[\.。、]\s*`)
	// A short leading run ending in a colon is a label (主料：, 第一步：),
	// not step content. Long prefixes are left alone.
	labelPrefixRe  = regexp.MustCompile(`^[^：:，。]{1,8}[：:]\s*`)
	materialsDotRe = regexp.MustCompile(`^(?:准备)?(?:原料|材料|食材|配方)[：:]?`)
)

// denyMarks flag fragments that belong to tip or quality-standard
// sections, not steps.
var denyMarks = []string{
	"注意事项", "小贴士", "特色", "功效", "准备原料",
	"质量标准", "规格：", "色泽：", "组织：", "口味：",
}

// List accumulates validated steps.
type List struct {
	steps      []core.Step
	minRunes   int
	useDeny    bool
	sourceNums []int
}

// NewList creates a strict list for the generic extraction path:
// 5-rune minimum plus the non-step denylist.
func NewList() *List {
	return &List{minRunes: strictMinRunes, useDeny: true}
}

// NewLenient creates a list for the site-specific path, whose step
// container is already unambiguous: shorter minimum, no denylist.
func NewLenient() *List {
	return &List{minRunes: lenientMinRunes}
}

// Add sanitizes and validates one candidate fragment, appending it with
// the next contiguous number. Reports whether the candidate survived.
func (l *List) Add(fragment string) bool {
	return l.AddWithImage(fragment, "")
}

// AddWithImage is Add with an associated step image URL.
func (l *List) AddWithImage(fragment, image string) bool {
	text := sanitize.Clean(fragment)
	text = labelPrefixRe.ReplaceAllString(text, "")

	if !l.valid(text) {
		return false
	}

	// Strip an explicit numeric label; keep the original number for
	// diagnostics only. Final numbering is always positional.
	sourceNum := 0
	if m := numPrefixRe.FindStringSubmatch(text); m != nil {
		sourceNum, _ = strconv.Atoi(m[1])
		text = numPrefixRe.ReplaceAllString(text, "")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}

	l.steps = append(l.steps, core.Step{
		Number:      len(l.steps) + 1,
		Description: text,
		Image:       image,
	})
	l.sourceNums = append(l.sourceNums, sourceNum)
	return true
}

func (l *List) valid(text string) bool {
	if len([]rune(text)) < l.minRunes {
		return false
	}
	if !l.useDeny {
		return true
	}
	for _, m := range denyMarks {
		if strings.Contains(text, m) {
			return false
		}
	}
	if strings.Contains(text, "主料") && strings.Contains(text, "辅料") {
		return false
	}
	if materialsDotRe.MatchString(text) && !strings.Contains(text, "做法") {
		return false
	}
	return true
}

// Len returns the number of accepted steps.
func (l *List) Len() int { return len(l.steps) }

// Steps returns the accumulated steps in order.
func (l *List) Steps() []core.Step { return l.steps }

// SourceNumbers returns the numeric labels found on the source
// fragments (0 where absent), aligned with Steps. Diagnostics only.
func (l *List) SourceNumbers() []int { return l.sourceNums }

// Default returns the synthetic single step used when nothing survives
// extraction.
func Default(image string) core.Step {
	return core.Step{Number: 1, Description: core.DefaultStepText, Image: image}
}
