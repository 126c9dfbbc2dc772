package core

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	minutesRe = regexp.MustCompile(`(\d+)\s*分钟`)
	hoursRe   = regexp.MustCompile(`(\d+)\s*小时`)
)

// ParseCookTime maps a free-text duration phrase to whole minutes.
// Explicit minute counts win, then the site's idiomatic quarter-hour
// phrases, then hour counts. Returns false when nothing matches.
func ParseCookTime(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	if m := minutesRe.FindStringSubmatch(raw); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return n, true
		}
	}
	switch {
	case strings.Contains(raw, "三刻钟"):
		return 45, true
	case strings.Contains(raw, "一刻钟"):
		return 15, true
	case strings.Contains(raw, "半小时"):
		return 30, true
	}
	if m := hoursRe.FindStringSubmatch(raw); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			return n * 60, true
		}
	}
	return 0, false
}

// FallbackCookTime estimates minutes from the step count when the
// source carries no duration at all.
func FallbackCookTime(stepCount int) int {
	if t := stepCount * 5; t > 10 {
		return t
	}
	return 10
}
