// Package decode resolves the character encoding of scraped recipe
// documents. The source site served a mix of GBK and UTF-8 over the
// years, so decoding is a guessing game: try candidates in priority
// order and accept the first one that both contains the structural
// anchors a recipe page must have and passes the garbled-text check.
//
// Decode never fails. A wrong guess yields garbled text that the
// downstream extractors simply won't match against.
package decode

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// anchors are substrings expected in any well-formed document of this
// domain, in either the site markup or the plain-text export.
var anchors = []string{"主料", "辅料", "做法步骤", "recipe_De_title", "recipeStep"}

// garbledMarks are artifact sequences produced by mis-decoding GBK
// bytes as UTF-8 (and the Unicode replacement character itself).
var garbledMarks = []string{"锟斤拷", "�"}

const (
	garbledMinLen = 50
	minCJKRatio   = 0.02
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Resolver implements core.Decoder.
type Resolver struct {
	detector *chardet.Detector
}

// New creates a Resolver.
func New() *Resolver {
	return &Resolver{detector: chardet.NewTextDetector()}
}

// Decode converts raw document bytes to text, best effort.
//
// Order: well-formed UTF-8 as-is, then the chardet guess (a hint only,
// validated like any other candidate), then GBK, then GB18030. Each
// candidate must contain a structural anchor and pass the garbled-text
// check. If nothing validates, fall back to the raw bytes as UTF-8 —
// unless they are not valid UTF-8 or the result is detectably garbled,
// in which case a GBK decode is preferred even without validation.
//
// The UTF-8 fast path runs first because the ASCII anchors survive a
// GBK mis-decode of UTF-8 bytes, which would otherwise validate.
func (r *Resolver) Decode(raw []byte) string {
	raw = bytes.TrimPrefix(raw, utf8BOM)

	if utf8.Valid(raw) {
		if s := string(raw); hasAnchor(s) && !Garbled(s) {
			return s
		}
	}

	if res, err := r.detector.DetectBest(raw); err == nil && res != nil {
		if enc, err := htmlindex.Get(strings.ToLower(res.Charset)); err == nil {
			if s, ok := tryDecode(raw, enc); ok {
				return s
			}
		}
	}

	for _, enc := range []encoding.Encoding{simplifiedchinese.GBK, simplifiedchinese.GB18030} {
		if s, ok := tryDecode(raw, enc); ok {
			return s
		}
	}

	// Last resort. string(raw) keeps invalid bytes as-is rather than
	// substituting U+FFFD, so the garble heuristic alone cannot see
	// them; invalid UTF-8 counts as garbled outright.
	text := string(raw)
	if !utf8.ValidString(text) || Garbled(text) {
		if s, err := decodeWith(raw, simplifiedchinese.GBK); err == nil {
			return s
		}
	}
	return text
}

func tryDecode(raw []byte, enc encoding.Encoding) (string, bool) {
	s, err := decodeWith(raw, enc)
	if err != nil {
		return "", false
	}
	if hasAnchor(s) && !Garbled(s) {
		return s, true
	}
	return "", false
}

func decodeWith(raw []byte, enc encoding.Encoding) (string, error) {
	out, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func hasAnchor(s string) bool {
	for _, a := range anchors {
		if strings.Contains(s, a) {
			return true
		}
	}
	return false
}

// Garbled reports whether a decoded string looks mis-decoded: long
// enough to judge (≥50 runes) with a CJK character ratio below 2%, or
// containing a known mis-decode artifact sequence.
func Garbled(s string) bool {
	runes := []rune(s)
	if len(runes) < garbledMinLen {
		return false
	}
	cjk := 0
	for _, r := range runes {
		if r >= 0x4E00 && r <= 0x9FFF {
			cjk++
		}
	}
	if float64(cjk)/float64(len(runes)) < minCJKRatio {
		return true
	}
	for _, m := range garbledMarks {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
