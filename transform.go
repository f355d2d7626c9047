package ask

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// apply returns text with the whitespace policy applied.
func (p WhitespacePolicy) apply(text string) string {
	switch p {
	case WhitespaceNone:
		return text
	case WhitespaceChomp:
		return chomp(text)
	case WhitespaceCollapse:
		return whitespaceRun.ReplaceAllString(text, " ")
	case WhitespaceStripAndCollapse:
		return whitespaceRun.ReplaceAllString(strings.TrimSpace(text), " ")
	case WhitespaceChompAndCollapse:
		return whitespaceRun.ReplaceAllString(chomp(text), " ")
	case WhitespaceRemove:
		return strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, text)
	default:
		return strings.TrimSpace(text)
	}
}

// chomp removes one trailing line ending.
func chomp(text string) string {
	if s, ok := strings.CutSuffix(text, "\r\n"); ok {
		return s
	}
	if s, ok := strings.CutSuffix(text, "\n"); ok {
		return s
	}
	s, _ := strings.CutSuffix(text, "\r")
	return s
}

// apply returns text with the case policy applied.
func (p CasePolicy) apply(text string) string {
	switch p {
	case CaseUp:
		return strings.ToUpper(text)
	case CaseDown:
		return strings.ToLower(text)
	case CaseCapitalize:
		first, size := utf8.DecodeRuneInString(text)
		if size == 0 {
			return text
		}
		return string(unicode.ToUpper(first)) + strings.ToLower(text[size:])
	default:
		return text
	}
}

// transform applies the question's whitespace and case policies. Single
// character questions keep the key exactly as typed.
func (q *Question) transform(text string) string {
	if q.limit == 1 {
		return text
	}
	return q.letterCase.apply(q.whitespace.apply(text))
}
