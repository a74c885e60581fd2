package casing

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Apply re-cases target, which is stored lowercase, to match shape.
// Lower, Mixed and None leave target unchanged: no general rule exists for
// mirroring embedded capitals.
func Apply(target string, shape Shape) string {
	switch shape {
	case Upper:
		return cases.Upper(language.Dutch).String(target)
	case Title:
		return TitleFirst(target)
	default:
		return target
	}
}

// TitleFirst capitalises the first word of s and leaves everything after it
// untouched. When s starts with a clitic ('t, 's) the capital moves to the next
// word: "'s morgens" becomes "'s Morgens".
func TitleFirst(s string) string {
	start := firstLetter(s)
	if start < 0 {
		return s
	}
	if start > 0 && isCliticLead(s[:start]) {
		if next := nextWordStart(s, start); next > 0 {
			start = next
		}
	}
	end := start
	for end < len(s) {
		r, sz := utf8.DecodeRuneInString(s[end:])
		if !unicode.IsLetter(r) && !unicode.In(r, unicode.Mn, unicode.Mc) {
			break
		}
		end += sz
	}

	word := s[start:end]
	var titled string
	if len(word) >= 2 && (word[0] == 'i' || word[0] == 'I') && (word[1] == 'j' || word[1] == 'J') {
		titled = "IJ" + word[2:]
	} else {
		titled = cases.Title(language.Dutch, cases.NoLower).String(word)
	}

	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteString(s[:start])
	b.WriteString(titled)
	b.WriteString(s[end:])
	return b.String()
}

// Fold returns the lookup form of a word or phrase: lowercase, NFC-composed,
// typographic apostrophes replaced by '.
func Fold(s string) string {
	if isLowerASCII(s) {
		return s
	}
	s = strings.ReplaceAll(s, "’", "'")
	return norm.NFC.String(cases.Lower(language.Dutch).String(s))
}

func isLowerASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= utf8.RuneSelf || (c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}

func firstLetter(s string) int {
	for i, r := range s {
		if unicode.IsLetter(r) {
			return i
		}
	}
	return -1
}

// isCliticLead reports whether prefix (text before the first letter) is a lone apostrophe.
func isCliticLead(prefix string) bool {
	return prefix == "'" || prefix == "’"
}

// nextWordStart returns the offset of the first letter of the word after the one
// starting at from, or -1 when from is the last word.
func nextWordStart(s string, from int) int {
	sp := strings.IndexFunc(s[from:], unicode.IsSpace)
	if sp < 0 {
		return -1
	}
	rest := from + sp
	idx := firstLetter(s[rest:])
	if idx < 0 {
		return -1
	}
	return rest + idx
}
