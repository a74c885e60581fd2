package translate

import (
	"strings"

	"haags/internal/casing"
	"haags/internal/token"
)

// render re-cases target after the matched words and lays its words out with the
// whitespace found between the matched source words. Target gaps beyond the
// source's get a single space.
func render(tokens []token.Token, span []int, target string) string {
	cased := recase(tokens, span, target)
	if len(span) == 1 || !strings.Contains(cased, " ") {
		return cased
	}

	parts := strings.Split(cased, " ")
	var b strings.Builder
	b.Grow(len(cased) + len(span))
	for j, p := range parts {
		if j > 0 {
			if j-1 < len(span)-1 {
				b.WriteString(tokens[span[j-1]+1].Text)
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString(p)
	}
	return b.String()
}

// recase applies the capitalisation of the matched words to target.
// Single words mirror their own shape. Phrases take a leading capital from the
// first word and are fully uppercased only when every matched word is uppercase.
func recase(tokens []token.Token, span []int, target string) string {
	shape := casing.Detect(tokens[span[0]].Text)
	if len(span) == 1 {
		return casing.Apply(target, shape)
	}
	if allUpper(tokens, span) {
		return casing.Apply(target, casing.Upper)
	}
	switch shape {
	case casing.Title, casing.Upper:
		return casing.Apply(target, casing.Title)
	default:
		return target
	}
}

func allUpper(tokens []token.Token, span []int) bool {
	for _, i := range span {
		if casing.Detect(tokens[i].Text) != casing.Upper {
			return false
		}
	}
	return true
}
