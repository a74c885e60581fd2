package token

import (
	"strings"

	"haags/internal/source"
)

// Token represents a single input segment with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsWord reports whether the token can take part in a table lookup.
func (t Token) IsWord() bool { return t.Kind == Word }

// IsWhitespace reports whether the token is a whitespace run.
func (t Token) IsWhitespace() bool { return t.Kind == Whitespace }

// IsPassthrough reports whether the token is always copied unchanged.
func (t Token) IsPassthrough() bool {
	switch t.Kind {
	case Whitespace, Punctuation, Number, Verbatim:
		return true
	default:
		return false
	}
}

// Join reassembles token texts in order. For tokenizer output it returns the original input.
func Join(tokens []Token) string {
	n := 0
	for i := range tokens {
		n += len(tokens[i].Text)
	}
	var b strings.Builder
	b.Grow(n)
	for i := range tokens {
		b.WriteString(tokens[i].Text)
	}
	return b.String()
}
