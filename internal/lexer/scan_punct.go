package lexer

import (
	"unicode/utf8"

	"haags/internal/token"
)

// scanPunct consumes one rune, or a run of the same rune ("...", "!!!", "--").
// Invalid UTF-8 is emitted one byte per token so the output stays byte-identical.
func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if r == utf8.RuneError && sz <= 1 {
		lx.cursor.Bump()
		return lx.emit(token.Punctuation, start)
	}
	lx.bumpRune()

	for {
		r2, sz2 := lx.peekRune()
		if sz2 != sz || r2 != r {
			break
		}
		lx.bumpRune()
	}
	return lx.emit(token.Punctuation, start)
}
