package lexer

import (
	"haags/internal/token"
)

// scanWhitespace consumes a maximal whitespace run. Newlines are not split out:
// layout is reproduced from the token text.
func (lx *Lexer) scanWhitespace() token.Token {
	start := lx.cursor.Mark()
	for {
		r, sz := lx.peekRune()
		if sz == 0 || !isSpaceRune(r) {
			break
		}
		lx.bumpRune()
	}
	return lx.emit(token.Whitespace, start)
}
