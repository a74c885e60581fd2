package lexer

import (
	"haags/internal/token"
)

// maxCliticLetters bounds the letters after a leading apostrophe ('t, 'n, 'k, 's).
const maxCliticLetters = 2

// scanWord сканирует слово: буквы, а также апостроф или дефис, за которыми идёт буква.
// Ведущий апостроф уже проверен через atClitic.
func (lx *Lexer) scanWord() token.Token {
	start := lx.cursor.Mark()

	if r, _ := lx.peekRune(); isApostrophe(r) {
		lx.bumpRune()
	}

	for {
		r, sz := lx.peekRune()
		if sz == 0 {
			break
		}
		if isLetterRune(r) {
			lx.bumpRune()
			continue
		}
		if isJoiner(r) {
			// z'n, e-mail: соединитель остаётся внутри слова только перед буквой
			next, nsz := lx.peekRuneAt(sz)
			if nsz > 0 && isLetterRune(next) {
				lx.bumpRune()
				continue
			}
		}
		break
	}

	return lx.emit(token.Word, start)
}

// atClitic reports whether the apostrophe under the cursor opens a short clitic
// such as 't or 's-Gravenhage rather than a quotation ('ja').
func (lx *Lexer) atClitic() bool {
	r, off := lx.peekRune()
	if !isApostrophe(r) {
		return false
	}
	letters := 0
	for {
		r2, sz := lx.peekRuneAt(off)
		if sz == 0 || !isLetterRune(r2) {
			if sz > 0 && isApostrophe(r2) {
				// 'ja': это кавычки, не клитика
				return false
			}
			break
		}
		letters++
		off += sz
	}
	return letters >= 1 && letters <= maxCliticLetters
}
