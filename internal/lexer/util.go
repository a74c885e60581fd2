package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"fortio.org/safecast"
)

// ===== Работа с рунами поверх Cursor =====

// peekRune читает текущую руну; невалидный байт возвращается как RuneError размера 1
func (lx *Lexer) peekRune() (r rune, size int) {
	return lx.peekRuneAt(0)
}

// peekRuneAt декодирует руну по смещению ahead байт от курсора
func (lx *Lexer) peekRuneAt(ahead int) (r rune, size int) {
	rest := lx.cursor.Rest()
	if ahead >= len(rest) {
		return utf8.RuneError, 0
	}
	b := rest[ahead]
	if b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	return utf8.DecodeRune(rest[ahead:])
}

// bumpRune перемещает курсор на размер текущей руны
func (lx *Lexer) bumpRune() {
	_, sz := lx.peekRune()
	if sz == 0 {
		return
	}
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("bumpRune overflow: %w", err))
	}
	lx.cursor.Off += usz
}

// ===== Классификаторы =====

// isLetterRune covers letters and combining marks, so decomposed diacritics
// (e + U+0301) stay inside the word.
func isLetterRune(r rune) bool {
	if r < utf8.RuneSelf {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	}
	return unicode.IsLetter(r) || unicode.In(r, unicode.Mn, unicode.Mc)
}

func isSpaceRune(r rune) bool {
	if r < utf8.RuneSelf {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
	}
	return unicode.IsSpace(r)
}

// isApostrophe accepts the ASCII apostrophe and the typographic right single quote.
func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}

// isJoiner reports runes that may sit between letters of one word.
func isJoiner(r rune) bool {
	return isApostrophe(r) || r == '-'
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }
