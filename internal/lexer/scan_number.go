package lexer

import (
	"haags/internal/token"
)

// scanNumber: [0-9]+ с одним необязательным разделителем '.' или ',' перед цифрой.
// "3,14" и "3.14": одно число; "3.14.": число и точка; "1.000.000": число "1.000",
// точка и число "000", потому что разделитель допускается только один.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	lx.scanDigits()

	if b0, b1, ok := lx.cursor.Peek2(); ok && (b0 == '.' || b0 == ',') && isDec(b1) {
		lx.cursor.Bump()
		lx.scanDigits()
	}

	return lx.emit(token.Number, start)
}

func (lx *Lexer) scanDigits() {
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}
