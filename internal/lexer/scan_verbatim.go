package lexer

import (
	"bytes"

	"haags/internal/token"
)

var urlPrefixes = [][]byte{
	[]byte("http://"),
	[]byte("https://"),
	[]byte("www."),
}

// trailing punctuation that ends a sentence rather than the address
const verbatimTrailing = ".,;:!?)]}'\""

// scanVerbatim consumes a URL or e-mail address detected by verbatimLen.
func (lx *Lexer) scanVerbatim() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Advance(lx.verbatimLen())
	return lx.emit(token.Verbatim, start)
}

// verbatimLen returns the byte length of a URL or e-mail address starting at the
// cursor, or 0 when there is none. The cursor is not moved.
func (lx *Lexer) verbatimLen() int {
	rest := lx.cursor.Rest()
	if len(rest) == 0 || !isURLByte(rest[0]) {
		return 0
	}
	if n := urlLen(rest); n > 0 {
		return n
	}
	return emailLen(rest)
}

func urlLen(rest []byte) int {
	matched := 0
	for _, p := range urlPrefixes {
		if len(rest) > len(p) && bytes.EqualFold(rest[:len(p)], p) {
			matched = len(p)
			break
		}
	}
	if matched == 0 {
		return 0
	}
	n := matched
	for n < len(rest) && !isURLStop(rest[n]) {
		n++
	}
	n = trimTrailing(rest, n)
	if n <= matched {
		return 0
	}
	return n
}

// emailLen matches local@domain.tld with an ASCII local part.
func emailLen(rest []byte) int {
	n := 0
	for n < len(rest) && isEmailLocal(rest[n]) {
		n++
	}
	if n == 0 || n >= len(rest) || rest[n] != '@' {
		return 0
	}
	at := n
	n++
	dot := -1
	for n < len(rest) && isDomainByte(rest[n]) {
		if rest[n] == '.' {
			dot = n
		}
		n++
	}
	n = trimTrailing(rest, n)
	if dot < 0 || dot <= at+1 || dot >= n-1 {
		return 0
	}
	return n
}

func trimTrailing(rest []byte, n int) int {
	for n > 0 && bytes.IndexByte([]byte(verbatimTrailing), rest[n-1]) >= 0 {
		n--
	}
	return n
}

func isURLByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || isDec(b)
}

func isURLStop(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f', '<', '>', '"':
		return true
	default:
		return false
	}
}

func isEmailLocal(b byte) bool {
	return isURLByte(b) || b == '.' || b == '_' || b == '%' || b == '+' || b == '-'
}

func isDomainByte(b byte) bool {
	return isURLByte(b) || b == '.' || b == '-'
}
