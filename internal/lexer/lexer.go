package lexer

import (
	"haags/internal/source"
	"haags/internal/token"
)

// Lexer splits a source.File into lossless segments.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next segment. После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
			Text: "",
		}
	}

	r, _ := lx.peekRune()

	switch {
	case !lx.opts.PlainWords && lx.verbatimLen() > 0:
		return lx.scanVerbatim()

	case isSpaceRune(r):
		return lx.scanWhitespace()

	case isDec(lx.cursor.Peek()):
		return lx.scanNumber()

	case isApostrophe(r) && lx.atClitic():
		// 't, 's, 'k, 'n: апостроф принадлежит слову
		return lx.scanWord()

	case isLetterRune(r):
		return lx.scanWord()

	default:
		return lx.scanPunct()
	}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) emit(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
