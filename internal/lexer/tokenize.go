package lexer

import (
	"haags/internal/source"
	"haags/internal/token"
)

// Tokenize splits text into segments using default options.
// Joining the texts of the result reproduces text exactly.
func Tokenize(text string) []token.Token {
	file := &source.File{Content: []byte(text)}
	return TokenizeFile(file, Options{})
}

// TokenizeFile collects every segment of file up to, but not including, EOF.
func TokenizeFile(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	// грубая оценка: слово + пробел на каждые ~5 байт
	tokens := make([]token.Token, 0, len(file.Content)/3+1)
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
