package driver

import (
	"haags/internal/lexer"
	"haags/internal/source"
	"haags/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
}

// Tokenize loads path and splits it into segments.
func Tokenize(path string, opts lexer.Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeLoaded(fs, fileID, opts), nil
}

// TokenizeText splits in-memory input registered under name.
func TokenizeText(name string, text []byte, opts lexer.Options) *TokenizeResult {
	fs := source.NewFileSet()
	return tokenizeLoaded(fs, fs.AddVirtual(name, text), opts)
}

func tokenizeLoaded(fs *source.FileSet, id source.FileID, opts lexer.Options) *TokenizeResult {
	file := fs.Get(id)
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  lexer.TokenizeFile(file, opts),
	}
}
