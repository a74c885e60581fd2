package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/mattn/go-runewidth"

	"haags/internal/source"
	"haags/internal/token"
)

// textColumn is the display width reserved for the quoted token text.
const textColumn = 24

type TokenOutput struct {
	Kind      string `json:"kind"`
	Text      string `json:"text"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	Line      uint32 `json:"line"`
	Col       uint32 `json:"col"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		if tok.Kind == token.EOF {
			break
		}
		startPos, endPos := fs.Resolve(tok.Span)
		quoted := strconv.Quote(tok.Text)
		// ширина по экрану, а не по байтам: "è" и CJK выравниваются одинаково
		quoted = runewidth.FillRight(runewidth.Truncate(quoted, textColumn, "…\""), textColumn)
		if _, err := fmt.Fprintf(w, "%4d: %-12s %s at %d:%d-%d:%d\n",
			i+1, tok.Kind.String(), quoted,
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == token.EOF {
			break
		}
		start, _ := fs.Resolve(tok.Span)
		output = append(output, TokenOutput{
			Kind:      tok.Kind.String(),
			Text:      tok.Text,
			StartByte: tok.Span.Start,
			EndByte:   tok.Span.End,
			Line:      start.Line,
			Col:       start.Col,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
