package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"haags/internal/source"
	"haags/internal/token"
)

// CheckTokenInvariants runs the invariants every tokenizer output must hold:
// 1) spans are non-empty, contiguous and cover the whole file content
// 2) every token's Text is exactly the content under its span
// 3) no two Whitespace tokens are adjacent (runs are maximal)
// 4) no Invalid or EOF token appears in the segment list
func CheckTokenInvariants(tokens []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var pos uint32
	for i, tok := range tokens {
		sp := tok.Span
		if sp.End <= sp.Start {
			return fmt.Errorf("token %d (%s) has an empty span %v", i, tok.Kind, sp)
		}
		if sp.Start != pos {
			return fmt.Errorf("token %d starts at %d, previous ended at %d", i, sp.Start, pos)
		}
		if sp.End > lenContent {
			return fmt.Errorf("token %d ends beyond content: %d > %d", i, sp.End, lenContent)
		}
		if got := string(sf.Content[sp.Start:sp.End]); got != tok.Text {
			return fmt.Errorf("token %d text %q does not match content %q", i, tok.Text, got)
		}
		switch tok.Kind {
		case token.Invalid, token.EOF:
			return fmt.Errorf("token %d has kind %s", i, tok.Kind)
		case token.Whitespace:
			if i > 0 && tokens[i-1].Kind == token.Whitespace {
				return fmt.Errorf("tokens %d and %d are both whitespace", i-1, i)
			}
		}
		pos = sp.End
	}
	if pos != lenContent {
		return fmt.Errorf("tokens cover %d of %d bytes", pos, lenContent)
	}
	return nil
}
