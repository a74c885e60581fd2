package dialect

import (
	"fmt"
	"strings"

	"haags/internal/casing"
	"haags/internal/table"
	"haags/internal/token"
)

// haagsGraphemes are spellings standard Dutch words practically never use.
var haagsGraphemes = []string{"âh", "ùi", "è"}

// Vocabulary knows which folded words are table sources (Dutch) and which only
// ever appear as single-word targets (Haags).
type Vocabulary struct {
	dutch map[string]bool
	haags map[string]bool
}

// NewVocabulary derives both word sets from tbl. A word that is a source anywhere
// in the table is never counted as Haags.
func NewVocabulary(tbl *table.Table) *Vocabulary {
	v := &Vocabulary{dutch: make(map[string]bool), haags: make(map[string]bool)}
	entries := tbl.Entries()
	for _, e := range entries {
		words := table.KeyWords(e.Source)
		if len(words) == 1 {
			v.dutch[words[0]] = true
		}
	}
	for _, e := range entries {
		if strings.ContainsAny(e.Target, " \t") {
			continue
		}
		w := casing.Fold(e.Target)
		if w != "" && !v.dutch[w] {
			v.haags[w] = true
		}
	}
	return v
}

// ObserveWord records the evidence one Word token carries.
func (v *Vocabulary) ObserveWord(e *Evidence, tok token.Token) {
	if v == nil || e == nil || !tok.IsWord() {
		return
	}
	w := casing.Fold(tok.Text)
	switch {
	case v.haags[w]:
		e.Add(Hint{Dialect: Haags, Score: 2, Reason: fmt.Sprintf("haags form %q", tok.Text), Span: tok.Span})
	case v.dutch[w]:
		e.Add(Hint{Dialect: Dutch, Score: 1, Reason: fmt.Sprintf("dutch form %q", tok.Text), Span: tok.Span})
	default:
		for _, g := range haagsGraphemes {
			if strings.Contains(w, g) {
				e.Add(Hint{Dialect: Haags, Score: 1, Reason: fmt.Sprintf("haags spelling %q in %q", g, tok.Text), Span: tok.Span})
				break
			}
		}
	}
}

// Observe collects evidence for a token stream.
func Observe(tokens []token.Token, v *Vocabulary) *Evidence {
	e := NewEvidence()
	for _, tok := range tokens {
		v.ObserveWord(e, tok)
	}
	return e
}
