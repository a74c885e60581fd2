package translate

import (
	"strings"

	"haags/internal/casing"
	"haags/internal/lexer"
	"haags/internal/source"
	"haags/internal/table"
	"haags/internal/token"
)

// Translator applies a correspondence table to tokenized text.
type Translator struct {
	table *table.Table
}

// New returns a Translator over tbl. A nil table translates nothing.
func New(tbl *table.Table) *Translator {
	return &Translator{table: tbl}
}

// Match describes one substitution made during a run.
type Match struct {
	Span   source.Span // from the first to the last matched word
	Source string      // original text of the span, inner whitespace included
	Target string      // emitted text after re-casing
	Words  int         // number of source words consumed
}

// Result is the output of Run together with what was substituted.
type Result struct {
	Output  string
	Matches []Match
	// Words counts Word tokens in the input; Translated counts those consumed by matches.
	Words      int
	Translated int
}

// Translate is the functional form of Translator.Translate.
func Translate(tokens []token.Token, tbl *table.Table) string {
	return New(tbl).Translate(tokens)
}

// Translate returns the dialect rendering of tokens.
func (tr *Translator) Translate(tokens []token.Token) string {
	return tr.Run(tokens).Output
}

// TranslateString tokenizes text with default options and translates it.
func (tr *Translator) TranslateString(text string) string {
	return tr.Translate(lexer.Tokenize(text))
}

// Run translates tokens and reports every match.
func (tr *Translator) Run(tokens []token.Token) Result {
	var (
		res    Result
		b      strings.Builder
		maxLen = tr.table.MaxPhraseLen()
		keys   = foldWords(tokens)
		words  = make([]string, 0, maxLen)
		idx    = make([]int, 0, maxLen)
	)
	b.Grow(textLen(tokens))

	for i := 0; i < len(tokens); {
		tok := tokens[i]
		if !tok.IsWord() {
			b.WriteString(tok.Text)
			i++
			continue
		}
		res.Words++

		words, idx = collectSegment(tokens, keys, i, maxLen, words[:0], idx[:0])
		target, n := tr.table.Longest(words)
		if n == 0 {
			// промах: слово как есть, с исходным регистром
			b.WriteString(tok.Text)
			i++
			continue
		}

		span := idx[:n]
		out := render(tokens, span, target)
		b.WriteString(out)

		first, last := tokens[span[0]], tokens[span[n-1]]
		res.Matches = append(res.Matches, Match{
			Span:   first.Span.Cover(last.Span),
			Source: token.Join(tokens[span[0] : span[n-1]+1]),
			Target: out,
			Words:  n,
		})
		res.Translated += n
		// внутренние пробелы фразы уже учтены; слова после первого в счётчик Words
		res.Words += n - 1
		i = span[n-1] + 1
	}

	res.Output = b.String()
	return res
}

// foldWords precomputes the lookup form of every Word token; other slots stay empty.
func foldWords(tokens []token.Token) []string {
	keys := make([]string, len(tokens))
	for i := range tokens {
		if tokens[i].IsWord() {
			keys[i] = casing.Fold(tokens[i].Text)
		}
	}
	return keys
}

// collectSegment gathers up to maxLen words starting at token i, stepping over
// exactly one Whitespace token between words.
func collectSegment(tokens []token.Token, keys []string, i, maxLen int, words []string, idx []int) ([]string, []int) {
	words = append(words, keys[i])
	idx = append(idx, i)
	for j := i; len(words) < maxLen; {
		if j+2 >= len(tokens) || !tokens[j+1].IsWhitespace() || !tokens[j+2].IsWord() {
			break
		}
		j += 2
		words = append(words, keys[j])
		idx = append(idx, j)
	}
	return words, idx
}

func textLen(tokens []token.Token) int {
	n := 0
	for i := range tokens {
		n += len(tokens[i].Text)
	}
	return n
}
