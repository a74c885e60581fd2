package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"haags/internal/lexer"
	"haags/internal/source"
	"haags/internal/token"
)

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string, opts lexer.Options) *lexer.Lexer {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.txt", []byte(input))
	return lexer.New(fs.Get(fileID), opts)
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

type want struct {
	kind token.Kind
	text string
}

func expectTokens(t *testing.T, input string, expected []want) {
	t.Helper()
	tokens := lexer.Tokenize(input)
	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %v",
			len(expected), len(tokens), input, tokensToString(tokens))
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i].kind || tok.Text != expected[i].text {
			t.Errorf("Token %d: expected %v(%q), got %v(%q)",
				i, expected[i].kind, expected[i].text, tok.Kind, tok.Text)
		}
	}
}

func TestTokenizeSentence(t *testing.T) {
	input := "'t duurde 3,14 lange,    bange dagen."
	tokens := lexer.Tokenize(input)
	if got := token.Join(tokens); got != input {
		t.Fatalf("round trip = %q, want %q", got, input)
	}
	if len(tokens) != 13 {
		t.Fatalf("expected 13 tokens, got %d: %s", len(tokens), tokensToString(tokens))
	}
	checks := []struct {
		idx  int
		kind token.Kind
		text string
	}{
		{0, token.Word, "'t"},
		{1, token.Whitespace, " "},
		{2, token.Word, "duurde"},
		{4, token.Number, "3,14"},
		{7, token.Punctuation, ","},
		{8, token.Whitespace, "    "},
		{12, token.Punctuation, "."},
	}
	for _, c := range checks {
		if tokens[c.idx].Kind != c.kind || tokens[c.idx].Text != c.text {
			t.Errorf("token %d = %v(%q), want %v(%q)", c.idx, tokens[c.idx].Kind, tokens[c.idx].Text, c.kind, c.text)
		}
	}
}

func TestWords(t *testing.T) {
	tests := []struct {
		input string
		text  string
	}{
		{"groot", "groot"},
		{"IJsland", "IJsland"},
		{"z'n", "z'n"},
		{"auto's", "auto's"},
		{"e-mail", "e-mail"},
		{"'s-Gravenhage", "'s-Gravenhage"},
		{"'k", "'k"},
		{"’t", "’t"},
		{"café", "café"},
		{"café", "café"},
		{"Ĳssel", "Ĳssel"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectTokens(t, tt.input, []want{{token.Word, tt.text}})
		})
	}
}

func TestApostropheQuotes(t *testing.T) {
	expectTokens(t, "'hallo'", []want{
		{token.Punctuation, "'"},
		{token.Word, "hallo"},
		{token.Punctuation, "'"},
	})
	expectTokens(t, "'ja'", []want{
		{token.Punctuation, "'"},
		{token.Word, "ja"},
		{token.Punctuation, "'"},
	})
	expectTokens(t, "jongens'", []want{
		{token.Word, "jongens"},
		{token.Punctuation, "'"},
	})
}

func TestHyphenOutsideWord(t *testing.T) {
	expectTokens(t, "- ja -", []want{
		{token.Punctuation, "-"},
		{token.Whitespace, " "},
		{token.Word, "ja"},
		{token.Whitespace, " "},
		{token.Punctuation, "-"},
	})
	expectTokens(t, "boven-", []want{
		{token.Word, "boven"},
		{token.Punctuation, "-"},
	})
}

func TestNumbers(t *testing.T) {
	expectTokens(t, "3.14.", []want{
		{token.Number, "3.14"},
		{token.Punctuation, "."},
	})
	expectTokens(t, "1.000.000", []want{
		{token.Number, "1.000"},
		{token.Punctuation, "."},
		{token.Number, "000"},
	})
	expectTokens(t, "42,", []want{
		{token.Number, "42"},
		{token.Punctuation, ","},
	})
	expectTokens(t, "3e", []want{
		{token.Number, "3"},
		{token.Word, "e"},
	})
}

func TestPunctuationRuns(t *testing.T) {
	expectTokens(t, "nee...!?", []want{
		{token.Word, "nee"},
		{token.Punctuation, "..."},
		{token.Punctuation, "!"},
		{token.Punctuation, "?"},
	})
	expectTokens(t, "«ja»", []want{
		{token.Punctuation, "«"},
		{token.Word, "ja"},
		{token.Punctuation, "»"},
	})
}

func TestWhitespaceRuns(t *testing.T) {
	expectTokens(t, "a \t\n\n b", []want{
		{token.Word, "a"},
		{token.Whitespace, " \t\n\n "},
		{token.Word, "b"},
	})
	expectTokens(t, "a b", []want{
		{token.Word, "a"},
		{token.Whitespace, " "},
		{token.Word, "b"},
	})
}

func TestVerbatim(t *testing.T) {
	input := "De informatie is te vinden op http://example.org/een/of/andere/pagina.html."
	tokens := lexer.Tokenize(input)
	if got := token.Join(tokens); got != input {
		t.Fatalf("round trip = %q", got)
	}
	n := len(tokens)
	if tokens[n-2].Kind != token.Verbatim || tokens[n-2].Text != "http://example.org/een/of/andere/pagina.html" {
		t.Fatalf("expected URL token, got %s", tokensToString(tokens[n-2:]))
	}
	if tokens[n-1].Kind != token.Punctuation || tokens[n-1].Text != "." {
		t.Fatalf("expected trailing '.', got %v(%q)", tokens[n-1].Kind, tokens[n-1].Text)
	}

	expectTokens(t, "mail jan@voorbeeld.nl!", []want{
		{token.Word, "mail"},
		{token.Whitespace, " "},
		{token.Verbatim, "jan@voorbeeld.nl"},
		{token.Punctuation, "!"},
	})
	expectTokens(t, "www.denhaag.nl", []want{{token.Verbatim, "www.denhaag.nl"}})
}

func TestPlainWordsDisablesVerbatim(t *testing.T) {
	lx := makeTestLexer("www.denhaag.nl", lexer.Options{PlainWords: true})
	var kinds []token.Kind
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		kinds = append(kinds, tok.Kind)
	}
	wantKinds := []token.Kind{token.Word, token.Punctuation, token.Word, token.Punctuation, token.Word}
	if fmt.Sprint(kinds) != fmt.Sprint(wantKinds) {
		t.Fatalf("kinds = %v, want %v", kinds, wantKinds)
	}
}

func TestInvalidUTF8(t *testing.T) {
	input := "ja\xff\xfenee"
	tokens := lexer.Tokenize(input)
	if got := token.Join(tokens); got != input {
		t.Fatalf("round trip = %q, want %q", got, input)
	}
	expectTokens(t, input, []want{
		{token.Word, "ja"},
		{token.Punctuation, "\xff"},
		{token.Punctuation, "\xfe"},
		{token.Word, "nee"},
	})
}

func TestRoundTripAndNoEmptyTokens(t *testing.T) {
	inputs := []string{
		"",
		" ",
		"Hallo, ken ik jou? Ik dacht het niet.\n\tWAT KAN MIJ HET ROTTEN?",
		"\"Zeg,\" zei ze — 't is 12:30 uur…",
		"a''b--c..d,,e",
		"\r\n\r\n",
		"日本語のテキスト 123",
		"'",
		"'t'",
	}
	for _, in := range inputs {
		tokens := lexer.Tokenize(in)
		if got := token.Join(tokens); got != in {
			t.Errorf("round trip failed for %q: got %q", in, got)
		}
		var prevEnd uint32
		for i, tok := range tokens {
			if tok.Text == "" {
				t.Errorf("empty token %d in %q", i, in)
			}
			if tok.Span.Start != prevEnd || tok.Span.Len() != uint32(len(tok.Text)) {
				t.Errorf("span %v does not match text %q at %d", tok.Span, tok.Text, i)
			}
			prevEnd = tok.Span.End
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx := makeTestLexer("ken ik", lexer.Options{})
	p := lx.Peek()
	n := lx.Next()
	if p != n || n.Text != "ken" {
		t.Fatalf("Peek = %v, Next = %v", p, n)
	}
	lx.Next()
	lx.Next()
	if eof := lx.Next(); eof.Kind != token.EOF {
		t.Fatalf("expected EOF, got %v", eof.Kind)
	}
	if eof := lx.Next(); eof.Kind != token.EOF {
		t.Fatalf("EOF must be sticky, got %v", eof.Kind)
	}
}
