package fuzztests

import (
	"testing"

	"haags/internal/dataset"
	"haags/internal/lexer"
	"haags/internal/source"
	"haags/internal/table"
	"haags/internal/token"
	"haags/internal/translate"
)

// FuzzTranslateIdentity checks that a table without entries reproduces any input.
func FuzzTranslateIdentity(f *testing.F) {
	addCorpusSeeds(f)
	empty := table.NewBuilder().Build()
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		if got := translate.New(empty).TranslateString(string(input)); got != string(input) {
			t.Fatalf("identity broken: %q -> %q", input, got)
		}
	})
}

// FuzzTranslateDefaultTable checks that only words change: every segment that is
// not a Word comes out unchanged and in order.
func FuzzTranslateDefaultTable(f *testing.F) {
	addCorpusSeeds(f)
	tbl, err := dataset.DefaultTable()
	if err != nil {
		f.Fatalf("default table: %v", err)
	}
	tr := translate.New(tbl)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.txt", input))
		tokens := lexer.TokenizeFile(file, lexer.Options{})

		res := tr.Run(tokens)
		if res.Translated > res.Words {
			t.Fatalf("translated %d of %d words", res.Translated, res.Words)
		}
		if len(res.Matches) == 0 && res.Output != token.Join(tokens) {
			t.Fatalf("output changed without matches: %q -> %q", input, res.Output)
		}
	})
}
