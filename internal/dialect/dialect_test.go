package dialect

import (
	"testing"

	"haags/internal/lexer"
	"haags/internal/table"
)

func testVocabulary() *Vocabulary {
	tbl := table.NewBuilder().
		Add("groot", "graut", table.Origin{Index: 0}).
		Add("het", "ut", table.Origin{Index: 1}).
		Add("jou", "jâh", table.Origin{Index: 2}).
		Add("ken ik", "kennik", table.Origin{Index: 3}).
		Add("dat is", "dattis", table.Origin{Index: 4}).
		Add("is", "is", table.Origin{Index: 5}).
		Add("mijn", "mèn huis", table.Origin{Index: 6}).
		Build()
	return NewVocabulary(tbl)
}

func classify(text string) Classification {
	return Classifier{}.Classify(Observe(lexer.Tokenize(text), testVocabulary()))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		kind  Kind
		score int
	}{
		{"dutch", "Het is groot, ken ik jou?", Dutch, 4},
		{"haags", "Ut is graut, kennik jâh?", Haags, 8},
		{"grapheme only", "Bùiten in de kâhd", Haags, 2},
		{"no signals", "Hallo daar", Unknown, 0},
		{"empty", "", Unknown, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.text)
			if got.Kind != tt.kind || got.Score != tt.score {
				t.Fatalf("Classify(%q) = %v/%d, want %v/%d", tt.text, got.Kind, got.Score, tt.kind, tt.score)
			}
		})
	}
}

func TestVocabularyKeepsSourcesDutch(t *testing.T) {
	v := testVocabulary()
	// "is" is a source, so a target spelled the same never counts as Haags
	if v.haags["is"] || !v.dutch["is"] {
		t.Fatal("a source word must stay Dutch")
	}
	// multi-word targets are skipped; phrase sources never become Dutch words
	if v.haags["mèn huis"] || v.dutch["ken ik"] {
		t.Fatal("phrases must not enter the word sets")
	}
	if !v.haags["kennik"] || !v.haags["jâh"] {
		t.Fatal("single-word targets should be Haags")
	}
}

func TestClassificationThresholds(t *testing.T) {
	c := classify("Ut is graut, ken ik het?")
	if c.Kind != Haags || c.RunnerUp != Dutch {
		t.Fatalf("unexpected classification %+v", c)
	}
	if c.Is(Haags, 4, 0.9) {
		t.Fatalf("mixed text must not pass a strict threshold: %+v", c)
	}
	if !c.Is(Haags, 4, 0.5) {
		t.Fatalf("expected Haags above a loose threshold: %+v", c)
	}
	if !c.First.Known() || c.First.Start != 0 {
		t.Fatalf("first Haags hint should point at %q, got %v", "Ut", c.First)
	}
}
