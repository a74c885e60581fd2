package lint

import (
	"fmt"
	"strings"

	"haags/internal/casing"
	"haags/internal/dataset"
	"haags/internal/diag"
	"haags/internal/lexer"
	"haags/internal/source"
	"haags/internal/table"
	"haags/internal/token"
)

// Options configures a lint run.
type Options struct {
	// File is the dataset text the entries were parsed from. When set, findings
	// point at the key of the offending entry.
	File *source.File
	// Phrases enables the redundant-phrase check.
	Phrases bool
}

// Stats summarizes a lint run.
type Stats struct {
	Entries    int // raw entries seen
	Keys       int // distinct keys in the built table
	Duplicates int
}

type linter struct {
	r       diag.Reporter
	entries []table.Entry
	spans   []dataset.KeySpan
}

// Run checks entries, in dataset order, and reports findings to r.
func Run(entries []table.Entry, r diag.Reporter, opts Options) Stats {
	l := &linter{r: r, entries: entries, spans: dataset.KeySpans(opts.File)}
	tbl := table.NewBuilder().AddEntries(entries...).Build()

	for i := range entries {
		e := &entries[i]
		if l.checkEmpty(e) {
			continue
		}
		l.checkWhitespace(e)
		l.checkSelfMapping(e)
		l.checkReachable(e)
	}
	dups := tbl.Duplicates()
	for _, d := range dups {
		l.checkDuplicate(d)
	}
	if opts.Phrases {
		for _, e := range tbl.Entries() {
			l.checkPhrase(tbl, e)
		}
	}

	return Stats{Entries: len(entries), Keys: tbl.Len(), Duplicates: len(dups)}
}

// span locates e in the dataset file, or returns source.NoSpan.
func (l *linter) span(e table.Entry) source.Span {
	i := e.Origin.Index
	if i < 0 || i >= len(l.spans) || l.spans[i].Key != e.Source {
		return source.NoSpan
	}
	return l.spans[i].Span
}

func (l *linter) checkEmpty(e *table.Entry) bool {
	switch {
	case strings.TrimSpace(e.Source) == "":
		diag.ReportError(l.r, diag.DataEmptyForm, l.span(*e),
			fmt.Sprintf("empty source form in %s", describe(*e))).
			Emit()
		return true
	case strings.TrimSpace(e.Target) == "":
		diag.ReportError(l.r, diag.DataEmptyForm, l.span(*e),
			fmt.Sprintf("empty target form in %s; the entry is ignored", describe(*e))).
			WithKey(table.Key(e.Source)).
			Emit()
		return true
	}
	return false
}

func (l *linter) checkWhitespace(e *table.Entry) {
	if strings.Join(strings.Fields(e.Source), " ") == e.Source {
		return
	}
	diag.ReportInfo(l.r, diag.DataUntrimmedSource, l.span(*e),
		fmt.Sprintf("source form %q has irregular whitespace; it is looked up as %q", e.Source, table.Key(e.Source))).
		WithKey(table.Key(e.Source)).
		Emit()
}

func (l *linter) checkSelfMapping(e *table.Entry) {
	key := table.Key(e.Source)
	if casing.Fold(table.NormalizeTarget(e.Target)) != key {
		return
	}
	diag.ReportInfo(l.r, diag.DataSelfMapping, l.span(*e),
		"entry maps to itself; it only blocks shorter matches").
		WithKey(key).
		Emit()
}

// checkReachable flags keys the tokenizer would not split into plain words
// separated by single whitespace tokens. Such keys never match.
func (l *linter) checkReachable(e *table.Entry) {
	key := table.Key(e.Source)
	for i, tok := range lexer.Tokenize(key) {
		if i%2 == 0 && tok.Kind == token.Word {
			continue
		}
		if i%2 == 1 && tok.Kind == token.Whitespace {
			continue
		}
		diag.ReportWarning(l.r, diag.DataUnreachableKey, l.span(*e),
			fmt.Sprintf("source form can never be matched: %q is read as %s", tok.Text, tok.Kind)).
			WithKey(key).
			Emit()
		return
	}
}

func (l *linter) checkDuplicate(d table.Duplicate) {
	var b *diag.ReportBuilder
	if d.Conflicting() {
		b = diag.ReportError(l.r, diag.DataDuplicateKey, l.span(d.Current),
			fmt.Sprintf("%s redefines %q with a different target %q (was %q)",
				describe(d.Current), d.Key, d.Current.Target, d.Previous.Target))
	} else {
		b = diag.ReportWarning(l.r, diag.DataDuplicateKey, l.span(d.Current),
			fmt.Sprintf("%s redefines %q with the same target", describe(d.Current), d.Key))
	}
	b.WithKey(d.Key).
		WithNote(l.span(d.Previous), fmt.Sprintf("previous definition in %s", describe(d.Previous))).
		Emit()
}

// checkPhrase reports phrase entries whose target is exactly what translating the
// words one by one would produce.
func (l *linter) checkPhrase(tbl *table.Table, e table.Entry) {
	words := table.KeyWords(e.Source)
	if len(words) < 2 {
		return
	}
	parts := make([]string, len(words))
	for i, w := range words {
		target, ok := tbl.Lookup(w)
		if !ok {
			target = w
		}
		parts[i] = target
	}
	if casing.Fold(strings.Join(parts, " ")) != casing.Fold(e.Target) {
		return
	}
	diag.ReportInfo(l.r, diag.DataShadowedPhrase, l.span(e),
		"phrase target equals its word-by-word translation; the entry can be removed").
		WithKey(strings.Join(words, " ")).
		Emit()
}

func describe(e table.Entry) string {
	if e.Origin.Category == "" {
		return fmt.Sprintf("entry #%d", e.Origin.Index+1)
	}
	return fmt.Sprintf("[%s] entry #%d", e.Origin.Category, e.Origin.Index+1)
}
