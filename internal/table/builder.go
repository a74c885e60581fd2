package table

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"haags/internal/casing"
)

// Builder collects entries in definition order and produces a Table.
// A Builder is not safe for concurrent use.
type Builder struct {
	entries []Entry
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{entries: make([]Entry, 0, 64)}
}

// Add appends one correspondence. Later calls override earlier ones for the same key.
func (b *Builder) Add(source, target string, origin Origin) *Builder {
	b.entries = append(b.entries, Entry{Source: source, Target: target, Origin: origin})
	return b
}

// AddEntries appends entries in order.
func (b *Builder) AddEntries(entries ...Entry) *Builder {
	b.entries = append(b.entries, entries...)
	return b
}

// Len reports how many raw entries were added.
func (b *Builder) Len() int { return len(b.entries) }

// Build freezes the collected entries into a Table. Entries whose key or target
// is blank are skipped.
func (b *Builder) Build() *Table {
	t := &Table{root: newNode()}
	for _, e := range b.entries {
		words := KeyWords(e.Source)
		target := NormalizeTarget(e.Target)
		if len(words) == 0 || target == "" {
			continue
		}
		e.Target = target
		t.insert(words, e)
	}
	return t
}

// KeyWords splits a source form into folded lookup words.
func KeyWords(source string) []string {
	fields := strings.Fields(source)
	for i, f := range fields {
		fields[i] = casing.Fold(f)
	}
	return fields
}

// Key returns the canonical lookup key of a source form: folded words joined by
// single spaces.
func Key(source string) string {
	return strings.Join(KeyWords(source), " ")
}

// NormalizeTarget composes a target form (NFC) and collapses internal whitespace.
// Casing is kept: multi-word targets may carry capitals baked into the dataset.
func NormalizeTarget(target string) string {
	return strings.Join(strings.Fields(norm.NFC.String(target)), " ")
}
