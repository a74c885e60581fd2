package table

import (
	"slices"
	"strings"
)

// Table is an immutable correspondence table.
type Table struct {
	root    *node
	size    int
	maxLen  int
	entries []Entry
	dups    []Duplicate
}

type node struct {
	next  map[string]*node
	entry int // индекс в entries; -1 если узел не терминальный
}

func newNode() *node {
	return &node{entry: -1}
}

func (t *Table) insert(words []string, e Entry) {
	n := t.root
	for _, w := range words {
		child, ok := n.next[w]
		if !ok {
			if n.next == nil {
				n.next = make(map[string]*node, 1)
			}
			child = newNode()
			n.next[w] = child
		}
		n = child
	}

	if n.entry >= 0 {
		prev := t.entries[n.entry]
		t.dups = append(t.dups, Duplicate{
			Key:      strings.Join(words, " "),
			Previous: prev,
			Current:  e,
		})
		t.entries[n.entry] = e
		return
	}

	n.entry = len(t.entries)
	t.entries = append(t.entries, e)
	t.size++
	if len(words) > t.maxLen {
		t.maxLen = len(words)
	}
}

// Longest finds the longest key that is a prefix of words, which must already be
// folded (see KeyWords). It returns the target and the number of words matched;
// n == 0 means no key matched.
func (t *Table) Longest(words []string) (target string, n int) {
	if t == nil {
		return "", 0
	}
	cur := t.root
	best := -1
	for i, w := range words {
		next, ok := cur.next[w]
		if !ok {
			break
		}
		cur = next
		if cur.entry >= 0 {
			best = cur.entry
			n = i + 1
		}
	}
	if best < 0 {
		return "", 0
	}
	return t.entries[best].Target, n
}

// Lookup returns the target for an exact source form, folding it first.
func (t *Table) Lookup(source string) (string, bool) {
	words := KeyWords(source)
	if len(words) == 0 {
		return "", false
	}
	target, n := t.Longest(words)
	if n != len(words) {
		return "", false
	}
	return target, true
}

// MaxPhraseLen is the word count of the longest key.
func (t *Table) MaxPhraseLen() int {
	if t == nil {
		return 0
	}
	return t.maxLen
}

// Len is the number of distinct keys.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Entries returns the effective entries (winners of last-write-wins) ordered by
// their dataset position. The slice is a copy.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := slices.Clone(t.entries)
	slices.SortStableFunc(out, func(a, b Entry) int {
		return a.Origin.Index - b.Origin.Index
	})
	return out
}

// Duplicates returns every overwritten definition in the order it happened.
func (t *Table) Duplicates() []Duplicate {
	if t == nil {
		return nil
	}
	return slices.Clone(t.dups)
}
