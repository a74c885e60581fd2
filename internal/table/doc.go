// Package table holds the correspondence table: an immutable mapping from
// case-folded source forms (one or more words) to target forms.
//
// A Table is built once through Builder and never mutated afterwards, so a single
// *Table may be shared by any number of goroutines without locking. Keys are stored
// in a trie over words: a longest-match lookup walks one node per word instead of
// re-joining candidate phrases.
//
// Duplicate source forms resolve last-write-wins. Each overwritten definition is
// kept as a Duplicate so lint tooling can report it; the table itself never fails.
package table
