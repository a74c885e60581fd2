// Package dataset loads correspondence data into table entries.
//
// The on-disk format is TOML. Top-level tables name categories (vowels,
// consonants, endings, contractions, loanwords) and hold quoted source forms
// mapped to target forms:
//
//	[contractions]
//	"mag het" = "maggut"
//
// Entries are returned in document order so that table.Builder applies
// last-write-wins exactly as the file reads. Categories are informational only.
//
// Sample sentence pairs live in a separate fixtures file (see ReadSamples); they
// are used to check a table, never loaded into it.
package dataset
