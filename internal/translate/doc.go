// Package translate rewrites a token sequence into dialect text using a
// correspondence table.
//
// Matching is longest-match-first, left to right, and never overlaps. A phrase may
// span several Word tokens separated by exactly one Whitespace token each; any
// punctuation, number, verbatim token or end of input closes the segment. Everything
// that is not consumed by a match is copied through byte for byte.
//
// A Translator holds only a reference to an immutable table.Table, so one value can
// serve concurrent calls; every call works on its own buffers.
package translate
