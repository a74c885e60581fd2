// Package casing classifies the capitalisation shape of a word and re-applies a
// shape to replacement text. Rules follow Dutch orthography: the digraph "ij"
// capitalises as a unit ("IJsland"), and a leading clitic ('t, 's) stays lowercase
// while the following word takes the capital.
//
// All functions are safe for concurrent use; casers from golang.org/x/text/cases
// are created per call because they carry state.
package casing
