// Package dialect tells standard Dutch input from text that is already written
// in the Hague dialect.
//
// Translation is not idempotent: running Haags text through the table again
// rewrites it further. Evidence collected here lets callers warn about such
// input; it never changes what the translator does.
package dialect
