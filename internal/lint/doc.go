// Package lint checks a correspondence dataset for data-quality problems and
// reports them as diag diagnostics.
//
// Checks never change the table: last-write-wins still decides which duplicate
// applies at runtime. Lint only makes the conflict visible.
package lint
