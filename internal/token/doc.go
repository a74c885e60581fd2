// Package token defines the segment kinds produced by the tokenizer.
// Invariants:
//   - Token.Text is exactly the input bytes covered by Token.Span (no normalisation).
//   - Concatenating Text of all tokens in order reproduces the input byte for byte.
//   - No token is empty; EOF is the only zero-width token and is never part of output.
//   - Apostrophes and hyphens inside a word belong to the Word token, since they
//     participate in correspondence-table keys ('t, z'n, e-mail).
//   - Verbatim tokens (URLs, e-mail addresses) are never looked up or rewritten.
package token
