// Package diag defines the diagnostic model shared by the dataset linter, the
// sample checker and the driver.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – Info, Warning or Error (severity.go).
//   - Code – compact numeric identifier with a stable string form (codes.go).
//   - Message – short, actionable text.
//   - Primary – source.Span pointing at the finding; may be empty when the
//     producer has no location (an entry built in memory, a missing file).
//   - Key – the normalized table key the finding is about, if any.
//   - Notes – secondary spans/messages, e.g. the earlier definition of a
//     duplicate key.
//
// Package diag does no formatting and no IO. Rendering lives in internal/diagfmt.
//
// # Emitting diagnostics
//
// Producers report through a Reporter. ReportError/ReportWarning/ReportInfo return a
// ReportBuilder that collects notes and the key before Emit. BagReporter stores
// into a bounded Bag, which supports sorting, deduplication and severity queries.
package diag
