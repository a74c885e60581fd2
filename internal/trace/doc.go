// Package trace provides leveled tracing for haags runs.
//
// Tracing answers "where did the time go" and "which file is it stuck on" without
// touching the translation output. It is off by default.
//
// # Usage
//
//	haags translate --trace=- --trace-level=file docs/*.txt
//
// # Tracers
//
//   - Nop: zero-overhead tracer used when tracing is disabled
//   - StreamTracer: writes every event immediately (file or stderr)
//   - RingTracer: keeps the last N events in memory, dumped on failure
//   - both mode: a stream tracer and a ring fed from one fan-out
//
// # Levels and scopes
//
// Every event has a Scope; the Level decides which scopes are emitted:
//
//   - LevelStage: command and stage boundaries (load table, translate, write)
//   - LevelFile: plus one span per input file
//   - LevelDebug: plus point events for table matches and cache failures
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeStage, "load-table", 0)
//	defer span.End("")
package trace
