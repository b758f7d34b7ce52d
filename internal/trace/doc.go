// Package trace records compiler activity as begin/end spans and point
// events, for diagnosing slow builds.
//
// Enable it from the CLI:
//
//	lumen build --trace=- --trace-level=detail
//
// Tracers:
//
//   - Nop: disabled tracing
//   - StreamTracer: writes each event immediately (text or NDJSON)
//   - RingTracer: keeps the last N events for a dump on failure
//   - MultiTracer: fans out to several tracers
//
// Levels select scopes: LevelPhase emits driver and per-file spans,
// LevelDetail adds lex/parse/generate passes, LevelDebug adds point events
// such as cache hits. LevelError records nothing up front; the CLI dumps the
// ring buffer when a command fails.
//
// Tracers travel through the pipeline on the context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", parentID)
//	defer span.End("")
package trace
