// Package trace provides a tracing subsystem for the crust front end.
//
// Tracing follows a run from the CLI down to individual grammar rules and
// helps to see where time goes or which rule rejected the input.
//
// # Usage
//
//	crust parse --trace=- --trace-level=phase prog.src
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: only failure points
//   - LevelPhase: driver and pass boundaries
//   - LevelDetail: per-file events
//   - LevelDebug: everything, including rule entry and exit
//
// # Scopes
//
//   - ScopeDriver: top-level CLI operations
//   - ScopePass: scan, parse, check
//   - ScopeFile: one source file
//   - ScopeRule: one grammar rule invocation
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "parse", parentID)
//	defer span.End("")
package trace
