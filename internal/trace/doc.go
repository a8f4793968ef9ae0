// Package trace emits structured events describing a cat run.
//
// Tracing is off by default. It is enabled from the command line:
//
//	cat --trace=- --trace-level=source a.txt b.txt
//
// # Levels
//
//   - LevelOff: nothing is emitted
//   - LevelRun: one span for the whole run
//   - LevelSource: additionally one span per operand, plus point events
//     for operands that failed
//
// # Context Propagation
//
// The driver receives its tracer through the context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopeSource, name, parentID)
//	defer span.End("")
package trace
