// Package engine is the diff algorithm framework: the shared hub every
// concrete algorithm (myers, myersdivide, patience) plugs into, and the
// dispatch loop that drives them.
//
// Role: the Go analogue of diff_main.c's diff_run_algo/diff_main. An
// Algorithm is a mutable, pointer-linked descriptor (Inner, Fallback) so a
// pipeline built from several Algorithm values can form cycles — Patience
// pointing at itself, MyersDivide pointing back at the full Myers trace —
// the same way the C struct diff_algo_config example wiring in diff_main.h
// does. engine itself never imports myers/myersdivide/patience: those
// packages import engine and hand back *Algorithm values, keeping the
// dependency graph acyclic even though the runtime algorithm graph is not.
//
// Concurrency: a State is built fresh per dispatch call and is not shared
// across goroutines; engine spawns none itself. Error handling: engine
// never logs and never panics on malformed input — invalid configuration
// and allocation-size overflow are reported as ordinary errors.
package engine
