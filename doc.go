// Package vdiff computes the shortest set of line-level edits between two
// byte buffers.
//
// The package is organized the way the underlying algorithm framework is:
//
//	atom/        — the indivisible unit a diff operates over
//	atomize/     — strategies for splitting a buffer into atoms (default: lines)
//	diffdata/    — atomized, zero-copy views over a buffer
//	chunk/       — the Equal/Delete/Insert output contract
//	engine/      — the pluggable algorithm dispatch framework
//	myers/       — full-trace Myers (minimal, quadratic memory)
//	myersdivide/ — linear-space Myers divide-and-conquer
//	patience/    — Bram Cohen's patience diff heuristic
//	format/      — plain and unified-diff renderers over a Result
//
// This root package exists only to assemble the default algorithm pipeline
// (a cyclic graph of Algorithm descriptors that no single one of the above
// packages could construct without importing all the others) and to offer
// a small facade over engine.Diff for the common case:
//
//	result, err := vdiff.Diff([]byte(oldText), []byte(newText))
//
// For anything beyond the default pipeline, construct an engine.Config
// directly.
package vdiff
