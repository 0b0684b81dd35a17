// Package diffdata holds the atomized view of one side of a diff.
//
// Role: a Root owns a buffer and the atom table produced by atomizing it; a
// View is a zero-copy contiguous window over a Root's atoms, the same way
// core.UnweightedView and core.InducedSubgraph derive a fresh, non-mutating
// view rather than editing their source graph in place. Unlike a pointer
// into the middle of an array (the original C diff_data's root vs.
// subsection distinction), a View in Go carries an explicit offset into the
// Root's atom slice, since Go has no raw pointer arithmetic.
//
// Concurrency: Root and View are plain data, not synchronized — callers
// computing independent diffs from independent Roots may do so concurrently
// with no shared state; a single Root/View must not be mutated and read
// concurrently.
package diffdata
