// Package chunk defines the output contract of a diff: an ordered list of
// spans classifying how atoms from the left and right sides line up.
//
// Role: the Go analogue of struct diff_chunk / struct diff_result from the
// original C implementation. A Kind of Unsolved is an internal-only,
// ephemeral marker used while the algorithm framework is still dispatching
// sub-problems to inner algorithms; it must never appear in a Result
// returned to a caller.
package chunk
