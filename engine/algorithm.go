package engine

// Outcome is the result of running a single Algorithm's Impl in isolation,
// before the dispatch loop has drained its pending chunks. It is distinct
// from chunk.Code: UseFallback is meaningful only inside dispatch and must
// never be surfaced to a caller of Diff.
type Outcome int

const (
	// Ok indicates the Impl ran to completion (it may still have left
	// Unsolved chunks behind for the dispatch loop to recurse into).
	Ok Outcome = iota
	// UseFallback indicates the Impl declined to handle this input at all
	// (for example, its scratch-space budget was too small) and dispatch
	// should retry with the Algorithm's Fallback instead.
	UseFallback
)

// Impl is the function an Algorithm runs against a State. It reports chunks
// via st.AddChunk and signals its outcome via the return value; a non-nil
// error aborts the whole diff (reserved for unrecoverable conditions such
// as scratch-buffer sizing overflow).
type Impl func(st *State) (Outcome, error)

// Algorithm is a pluggable diff strategy descriptor. It is deliberately a
// mutable struct rather than an immutable value: the default pipeline
// wires Inner and Fallback pointers after constructing the nodes, which is
// the only way to express the cyclic graphs the default composition needs
// (Patience's Inner is itself; MyersDivide's Inner is the full Myers trace)
// without a two-pass builder or forward-declared interfaces.
type Algorithm struct {
	// Name identifies the algorithm for diagnostics and tests; it plays no
	// role in dispatch semantics.
	Name string
	// Impl is the strategy's implementation. A nil Impl (or a nil
	// Algorithm) causes dispatch to fall through to None.
	Impl Impl
	// PermittedStateSize bounds how much scratch memory Impl may commit to
	// before declining via UseFallback. Zero means unlimited, matching the
	// original C struct's convention that an absent limit imposes no cap.
	PermittedStateSize int
	// Inner is the algorithm dispatch recurses into for any Unsolved chunk
	// this Algorithm's Impl leaves behind.
	Inner *Algorithm
	// Fallback is the algorithm dispatch retries with when Impl reports
	// UseFallback.
	Fallback *Algorithm
}
