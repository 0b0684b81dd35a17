package engine

import "github.com/katalvlaran/vdiff/chunk"

// noneImpl is the trivial fallback-of-last-resort algorithm: it matches no
// atoms beyond a common prefix, emitting (at most) one equal-prefix chunk while the two
// sides happen to agree atom-for-atom at their very start, then one
// deletion chunk for whatever remains on the left and one insertion chunk
// for whatever remains on the right. It is grounded on diff_algo_none,
// which exists so dispatch always has something to run even when no
// Algorithm is configured or recursion is exhausted.
func noneImpl(st *State) (Outcome, error) {
	l, r := 0, 0
	for l < st.Left.Len() && r < st.Right.Len() && st.Left.Equal(l, st.Right, r) {
		l++
		r++
	}
	// Every chunk here is solved and survives straight into the shared
	// Result, whose Left/Right are the root views, so Start must be a
	// root-absolute index rather than local to st.Left/st.Right.
	if l > 0 {
		st.AddChunk(chunk.Chunk{
			Kind:  chunk.Equal,
			Left:  chunk.Span{Start: st.Left.RootIndex(0), Count: l},
			Right: chunk.Span{Start: st.Right.RootIndex(0), Count: r},
		})
	}
	if l < st.Left.Len() {
		st.AddChunk(chunk.Chunk{
			Kind: chunk.Delete,
			Left: chunk.Span{Start: st.Left.RootIndex(l), Count: st.Left.Len() - l},
		})
	}
	if r < st.Right.Len() {
		st.AddChunk(chunk.Chunk{
			Kind:  chunk.Insert,
			Right: chunk.Span{Start: st.Right.RootIndex(r), Count: st.Right.Len() - r},
		})
	}
	return Ok, nil
}

var noneAlgorithm = &Algorithm{Name: "none", Impl: noneImpl}

// None returns the trivial prefix-only algorithm, exported so callers can
// wire it explicitly into a custom pipeline (for instance as an
// Algorithm.Fallback terminating a chain, or to isolate its behavior in
// tests) rather than only ever reaching it implicitly via dispatch's
// nil/depth-exhausted fallthrough.
func None() *Algorithm {
	return noneAlgorithm
}
