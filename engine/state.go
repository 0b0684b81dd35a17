package engine

import (
	"github.com/katalvlaran/vdiff/chunk"
	"github.com/katalvlaran/vdiff/diffdata"
)

// State is the working context a single Algorithm.Impl invocation runs
// against: the subsection of each side currently under consideration, how
// much recursion budget remains, and the chunk sink it reports through.
// Diff creates the top-level State, and dispatch creates a fresh one for
// every recursive descent into an Inner algorithm; a Fallback runs against
// the same State as the algorithm that declined. A State must not be
// retained past the Impl call it was passed to.
type State struct {
	Left  diffdata.View
	Right diffdata.View
	// RecursionDepthLeft is decremented by dispatch on every descent into
	// an Inner algorithm; reaching zero forces a fall-through to None
	// rather than erroring, matching the original framework's choice to
	// degrade gracefully under pathological recursion rather than fail.
	RecursionDepthLeft int

	result *chunk.Result
	temp   []chunk.Chunk
}

// AddChunk reports a chunk produced by the running Impl. Solved chunks
// (Equal/Delete/Insert) are appended directly to the final result as long
// as no Unsolved chunk is currently pending ahead of them in this
// invocation's buffer; once an Unsolved chunk has been buffered, every
// subsequent chunk (solved or not) is buffered alongside it so that
// dispatch can recurse into the unsolved span at the correct point in
// output order. This mirrors diff_state_add_chunk's
// "solved && !temp_result.len" direct-emit optimization.
func (st *State) AddChunk(c chunk.Chunk) {
	if c.Kind != chunk.Unsolved && len(st.temp) == 0 {
		st.result.AddChunk(c)
		return
	}
	st.temp = append(st.temp, c)
}
