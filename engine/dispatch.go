package engine

import "github.com/katalvlaran/vdiff/chunk"

// dispatch runs algo against st, draining its pending chunks into
// st.result and recursing into algo.Inner for any Unsolved span it leaves
// behind. It is the Go analogue of diff_run_algo.
func dispatch(algo *Algorithm, st *State) error {
	st.temp = nil

	if algo == nil || algo.Impl == nil || st.RecursionDepthLeft <= 0 {
		algo = noneAlgorithm
	}

	outcome, err := algo.Impl(st)
	if err != nil {
		return err
	}
	if outcome == UseFallback {
		return dispatch(algo.Fallback, st)
	}

	pending := st.temp
	st.temp = nil
	for _, c := range pending {
		if c.Kind != chunk.Unsolved {
			st.result.AddChunk(c)
			continue
		}
		inner := &State{
			Left:               st.Left.Sub(c.Left.Start, c.Left.Count),
			Right:              st.Right.Sub(c.Right.Start, c.Right.Count),
			RecursionDepthLeft: st.RecursionDepthLeft - 1,
			result:             st.result,
		}
		if err := dispatch(algo.Inner, inner); err != nil {
			return err
		}
	}
	return nil
}
