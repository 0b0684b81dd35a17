package patience

import (
	"sort"

	"github.com/katalvlaran/vdiff/chunk"
	"github.com/katalvlaran/vdiff/diffdata"
	"github.com/katalvlaran/vdiff/engine"
)

// New returns the patience diff algorithm. Its Inner is wired to itself:
// patience's own gaps between anchors are, by construction, smaller
// sub-problems of the same shape, and recursing into another patience pass
// is how the algorithm refines down to its base case (a gap with no
// common-unique atom left, at which point that gap reports UseFallback and
// dispatch moves on to whatever Fallback was configured). Fallback is left
// nil for the caller to wire (the default pipeline points it at
// myersdivide).
func New() *engine.Algorithm {
	algo := &engine.Algorithm{Name: "patience", Impl: impl}
	algo.Inner = algo
	return algo
}

// sideState is patience's own per-atom scratch bookkeeping, deliberately
// kept separate from atom.Atom (see DESIGN.md: the original C source
// itself carries a TODO asking for exactly this split).
type sideState struct {
	uniqueHere     []bool
	uniqueInBoth   []bool
	posInOther     []int
	identicalStart []int
	identicalLen   []int
}

func newSideState(n int) *sideState {
	return &sideState{
		uniqueHere:     make([]bool, n),
		uniqueInBoth:   make([]bool, n),
		posInOther:     make([]int, n),
		identicalStart: make([]int, n),
		identicalLen:   make([]int, n),
	}
}

func impl(st *engine.State) (engine.Outcome, error) {
	left, right := st.Left, st.Right
	if left.Len() == 0 || right.Len() == 0 {
		return engine.UseFallback, nil
	}

	leftSt, rightSt := markUniqueInBoth(left, right)
	swallowIdenticalNeighbors(left, right, leftSt, rightSt)

	var uniques []int
	for i := 0; i < left.Len(); i++ {
		if leftSt.uniqueInBoth[i] {
			uniques = append(uniques, i)
		}
	}
	if len(uniques) == 0 {
		return engine.UseFallback, nil
	}

	lcs := patienceLCS(uniques, leftSt)
	emit(st, left, right, leftSt, rightSt, lcs)
	return engine.Ok, nil
}

// markUnique flags every atom in v that has no byte-identical duplicate
// elsewhere in v.
func markUnique(v diffdata.View) []bool {
	n := v.Len()
	uniq := make([]bool, n)
	for i := range uniq {
		uniq[i] = true
	}
	for i := 0; i < n; i++ {
		if !uniq[i] {
			continue
		}
		for j := i + 1; j < n; j++ {
			if v.Equal(i, v, j) {
				uniq[i] = false
				uniq[j] = false
			}
		}
	}
	return uniq
}

// markUniqueInBoth pairs up atoms that are unique on their own side and
// equal to exactly one atom, itself unique, on the other side.
func markUniqueInBoth(left, right diffdata.View) (*sideState, *sideState) {
	leftUniq := markUnique(left)
	rightUniq := markUnique(right)

	leftSt := newSideState(left.Len())
	rightSt := newSideState(right.Len())
	leftSt.uniqueHere = leftUniq
	rightSt.uniqueHere = rightUniq

	for i := 0; i < left.Len(); i++ {
		if !leftUniq[i] {
			continue
		}
		matches := 0
		matchJ := -1
		for j := 0; j < right.Len(); j++ {
			if !left.Equal(i, right, j) {
				continue
			}
			if !rightUniq[j] {
				// The right-side atom equal to this one isn't even unique
				// on its own side: this left atom cannot be confidently
				// anchored, so treat it as ambiguous and stop looking.
				matches = 2
				break
			}
			matches++
			matchJ = j
			if matches > 1 {
				break
			}
		}
		if matches == 1 {
			leftSt.uniqueInBoth[i] = true
			leftSt.posInOther[i] = matchJ
			// A left atom unique on its own side can equal at most one
			// right atom unique on its own side (otherwise that right
			// atom itself wouldn't be unique-here), so this mapping is
			// injective and the mirror link can be set directly.
			rightSt.uniqueInBoth[matchJ] = true
			rightSt.posInOther[matchJ] = i
		}
	}

	return leftSt, rightSt
}

// swallowIdenticalNeighbors extends each common-unique anchor's span to
// absorb immediately adjacent matching atoms (unique or not), so that a
// long run of identical lines around a unique landmark is reported as one
// Equal chunk instead of being fragmented. Any other common-unique atom
// caught inside an extension is folded into the anchor and loses its own
// anchor status.
func swallowIdenticalNeighbors(left, right diffdata.View, leftSt, rightSt *sideState) {
	lMin, rMin := 0, 0
	for i := 0; i < left.Len(); i++ {
		if !leftSt.uniqueInBoth[i] {
			continue
		}
		j := leftSt.posInOther[i]

		upL, upR := i, j
		for upL-1 >= lMin && upR-1 >= rMin && left.Equal(upL-1, right, upR-1) {
			upL--
			upR--
		}

		downL, downR := i, j
		for downL+1 < left.Len() && downR+1 < right.Len() && left.Equal(downL+1, right, downR+1) {
			downL++
			downR++
			if downL != i && leftSt.uniqueInBoth[downL] {
				leftSt.uniqueInBoth[downL] = false
				rightSt.uniqueInBoth[downR] = false
			}
		}

		leftSt.identicalStart[i] = upL
		leftSt.identicalLen[i] = downL - upL + 1
		rightSt.identicalStart[j] = upR
		rightSt.identicalLen[j] = downR - upR + 1

		lMin = downL + 1
		rMin = downR + 1
	}
}

// patienceLCS runs a patience-sort over uniques (left indices, in
// left-to-right order), keyed by each anchor's position on the right side,
// and returns the longest increasing subsequence of anchors in left-order.
func patienceLCS(uniques []int, leftSt *sideState) []int {
	var stackTops []int
	prevStack := make(map[int]int, len(uniques))

	for _, li := range uniques {
		posOther := leftSt.posInOther[li]
		target := sort.Search(len(stackTops), func(s int) bool {
			return leftSt.posInOther[stackTops[s]] >= posOther
		})
		if target > 0 {
			prevStack[li] = stackTops[target-1]
		} else {
			prevStack[li] = -1
		}
		if target == len(stackTops) {
			stackTops = append(stackTops, li)
		} else {
			stackTops[target] = li
		}
	}

	if len(stackTops) == 0 {
		return nil
	}

	var lcs []int
	for cur := stackTops[len(stackTops)-1]; cur != -1; cur = prevStack[cur] {
		lcs = append(lcs, cur)
	}
	for i, j := 0, len(lcs)-1; i < j; i, j = i+1, j-1 {
		lcs[i], lcs[j] = lcs[j], lcs[i]
	}
	return lcs
}

// emit walks the LCS (plus one virtual final iteration representing the
// trailing gap) emitting, for each: a gap chunk before the anchor, then
// the anchor's own (possibly neighbor-extended) Equal span.
func emit(st *engine.State, left, right diffdata.View, leftSt, rightSt *sideState, lcs []int) {
	leftPos, rightPos := 0, 0
	for idx := 0; idx <= len(lcs); idx++ {
		sentinel := idx == len(lcs)

		var gapLEnd, gapREnd int
		if sentinel {
			gapLEnd, gapREnd = left.Len(), right.Len()
		} else {
			li := lcs[idx]
			j := leftSt.posInOther[li]
			gapLEnd = leftSt.identicalStart[li]
			gapREnd = rightSt.identicalStart[j]
		}

		emitGap(st, leftPos, gapLEnd, rightPos, gapREnd)

		if sentinel {
			leftPos, rightPos = gapLEnd, gapREnd
			continue
		}

		li := lcs[idx]
		j := leftSt.posInOther[li]
		lLen := leftSt.identicalLen[li]
		rLen := rightSt.identicalLen[j]
		st.AddChunk(chunk.Chunk{
			Kind:  chunk.Equal,
			Left:  chunk.Span{Start: left.RootIndex(gapLEnd), Count: lLen},
			Right: chunk.Span{Start: right.RootIndex(gapREnd), Count: rLen},
		})
		leftPos = gapLEnd + lLen
		rightPos = gapREnd + rLen
	}
}

// emitGap reports the gap left[lStart,lEnd) vs right[rStart,rEnd) between
// two anchors (or before the first / after the last). lStart/rStart are
// local to st.Left/st.Right; dispatch's Sub call needs them local for an
// Unsolved span, but a solved Delete/Insert is reported root-absolute
// since it survives straight into the shared Result.
func emitGap(st *engine.State, lStart, lEnd, rStart, rEnd int) {
	lCount, rCount := lEnd-lStart, rEnd-rStart
	switch {
	case lCount > 0 && rCount > 0:
		st.AddChunk(chunk.Chunk{
			Kind:  chunk.Unsolved,
			Left:  chunk.Span{Start: lStart, Count: lCount},
			Right: chunk.Span{Start: rStart, Count: rCount},
		})
	case lCount > 0:
		st.AddChunk(chunk.Chunk{Kind: chunk.Delete, Left: chunk.Span{Start: st.Left.RootIndex(lStart), Count: lCount}})
	case rCount > 0:
		st.AddChunk(chunk.Chunk{Kind: chunk.Insert, Right: chunk.Span{Start: st.Right.RootIndex(rStart), Count: rCount}})
	}
}
