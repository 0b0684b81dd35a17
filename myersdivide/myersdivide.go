package myersdivide

import (
	"unsafe"

	"github.com/katalvlaran/vdiff/chunk"
	"github.com/katalvlaran/vdiff/diffdata"
	"github.com/katalvlaran/vdiff/engine"
)

// New returns the linear-space Myers divide-and-conquer algorithm.
// permittedStateSize bounds the two O(L+R)-sized scratch arrays the search
// needs; zero means unlimited. As with myers.New, exceeding the budget (or
// overflowing the size computation) reports engine.UseFallback rather than
// running.
func New(permittedStateSize int) *engine.Algorithm {
	return &engine.Algorithm{
		Name:               "myers-divide",
		Impl:               makeImpl(permittedStateSize),
		PermittedStateSize: permittedStateSize,
	}
}

const intSize = int(unsafe.Sizeof(int(0)))

func makeImpl(permittedStateSize int) engine.Impl {
	return func(st *engine.State) (engine.Outcome, error) {
		n, m := st.Left.Len(), st.Right.Len()

		if n == 0 || m == 0 {
			emitTrivial(st, n, m)
			return engine.Ok, nil
		}

		maxD := n + m
		arrLen := 2*maxD + 1
		if permittedStateSize > 0 {
			total := 2 * arrLen
			if total/2 != arrLen {
				return engine.UseFallback, nil
			}
			if total*intSize > permittedStateSize {
				return engine.UseFallback, nil
			}
		}

		snake, ok := findMiddleSnake(st.Left, st.Right, n, m, maxD)
		if !ok {
			return engine.UseFallback, nil
		}

		emitSection(st, st.Left, st.Right, 0, snake.x0, 0, snake.y0)
		// The middle "snake" the search agrees on can be empty: when the
		// optimal path's middle move is itself the deciding edge, x0==x1
		// and y0==y1. Only a real run of matching atoms is an Equal chunk.
		if snake.x1 > snake.x0 {
			st.AddChunk(chunk.Chunk{
				Kind:  chunk.Equal,
				Left:  chunk.Span{Start: st.Left.RootIndex(snake.x0), Count: snake.x1 - snake.x0},
				Right: chunk.Span{Start: st.Right.RootIndex(snake.y0), Count: snake.y1 - snake.y0},
			})
		}
		emitSection(st, st.Left, st.Right, snake.x1, n, snake.y1, m)

		return engine.Ok, nil
	}
}

// emitTrivial handles the base case where one side (or both) is empty:
// there is nothing to divide, so the whole remaining span is a single
// solved deletion and/or insertion. Delete/Insert chunks are solved and
// therefore reported at root-absolute index, unlike Unsolved spans.
func emitTrivial(st *engine.State, n, m int) {
	if n > 0 {
		st.AddChunk(chunk.Chunk{Kind: chunk.Delete, Left: chunk.Span{Start: st.Left.RootIndex(0), Count: n}})
	}
	if m > 0 {
		st.AddChunk(chunk.Chunk{Kind: chunk.Insert, Right: chunk.Span{Start: st.Right.RootIndex(0), Count: m}})
	}
}

// emitSection reports the span left[lStart,lEnd) vs right[rStart,rEnd) as
// Unsolved (for the dispatch framework to recurse into) when both sides
// are non-empty, or as a direct solved Delete/Insert when only one side
// has remaining atoms, or emits nothing when both are empty. lStart/rStart
// are local to left/right; dispatch's Sub call needs them local for an
// Unsolved span, but a solved Delete/Insert is reported root-absolute
// since it survives straight into the shared Result.
func emitSection(st *engine.State, left, right diffdata.View, lStart, lEnd, rStart, rEnd int) {
	lCount, rCount := lEnd-lStart, rEnd-rStart
	switch {
	case lCount > 0 && rCount > 0:
		st.AddChunk(chunk.Chunk{
			Kind:  chunk.Unsolved,
			Left:  chunk.Span{Start: lStart, Count: lCount},
			Right: chunk.Span{Start: rStart, Count: rCount},
		})
	case lCount > 0:
		st.AddChunk(chunk.Chunk{Kind: chunk.Delete, Left: chunk.Span{Start: left.RootIndex(lStart), Count: lCount}})
	case rCount > 0:
		st.AddChunk(chunk.Chunk{Kind: chunk.Insert, Right: chunk.Span{Start: right.RootIndex(rStart), Count: rCount}})
	}
}

// midSnake describes a run of matching atoms [x0,x1) on the left against
// [y0,y1) on the right.
type midSnake struct {
	x0, y0, x1, y1 int
}

// findMiddleSnake runs the alternating forward/backward bidirectional
// search and returns the first common snake both directions agree lies on
// an optimal path, or ok=false if none is found by step d = maxD/2+1 (which
// should not happen for a correctly bounded search, but is treated as a
// signal to fall back rather than risk an incorrect result).
func findMiddleSnake(left, right diffdata.View, n, m, maxD int) (midSnake, bool) {
	if maxD == 0 {
		return midSnake{}, false
	}
	delta := n - m
	deltaOdd := delta%2 != 0

	offset := maxD
	fwd := make([]int, 2*maxD+1)
	bwd := make([]int, 2*maxD+1)

	rounds := maxD/2 + 1

	for d := 0; d <= rounds; d++ {
		for k := -d; k <= d; k += 2 {
			x0, y0, x, y := forwardStep(left, right, fwd, offset, n, m, k, d)
			fwd[k+offset] = x
			if deltaOdd && d >= 1 {
				c := delta - k
				if c >= -(d-1) && c <= d-1 {
					xbFwd := n - bwd[c+offset]
					if x >= xbFwd {
						return midSnake{x0: x0, y0: y0, x1: x, y1: y}, true
					}
				}
			}
		}

		for c := -d; c <= d; c += 2 {
			xb0, yb0, xb, yb := backwardStep(left, right, bwd, offset, n, m, c, d)
			bwd[c+offset] = xb
			if !deltaOdd {
				k := delta - c
				if k >= -d && k <= d {
					xFwd := fwd[k+offset]
					xbFwd := n - xb
					if xFwd >= xbFwd {
						sx, sy := n-xb, m-yb
						ex, ey := n-xb0, m-yb0
						return midSnake{x0: sx, y0: sy, x1: ex, y1: ey}, true
					}
				}
			}
		}
	}

	return midSnake{}, false
}

// forwardStep advances the forward search one diagonal k at distance d,
// sliding through any matching atoms. It returns the pre-slide and
// post-slide (x,y) coordinates. Ties between predecessor diagonals are
// broken toward k-1 (a deletion), matching the framework's convention.
func forwardStep(left, right diffdata.View, fwd []int, offset, n, m, k, d int) (x0, y0, x, y int) {
	if k == -d || (k != d && fwd[k-1+offset] < fwd[k+1+offset]) {
		x = fwd[k+1+offset]
	} else {
		x = fwd[k-1+offset] + 1
	}
	y = x - k
	x0, y0 = x, y
	for x < n && y < m && left.Equal(x, right, y) {
		x++
		y++
	}
	return x0, y0, x, y
}

// backwardStep advances the backward search one reverse-diagonal c at
// distance d, sliding through matching atoms from the end inward. xb/yb
// are counts of atoms consumed from the end of left/right respectively
// (so the actual forward position is (n-xb, m-yb)). Ties are broken toward
// c-1 (consuming one more atom from the end of the left side), the
// backward-search mirror of the forward tie-break.
func backwardStep(left, right diffdata.View, bwd []int, offset, n, m, c, d int) (xb0, yb0, xb, yb int) {
	if c == -d || (c != d && bwd[c-1+offset] < bwd[c+1+offset]) {
		xb = bwd[c+1+offset]
	} else {
		xb = bwd[c-1+offset] + 1
	}
	yb = xb - c
	xb0, yb0 = xb, yb
	for xb < n && yb < m && left.Equal(n-1-xb, right, m-1-yb) {
		xb++
		yb++
	}
	return xb0, yb0, xb, yb
}
