package myers

import (
	"unsafe"

	"github.com/katalvlaran/vdiff/chunk"
	"github.com/katalvlaran/vdiff/engine"
)

// New returns the full-trace Myers algorithm. permittedStateSize bounds the
// scratch memory the trace may commit to (measured as an (L+R+1) by (L+R+1)
// square of ints); zero means unlimited. When the bound would be exceeded — or the
// size computation itself would overflow — the algorithm reports
// engine.UseFallback instead of running, so dispatch can retry with
// Algorithm.Fallback.
func New(permittedStateSize int) *engine.Algorithm {
	return &engine.Algorithm{
		Name:               "myers",
		Impl:               makeImpl(permittedStateSize),
		PermittedStateSize: permittedStateSize,
	}
}

const intSize = int(unsafe.Sizeof(int(0)))

func makeImpl(permittedStateSize int) engine.Impl {
	return func(st *engine.State) (engine.Outcome, error) {
		n, m := st.Left.Len(), st.Right.Len()
		maxD := n + m
		if maxD == 0 {
			return engine.Ok, nil
		}

		kdLen := 2*maxD + 1
		stateLen := maxD + 1
		bufSize := stateLen * stateLen
		if permittedStateSize > 0 {
			if bufSize/stateLen != stateLen {
				return engine.UseFallback, nil
			}
			if bufSize*intSize > permittedStateSize {
				return engine.UseFallback, nil
			}
		}

		offset := maxD
		v := make([]int, kdLen)
		trace := make([][]int, 0, maxD+1)

		var backtrackD, backtrackK int
		found := false

	search:
		for d := 0; d <= maxD; d++ {
			row := make([]int, kdLen)
			copy(row, v)
			for k := -d; k <= d; k += 2 {
				var x int
				if k == -d || (k != d && v[k-1+offset] < v[k+1+offset]) {
					x = v[k+1+offset]
				} else {
					x = v[k-1+offset] + 1
				}
				y := x - k
				for x < n && y < m && st.Left.Equal(x, st.Right, y) {
					x++
					y++
				}
				v[k+offset] = x
				row[k+offset] = x
				if x >= n && y >= m {
					backtrackD, backtrackK = d, k
					found = true
					trace = append(trace, row)
					break search
				}
			}
			trace = append(trace, row)
		}

		if !found {
			// Every diagonal was explored up to maxD without reaching the
			// corner: unreachable for a correctly bounded d range, but
			// guard against it rather than emit a wrong answer.
			return engine.UseFallback, nil
		}

		emitOps(st, trace, backtrackD, backtrackK, n, m)
		return engine.Ok, nil
	}
}

type opKind int

const (
	opEqual opKind = iota
	opDelete
	opInsert
)

type op struct {
	kind opKind
	// for opEqual: [xStart,xEnd) and [yStart,yEnd); for opDelete: xStart is
	// the consumed left index; for opInsert: yStart is the consumed right
	// index.
	xStart, xEnd int
	yStart, yEnd int
}

// emitOps reconstructs the edit script from the recorded trace by walking
// backward from (n, m) to (0, 0), then emits it forward as coalesced
// chunks. This is a standard trace-array backtrace (store one V row per d,
// recover the predecessor diagonal at each step with the same tie-break
// used going forward); it yields the identical edit script the original's
// in-place memory-reusing backtrace does, just via a simpler data
// structure better suited to Go than the original's pointer-overwrite
// trick.
func emitOps(st *engine.State, trace [][]int, backtrackD, backtrackK, n, m int) {
	offset := n + m
	x, y := n, m
	var ops []op

	for d := backtrackD; d > 0; d-- {
		prevRow := trace[d-1]
		k := x - y

		var prevK int
		if k == -d || (k != d && prevRow[k-1+offset] < prevRow[k+1+offset]) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}
		prevX := prevRow[prevK+offset]
		prevY := prevX - prevK

		snakeX, snakeY := x, y
		for snakeX > prevX && snakeY > prevY {
			snakeX--
			snakeY--
		}
		if snakeX < x {
			ops = append(ops, op{kind: opEqual, xStart: snakeX, xEnd: x, yStart: snakeY, yEnd: y})
		}
		if snakeX == prevX+1 && snakeY == prevY {
			ops = append(ops, op{kind: opDelete, xStart: prevX})
		} else if snakeY == prevY+1 && snakeX == prevX {
			ops = append(ops, op{kind: opInsert, yStart: prevY})
		}
		x, y = prevX, prevY
	}
	if x > 0 && y > 0 {
		ops = append(ops, op{kind: opEqual, xStart: 0, xEnd: x, yStart: 0, yEnd: y})
	}

	// ops was built walking backward from the end; reverse it to forward
	// order before emitting.
	for i, j := 0, len(ops)-1; i < j; i, j = i+1, j-1 {
		ops[i], ops[j] = ops[j], ops[i]
	}

	for _, c := range coalesce(ops) {
		// coalesce works in indices local to st.Left/st.Right (0..n-1,
		// 0..m-1); a solved chunk survives into the shared Result, whose
		// Left/Right are the root views, so its Start must be translated
		// to a root-absolute index before it leaves this Impl.
		if c.Left.Count > 0 {
			c.Left.Start = st.Left.RootIndex(c.Left.Start)
		}
		if c.Right.Count > 0 {
			c.Right.Start = st.Right.RootIndex(c.Right.Start)
		}
		st.AddChunk(c)
	}
}

// coalesce merges adjacent ops of the same kind into single Chunks, which
// both keeps the result compact and sidesteps needing to replicate the
// original's section-by-section "lead-in atom" bookkeeping: merging
// adjacent same-kind spans after the fact produces the same final chunk
// sequence regardless of how finely the backtrace grouped them.
func coalesce(ops []op) []chunk.Chunk {
	var out []chunk.Chunk
	for _, o := range ops {
		switch o.kind {
		case opEqual:
			if n := len(out); n > 0 && out[n-1].Kind == chunk.Equal && out[n-1].Left.End() == o.xStart {
				out[n-1].Left.Count += o.xEnd - o.xStart
				out[n-1].Right.Count += o.yEnd - o.yStart
				continue
			}
			out = append(out, chunk.Chunk{
				Kind:  chunk.Equal,
				Left:  chunk.Span{Start: o.xStart, Count: o.xEnd - o.xStart},
				Right: chunk.Span{Start: o.yStart, Count: o.yEnd - o.yStart},
			})
		case opDelete:
			if n := len(out); n > 0 && out[n-1].Kind == chunk.Delete && out[n-1].Left.End() == o.xStart {
				out[n-1].Left.Count++
				continue
			}
			out = append(out, chunk.Chunk{Kind: chunk.Delete, Left: chunk.Span{Start: o.xStart, Count: 1}})
		case opInsert:
			if n := len(out); n > 0 && out[n-1].Kind == chunk.Insert && out[n-1].Right.End() == o.yStart {
				out[n-1].Right.Count++
				continue
			}
			out = append(out, chunk.Chunk{Kind: chunk.Insert, Right: chunk.Span{Start: o.yStart, Count: 1}})
		}
	}
	return out
}
