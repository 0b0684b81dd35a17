package format

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/vdiff/chunk"
)

// lineOp is one flattened, atom-granular line of a result: the unit unified
// hunks are grouped over. leftLine/rightLine are 1-based positions in their
// respective sides' atom sequence; a line that isn't present on a side
// carries 0 there.
type lineOp struct {
	kind      chunk.Kind
	leftLine  int
	rightLine int
	text      string
}

func flatten(result *chunk.Result) []lineOp {
	var ops []lineOp
	var l, r int
	for _, c := range result.Chunks {
		switch c.Kind {
		case chunk.Equal:
			for i := 0; i < c.Left.Count; i++ {
				l++
				r++
				ops = append(ops, lineOp{chunk.Equal, l, r, cleanLine(result.Left.AtomBytes(c.Left.Start + i))})
			}
		case chunk.Delete:
			for i := 0; i < c.Left.Count; i++ {
				l++
				ops = append(ops, lineOp{chunk.Delete, l, 0, cleanLine(result.Left.AtomBytes(c.Left.Start + i))})
			}
		case chunk.Insert:
			for i := 0; i < c.Right.Count; i++ {
				r++
				ops = append(ops, lineOp{chunk.Insert, 0, r, cleanLine(result.Right.AtomBytes(c.Right.Start + i))})
			}
		}
	}
	return ops
}

// hunk is a contiguous window of lineOp, including leading/trailing context,
// ready to be rendered as a single "@@ ... @@" block.
type hunk struct {
	ops             []lineOp
	leftStart       int
	leftCount       int
	rightStart      int
	rightCount      int
}

// groupHunks partitions ops into hunks, keeping up to contextLines of equal
// context around each run of changes and merging runs whose gap is small
// enough that their contexts would otherwise overlap.
func groupHunks(ops []lineOp, contextLines int) []hunk {
	var changeIdx []int
	for i, op := range ops {
		if op.kind != chunk.Equal {
			changeIdx = append(changeIdx, i)
		}
	}
	if len(changeIdx) == 0 {
		return nil
	}

	// changeSpans holds the minimal [start,end) index ranges covering each
	// run of changes, merged whenever two runs are close enough that their
	// surrounding context would otherwise overlap.
	var changeSpans [][2]int
	for _, idx := range changeIdx {
		if n := len(changeSpans); n > 0 && idx-changeSpans[n-1][1] <= 2*contextLines {
			changeSpans[n-1][1] = idx + 1
			continue
		}
		changeSpans = append(changeSpans, [2]int{idx, idx + 1})
	}

	hunks := make([]hunk, 0, len(changeSpans))
	for _, g := range changeSpans {
		start, end := g[0]-contextLines, g[1]+contextLines
		if start < 0 {
			start = 0
		}
		if end > len(ops) {
			end = len(ops)
		}
		h := hunk{ops: ops[start:end]}
		for _, op := range h.ops {
			switch op.kind {
			case chunk.Equal:
				h.leftCount++
				h.rightCount++
			case chunk.Delete:
				h.leftCount++
			case chunk.Insert:
				h.rightCount++
			}
		}
		if len(h.ops) > 0 {
			h.leftStart, h.rightStart = firstLines(h.ops)
		}
		hunks = append(hunks, h)
	}
	return hunks
}

// firstLines returns the 1-based left/right line number the hunk opens at,
// scanning forward past any leading insert-only or delete-only lines to
// find a real position on each side.
func firstLines(ops []lineOp) (left, right int) {
	for _, op := range ops {
		if left == 0 && op.leftLine != 0 {
			left = op.leftLine
		}
		if right == 0 && op.rightLine != 0 {
			right = op.rightLine
		}
	}
	return left, right
}

// Unified writes result as a standard unified diff (the "@@ -l,n +l,n @@"
// format produced by diff(1)/patch(1)), with contextLines lines of
// unchanged context kept around each change. contextLines <= 0 defaults to
// 3, matching diff(1)'s default.
func Unified(w io.Writer, result *chunk.Result, contextLines int) error {
	if result.Code != chunk.CodeOK {
		return nil
	}
	if contextLines <= 0 {
		contextLines = 3
	}
	bw := bufio.NewWriter(w)
	for _, h := range groupHunks(flatten(result), contextLines) {
		if _, err := fmt.Fprintf(bw, "@@ -%d,%d +%d,%d @@\n", h.leftStart, h.leftCount, h.rightStart, h.rightCount); err != nil {
			return err
		}
		for _, op := range h.ops {
			var prefix string
			switch op.kind {
			case chunk.Equal:
				prefix = " "
			case chunk.Delete:
				prefix = "-"
			case chunk.Insert:
				prefix = "+"
			}
			if _, err := fmt.Fprintf(bw, "%s%s\n", prefix, op.text); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
