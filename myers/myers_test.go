package myers_test

import (
	"testing"

	"github.com/katalvlaran/vdiff/atomize"
	"github.com/katalvlaran/vdiff/chunk"
	"github.com/katalvlaran/vdiff/engine"
	"github.com/katalvlaran/vdiff/myers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diffLines(t *testing.T, budget int, left, right string) *chunk.Result {
	t.Helper()
	cfg := engine.NewConfig(
		engine.WithAtomizer(atomize.Lines),
		engine.WithAlgorithm(myers.New(budget)),
	)
	result, err := engine.Diff(cfg, []byte(left), []byte(right))
	require.NoError(t, err)
	return result
}

func kinds(r *chunk.Result) []chunk.Kind {
	out := make([]chunk.Kind, len(r.Chunks))
	for i, c := range r.Chunks {
		out[i] = c.Kind
	}
	return out
}

func TestMyers_Identical(t *testing.T) {
	r := diffLines(t, 0, "a\nb\nc\n", "a\nb\nc\n")
	assert.Equal(t, []chunk.Kind{chunk.Equal}, kinds(r))
}

func TestMyers_TotallyDifferent(t *testing.T) {
	r := diffLines(t, 0, "a\nb\n", "x\ny\n")
	assert.Equal(t, []chunk.Kind{chunk.Delete, chunk.Insert}, kinds(r))
}

func TestMyers_SingleMiddleChange(t *testing.T) {
	r := diffLines(t, 0, "a\nb\nc\n", "a\nx\nc\n")
	assert.Equal(t, []chunk.Kind{chunk.Equal, chunk.Delete, chunk.Insert, chunk.Equal}, kinds(r))
}

func TestMyers_PureInsertAtEnd(t *testing.T) {
	r := diffLines(t, 0, "a\nb\n", "a\nb\nc\n")
	assert.Equal(t, []chunk.Kind{chunk.Equal, chunk.Insert}, kinds(r))
}

func TestMyers_PureDeleteAtStart(t *testing.T) {
	r := diffLines(t, 0, "a\nb\nc\n", "b\nc\n")
	assert.Equal(t, []chunk.Kind{chunk.Delete, chunk.Equal}, kinds(r))
}

func TestMyers_EmptyBothSides(t *testing.T) {
	r := diffLines(t, 0, "", "")
	assert.Empty(t, r.Chunks)
}

func TestMyers_ReconstructsRight(t *testing.T) {
	left := "a\nb\nc\nd\ne\n"
	right := "a\nc\nd\nf\ne\n"
	r := diffLines(t, 0, left, right)

	var rebuilt []byte
	for _, c := range r.Chunks {
		switch c.Kind {
		case chunk.Equal, chunk.Insert:
			for i := 0; i < c.Right.Count; i++ {
				rebuilt = append(rebuilt, r.Right.AtomBytes(c.Right.Start+i)...)
			}
		}
	}
	assert.Equal(t, right, string(rebuilt))
}

func TestMyers_BudgetTooSmallFallsBack(t *testing.T) {
	cfg := engine.NewConfig(
		engine.WithAtomizer(atomize.Lines),
		engine.WithAlgorithm(&engine.Algorithm{
			Name:      "myers-tiny-budget",
			Impl:      myers.New(1).Impl,
			Fallback:  engine.None(),
		}),
	)
	result, err := engine.Diff(cfg, []byte("a\nb\nc\nd\ne\nf\ng\n"), []byte("a\nx\nc\nd\ne\nf\nz\n"))
	require.NoError(t, err)
	assert.Equal(t, chunk.CodeOK, result.Code)
	for _, c := range result.Chunks {
		assert.NotEqual(t, chunk.Unsolved, c.Kind)
	}
}
