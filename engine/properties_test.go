package engine_test

import (
	"testing"

	"github.com/katalvlaran/vdiff"
	"github.com/katalvlaran/vdiff/atomize"
	"github.com/katalvlaran/vdiff/chunk"
	"github.com/katalvlaran/vdiff/engine"
	"github.com/katalvlaran/vdiff/myers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reconstructSides concatenates, in chunk order, every atom a chunk claims
// on each side, so property 1 can be checked by a plain string comparison.
func reconstructSides(r *chunk.Result) (left, right string) {
	var l, rr []byte
	for _, c := range r.Chunks {
		for i := 0; i < c.Left.Count; i++ {
			l = append(l, r.Left.AtomBytes(c.Left.Start+i)...)
		}
		for i := 0; i < c.Right.Count; i++ {
			rr = append(rr, r.Right.AtomBytes(c.Right.Start+i)...)
		}
	}
	return string(l), string(rr)
}

var propertyPresets = map[string]func() engine.Config{
	"default":     vdiff.DefaultConfig,
	"myers-only":  vdiff.MyersOnlyConfig,
	"divide-only": vdiff.MyersDivideOnlyConfig,
}

var propertyInputs = []struct {
	name  string
	left  string
	right string
}{
	{"identical", "a\nb\nc\n", "a\nb\nc\n"},
	{"disjoint", "a\nb\n", "x\ny\nz\n"},
	{"left-empty", "", "a\nb\n"},
	{"right-empty", "a\nb\n", ""},
	{"both-empty", "", ""},
	{"interior-change", "ctx1\nctx2\nOLD\nctx3\nctx4\n", "ctx1\nctx2\nNEW\nctx3\nctx4\n"},
	{"crlf-vs-lf", "line\r\n", "line\n"},
	{"reordered-common-lines", "a\nb\nc\nd\n", "d\nc\nb\na\n"},
}

// TestProperty1_Reconstruction is universal property 1: concatenating a
// side's atoms across all chunks, in order, reproduces that side exactly,
// with no atom dropped or duplicated — for every named preset (also
// exercising property 7, fallback preservation).
func TestProperty1_Reconstruction(t *testing.T) {
	for presetName, cfg := range propertyPresets {
		for _, in := range propertyInputs {
			t.Run(presetName+"/"+in.name, func(t *testing.T) {
				result, err := engine.Diff(cfg(), []byte(in.left), []byte(in.right))
				require.NoError(t, err)
				gotLeft, gotRight := reconstructSides(result)
				assert.Equal(t, in.left, gotLeft)
				assert.Equal(t, in.right, gotRight)
			})
		}
	}
}

// TestProperty2_ChunkTyping is universal property 2: every chunk is
// exactly one of equal/delete/insert, equal chunks have matching counts
// and byte-identical atoms pairwise, and no unsolved chunk survives.
func TestProperty2_ChunkTyping(t *testing.T) {
	for presetName, cfg := range propertyPresets {
		for _, in := range propertyInputs {
			t.Run(presetName+"/"+in.name, func(t *testing.T) {
				result, err := engine.Diff(cfg(), []byte(in.left), []byte(in.right))
				require.NoError(t, err)
				for _, c := range result.Chunks {
					switch c.Kind {
					case chunk.Equal:
						require.Equal(t, c.Left.Count, c.Right.Count)
						for i := 0; i < c.Left.Count; i++ {
							assert.True(t, result.Left.Equal(c.Left.Start+i, result.Right, c.Right.Start+i))
						}
					case chunk.Delete:
						assert.Zero(t, c.Right.Count)
						assert.NotZero(t, c.Left.Count)
					case chunk.Insert:
						assert.Zero(t, c.Left.Count)
						assert.NotZero(t, c.Right.Count)
					default:
						t.Fatalf("unsolved or invalid chunk kind %v leaked into result", c.Kind)
					}
				}
			})
		}
	}
}

// TestProperty3_Identity is universal property 3.
func TestProperty3_Identity(t *testing.T) {
	for presetName, cfg := range propertyPresets {
		t.Run(presetName, func(t *testing.T) {
			left := []byte("one\ntwo\nthree\n")
			result, err := engine.Diff(cfg(), left, left)
			require.NoError(t, err)
			assert.Equal(t, chunk.CodeOK, result.Code)
			if assert.Len(t, result.Chunks, 1) {
				assert.Equal(t, chunk.Equal, result.Chunks[0].Kind)
			}
		})
	}
}

// TestProperty4_Emptiness is universal property 4.
func TestProperty4_Emptiness(t *testing.T) {
	for presetName, cfg := range propertyPresets {
		t.Run(presetName, func(t *testing.T) {
			result, err := engine.Diff(cfg(), nil, []byte("a\nb\n"))
			require.NoError(t, err)
			if assert.Len(t, result.Chunks, 1) {
				assert.Equal(t, chunk.Insert, result.Chunks[0].Kind)
			}

			result, err = engine.Diff(cfg(), []byte("a\nb\n"), nil)
			require.NoError(t, err)
			if assert.Len(t, result.Chunks, 1) {
				assert.Equal(t, chunk.Delete, result.Chunks[0].Kind)
			}

			result, err = engine.Diff(cfg(), nil, nil)
			require.NoError(t, err)
			assert.Empty(t, result.Chunks)
		})
	}
}

// TestProperty5_MyersFullMinimality is universal property 5: the full
// Myers trace (no fallback, no budget) produces the minimum possible
// number of non-equal atoms, verified against a hand-counted edit
// distance for a few small fixed inputs.
func TestProperty5_MyersFullMinimality(t *testing.T) {
	cases := []struct {
		name        string
		left, right string
		wantEdits   int
	}{
		{"single-substitution", "a\nb\nc\n", "a\nx\nc\n", 2},
		{"single-insertion", "a\nc\n", "a\nb\nc\n", 1},
		{"single-deletion", "a\nb\nc\n", "a\nc\n", 1},
		{"totally-disjoint", "a\nb\n", "x\ny\n", 4},
	}
	cfg := engine.NewConfig(
		engine.WithAtomizer(atomize.Lines),
		engine.WithAlgorithm(myers.New(0)),
	)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			result, err := engine.Diff(cfg, []byte(c.left), []byte(c.right))
			require.NoError(t, err)
			edits := 0
			for _, ch := range result.Chunks {
				if ch.Kind == chunk.Delete {
					edits += ch.Left.Count
				}
				if ch.Kind == chunk.Insert {
					edits += ch.Right.Count
				}
			}
			assert.Equal(t, c.wantEdits, edits)
		})
	}
}

// TestProperty6_TerminationUnderRecursionCap is universal property 6: any
// input returns (no infinite recursion, no error) within a small
// configured recursion depth, even when that depth is far smaller than
// what an unbounded divide would need.
func TestProperty6_TerminationUnderRecursionCap(t *testing.T) {
	var left, right []byte
	for i := 0; i < 200; i++ {
		left = append(left, []byte("x\n")...)
		right = append(right, []byte("x\n")...)
	}
	right = append(right, []byte("y\n")...)

	algo := vdiff.DefaultConfig().Algorithm
	cfg := engine.NewConfig(
		engine.WithAtomizer(atomize.Lines),
		engine.WithAlgorithm(algo),
		engine.WithMaxRecursionDepth(2),
	)
	result, err := engine.Diff(cfg, left, right)
	require.NoError(t, err)
	for _, c := range result.Chunks {
		assert.NotEqual(t, chunk.Unsolved, c.Kind)
	}
}
