package engine_test

import (
	"testing"

	"github.com/katalvlaran/vdiff/atomize"
	"github.com/katalvlaran/vdiff/chunk"
	"github.com/katalvlaran/vdiff/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff_MissingAtomizer(t *testing.T) {
	cfg := engine.NewConfig()
	result, err := engine.Diff(cfg, []byte("a"), []byte("b"))
	require.ErrorIs(t, err, engine.ErrInvalidConfig)
	assert.Equal(t, chunk.CodeInvalidArg, result.Code)
}

func TestDiff_NilAlgorithmFallsThroughToNone(t *testing.T) {
	cfg := engine.NewConfig(engine.WithAtomizer(atomize.Lines))
	result, err := engine.Diff(cfg, []byte("same\n"), []byte("same\n"))
	require.NoError(t, err)
	assert.Equal(t, chunk.CodeOK, result.Code)
	if assert.Len(t, result.Chunks, 1) {
		assert.Equal(t, chunk.Equal, result.Chunks[0].Kind)
	}
}

func TestDiff_EmptyBothSides(t *testing.T) {
	cfg := engine.NewConfig(engine.WithAtomizer(atomize.Lines))
	result, err := engine.Diff(cfg, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Chunks)
}

func TestDiff_NoUnsolvedChunkEverEscapes(t *testing.T) {
	cfg := engine.NewConfig(engine.WithAtomizer(atomize.Lines))
	result, err := engine.Diff(cfg, []byte("a\nb\nc\n"), []byte("a\nx\nc\n"))
	require.NoError(t, err)
	for _, c := range result.Chunks {
		assert.NotEqual(t, chunk.Unsolved, c.Kind)
	}
}

func TestDiff_RecursionExhaustionFallsBackToNone(t *testing.T) {
	// An Algorithm whose Impl always defers to Inner on an Unsolved chunk
	// covering the whole input, with recursion capped at 1: the first
	// dispatch consumes the only level of depth, so the Inner recursion
	// hits RecursionDepthLeft == 0 and must degrade to None rather than
	// recurse forever or error.
	alwaysUnsolved := &engine.Algorithm{
		Name: "always-unsolved",
		Impl: func(st *engine.State) (engine.Outcome, error) {
			st.AddChunk(chunk.Chunk{
				Kind:  chunk.Unsolved,
				Left:  chunk.Span{Start: 0, Count: st.Left.Len()},
				Right: chunk.Span{Start: 0, Count: st.Right.Len()},
			})
			return engine.Ok, nil
		},
	}
	alwaysUnsolved.Inner = alwaysUnsolved

	cfg := engine.NewConfig(
		engine.WithAtomizer(atomize.Lines),
		engine.WithAlgorithm(alwaysUnsolved),
		engine.WithMaxRecursionDepth(1),
	)
	result, err := engine.Diff(cfg, []byte("a\nb\n"), []byte("a\nc\n"))
	require.NoError(t, err)
	for _, c := range result.Chunks {
		assert.NotEqual(t, chunk.Unsolved, c.Kind)
	}
}
