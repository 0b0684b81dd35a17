package vdiff

import (
	"github.com/katalvlaran/vdiff/atomize"
	"github.com/katalvlaran/vdiff/chunk"
	"github.com/katalvlaran/vdiff/engine"
	"github.com/katalvlaran/vdiff/myers"
	"github.com/katalvlaran/vdiff/myersdivide"
	"github.com/katalvlaran/vdiff/patience"
)

// myersFullBudget bounds the full Myers trace to 1 MiB of scratch space
// before the default pipeline prefers patience over it.
const myersFullBudget = 1 << 20

// DefaultConfig builds the default algorithm pipeline: try the full Myers
// trace while it stays under its memory budget; when it doesn't, try
// patience (which recurses into itself on each gap between anchors); when
// patience finds no common landmark at all, fall back to the linear-space
// Myers divide-and-conquer search, whose own sub-problems are handed back
// to the full trace now that they are presumably small enough to afford
// it.
func DefaultConfig() engine.Config {
	myersFull := myers.New(myersFullBudget)
	pat := patience.New()
	div := myersdivide.New(0)

	myersFull.Fallback = pat
	pat.Fallback = div
	div.Inner = myersFull

	return engine.NewConfig(
		engine.WithAtomizer(atomize.Lines),
		engine.WithAlgorithm(myersFull),
	)
}

// MyersOnlyConfig builds a pipeline that always runs the full Myers trace
// with no memory budget and no fallback, useful for tests and callers that
// want a guaranteed-minimal edit script regardless of input size.
func MyersOnlyConfig() engine.Config {
	return engine.NewConfig(
		engine.WithAtomizer(atomize.Lines),
		engine.WithAlgorithm(myers.New(0)),
	)
}

// MyersDivideOnlyConfig builds a pipeline that always uses the
// linear-space divide-and-conquer search, recursing into itself rather
// than handing sub-problems to the full trace.
func MyersDivideOnlyConfig() engine.Config {
	algo := myersdivide.New(0)
	algo.Inner = algo
	return engine.NewConfig(
		engine.WithAtomizer(atomize.Lines),
		engine.WithAlgorithm(algo),
	)
}

// Diff computes the default-pipeline diff between left and right.
func Diff(left, right []byte) (*chunk.Result, error) {
	return engine.Diff(DefaultConfig(), left, right)
}
