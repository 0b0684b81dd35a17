package engine

import (
	"github.com/katalvlaran/vdiff/chunk"
	"github.com/katalvlaran/vdiff/diffdata"
)

// Diff atomizes left and right with cfg.Atomizer and runs cfg.Algorithm
// (falling through to None if it is nil) over the result, the Go analogue
// of diff_main. The returned Result's Code mirrors any error also returned,
// so callers may branch on either.
func Diff(cfg Config, left, right []byte) (*chunk.Result, error) {
	if cfg.Atomizer == nil {
		return &chunk.Result{Code: chunk.CodeInvalidArg}, ErrInvalidConfig
	}

	leftAtoms, err := cfg.Atomizer(left)
	if err != nil {
		return &chunk.Result{Code: chunk.CodeOutOfMemory}, err
	}
	rightAtoms, err := cfg.Atomizer(right)
	if err != nil {
		return &chunk.Result{Code: chunk.CodeOutOfMemory}, err
	}

	leftView := diffdata.NewRoot(left, leftAtoms).View()
	rightView := diffdata.NewRoot(right, rightAtoms).View()

	result := &chunk.Result{Code: chunk.CodeOK, Left: leftView, Right: rightView}

	st := &State{
		Left:               leftView,
		Right:              rightView,
		RecursionDepthLeft: cfg.recursionDepth(),
		result:             result,
	}

	if err := dispatch(cfg.Algorithm, st); err != nil {
		result.Code = codeForError(err)
		return result, err
	}
	return result, nil
}

func codeForError(err error) chunk.Code {
	switch err {
	case ErrOutOfMemory:
		return chunk.CodeOutOfMemory
	case ErrInvalidConfig:
		return chunk.CodeInvalidArg
	default:
		return chunk.CodeNotSupported
	}
}
