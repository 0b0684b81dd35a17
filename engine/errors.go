package engine

import "errors"

var (
	// ErrInvalidConfig is returned when Diff is called without an atomizer
	// configured, the Go analogue of diff_main returning DIFF_RC_EINVAL.
	ErrInvalidConfig = errors.New("engine: config has no atomizer")
	// ErrOutOfMemory is for an Impl to return when its scratch-buffer sizing
	// would overflow; Diff reports it as chunk.CodeOutOfMemory. The myers and
	// myersdivide algorithms do not return it: on an oversized or
	// overflowing budget computation they report UseFallback instead.
	ErrOutOfMemory = errors.New("engine: scratch buffer size overflow")
)
