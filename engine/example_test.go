package engine_test

import (
	"fmt"

	"github.com/katalvlaran/vdiff/atomize"
	"github.com/katalvlaran/vdiff/engine"
)

func ExampleDiff() {
	cfg := engine.NewConfig(
		engine.WithAtomizer(atomize.Lines),
		engine.WithAlgorithm(engine.None()),
	)
	result, err := engine.Diff(cfg, []byte("a\nb\n"), []byte("a\nb\nc\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, c := range result.Chunks {
		fmt.Println(c.Kind)
	}
	// Output:
	// equal
	// insert
}
