package vdiff_test

import (
	"fmt"

	"github.com/katalvlaran/vdiff"
	"github.com/katalvlaran/vdiff/chunk"
)

func ExampleDiff() {
	result, err := vdiff.Diff([]byte("one\ntwo\n"), []byte("one\nthree\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, c := range result.Chunks {
		switch c.Kind {
		case chunk.Equal:
			fmt.Println("= ", result.Left.AtomBytes(c.Left.Start))
		case chunk.Delete:
			for i := 0; i < c.Left.Count; i++ {
				fmt.Print("- ", string(result.Left.AtomBytes(c.Left.Start+i)))
			}
		case chunk.Insert:
			for i := 0; i < c.Right.Count; i++ {
				fmt.Print("+ ", string(result.Right.AtomBytes(c.Right.Start+i)))
			}
		}
	}
}
