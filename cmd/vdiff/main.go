// Command vdiff prints the line-level difference between two files, or
// between stdin and a file, as a plain or unified diff.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/vdiff"
	"github.com/katalvlaran/vdiff/format"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("vdiff", flag.ContinueOnError)
	fs.SetOutput(stderr)
	unified := fs.Bool("u", false, "produce unified diff output instead of plain")
	context := fs.Int("U", 3, "number of context lines for unified output")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	paths := fs.Args()
	if len(paths) != 2 {
		fmt.Fprintln(stderr, "usage: vdiff [-u] [-U n] left right")
		return 2
	}

	left, err := readFile(paths[0])
	if err != nil {
		fmt.Fprintf(stderr, "vdiff: %s\n", err)
		return 1
	}
	right, err := readFile(paths[1])
	if err != nil {
		fmt.Fprintf(stderr, "vdiff: %s\n", err)
		return 1
	}

	result, err := vdiff.Diff(left, right)
	if err != nil {
		fmt.Fprintf(stderr, "vdiff: %s\n", err)
		return 1
	}

	if *unified {
		err = format.Unified(stdout, result, *context)
	} else {
		err = format.Plain(stdout, result)
	}
	if err != nil {
		fmt.Fprintf(stderr, "vdiff: %s\n", err)
		return 1
	}
	return 0
}

// readFile reads path, treating "-" as stdin.
func readFile(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
