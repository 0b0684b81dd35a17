package format

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/vdiff/chunk"
)

// cleanLine strips a single trailing line terminator (CRLF or LF) and
// escapes bytes that would otherwise make the rendered line ambiguous,
// mirroring diff_output_lines: control bytes and anything outside printable
// ASCII become \xNN, tabs pass through unescaped.
func cleanLine(b []byte) string {
	n := len(b)
	if n > 0 && b[n-1] == '\n' {
		n--
		if n > 0 && b[n-1] == '\r' {
			n--
		}
	}
	var sb strings.Builder
	for i := 0; i < n; i++ {
		c := b[i]
		if (c < 0x20 || c >= 0x7f) && c != '\t' {
			fmt.Fprintf(&sb, "\\x%02x", c)
		} else {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// Plain writes result as a line-prefixed dump: " " for an unchanged line,
// "-" for a left-only (deleted) line, "+" for a right-only (inserted) line.
// It mirrors diff_output_plain, including its choice to write nothing at
// all for a result whose Code is not CodeOK.
func Plain(w io.Writer, result *chunk.Result) error {
	if result.Code != chunk.CodeOK {
		return nil
	}
	bw := bufio.NewWriter(w)
	for _, c := range result.Chunks {
		switch c.Kind {
		case chunk.Equal:
			if err := writeLines(bw, " ", result.Left, c.Left); err != nil {
				return err
			}
		case chunk.Delete:
			if err := writeLines(bw, "-", result.Left, c.Left); err != nil {
				return err
			}
		case chunk.Insert:
			if err := writeLines(bw, "+", result.Right, c.Right); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func writeLines(w io.Writer, prefix string, view interface {
	AtomBytes(i int) []byte
}, span chunk.Span) error {
	for i := 0; i < span.Count; i++ {
		if _, err := fmt.Fprintf(w, "%s%s\n", prefix, cleanLine(view.AtomBytes(span.Start+i))); err != nil {
			return err
		}
	}
	return nil
}
