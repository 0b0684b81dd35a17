// Package format renders a chunk.Result as text, the way a patch tool or a
// terminal pager would show it. It is a peripheral consumer of the core
// engine: it reads only chunk.Chunk spans and diffdata.View atom bytes, the
// same contract any external formatter is bound to.
//
// Two renderers are provided: Plain, a line-prefixed dump ("-"/"+"/" "),
// and Unified, the standard "@@ -l,n +l,n @@" hunk format produced by
// patch(1)/diff(1).
package format
