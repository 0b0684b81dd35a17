package diffdata

import "github.com/katalvlaran/vdiff/atom"

// Root owns one side's source buffer and its full atom table, produced by
// an atomize.Atomizer. It is the Go analogue of a root struct diff_data
// (atoms_allocated != 0 in the C source signals the same "I own this array"
// distinction a *Root carries here by construction).
type Root struct {
	Buf   []byte
	Atoms []atom.Atom
}

// NewRoot wraps buf and its atom table into a Root. atoms must have been
// computed over buf.
func NewRoot(buf []byte, atoms []atom.Atom) *Root {
	return &Root{Buf: buf, Atoms: atoms}
}

// View returns a View spanning every atom in r.
func (r *Root) View() View {
	return View{Root: r, Start: 0, Count: len(r.Atoms)}
}

// View is a zero-copy contiguous window over a Root's atom table: the Go
// analogue of a subsection struct diff_data, which in C is expressed as a
// pointer partway into the root's atom array. Go has no raw pointer
// arithmetic, so a View instead carries Start, the offset of its first atom
// within Root.Atoms ("offset_in_root"), and Count, the number of atoms it
// spans.
type View struct {
	Root  *Root
	Start int
	Count int
}

// Len returns the number of atoms in the view.
func (v View) Len() int {
	return v.Count
}

// Atom returns the i-th atom of the view (i is relative to the view, not
// the root).
func (v View) Atom(i int) atom.Atom {
	return v.Root.Atoms[v.Start+i]
}

// AtomBytes returns the source bytes of the i-th atom of the view.
func (v View) AtomBytes(i int) []byte {
	return v.Atom(i).Bytes(v.Root.Buf)
}

// RootIndex converts a view-relative atom index into an index into
// v.Root.Atoms.
func (v View) RootIndex(i int) int {
	return v.Start + i
}

// Sub returns a sub-view of v spanning [start, start+count) relative to v.
// It panics if the requested range falls outside v, mirroring a slice
// out-of-range panic rather than silently clamping.
func (v View) Sub(start, count int) View {
	if start < 0 || count < 0 || start+count > v.Count {
		panic("diffdata: sub-view out of range")
	}
	return View{Root: v.Root, Start: v.Start + start, Count: count}
}

// Equal reports whether atom i of v and atom j of other denote
// byte-identical spans of their respective root buffers.
func (v View) Equal(i int, other View, j int) bool {
	return v.Atom(i).Equal(v.Root.Buf, other.Atom(j), other.Root.Buf)
}
