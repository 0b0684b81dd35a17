package atom

import "bytes"

// Atom is a single indivisible span of a source buffer: one line of text
// under the default atomizer, or whatever span a custom atomizer chooses to
// record. Atom carries no algorithm-private scratch state — packages that
// need per-atom bookkeeping (patience's uniqueness flags, for instance) keep
// their own parallel slice indexed alongside a []Atom rather than growing
// this type, so that Atom stays a small, cheaply-copyable value.
type Atom struct {
	// Offset is the byte offset of this atom's first byte within the owning
	// buffer.
	Offset int
	// Length is the number of bytes in this atom, terminator bytes included.
	Length int
	// Hash is a rolling hash over every byte of the atom (including
	// terminators), used as an O(1) pre-filter before a full byte
	// comparison. Two atoms with different hashes are never equal; two
	// atoms with the same hash still require Equal to confirm.
	Hash uint32
}

// End returns the offset one past the atom's last byte.
func (a Atom) End() int {
	return a.Offset + a.Length
}

// Bytes returns the slice of buf covered by a. buf must be the same buffer
// (or an identical copy) a was computed over.
func (a Atom) Bytes(buf []byte) []byte {
	return buf[a.Offset:a.End()]
}

// Equal reports whether a and b denote byte-for-byte identical spans of
// their respective buffers. bufA must be the buffer a was computed over;
// bufB must be the buffer b was computed over (they may be the same slice).
//
// The hash comparison is a pure optimization: a full byte comparison alone
// would be correct, but skipping it on a hash mismatch avoids an O(length)
// scan in the overwhelmingly common case that two atoms differ.
func (a Atom) Equal(bufA []byte, b Atom, bufB []byte) bool {
	if a.Hash != b.Hash || a.Length != b.Length {
		return false
	}
	return bytes.Equal(a.Bytes(bufA), b.Bytes(bufB))
}
