// Package atom defines the smallest indivisible unit a diff operates over.
//
// An Atom never owns its bytes: it records an offset and length into the
// byte slice held by the diffdata.Root it belongs to, plus a precomputed
// hash used as a cheap pre-filter before byte-for-byte comparison. This
// mirrors struct diff_atom from the original C implementation (a pointer
// into the source buffer plus a length and hash), adapted to Go's lack of
// raw pointer arithmetic by storing an offset instead of a pointer.
package atom
