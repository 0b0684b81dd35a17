// Package atomize provides pluggable strategies for splitting a raw buffer
// into atoms.
//
// An Atomizer is a plain function rather than an interface carrying an
// opaque context pointer (as the original C diff_atomize_func_t does): Go
// closures already let a custom atomizer capture whatever state it needs,
// so there is nothing for a context parameter to add. Lines, the default
// and only shipped atomizer, splits on \n, \r, and \r\n, matching the
// original line-atomizing behavior.
package atomize
