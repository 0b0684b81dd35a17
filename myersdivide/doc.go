// Package myersdivide implements the linear-space variant of Myers' diff
// algorithm: a single "find the middle snake" bidirectional search that
// splits the problem into a before-section, a matching mid-snake, and an
// after-section, rather than computing a whole trace up front.
//
// Grounded on diff_algo_myers_divide / diff_divide_myers_forward /
// diff_divide_myers_backward in the original C implementation: a forward
// search from (0,0) and a backward search from (L,R) alternate one
// half-step at a time, each maintaining its own furthest-reaching position
// per diagonal; the two meet when one search's frontier has reached or
// passed the other's on the diagonal they share, which happens after
// O((L+R)/2) steps using only O(L+R) scratch space (far less than the full
// trace's O((L+R)^2)). The before/after sections are reported back to the
// dispatch framework as Unsolved, to be recursed into by whatever
// Algorithm.Inner this one is wired to (by default, the full Myers trace,
// since the sections are typically much smaller than the original input).
package myersdivide
