// Package patience implements Bram Cohen's patience diff heuristic.
//
// Grounded on diff_algo_patience and its four helper phases in the original
// C implementation:
//
//  1. mark atoms unique within each side (an atom with any duplicate
//     anywhere on its own side is disqualified);
//  2. cross-match: pair up atoms that are unique on both sides and equal to
//     each other — "common-unique" anchors;
//  3. swallow identical neighbors: extend each anchor's matched span to
//     absorb any immediately adjacent atoms that happen to match too,
//     even if those neighbors aren't themselves unique, folding any
//     common-unique atom caught inside that extension into the anchor
//     rather than treating it as a separate anchor;
//  4. patience-sort the surviving anchors by their position on the other
//     side to recover the longest increasing subsequence of anchors, then
//     emit the gaps between (and around) consecutive anchors as Unsolved
//     spans for a further algorithm to resolve, with each anchor's
//     (possibly neighbor-extended) span emitted directly as Equal.
//
// Patience never itself guarantees a minimal edit script — it is a
// heuristic for finding a good split point cheaply when there happens to
// be a clear common landmark between the two sides. When no common-unique
// atom exists at all, it reports engine.UseFallback.
package patience
