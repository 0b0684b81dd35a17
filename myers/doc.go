// Package myers implements the classic Myers (1986) shortest-edit-script
// algorithm as a single forward trace over the whole input, grounded on
// diff_algo_myers in the original C implementation.
//
// The algorithm explores diagonals k = x - y of the edit graph one
// "distance" d at a time, extending each diagonal's furthest-reaching x by
// a snake (a run of matching atoms), until some diagonal reaches the
// bottom-right corner of the graph. Ties between the two predecessor
// diagonals are broken in favor of k-1 (a deletion move), matching the
// original's tie-break convention.
//
// Because the full trace keeps one array per distance d to support
// backtracking, its memory cost grows with the square of the input size;
// New takes a byte budget and declines (via engine.UseFallback) inputs that
// would exceed it, so a pipeline can fall back to a cheaper algorithm
// instead of committing to an expensive allocation.
package myers
