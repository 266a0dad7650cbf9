// Package modesort implements a mode-isolating sort for signed integer slices.
//
// The most frequent value of the input (the mode) is assumed to already sit
// in its final positions. Only the remaining values are sorted, and they are
// written back, in ascending order, into the positions that did not hold the
// mode:
//
//	data := []int32{4, 2, 4, 3, 4, 1, 4, 6}
//	modesort.Sort(data) // [4, 1, 4, 2, 4, 3, 4, 6]
//
// # Mode selection
//
// FindMode scans candidate positions left to right and counts every element
// equal to the candidate. A candidate only replaces the current mode when its
// count is strictly greater, so among tied values the one reached first wins:
// with all values distinct the mode is data[0].
//
// The search is O(n²) and dominates the cost of Sort for large inputs; Sort is
// not faster than a plain comparison sort. FindModeParallel and SortParallel
// spread the counting across a workerpool.Pool and return exactly what the
// sequential versions return.
//
// # Output properties
//
//   - The output is a permutation of the input.
//   - Every index that held the mode still holds it.
//   - Reading the remaining indices left to right gives a non-decreasing run.
//
// Repeating Sort on its own output is a no-op when the mode is unique. When two
// values tie for the highest count the second pass may pick the other one and
// move values again.
package modesort
