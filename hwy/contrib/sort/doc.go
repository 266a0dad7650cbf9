// Package sort provides an in-place introsort for integer slices.
//
// # Algorithm
//
// Sort is an introsort variant that combines:
//   - Insertion sort for small subarrays
//   - Quicksort with a sampled-median pivot and 3-way partitioning, so runs of
//     equal values are settled in a single pass
//   - Heapsort fallback to guarantee O(n log n) worst case
//
// # Supported Types
//
// Any type satisfying hwy.Integers: signed and unsigned integers of every width,
// including named types over them.
//
// # Example Usage
//
//	import "github.com/go-highway/modesort/hwy/contrib/sort"
//
//	func Process(data []int32) {
//	    sort.Sort(data) // In-place ascending sort
//	}
package sort
