// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sort

import "github.com/go-highway/modesort/hwy"

// sortInsertionThreshold: use insertion sort for subarrays this size or smaller.
const sortInsertionThreshold = 24

// Sort sorts data in ascending order, in place.
func Sort[T hwy.Integers](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}
	sortImpl(data, maxDepth(n))
}

// maxDepth returns the recursion budget before falling back to heapsort:
// 2 * (bit length of n).
func maxDepth(n int) int {
	depth := 0
	for tmp := n; tmp > 0; tmp >>= 1 {
		depth++
	}
	return depth * 2
}

func sortImpl[T hwy.Integers](data []T, depthLimit int) {
	for len(data) > sortInsertionThreshold {
		if depthLimit == 0 {
			sortHeap(data)
			return
		}
		depthLimit--

		lt, gt := Partition3Way(data, choosePivot(data))

		// Recurse into the smaller side and loop on the larger one to keep
		// the stack at O(log n).
		if lt < len(data)-gt {
			sortImpl(data[:lt], depthLimit)
			data = data[gt:]
		} else {
			sortImpl(data[gt:], depthLimit)
			data = data[:lt]
		}
	}
	sortInsertion(data)
}

// IsSorted reports whether data is sorted in ascending order.
func IsSorted[T hwy.Integers](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}
