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

// Partition3Way groups data around pivot in a single left-to-right pass and
// returns (lt, gt) such that:
//   - data[0:lt] < pivot
//   - data[lt:gt] == pivot
//   - data[gt:n] > pivot
func Partition3Way[T hwy.Integers](data []T, pivot T) (int, int) {
	lt, i, gt := 0, 0, len(data)
	for i < gt {
		v := data[i]
		if v < pivot {
			data[i], data[lt] = data[lt], v
			lt++
			i++
			continue
		}
		if v > pivot {
			gt--
			data[i], data[gt] = data[gt], v
			continue
		}
		i++
	}
	return lt, gt
}

// median3 returns the middle value of a, b and c.
func median3[T hwy.Integers](a, b, c T) T {
	if a > b {
		a, b = b, a
	}
	// a <= b here.
	if c >= b {
		return b
	}
	return max(a, c)
}

// choosePivot takes the median of the ends and the middle for short ranges
// and the median of five evenly spaced values otherwise.
func choosePivot[T hwy.Integers](data []T) T {
	n := len(data)
	switch {
	case n <= 2:
		return data[0]
	case n <= 8:
		return median3(data[0], data[n/2], data[n-1])
	}

	samples := [5]T{data[0], data[n/4], data[n/2], data[3*n/4], data[n-1]}
	sortInsertion(samples[:])
	return samples[2]
}
