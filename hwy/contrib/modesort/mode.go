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

package modesort

import "github.com/go-highway/modesort/hwy"

// FindMode returns the most frequent value in data. Among values sharing the
// highest count, the one whose first occurrence comes first wins.
// It returns ErrEmptyInput if data is empty.
func FindMode[T hwy.SignedInts](data []T) (T, error) {
	if len(data) == 0 {
		var zero T
		return zero, ErrEmptyInput
	}

	mode := data[0]
	maxCount := 0
	for _, candidate := range data {
		if count := countEqual(data, candidate); count > maxCount {
			maxCount = count
			mode = candidate
		}
	}
	return mode, nil
}

// maxLanes bounds the per-lane accumulators: 64 int8 lanes fill an AVX-512 register.
const maxLanes = 64

// countEqual returns how many elements of data equal v, using one
// accumulator per lane of the current dispatch width.
func countEqual[T hwy.SignedInts](data []T, v T) int {
	return countEqualLanes(data, v, hwy.MaxLanes[T]())
}

// countEqualLanes walks data in blocks of lanes elements, bumping the
// accumulator of the matching lane, then counts the tail and folds the lanes.
func countEqualLanes[T hwy.SignedInts](data []T, v T, lanes int) int {
	lanes = max(1, min(lanes, maxLanes))
	var acc [maxLanes]int

	i := 0
	for ; i+lanes <= len(data); i += lanes {
		block := data[i : i+lanes : i+lanes]
		for j := range block {
			if block[j] == v {
				acc[j]++
			}
		}
	}

	count := 0
	for ; i < len(data); i++ {
		if data[i] == v {
			count++
		}
	}
	for _, c := range acc[:lanes] {
		count += c
	}
	return count
}

// pickMode reduces per-position counts to the mode with the same strict
// comparison FindMode uses. counts[i] is the number of elements equal to data[i].
func pickMode[T hwy.SignedInts](data []T, counts []int) T {
	mode := data[0]
	maxCount := 0
	for i, count := range counts {
		if count > maxCount {
			maxCount = count
			mode = data[i]
		}
	}
	return mode
}
