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

import (
	"github.com/go-highway/modesort/hwy"
	"github.com/go-highway/modesort/hwy/contrib/workerpool"
)

const (
	// parallelThreshold: inputs shorter than this are counted sequentially.
	parallelThreshold = 256

	// countBatch is the number of candidate positions a worker claims at a time.
	countBatch = 64
)

// FindModeParallel returns the same value as FindMode, counting candidates
// concurrently on pool. A nil pool or a short input falls back to FindMode.
func FindModeParallel[T hwy.SignedInts](pool *workerpool.Pool, data []T) (T, error) {
	if pool == nil || len(data) < parallelThreshold {
		return FindMode(data)
	}

	counts := make([]int, len(data))
	pool.ParallelForAtomicBatched(len(data), countBatch, func(start, end int) {
		for i := start; i < end; i++ {
			counts[i] = countEqual(data, data[i])
		}
	})
	return pickMode(data, counts), nil
}

// SortParallel is Sort with the mode search spread over pool.
// The result is identical to Sort.
func SortParallel[T hwy.SignedInts](pool *workerpool.Pool, data []T) {
	if len(data) <= 1 {
		return
	}
	mode, _ := FindModeParallel(pool, data)
	placeAroundMode(data, mode)
}
