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
	"errors"
	"slices"

	"github.com/go-highway/modesort/hwy"
	"github.com/go-highway/modesort/hwy/contrib/sort"
)

// ErrEmptyInput is returned by the mode search when given no elements.
var ErrEmptyInput = errors.New("modesort: mode of empty sequence")

// Sort rearranges data in place: positions holding the mode are left as they
// are and every other position receives the non-mode values in ascending order.
// Slices of length 0 or 1 are returned unchanged.
func Sort[T hwy.SignedInts](data []T) {
	if len(data) <= 1 {
		return
	}
	mode, _ := FindMode(data)
	placeAroundMode(data, mode)
}

// Sorted returns a copy of data rearranged as by Sort. data is not modified.
func Sorted[T hwy.SignedInts](data []T) []T {
	if data == nil {
		return nil
	}
	out := slices.Clone(data)
	Sort(out)
	return out
}

// placeAroundMode sorts every value that is not mode and writes them back,
// in order, into the slots that did not hold mode.
func placeAroundMode[T hwy.SignedInts](data []T, mode T) {
	rest := make([]T, 0, len(data))
	for _, v := range data {
		if v != mode {
			rest = append(rest, v)
		}
	}
	if len(rest) == 0 {
		return
	}
	sort.Sort(rest)

	next := 0
	for i, v := range data {
		if v == mode {
			continue
		}
		data[i] = rest[next]
		next++
	}
}
