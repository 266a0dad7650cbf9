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
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSort(t *testing.T) {
	tests := []struct {
		name string
		data []int32
		want []int32
	}{
		{"empty", []int32{}, []int32{}},
		{"single", []int32{5}, []int32{5}},
		{"reference", []int32{4, 2, 4, 3, 4, 1, 4, 6}, []int32{4, 1, 4, 2, 4, 3, 4, 6}},
		{"allDistinct", []int32{3, 1, 2}, []int32{3, 1, 2}},
		{"allDistinctModeFirst", []int32{9, 4, 7, 1}, []int32{9, 1, 4, 7}},
		{"allIdentical", []int32{7, 7, 7}, []int32{7, 7, 7}},
		{"tieFirstWins", []int32{2, 2, 3, 3}, []int32{2, 2, 3, 3}},
		{"tieLaterPosition", []int32{5, 3, 1, 3, 1}, []int32{1, 3, 1, 3, 5}},
		{"extremes", []int32{0, -5, 0, 8, -2147483648, 0, 2147483647}, []int32{0, -2147483648, 0, -5, 8, 0, 2147483647}},
		{"pair", []int32{2, 1}, []int32{2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Clone(tt.data)
			Sort(got)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Sort(%v) mismatch (-want +got):\n%s", tt.data, diff)
			}
		})
	}
}

func TestSortNil(t *testing.T) {
	var data []int64
	Sort(data)
	assert.Nil(t, data)
	assert.Nil(t, Sorted(data))
}

func TestSorted(t *testing.T) {
	in := []int32{4, 2, 4, 3, 4, 1, 4, 6}
	orig := slices.Clone(in)

	out := Sorted(in)
	assert.Equal(t, []int32{4, 1, 4, 2, 4, 3, 4, 6}, out)
	assert.Equal(t, orig, in, "Sorted must not modify its input")
}

func TestSortOtherWidths(t *testing.T) {
	i8 := []int8{-1, 3, -1, -128, 127}
	Sort(i8)
	assert.Equal(t, []int8{-1, -128, -1, 3, 127}, i8)

	i64 := []int64{1 << 40, 2, 1 << 40, -(1 << 50)}
	Sort(i64)
	assert.Equal(t, []int64{1 << 40, -(1 << 50), 1 << 40, 2}, i64)
}

type score int16

func TestSortNamedType(t *testing.T) {
	data := []score{30, 10, 30, 20}
	Sort(data)
	assert.Equal(t, []score{30, 10, 30, 20}, data)
}

// randomWithMode builds n values in [-span/2, span/2) and plants a unique
// mode at roughly a third of the positions.
func randomWithMode(rng *rand.Rand, n, span int) ([]int32, int32) {
	mode := int32(rng.Intn(span) - span/2)
	data := make([]int32, n)
	for i := range data {
		if rng.Intn(3) == 0 {
			data[i] = mode
			continue
		}
		data[i] = int32(rng.Intn(span) - span/2)
	}
	// Top up so no other value can reach the mode's count.
	for countEqual(data, mode) <= n/2 {
		data[rng.Intn(n)] = mode
	}
	return data, mode
}

func randomInput(rng *rand.Rand) []int32 {
	n := rng.Intn(200)
	span := 1 + rng.Intn(50)
	data := make([]int32, n)
	for i := range data {
		data[i] = int32(rng.Intn(span) - span/2)
	}
	return data
}

func TestSortProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for iter := 0; iter < 500; iter++ {
		in := randomInput(rng)
		out := Sorted(in)
		require.Len(t, out, len(in))

		// Permutation: same multiset of values.
		require.Equal(t, lo.CountValues(in), lo.CountValues(out), "input %v", in)

		if len(in) <= 1 {
			require.Equal(t, in, out)
			continue
		}

		mode, err := FindMode(in)
		require.NoError(t, err)

		var rest []int32
		for i, v := range in {
			if v == mode {
				require.Equal(t, mode, out[i], "mode moved at index %d of %v", i, in)
			} else {
				rest = append(rest, out[i])
			}
		}
		require.True(t, slices.IsSorted(rest), "non-mode values not ascending: %v -> %v", in, out)
	}
}

func TestSortIdempotentUniqueMode(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for iter := 0; iter < 200; iter++ {
		in, _ := randomWithMode(rng, 2+rng.Intn(300), 40)
		once := Sorted(in)
		twice := Sorted(once)
		require.Equal(t, once, twice, "input %v", in)
	}
}

// A tie between two values lets the second pass pick a different mode.
func TestSortNotIdempotentOnTies(t *testing.T) {
	in := []int32{9, 5, 1, 0, 0, 5}

	once := Sorted(in)
	assert.Equal(t, []int32{0, 5, 0, 1, 9, 5}, once)

	twice := Sorted(once)
	assert.Equal(t, []int32{0, 1, 0, 5, 5, 9}, twice)
}

func TestSortKeepsModeSlots(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	in, mode := randomWithMode(rng, 1000, 100)
	got, err := FindMode(in)
	require.NoError(t, err)
	require.Equal(t, mode, got)

	out := Sorted(in)
	for i, v := range in {
		if v == mode {
			assert.Equal(t, mode, out[i], "index %d", i)
		}
	}
}
