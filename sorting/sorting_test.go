// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package sorting

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSort_ReferenceExample(t *testing.T) {
	for _, algorithm := range All() {
		t.Run(algorithm.Name, func(t *testing.T) {
			s := []int{64, 34, 25, 12, 22, 11, 90}
			algorithm.Sort(s)
			require.Equal(t, []int{11, 12, 22, 25, 34, 64, 90}, s)
		})
	}
}

func TestSort_ProducesSortedPermutation(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, algorithm := range All() {
		for _, size := range []int{0, 1, 2, 3, 10, 100, 500} {
			t.Run(fmt.Sprintf("%s size %d", algorithm.Name, size), func(t *testing.T) {
				require := require.New(t)
				input := make([]int, size)
				for i := range input {
					input[i] = r.Intn(50) - 25 // < force duplicates
				}
				got := slices.Clone(input)
				algorithm.Sort(got)

				require.True(slices.IsSorted(got))
				want := slices.Clone(input)
				slices.Sort(want)
				require.Equal(want, got)
			})
		}
	}
}

func TestSort_EmptyAndNilInputsStayEmpty(t *testing.T) {
	for _, algorithm := range All() {
		empty := []int{}
		algorithm.Sort(empty)
		require.Empty(t, empty)

		var none []int
		algorithm.Sort(none)
		require.Nil(t, none)
	}
}

func TestSort_SortedInputIsUnchanged(t *testing.T) {
	for _, algorithm := range All() {
		s := []int{-3, 0, 0, 1, 5, 8, 8, 13}
		want := slices.Clone(s)
		algorithm.Sort(s)
		require.Equal(t, want, s, algorithm.Name)
	}
}

func TestSort_ReverseSortedInput(t *testing.T) {
	for _, algorithm := range All() {
		s := []int{9, 8, 7, 6, 5, 4, 3, 2, 1}
		algorithm.Sort(s)
		require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, s, algorithm.Name)
	}
}

func TestSort_WorksForOtherOrderedTypes(t *testing.T) {
	require := require.New(t)

	words := []string{"queue", "array", "stack", "list"}
	Bubble(words)
	require.Equal([]string{"array", "list", "queue", "stack"}, words)

	floats := []float64{2.5, -1, 0.25}
	Insertion(floats)
	require.Equal([]float64{-1, 0.25, 2.5}, floats)

	bytes := []byte("selection")
	Selection(bytes)
	require.Equal("ceeilnost", string(bytes))
}

func TestAll_ListsAlgorithmsInPresentationOrder(t *testing.T) {
	var names []string
	for _, algorithm := range All() {
		names = append(names, algorithm.Name)
	}
	require.Equal(t, []string{"Bubble Sort", "Insertion Sort", "Selection Sort"}, names)
}
