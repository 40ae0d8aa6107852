// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package basics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointers_WriteThroughPointerModifiesVariable(t *testing.T) {
	facts := Pointers()
	require.Equal(t, 42, facts.Initial)
	require.Equal(t, 42, facts.Dereferenced)
	require.Equal(t, 100, facts.Modified)
	require.NotZero(t, facts.Address)
}

func TestAliasing_DistinguishesRetargetingFromCopying(t *testing.T) {
	require := require.New(t)
	facts := Aliasing()
	require.Equal(50, facts.Original)
	require.Equal(200, facts.AfterAlias)
	require.Equal(10, facts.PointsToA)
	require.Equal(20, facts.PointsToB)
	require.Equal(20, facts.AAfterCopy)
	require.Equal(20, facts.BAfterCopy)
	require.True(facts.AliasStillToA)
}

func TestNilPointerIsSafeToCheck(t *testing.T) {
	require.True(t, NilPointerIsSafeToCheck())
}

func TestArrayPointers_StepsElementWise(t *testing.T) {
	require.Equal(t, ArrayFacts{
		First:       1,
		FirstViaPtr: 1,
		Second:      2,
		SecondPtr:   2,
		AfterStep:   2,
	}, ArrayPointers())
}

func TestArrays_SliceGrowsBeyondArray(t *testing.T) {
	c := Arrays()
	require.Equal(t, []int{1, 2, 3, 4, 5}, c.Array)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, c.Slice)
}
