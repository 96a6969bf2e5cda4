package profile_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/choicekit/profile"
)

func TestCheckOrdinalStrictComplete(t *testing.T) {
	p, err := profile.OrdinalFromRankMatrix([][]int{
		{1, 2, 3},
		{3, 1, 2},
	})
	require.NoError(t, err)
	require.NoError(t, profile.CheckOrdinal(p, profile.Strict|profile.Complete))
	require.Equal(t, 2, p.Agents())
	require.Equal(t, 3, p.Alternatives())
}

func TestCheckOrdinalRejectsTies(t *testing.T) {
	p, err := profile.OrdinalFromRankMatrix([][]int{
		{1, 1, 2},
	})
	require.NoError(t, err)
	require.NoError(t, profile.CheckOrdinal(p, 0)) // ToI view is fine
	require.ErrorIs(t, profile.CheckOrdinal(p, profile.Strict), profile.ErrTiedRanks)
}

func TestCheckOrdinalRejectsIncomplete(t *testing.T) {
	p, err := profile.OrdinalFromRankMatrix([][]int{
		{1, 0, 2},
	})
	require.NoError(t, err)
	require.NoError(t, profile.CheckOrdinal(p, profile.Strict))
	require.ErrorIs(t, profile.CheckOrdinal(p, profile.Complete), profile.ErrIncompleteProfile)
}

func TestCheckOrdinalRejectsOutOfRange(t *testing.T) {
	p, err := profile.OrdinalFromRankMatrix([][]int{
		{1, 4, 2},
	})
	require.NoError(t, err)
	require.ErrorIs(t, profile.CheckOrdinal(p, 0), profile.ErrRankOutOfRange)
}

func TestCheckOrdinalRejectsRagged(t *testing.T) {
	_, err := profile.OrdinalFromRankMatrix([][]int{
		{1, 2},
		{1},
	})
	require.ErrorIs(t, err, profile.ErrNotRectangular)
}

func TestRankedOrdersByPreference(t *testing.T) {
	p, err := profile.OrdinalFromRankMatrix([][]int{
		{2, 0, 1, 3},
	})
	require.NoError(t, err)
	require.Equal(t, []int{2, 0, 3}, p.Ranked(0))
}

func TestCheckValuation(t *testing.T) {
	v, err := profile.ValuationFromMatrix([][]float64{
		{3.5, math.NaN(), 1},
	})
	require.NoError(t, err)
	require.NoError(t, profile.CheckValuation(v, false))
	require.ErrorIs(t, profile.CheckValuation(v, true), profile.ErrIncompleteProfile)
	require.False(t, v[0][1].Known())
	require.True(t, v[0][0].Known())
}

func TestCheckConsistent(t *testing.T) {
	p, err := profile.OrdinalFromRankMatrix([][]int{
		{1, 2, 3},
	})
	require.NoError(t, err)

	good, err := profile.ValuationFromMatrix([][]float64{{9, 4, 4}})
	require.NoError(t, err)
	require.NoError(t, profile.CheckConsistent(p, good))

	bad, err := profile.ValuationFromMatrix([][]float64{{4, 9, 4}})
	require.NoError(t, err)
	require.ErrorIs(t, profile.CheckConsistent(p, bad), profile.ErrInconsistent)
}

func TestCheckConsistentShapeMismatch(t *testing.T) {
	p, _ := profile.OrdinalFromRankMatrix([][]int{{1, 2}})
	v, _ := profile.ValuationFromMatrix([][]float64{{1, 2, 3}})
	require.ErrorIs(t, profile.CheckConsistent(p, v), profile.ErrShapeMismatch)
}

func TestOrdinalFromValuationFirst(t *testing.T) {
	v, err := profile.ValuationFromMatrix([][]float64{
		{1, 5, 5, math.NaN()},
	})
	require.NoError(t, err)

	p, err := profile.OrdinalFromValuation(v, profile.TieBreakFirst, nil)
	require.NoError(t, err)
	// tie between 1 and 2 resolves toward the lower index
	require.Equal(t, []int{1, 2, 0}, p.Ranked(0))
	require.False(t, p[0][3].Known())
	require.NoError(t, profile.CheckOrdinal(p, profile.Strict))
}

func TestOrdinalFromValuationRandomNeedsRand(t *testing.T) {
	v, _ := profile.ValuationFromMatrix([][]float64{{1, 2}})
	_, err := profile.OrdinalFromValuation(v, profile.TieBreakRandom, nil)
	require.ErrorIs(t, err, profile.ErrNilRand)
}

func TestOrdinalFromValuationRandomIsSeedStable(t *testing.T) {
	v, _ := profile.ValuationFromMatrix([][]float64{
		{1, 1, 1, 1},
		{2, 2, 1, 1},
	})

	a, err := profile.OrdinalFromValuation(v, profile.TieBreakRandom, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := profile.OrdinalFromValuation(v, profile.TieBreakRandom, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	require.Equal(t, a, b)

	// higher utilities still come first regardless of tie shuffling
	order := b.Ranked(1)
	require.ElementsMatch(t, []int{0, 1}, order[:2])
	require.ElementsMatch(t, []int{2, 3}, order[2:])
}
