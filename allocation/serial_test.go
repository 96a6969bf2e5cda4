package allocation_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/choicekit/allocation"
	"github.com/katalvlaran/choicekit/profile"
)

// Three agents, four items; tops are disjoint, so every priority order
// produces the same allocation.
func fixturePreferences(t *testing.T) profile.Ordinal {
	t.Helper()

	p, err := profile.OrdinalFromRankMatrix([][]int{
		{1, 2, 3, 4},
		{2, 1, 0, 0},
		{3, 0, 2, 1},
	})
	require.NoError(t, err)

	return p
}

func TestSerialDictatorship(t *testing.T) {
	p := fixturePreferences(t)

	for _, order := range [][]int{{0, 1, 2}, {2, 1, 0}, {1, 2, 0}} {
		out, err := allocation.SerialDictatorship(p, order, allocation.Options{})
		require.NoError(t, err)
		require.Equal(t, []int{0, 1, 3}, out)
	}

	out, err := allocation.SerialDictatorship(p, []int{0, 1, 2}, allocation.Options{OneIndexed: true})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 4}, out)
}

func TestSerialDictatorshipContested(t *testing.T) {
	p, err := profile.OrdinalFromRankMatrix([][]int{
		{1, 2},
		{1, 2},
	})
	require.NoError(t, err)

	out, err := allocation.SerialDictatorship(p, []int{0, 1}, allocation.Options{})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, out)

	out, err = allocation.SerialDictatorship(p, []int{1, 0}, allocation.Options{})
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, out)
}

func TestSerialDictatorshipUnassigned(t *testing.T) {
	// the last agent ranks nothing and stays unassigned
	p, err := profile.OrdinalFromRankMatrix([][]int{
		{1, 2, 3, 4},
		{2, 1, 0, 0},
		{3, 0, 2, 1},
		{0, 0, 0, 0},
	})
	require.NoError(t, err)

	out, err := allocation.SerialDictatorship(p, []int{0, 1, 2, 3}, allocation.Options{})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 3, allocation.Unassigned}, out)
}

func TestSerialDictatorshipBadOrder(t *testing.T) {
	p := fixturePreferences(t)

	for _, order := range [][]int{{0, 1}, {0, 1, 1}, {0, 1, 5}, {0, 1, -1}} {
		_, err := allocation.SerialDictatorship(p, order, allocation.Options{})
		require.ErrorIs(t, err, allocation.ErrBadOrder)
	}
}

func TestRandomSerialDictatorship(t *testing.T) {
	p := fixturePreferences(t)

	out, err := allocation.RandomSerialDictatorship(p, rand.New(rand.NewSource(11)), allocation.Options{})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 3}, out)

	_, err = allocation.RandomSerialDictatorship(p, nil, allocation.Options{})
	require.ErrorIs(t, err, allocation.ErrNilRand)
}
