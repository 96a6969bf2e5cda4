package voting_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/choicekit/profile"
	"github.com/katalvlaran/choicekit/voting"
)

// Five voters over four alternatives; alternative 1 is the Condorcet
// winner, plurality ties alternatives 0 and 1.
func fixtureElection(t *testing.T) profile.Ordinal {
	t.Helper()

	ranked := [][]int{
		{1, 2, 3, 4},
		{1, 3, 2, 4},
		{2, 3, 4, 1},
		{2, 3, 1, 4},
		{3, 2, 4, 1},
	}
	n, m := len(ranked), len(ranked[0])
	p := make(profile.Ordinal, n)
	for i, row := range ranked {
		p[i] = make([]profile.Rank, m)
		for pos, alt := range row {
			p[i][alt-1] = profile.RankOf(pos + 1)
		}
	}
	require.NoError(t, profile.CheckOrdinal(p, profile.Strict|profile.Complete))

	return p
}

func TestScorePerRule(t *testing.T) {
	p := fixtureElection(t)

	tests := []struct {
		name string
		rule voting.Rule
		opts voting.Options
		want []float64
	}{
		{name: "plurality", rule: voting.Plurality, want: []float64{2, 2, 1, 0}},
		{name: "borda", rule: voting.Borda, want: []float64{7, 11, 10, 2}},
		{name: "veto", rule: voting.Veto, want: []float64{3, 5, 5, 2}},
		{name: "2-approval", rule: voting.KApproval, opts: voting.Options{K: 2}, want: []float64{2, 4, 4, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			scores, err := voting.Score(tc.rule, p, tc.opts)
			require.NoError(t, err)
			require.Equal(t, tc.want, scores)
		})
	}
}

func TestScoreHarmonic(t *testing.T) {
	scores, err := voting.Score(voting.Harmonic, fixtureElection(t), voting.Options{})
	require.NoError(t, err)
	require.Len(t, scores, 4)
	require.InDelta(t, 2.0+1.0/2+1.0/3, scores[0], 1e-12)
	require.InDelta(t, 2.0+1.0+1.0/3, scores[1], 1e-12)
	require.InDelta(t, 1.0/3+3.0/2+1.0, scores[2], 1e-12)
	require.InDelta(t, 3.0/4+2.0/3, scores[3], 1e-12)
}

func TestRanking(t *testing.T) {
	order, scores, err := voting.Ranking(voting.Borda, fixtureElection(t), voting.Options{})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 0, 3}, order)
	require.Equal(t, []float64{11, 10, 7, 2}, scores)
}

func TestRankingOneIndexed(t *testing.T) {
	order, _, err := voting.Ranking(voting.Borda, fixtureElection(t), voting.Options{OneIndexed: true})
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 1, 4}, order)
}

func TestWinnersAndTieBreak(t *testing.T) {
	p := fixtureElection(t)

	winners, err := voting.Winners(voting.Plurality, p, voting.Options{})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, winners)

	first, err := voting.Winner(voting.Plurality, p, profile.TieBreakFirst, nil, voting.Options{})
	require.NoError(t, err)
	require.Equal(t, 0, first)

	random, err := voting.Winner(voting.Plurality, p, profile.TieBreakRandom, rand.New(rand.NewSource(7)), voting.Options{})
	require.NoError(t, err)
	require.Contains(t, []int{0, 1}, random)
}

func TestScoreValidation(t *testing.T) {
	p := fixtureElection(t)

	_, err := voting.Score(voting.Rule(99), p, voting.Options{})
	require.ErrorIs(t, err, voting.ErrUnknownRule)

	_, err = voting.Score(voting.KApproval, p, voting.Options{})
	require.ErrorIs(t, err, voting.ErrInvalidK)

	tied, err := profile.OrdinalFromRankMatrix([][]int{{1, 1, 2, 3}})
	require.NoError(t, err)
	_, err = voting.Score(voting.Borda, tied, voting.Options{})
	require.ErrorIs(t, err, profile.ErrTiedRanks)

	_, err = voting.Winner(voting.Plurality, p, profile.TieBreakRandom, nil, voting.Options{})
	require.ErrorIs(t, err, voting.ErrNilRand)
}

func TestLottery(t *testing.T) {
	p := fixtureElection(t)

	dist, err := voting.Lottery(voting.Plurality, p, voting.Options{})
	require.NoError(t, err)
	require.Equal(t, []float64{0.4, 0.4, 0.2, 0}, dist)

	// zero-probability alternatives are never drawn
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		alt, err := voting.Sample(voting.Plurality, p, rng, voting.Options{})
		require.NoError(t, err)
		require.Contains(t, []int{0, 1, 2}, alt)
	}

	_, err = voting.Sample(voting.Plurality, p, nil, voting.Options{})
	require.ErrorIs(t, err, voting.ErrNilRand)
}

func TestLotteryZeroScores(t *testing.T) {
	solo := profile.Ordinal{{profile.RankOf(1)}}
	_, err := voting.Lottery(voting.Veto, solo, voting.Options{})
	require.ErrorIs(t, err, voting.ErrZeroScores)
}

func TestSTV(t *testing.T) {
	p := fixtureElection(t)

	winner, err := voting.STV(p, profile.TieBreakFirst, nil, voting.Options{})
	require.NoError(t, err)
	require.Equal(t, 1, winner)

	winner, err = voting.STV(p, profile.TieBreakFirst, nil, voting.Options{OneIndexed: true})
	require.NoError(t, err)
	require.Equal(t, 2, winner)

	_, err = voting.STV(p, profile.TieBreakRandom, nil, voting.Options{})
	require.ErrorIs(t, err, voting.ErrNilRand)
}

func TestCopeland(t *testing.T) {
	p := fixtureElection(t)

	scores, err := voting.CopelandScore(p, voting.Options{})
	require.NoError(t, err)
	require.Equal(t, []float64{-1, 3, 1, -3}, scores)

	order, sorted, err := voting.CopelandRanking(p, voting.Options{})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 0, 3}, order)
	require.Equal(t, []float64{3, 1, -1, -3}, sorted)

	// alternative 1 beats every opponent head to head
	winner, err := voting.CopelandWinner(p, profile.TieBreakFirst, nil, voting.Options{})
	require.NoError(t, err)
	require.Equal(t, 1, winner)
}

func TestCopelandExactTie(t *testing.T) {
	// two voters with opposite rankings: every pairwise contest ties
	p, err := profile.OrdinalFromRankMatrix([][]int{
		{1, 2},
		{2, 1},
	})
	require.NoError(t, err)

	winners, err := voting.CopelandWinners(p, voting.Options{})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, winners)
}
