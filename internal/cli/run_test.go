package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

const fixtureTOML = `
[matching]
side1 = [[1, 2], [2, 1]]
side2 = [[2, 1], [1, 2]]
values1 = [[10.0, 1.0], [1.0, 10.0]]
values2 = [[1.0, 20.0], [20.0, 1.0]]

[election]
ballots = [[1, 2, 3, 4], [1, 3, 2, 4], [4, 1, 2, 3], [3, 1, 2, 4], [4, 2, 1, 3]]
values = [[9.0, 3.0, 2.0, 1.0], [9.0, 2.0, 3.0, 1.0], [1.0, 9.0, 3.0, 2.0], [2.0, 9.0, 3.0, 1.0], [1.0, 3.0, 9.0, 2.0]]

[allocation]
preferences = [[1, 2, 3], [1, 3, 2], [2, 1, 3]]
order = [1, 2, 0]
`

func writeFixture(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "instance.toml")
	require.NoError(t, os.WriteFile(path, []byte(fixtureTOML), 0o644))

	return path
}

func quietLogger() *charmlog.Logger {
	return newLogger(io.Discard, charmlog.FatalLevel)
}

func TestLoadInstance(t *testing.T) {
	inst, err := loadInstance(writeFixture(t))
	require.NoError(t, err)

	require.NotNil(t, inst.Matching)
	require.Equal(t, [][]int{{1, 2}, {2, 1}}, inst.Matching.Side1)
	require.Nil(t, inst.Matching.Capacities)

	require.NotNil(t, inst.Election)
	require.Len(t, inst.Election.Ballots, 5)
	require.Len(t, inst.Election.Values, 5)

	require.NotNil(t, inst.Allocation)
	require.Equal(t, []int{1, 2, 0}, inst.Allocation.Order)
}

func TestLoadInstanceErrors(t *testing.T) {
	_, err := loadInstance(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("[matching\n"), 0o644))
	_, err = loadInstance(path)
	require.Error(t, err)
}

func TestRunMatchGaleShapley(t *testing.T) {
	inst, err := loadInstance(writeFixture(t))
	require.NoError(t, err)

	out, err := runMatch(inst.Matching, matchOpts{rule: "galeshapley", proposers: 1}, quietLogger())
	require.NoError(t, err)
	require.Equal(t, "0 0\n1 1\n", out)

	// side 2 proposing flips to the side-2-optimal crossed matching
	out, err = runMatch(inst.Matching, matchOpts{rule: "galeshapley", proposers: 2, oneIndexed: true}, quietLogger())
	require.NoError(t, err)
	require.Equal(t, "1 2\n2 1\n", out)
}

func TestRunMatchOptimal(t *testing.T) {
	inst, err := loadInstance(writeFixture(t))
	require.NoError(t, err)

	// side 2 feels strongly about the crossed pairing (welfare 42 vs 22)
	out, err := runMatch(inst.Matching, matchOpts{rule: "optimal"}, quietLogger())
	require.NoError(t, err)
	require.Equal(t, "0 1\n1 0\n", out)
}

func TestRunMatchUnknownRule(t *testing.T) {
	inst, err := loadInstance(writeFixture(t))
	require.NoError(t, err)

	_, err = runMatch(inst.Matching, matchOpts{rule: "hungarian"}, quietLogger())
	require.ErrorContains(t, err, "unknown matching rule")

	_, err = runMatch(inst.Matching, matchOpts{rule: "galeshapley", proposers: 3}, quietLogger())
	require.ErrorContains(t, err, "proposers")
}

func TestRunVotePositional(t *testing.T) {
	inst, err := loadInstance(writeFixture(t))
	require.NoError(t, err)

	out, err := runVote(inst.Election, voteOpts{rule: "plurality", k: 1, seed: -1}, quietLogger())
	require.NoError(t, err)
	require.Equal(t, "0 1\n", out)

	out, err = runVote(inst.Election, voteOpts{rule: "borda", k: 1, seed: -1}, quietLogger())
	require.NoError(t, err)
	require.Equal(t, "1\n", out)

	out, err = runVote(inst.Election, voteOpts{rule: "plurality", k: 1, seed: -1, lottery: true}, quietLogger())
	require.NoError(t, err)
	require.Equal(t, "0.4 0.4 0.2 0\n", out)
}

func TestRunVoteMultiround(t *testing.T) {
	inst, err := loadInstance(writeFixture(t))
	require.NoError(t, err)

	out, err := runVote(inst.Election, voteOpts{rule: "stv", k: 1, seed: -1, oneIndexed: true}, quietLogger())
	require.NoError(t, err)
	require.Equal(t, "2\n", out)

	out, err = runVote(inst.Election, voteOpts{rule: "copeland", k: 1, seed: -1}, quietLogger())
	require.NoError(t, err)
	require.Equal(t, "1\n", out)
}

func TestRunVoteUnknownRule(t *testing.T) {
	inst, err := loadInstance(writeFixture(t))
	require.NoError(t, err)

	_, err = runVote(inst.Election, voteOpts{rule: "schulze", k: 1, seed: -1}, quietLogger())
	require.ErrorContains(t, err, "unknown voting rule")
}

func TestRunAllocate(t *testing.T) {
	inst, err := loadInstance(writeFixture(t))
	require.NoError(t, err)

	out, err := runAllocate(inst.Allocation, allocateOpts{rule: "serial", seed: -1}, quietLogger())
	require.NoError(t, err)
	require.Equal(t, "2 0 1\n", out)

	// agents 0 and 1 split item 0; all supplies empty at powers of two,
	// so the shares are exact
	out, err = runAllocate(inst.Allocation, allocateOpts{rule: "probabilistic", seed: -1}, quietLogger())
	require.NoError(t, err)
	require.Equal(t, "0.5 0.25 0.25\n0.5 0 0.5\n0 0.75 0.25\n", out)
}

func TestRunAllocateSeedHandling(t *testing.T) {
	inst, err := loadInstance(writeFixture(t))
	require.NoError(t, err)

	_, err = runAllocate(inst.Allocation, allocateOpts{rule: "random-serial", seed: -1}, quietLogger())
	require.ErrorContains(t, err, "--seed")

	out, err := runAllocate(inst.Allocation, allocateOpts{rule: "random-serial", seed: 7}, quietLogger())
	require.NoError(t, err)
	require.Len(t, out, 6) // "a b c\n" over items 0..2

	_, err = runAllocate(inst.Allocation, allocateOpts{rule: "probabilistic", sample: true, seed: -1}, quietLogger())
	require.ErrorContains(t, err, "--seed")
}

func TestRunDistort(t *testing.T) {
	inst, err := loadInstance(writeFixture(t))
	require.NoError(t, err)

	out, err := runDistort(inst.Election, distortOpts{rule: "borda", k: 1}, quietLogger())
	require.NoError(t, err)
	require.Equal(t, "1\n", out)

	_, err = runDistort(inst.Election, distortOpts{rule: "schulze", k: 1}, quietLogger())
	require.ErrorContains(t, err, "unknown positional rule")

	noValues := &electionInstance{Ballots: inst.Election.Ballots}
	_, err = runDistort(noValues, distortOpts{rule: "borda", k: 1}, quietLogger())
	require.ErrorContains(t, err, "values")
}
