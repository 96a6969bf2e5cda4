package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/choicekit/profile"
)

// instance is the on-disk TOML format. Each command consumes one
// table; unused tables are ignored so a single file can describe a
// whole scenario.
//
//	[matching]
//	side1 = [[1, 2], [2, 1]]        # rank matrices, 1-based, 0 = unranked
//	side2 = [[1, 2], [1, 2]]
//	capacities = [1, 1]             # optional, defaults to 1 per side-2 agent
//	values1 = [[10.0, 1.0], [1.0, 10.0]]  # cardinal utilities, for `match --rule optimal`
//	values2 = [[10.0, 1.0], [1.0, 10.0]]
//
//	[election]
//	ballots = [[1, 2, 3], [2, 3, 1]]
//	values = [[10.0, 5.0, 0.0], [0.0, 5.0, 10.0]]  # optional, for `distort`
//
//	[allocation]
//	preferences = [[1, 2], [2, 1]]
//	order = [0, 1]                  # optional dictator order, defaults to 0..n-1
type instance struct {
	Matching   *matchingInstance   `toml:"matching"`
	Election   *electionInstance   `toml:"election"`
	Allocation *allocationInstance `toml:"allocation"`
}

type matchingInstance struct {
	Side1      [][]int     `toml:"side1"`
	Side2      [][]int     `toml:"side2"`
	Capacities []int       `toml:"capacities"`
	Values1    [][]float64 `toml:"values1"`
	Values2    [][]float64 `toml:"values2"`
}

type electionInstance struct {
	Ballots [][]int     `toml:"ballots"`
	Values  [][]float64 `toml:"values"`
}

type allocationInstance struct {
	Preferences [][]int `toml:"preferences"`
	Order       []int   `toml:"order"`
}

// loadInstance reads and parses a TOML instance file.
func loadInstance(path string) (*instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var inst instance
	if err := toml.Unmarshal(data, &inst); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &inst, nil
}

// ordinals converts both rank matrices of a matching instance.
func (m *matchingInstance) ordinals() (profile.Ordinal, profile.Ordinal, error) {
	side1, err := profile.OrdinalFromRankMatrix(m.Side1)
	if err != nil {
		return nil, nil, fmt.Errorf("side1: %w", err)
	}
	side2, err := profile.OrdinalFromRankMatrix(m.Side2)
	if err != nil {
		return nil, nil, fmt.Errorf("side2: %w", err)
	}

	return side1, side2, nil
}

// valuations converts both utility matrices of a matching instance.
func (m *matchingInstance) valuations() (profile.Valuation, profile.Valuation, error) {
	val1, err := profile.ValuationFromMatrix(m.Values1)
	if err != nil {
		return nil, nil, fmt.Errorf("values1: %w", err)
	}
	val2, err := profile.ValuationFromMatrix(m.Values2)
	if err != nil {
		return nil, nil, fmt.Errorf("values2: %w", err)
	}

	return val1, val2, nil
}

// formatFloats renders a float slice space-separated in shortest form.
func formatFloats(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}

	return strings.Join(parts, " ")
}

// formatInts renders an int slice space-separated.
func formatInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, " ")
}
