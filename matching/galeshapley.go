package matching

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/katalvlaran/choicekit/profile"
)

// waitList is a capacity-bounded waiting list: a max-heap on the
// receiver's rank of each held proposer, so the worst-held proposer is
// always on top, ready to be bumped.
type waitList []waitEntry

type waitEntry struct {
	agent int // proposer index
	rank  int // receiver's rank of the proposer (1 = best)
}

func (w waitList) Len() int            { return len(w) }
func (w waitList) Less(i, j int) bool  { return w[i].rank > w[j].rank }
func (w waitList) Swap(i, j int)       { w[i], w[j] = w[j], w[i] }
func (w *waitList) Push(x interface{}) { *w = append(*w, x.(waitEntry)) }
func (w *waitList) Pop() interface{} {
	old := *w
	last := old[len(old)-1]
	*w = old[:len(old)-1]

	return last
}

// GaleShapley computes a stable many-to-one matching by deferred
// acceptance.
//
// side1 is N×M (agent i's ranking over the M side-2 entities), side2 is
// M×N, and capacities holds one non-negative capacity per side-2
// entity. Both profiles must be strict; incompleteness (unranked cells)
// marks unacceptable pairs, which are auto-rejected regardless of spare
// capacity. The result lists (side-1, side-2) pairs sorted by the
// side-1 index; agents that exhaust their lists are simply absent.
//
// Stability: no pair (i, h) exists where i strictly prefers h to its
// outcome while h strictly prefers i to one of its held agents (or has
// spare capacity and finds i acceptable).
//
// Steps:
//  1. Validate shapes and strictness (O(N·M)).
//  2. Precompute each side's ranked preference orders (O(N·M log M)).
//  3. Simulate proposals from the side selected by opts.Orientation
//     until no proposer has an outstanding unresolved proposal; each
//     receiver holds proposers in a capacity-bounded waitList.
//  4. Read the final held sets into pairs.
//
// Complexity:
//
//	Time:   O(N·M log C) where C is the largest capacity.
//	Memory: O(N·M).
func GaleShapley(side1, side2 profile.Ordinal, capacities []int, opts GSOptions) ([]Pair, error) {
	if err := profile.CheckOrdinal(side1, profile.Strict); err != nil {
		return nil, err
	}
	if err := profile.CheckOrdinal(side2, profile.Strict); err != nil {
		return nil, err
	}

	n, m := side1.Agents(), side1.Alternatives()
	if side2.Agents() != m || side2.Alternatives() != n {
		return nil, fmt.Errorf("%w: side1 %dx%d vs side2 %dx%d",
			ErrShapeMismatch, n, m, side2.Agents(), side2.Alternatives())
	}
	if len(capacities) != m {
		return nil, fmt.Errorf("%w: %d capacities for %d side-2 entities", ErrShapeMismatch, len(capacities), m)
	}
	for h, c := range capacities {
		if c < 0 {
			return nil, fmt.Errorf("%w: negative capacity for side-2 entity %d", ErrShapeMismatch, h)
		}
	}

	var pairs []Pair
	if opts.Orientation == ProposeSide1 {
		pairs = proposeSide1(side1, side2, capacities)
	} else {
		pairs = proposeSide2(side1, side2, capacities)
	}

	sort.Slice(pairs, func(a, b int) bool { return pairs[a].M < pairs[b].M })
	if opts.OneIndexed {
		for i := range pairs {
			pairs[i].M++
			pairs[i].W++
		}
	}

	return pairs, nil
}

// proposeSide1 runs side-1-proposing deferred acceptance.
func proposeSide1(side1, side2 profile.Ordinal, capacities []int) []Pair {
	n := side1.Agents()

	ranked := make([][]int, n)
	for i := 0; i < n; i++ {
		ranked[i] = side1.Ranked(i)
	}
	next := make([]int, n) // next position in ranked[i] to propose to

	held := make([]waitList, side2.Agents())

	// every side-1 agent starts free
	free := make([]int, n)
	for i := range free {
		free[i] = n - 1 - i
	}

	for len(free) > 0 {
		i := free[len(free)-1]
		free = free[:len(free)-1]

		for next[i] < len(ranked[i]) {
			h := ranked[i][next[i]]
			next[i]++

			r := side2[h][i]
			if !r.Known() {
				continue // unacceptable to the receiver: auto-reject
			}

			heap.Push(&held[h], waitEntry{agent: i, rank: r.Position()})
			if held[h].Len() <= capacities[h] {
				break // provisionally accepted
			}

			bumped := heap.Pop(&held[h]).(waitEntry).agent
			if bumped == i {
				continue // rejected outright, keep proposing
			}
			free = append(free, bumped)

			break // accepted, the bumped agent proposes next
		}
		// list exhausted without acceptance: terminally unmatched
	}

	var pairs []Pair
	for h := range held {
		for _, e := range held[h] {
			pairs = append(pairs, Pair{M: e.agent, W: h})
		}
	}

	return pairs
}

// proposeSide2 runs side-2-proposing deferred acceptance. Side-1 agents
// hold at most one offer and trade up; a side-2 entity keeps proposing
// while it has spare capacity and untried acceptable agents.
func proposeSide2(side1, side2 profile.Ordinal, capacities []int) []Pair {
	n, m := side1.Agents(), side2.Agents()

	ranked := make([][]int, m)
	for h := 0; h < m; h++ {
		ranked[h] = side2.Ranked(h)
	}
	next := make([]int, m)
	spare := make([]int, m)
	copy(spare, capacities)

	holder := make([]int, n) // holder[i] = side-2 entity i currently holds, -1 if none
	for i := range holder {
		holder[i] = -1
	}

	active := make([]int, 0, m)
	for h := m - 1; h >= 0; h-- {
		if spare[h] > 0 {
			active = append(active, h)
		}
	}

	for len(active) > 0 {
		h := active[len(active)-1]
		active = active[:len(active)-1]

		for spare[h] > 0 && next[h] < len(ranked[h]) {
			i := ranked[h][next[h]]
			next[h]++

			if !side1[i][h].Known() {
				continue // unacceptable to the receiver: auto-reject
			}

			cur := holder[i]
			if cur == -1 {
				holder[i] = h
				spare[h]--

				continue
			}
			if side1[i][h].Better(side1[i][cur]) {
				holder[i] = h
				spare[h]--
				spare[cur]++
				active = append(active, cur)
			}
		}
		// spare capacity with an exhausted list: terminally undersubscribed
	}

	var pairs []Pair
	for i, h := range holder {
		if h != -1 {
			pairs = append(pairs, Pair{M: i, W: h})
		}
	}

	return pairs
}
