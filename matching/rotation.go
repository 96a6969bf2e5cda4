package matching

// findRotations enumerates the rotations exposed by the current
// shortlist state.
//
// The successor graph has one node per man with at least two surviving
// entries and at most one outgoing edge: from m to the current partner
// of the second woman on m's list. Self-loops are omitted. With
// out-degree ≤ 1 every walk eventually revisits a node, so one linear
// sweep with a three-state marker finds every distinct cycle: walk
// unvisited nodes marking them in-progress, and when the walk hits an
// in-progress node, the slice of the walk from that node onward is a
// cycle. Each cycle yields one rotation, the (man, current partner)
// pairs in cycle order.
//
// Complexity: O(n) per call.
func findRotations(s *shortlists) []Rotation {
	const (
		unvisited = iota
		inProgress
		done
	)
	state := make([]int, s.n)

	succ := func(m int) int {
		w := s.second(m)
		if w == -1 {
			return -1
		}
		next := s.lastOf2(w)
		if next == m {
			return -1 // self-loop: no edge
		}

		return next
	}

	var rotations []Rotation
	walk := make([]int, 0, s.n)
	for start := 0; start < s.n; start++ {
		if state[start] != unvisited {
			continue
		}

		walk = walk[:0]
		m := start
		for m != -1 && state[m] == unvisited {
			state[m] = inProgress
			walk = append(walk, m)
			m = succ(m)
		}

		if m != -1 && state[m] == inProgress {
			// slice the walk from the first repeated node onward
			var from int
			for walk[from] != m {
				from++
			}
			rot := make(Rotation, 0, len(walk)-from)
			for _, mm := range walk[from:] {
				rot = append(rot, Pair{M: mm, W: s.partner(mm)})
			}
			rotations = append(rotations, rot)
		}

		for _, mm := range walk {
			state[mm] = done
		}
	}

	return rotations
}

// eliminate removes one rotation from the shortlists: each woman in the
// cycle takes the previous man as her new partner and discards everyone
// she likes less, with the discards mirrored onto the men's lists.
// Every removed (man, woman) pair is recorded in elim under the
// rotation's index. Afterwards each listed man's list is headed by the
// next pair's woman.
func eliminate(s *shortlists, rot Rotation, idx int, elim map[Pair]int) {
	r := len(rot)
	for i := 0; i < r; i++ {
		newPartner := rot[i].M
		w := rot[(i+1)%r].W
		for _, m := range s.truncate(w, newPartner) {
			elim[Pair{M: m, W: w}] = idx
		}
	}
}

// enumerateRotations runs rotation discovery and elimination to a fixed
// point: each round finds every exposed rotation and eliminates them
// all before rediscovering. Rotations found in the same round are
// disjoint in both men and women (their heads form a bijection on the
// cycle members), so a round's eliminations never interfere, and the
// discovery order is a linear extension of the rotation poset.
//
// Returns the rotations in discovery order and the map from each
// eliminated (man, woman) pair to the index of the rotation whose
// elimination removed it.
//
// Complexity: each elimination strictly shrinks a shortlist, so the
// total work is bounded by the initial list mass, O(n²) pair removals.
func enumerateRotations(s *shortlists) ([]Rotation, map[Pair]int) {
	var rotations []Rotation
	elim := make(map[Pair]int)

	for {
		found := findRotations(s)
		if len(found) == 0 {
			break
		}
		for _, rot := range found {
			eliminate(s, rot, len(rotations), elim)
			rotations = append(rotations, rot)
		}
	}

	return rotations, elim
}
