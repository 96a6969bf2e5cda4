package matching

import "github.com/katalvlaran/choicekit/profile"

// shortlists holds the reduced preference lists the rotation machinery
// mutates. Both sides are stored best-first: lists1[m][0] is man m's
// current partner, lists2[w][len-1] is woman w's. rank1/rank2 are
// constant lookup tables (1-based positions) surviving all mutation.
type shortlists struct {
	n      int
	lists1 [][]int
	lists2 [][]int
	rank1  [][]int // rank1[m][w] = m's rank of w
	rank2  [][]int // rank2[w][m] = w's rank of m
}

// buildShortlists reduces the full preference lists around the
// side-1-optimal matching (match[m] = w) per Irving's lemma: each woman
// discards every man strictly below her current partner, and a man
// keeps exactly the women who still list him. One pass per side
// suffices, because "w still lists m" is the single predicate
// rank2[w][m] ≤ rank2[w][partner(w)] — mutual consistency needs no
// iteration.
//
// Complexity: O(n²).
func buildShortlists(side1, side2 profile.Ordinal, match []int) *shortlists {
	n := len(match)
	s := &shortlists{
		n:      n,
		lists1: make([][]int, n),
		lists2: make([][]int, n),
		rank1:  make([][]int, n),
		rank2:  make([][]int, n),
	}
	for i := 0; i < n; i++ {
		s.rank1[i] = make([]int, n)
		s.rank2[i] = make([]int, n)
		for j := 0; j < n; j++ {
			s.rank1[i][j] = side1[i][j].Position()
			s.rank2[i][j] = side2[i][j].Position()
		}
	}

	// cutoff[w] = w's rank of her current partner
	cutoff := make([]int, n)
	for m, w := range match {
		cutoff[w] = s.rank2[w][m]
	}

	for m := 0; m < n; m++ {
		for _, w := range side1.Ranked(m) {
			if s.rank2[w][m] <= cutoff[w] {
				s.lists1[m] = append(s.lists1[m], w)
			}
		}
	}
	for w := 0; w < n; w++ {
		for _, m := range side2.Ranked(w) {
			if s.rank2[w][m] <= cutoff[w] {
				s.lists2[w] = append(s.lists2[w], m)
			}
		}
	}

	return s
}

// cloneLists1 snapshots the side-1 lists; poset construction needs them
// as they stood before elimination destroys them.
func (s *shortlists) cloneLists1() [][]int {
	out := make([][]int, s.n)
	for m, list := range s.lists1 {
		out[m] = append([]int(nil), list...)
	}

	return out
}

// partner returns the head of m's list, -1 when the list is empty.
func (s *shortlists) partner(m int) int {
	if len(s.lists1[m]) == 0 {
		return -1
	}

	return s.lists1[m][0]
}

// second returns the second entry of m's list, -1 when shorter.
func (s *shortlists) second(m int) int {
	if len(s.lists1[m]) < 2 {
		return -1
	}

	return s.lists1[m][1]
}

// lastOf2 returns the tail of w's list (her current partner), -1 when empty.
func (s *shortlists) lastOf2(w int) int {
	list := s.lists2[w]
	if len(list) == 0 {
		return -1
	}

	return list[len(list)-1]
}

// truncate removes from w's list every man ranked strictly below
// newPartner, mirrors each removal onto the men's lists, and returns
// the removed men (best-first).
func (s *shortlists) truncate(w, newPartner int) []int {
	limit := s.rank2[w][newPartner]
	list := s.lists2[w]

	cut := len(list)
	for cut > 0 && s.rank2[w][list[cut-1]] > limit {
		cut--
	}
	removed := list[cut:]
	s.lists2[w] = list[:cut]

	for _, m := range removed {
		s.removeFrom1(m, w)
	}

	return removed
}

// removeFrom1 deletes w from m's list, preserving order.
func (s *shortlists) removeFrom1(m, w int) {
	list := s.lists1[m]
	for i, x := range list {
		if x == w {
			s.lists1[m] = append(list[:i], list[i+1:]...)

			return
		}
	}
}
