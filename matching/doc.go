// Package matching implements two-sided stable matching: capacitated
// Gale–Shapley deferred acceptance and Irving's rotation algorithm for
// the welfare-optimal (egalitarian) stable marriage.
//
// # Gale–Shapley
//
// GaleShapley runs deferred acceptance over two strict ordinal profiles
// (side 1: N×M, side 2: M×N) and a side-2 capacity vector. The
// proposing side is selected by Orientation; the proposing side
// receives its optimal stable outcome, the receiving side its
// pessimal one — that asymmetry is inherent to deferred acceptance.
// Unacceptable pairs (unranked on either side) are never matched, and
// an agent that exhausts its list stays unmatched; neither is an error.
//
// # Irving's optimal stable marriage
//
// Optimal computes the stable matching maximizing total cardinal
// welfare for the one-to-one, equal-sized, complete-list case (the
// stable marriage problem), per Irving, Leather & Gusfield (1987):
//
//  1. Deferred acceptance (side 1 proposing) yields the side-1-optimal
//     matching.
//  2. Shortlists are reduced per Irving's lemma: each side-2 agent
//     discards everyone below its current partner, mirrored onto
//     side 1. In the reduced lists, a man's partner heads his list and
//     a woman's partner closes hers.
//  3. Rotations — cyclic partner exchanges exposing neighbouring stable
//     matchings — are enumerated round by round on a successor graph
//     with out-degree ≤ 1, eliminating each round's rotations and
//     recording which rotation removed each pair.
//  4. The rotations form a poset under "must be eliminated first";
//     eliminating any predecessor-closed subset yields a stable
//     matching, and every stable matching arises this way.
//  5. Each rotation is weighted by the net welfare change its
//     elimination causes; the maximum-weight closed subset is picked by
//     a min-cut reduction on package flow, and applying it in
//     discovery order (a linear extension of the poset) produces the
//     optimal stable matching.
//
// RotationWeight and Value are exported so callers can weigh rotations
// and compare matchings produced by different algorithms.
//
// # Indexing
//
// All inputs and outputs are 0-based. OneIndexed shifts returned pair
// indices by +1 at the boundary for interoperability with 1-indexed
// datasets; nothing internal ever sees a 1-based index.
//
// # Errors
//
//	ErrShapeMismatch      - profile dimensions disagree (or capacities).
//	ErrNotSquare          - Optimal needs equal-sized square profiles.
//	ErrImperfectMatching  - deferred acceptance failed to produce a
//	                        bijection from complete profiles; the inputs
//	                        are inconsistent, no partial result exists.
//
// Profile-content violations (ties in a strict profile, incomplete
// valuations, ordinal/cardinal contradictions) surface as the
// corresponding profile package errors before any algorithmic work.
package matching
