// Package distortion quantifies the welfare loss of voting on ordinal
// information alone, per Procaccia & Rosenschein (2006).
//
// Distortion compares the best achievable social welfare against the
// welfare of a chosen alternative:
//
//	distortion(a | v) = max_b SW(b | v) / SW(a | v)
//
// Distortion evaluates that ratio for a concrete winner (or winner
// set, scored by its worst member) under a cardinal valuation profile;
// SocialWelfare exposes the per-alternative totals.
//
// Optimal computes the best distortion any randomized voting rule can
// guarantee on a given ordinal profile — the instance-optimal bound of
// Ebadian et al. (2024) — by solving their linear program with the
// lpsimplex dense solver. OptimalLP additionally returns the witness
// vector p̂; dividing it by the objective value yields the winning
// lottery over alternatives.
package distortion
