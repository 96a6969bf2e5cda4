// Package choicekit is an in-memory toolkit for computational social
// choice: stable matching, voting, fair allocation and distortion.
//
// 🚀 What is choicekit?
//
//	A pure-Go library (plus a small CLI) that brings together:
//		• Profiles: ordinal & cardinal preference matrices with validation
//		• Matching: capacitated Gale–Shapley, the Irving rotation engine,
//		  egalitarian (welfare-optimal) stable marriage
//		• Flow: Edmonds–Karp max-flow / min-cut & bipartite matching
//		• Voting: plurality, Borda, veto, k-approval, harmonic, lotteries,
//		  STV, Copeland
//		• Allocation: serial dictatorship, probabilistic serial,
//		  Birkhoff–von Neumann decomposition
//		• Distortion: welfare ratios & the instance-optimal LP bound
//
// ✨ Why choose choicekit?
//
//   - Deterministic by default – randomness is always injected, never global
//   - Explicit errors – sentinel errors per package, no panics in library code
//   - Zero-based indices – with a OneIndexed option at every public boundary
//
// Everything is organized under flat, per-concern packages:
//
//	profile/    — preference profiles, validation, ordinal derivation
//	flow/       — max-flow / min-cut primitive & bipartite matching
//	matching/   — deferred acceptance & the rotation machinery
//	voting/     — scoring rules, lotteries, STV, Copeland
//	allocation/ — one-sided assignment rules
//	distortion/ — welfare-loss bounds (lpsimplex-backed LP)
//	cmd/        — the choicekit CLI (TOML instances in, results out)
//
//	go get github.com/katalvlaran/choicekit
package choicekit
