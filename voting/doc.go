// Package voting implements single-winner voting rules over strict
// complete ordinal profiles.
//
// # Positional scoring rules
//
// A Rule value selects the per-position score a voter contributes:
//
//   - Plurality — 1 for the top choice, 0 otherwise.
//   - Borda     — M−r for the choice at rank r.
//   - Veto      — 1 for everything except the last choice.
//   - KApproval — 1 for the top K choices (K from Options).
//   - Harmonic  — 1/r for the choice at rank r.
//
// Score sums the contributions per alternative, Ranking orders
// alternatives by descending score (the social welfare function),
// Winners returns every top scorer and Winner resolves ties down to a
// single alternative under a profile.TieBreak policy. Lottery and
// Sample expose the randomized variants, where an alternative wins
// with probability proportional to its score.
//
// # Multi-round and tournament rules
//
// STV runs single-transferable-vote rounds: the lowest plurality
// scorer among the remaining alternatives is dropped (ties resolved by
// policy) until one remains. Copeland scores each alternative with its
// net pairwise record, +1 per majority win and −1 per loss;
// CopelandRanking/CopelandWinner mirror the positional API.
//
// All rules validate their profile (strict, complete) and return
// 0-based alternatives unless Options.OneIndexed is set.
package voting
