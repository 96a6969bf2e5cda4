// Package allocation implements one-sided assignment of indivisible
// items: serial dictatorship, the probabilistic serial rule, and the
// Birkhoff–von Neumann decomposition that turns the latter's fractional
// answer into a lottery over deterministic assignments.
//
// # Serial dictatorship
//
// SerialDictatorship walks agents in a caller-supplied priority order;
// each agent takes the best-ranked item still available, skipping items
// it finds unacceptable. RandomSerialDictatorship draws the order
// uniformly. Agents left without an acceptable item get Unassigned.
//
// # Probabilistic serial
//
// ProbabilisticSerial runs the simultaneous-eating procedure of
// Bogomolnaia & Moulin (2001): every agent eats its favourite remaining
// item at unit speed, switching when the item runs out. The result is a
// bistochastic matrix of assignment probabilities.
//
// # Birkhoff–von Neumann
//
// BirkhoffVonNeumann decomposes a bistochastic matrix into a convex
// combination of permutations by repeatedly extracting a perfect
// matching on the positivity graph (via the flow package) and peeling
// off its minimum entry. SampleAssignment draws one permutation from
// the decomposition, completing the probabilistic-serial lottery.
package allocation
