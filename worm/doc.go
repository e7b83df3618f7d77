// Package worm implements the defect-propagation walk shared by the Villain
// and Worldline worm updates.
//
// What:
//
// A worm opens a pair of defects (head and tail) on one random position,
// moves the head across links (changing an integer field by ±1 on each
// crossing) and closes when head and tail coincide again. Every crossing is
// weighted by the change of a quadratic action,
//
//	X = Background + Step·Field,   ΔS = Coupling·((X + Step·c)² − X²),
//
// so the closed worm is a constraint-valid configuration.
//
// Variants:
//
//   - Geometric (reference): every step draws one of the four moves or the
//     close transition from the normalized weights min(1, e^(−ΔS)); close has
//     weight 1 when head == tail and 0 otherwise. It is exactly reversible.
//   - Classic: on coincidence close with a fixed probability; otherwise pick
//     one of the four moves uniformly and Metropolis-test it. The close
//     probability is not derived from the weights, so Classic only
//     approximates detailed balance.
//
// Histogram:
//
// The walk tallies the head-minus-tail displacement after every transition
// that does not close the worm. For Geometric every transition is a
// crossing, so the histogram sums to Crossings; Classic also tallies
// rejected proposals and sums to Transitions. Either way the sum is
// Transitions, which is what the updaters report as the worm length.
//
// Geometry:
//
// DualMoves hops between plaquettes across the links they share (Villain);
// DirectMoves hops between sites along links (Worldline).
package worm
