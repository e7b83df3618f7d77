// Package generator defines the Markov-chain update contract and the
// pieces every concrete updater shares.
//
// What:
//
//   - Generator: Step takes a configuration and returns a new, constraint
//     valid one without touching its input.
//   - Sequentially threads the output of each generator into the next;
//     KeepEvery thins a chain, averaging inline observables over the block.
//   - Constrained checks the constraint after every step; Logged times steps.
//   - Stream is a seeded PCG source whose position can be persisted, so a
//     resumed chain continues the same random sequence.
//   - Sweeper runs a per-element kernel over one update class, serially or
//     with bounded parallelism.
//   - Base carries the counters and stream of a leaf updater and implements
//     Stateful for it.
//
// Determinism:
//
// Given the same seeds every generator produces the same chain, independent
// of the Sweeper's parallelism: all random numbers of a class are drawn
// serially before the kernel runs.
//
// Errors:
//
//   - ErrBadStride: KeepEvery with k < 1.
//   - ErrNaN: a NaN energy difference reached Metropolis.
//   - ErrWrongAction: an updater was handed the other formulation.
//   - ErrInfiniteModulus: an update that needs finite W was built with W = ∞.
//   - ErrBadInterval: a proposal interval that is empty or unbounded.
//   - ErrState: persisted state could not be decoded.
package generator
