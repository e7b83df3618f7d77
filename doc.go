// Package supervillain samples the two-dimensional compact boson on an N×N
// torus by Markov-chain Monte Carlo, in two exactly dual formulations.
//
// What is in the box?
//
//   - Villain: a real field φ on sites and integer n on links,
//     constrained so that dn ≡ 0 (mod W).
//   - Worldline: integer m on links and v on plaquettes, constrained so
//     that δm = 0. At W = ∞ v is real.
//   - Local Metropolis updates, checkerboard sweeps and worms for both.
//   - Observables that are invariant under each formulation's redundancy.
//   - Chains with inline measurements, resumable snapshots and a run index.
//
// The subpackages, bottom-up:
//
//	lattice/    the torus, p-forms, d and δ, checkerboard colourings
//	action/     Villain and Worldline actions, constraints, transforms
//	generator/  the updater contract, Metropolis kernel, combinators
//	worm/       the closed-worm walk shared by both formulations
//	villain/    updaters for the Villain formulation
//	worldline/  updaters for the Worldline formulation
//	observable/ primary and derived measurements, with a cache
//	ensemble/   chain driver, thinning, Prometheus metrics
//	checkpoint/ zstd snapshots, YAML manifests, sqlite run index
//
// The supervillain command in cmd/supervillain wires all of them together:
//
//	supervillain generate --formulation worldline --n 16 --kappa 0.5 --w inf
//	supervillain extend <run-id> --steps 1000
//	supervillain report <run-id>
//
//	go get github.com/katalvlaran/supervillain
package supervillain

// Version is the release of the module and of its command.
const Version = "v0.1.0"
