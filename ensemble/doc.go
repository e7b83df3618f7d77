// Package ensemble drives Markov chains and holds their output.
//
// Generate calls a generator's Step in a loop and records every
// configuration with a monotonically increasing index, together with the
// inline observables the generator attaches (pre-sized to the planned
// length). Extend continues a chain from its last configuration; Cut and
// Every drop thermalization and thin the chain.
//
// Cancellation is honoured between steps only. Measurements of field
// observables are memoized per ensemble in an observable.Cache that is
// invalidated whenever the chain changes.
package ensemble
