// Package worldline implements constraint-preserving updates for the
// Worldline formulation: integer 1-form m with δm = 0 and integer 2-form v.
//
// Updates:
//
//   - PlaquetteUpdate: a unit loop of m around a random plaquette, together
//     with a change of v on it.
//   - VortexUpdate: v on one update class at a time.
//   - CoexactUpdate: m += δt with t on one update class; δδt = 0.
//   - WrappingUpdate: one change per straight non-contractible cycle of m.
//   - Worm: charge worms that change m by ±1 along a closed path of sites.
//   - NewHammer: the ergodic composition.
//
// Every energy difference comes from the difference of squares of
// Y = m − δv/W on the links a proposal touches. For W = ∞ the vortex field
// is the real RealV, Y = m − δRealV, and VortexUpdate shifts it by a uniform
// real amount.
package worldline
