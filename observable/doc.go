// Package observable measures configurations of either formulation.
//
// Observables form a closed set. Each one is implemented for every
// action.Kind it supports, selected by a switch on the kind, so a missing
// combination is ErrUnsupported and never a lookup failure at run time.
//
// Field observables:
//
//   - ActionDensity:             S / Sites.
//   - InternalEnergyDensity:     ⟨κ ∂_κ S⟩ / Sites.
//   - Links:                     dφ − 2πn (Villain) or m − δv/W (Worldline).
//   - WindingSquared:            mean plaquette winding squared.
//   - TopologicalSusceptibility: mean (dn)² (Villain only).
//   - TorusWrapping:             net flux around each cycle of the torus.
//   - Spin_Spin, Vortex_Vortex:  two-point functions indexed by displacement.
//   - Winding_Winding:           plaquette winding two-point function.
//   - Vertex_Vertex:             boson creation/destruction two-point function.
//   - SloppySpin_Spin:           Spin_Spin from a single origin per configuration.
//
// Every observable is invariant under the Villain gauge transformation and
// the Worldline equivalence transformation.
//
// The susceptibilities, their finite-size scalings and the vortex critical
// moment are derived from averaged correlators rather than from single
// configurations. Cache memoizes measurements over a chain and is owned by
// whoever owns the chain.
package observable
