// Package action defines the two dual formulations of the 2D Villain model
// and the configurations they act on.
//
// What:
//
//   - Villain: a real 0-form φ and an integer 1-form n with
//     S = κ/2 · Σ_links (dφ − 2πn)², subject to d(n) ≡ 0 (mod W).
//   - Worldline: integer 1-form m and integer 2-form v with
//     S = 1/(2κ) · Σ_links (m − δv/W)² + C, subject to δ(m) = 0.
//   - Modulus W is a positive integer or Infinity. At W = ∞ the Villain
//     constraint is d(n) = 0 exactly, and the Worldline vortex field is a
//     real 2-form RealV that replaces v/W: S = 1/(2κ) · Σ (m − δRealV)² + C.
//
// Symmetries:
//
//	Villain     φ → φ + 2πk,  n → n + dk          (integer 0-form k)
//	Worldline   v → v + λW,   m → m + δλ          (integer 2-form λ)
//
// Both leave the action density unchanged. CanonicalV picks the Worldline
// representative with v ∈ [0, W).
//
// Dispatch:
//
// Code that must treat the formulations differently switches on Kind; the
// set of kinds is closed.
//
// Errors:
//
//   - ErrBadKappa, ErrBadModulus: rejected at construction.
//   - ErrShape: a configuration lacks the fields of the formulation.
//   - ErrConstraintViolated: Energy was asked to evaluate an invalid state.
package action
