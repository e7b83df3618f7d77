// Package villain implements constraint-preserving updates for the Villain
// formulation: a real 0-form φ and an integer 1-form n with d(n) ≡ 0 (mod W).
//
// Updates:
//
//   - SiteUpdate: φ on one update class at a time.
//   - LinkUpdate: n += W·c on every link independently (finite W).
//   - NeighborhoodUpdate: a random site's φ together with W-multiples on its
//     four links (finite W).
//   - ExactUpdate: n += dz with z on one update class; d(dz) = 0.
//   - HolonomyUpdate: one change per straight strip of parallel links.
//   - Worm: vortex worms that change n by ±1 along a closed dual path.
//   - NewHammer: the ergodic composition of the above.
//
// All energy differences come from the difference of squares on the links a
// proposal touches. φ and n are only ever changed in ways that keep d(n)
// divisible by W, so no proposal needs a validity check.
package villain
