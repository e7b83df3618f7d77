// Package lattice implements the geometry of a two-dimensional square torus
// and the discrete exterior calculus that lives on it.
//
// What:
//
//   - Lattice wraps an N×N periodic lattice with coordinates (t, x).
//   - p-forms are flat slices: 0-forms and 2-forms hold one value per
//     site/plaquette, 1-forms hold two values per site (one per direction).
//   - D0, D1 are the exterior derivative (forward differences with periodic
//     wraparound); Delta1, Delta2 are its adjoint, the codifferential.
//   - Checkerboarding splits the sites by parity; UpdateClasses yields the
//     classes that are safe for simultaneous local proposals.
//
// Layout:
//
//	site      s = t·N + x
//	1-form    a[μ·Sites + s]  is the link from s to s+μ̂  (μ=0: t, μ=1: x)
//	2-form    v[s]            is the plaquette with lower-left corner s
//
//	      x
//	      ^      (0,s+x̂)
//	      |    +---->---+
//	      |    |        |
//	   (1,s)   ^   s    ^ (1,s+t̂)
//	      |    |        |
//	      |    s---->---+
//	      |      (0,s)
//	      o-------------> t
//
// Identities (exact for integer forms, tested):
//
//	D1(D0(f)) = 0        Delta1(Delta2(v)) = 0
//	⟨D0 f, a⟩ = ⟨f, Delta1 a⟩   ⟨D1 a, v⟩ = ⟨a, Delta2 v⟩
//
// Complexity:
//
//   - New: O(N²) time and memory (neighbour tables are precomputed).
//   - D0, D1, Delta1, Delta2: O(N²).
//   - Correlation: O(N⁴); intended for the small lattices MCMC runs use.
//
// Errors:
//
//   - ErrBadSize: side length below 2.
//   - ErrRank: a form rank that does not exist in two dimensions.
package lattice
