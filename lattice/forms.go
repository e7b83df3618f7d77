package lattice

// Form allocates zeroed storage for count p-forms of the given rank.
// Returns ErrRank for rank outside 0..2.
// Complexity: O(count·size) time and memory.
func Form[E Scalar](l *Lattice, rank, count int) ([][]E, error) {
	size, err := l.Size(rank)
	if err != nil {
		return nil, err
	}
	forms := make([][]E, count)
	for i := range forms {
		forms[i] = make([]E, size)
	}
	return forms, nil
}

// Zeros allocates a single zeroed p-form; it panics on an invalid rank,
// which is a programmer error at every call site in this module.
func Zeros[E Scalar](l *Lattice, rank int) []E {
	size, err := l.Size(rank)
	if err != nil {
		panic(err)
	}
	return make([]E, size)
}

// Size returns the number of scalars in a p-form of the given rank.
func (l *Lattice) Size(rank int) (int, error) {
	switch rank {
	case 0:
		return l.Sites, nil
	case 1:
		return l.Links, nil
	case 2:
		return l.Plaquettes, nil
	default:
		return 0, ErrRank
	}
}

// D0 is the exterior derivative of a 0-form: the forward difference along
// each axis, (d f)_μ(s) = f(s+μ̂) − f(s).
// Complexity: O(N²).
func D0[E Scalar](l *Lattice, f []E) []E {
	mustLen(f, l.Sites)
	out := make([]E, l.Links)
	for mu := T; mu <= X; mu++ {
		next := l.next[mu]
		base := int(mu) * l.Sites
		for s := 0; s < l.Sites; s++ {
			out[base+s] = f[next[s]] - f[s]
		}
	}
	return out
}

// D1 is the exterior derivative of a 1-form, the discrete curl around each
// plaquette: (d a)(s) = a_t(s) + a_x(s+t̂) − a_t(s+x̂) − a_x(s).
// Complexity: O(N²).
func D1[E Scalar](l *Lattice, a []E) []E {
	mustLen(a, l.Links)
	at, ax := a[:l.Sites], a[l.Sites:]
	out := make([]E, l.Plaquettes)
	for s := 0; s < l.Sites; s++ {
		out[s] = at[s] + ax[l.next[T][s]] - at[l.next[X][s]] - ax[s]
	}
	return out
}

// Delta1 is the codifferential of a 1-form, the adjoint of D0:
// (δ a)(s) = a_t(s−t̂) + a_x(s−x̂) − a_t(s) − a_x(s).
// It is the negative lattice divergence, so δa = 0 means no sources.
// Complexity: O(N²).
func Delta1[E Scalar](l *Lattice, a []E) []E {
	mustLen(a, l.Links)
	at, ax := a[:l.Sites], a[l.Sites:]
	out := make([]E, l.Sites)
	for s := 0; s < l.Sites; s++ {
		out[s] = at[l.prev[T][s]] + ax[l.prev[X][s]] - at[s] - ax[s]
	}
	return out
}

// Delta2 is the codifferential of a 2-form, the adjoint of D1:
// (δ v)_t(s) = v(s) − v(s−x̂),  (δ v)_x(s) = v(s−t̂) − v(s).
// Complexity: O(N²).
func Delta2[E Scalar](l *Lattice, v []E) []E {
	mustLen(v, l.Plaquettes)
	out := make([]E, l.Links)
	ot, ox := out[:l.Sites], out[l.Sites:]
	for s := 0; s < l.Sites; s++ {
		ot[s] = v[s] - v[l.prev[X][s]]
		ox[s] = v[l.prev[T][s]] - v[s]
	}
	return out
}

// D applies the exterior derivative to a form of the given rank.
// The derivative of a 2-form would be a 3-form, so rank 2 is ErrRank.
func D[E Scalar](l *Lattice, rank int, form []E) ([]E, error) {
	switch rank {
	case 0:
		return D0(l, form), nil
	case 1:
		return D1(l, form), nil
	default:
		return nil, ErrRank
	}
}

// Delta applies the codifferential to a form of the given rank.
// The codifferential of a 0-form vanishes identically, so rank 0 is ErrRank.
func Delta[E Scalar](l *Lattice, rank int, form []E) ([]E, error) {
	switch rank {
	case 1:
		return Delta1(l, form), nil
	case 2:
		return Delta2(l, form), nil
	default:
		return nil, ErrRank
	}
}

// Roll translates a 0-form (or 2-form) by (dt, dx):
// out(t+dt, x+dx) = f(t, x).
func Roll[E Scalar](l *Lattice, f []E, dt, dx int) []E {
	mustLen(f, l.Sites)
	out := make([]E, l.Sites)
	for s := range f {
		t, x := l.Coordinates(s)
		out[l.Site(t+dt, x+dx)] = f[s]
	}
	return out
}

// Inner is the flat inner product Σ a·b of two forms of equal length.
func Inner[E Scalar](a, b []E) E {
	if len(a) != len(b) {
		panic("lattice: inner product of forms with different lengths")
	}
	var sum E
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// Convert copies a form into another scalar type, e.g. an integer n into
// the float arithmetic of the Villain action.
func Convert[To, From Scalar](f []From) []To {
	out := make([]To, len(f))
	for i, v := range f {
		out[i] = To(v)
	}
	return out
}

// mustLen guards operators against forms of the wrong rank.
func mustLen[E Scalar](f []E, want int) {
	if len(f) != want {
		panic("lattice: form has the wrong size for this operator")
	}
}
