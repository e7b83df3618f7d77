package lattice

import "fmt"

// New constructs an n×n torus. It precomputes the periodic neighbour tables
// so that every operator runs without modular arithmetic in its inner loop.
// Returns ErrBadSize if n < 2.
// Complexity: O(n²) time and memory.
func New(n int) (*Lattice, error) {
	if n < 2 {
		return nil, ErrBadSize
	}
	sites := n * n
	l := &Lattice{
		N:          n,
		Sites:      sites,
		Links:      Dimensions * sites,
		Plaquettes: sites, // 2D: one plaquette per site
	}
	for mu := 0; mu < Dimensions; mu++ {
		l.next[mu] = make([]int, sites)
		l.prev[mu] = make([]int, sites)
	}
	for t := 0; t < n; t++ {
		for x := 0; x < n; x++ {
			s := t*n + x
			l.next[T][s] = l.Site(t+1, x)
			l.prev[T][s] = l.Site(t-1, x)
			l.next[X][s] = l.Site(t, x+1)
			l.prev[X][s] = l.Site(t, x-1)
		}
	}

	return l, nil
}

// MustNew is New for sizes known to be valid; it panics on ErrBadSize.
func MustNew(n int) *Lattice {
	l, err := New(n)
	if err != nil {
		panic(err)
	}
	return l
}

// String formats the lattice as Lattice2D(N,N).
func (l *Lattice) String() string {
	return fmt.Sprintf("Lattice2D(%d,%d)", l.N, l.N)
}

// Mod maps arbitrary integer coordinates onto the torus, into [0, N).
// Complexity: O(1).
func (l *Lattice) Mod(t, x int) (int, int) {
	return mod(t, l.N), mod(x, l.N)
}

// Centered maps coordinates onto the FFT convention
// [0, 1, …, N/2, −N/2+1, …, −1], so displacements are as short as possible.
// Complexity: O(1).
func (l *Lattice) Centered(t, x int) (int, int) {
	t, x = l.Mod(t, x)
	return center(t, l.N), center(x, l.N)
}

// Site returns the index of the site at (t, x), wrapping periodically.
// Complexity: O(1).
func (l *Lattice) Site(t, x int) int {
	t, x = l.Mod(t, x)
	return t*l.N + x
}

// Coordinates converts a site index back to (t, x) in [0, N).
// Complexity: O(1).
func (l *Lattice) Coordinates(s int) (t, x int) {
	return s / l.N, s % l.N
}

// Next returns the neighbour of s one step forward along mu.
func (l *Lattice) Next(s int, mu Direction) int {
	return l.next[mu][s]
}

// Prev returns the neighbour of s one step backward along mu.
func (l *Lattice) Prev(s int, mu Direction) int {
	return l.prev[mu][s]
}

// Link returns the 1-form index of the link leaving s along mu.
func (l *Lattice) Link(mu Direction, s int) int {
	return int(mu)*l.Sites + s
}

// LinkSite splits a 1-form index into its direction and base site.
func (l *Lattice) LinkSite(link int) (Direction, int) {
	return Direction(link / l.Sites), link % l.Sites
}

// Displacement returns the site index of mod(a − b), the periodic separation
// of two sites (or two plaquettes) measured from b.
// Complexity: O(1).
func (l *Lattice) Displacement(a, b int) int {
	at, ax := l.Coordinates(a)
	bt, bx := l.Coordinates(b)
	return l.Site(at-bt, ax-bx)
}

// DistanceSquared returns the squared Euclidean length of the shortest
// periodic displacement between sites a and b.
func (l *Lattice) DistanceSquared(a, b int) int {
	at, ax := l.Coordinates(a)
	bt, bx := l.Coordinates(b)
	dt, dx := l.Centered(at-bt, ax-bx)
	return dt*dt + dx*dx
}

// mod is the non-negative remainder of a by n.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

// center shifts a coordinate in [0, n) into the FFT convention.
func center(a, n int) int {
	if a > n/2 {
		return a - n
	}
	return a
}
