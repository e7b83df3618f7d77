package worm

import "github.com/katalvlaran/supervillain/lattice"

// DualMoves returns the plaquette-to-plaquette crossings, in the order
// east (x−1), north (t+1), west (x+1), south (t−1). Sign is the orientation of
// the crossed link in the boundary of the departing plaquette, so a closed
// walk changes the field by an exact loop with vanishing curl.
// Complexity: O(N²).
func DualMoves(l *lattice.Lattice) Moves {
	moves := make(Moves, l.Plaquettes)
	for p := range moves {
		north, west := l.Next(p, lattice.T), l.Next(p, lattice.X)
		moves[p] = [4]Move{
			{To: l.Prev(p, lattice.X), Link: l.Link(lattice.T, p), Sign: +1},
			{To: north, Link: l.Link(lattice.X, north), Sign: +1},
			{To: west, Link: l.Link(lattice.T, west), Sign: -1},
			{To: l.Prev(p, lattice.T), Link: l.Link(lattice.X, p), Sign: -1},
		}
	}
	return moves
}

// DirectMoves returns the site-to-site crossings, in the order t+1, x+1,
// t−1, x−1. Sign is +1 when the head travels along the link's orientation,
// so a closed walk changes the field by a loop with vanishing divergence.
// Complexity: O(N²).
func DirectMoves(l *lattice.Lattice) Moves {
	moves := make(Moves, l.Sites)
	for s := range moves {
		back, left := l.Prev(s, lattice.T), l.Prev(s, lattice.X)
		moves[s] = [4]Move{
			{To: l.Next(s, lattice.T), Link: l.Link(lattice.T, s), Sign: +1},
			{To: l.Next(s, lattice.X), Link: l.Link(lattice.X, s), Sign: +1},
			{To: back, Link: l.Link(lattice.T, back), Sign: -1},
			{To: left, Link: l.Link(lattice.X, left), Sign: -1},
		}
	}
	return moves
}
