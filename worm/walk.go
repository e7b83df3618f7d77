package worm

import (
	"github.com/katalvlaran/supervillain/generator"
)

// Walk runs one worm to closing on s, modifying s.Field. The tail is drawn
// uniformly and the orientation is a random sign that multiplies every
// offered change.
//
// On error the field may hold an open worm and must be discarded.
// Complexity: O(crossings); the expected length is finite but unbounded.
func Walk(rng Source, s *Surface, opts Options) (Result, error) {
	if err := s.check(); err != nil {
		return Result{}, err
	}
	tail := rng.IntN(len(s.Moves))
	orientation := 1
	if rng.IntN(2) == 0 {
		orientation = -1
	}
	return walk(rng, s, opts, tail, orientation)
}

func walk(rng Source, s *Surface, opts Options, tail, orientation int) (Result, error) {
	res := Result{
		Histogram: make([]float64, s.Lattice.Sites),
		Head:      tail,
		Tail:      tail,
	}
	switch opts.Variant {
	case Classic:
		return res, s.classic(rng, opts.CloseProbability, orientation, &res)
	default:
		return res, s.geometric(rng, orientation, &res)
	}
}

func (s *Surface) geometric(rng Source, orientation int, res *Result) error {
	var weights [5]float64
	for {
		moves := s.Moves[res.Head]
		weights[0] = 0
		if res.Head == res.Tail {
			weights[0] = 1
		}
		total := weights[0]
		for i, mv := range moves {
			a, err := generator.Metropolis(s.cost(mv.Link, orientation*mv.Sign))
			if err != nil {
				return err
			}
			weights[i+1] = a
			total += a
		}
		if total == 0 {
			return ErrZeroWeight
		}

		u := rng.Float64() * total
		choice := len(weights) - 1
		for i, w := range weights {
			if u < w {
				choice = i
				break
			}
			u -= w
		}
		// Rounding can leave u past the last weight; fall back to the last
		// transition with positive weight.
		for weights[choice] == 0 {
			choice--
		}
		if choice == 0 {
			return nil
		}

		s.cross(moves[choice-1], orientation, res)
		res.Transitions++
		res.Histogram[s.Lattice.Displacement(res.Head, res.Tail)]++
	}
}

func (s *Surface) classic(rng Source, closing float64, orientation int, res *Result) error {
	for {
		if res.Head == res.Tail && rng.Float64() < closing {
			return nil
		}
		mv := s.Moves[res.Head][rng.IntN(4)]
		a, err := generator.Metropolis(s.cost(mv.Link, orientation*mv.Sign))
		if err != nil {
			return err
		}
		if rng.Float64() < a {
			s.cross(mv, orientation, res)
		}
		res.Transitions++
		res.Histogram[s.Lattice.Displacement(res.Head, res.Tail)]++
	}
}

// cost is ΔS of changing the field on link by c, from the difference of squares.
func (s *Surface) cost(link, c int) float64 {
	x := s.Background[link] + s.Step*float64(s.Field[link])
	dx := s.Step * float64(c)
	return s.Coupling * dx * (2*x + dx)
}

func (s *Surface) cross(mv Move, orientation int, res *Result) {
	s.Field[mv.Link] += orientation * mv.Sign
	res.Head = mv.To
	res.Crossings++
}

func (s *Surface) check() error {
	l := s.Lattice
	if l == nil || len(s.Moves) != l.Sites || len(s.Background) != l.Links || len(s.Field) != l.Links {
		return ErrSurface
	}
	return nil
}
