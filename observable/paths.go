package observable

import (
	"math"

	"github.com/katalvlaran/supervillain/lattice"
)

// step is one link of a fixed path and the orientation it is traced with.
type step struct {
	link int
	sign int
}

// directPath runs over links from site 0 to the site at (dt, dx), first
// along t and then along x. Its codifferential is +1 at the far end and −1
// at the origin.
func directPath(l *lattice.Lattice, dt, dx int) []step {
	path := make([]step, 0, abs(dt)+abs(dx))
	for t := 0; t < dt; t++ {
		path = append(path, step{l.Link(lattice.T, l.Site(t, 0)), +1})
	}
	for t := dt; t < 0; t++ {
		path = append(path, step{l.Link(lattice.T, l.Site(t, 0)), -1})
	}
	for x := 0; x < dx; x++ {
		path = append(path, step{l.Link(lattice.X, l.Site(dt, x)), +1})
	}
	for x := dx; x < 0; x++ {
		path = append(path, step{l.Link(lattice.X, l.Site(dt, x)), -1})
	}
	return path
}

// dualPath crosses links from plaquette 0 to the plaquette at (dt, dx),
// first along t and then along x. Its exterior derivative is +1 on the
// origin and −1 on the far end.
func dualPath(l *lattice.Lattice, dt, dx int) []step {
	path := make([]step, 0, abs(dt)+abs(dx))
	for t := 1; t <= dt; t++ {
		path = append(path, step{l.Link(lattice.X, l.Site(t, 0)), +1})
	}
	for t := dt + 1; t <= 0; t++ {
		path = append(path, step{l.Link(lattice.X, l.Site(t, 0)), -1})
	}
	for x := 1; x <= dx; x++ {
		path = append(path, step{l.Link(lattice.T, l.Site(dt, x)), -1})
	}
	for x := dx + 1; x <= 0; x++ {
		path = append(path, step{l.Link(lattice.T, l.Site(dt, x)), +1})
	}
	return path
}

// translate returns link moved by the site offset of origin.
func translate(l *lattice.Lattice, link, origin int) int {
	mu, s := l.LinkSite(link)
	t, x := l.Coordinates(s)
	ot, ox := l.Coordinates(origin)
	return l.Link(mu, l.Site(t+ot, x+ox))
}

// pathAverage returns, for every displacement, the mean over all origins of
// exp(−cost(path shifted to origin)). cost receives each shifted link and its
// orientation and returns that link's contribution.
func pathAverage(l *lattice.Lattice, build func(l *lattice.Lattice, dt, dx int) []step, cost func(link, sign int) float64) []float64 {
	out := make([]float64, l.Sites)
	for delta := 0; delta < l.Sites; delta++ {
		path := centeredPath(l, build, delta)
		var sum float64
		for origin := 0; origin < l.Sites; origin++ {
			sum += pathWeight(l, path, origin, cost)
		}
		out[delta] = sum / float64(l.Sites)
	}
	return out
}

// pathAtOrigin is pathAverage with the path laid down from site 0 only.
func pathAtOrigin(l *lattice.Lattice, build func(l *lattice.Lattice, dt, dx int) []step, cost func(link, sign int) float64) []float64 {
	out := make([]float64, l.Sites)
	for delta := 0; delta < l.Sites; delta++ {
		out[delta] = pathWeight(l, centeredPath(l, build, delta), 0, cost)
	}
	return out
}

func centeredPath(l *lattice.Lattice, build func(l *lattice.Lattice, dt, dx int) []step, delta int) []step {
	dt, dx := l.Coordinates(delta)
	dt, dx = l.Centered(dt, dx)
	return build(l, dt, dx)
}

func pathWeight(l *lattice.Lattice, path []step, origin int, cost func(link, sign int) float64) float64 {
	var dS float64
	for _, st := range path {
		dS += cost(translate(l, st.link, origin), st.sign)
	}
	return math.Exp(-dS)
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
