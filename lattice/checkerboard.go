package lattice

// Checkerboarding partitions the sites into exactly two classes by the
// parity of t + x. The classes are disjoint, cover every site and differ in
// size by at most one. On even N no two sites of one class are neighbours;
// on odd N the periodic wrap joins sites of equal parity, so local updates
// must use UpdateClasses instead.
// Complexity: O(N²).
func (l *Lattice) Checkerboarding() [2][]int {
	var classes [2][]int
	for s := 0; s < l.Sites; s++ {
		t, x := l.Coordinates(s)
		c := (t + x) % 2
		classes[c] = append(classes[c], s)
	}
	return classes
}

// UpdateClasses partitions the sites (equivalently the plaquettes) into
// classes whose members never share a link, so proposals on one class can
// be evaluated and accepted simultaneously.
//
// Even N: the two checkerboard classes.
// Odd N: each parity class (in centered coordinates) is split into the
// quadrants {t≥0, x≥0} ∪ {t<0, x<0} and the rest, giving four classes.
// Across the wrap the neighbours of equal parity always land in different
// quadrant groups.
// Complexity: O(N²).
func (l *Lattice) UpdateClasses() [][]int {
	if l.N%2 == 0 {
		cb := l.Checkerboarding()
		return [][]int{cb[0], cb[1]}
	}
	classes := make([][]int, 4)
	for s := 0; s < l.Sites; s++ {
		t, x := l.Coordinates(s)
		ct, cx := l.Centered(t, x)
		color := mod(ct+cx, 2)
		left, top := ct >= 0, cx >= 0
		group := 1
		if (left && top) || (!left && !top) {
			group = 0
		}
		c := 2*group + color
		classes[c] = append(classes[c], s)
	}
	return classes
}
