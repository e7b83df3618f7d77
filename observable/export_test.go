package observable

import "github.com/katalvlaran/supervillain/lattice"

// DirectPathForm and DualPathForm expose the fixed paths as 1-forms.
func DirectPathForm(l *lattice.Lattice, dt, dx int) []int {
	return pathForm(l, directPath(l, dt, dx))
}

func DualPathForm(l *lattice.Lattice, dt, dx int) []int {
	return pathForm(l, dualPath(l, dt, dx))
}

func pathForm(l *lattice.Lattice, path []step) []int {
	form := make([]int, l.Links)
	for _, st := range path {
		form[st.link] += st.sign
	}
	return form
}
