package generator

import (
	"fmt"

	"github.com/katalvlaran/supervillain/action"
)

// Generator is one Markov-chain update.
type Generator interface {
	// Step returns the next configuration. It must not modify cfg.
	Step(cfg action.Configuration) (action.Configuration, error)
	// InlineObservables returns zeroed storage for the observables Step
	// attaches to its output, one row per planned step.
	InlineObservables(steps int) map[string][][]float64
	// Report summarizes the generator's acceptance so far.
	Report() string

	String() string
}

// Stateful generators can persist their counters and random stream.
type Stateful interface {
	MarshalState() ([]byte, error)
	UnmarshalState(data []byte) error
}

// Stats are the running counters of one updater.
//
// Acceptance accumulates the mean Metropolis probability of every sweep, so
// Acceptance/Sweeps is comparable with Accepted/Proposed.
type Stats struct {
	Proposed   int
	Accepted   int
	Acceptance float64
	Sweeps     int
}

// Record books one sweep: proposed proposals, of which accepted were taken,
// with acceptance the summed Metropolis probability.
func (s *Stats) Record(proposed, accepted int, acceptance float64) {
	s.Sweeps++
	s.Proposed += proposed
	s.Accepted += accepted
	if proposed > 0 {
		s.Acceptance += acceptance / float64(proposed)
	}
}

// Rate returns Accepted/Proposed, or 0 before the first proposal.
func (s Stats) Rate() float64 {
	if s.Proposed == 0 {
		return 0
	}
	return float64(s.Accepted) / float64(s.Proposed)
}

// MeanAcceptance returns the average Metropolis probability per sweep.
func (s Stats) MeanAcceptance() float64 {
	if s.Sweeps == 0 {
		return 0
	}
	return s.Acceptance / float64(s.Sweeps)
}

// Summary formats the counters for proposals of the given kind.
func (s Stats) Summary(kind string) string {
	return fmt.Sprintf(
		"There were %d %s proposals accepted of %d proposed updates.\n"+
			"    %.6f acceptance rate\n"+
			"    %.6f average Metropolis acceptance probability.",
		s.Accepted, kind, s.Proposed, s.Rate(), s.MeanAcceptance())
}
