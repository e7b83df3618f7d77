package checkpoint

import (
	"fmt"

	"github.com/katalvlaran/supervillain/action"
	"github.com/katalvlaran/supervillain/lattice"
)

// Version of the snapshot layout written by this package.
const Version = 1

// ActionSpec is the serializable description of an action.
type ActionSpec struct {
	Kind  action.Kind    `json:"kind" yaml:"kind"`
	N     int            `json:"n" yaml:"n"`
	Kappa float64        `json:"kappa" yaml:"kappa"`
	W     action.Modulus `json:"w" yaml:"w"`
}

// Describe captures the parameters of a.
func Describe(a action.Action) ActionSpec {
	return ActionSpec{Kind: a.Kind(), N: a.Lattice().N, Kappa: a.Kappa(), W: a.W()}
}

// Build reconstructs the action.
func (s ActionSpec) Build() (action.Action, error) {
	l, err := lattice.New(s.N)
	if err != nil {
		return nil, fmt.Errorf("checkpoint: %w", err)
	}
	a, err := action.New(s.Kind, l, s.Kappa, s.W)
	if err != nil {
		return nil, fmt.Errorf("checkpoint: %w", err)
	}
	return a, nil
}

// Header is the first line of a snapshot, readable without decoding the body.
type Header struct {
	Version        int        `json:"version"`
	RunID          string     `json:"run_id"`
	Action         ActionSpec `json:"action"`
	Generator      string     `json:"generator"`
	Configurations int        `json:"configurations"`
	LastIndex      int        `json:"last_index"`
}

// Snapshot is a complete chain plus the state needed to extend it.
type Snapshot struct {
	Header Header

	Configurations []action.Configuration
	Index          []int
	Inline         map[string][][]float64
	// Generator is the output of generator.MarshalState.
	Generator []byte
}
