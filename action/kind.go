package action

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/supervillain/lattice"
)

// ParseKind accepts "villain" or "worldline" in any case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "villain":
		return KindVillain, nil
	case "worldline":
		return KindWorldline, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadKind, s)
	}
}

// MarshalText encodes the formulation name.
func (k Kind) MarshalText() ([]byte, error) {
	if k != KindVillain && k != KindWorldline {
		return nil, fmt.Errorf("%w: %d", ErrBadKind, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// New builds the action of the given formulation.
func New(kind Kind, l *lattice.Lattice, kappa float64, w Modulus) (Action, error) {
	var (
		a   Action
		err error
	)
	switch kind {
	case KindVillain:
		a, err = NewVillain(l, kappa, w)
	case KindWorldline:
		a, err = NewWorldline(l, kappa, w)
	default:
		err = fmt.Errorf("%w: %d", ErrBadKind, int(kind))
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}
