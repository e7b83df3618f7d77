package action

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Modulus is the constraint integer W: a positive integer or Infinity.
type Modulus int

// Infinity is the W = ∞ sentinel.
const Infinity Modulus = -1

// ParseModulus accepts a positive integer or one of "inf", "infinity",
// "infty", "∞" (case-insensitive).
func ParseModulus(s string) (Modulus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inf", "+inf", "infinity", "infty", "∞":
		return Infinity, nil
	}
	w, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadModulus, s)
	}
	m := Modulus(w)
	if err := m.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %q", err, s)
	}
	return m, nil
}

// Validate returns ErrBadModulus unless m is Infinity or at least 1.
func (m Modulus) Validate() error {
	if m == Infinity || m >= 1 {
		return nil
	}
	return ErrBadModulus
}

// IsInfinite reports whether m is the sentinel.
func (m Modulus) IsInfinite() bool { return m == Infinity }

// Float returns W as a float64, +Inf for the sentinel.
func (m Modulus) Float() float64 {
	if m.IsInfinite() {
		return math.Inf(1)
	}
	return float64(m)
}

// Divides reports whether x ≡ 0 (mod W). For W = ∞ only zero qualifies.
func (m Modulus) Divides(x int) bool {
	if m.IsInfinite() {
		return x == 0
	}
	return x%int(m) == 0
}

// String formats W, using ∞ for the sentinel.
func (m Modulus) String() string {
	if m.IsInfinite() {
		return "∞"
	}
	return strconv.Itoa(int(m))
}

// MarshalText encodes the sentinel as "inf" so configs stay ASCII.
func (m Modulus) MarshalText() ([]byte, error) {
	if m.IsInfinite() {
		return []byte("inf"), nil
	}
	return []byte(strconv.Itoa(int(m))), nil
}

// UnmarshalText is ParseModulus.
func (m *Modulus) UnmarshalText(text []byte) error {
	parsed, err := ParseModulus(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
