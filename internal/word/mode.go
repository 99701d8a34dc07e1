package word

import (
	"errors"
	"fmt"
)

// Mode decides whether an inserted nasal consumes a unit of the syllable
// budget.
type Mode uint8

const (
	// Suli counts the nasal as a syllable.
	Suli Mode = iota
	// Ala does not count the nasal.
	Ala
)

// ErrUnknownMode is returned by ParseMode for tokens other than "suli" and "ala".
var ErrUnknownMode = errors.New("unknown nasal mode")

// ParseMode maps the "suli" and "ala" tokens to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "suli":
		return Suli, nil
	case "ala":
		return Ala, nil
	default:
		return 0, fmt.Errorf("%w %q: expected \"suli\" or \"ala\"", ErrUnknownMode, s)
	}
}

// CountsNasal reports whether a nasal insertion consumes a budget unit.
func (m Mode) CountsNasal() bool { return m == Suli }

func (m Mode) String() string {
	switch m {
	case Suli:
		return "suli"
	case Ala:
		return "ala"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Set implements pflag.Value.
func (m *Mode) Set(s string) error {
	v, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Type implements pflag.Value.
func (m *Mode) Type() string { return "suli|ala" }

func (m Mode) MarshalText() ([]byte, error) {
	if m != Suli && m != Ala {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, uint8(m))
	}
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(b []byte) error {
	return m.Set(string(b))
}
