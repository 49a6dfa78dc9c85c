package sim

import (
	"fmt"
	"strings"
)

// Kind is an entity's type in the cyclic dominance relation.
type Kind uint8

const (
	Rock Kind = iota
	Paper
	Scissors
)

// NumKinds is the number of kinds in the cycle.
const NumKinds = 3

// Kinds lists every kind in declaration order.
var Kinds = [NumKinds]Kind{Rock, Paper, Scissors}

// Prey returns the kind this kind beats.
// Rock beats Scissors, Paper beats Rock, Scissors beats Paper.
func (k Kind) Prey() Kind {
	return (k + NumKinds - 1) % NumKinds
}

// Predator returns the kind that beats this kind.
func (k Kind) Predator() Kind {
	return (k + 1) % NumKinds
}

// Beats reports whether k wins against other. Same kinds never beat each other.
func (k Kind) Beats(other Kind) bool {
	return k.Valid() && other == k.Prey()
}

// Valid reports whether k is one of the three kinds.
func (k Kind) Valid() bool {
	return k < NumKinds
}

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind converts a kind name (case-insensitive) back into a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rock":
		return Rock, nil
	case "paper":
		return Paper, nil
	case "scissors":
		return Scissors, nil
	}
	return 0, fmt.Errorf("sim: unknown kind %q", s)
}

// MarshalText implements encoding.TextMarshaler so kinds read naturally in
// YAML maps and logs.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("sim: invalid kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
