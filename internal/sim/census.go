package sim

import (
	"fmt"
	"strings"
)

// Census holds per-kind entity counts, indexed by Kind.
type Census [NumKinds]int

// CensusOf counts entities per kind.
func CensusOf(entities []Entity) Census {
	var c Census
	for _, e := range entities {
		if e.Kind.Valid() {
			c[e.Kind]++
		}
	}
	return c
}

// Count returns the number of entities of kind k.
func (c Census) Count(k Kind) int {
	if !k.Valid() {
		return 0
	}
	return c[k]
}

// Total returns the population size.
func (c Census) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// String formats the census as "rock=20 paper=20 scissors=20".
func (c Census) String() string {
	parts := make([]string, 0, NumKinds)
	for _, k := range Kinds {
		parts = append(parts, fmt.Sprintf("%s=%d", k, c[k]))
	}
	return strings.Join(parts, " ")
}
