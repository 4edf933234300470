package main

import "strings"

// Candidate is a fixed-length bit string. Elements must be 0 or 1; the
// evolver rejects any other value. Candidates are never modified after
// creation.
type Candidate []uint8

// Ones returns the number of 1-bits.
func (c Candidate) Ones() int {
	n := 0
	for _, b := range c {
		n += int(b)
	}
	return n
}

// String renders the bits space-separated, e.g. "1 0 1 1".
func (c Candidate) String() string {
	var sb strings.Builder
	sb.Grow(len(c) * 2)
	for i, b := range c {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('0' + b)
	}
	return sb.String()
}

// Equal reports whether c and o hold the same bits.
func (c Candidate) Equal(o Candidate) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if c[i] != o[i] {
			return false
		}
	}
	return true
}

// Source is the randomness an Evolver draws bits from. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

func randomCandidate(src Source, length int) Candidate {
	c := make(Candidate, length)
	for i := range c {
		c[i] = uint8(src.IntN(2))
	}
	return c
}
