package main

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptSource replays a fixed bit sequence.
type scriptSource struct {
	t    *testing.T
	bits []int
	pos  int
}

func (s *scriptSource) IntN(n int) int {
	require.Equal(s.t, 2, n, "only bit draws expected")
	require.Less(s.t, s.pos, len(s.bits), "script exhausted")
	b := s.bits[s.pos]
	s.pos++
	return b
}

func TestCandidateString(t *testing.T) {
	assert.Equal(t, "1 0 1 1", Candidate{1, 0, 1, 1}.String())
	assert.Equal(t, "0", Candidate{0}.String())
	assert.Equal(t, "", Candidate{}.String())
}

func TestCandidateOnesAndEqual(t *testing.T) {
	c := Candidate{1, 0, 1, 1, 0}
	assert.Equal(t, 3, c.Ones())
	assert.True(t, c.Equal(Candidate{1, 0, 1, 1, 0}))
	assert.False(t, c.Equal(Candidate{1, 0, 1, 1, 1}))
	assert.False(t, c.Equal(Candidate{1, 0, 1, 1}))
}

func TestRandomCandidate_LengthAndBits(t *testing.T) {
	src := rand.New(rand.NewPCG(7, 11))
	for _, length := range []int{1, 4, 20, 64} {
		for range 50 {
			c := randomCandidate(src, length)
			require.Len(t, c, length)
			for i, b := range c {
				assert.Truef(t, b == 0 || b == 1, "bit %d = %d", i, b)
			}
		}
	}
}

func TestRandomCandidate_UsesSource(t *testing.T) {
	src := &scriptSource{t: t, bits: []int{1, 0, 0, 1}}
	c := randomCandidate(src, 4)
	assert.Equal(t, Candidate{1, 0, 0, 1}, c)
	assert.Equal(t, 4, src.pos)
}
