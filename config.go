package main

import (
	"fmt"
	"math"
)

// Config holds the evolver parameters.
type Config struct {
	// Length is the number of bits per candidate.
	Length int
	// FitnessMultiplier scales the 1-bit count into a fitness score.
	FitnessMultiplier int
	// Seed makes a run reproducible. Nil draws a seed from runtime entropy.
	Seed *uint64
}

// DefaultConfig returns the default parameters: 20 bits, multiplier 2, unseeded.
func DefaultConfig() Config {
	return Config{
		Length:            20,
		FitnessMultiplier: 2,
	}
}

// Target is the fitness of the all-ones candidate.
func (c Config) Target() int {
	return c.Length * c.FitnessMultiplier
}

// Validate reports whether c can build an Evolver.
func (c Config) Validate() error {
	if c.Length <= 0 {
		return fmt.Errorf("%w: length must be positive, got %d", ErrInvalidConfig, c.Length)
	}
	if c.FitnessMultiplier <= 0 {
		return fmt.Errorf("%w: fitness multiplier must be positive, got %d", ErrInvalidConfig, c.FitnessMultiplier)
	}
	// the target and every fitness value must fit in an int
	if c.FitnessMultiplier > math.MaxInt/c.Length {
		return fmt.Errorf("%w: length %d times fitness multiplier %d overflows int",
			ErrInvalidConfig, c.Length, c.FitnessMultiplier)
	}
	return nil
}

// Verbose controls whether detailed run progress is printed to stderr.
var Verbose bool
