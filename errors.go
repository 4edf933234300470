package main

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCandidate is matched by every *InvalidCandidateError.
	ErrInvalidCandidate = errors.New("invalid candidate")
	// ErrInvalidConfig is wrapped by construction and config parsing failures.
	ErrInvalidConfig = errors.New("invalid config")
)

// InvalidCandidateError reports a candidate whose length does not match the
// evolver's configured length. Missing is set when no candidate was given.
// NonBinary is set when the length is right but position Index holds
// Value, which is neither 0 nor 1.
type InvalidCandidateError struct {
	Operand   string
	Got       int
	Want      int
	Missing   bool
	NonBinary bool
	Index     int
	Value     uint8
}

func (e *InvalidCandidateError) Error() string {
	if e.Missing {
		return fmt.Sprintf("invalid candidate %q: missing, want length %d", e.Operand, e.Want)
	}
	if e.NonBinary {
		return fmt.Sprintf("invalid candidate %q: bit %d is %d, want 0 or 1", e.Operand, e.Index, e.Value)
	}
	return fmt.Sprintf("invalid candidate %q: length %d, want %d", e.Operand, e.Got, e.Want)
}

func (e *InvalidCandidateError) Is(target error) bool {
	return target == ErrInvalidCandidate
}
