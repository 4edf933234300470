package main

// ── Validation ──────────────────────────────────────────────────────

// check enforces the length and bit-value contract on one operand. It runs
// on every evaluation and combination, including internal calls.
func (e *Evolver) check(operand string, c Candidate) error {
	if c == nil {
		return &InvalidCandidateError{Operand: operand, Want: e.length, Missing: true}
	}
	if len(c) != e.length {
		return &InvalidCandidateError{Operand: operand, Got: len(c), Want: e.length}
	}
	for i, b := range c {
		if b > 1 {
			return &InvalidCandidateError{Operand: operand, Got: len(c), Want: e.length, NonBinary: true, Index: i, Value: b}
		}
	}
	return nil
}

// ── Fitness ─────────────────────────────────────────────────────────

// Fitness returns the number of 1-bits scaled by the fitness multiplier.
func (e *Evolver) Fitness(c Candidate) (int, error) {
	if err := e.check("candidate", c); err != nil {
		return 0, err
	}
	total := 0
	for _, bit := range c {
		total += int(bit) * e.multiplier
	}
	return total, nil
}

// ── Combination ─────────────────────────────────────────────────────

// Combine returns a new candidate with a 1 wherever a and b agree and a 0
// wherever they differ (bitwise XNOR). Neither input is modified.
func (e *Evolver) Combine(a, b Candidate) (Candidate, error) {
	return e.combine("a", a, "b", b)
}

func (e *Evolver) combine(nameA string, a Candidate, nameB string, b Candidate) (Candidate, error) {
	if err := e.check(nameA, a); err != nil {
		return nil, err
	}
	if err := e.check(nameB, b); err != nil {
		return nil, err
	}
	out := make(Candidate, e.length)
	for i := range out {
		if a[i] == b[i] {
			out[i] = 1
		}
	}
	return out, nil
}
