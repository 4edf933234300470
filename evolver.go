package main

import (
	"fmt"
	"math/rand/v2"
	"os"
)

// ── Evolver ─────────────────────────────────────────────────────────

// Evolver evolves a bit string toward all ones by greedy replacement:
// each round the best candidate is XNOR-combined with a fresh random
// challenger and the result replaces the best only if it scores higher.
type Evolver struct {
	length     int
	multiplier int
	target     int

	src      Source
	reporter Reporter
}

// Option customizes an Evolver.
type Option func(*Evolver)

// WithReporter sets the sink that receives run progress.
func WithReporter(r Reporter) Option {
	return func(e *Evolver) {
		if r != nil {
			e.reporter = r
		}
	}
}

// WithSource sets the randomness source, overriding Config.Seed.
func WithSource(src Source) Option {
	return func(e *Evolver) {
		if src != nil {
			e.src = src
		}
	}
}

// NewEvolver creates an evolver for cfg. A seeded config yields a
// reproducible run; an unseeded one draws its seed from runtime entropy.
func NewEvolver(cfg Config, opts ...Option) (*Evolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Evolver{
		length:     cfg.Length,
		multiplier: cfg.FitnessMultiplier,
		target:     cfg.Target(),
		reporter:   NopReporter{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.src == nil {
		e.src = newRand(cfg.Seed)
	}
	return e, nil
}

func newRand(seed *uint64) *rand.Rand {
	if seed == nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))
}

// Length returns the configured candidate length.
func (e *Evolver) Length() int { return e.length }

// Target returns the fitness of the all-ones candidate.
func (e *Evolver) Target() int { return e.target }

// Generate returns a new uniformly random candidate.
func (e *Evolver) Generate() Candidate {
	return randomCandidate(e.src, e.length)
}

// ── Run ─────────────────────────────────────────────────────────────

// RunResult is the outcome of a completed run.
type RunResult struct {
	Final      Candidate
	Fitness    int
	Iterations int
}

// runState is owned by a single Run call.
type runState struct {
	best       Candidate
	fitness    int
	iterations int
}

// Run evolves until the best candidate reaches the target fitness.
// There is no iteration cap: termination is probabilistic. A length
// violation aborts the run and is returned unchanged.
func (e *Evolver) Run() (RunResult, error) {
	var st runState
	st.best = e.Generate()
	f, err := e.Fitness(st.best)
	if err != nil {
		return RunResult{}, fmt.Errorf("evaluate initial candidate: %w", err)
	}
	st.fitness = f
	e.reporter.Start(st.best, st.fitness)

	for st.fitness < e.target {
		st.iterations++

		challenger := e.Generate()
		proposal, err := e.combine("best", st.best, "challenger", challenger)
		if err != nil {
			return RunResult{}, fmt.Errorf("iteration %d: %w", st.iterations, err)
		}
		pf, err := e.Fitness(proposal)
		if err != nil {
			return RunResult{}, fmt.Errorf("iteration %d: %w", st.iterations, err)
		}

		// strict improvement only; ties keep the current best
		if pf > st.fitness {
			st.best = proposal
			st.fitness = pf
			e.reporter.Improved(st.best, st.fitness)
		}
	}

	e.reporter.Done(st.iterations, st.best, st.fitness)
	if Verbose {
		fmt.Fprintf(logw(), "[verbose] run finished: fitness=%d/%d iterations=%d\n",
			st.fitness, e.target, st.iterations)
	}
	return RunResult{Final: st.best, Fitness: st.fitness, Iterations: st.iterations}, nil
}

func logw() *os.File { return os.Stderr }
