package main

import (
	"fmt"
	"io"
	"log/slog"
)

// Reporter observes a run: once at start, on every accepted improvement,
// and once when the target is reached.
type Reporter interface {
	Start(c Candidate, fitness int)
	Improved(c Candidate, fitness int)
	Done(iterations int, c Candidate, fitness int)
}

// NopReporter discards all events.
type NopReporter struct{}

func (NopReporter) Start(Candidate, int)     {}
func (NopReporter) Improved(Candidate, int)  {}
func (NopReporter) Done(int, Candidate, int) {}

// TextReporter writes human-readable progress lines.
type TextReporter struct {
	W io.Writer
}

func (r TextReporter) Start(c Candidate, fitness int) {
	fmt.Fprintf(r.W, "Initial string: %s Fitness: %d\n", c, fitness)
}

func (r TextReporter) Improved(c Candidate, fitness int) {
	fmt.Fprintf(r.W, "New fit string: %s Fitness: %d\n", c, fitness)
}

func (r TextReporter) Done(iterations int, c Candidate, fitness int) {
	fmt.Fprint(r.W, FormatResult(RunResult{Final: c, Fitness: fitness, Iterations: iterations}))
}

// SlogReporter emits one structured record per event.
type SlogReporter struct {
	Logger *slog.Logger
}

func (r SlogReporter) Start(c Candidate, fitness int) {
	r.Logger.Info("evolver.start", slog.String("candidate", c.String()), slog.Int("fitness", fitness))
}

func (r SlogReporter) Improved(c Candidate, fitness int) {
	r.Logger.Info("evolver.improved", slog.String("candidate", c.String()), slog.Int("fitness", fitness))
}

func (r SlogReporter) Done(iterations int, c Candidate, fitness int) {
	r.Logger.Info("evolver.done",
		slog.Int("iterations", iterations),
		slog.String("candidate", c.String()),
		slog.Int("fitness", fitness),
	)
}
