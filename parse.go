package main

import (
	"time"

	"github.com/google/uuid"
)

// RunSummary holds the result and timing for a single evolution run.
type RunSummary struct {
	RunID             string  `json:"runId"`
	Length            int     `json:"length"`
	FitnessMultiplier int     `json:"fitnessMultiplier"`
	Target            int     `json:"target"`
	Seed              *uint64 `json:"seed,omitempty"`
	Candidate         string  `json:"candidate"`
	Fitness           int     `json:"fitness"`
	Iterations        int     `json:"iterations"`
	TimeMs            int64   `json:"timeMs"`
}

func runEvolver(cfg Config, rep Reporter) (RunSummary, RunResult, error) {
	ev, err := NewEvolver(cfg, WithReporter(rep))
	if err != nil {
		return RunSummary{}, RunResult{}, err
	}
	start := time.Now()
	res, err := ev.Run()
	if err != nil {
		return RunSummary{}, RunResult{}, err
	}
	return RunSummary{
		RunID:             uuid.NewString(),
		Length:            cfg.Length,
		FitnessMultiplier: cfg.FitnessMultiplier,
		Target:            ev.Target(),
		Seed:              cfg.Seed,
		Candidate:         res.Final.String(),
		Fitness:           res.Fitness,
		Iterations:        res.Iterations,
		TimeMs:            time.Since(start).Milliseconds(),
	}, res, nil
}
