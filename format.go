package main

import (
	"fmt"
	"io"
	"strconv"
)

// FormatResult renders the final report of a run.
func FormatResult(r RunResult) string {
	return fmt.Sprintf("Optimal solution found after %d iterations.\nOptimal string: %s Fitness: %d\n",
		r.Iterations, r.Final, r.Fitness)
}

func printTable(w io.Writer, results []RunSummary) {
	fmt.Fprintf(w, "%-4s %20s %12s %8s %8s\n", "Run", "Seed", "Iterations", "Fitness", "Time")
	fmt.Fprintf(w, "%-4s %20s %12s %8s %8s\n", "----", "--------------------", "------------", "--------", "--------")
	totalIter := 0
	var totalMs int64
	for i, r := range results {
		totalIter += r.Iterations
		totalMs += r.TimeMs
		fmt.Fprintf(w, "%-4d %20s %12d %8d %7.1fs\n", i+1, formatSeed(r.Seed), r.Iterations, r.Fitness, float64(r.TimeMs)/1000)
	}
	fmt.Fprintf(w, "%-4s %20s %12s %8s %8s\n", "----", "--------------------", "------------", "--------", "--------")
	if n := len(results); n > 0 {
		fmt.Fprintf(w, "%-4s %20s %12.1f %8s %7.1fs\n", "MEAN", "",
			float64(totalIter)/float64(n), "", float64(totalMs)/1000/float64(n))
	}
	fmt.Fprintf(w, "%-4s %20s %12d %8s %7.1fs\n", "TOTAL", "", totalIter, "", float64(totalMs)/1000)
}

func formatSeed(seed *uint64) string {
	if seed == nil {
		return "-"
	}
	return strconv.FormatUint(*seed, 10)
}
