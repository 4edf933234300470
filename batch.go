package main

import (
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync"
)

// ── Batch runs ──────────────────────────────────────────────────────

// RunBatch runs one independent evolution per seed on a bounded worker
// pool. Every run owns its own randomness source. Results are ordered
// like seeds. If any run fails, the error of the lowest-indexed failing
// run is returned.
func RunBatch(cfg Config, seeds []uint64, workers int) ([]RunSummary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(seeds) == 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(seeds) {
		workers = len(seeds)
	}
	fmt.Fprintf(logw(), "[batch] runs=%d, workers=%d, target=%d\n", len(seeds), workers, cfg.Target())

	type result struct {
		summary RunSummary
		err     error
		idx     int
	}
	resultCh := make(chan result, len(seeds))
	seedCh := make(chan int, len(seeds))
	for i := range seeds {
		seedCh <- i
	}
	close(seedCh)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range seedCh {
				runCfg := cfg
				seed := seeds[idx]
				runCfg.Seed = &seed
				s, _, err := runEvolver(runCfg, NopReporter{})
				resultCh <- result{s, err, idx}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(resultCh)
	}()

	out := make([]RunSummary, len(seeds))
	errIdx := -1
	var firstErr error
	for r := range resultCh {
		if r.err != nil {
			if errIdx < 0 || r.idx < errIdx {
				errIdx, firstErr = r.idx, r.err
			}
			continue
		}
		if Verbose {
			fmt.Fprintf(logw(), "[verbose] run#%d done, iterations=%d\n", r.idx, r.summary.Iterations)
		}
		out[r.idx] = r.summary
	}
	if firstErr != nil {
		return nil, fmt.Errorf("run #%d (seed %d): %w", errIdx, seeds[errIdx], firstErr)
	}
	return out, nil
}

// batchSeeds returns n seeds counting up from base, or n entropy-drawn
// seeds when base is nil, so each run can be replayed from its seed.
func batchSeeds(base *uint64, n int) []uint64 {
	seeds := make([]uint64, n)
	for i := range seeds {
		if base == nil {
			seeds[i] = rand.Uint64()
		} else {
			seeds[i] = *base + uint64(i)
		}
	}
	return seeds
}
