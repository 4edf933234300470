package main

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBatch_MatchesSingleRuns(t *testing.T) {
	cfg := Config{Length: 8, FitnessMultiplier: 2}
	seeds := []uint64{3, 1, 4, 1, 5, 9}

	results, err := RunBatch(cfg, seeds, 3)
	require.NoError(t, err)
	require.Len(t, results, len(seeds))

	ids := map[string]bool{}
	for i, r := range results {
		require.NotNil(t, r.Seed)
		assert.Equal(t, seeds[i], *r.Seed, "results ordered like seeds")
		assert.Equal(t, 16, r.Fitness)
		assert.Equal(t, 16, r.Target)
		assert.Equal(t, "1 1 1 1 1 1 1 1", r.Candidate)

		_, err := uuid.Parse(r.RunID)
		assert.NoError(t, err)
		assert.False(t, ids[r.RunID], "run ids are unique")
		ids[r.RunID] = true

		single := cfg
		seed := seeds[i]
		single.Seed = &seed
		ev, err := NewEvolver(single)
		require.NoError(t, err)
		res, err := ev.Run()
		require.NoError(t, err)
		assert.Equal(t, res.Iterations, r.Iterations, "seed %d reproducible in a batch", seed)
	}

	// seed 1 appears twice and must give the same run
	assert.Equal(t, results[1].Iterations, results[3].Iterations)
}

func TestRunBatch_Edges(t *testing.T) {
	results, err := RunBatch(Config{Length: 4, FitnessMultiplier: 1}, nil, 4)
	require.NoError(t, err)
	assert.Empty(t, results)

	_, err = RunBatch(Config{Length: 0, FitnessMultiplier: 1}, []uint64{1}, 1)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	// more workers than seeds, and a non-positive worker count
	for _, workers := range []int{16, 0, -1} {
		results, err = RunBatch(Config{Length: 4, FitnessMultiplier: 1}, []uint64{7, 8}, workers)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	}
}

func TestBatchSeeds(t *testing.T) {
	base := uint64(10)
	assert.Equal(t, []uint64{10, 11, 12}, batchSeeds(&base, 3))

	drawn := batchSeeds(nil, 4)
	assert.Len(t, drawn, 4)
}
