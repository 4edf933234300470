//go:build !lambda

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

type cliOptions struct {
	length     int
	multiplier int
	seed       uint64
	configPath string
	runs       int
	workers    int
	jsonOut    bool
	verbose    bool
	logFormat  string
}

func newRootCmd() *cobra.Command {
	var opts cliOptions
	def := DefaultConfig()

	cmd := &cobra.Command{
		Use:   "bitstring-evolver",
		Short: "Evolve a random bit string to all ones by XNOR combination",
		Long: `Evolves a fixed-length bit string toward the maximum fitness (all ones).
Each round the current best is XNOR-combined with a random challenger and the
result replaces the best only when its fitness is strictly higher.

Flags override values read from --config, which override the defaults.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCLI(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.length, "length", def.Length, "Number of bits per candidate")
	f.IntVar(&opts.multiplier, "multiplier", def.FitnessMultiplier, "Fitness points per 1-bit")
	f.Uint64Var(&opts.seed, "seed", 0, "Seed for a reproducible run (unset = random)")
	f.StringVar(&opts.configPath, "config", "", "JSON config file with length, fitnessMultiplier, seed")
	f.IntVar(&opts.runs, "runs", 1, "Number of independent runs")
	f.IntVar(&opts.workers, "workers", runtime.GOMAXPROCS(0), "Parallel workers for --runs > 1")
	f.BoolVar(&opts.jsonOut, "json", false, "Output results as JSON")
	f.BoolVar(&opts.verbose, "verbose", false, "Print detailed progress to stderr")
	f.StringVar(&opts.logFormat, "log-format", "text", "Progress format for single runs: text or json")
	return cmd
}

func runCLI(cmd *cobra.Command, opts cliOptions) error {
	Verbose = opts.verbose
	flags := cmd.Flags()

	cfg := DefaultConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = LoadConfig(opts.configPath, cfg); err != nil {
			return err
		}
	}
	if flags.Changed("length") {
		cfg.Length = opts.length
	}
	if flags.Changed("multiplier") {
		cfg.FitnessMultiplier = opts.multiplier
	}
	if flags.Changed("seed") {
		seed := opts.seed
		cfg.Seed = &seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if opts.runs < 1 {
		return fmt.Errorf("%w: runs must be at least 1, got %d", ErrInvalidConfig, opts.runs)
	}

	out := cmd.OutOrStdout()
	if opts.runs > 1 {
		results, err := RunBatch(cfg, batchSeeds(cfg.Seed, opts.runs), opts.workers)
		if err != nil {
			return err
		}
		if opts.jsonOut {
			return writeJSON(out, results)
		}
		printTable(out, results)
		return nil
	}

	// keep stdout clean for JSON output
	progress := out
	if opts.jsonOut {
		progress = cmd.ErrOrStderr()
	}
	rep, err := newReporter(opts.logFormat, progress)
	if err != nil {
		return err
	}
	fmt.Fprintf(logw(), "[init] length=%d, target=%d, seed=%s\n", cfg.Length, cfg.Target(), formatSeed(cfg.Seed))
	summary, _, err := runEvolver(cfg, rep)
	if err != nil {
		return err
	}
	fmt.Fprintf(logw(), "[done] fitness=%d, iterations=%d, elapsed=%dms\n", summary.Fitness, summary.Iterations, summary.TimeMs)
	if opts.jsonOut {
		return writeJSON(out, summary)
	}
	return nil
}

func newReporter(format string, w io.Writer) (Reporter, error) {
	switch format {
	case "text":
		return TextReporter{W: w}, nil
	case "json":
		return SlogReporter{Logger: slog.New(slog.NewJSONHandler(w, nil))}, nil
	default:
		return nil, fmt.Errorf("%w: unknown log format %q (want text or json)", ErrInvalidConfig, format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
