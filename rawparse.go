package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// ParseConfig overlays the keys present in the JSON document onto base.
// Recognised keys: "length", "fitnessMultiplier", "seed". A null seed
// clears any seed set on base.
func ParseConfig(doc string, base Config) (Config, error) {
	cfg := base
	if strings.TrimSpace(doc) == "" {
		return cfg, nil
	}
	if !gjson.Valid(doc) {
		return cfg, fmt.Errorf("%w: malformed JSON", ErrInvalidConfig)
	}
	root := gjson.Parse(doc)
	if !root.IsObject() {
		return cfg, fmt.Errorf("%w: expected a JSON object", ErrInvalidConfig)
	}

	if v := root.Get("length"); v.Exists() {
		n, err := readPositiveInt(v, "length")
		if err != nil {
			return cfg, err
		}
		cfg.Length = n
	}
	if v := root.Get("fitnessMultiplier"); v.Exists() {
		n, err := readPositiveInt(v, "fitnessMultiplier")
		if err != nil {
			return cfg, err
		}
		cfg.FitnessMultiplier = n
	}
	if v := root.Get("seed"); v.Exists() {
		if v.Type == gjson.Null {
			cfg.Seed = nil
		} else {
			seed, err := readSeed(v)
			if err != nil {
				return cfg, err
			}
			cfg.Seed = &seed
		}
	}
	return cfg, cfg.Validate()
}

// LoadConfig reads a JSON config file and overlays it onto base.
func LoadConfig(path string, base Config) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read %s: %w", path, err)
	}
	cfg, err := ParseConfig(string(raw), base)
	if err != nil {
		return base, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func readPositiveInt(v gjson.Result, key string) (int, error) {
	if v.Type != gjson.Number {
		return 0, fmt.Errorf("%w: %s must be a number, got %s", ErrInvalidConfig, key, v.Raw)
	}
	n, err := strconv.Atoi(v.Raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %s", ErrInvalidConfig, key, v.Raw)
	}
	return n, nil
}

// readSeed keeps the full uint64 range by parsing the raw token rather
// than going through float64.
func readSeed(v gjson.Result) (uint64, error) {
	if v.Type != gjson.Number {
		return 0, fmt.Errorf("%w: seed must be a number, got %s", ErrInvalidConfig, v.Raw)
	}
	seed, err := strconv.ParseUint(v.Raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: seed must be a non-negative integer, got %s", ErrInvalidConfig, v.Raw)
	}
	return seed, nil
}
