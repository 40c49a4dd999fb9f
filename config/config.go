// Copyright (c) 2025, the rrcover authors.
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads and validates the YAML run configuration consumed by
// the rrcover command.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rrcover/rrcover/rrr"
)

// Engine names the selection path to run.
const (
	EngineHuffman = "huffman"
	EngineGreedy  = "greedy"
)

// Config is one run description. Load starts from Default(), so fields absent
// from the file keep their default values.
type Config struct {
	// GraphPath is the edge list file to load.
	GraphPath string `yaml:"graph"`

	// Sets is the number of reverse-reachability sets to sample.
	Sets int `yaml:"sets"`

	// Model is the diffusion model, "ic" or "lt".
	Model string `yaml:"model"`

	// Probability is the IC edge probability.
	Probability float64 `yaml:"probability"`

	// Seed is the base seed for sampling.
	Seed uint64 `yaml:"seed"`

	// K is the number of seeds to select.
	K int `yaml:"k"`

	// Lossy is "Y" to drop long-coded vertices or "N" to keep them.
	Lossy string `yaml:"lossy"`

	// ReleaseFlag is 1 to free covered sets eagerly, 0 to hold them.
	ReleaseFlag int `yaml:"release_flag"`

	// InlineBits caps the code length kept in the bitstream.
	InlineBits int `yaml:"inline_bits"`

	// Parallelism is the worker count, 0 for one per hardware thread.
	Parallelism int `yaml:"parallelism"`

	// Engine is "huffman" for the compressed loop or "greedy" for the raw
	// one.
	Engine string `yaml:"engine"`
}

// Default returns the configuration used when no file or flag overrides it.
func Default() Config {
	return Config{
		Sets:        10000,
		Model:       "ic",
		Probability: 0.1,
		Seed:        1,
		K:           50,
		Lossy:       "N",
		InlineBits:  32,
		Engine:      EngineHuffman,
	}
}

// Load reads path into a Default()-based Config. Fields absent from the file
// keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the run could not honor.
func (c *Config) Validate() error {
	if c.GraphPath == "" {
		return fmt.Errorf("config: graph path is required")
	}
	if c.Sets <= 0 {
		return fmt.Errorf("config: sets must be positive, got %d", c.Sets)
	}
	if c.K < 0 {
		return fmt.Errorf("config: k must not be negative, got %d", c.K)
	}
	model, err := rrr.ParseModel(c.Model)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if model == rrr.IC && (c.Probability <= 0 || c.Probability > 1) {
		return fmt.Errorf("config: probability %v outside (0, 1]", c.Probability)
	}
	if c.Lossy != "Y" && c.Lossy != "N" {
		return fmt.Errorf("config: lossy must be \"Y\" or \"N\", got %q", c.Lossy)
	}
	if c.ReleaseFlag != 0 && c.ReleaseFlag != 1 {
		return fmt.Errorf("config: release_flag must be 0 or 1, got %d", c.ReleaseFlag)
	}
	if c.InlineBits < 1 {
		return fmt.Errorf("config: inline_bits must be at least 1, got %d", c.InlineBits)
	}
	if c.Engine != EngineHuffman && c.Engine != EngineGreedy {
		return fmt.Errorf("config: engine must be %q or %q, got %q", EngineHuffman, EngineGreedy, c.Engine)
	}
	return nil
}

// IsLossy reports whether long-coded vertices are dropped.
func (c *Config) IsLossy() bool {
	return c.Lossy == "Y"
}

// EagerRelease reports whether covered sets are freed mid-run.
func (c *Config) EagerRelease() bool {
	return c.ReleaseFlag == 1
}
