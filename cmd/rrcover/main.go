// Copyright (c) 2025, the rrcover authors.
// SPDX-License-Identifier: BSD-3-Clause

// Command rrcover samples reverse-reachability sets from a graph and selects
// the most influential seed vertices. Progress goes to stderr; the selected
// seeds and the coverage they reach go to stdout.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rrcover/rrcover/config"
	"github.com/rrcover/rrcover/cover"
	"github.com/rrcover/rrcover/graph"
	"github.com/rrcover/rrcover/rrr"
)

var (
	flagConfig  string
	flagVerbose bool
	cfg         = config.Default()
)

var rootCmd = &cobra.Command{
	Use:           "rrcover",
	Short:         "Greedy influence maximization over compressed RR sets",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&flagConfig, "config", "c", "", "YAML configuration file")
	f.BoolVarP(&flagVerbose, "verbose", "v", false, "log at debug level")
	f.StringVarP(&cfg.GraphPath, "graph", "g", cfg.GraphPath, "edge list file (\"src dst\" per line)")
	f.IntVarP(&cfg.Sets, "sets", "n", cfg.Sets, "number of RR sets to sample")
	f.IntVarP(&cfg.K, "k", "k", cfg.K, "number of seeds to select")
	f.StringVarP(&cfg.Model, "model", "m", cfg.Model, "diffusion model, ic or lt")
	f.Float64VarP(&cfg.Probability, "probability", "p", cfg.Probability, "IC edge probability")
	f.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "base sampling seed")
	f.StringVar(&cfg.Lossy, "lossy", cfg.Lossy, "drop long-coded vertices, Y or N")
	f.IntVar(&cfg.ReleaseFlag, "release-flag", cfg.ReleaseFlag, "1 frees covered sets eagerly, 0 holds them")
	f.IntVar(&cfg.InlineBits, "inline-bits", cfg.InlineBits, "longest code kept in the bitstream")
	f.IntVarP(&cfg.Parallelism, "parallelism", "j", cfg.Parallelism, "worker count, 0 for all hardware threads")
	f.StringVar(&cfg.Engine, "engine", cfg.Engine, "selection path, huffman or greedy")
}

func run(cmd *cobra.Command, _ []string) error {
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		// Flags set on the command line win over file values.
		merge(cmd, &loaded)
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	f, err := os.Open(cfg.GraphPath)
	if err != nil {
		return err
	}
	g, err := graph.ReadEdgeList(f)
	f.Close()
	if err != nil {
		return err
	}
	log.Info("graph loaded", "path", cfg.GraphPath, "vertices", g.NumVertices, "edges", g.NumEdges())

	model, err := rrr.ParseModel(cfg.Model)
	if err != nil {
		return err
	}
	start := time.Now()
	sets := rrr.Generate(g, cfg.Sets, rrr.Options{
		Model:       model,
		Probability: cfg.Probability,
		Seed:        cfg.Seed,
		Parallelism: cfg.Parallelism,
	})
	log.Info("sets sampled", "count", len(sets), "model", model.String(), "elapsed", time.Since(start))

	k := cfg.K
	if k > g.NumVertices {
		k = g.NumVertices
	}
	start = time.Now()
	var res cover.Result
	switch cfg.Engine {
	case config.EngineGreedy:
		res, err = cover.FindMostInfluential(sets, g.NumVertices, k, cfg.Parallelism)
	default:
		var eng *cover.Engine
		eng, err = cover.New(sets, g.NumVertices, cover.Options{
			K:            k,
			Lossy:        cfg.IsLossy(),
			EagerRelease: cfg.EagerRelease(),
			InlineBits:   cfg.InlineBits,
			Parallelism:  cfg.Parallelism,
			Logger:       log,
		})
		if err == nil {
			res, err = eng.Run()
		}
	}
	if err != nil {
		return err
	}
	log.Info("selection done", "seeds", len(res.Seeds), "elapsed", time.Since(start))

	for _, s := range res.Seeds {
		fmt.Println(s)
	}
	fmt.Printf("coverage %.6f\n", res.Coverage)
	return nil
}

// merge copies the values of explicitly set flags into loaded, so flags
// override the file and the file overrides Default().
func merge(cmd *cobra.Command, loaded *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("graph") {
		loaded.GraphPath = cfg.GraphPath
	}
	if flags.Changed("sets") {
		loaded.Sets = cfg.Sets
	}
	if flags.Changed("k") {
		loaded.K = cfg.K
	}
	if flags.Changed("model") {
		loaded.Model = cfg.Model
	}
	if flags.Changed("probability") {
		loaded.Probability = cfg.Probability
	}
	if flags.Changed("seed") {
		loaded.Seed = cfg.Seed
	}
	if flags.Changed("lossy") {
		loaded.Lossy = cfg.Lossy
	}
	if flags.Changed("release-flag") {
		loaded.ReleaseFlag = cfg.ReleaseFlag
	}
	if flags.Changed("inline-bits") {
		loaded.InlineBits = cfg.InlineBits
	}
	if flags.Changed("parallelism") {
		loaded.Parallelism = cfg.Parallelism
	}
	if flags.Changed("engine") {
		loaded.Engine = cfg.Engine
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "rrcover:", err)
		os.Exit(1)
	}
}
