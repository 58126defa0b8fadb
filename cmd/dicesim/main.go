package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"dicesim/internal/cache"
	"dicesim/internal/config"
	"dicesim/internal/engine"
	"dicesim/internal/logging"
	"dicesim/internal/report"
	"dicesim/internal/scenario"
	"dicesim/internal/sim"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("dicesim", flag.ContinueOnError)
	fs.SetOutput(stderr)
	scenarioPath := fs.String("scenario", "", "path to a scenario YAML file")
	pdfPath := fs.String("pdf", "", "write a PDF report to this path")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 for non-deterministic")
	fs.IntVar(&cfg.Simulations, "simulations", cfg.Simulations, "default simulations per combatant")
	fs.IntVar(&cfg.Rounds, "rounds", cfg.Rounds, "default number of rounds")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *scenarioPath == "" {
		fs.Usage()
		return errors.New("missing -scenario")
	}

	log := logging.New(stderr, cfg.LogLevel, cfg.LogJSON)

	sc, err := scenario.Load(*scenarioPath)
	if err != nil {
		return fmt.Errorf("load scenario: %w", err)
	}
	log.Info().Str("title", sc.Title).Int("matchups", len(sc.Matchups)).Msg("scenario loaded")

	results, err := calculate(ctx, log, sc, cfg.Options())
	if err != nil {
		return err
	}

	for _, r := range results {
		if err := report.Text(stdout, r); err != nil {
			return err
		}
	}

	if *pdfPath != "" {
		b, err := report.PDF(sc.Title, results)
		if err != nil {
			return fmt.Errorf("render pdf: %w", err)
		}
		if err := os.WriteFile(*pdfPath, b, 0o644); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		log.Info().Str("path", *pdfPath).Int("bytes", len(b)).Msg("report written")
	}
	return nil
}

// calculate runs every matchup in order. Seeded matchups with identical
// inputs are computed once.
func calculate(ctx context.Context, log zerolog.Logger, sc *scenario.Scenario, defaults engine.Options) ([]report.Result, error) {
	store := cache.NewMemoryStore[map[int]float64]()
	results := make([]report.Result, 0, len(sc.Matchups))

	for i, m := range sc.Matchups {
		name := m.Name
		if name == "" {
			name = fmt.Sprintf("matchup %d", i+1)
		}
		atk, def, opts, err := sc.Resolve(m, defaults)
		if err != nil {
			return nil, err
		}

		key := cache.Key(atk, def, opts)
		dist, hit, err := store.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if !hit {
			start := time.Now()
			dist, err = engine.New(sim.SourceFor(opts.Seed)).Calculate(atk, def, opts)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			log.Debug().Str("matchup", name).Int("outcomes", len(dist)).Dur("took", time.Since(start)).Msg("calculated")
			if opts.Seed != 0 {
				if err := store.Put(ctx, key, dist); err != nil {
					return nil, err
				}
			}
		} else {
			log.Debug().Str("matchup", name).Msg("cache hit")
		}

		results = append(results, report.Result{
			Name:     name,
			Attacker: m.Attacker.Label(),
			Defender: m.Defender.Label(),
			Options:  opts,
			Dist:     dist,
		})
	}
	return results, nil
}
