package main

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/scottostler/tactician/experiments"
	"github.com/scottostler/tactician/searcher"
)

type config struct {
	Games       int           `env:"TACTICIAN_GAMES" envDefault:"10"`
	Iterations  int           `env:"TACTICIAN_ITERATIONS" envDefault:"0"`
	TimeBudget  time.Duration `env:"TACTICIAN_TIME_BUDGET" envDefault:"500ms"`
	Workers     int           `env:"TACTICIAN_WORKERS" envDefault:"8"`
	Exploration float64       `env:"TACTICIAN_EXPLORATION" envDefault:"0"`
	Seed        uint64        `env:"TACTICIAN_SEED" envDefault:"0"`
	Debug       bool          `env:"TACTICIAN_DEBUG" envDefault:"false"`
	ResultsDir  string        `env:"TACTICIAN_RESULTS_DIR" envDefault:"results"`
}

func main() {
	cfg, err := env.ParseAs[config]()
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse environment: %v\n", err)
		os.Exit(1)
	}

	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).
		With().Timestamp().Logger()

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if cfg.Exploration == 0 {
		cfg.Exploration = searcher.DefaultExploration
	}
	// Iterations and a time budget are alternative limits; with neither
	// set the searcher would never stop.
	if cfg.Iterations > 0 {
		cfg.TimeBudget = 0
	}

	search := experiments.AgentConfig{
		ID:          1,
		Kind:        "search",
		Iterations:  cfg.Iterations,
		TimeBudget:  cfg.TimeBudget,
		Workers:     cfg.Workers,
		Exploration: cfg.Exploration,
		Seed:        cfg.Seed,
	}
	bigmoney := experiments.AgentConfig{ID: 2, Kind: "bigmoney", Seed: cfg.Seed}

	writer, err := experiments.NewWriter(cfg.ResultsDir, "search-vs-bigmoney")
	if err != nil {
		log.Fatal().Err(err).Msg("create results writer")
	}

	log.Info().
		Int("games", cfg.Games).
		Int("iterations", cfg.Iterations).
		Dur("time_budget", cfg.TimeBudget).
		Int("workers", cfg.Workers).
		Float64("exploration", cfg.Exploration).
		Uint64("seed", cfg.Seed).
		Msg("starting match")

	result, err := experiments.RunMatch(search, bigmoney, cfg.Games, writer)
	if err != nil {
		log.Fatal().Err(err).Msg("run match")
	}

	printSummary(cfg, result)
}

func printSummary(cfg config, result experiments.MatchResult) {
	out := termenv.NewOutput(os.Stdout)
	title := out.String("Match summary").Bold()
	fmt.Fprintf(out, "\n%s (%d games, %s)\n", title, cfg.Games, result.Elapsed.Round(time.Millisecond))

	for name, wins := range result.Wins {
		line := fmt.Sprintf("  %-12s %d", name, wins)
		styled := out.String(line)
		switch name {
		case "Tactician":
			styled = styled.Foreground(out.Color("10"))
		case "tie":
			styled = styled.Faint()
		}
		fmt.Fprintln(out, styled)
	}
}
