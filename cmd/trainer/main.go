package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"net/http"
	"os"
	"os/signal"
	"time"

	"trainer/internal/battle"
	"trainer/internal/config"
	"trainer/internal/util"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		config.Exitf("trainer: %v", err)
	}
}

// run plays battles until an error, the battle limit or ctx is done. Battle
// counts go to stdout, logs to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("trainer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		cfgPath    string
		baseURL    string
		seed       int64
		maxTurns   int
		maxBattles int
		timeout    time.Duration
		logLevel   string
	)
	fs.StringVar(&cfgPath, "config", os.Getenv("TRAINER_CONFIG"), "YAML config file")
	fs.StringVar(&baseURL, "url", config.DefaultBaseURL, "game server base URL")
	fs.Int64Var(&seed, "seed", 0, "random seed (0 = now)")
	fs.IntVar(&maxTurns, "max-turns", 0, "give up a battle after this many turns (0 = never)")
	fs.IntVar(&maxBattles, "n", 0, "number of battles to play (0 = forever)")
	fs.DurationVar(&timeout, "timeout", 0, "per-request timeout (0 = none)")
	fs.StringVar(&logLevel, "log", "info", "log level")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadTrainer(cfgPath)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "url":
			cfg.BaseURL = baseURL
		case "seed":
			cfg.Seed = seed
		case "max-turns":
			cfg.MaxTurns = maxTurns
		case "n":
			cfg.MaxBattles = maxBattles
		case "timeout":
			cfg.RequestTimeout = timeout
		case "log":
			cfg.LogLevel = logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := util.NewLogger(stderr, cfg.LogLevel)
	client := battle.NewClient(cfg.BaseURL, &http.Client{Timeout: cfg.RequestTimeout})
	d := battle.NewDriver(client, util.New(cfg.Seed), log)
	d.MaxTurns = cfg.MaxTurns

	log.Info().Str("url", cfg.BaseURL).Int("max_battles", cfg.MaxBattles).Int("max_turns", cfg.MaxTurns).Msg("trainer starting")
	played, err := d.Run(ctx, cfg.MaxBattles, stdout)
	if errors.Is(err, context.Canceled) {
		log.Info().Int("battles", played).Msg("interrupted")
		return nil
	}
	if err != nil {
		log.Error().Err(err).Int("battles", played).Msg("trainer stopped")
		return err
	}
	log.Info().Int("battles", played).Msg("done")
	return nil
}
