package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"trainer/internal/arena"
	"trainer/internal/config"
	"trainer/internal/util"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr, nil); err != nil {
		config.Exitf("arena: %v", err)
	}
}

// run serves the arena until ctx is done. ready, if set, gets the bound
// address once the listener is up.
func run(ctx context.Context, args []string, stderr io.Writer, ready func(net.Addr)) error {
	fs := flag.NewFlagSet("arena", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var cfgDir, addr, ai string
	fs.StringVar(&cfgDir, "config", "", "directory holding arena.yaml and classes.yaml")
	fs.StringVar(&addr, "addr", "", "listen address (overrides config)")
	fs.StringVar(&ai, "ai", "", "enemy strategy: rand, minmax or reinforcement (overrides config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadArena(cfgDir)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Addr = addr
	}
	if ai != "" {
		cfg.AI = ai
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	log := util.NewLogger(stderr, cfg.LogLevel)

	srv := &http.Server{
		Handler:      arena.New(cfg, log).Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return err
	}
	if ready != nil {
		ready(ln.Addr())
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
			return
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", ln.Addr().String()).Str("ai", cfg.AI).Int("classes", len(cfg.Classes)).Int("max_turns", cfg.MaxTurns).Msg("arena listening")
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Info().Msg("arena stopped")
	return nil
}
