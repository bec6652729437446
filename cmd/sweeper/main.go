package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/sweeper/internal/config"
	"github.com/vancomm/sweeper/internal/console"
	"github.com/vancomm/sweeper/internal/mines"
)

func newLogger() *slog.Logger {
	var handler slog.Handler = slog.NewJSONHandler(os.Stderr, nil)
	if config.Development() {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level: slog.LevelDebug,
		})
	}
	return slog.New(handler)
}

func run(logger *slog.Logger) error {
	cfg, err := config.NewGame()
	if err != nil {
		return fmt.Errorf("failed to read game config: %w", err)
	}

	flag.IntVar(&cfg.Params.Rows, "rows", cfg.Params.Rows, "board rows")
	flag.IntVar(&cfg.Params.Cols, "cols", cfg.Params.Cols, "board columns")
	flag.IntVar(&cfg.Params.MineCount, "mines", cfg.Params.MineCount, "number of mines")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "seed for reproducible boards")
	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.Seeded = true
		}
	})

	session, err := console.NewSession(logger, cfg.Params, cfg.RandOption())
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer stop()
		return session.Run(gCtx, os.Stdin, os.Stdout)
	})

	err = g.Wait()
	logger.Debug("session ended", slog.String("session", session.ID.String()))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func main() {
	if err := config.Load(); err != nil {
		slog.Error("failed to load .env", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger()
	mines.Log = logger

	if err := run(logger); err != nil {
		logger.Error("exit", slog.Any("error", err))
		os.Exit(1)
	}
}
