package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"MyLocalPaint/internal/config"
	"MyLocalPaint/internal/state"
	"MyLocalPaint/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.FromArgs(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)
	state.SetLogger(logger)

	opts, err := cfg.SessionOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	session := state.NewSession(opts)
	ui.RunApp(cfg, session)
	logger.Info("window closed", "session", session.ID())
	return 0
}
