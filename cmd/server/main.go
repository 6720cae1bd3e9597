// Package main is the entry point for the recados API server.
//
// main() stays minimal: read configuration, build the logger, start the
// server. All actual logic lives in the internal packages.
package main

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/abarbosa/recados/internal/server"
)

func main() {
	// Structured logging with slog. LOG_LEVEL=debug enables debug output;
	// the default is Info.
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))

	// PORT env var overrides the default. 3000 matches what clients of the
	// original deployment expect.
	port := 3000
	if portStr := os.Getenv("PORT"); portStr != "" {
		var err error
		port, err = strconv.Atoi(portStr)
		if err != nil {
			logger.Error("invalid PORT value", slog.String("value", portStr))
			os.Exit(1)
		}
	}

	srv := server.New(server.Config{Port: port}, logger)

	// Start() blocks until the server is shut down (Ctrl+C or SIGTERM).
	// All state is in memory — stopping the process discards it, by design.
	if err := srv.Start(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
