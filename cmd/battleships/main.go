// Package main is the entry point for Battleships.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/samdwyer/battleships/internal/game"
	"github.com/samdwyer/battleships/internal/logging"
	"github.com/samdwyer/battleships/internal/telemetry"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_BATTLESHIPS_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.LoadConfig(os.Getenv)
	if err != nil {
		log.Printf("Note: using defaults for invalid settings: %v", err)
	}

	if err := game.CheckViewport(int(os.Stdout.Fd())); err != nil {
		if errors.Is(err, game.ErrViewportTooSmall) {
			fmt.Println(game.ViewportMessage)
			os.Exit(1)
		}
		log.Fatalf("Failed to check terminal: %v", err)
	}

	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogVerbosity)
	if err != nil {
		log.Printf("Warning: %v", err)
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry {
		// Set up OTEL environment variables from our .env variables
		setupOTelEnv()

		shutdown, err := telemetry.Setup(ctx, logger)
		if err != nil {
			logger.Error(err, "telemetry setup failed, running without observability")
			telemetry.Disable()
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Error(err, "telemetry shutdown")
				}
			}()
		}
	} else {
		telemetry.Disable()
	}

	g, err := game.New(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		g.Close()
		log.Fatalf("Game error: %v", err)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// The .env file may hold an unexpanded variable reference, so the
	// headers are built here from the key itself.
	apiKey := os.Getenv("HONEYCOMB_BATTLESHIPS_API_KEY")
	dataset := os.Getenv("HONEYCOMB_BATTLESHIPS_DATASET")
	if dataset == "" {
		dataset = "battleships" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
