package game

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// Environment variables read by LoadConfig.
const (
	EnvSeed         = "BATTLESHIPS_SEED"
	EnvLanguage     = "BATTLESHIPS_LANG"
	EnvTickRate     = "BATTLESHIPS_TICK_RATE"
	EnvLogFile      = "BATTLESHIPS_LOG_FILE"
	EnvLogVerbosity = "BATTLESHIPS_LOG_VERBOSITY"
	EnvTelemetry    = "BATTLESHIPS_TELEMETRY"
)

// DefaultTickRate is the target number of ticks per second.
const DefaultTickRate = 60

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible auto placement.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Language is a BCP-47 tag selecting the translation table.
	Language string

	// TickRate is the number of update/draw cycles per second.
	TickRate int

	// LogFile receives the game log. Empty discards it.
	LogFile      string
	LogVerbosity int

	// Telemetry enables exporting traces.
	Telemetry bool
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Language:  "en",
		TickRate:  DefaultTickRate,
		Telemetry: true,
	}
}

// LoadConfig reads the configuration through getenv (usually os.Getenv).
// Malformed values keep their defaults and are reported in the returned
// error; the Config is always usable.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()
	var errs []error

	if v := getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: %w", EnvSeed, v, err))
		} else {
			cfg.Seed = seed
		}
	}

	if v := getenv(EnvLanguage); v != "" {
		cfg.Language = v
	}

	if v := getenv(EnvTickRate); v != "" {
		rate, err := strconv.Atoi(v)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("%s=%q: %w", EnvTickRate, v, err))
		case rate <= 0 || rate > 1000:
			errs = append(errs, fmt.Errorf("%s=%q: must be between 1 and 1000", EnvTickRate, v))
		default:
			cfg.TickRate = rate
		}
	}

	cfg.LogFile = getenv(EnvLogFile)
	if v := getenv(EnvLogVerbosity); v != "" {
		level, err := strconv.Atoi(v)
		if err != nil || level < 0 {
			errs = append(errs, fmt.Errorf("%s=%q: want a non-negative integer", EnvLogVerbosity, v))
		} else {
			cfg.LogVerbosity = level
		}
	}

	switch strings.ToLower(getenv(EnvTelemetry)) {
	case "off", "false", "0", "no":
		cfg.Telemetry = false
	}

	return cfg, errors.Join(errs...)
}

// TickInterval returns the time between ticks.
func (c Config) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// NewRand returns the random source for the session.
func (c Config) NewRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
