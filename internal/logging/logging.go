// Package logging builds the logr.Logger shared by the game's components.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// Open returns a logger writing to the file at path, appending if it exists.
// The terminal belongs to the game while it runs, so an empty path discards
// all output instead of writing to stderr. The returned closer must be
// called on exit.
func Open(path string, verbosity int) (logr.Logger, io.Closer, error) {
	if path == "" {
		return logr.Discard(), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return logr.Discard(), io.NopCloser(nil), fmt.Errorf("open log file %s: %w", path, err)
	}
	return New(f, verbosity), f, nil
}

// New returns a logger writing to w with the given V-level threshold.
func New(w io.Writer, verbosity int) logr.Logger {
	stdr.SetVerbosity(verbosity)
	return stdr.New(log.New(w, "", log.LstdFlags|log.Lmicroseconds)).WithName("battleships")
}
