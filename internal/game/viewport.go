package game

import (
	"errors"
	"fmt"

	"golang.org/x/term"
)

// Minimum terminal dimensions the layout needs.
const (
	MinWidth  = 80
	MinHeight = 24
)

// ErrViewportTooSmall is returned when the terminal is below MinWidth x MinHeight.
var ErrViewportTooSmall = errors.New("console size is too small")

// ViewportMessage is printed before exiting on an undersized terminal.
var ViewportMessage = fmt.Sprintf("Console size is too small. Please resize to at least %dx%d.", MinWidth, MinHeight)

// CheckViewport verifies the terminal on fd is large enough. It runs before
// the screen takes over the terminal.
func CheckViewport(fd int) error {
	if !term.IsTerminal(fd) {
		return fmt.Errorf("file descriptor %d is not a terminal", fd)
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("read terminal size: %w", err)
	}
	return checkSize(width, height)
}

func checkSize(width, height int) error {
	if width < MinWidth || height < MinHeight {
		return fmt.Errorf("%w: %dx%d, need %dx%d", ErrViewportTooSmall, width, height, MinWidth, MinHeight)
	}
	return nil
}
