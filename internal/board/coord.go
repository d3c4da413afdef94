package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedCoord is returned when coordinate text cannot be parsed.
var ErrMalformedCoord = errors.New("malformed coordinate")

// Coord is a zero-based grid position.
type Coord struct {
	Row int
	Col int
}

// String formats the coordinate the way players type it.
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// Add returns the coordinate offset by the given deltas.
func (c Coord) Add(dRow, dCol int) Coord {
	return Coord{Row: c.Row + dRow, Col: c.Col + dCol}
}

// Clamp limits both axes to [0, size-1].
func (c Coord) Clamp(size int) Coord {
	return Coord{Row: clamp(c.Row, 0, size-1), Col: clamp(c.Col, 0, size-1)}
}

// In returns true if the coordinate lies on a size x size grid.
func (c Coord) In(size int) bool {
	return c.Row >= 0 && c.Row < size && c.Col >= 0 && c.Col < size
}

// ParseCoord parses "row,col" text and checks it against a size x size grid.
// Surrounding whitespace is ignored.
func ParseCoord(text string, size int) (Coord, error) {
	parts := strings.Split(strings.TrimSpace(text), ",")
	if len(parts) != 2 {
		return Coord{}, fmt.Errorf("%w: %q: want row,col", ErrMalformedCoord, text)
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: row %q", ErrMalformedCoord, parts[0])
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: column %q", ErrMalformedCoord, parts[1])
	}

	c := Coord{Row: row, Col: col}
	if !c.In(size) {
		return Coord{}, fmt.Errorf("%w: %s outside 0..%d", ErrMalformedCoord, c, size-1)
	}
	return c, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
