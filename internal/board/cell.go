// Package board provides the battleship grid, ship placement and attack resolution.
package board

// Cell represents the state of a single grid position.
type Cell int

const (
	// CellEmpty is open water that has not been fired upon.
	CellEmpty Cell = iota
	// CellShip is occupied by a ship and has not been fired upon.
	CellShip
	// CellHit is a ship cell that has been fired upon. Terminal.
	CellHit
	// CellMiss is open water that has been fired upon. Terminal.
	CellMiss
)

// String returns a human-readable cell name.
func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellShip:
		return "ship"
	case CellHit:
		return "hit"
	case CellMiss:
		return "miss"
	default:
		return "unknown"
	}
}

// Resolved returns true if the cell has already been fired upon.
func (c Cell) Resolved() bool {
	return c == CellHit || c == CellMiss
}

// Rune returns the cell's display character. Ships are only drawn when
// revealed is true; otherwise they look like open water.
func (c Cell) Rune(revealed bool) rune {
	switch c {
	case CellShip:
		if revealed {
			return 'S'
		}
		return '.'
	case CellHit:
		return 'X'
	case CellMiss:
		return 'O'
	default:
		return '.'
	}
}
