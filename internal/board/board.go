package board

import (
	"errors"
	"fmt"
	"math/rand"
)

// DefaultSize is the edge length of a standard board.
const DefaultSize = 10

// maxAutoPlaceAttempts bounds the resampling loop per ship in RandomAutoPlace.
const maxAutoPlaceAttempts = 10000

var (
	// ErrOutOfBounds is returned when a ship or target leaves the grid.
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrOverlap is returned when a ship would cover a non-empty cell.
	ErrOverlap = errors.New("cell already occupied")
	// ErrNoRoom is returned when random placement cannot fit a ship.
	ErrNoRoom = errors.New("no room for ship")
)

// Board is one player's grid and the ships placed on it.
//
// The set of CellShip and CellHit cells is always exactly the union of the
// placed ships' footprints.
type Board struct {
	size  int
	cells [][]Cell
	ships []PlacedShip
}

// New creates an empty size x size board.
func New(size int) *Board {
	cells := make([][]Cell, size)
	for row := range cells {
		cells[row] = make([]Cell, size)
	}
	return &Board{
		size:  size,
		cells: cells,
		ships: make([]PlacedShip, 0),
	}
}

// Size returns the board's edge length.
func (b *Board) Size() int {
	return b.size
}

// Cell returns the state at the given position. Positions off the grid read
// as CellEmpty.
func (b *Board) Cell(c Coord) Cell {
	if !c.In(b.size) {
		return CellEmpty
	}
	return b.cells[c.Row][c.Col]
}

// Ships returns the placed ships in placement order.
func (b *Board) Ships() []PlacedShip {
	out := make([]PlacedShip, len(b.ships))
	copy(out, b.ships)
	return out
}

// CanPlace reports whether a ship could be placed without mutating the board.
func (b *Board) CanPlace(def ShipDef, origin Coord, o Orientation) error {
	if def.Size <= 0 {
		return fmt.Errorf("ship %q: size %d: %w", def.ID, def.Size, ErrOutOfBounds)
	}
	for _, c := range Footprint(origin, def.Size, o) {
		if !c.In(b.size) {
			return fmt.Errorf("ship %q at %s: %w", def.ID, c, ErrOutOfBounds)
		}
		if b.cells[c.Row][c.Col] != CellEmpty {
			return fmt.Errorf("ship %q at %s: %w", def.ID, c, ErrOverlap)
		}
	}
	return nil
}

// PlaceShip commits a ship to the board. On error nothing is changed and the
// caller may retry elsewhere.
func (b *Board) PlaceShip(def ShipDef, origin Coord, o Orientation) error {
	if err := b.CanPlace(def, origin, o); err != nil {
		return err
	}
	placed := PlacedShip{Def: def, Origin: origin, Orientation: o}
	for _, c := range placed.Cells() {
		b.cells[c.Row][c.Col] = CellShip
	}
	b.ships = append(b.ships, placed)
	return nil
}

// RandomAutoPlace places every ship in defs at a random legal position,
// resampling origin and orientation until each placement succeeds.
func (b *Board) RandomAutoPlace(rng *rand.Rand, defs []ShipDef) error {
	for _, def := range defs {
		placed := false
		for attempt := 0; attempt < maxAutoPlaceAttempts; attempt++ {
			origin := Coord{Row: rng.Intn(b.size), Col: rng.Intn(b.size)}
			o := Orientation(rng.Intn(2))
			if b.PlaceShip(def, origin, o) == nil {
				placed = true
				break
			}
		}
		if !placed {
			return fmt.Errorf("ship %q after %d attempts: %w", def.ID, maxAutoPlaceAttempts, ErrNoRoom)
		}
	}
	return nil
}

// Attack fires at the target. Resolved cells are never changed and report
// AlreadyAttacked.
func (b *Board) Attack(target Coord) (Shot, error) {
	if !target.In(b.size) {
		return Shot{}, fmt.Errorf("attack at %s: %w", target, ErrOutOfBounds)
	}

	shot := Shot{Target: target}
	switch b.cells[target.Row][target.Col] {
	case CellShip:
		b.cells[target.Row][target.Col] = CellHit
		shot.Result = Hit
		if i := b.shipAt(target); i >= 0 {
			shot.Ship = b.ships[i].Def
			shot.Sunk = b.isSunk(i)
		}
	case CellEmpty:
		b.cells[target.Row][target.Col] = CellMiss
		shot.Result = Miss
	default:
		shot.Result = AlreadyAttacked
	}
	return shot, nil
}

// HasRemainingShips returns true while any ship cell has not been hit.
func (b *Board) HasRemainingShips() bool {
	for _, row := range b.cells {
		for _, cell := range row {
			if cell == CellShip {
				return true
			}
		}
	}
	return false
}

// RemainingShips returns the number of placed ships that are not yet sunk.
func (b *Board) RemainingShips() int {
	count := 0
	for i := range b.ships {
		if !b.isSunk(i) {
			count++
		}
	}
	return count
}

// ShipAt returns the placed ship covering c, if any.
func (b *Board) ShipAt(c Coord) (PlacedShip, bool) {
	if i := b.shipAt(c); i >= 0 {
		return b.ships[i], true
	}
	return PlacedShip{}, false
}

// shipAt returns the index of the ship covering c, or -1.
func (b *Board) shipAt(c Coord) int {
	for i, s := range b.ships {
		if s.Contains(c) {
			return i
		}
	}
	return -1
}

// isSunk returns true if every cell of the ship has been hit.
func (b *Board) isSunk(i int) bool {
	for _, c := range b.ships[i].Cells() {
		if b.cells[c.Row][c.Col] != CellHit {
			return false
		}
	}
	return true
}
