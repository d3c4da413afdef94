package board

// Orientation is the direction a ship extends from its origin.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns a human-readable orientation name.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Toggle returns the other orientation.
func (o Orientation) Toggle() Orientation {
	if o == Horizontal {
		return Vertical
	}
	return Horizontal
}

// step returns the per-cell delta along the orientation.
func (o Orientation) step() (dRow, dCol int) {
	if o == Vertical {
		return 1, 0
	}
	return 0, 1
}

// ShipDef is an immutable ship template from the fleet catalog.
type ShipDef struct {
	ID     string
	Name   string
	Size   int
	Symbol rune
}

// Footprint returns the cells a ship of the given size would cover from origin.
// The result may extend past the grid; callers check bounds.
func Footprint(origin Coord, size int, o Orientation) []Coord {
	dRow, dCol := o.step()
	cells := make([]Coord, size)
	for i := range cells {
		cells[i] = origin.Add(dRow*i, dCol*i)
	}
	return cells
}

// PlacedShip is a ship committed to a board.
type PlacedShip struct {
	Def         ShipDef
	Origin      Coord
	Orientation Orientation
}

// Cells returns the grid positions occupied by the ship.
func (p PlacedShip) Cells() []Coord {
	return Footprint(p.Origin, p.Def.Size, p.Orientation)
}

// Contains returns true if the ship occupies the given position.
func (p PlacedShip) Contains(c Coord) bool {
	dRow, dCol := p.Orientation.step()
	for i := 0; i < p.Def.Size; i++ {
		if p.Origin.Add(dRow*i, dCol*i) == c {
			return true
		}
	}
	return false
}
