package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/battleships/internal/board"
)

// ShipDef defines a ship template loaded from JSON.
type ShipDef struct {
	ID     string `json:"id"`     // Unique identifier (e.g., "carrier")
	Name   string `json:"name"`   // Display name (e.g., "Carrier")
	Size   int    `json:"size"`   // Number of cells the ship covers
	Symbol string `json:"symbol"` // Single character for rendering (e.g., "C")
	Color  string `json:"color"`  // Hex color code (e.g., "#00FF00")
}

// SymbolRune returns the symbol as a rune for rendering.
func (s *ShipDef) SymbolRune() rune {
	if len(s.Symbol) == 0 {
		return '?'
	}
	return rune(s.Symbol[0])
}

// TCellColor returns the color as a tcell.Color.
func (s *ShipDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(s.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// BoardDef converts the loaded definition into the board package's template.
func (s *ShipDef) BoardDef() board.ShipDef {
	return board.ShipDef{
		ID:     s.ID,
		Name:   s.Name,
		Size:   s.Size,
		Symbol: s.SymbolRune(),
	}
}

// FleetFile represents the structure of fleet.json.
type FleetFile struct {
	Ships []ShipDef `json:"ships"`
}

// Fleet is the catalog of ships each player must place before battle.
type Fleet struct {
	ships []ShipDef
}

// NewFleet creates a fleet from loaded ship definitions.
func NewFleet(ships []ShipDef) (*Fleet, error) {
	if len(ships) == 0 {
		return nil, errors.New("fleet has no ships")
	}
	seen := make(map[string]bool, len(ships))
	for _, s := range ships {
		if s.Size <= 0 {
			return nil, fmt.Errorf("ship %q has invalid size %d", s.ID, s.Size)
		}
		if seen[s.ID] {
			return nil, fmt.Errorf("duplicate ship id %q", s.ID)
		}
		seen[s.ID] = true
	}
	return &Fleet{ships: ships}, nil
}

// LoadFleet loads the fleet catalog from the embedded fleet.json file.
func LoadFleet() (*Fleet, error) {
	file, err := Load[FleetFile]("fleet.json")
	if err != nil {
		return nil, err
	}
	return NewFleet(file.Ships)
}

// MustLoadFleet loads the fleet catalog, panicking on error.
func MustLoadFleet() *Fleet {
	fleet, err := LoadFleet()
	if err != nil {
		panic(err)
	}
	return fleet
}

// Catalog returns the ship templates in placement order.
func (f *Fleet) Catalog() []board.ShipDef {
	out := make([]board.ShipDef, len(f.ships))
	for i := range f.ships {
		out[i] = f.ships[i].BoardDef()
	}
	return out
}

// GetByID returns the ship definition with the given ID, or nil if not found.
func (f *Fleet) GetByID(id string) *ShipDef {
	for i := range f.ships {
		if f.ships[i].ID == id {
			return &f.ships[i]
		}
	}
	return nil
}

// Count returns the number of ships in the catalog.
func (f *Fleet) Count() int {
	return len(f.ships)
}

// TotalCells returns the number of grid cells the whole fleet covers.
func (f *Fleet) TotalCells() int {
	total := 0
	for _, s := range f.ships {
		total += s.Size
	}
	return total
}
