package board

import (
	"errors"
	"math/rand"
	"testing"
)

var testFleet = []ShipDef{
	{ID: "carrier", Name: "Carrier", Size: 5, Symbol: 'C'},
	{ID: "battleship", Name: "Battleship", Size: 4, Symbol: 'B'},
	{ID: "cruiser", Name: "Cruiser", Size: 3, Symbol: 'R'},
	{ID: "submarine", Name: "Submarine", Size: 3, Symbol: 'U'},
	{ID: "destroyer", Name: "Destroyer", Size: 2, Symbol: 'D'},
}

var destroyer = ShipDef{ID: "destroyer", Name: "Destroyer", Size: 2, Symbol: 'D'}

// shipCells collects every position currently in CellShip or CellHit state.
func shipCells(b *Board) map[Coord]bool {
	cells := make(map[Coord]bool)
	for row := 0; row < b.Size(); row++ {
		for col := 0; col < b.Size(); col++ {
			c := Coord{Row: row, Col: col}
			if s := b.Cell(c); s == CellShip || s == CellHit {
				cells[c] = true
			}
		}
	}
	return cells
}

// footprints collects the union of placed-ship cells, failing on overlap.
func footprints(t *testing.T, b *Board) map[Coord]bool {
	t.Helper()
	cells := make(map[Coord]bool)
	for _, s := range b.Ships() {
		for _, c := range s.Cells() {
			if cells[c] {
				t.Fatalf("ships overlap at %s", c)
			}
			cells[c] = true
		}
	}
	return cells
}

func assertShipCellsMatchFootprints(t *testing.T, b *Board) {
	t.Helper()
	got := shipCells(b)
	want := footprints(t, b)
	if len(got) != len(want) {
		t.Fatalf("ship cells = %d, footprint cells = %d", len(got), len(want))
	}
	for c := range want {
		if !got[c] {
			t.Errorf("footprint cell %s is not a ship cell", c)
		}
	}
}

func TestNewBoardIsEmpty(t *testing.T) {
	b := New(DefaultSize)

	if b.Size() != 10 {
		t.Errorf("Size() = %d, want 10", b.Size())
	}
	if b.HasRemainingShips() {
		t.Error("HasRemainingShips() on empty board should be false")
	}
	if len(b.Ships()) != 0 {
		t.Errorf("Ships() length = %d, want 0", len(b.Ships()))
	}
}

func TestPlaceShipHorizontalAtOrigin(t *testing.T) {
	b := New(DefaultSize)

	if err := b.PlaceShip(destroyer, Coord{0, 0}, Horizontal); err != nil {
		t.Fatalf("PlaceShip() error = %v", err)
	}

	for _, c := range []Coord{{0, 0}, {0, 1}} {
		if got := b.Cell(c); got != CellShip {
			t.Errorf("Cell(%s) = %v, want ship", c, got)
		}
	}
	if got := b.Cell(Coord{1, 0}); got != CellEmpty {
		t.Errorf("Cell(1,0) = %v, want empty", got)
	}
	assertShipCellsMatchFootprints(t, b)
}

func TestPlaceShipRejected(t *testing.T) {
	tests := []struct {
		name    string
		origin  Coord
		orient  Orientation
		wantErr error
	}{
		{"past right edge", Coord{0, 9}, Horizontal, ErrOutOfBounds},
		{"past bottom edge", Coord{9, 0}, Vertical, ErrOutOfBounds},
		{"negative origin", Coord{-1, 0}, Horizontal, ErrOutOfBounds},
		{"overlap existing", Coord{4, 4}, Vertical, ErrOverlap},
		{"overlap tail", Coord{3, 5}, Vertical, ErrOverlap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(DefaultSize)
			if err := b.PlaceShip(destroyer, Coord{4, 4}, Horizontal); err != nil {
				t.Fatalf("setup PlaceShip() error = %v", err)
			}
			before := shipCells(b)

			err := b.PlaceShip(destroyer, tt.origin, tt.orient)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("PlaceShip() error = %v, want %v", err, tt.wantErr)
			}
			if len(b.Ships()) != 1 {
				t.Errorf("Ships() length = %d, want 1 after rejection", len(b.Ships()))
			}
			if after := shipCells(b); len(after) != len(before) {
				t.Errorf("ship cells changed on rejection: %d -> %d", len(before), len(after))
			}
		})
	}
}

func TestPlaceShipEdgeFits(t *testing.T) {
	b := New(DefaultSize)

	// A size-2 ship ending on the last column is legal.
	if err := b.PlaceShip(destroyer, Coord{0, 8}, Horizontal); err != nil {
		t.Errorf("PlaceShip() at last column error = %v", err)
	}
	if err := b.PlaceShip(destroyer, Coord{8, 0}, Vertical); err != nil {
		t.Errorf("PlaceShip() at last row error = %v", err)
	}
	assertShipCellsMatchFootprints(t, b)
}

func TestRandomAutoPlace(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		b := New(DefaultSize)
		rng := rand.New(rand.NewSource(seed))

		if err := b.RandomAutoPlace(rng, testFleet); err != nil {
			t.Fatalf("seed %d: RandomAutoPlace() error = %v", seed, err)
		}
		if len(b.Ships()) != len(testFleet) {
			t.Fatalf("seed %d: Ships() length = %d, want %d", seed, len(b.Ships()), len(testFleet))
		}
		if got := len(shipCells(b)); got != 17 {
			t.Errorf("seed %d: ship cells = %d, want 17", seed, got)
		}
		assertShipCellsMatchFootprints(t, b)
	}
}

func TestRandomAutoPlaceReproducible(t *testing.T) {
	b1 := New(DefaultSize)
	b2 := New(DefaultSize)

	if err := b1.RandomAutoPlace(rand.New(rand.NewSource(12345)), testFleet); err != nil {
		t.Fatal(err)
	}
	if err := b2.RandomAutoPlace(rand.New(rand.NewSource(12345)), testFleet); err != nil {
		t.Fatal(err)
	}

	s1, s2 := b1.Ships(), b2.Ships()
	for i := range s1 {
		if s1[i] != s2[i] {
			t.Errorf("ship %d mismatch: %+v != %+v", i, s1[i], s2[i])
		}
	}
}

func TestRandomAutoPlaceNoRoom(t *testing.T) {
	b := New(3)
	huge := ShipDef{ID: "huge", Size: 4}

	err := b.RandomAutoPlace(rand.New(rand.NewSource(1)), []ShipDef{huge})
	if !errors.Is(err, ErrNoRoom) {
		t.Errorf("RandomAutoPlace() error = %v, want ErrNoRoom", err)
	}
}

func TestAttackHitThenAlreadyAttacked(t *testing.T) {
	b := New(DefaultSize)
	if err := b.PlaceShip(destroyer, Coord{0, 0}, Horizontal); err != nil {
		t.Fatal(err)
	}

	shot, err := b.Attack(Coord{0, 0})
	if err != nil {
		t.Fatalf("Attack() error = %v", err)
	}
	if shot.Result != Hit {
		t.Errorf("Attack(0,0) = %v, want hit", shot.Result)
	}
	if shot.Ship.ID != "destroyer" || shot.Sunk {
		t.Errorf("Attack(0,0) ship = %q sunk = %v, want destroyer not sunk", shot.Ship.ID, shot.Sunk)
	}
	if got := b.Cell(Coord{0, 0}); got != CellHit {
		t.Errorf("Cell(0,0) = %v, want hit", got)
	}

	shot, _ = b.Attack(Coord{0, 0})
	if shot.Result != AlreadyAttacked {
		t.Errorf("second Attack(0,0) = %v, want already_attacked", shot.Result)
	}
	if got := b.Cell(Coord{0, 0}); got != CellHit {
		t.Errorf("Cell(0,0) after repeat = %v, want hit", got)
	}
}

func TestAttackMiss(t *testing.T) {
	b := New(DefaultSize)

	shot, err := b.Attack(Coord{5, 5})
	if err != nil {
		t.Fatalf("Attack() error = %v", err)
	}
	if shot.Result != Miss {
		t.Errorf("Attack(5,5) = %v, want miss", shot.Result)
	}
	if got := b.Cell(Coord{5, 5}); got != CellMiss {
		t.Errorf("Cell(5,5) = %v, want miss", got)
	}

	shot, _ = b.Attack(Coord{5, 5})
	if shot.Result != AlreadyAttacked {
		t.Errorf("second Attack(5,5) = %v, want already_attacked", shot.Result)
	}
	if got := b.Cell(Coord{5, 5}); got != CellMiss {
		t.Errorf("Cell(5,5) after repeat = %v, want miss", got)
	}
}

func TestAttackOutOfBounds(t *testing.T) {
	b := New(DefaultSize)

	if _, err := b.Attack(Coord{10, 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Attack(10,0) error = %v, want ErrOutOfBounds", err)
	}
}

func TestHasRemainingShipsFlipsWhenAllHit(t *testing.T) {
	b := New(DefaultSize)
	if err := b.RandomAutoPlace(rand.New(rand.NewSource(7)), testFleet); err != nil {
		t.Fatal(err)
	}

	cells := footprints(t, b)
	hits := 0
	for c := range cells {
		if !b.HasRemainingShips() {
			t.Fatalf("HasRemainingShips() false after %d of %d hits", hits, len(cells))
		}
		shot, err := b.Attack(c)
		if err != nil || shot.Result != Hit {
			t.Fatalf("Attack(%s) = %v, %v, want hit", c, shot.Result, err)
		}
		hits++
	}

	if b.HasRemainingShips() {
		t.Error("HasRemainingShips() should be false once every ship cell is hit")
	}
	if got := b.RemainingShips(); got != 0 {
		t.Errorf("RemainingShips() = %d, want 0", got)
	}
}

func TestAttackReportsSunk(t *testing.T) {
	b := New(DefaultSize)
	if err := b.PlaceShip(destroyer, Coord{2, 3}, Vertical); err != nil {
		t.Fatal(err)
	}

	if got := b.RemainingShips(); got != 1 {
		t.Fatalf("RemainingShips() = %d, want 1", got)
	}
	b.Attack(Coord{2, 3})
	shot, _ := b.Attack(Coord{3, 3})

	if !shot.Sunk {
		t.Error("final hit should report Sunk")
	}
	if got := b.RemainingShips(); got != 0 {
		t.Errorf("RemainingShips() = %d, want 0", got)
	}
}
