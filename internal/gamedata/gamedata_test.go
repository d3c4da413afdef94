package gamedata

import (
	"testing"
)

func TestLoadFleet(t *testing.T) {
	fleet, err := LoadFleet()
	if err != nil {
		t.Fatalf("Failed to load fleet: %v", err)
	}

	if fleet.Count() != 5 {
		t.Errorf("Expected 5 ships, got %d", fleet.Count())
	}
	if fleet.TotalCells() != 17 {
		t.Errorf("Expected 17 ship cells, got %d", fleet.TotalCells())
	}

	// Verify expected ships exist
	for _, id := range []string{"carrier", "battleship", "cruiser", "submarine", "destroyer"} {
		if fleet.GetByID(id) == nil {
			t.Errorf("Expected ship %q not found", id)
		}
	}

	catalog := fleet.Catalog()
	if catalog[0].ID != "carrier" || catalog[0].Size != 5 || catalog[0].Symbol != 'C' {
		t.Errorf("Catalog()[0] = %+v, want carrier of size 5 with symbol C", catalog[0])
	}
}

func TestNewFleetValidation(t *testing.T) {
	tests := []struct {
		name  string
		ships []ShipDef
		valid bool
	}{
		{"empty", nil, false},
		{"zero size", []ShipDef{{ID: "a", Size: 0}}, false},
		{"duplicate id", []ShipDef{{ID: "a", Size: 2}, {ID: "a", Size: 3}}, false},
		{"valid", []ShipDef{{ID: "a", Size: 2}, {ID: "b", Size: 3}}, true},
	}

	for _, tt := range tests {
		_, err := NewFleet(tt.ships)
		if tt.valid && err != nil {
			t.Errorf("NewFleet(%s) should be valid, got error: %v", tt.name, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("NewFleet(%s) should be invalid, got no error", tt.name)
		}
	}
}

func TestLoadTranslations(t *testing.T) {
	tr, err := LoadTranslations()
	if err != nil {
		t.Fatalf("Failed to load translations: %v", err)
	}

	for _, lang := range []string{"en", "es"} {
		table, ok := tr[lang]
		if !ok {
			t.Errorf("Expected language %q not found", lang)
			continue
		}
		if _, ok := table["battle"]; !ok {
			t.Errorf("Language %q has no battle section", lang)
		}
	}
}

func TestDecode(t *testing.T) {
	file, err := Decode[FleetFile]("inline", []byte(`{"ships":[{"id":"pt","size":1}]}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(file.Ships) != 1 || file.Ships[0].ID != "pt" {
		t.Errorf("Decode() = %+v, want one ship with id pt", file)
	}

	if _, err := Decode[FleetFile]("broken", []byte(`{`)); err == nil {
		t.Error("Decode() of truncated JSON should fail")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#0000FF", true},
		{"#FFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#GGGGGG", false},
		{"#FFFF", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestShipDefMethods(t *testing.T) {
	def := ShipDef{
		ID:     "test",
		Name:   "Test Ship",
		Size:   3,
		Symbol: "T",
		Color:  "#FF0000",
	}

	if def.SymbolRune() != 'T' {
		t.Errorf("Expected symbol 'T', got %c", def.SymbolRune())
	}

	color := def.TCellColor()
	if color == 0 {
		t.Error("TCellColor returned zero color")
	}

	bd := def.BoardDef()
	if bd.ID != "test" || bd.Size != 3 || bd.Symbol != 'T' {
		t.Errorf("BoardDef() = %+v, want id test size 3 symbol T", bd)
	}
}
