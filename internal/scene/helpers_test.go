package scene

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"

	"github.com/samdwyer/battleships/internal/board"
	"github.com/samdwyer/battleships/internal/gamedata"
	"github.com/samdwyer/battleships/internal/i18n"
	"github.com/samdwyer/battleships/internal/input"
	"github.com/samdwyer/battleships/internal/ui"
)

const tick = time.Second / 60

// testHarness holds a Context wired to in-memory collaborators.
type testHarness struct {
	ctx   *Context
	quits int
}

func newHarness(t *testing.T, fleet *gamedata.Fleet) *testHarness {
	t.Helper()

	tables, err := gamedata.LoadTranslations()
	if err != nil {
		t.Fatalf("LoadTranslations() error = %v", err)
	}
	if fleet == nil {
		fleet = gamedata.MustLoadFleet()
	}

	h := &testHarness{}
	h.ctx = NewContext(
		input.NewKeyboard(nil),
		i18n.New(tables, logr.Discard()),
		fleet,
		rand.New(rand.NewSource(42)),
		logr.Discard(),
		func() { h.quits++ },
	)
	return h
}

// destroyerFleet is a one-ship fleet for short games.
func destroyerFleet(t *testing.T) *gamedata.Fleet {
	t.Helper()
	fleet, err := gamedata.NewFleet([]gamedata.ShipDef{
		{ID: "destroyer", Name: "Destroyer", Size: 2, Symbol: "D", Color: "#E57373"},
	})
	if err != nil {
		t.Fatal(err)
	}
	return fleet
}

// press simulates a key-down followed by one tick of s.
func (h *testHarness) press(s Scene, key tcell.Key, r rune) {
	h.ctx.Keys.HandleKey(key, r)
	s.Update(context.Background(), tick)
}

func (h *testHarness) pressN(s Scene, key tcell.Key, n int) {
	for i := 0; i < n; i++ {
		h.press(s, key, 0)
	}
}

// typeLine enters text mode input and lets the prompt consume it.
func (h *testHarness) typeLine(text string) bool {
	for _, r := range text {
		h.ctx.Keys.HandleKey(tcell.KeyRune, r)
	}
	h.ctx.Keys.HandleKey(tcell.KeyEnter, 0)
	return h.ctx.Prompt.Poll(context.Background())
}

func draw(s Scene) *ui.Frame {
	f := ui.NewFrame(80, 24)
	s.Draw(tick, f)
	return f
}

// placedBoard returns a board with a destroyer at origin horizontally.
func placedBoard(t *testing.T, origin board.Coord) *board.Board {
	t.Helper()
	b := board.New(board.DefaultSize)
	def := board.ShipDef{ID: "destroyer", Name: "Destroyer", Size: 2, Symbol: 'D'}
	if err := b.PlaceShip(def, origin, board.Horizontal); err != nil {
		t.Fatal(err)
	}
	return b
}
