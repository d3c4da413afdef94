package scene

import (
	"context"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/battleships/internal/board"
	"github.com/samdwyer/battleships/internal/input"
	"github.com/samdwyer/battleships/internal/ui"
)

// PlacementDone receives a fully placed board and returns the scene to run
// next. It is called exactly once.
type PlacementDone func(b *board.Board) Scene

// Placement lets one player position every ship of the fleet catalog.
type Placement struct {
	transition
	ctx         *Context
	player      Player
	board       *board.Board
	catalog     []board.ShipDef
	index       int // next catalog entry to place
	cursor      board.Coord
	orientation board.Orientation
	onDone      PlacementDone
	blocked     bool // last confirm was rejected
}

// NewPlacement creates a placement scene with an empty board for player.
func NewPlacement(c *Context, player Player, onDone PlacementDone) *Placement {
	return &Placement{
		ctx:         c,
		player:      player,
		board:       board.New(c.BoardSize),
		catalog:     c.Fleet.Catalog(),
		orientation: board.Horizontal,
		onDone:      onDone,
	}
}

// Name implements Scene.
func (p *Placement) Name() string { return "placement_" + p.player.String() }

// Board returns the board being populated.
func (p *Placement) Board() *board.Board { return p.board }

// Cursor returns the origin the next ship would be placed at.
func (p *Placement) Cursor() board.Coord { return p.cursor }

// Orientation returns the orientation the next ship would be placed in.
func (p *Placement) Orientation() board.Orientation { return p.orientation }

// Index returns how many catalog entries have been placed.
func (p *Placement) Index() int { return p.index }

// Done reports whether the whole catalog has been placed.
func (p *Placement) Done() bool { return p.index >= len(p.catalog) }

// Update implements Scene.
func (p *Placement) Update(ctx context.Context, _ time.Duration) {
	if p.Done() {
		return
	}

	keys := p.ctx.Keys
	if keys.Pressed(input.ActionUp) {
		p.moveCursor(-1, 0)
	}
	if keys.Pressed(input.ActionDown) {
		p.moveCursor(1, 0)
	}
	if keys.Pressed(input.ActionLeft) {
		p.moveCursor(0, -1)
	}
	if keys.Pressed(input.ActionRight) {
		p.moveCursor(0, 1)
	}
	if keys.Pressed(input.ActionRotate) {
		p.orientation = p.orientation.Toggle()
	}

	if keys.Pressed(input.ActionAuto) {
		p.autoPlace(ctx)
		return
	}
	if keys.Pressed(input.ActionConfirm) {
		p.place(ctx)
	}
}

func (p *Placement) moveCursor(dRow, dCol int) {
	p.cursor = p.cursor.Add(dRow, dCol).Clamp(p.board.Size())
}

// place commits the current ship at the cursor. A rejected placement
// changes nothing but the hint.
func (p *Placement) place(ctx context.Context) {
	def := p.catalog[p.index]

	_, span := p.ctx.Tracer.Start(ctx, "placement.place")
	span.SetAttributes(
		attribute.String("player", p.player.String()),
		attribute.String("ship", def.ID),
		attribute.Int("row", p.cursor.Row),
		attribute.Int("col", p.cursor.Col),
		attribute.String("orientation", p.orientation.String()),
	)
	defer span.End()

	if err := p.board.PlaceShip(def, p.cursor, p.orientation); err != nil {
		span.SetAttributes(attribute.Bool("rejected", true))
		p.ctx.Log.V(2).Info("Placement rejected", "player", p.player, "ship", def.ID, "reason", err.Error())
		p.blocked = true
		return
	}

	p.blocked = false
	p.index++
	p.cursor = board.Coord{}
	if p.Done() {
		p.finish()
	}
}

// autoPlace randomly places every ship not yet placed.
func (p *Placement) autoPlace(ctx context.Context) {
	_, span := p.ctx.Tracer.Start(ctx, "placement.auto")
	span.SetAttributes(
		attribute.String("player", p.player.String()),
		attribute.Int("remaining", len(p.catalog)-p.index),
	)
	defer span.End()

	if err := p.board.RandomAutoPlace(p.ctx.Rng, p.catalog[p.index:]); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "auto placement failed")
		p.ctx.Log.Error(err, "Auto placement failed", "player", p.player)
		// Keep whatever did fit so the board and index agree.
		p.index = len(p.board.Ships())
		p.blocked = true
		return
	}

	p.blocked = false
	p.index = len(p.catalog)
	p.cursor = board.Coord{}
	p.finish()
}

// finish hands the board to the continuation, once.
func (p *Placement) finish() {
	onDone := p.onDone
	p.onDone = nil
	if onDone == nil {
		return
	}
	p.ctx.Log.V(1).Info("Fleet placed", "player", p.player, "ships", len(p.board.Ships()))
	p.goTo(onDone(p.board))
}

// Draw implements Scene.
func (p *Placement) Draw(_ time.Duration, f *ui.Frame) {
	text := p.ctx.Text
	f.Print(2, 0, text.T("shipPlacementPhase")+" - "+p.ctx.PlayerName(p.player), ui.StyleTitle)

	view := boardView{board: p.board, fleet: p.ctx.Fleet, reveal: true}
	if !p.Done() {
		def := p.catalog[p.index]
		view.cursor = &p.cursor
		view.preview = board.Footprint(p.cursor, def.Size, p.orientation)
		view.previewOK = p.board.CanPlace(def, p.cursor, p.orientation) == nil
		view.previewCh = def.Symbol
	}
	view.draw(f, 2, 2)

	x := 2 + boardViewWidth(p.board.Size()) + 4
	f.Print(x, 2, text.T("controls.moveCursor"), ui.StyleHint)
	f.Print(x, 3, text.T("controls.rotateShip"), ui.StyleHint)
	f.Print(x, 4, text.T("controls.placeShip"), ui.StyleHint)
	f.Print(x, 5, text.T("controls.autoPlace"), ui.StyleHint)

	f.Print(x, 7, text.T("shipsToPlace")+":", ui.StyleDefault)
	for i, def := range p.catalog {
		marker, style := text.T("status.notYetPlaced"), ui.StyleDefault
		switch {
		case i < p.index:
			marker, style = text.T("status.placed"), ui.StyleHint
		case i == p.index:
			marker, style = text.T("status.current"), ui.StyleTitle
		}
		f.Print(x, 8+i, marker+" "+def.Name+" ("+strconv.Itoa(def.Size)+")", style)
	}

	f.Print(x, 9+len(p.catalog), text.T("placement.orientation."+p.orientation.String()), ui.StyleDefault)
	if p.blocked {
		f.Print(2, 3+p.board.Size(), text.T("placement.blocked"), ui.StyleAlert)
	}
}
