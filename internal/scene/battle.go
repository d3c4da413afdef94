package scene

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/battleships/internal/board"
	"github.com/samdwyer/battleships/internal/input"
	"github.com/samdwyer/battleships/internal/ui"
)

// Battle alternates shots between the two players until one fleet is sunk.
type Battle struct {
	transition
	ctx      *Context
	session  *Session
	cursors  [2]board.Coord
	message  string
	msgStyle tcell.Style
	leaving  bool
}

// NewBattle starts a battle between two fully placed boards.
func NewBattle(c *Context, first, second *board.Board) *Battle {
	return &Battle{
		ctx:      c,
		session:  NewSession(first, second),
		msgStyle: ui.StyleDefault,
	}
}

// Name implements Scene.
func (b *Battle) Name() string { return "battle" }

// Session returns the battle's game session.
func (b *Battle) Session() *Session { return b.session }

// Cursor returns the current player's aim.
func (b *Battle) Cursor() board.Coord { return b.cursors[b.session.Current()] }

// Message returns the last status line.
func (b *Battle) Message() string { return b.message }

// Update implements Scene.
func (b *Battle) Update(ctx context.Context, _ time.Duration) {
	keys := b.ctx.Keys

	if b.session.Over() {
		if !b.leaving && keys.Pressed(input.ActionConfirm) {
			b.leaving = true
			b.goTo(NewMenu(b.ctx))
		}
		return
	}

	p := b.session.Current()
	size := b.session.Opponent().Size()
	if keys.Pressed(input.ActionUp) {
		b.cursors[p] = b.cursors[p].Add(-1, 0).Clamp(size)
	}
	if keys.Pressed(input.ActionDown) {
		b.cursors[p] = b.cursors[p].Add(1, 0).Clamp(size)
	}
	if keys.Pressed(input.ActionLeft) {
		b.cursors[p] = b.cursors[p].Add(0, -1).Clamp(size)
	}
	if keys.Pressed(input.ActionRight) {
		b.cursors[p] = b.cursors[p].Add(0, 1).Clamp(size)
	}

	if keys.Pressed(input.ActionType) {
		if err := b.ctx.Prompt.Request(b.ctx.Text.T("battle.enterCoords"), b.handleTyped); err != nil {
			b.ctx.Log.Error(err, "Coordinate entry not opened")
		}
		return
	}
	if keys.Pressed(input.ActionConfirm) {
		b.fire(ctx, b.cursors[p])
	}
}

// handleTyped resolves a typed "row,col" line. Malformed text re-prompts
// without touching the turn or either board.
func (b *Battle) handleTyped(ctx context.Context, line string) error {
	target, err := board.ParseCoord(line, b.session.Opponent().Size())
	if err != nil {
		b.ctx.Log.V(2).Info("Rejected typed coordinates", "line", line, "reason", err.Error())
		return input.Retry(b.ctx.Text.T("battle.invalidCoords"), err)
	}
	b.cursors[b.session.Current()] = target
	b.fire(ctx, target)
	return nil
}

// fire resolves one shot and updates the status line.
func (b *Battle) fire(ctx context.Context, target board.Coord) {
	shooter := b.session.Current()
	name := b.ctx.PlayerName(shooter)

	ctx, span := b.ctx.Tracer.Start(ctx, "battle.attack")
	defer span.End()
	span.SetAttributes(
		attribute.String("session", b.session.ID),
		attribute.String("player", shooter.String()),
		attribute.Int("row", target.Row),
		attribute.Int("col", target.Col),
	)

	shot, err := b.session.Fire(target)
	if err != nil {
		span.RecordError(err)
		if !errors.Is(err, ErrGameOver) {
			b.ctx.Log.Error(err, "Attack failed", "target", target.String())
		}
		return
	}
	span.SetAttributes(attribute.String("result", shot.Result.String()))
	b.ctx.Log.V(1).Info("Attack resolved", "player", shooter, "target", target.String(), "result", shot.Result.String())

	switch shot.Result {
	case board.AlreadyAttacked:
		b.setMessage(b.ctx.Text.T("battle.alreadyAttacked"), ui.StyleAlert)
		return
	case board.Hit:
		msg := b.ctx.Text.Tf("battle.hit", name, target.String())
		if shot.Sunk {
			msg += " " + b.ctx.Text.Tf("battle.sunk", name, shot.Ship.Name)
			span.SetAttributes(attribute.String("sunk", shot.Ship.ID))
		}
		b.setMessage(msg, ui.StyleHit)
	case board.Miss:
		b.setMessage(b.ctx.Text.Tf("battle.miss", name, target.String()), ui.StyleDefault)
	}

	if b.session.Over() {
		b.end(ctx)
	}
}

// end records the result once a winner is known.
func (b *Battle) end(ctx context.Context) {
	winner := b.session.Winner()

	_, span := b.ctx.Tracer.Start(ctx, "battle.end")
	span.SetAttributes(
		attribute.String("session", b.session.ID),
		attribute.String("winner", winner.String()),
		attribute.Int("turns", b.session.Turns()),
	)
	span.End()

	b.ctx.Log.Info("Battle won", "session", b.session.ID, "winner", winner, "turns", b.session.Turns())
	b.setMessage(b.ctx.Text.Tf("battle.wins", b.ctx.PlayerName(winner)), ui.StyleTitle)
}

func (b *Battle) setMessage(msg string, style tcell.Style) {
	b.message = msg
	b.msgStyle = style
}

// Draw implements Scene.
func (b *Battle) Draw(_ time.Duration, f *ui.Frame) {
	text := b.ctx.Text
	s := b.session
	p := s.Current()

	if s.Over() {
		f.Print(2, 0, text.Tf("battle.wins", b.ctx.PlayerName(s.Winner())), ui.StyleTitle)
	} else {
		f.Print(2, 0, text.Tf("battle.turn", b.ctx.PlayerName(p)), ui.StyleTitle)
	}

	size := s.Own().Size()
	leftX := 2
	rightX := leftX + boardViewWidth(size) + 6

	f.Print(leftX, 2, text.T("battle.yourBoard"), ui.StyleDefault)
	boardView{board: s.Own(), fleet: b.ctx.Fleet, reveal: true}.draw(f, leftX, 3)
	f.Print(leftX, 5+size, text.Tf("battle.remaining", s.Remaining(p)), ui.StyleHint)

	opponent := boardView{board: s.Opponent(), fleet: b.ctx.Fleet}
	if !s.Over() {
		cursor := b.cursors[p]
		opponent.cursor = &cursor
	}
	f.Print(rightX, 2, text.T("battle.opponentBoard"), ui.StyleDefault)
	opponent.draw(f, rightX, 3)
	f.Print(rightX, 5+size, text.Tf("battle.remaining", s.Remaining(p.Other())), ui.StyleHint)

	f.Print(leftX, 7+size, b.message, b.msgStyle)
	if s.Over() {
		f.Print(leftX, 9+size, text.T("battle.returnToMenu"), ui.StyleHint)
	} else {
		f.Print(leftX, 9+size, text.T("battle.controls"), ui.StyleHint)
	}
}
