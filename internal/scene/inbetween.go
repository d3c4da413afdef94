package scene

import (
	"context"
	"time"

	"github.com/samdwyer/battleships/internal/input"
	"github.com/samdwyer/battleships/internal/ui"
)

// InBetween hides the screen while the keyboard changes hands.
type InBetween struct {
	transition
	ctx    *Context
	player Player
	next   Scene
	done   bool
}

// NewInBetween creates a hand-over screen for player that continues to next.
func NewInBetween(c *Context, player Player, next Scene) *InBetween {
	return &InBetween{ctx: c, player: player, next: next}
}

// Name implements Scene.
func (s *InBetween) Name() string { return "in_between" }

// Update implements Scene.
func (s *InBetween) Update(_ context.Context, _ time.Duration) {
	if !s.done && s.ctx.Keys.Pressed(input.ActionConfirm) {
		s.done = true
		s.goTo(s.next)
	}
}

// Draw implements Scene.
func (s *InBetween) Draw(_ time.Duration, f *ui.Frame) {
	_, h := f.Size()
	name := s.ctx.PlayerName(s.player)
	f.PrintCentered(h/2-1, s.ctx.Text.Tf("inBetween.handOver", name), ui.StyleTitle)
	f.PrintCentered(h/2+1, s.ctx.Text.Tf("inBetween.pressEnter", name), ui.StyleHint)
}
