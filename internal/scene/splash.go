package scene

import (
	"context"
	"time"

	"github.com/samdwyer/battleships/internal/input"
	"github.com/samdwyer/battleships/internal/ui"
)

// splashDuration is how long the title shows before moving on by itself.
const splashDuration = 2 * time.Second

var splashArt = []string{
	`  __|__ |___| |\       `,
	`  |o__| |___| | \      `,
	`  |___| |___| |o \     `,
	` _|___| |___| |__o\    `,
	`/...\_____|___|____\_/ `,
	`\   o * o * * o o  /   `,
	`~~~~~~~~~~~~~~~~~~~~~~~`,
}

// Splash shows the title screen.
type Splash struct {
	transition
	ctx     *Context
	next    Scene
	elapsed time.Duration
	done    bool
}

// NewSplash creates the title screen, which hands over to next.
func NewSplash(c *Context, next Scene) *Splash {
	return &Splash{ctx: c, next: next}
}

// Name implements Scene.
func (s *Splash) Name() string { return "splash" }

// Update implements Scene.
func (s *Splash) Update(_ context.Context, dt time.Duration) {
	if s.done {
		return
	}
	s.elapsed += dt
	if s.ctx.Keys.Pressed(input.ActionConfirm) || s.elapsed >= splashDuration {
		s.done = true
		s.goTo(s.next)
	}
}

// Draw implements Scene.
func (s *Splash) Draw(_ time.Duration, f *ui.Frame) {
	_, h := f.Size()
	top := (h - len(splashArt) - 4) / 2
	if top < 0 {
		top = 0
	}

	for i, line := range splashArt {
		f.PrintCentered(top+i, line, ui.StyleWater)
	}
	f.PrintCentered(top+len(splashArt)+1, s.ctx.Text.T("title"), ui.StyleTitle)
	f.PrintCentered(top+len(splashArt)+2, s.ctx.Text.T("splash.subtitle"), ui.StyleDefault)
	f.PrintCentered(top+len(splashArt)+4, s.ctx.Text.T("splash.pressEnter"), ui.StyleHint)
}
