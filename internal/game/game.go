// Package game runs the fixed-rate loop that drives the active scene.
package game

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/battleships/internal/gamedata"
	"github.com/samdwyer/battleships/internal/i18n"
	"github.com/samdwyer/battleships/internal/input"
	"github.com/samdwyer/battleships/internal/scene"
	"github.com/samdwyer/battleships/internal/telemetry"
	"github.com/samdwyer/battleships/internal/ui"
)

// Game holds the entire game state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	frame    *ui.Frame
	keys     *input.Keyboard
	env      *scene.Context
	current  scene.Scene
	interval time.Duration
	log      logr.Logger
	tracer   trace.Tracer
	running  bool

	resized   atomic.Bool
	abort     chan struct{}
	abortOnce sync.Once
}

// New creates a new game instance on the terminal.
func New(cfg Config, log logr.Logger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	g, err := newGame(screen, cfg, log)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

func newGame(screen *ui.Screen, cfg Config, log logr.Logger) (*Game, error) {
	fleet, err := gamedata.LoadFleet()
	if err != nil {
		return nil, err
	}
	tables, err := gamedata.LoadTranslations()
	if err != nil {
		return nil, err
	}

	text := i18n.New(tables, log)
	if err := text.SetLanguage(cfg.Language); err != nil {
		log.V(1).Info("Keeping default language", "requested", cfg.Language)
	}

	g := &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		frame:    ui.NewFrame(screen.Size()),
		interval: cfg.TickInterval(),
		log:      log,
		tracer:   telemetry.Tracer("game"),
		running:  true,
		abort:    make(chan struct{}),
	}
	g.keys = input.NewKeyboard(g.cancel)
	g.env = scene.NewContext(g.keys, text, fleet, cfg.NewRand(), log, g.quit)
	g.current = scene.NewSplash(g.env, scene.NewMenu(g.env))
	return g, nil
}

// Run executes the main game loop until the player quits, presses the
// cancel key, or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	_, initSpan := g.tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.Int("fleet.ships", g.env.Fleet.Count()),
		attribute.Int("board.size", g.env.BoardSize),
		attribute.String("language", g.env.Text.Language()),
		attribute.Int64("tick.interval_us", g.interval.Microseconds()),
	)
	initSpan.End()
	g.log.Info("Game started", "scene", g.current.Name(), "language", g.env.Text.Language())

	go g.pollEvents()

	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	last := time.Now()
	for g.running {
		select {
		case <-ctx.Done():
			g.log.Info("Game stopped", "reason", ctx.Err())
			return nil
		case <-g.abort:
			g.log.Info("Game stopped", "reason", "cancel key")
			return nil
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			g.tick(ctx, dt)
		}
	}

	g.log.Info("Game stopped", "reason", "quit")
	return nil
}

// pollEvents feeds terminal events to the keyboard. It returns once the
// screen is closed.
func (g *Game) pollEvents() {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			g.keys.HandleEvent(ev)
		case *tcell.EventResize:
			g.resized.Store(true)
		}
	}
}

// tick runs one update/draw cycle. While a line request is open the scene
// is not updated; the prompt is polled in its place.
func (g *Game) tick(ctx context.Context, dt time.Duration) {
	if g.resized.Swap(false) {
		g.screen.Sync()
	}

	if g.env.Prompt.Pending() {
		g.env.Prompt.Poll(ctx)
	} else {
		g.current.Update(ctx, dt)
	}

	g.frame.Resize(g.screen.Size())
	g.current.Draw(dt, g.frame)
	g.drawPrompt()
	g.renderer.Present(g.frame)

	if next, ok := g.current.TakeTransition(); ok {
		g.switchTo(ctx, next)
	}
}

func (g *Game) switchTo(ctx context.Context, next scene.Scene) {
	from := g.current.Name()

	_, span := g.tracer.Start(ctx, "scene.transition")
	span.SetAttributes(
		attribute.String("scene.from", from),
		attribute.String("scene.to", next.Name()),
	)
	defer span.End()

	g.current = next
	g.keys.Clear()
	g.renderer.Reset()
	g.log.V(1).Info("Scene changed", "from", from, "to", next.Name())
}

// drawPrompt overlays the open line request on the bottom three rows.
func (g *Game) drawPrompt() {
	prompt, typed, problem, ok := g.env.Prompt.View()
	if !ok {
		return
	}
	_, h := g.frame.Size()
	g.frame.Print(1, h-3, prompt, ui.StyleTitle)
	g.frame.Print(1, h-2, fmt.Sprintf("> %s_", typed), ui.StyleDefault)
	if problem != "" {
		g.frame.Print(1, h-1, problem, ui.StyleAlert)
	}
}

// Scene returns the active scene.
func (g *Game) Scene() scene.Scene {
	return g.current
}

// Running reports whether the loop will run another tick.
func (g *Game) Running() bool {
	return g.running
}

func (g *Game) quit() {
	g.running = false
}

// cancel is called from the event goroutine.
func (g *Game) cancel() {
	g.abortOnce.Do(func() { close(g.abort) })
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
