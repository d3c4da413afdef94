package scene

import (
	"math/rand"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/battleships/internal/board"
	"github.com/samdwyer/battleships/internal/gamedata"
	"github.com/samdwyer/battleships/internal/i18n"
	"github.com/samdwyer/battleships/internal/input"
	"github.com/samdwyer/battleships/internal/telemetry"
)

// Player identifies one of the two seats.
type Player int

const (
	PlayerFirst Player = iota
	PlayerSecond
)

// String returns a human-readable player name.
func (p Player) String() string {
	switch p {
	case PlayerFirst:
		return "first"
	case PlayerSecond:
		return "second"
	default:
		return "unknown"
	}
}

// Other returns the opposing player.
func (p Player) Other() Player {
	if p == PlayerFirst {
		return PlayerSecond
	}
	return PlayerFirst
}

// Context is the process-scoped state every scene shares. It is created
// once by the game and passed to each scene constructor.
type Context struct {
	Keys      *input.Keyboard
	Prompt    *input.Prompt
	Text      *i18n.Localizer
	Fleet     *gamedata.Fleet
	Rng       *rand.Rand
	Log       logr.Logger
	Tracer    trace.Tracer
	BoardSize int

	quit func()
}

// NewContext wires the shared collaborators together. quit is called when
// the player confirms leaving the game.
func NewContext(keys *input.Keyboard, text *i18n.Localizer, fleet *gamedata.Fleet, rng *rand.Rand, log logr.Logger, quit func()) *Context {
	return &Context{
		Keys:      keys,
		Prompt:    input.NewPrompt(keys),
		Text:      text,
		Fleet:     fleet,
		Rng:       rng,
		Log:       log,
		Tracer:    telemetry.Tracer("scene"),
		BoardSize: board.DefaultSize,
		quit:      quit,
	}
}

// Quit asks the game loop to stop after the current tick.
func (c *Context) Quit() {
	if c.quit != nil {
		c.quit()
	}
}

// PlayerName returns the localized display name for p.
func (c *Context) PlayerName(p Player) string {
	if p == PlayerSecond {
		return c.Text.T("player.second")
	}
	return c.Text.T("player.first")
}
