// Package scene provides the interactive units the game loop drives: splash,
// menu, ship placement, hand-over and battle.
package scene

import (
	"context"
	"time"

	"github.com/samdwyer/battleships/internal/ui"
)

// Scene is one unit of interaction. The driver calls Update then Draw every
// tick, then TakeTransition; a scene hands control over only by raising a
// transition.
type Scene interface {
	// Name identifies the scene in logs and traces.
	Name() string
	// Update advances the scene by dt, reading input and mutating its state.
	Update(ctx context.Context, dt time.Duration)
	// Draw renders the current state into f.
	Draw(dt time.Duration, f *ui.Frame)
	// TakeTransition returns the scene to install next, if one was raised,
	// and clears the marker.
	TakeTransition() (Scene, bool)
}

// transition is embedded by scenes to implement TakeTransition.
type transition struct {
	next   Scene
	raised bool
}

// goTo raises the transition marker.
func (t *transition) goTo(next Scene) {
	t.next = next
	t.raised = true
}

// TakeTransition returns the pending next scene and clears the marker.
func (t *transition) TakeTransition() (Scene, bool) {
	if !t.raised {
		return nil, false
	}
	next := t.next
	t.next = nil
	t.raised = false
	return next, true
}
