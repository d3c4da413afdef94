// Package input turns terminal key events into edge-triggered player intents.
package input

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Action is a logical player intent.
type Action int

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionRotate
	ActionConfirm
	ActionAuto
	ActionType
	actionCount
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionRotate:
		return "rotate"
	case ActionConfirm:
		return "confirm"
	case ActionAuto:
		return "auto"
	case ActionType:
		return "type"
	default:
		return "unknown"
	}
}

// maxLineLength caps the text-entry buffer.
const maxLineLength = 64

// Keyboard records key presses from the event goroutine and hands them to the
// game loop. Each action flag is set by a key-down and cleared when read, so
// a press is seen once no matter how many ticks pass before it is polled.
// Presses that arrive before the flag is read collapse into one.
//
// In text mode, printable keys edit a line buffer instead and Enter queues
// the finished line on Lines.
type Keyboard struct {
	mu       sync.Mutex
	pressed  [actionCount]bool
	textMode bool
	line     []rune
	lines    chan string
	onCancel func()
}

// NewKeyboard creates a keyboard. onCancel is called when the cancel key
// (Escape or Ctrl-C) is pressed, in any mode.
func NewKeyboard(onCancel func()) *Keyboard {
	return &Keyboard{
		lines:    make(chan string, 1),
		onCancel: onCancel,
	}
}

// HandleEvent processes a terminal key event.
func (k *Keyboard) HandleEvent(ev *tcell.EventKey) {
	k.HandleKey(ev.Key(), ev.Rune())
}

// HandleKey processes a key code and, for tcell.KeyRune, its character.
func (k *Keyboard) HandleKey(key tcell.Key, r rune) {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		if k.onCancel != nil {
			k.onCancel()
		}
		return
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	if k.textMode {
		k.handleTextKey(key, r)
		return
	}

	switch key {
	case tcell.KeyUp:
		k.pressed[ActionUp] = true
	case tcell.KeyDown:
		k.pressed[ActionDown] = true
	case tcell.KeyLeft:
		k.pressed[ActionLeft] = true
	case tcell.KeyRight:
		k.pressed[ActionRight] = true
	case tcell.KeyEnter:
		k.pressed[ActionConfirm] = true
	case tcell.KeyRune:
		switch r {
		case 'r', 'R':
			k.pressed[ActionRotate] = true
		case 'a', 'A':
			k.pressed[ActionAuto] = true
		case 't', 'T':
			k.pressed[ActionType] = true
		}
	}
}

// handleTextKey edits the line buffer. Caller holds mu.
func (k *Keyboard) handleTextKey(key tcell.Key, r rune) {
	switch key {
	case tcell.KeyRune:
		if len(k.line) < maxLineLength {
			k.line = append(k.line, r)
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(k.line) > 0 {
			k.line = k.line[:len(k.line)-1]
		}
	case tcell.KeyEnter:
		select {
		case k.lines <- string(k.line):
			k.line = k.line[:0]
		default:
			// A line is already waiting to be consumed.
		}
	}
}

// Pressed reports whether the action was pressed since it was last read,
// and clears it.
func (k *Keyboard) Pressed(a Action) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	if a < 0 || a >= actionCount {
		return false
	}
	v := k.pressed[a]
	k.pressed[a] = false
	return v
}

// Clear drops every pending press.
func (k *Keyboard) Clear() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.pressed = [actionCount]bool{}
}

// SetTextMode switches between action keys and line entry. Either way the
// line buffer starts empty.
func (k *Keyboard) SetTextMode(on bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.textMode = on
	k.line = k.line[:0]
	k.pressed = [actionCount]bool{}
}

// TextMode reports whether line entry is active.
func (k *Keyboard) TextMode() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.textMode
}

// Typed returns the line being edited.
func (k *Keyboard) Typed() string {
	k.mu.Lock()
	defer k.mu.Unlock()
	return string(k.line)
}

// Lines delivers completed lines entered in text mode.
func (k *Keyboard) Lines() <-chan string {
	return k.lines
}
