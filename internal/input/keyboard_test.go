package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionUp, "up"},
		{ActionConfirm, "confirm"},
		{ActionRotate, "rotate"},
		{Action(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("Action(%d).String() = %q, want %q", tt.action, got, tt.expected)
		}
	}
}

func TestKeyboardEdgeTriggered(t *testing.T) {
	kb := NewKeyboard(nil)

	kb.HandleKey(tcell.KeyUp, 0)

	if !kb.Pressed(ActionUp) {
		t.Fatal("Pressed(up) should be true after key-down")
	}
	if kb.Pressed(ActionUp) {
		t.Error("Pressed(up) should be false once consumed")
	}
}

func TestKeyboardPressSurvivesUntilRead(t *testing.T) {
	kb := NewKeyboard(nil)
	kb.HandleKey(tcell.KeyEnter, 0)

	// Other actions being polled must not consume confirm.
	for i := 0; i < 5; i++ {
		kb.Pressed(ActionUp)
		kb.Pressed(ActionDown)
	}

	if !kb.Pressed(ActionConfirm) {
		t.Error("Pressed(confirm) should still be set until read")
	}
}

func TestKeyboardRepeatedPressCollapses(t *testing.T) {
	kb := NewKeyboard(nil)
	kb.HandleKey(tcell.KeyRight, 0)
	kb.HandleKey(tcell.KeyRight, 0)

	if !kb.Pressed(ActionRight) {
		t.Fatal("Pressed(right) should be true")
	}
	if kb.Pressed(ActionRight) {
		t.Error("two presses before a read should be consumed once")
	}
}

func TestKeyboardMapping(t *testing.T) {
	tests := []struct {
		key    tcell.Key
		r      rune
		action Action
	}{
		{tcell.KeyUp, 0, ActionUp},
		{tcell.KeyDown, 0, ActionDown},
		{tcell.KeyLeft, 0, ActionLeft},
		{tcell.KeyRight, 0, ActionRight},
		{tcell.KeyEnter, 0, ActionConfirm},
		{tcell.KeyRune, 'r', ActionRotate},
		{tcell.KeyRune, 'R', ActionRotate},
		{tcell.KeyRune, 'a', ActionAuto},
		{tcell.KeyRune, 't', ActionType},
	}

	for _, tt := range tests {
		kb := NewKeyboard(nil)
		kb.HandleKey(tt.key, tt.r)
		if !kb.Pressed(tt.action) {
			t.Errorf("key %v rune %q should press %v", tt.key, tt.r, tt.action)
		}
	}
}

func TestKeyboardCancel(t *testing.T) {
	for _, key := range []tcell.Key{tcell.KeyEscape, tcell.KeyCtrlC} {
		cancelled := 0
		kb := NewKeyboard(func() { cancelled++ })

		kb.HandleKey(key, 0)
		kb.SetTextMode(true)
		kb.HandleKey(key, 0)

		if cancelled != 2 {
			t.Errorf("key %v: cancel called %d times, want 2", key, cancelled)
		}
	}
}

func TestKeyboardTextMode(t *testing.T) {
	kb := NewKeyboard(nil)
	kb.SetTextMode(true)

	for _, r := range "3,45" {
		kb.HandleKey(tcell.KeyRune, r)
	}
	kb.HandleKey(tcell.KeyBackspace2, 0)
	kb.HandleKey(tcell.KeyUp, 0)

	if got := kb.Typed(); got != "3,4" {
		t.Errorf("Typed() = %q, want %q", got, "3,4")
	}
	if kb.Pressed(ActionUp) {
		t.Error("action keys should not register in text mode")
	}

	kb.HandleKey(tcell.KeyEnter, 0)

	select {
	case line := <-kb.Lines():
		if line != "3,4" {
			t.Errorf("line = %q, want %q", line, "3,4")
		}
	default:
		t.Fatal("Enter should queue the line")
	}
	if got := kb.Typed(); got != "" {
		t.Errorf("Typed() after Enter = %q, want empty", got)
	}
	if kb.Pressed(ActionConfirm) {
		t.Error("Enter in text mode should not press confirm")
	}
}

func TestKeyboardSetTextModeClearsPresses(t *testing.T) {
	kb := NewKeyboard(nil)
	kb.HandleKey(tcell.KeyEnter, 0)

	kb.SetTextMode(true)
	kb.SetTextMode(false)

	if kb.Pressed(ActionConfirm) {
		t.Error("switching modes should drop stale presses")
	}
}
