package scene

import (
	"context"
	"strings"
	"time"

	"github.com/samdwyer/battleships/internal/input"
	"github.com/samdwyer/battleships/internal/ui"
)

type menuItem struct {
	key    string // translation key of the label
	action func(ctx context.Context)
}

// Menu is the main menu: start a game or leave.
type Menu struct {
	transition
	ctx      *Context
	items    []menuItem
	selected int
}

// NewMenu creates the main menu.
func NewMenu(c *Context) *Menu {
	m := &Menu{ctx: c}
	m.items = []menuItem{
		{key: "menu.start", action: m.startGame},
		{key: "menu.exit", action: m.confirmExit},
	}
	return m
}

// Name implements Scene.
func (m *Menu) Name() string { return "menu" }

// Selected returns the index of the highlighted item.
func (m *Menu) Selected() int { return m.selected }

// Update implements Scene.
func (m *Menu) Update(ctx context.Context, _ time.Duration) {
	keys := m.ctx.Keys
	if keys.Pressed(input.ActionUp) && m.selected > 0 {
		m.selected--
	}
	if keys.Pressed(input.ActionDown) && m.selected < len(m.items)-1 {
		m.selected++
	}
	if keys.Pressed(input.ActionConfirm) {
		m.items[m.selected].action(ctx)
	}
}

func (m *Menu) startGame(context.Context) {
	m.goTo(NewGameFlow(m.ctx))
}

// confirmExit asks for a typed yes before quitting. Any other answer leaves
// the menu as it was.
func (m *Menu) confirmExit(context.Context) {
	err := m.ctx.Prompt.Request(m.ctx.Text.T("menu.confirmExit"), func(_ context.Context, line string) error {
		if m.isYes(line) {
			m.ctx.Log.Info("Exit confirmed")
			m.ctx.Quit()
		}
		return nil
	})
	if err != nil {
		m.ctx.Log.Error(err, "Exit confirmation not opened")
	}
}

func (m *Menu) isYes(line string) bool {
	answer := strings.ToLower(strings.TrimSpace(line))
	switch answer {
	case "y", "yes", strings.ToLower(m.ctx.Text.T("menu.yes")):
		return true
	}
	return false
}

// Draw implements Scene.
func (m *Menu) Draw(_ time.Duration, f *ui.Frame) {
	_, h := f.Size()
	top := h/2 - 4
	if top < 0 {
		top = 0
	}

	f.PrintCentered(top, m.ctx.Text.T("title"), ui.StyleTitle)
	f.PrintCentered(top+1, m.ctx.Text.T("menu.title"), ui.StyleDefault)

	for i, item := range m.items {
		label := "  " + m.ctx.Text.T(item.key) + "  "
		style := ui.StyleDefault
		if i == m.selected {
			label = "> " + m.ctx.Text.T(item.key) + " <"
			style = ui.StyleCursor
		}
		f.PrintCentered(top+3+i, label, style)
	}

	f.PrintCentered(top+4+len(m.items), m.ctx.Text.T("menu.hint"), ui.StyleHint)
}
