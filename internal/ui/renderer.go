package ui

// Renderer handles drawing frames to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Present copies the frame to the screen buffer and flushes it.
func (r *Renderer) Present(frame *Frame) {
	for y := 0; y < frame.height; y++ {
		for x := 0; x < frame.width; x++ {
			c := frame.cells[y*frame.width+x]
			if c.cont {
				continue
			}
			r.screen.SetContent(x, y, c.main, c.combining, c.style)
		}
	}
	r.screen.Show()
}

// Reset wipes the terminal, used when control moves to a new scene.
func (r *Renderer) Reset() {
	r.screen.Clear()
	r.screen.Sync()
}
