package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Frame is an in-memory grid of styled text that scenes draw into each tick.
// It is presented to the terminal by a Renderer and can be read back as
// plain text.
type Frame struct {
	width, height int
	cells         []frameCell
}

type frameCell struct {
	main      rune
	combining []rune
	style     tcell.Style
	cont      bool // right half of a wide grapheme
}

// NewFrame creates a blank frame.
func NewFrame(width, height int) *Frame {
	f := &Frame{}
	f.Resize(width, height)
	return f
}

// Size returns the frame dimensions.
func (f *Frame) Size() (width, height int) {
	return f.width, f.height
}

// Resize changes the frame dimensions and clears it.
func (f *Frame) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width != f.width || height != f.height {
		f.width, f.height = width, height
		f.cells = make([]frameCell, width*height)
	}
	f.Clear()
}

// Clear blanks every cell.
func (f *Frame) Clear() {
	for i := range f.cells {
		f.cells[i] = frameCell{main: ' ', style: StyleDefault}
	}
}

// Set writes a single rune. Positions outside the frame are ignored.
func (f *Frame) Set(x, y int, r rune, style tcell.Style) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.cells[y*f.width+x] = frameCell{main: r, style: style}
}

// Print writes text starting at (x, y), one grapheme cluster per cell (two
// for wide clusters), clipping at the right edge. It returns the column
// after the last cell written.
func (f *Frame) Print(x, y int, text string, style tcell.Style) int {
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		w := g.Width()
		if w == 0 {
			continue
		}
		if x >= 0 && x+w <= f.width && y >= 0 && y < f.height {
			cell := frameCell{main: runes[0], style: style}
			if len(runes) > 1 {
				cell.combining = append([]rune(nil), runes[1:]...)
			}
			f.cells[y*f.width+x] = cell
			for i := 1; i < w; i++ {
				f.cells[y*f.width+x+i] = frameCell{cont: true, style: style}
			}
		}
		x += w
	}
	return x
}

// PrintCentered writes text horizontally centred on row y.
func (f *Frame) PrintCentered(y int, text string, style tcell.Style) {
	x := (f.width - uniseg.StringWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	f.Print(x, y, text, style)
}

// Line returns row y as plain text with trailing spaces removed.
func (f *Frame) Line(y int) string {
	if y < 0 || y >= f.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < f.width; x++ {
		c := f.cells[y*f.width+x]
		if c.cont {
			continue
		}
		sb.WriteRune(c.main)
		for _, r := range c.combining {
			sb.WriteRune(r)
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

// String returns the whole frame as plain text, one line per row, with
// trailing blank lines removed.
func (f *Frame) String() string {
	lines := make([]string, f.height)
	for y := range lines {
		lines[y] = f.Line(y)
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// StyleAt returns the style of the cell at (x, y).
func (f *Frame) StyleAt(x, y int) tcell.Style {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return StyleDefault
	}
	return f.cells[y*f.width+x].style
}
