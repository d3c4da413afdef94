package ui

import "github.com/gdamore/tcell/v2"

// Palette shared by every scene.
var (
	StyleDefault = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	StyleTitle   = StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	StyleHint    = StyleDefault.Foreground(tcell.ColorGray)
	StyleWater   = StyleDefault.Foreground(tcell.ColorSteelBlue)
	StyleHit     = StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	StyleMiss    = StyleDefault.Foreground(tcell.ColorDarkGray)
	StyleCursor  = StyleDefault.Reverse(true)
	StyleAlert   = StyleDefault.Foreground(tcell.ColorOrangeRed)
	StyleLegal   = StyleDefault.Background(tcell.ColorDarkGreen).Foreground(tcell.ColorWhite)
	StyleIllegal = StyleDefault.Background(tcell.ColorDarkRed).Foreground(tcell.ColorWhite)
)

// ShipStyle returns the style for a revealed ship cell of the given color.
func ShipStyle(color tcell.Color) tcell.Style {
	return StyleDefault.Foreground(color).Bold(true)
}
