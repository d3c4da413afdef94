package scene

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/battleships/internal/board"
	"github.com/samdwyer/battleships/internal/gamedata"
	"github.com/samdwyer/battleships/internal/ui"
)

const (
	// gridLabelWidth is the space left of the first column for row numbers.
	gridLabelWidth = 3
	// cellWidth is the number of terminal columns per board cell.
	cellWidth = 2
)

// boardView describes how to draw one board.
type boardView struct {
	board  *board.Board
	fleet  *gamedata.Fleet
	reveal bool // draw ships, not just hits and misses

	cursor    *board.Coord
	preview   []board.Coord
	previewOK bool
	previewCh rune
}

// boardViewWidth returns the columns a board of the given size occupies.
func boardViewWidth(size int) int {
	return gridLabelWidth + size*cellWidth
}

// draw renders the board with its top-left label corner at (x, y). The
// grid occupies size+1 rows: a column header, then one row per board row.
func (v boardView) draw(f *ui.Frame, x, y int) {
	size := v.board.Size()

	for col := 0; col < size; col++ {
		f.Print(x+gridLabelWidth+col*cellWidth, y, strconv.Itoa(col), ui.StyleHint)
	}

	previewed := make(map[board.Coord]bool, len(v.preview))
	for _, c := range v.preview {
		previewed[c] = true
	}

	for row := 0; row < size; row++ {
		f.Print(x, y+1+row, strconv.Itoa(row), ui.StyleHint)
		for col := 0; col < size; col++ {
			c := board.Coord{Row: row, Col: col}
			r, style := v.cellLook(c)

			if previewed[c] {
				if v.previewOK {
					r, style = v.previewCh, ui.StyleLegal
				} else {
					r, style = 'x', ui.StyleIllegal
				}
			}
			if v.cursor != nil && *v.cursor == c {
				style = style.Reverse(true)
			}
			f.Set(x+gridLabelWidth+col*cellWidth, y+1+row, r, style)
		}
	}
}

// cellLook returns the rune and style for a cell outside any overlay.
func (v boardView) cellLook(c board.Coord) (rune, tcell.Style) {
	cell := v.board.Cell(c)
	switch cell {
	case board.CellHit:
		return cell.Rune(v.reveal), ui.StyleHit
	case board.CellMiss:
		return cell.Rune(v.reveal), ui.StyleMiss
	case board.CellShip:
		if !v.reveal {
			return cell.Rune(false), ui.StyleWater
		}
		if ship, ok := v.board.ShipAt(c); ok {
			return ship.Def.Symbol, v.shipStyle(ship.Def.ID)
		}
		return cell.Rune(true), ui.StyleDefault
	default:
		return cell.Rune(v.reveal), ui.StyleWater
	}
}

func (v boardView) shipStyle(id string) tcell.Style {
	if v.fleet != nil {
		if def := v.fleet.GetByID(id); def != nil {
			return ui.ShipStyle(def.TCellColor())
		}
	}
	return ui.StyleDefault
}
