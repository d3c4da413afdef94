package scene

import "github.com/samdwyer/battleships/internal/board"

// NewGameFlow builds the chain of scenes for one full game: player one
// places, hand-over, player two places, hand-over, battle. Each placement's
// completed board is passed forward through its continuation.
func NewGameFlow(c *Context) Scene {
	return NewPlacement(c, PlayerFirst, func(first *board.Board) Scene {
		second := NewPlacement(c, PlayerSecond, func(second *board.Board) Scene {
			return NewInBetween(c, PlayerFirst, NewBattle(c, first, second))
		})
		return NewInBetween(c, PlayerSecond, second)
	})
}
