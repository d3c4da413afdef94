package scene

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/samdwyer/battleships/internal/board"
)

// ErrGameOver is returned when firing after a winner has been decided.
var ErrGameOver = errors.New("game is over")

// Session is one battle between two fully placed boards.
type Session struct {
	ID      string
	boards  [2]*board.Board
	current Player
	turns   int
	over    bool
	winner  Player
}

// NewSession starts a battle with the first player to move.
func NewSession(first, second *board.Board) *Session {
	return &Session{
		ID:      uuid.NewString(),
		boards:  [2]*board.Board{first, second},
		current: PlayerFirst,
	}
}

// Current returns the player whose turn it is.
func (s *Session) Current() Player { return s.current }

// Board returns p's own board.
func (s *Session) Board(p Player) *board.Board { return s.boards[p] }

// Own returns the current player's board.
func (s *Session) Own() *board.Board { return s.boards[s.current] }

// Opponent returns the board the current player is firing at.
func (s *Session) Opponent() *board.Board { return s.boards[s.current.Other()] }

// Remaining returns how many of p's ships are still afloat.
func (s *Session) Remaining(p Player) int { return s.boards[p].RemainingShips() }

// Turns returns the number of shots that consumed a turn.
func (s *Session) Turns() int { return s.turns }

// Over reports whether a winner has been decided.
func (s *Session) Over() bool { return s.over }

// Winner returns the winning player; only meaningful once Over is true.
func (s *Session) Winner() Player { return s.winner }

// Fire resolves the current player's shot at target on the opponent board.
// A hit or miss passes the turn; a repeat shot does not. Sinking the last
// ship ends the game with the shooter as winner and the turn unchanged.
func (s *Session) Fire(target board.Coord) (board.Shot, error) {
	if s.over {
		return board.Shot{}, ErrGameOver
	}

	shot, err := s.Opponent().Attack(target)
	if err != nil {
		return shot, fmt.Errorf("player %s: %w", s.current, err)
	}
	if shot.Result == board.AlreadyAttacked {
		return shot, nil
	}

	s.turns++
	if !s.Opponent().HasRemainingShips() {
		s.over = true
		s.winner = s.current
		return shot, nil
	}
	s.current = s.current.Other()
	return shot, nil
}
