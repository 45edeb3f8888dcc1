package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/frozentoes/internal/apperror"
	"github.com/rocketscienceinc/frozentoes/internal/entity"
)

// FirstPlayer moves first in every game.
const FirstPlayer = entity.Cross

// State is a snapshot of the game used to draw one frame.
type State struct {
	Cells  [entity.BoardSize][entity.BoardSize]rune
	Player entity.Field
	Winner entity.Field
	Draw   bool
	Status string
}

// Finished reports whether no more moves are accepted.
func (that State) Finished() bool {
	return that.Winner != entity.Blank || that.Draw
}

// GameController applies player input to the board and tracks whose turn it is.
type GameController struct {
	board  entity.Board
	player entity.Field
}

func NewGameController() *GameController {
	return &GameController{
		board:  entity.NewBoard(),
		player: FirstPlayer,
	}
}

// Place - puts the active player's mark on column x, row y and passes the turn.
func (that *GameController) Place(x, y int) error {
	if err := that.validateMove(x, y); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.board.Set(x, y, that.player)
	that.player = that.player.Flipped()

	return nil
}

// Restart - clears the board and gives the first move back to FirstPlayer.
func (that *GameController) Restart() {
	that.board.Reset()
	that.player = FirstPlayer
}

// Player returns the player whose turn it is.
func (that *GameController) Player() entity.Field {
	return that.player
}

// Board returns a copy of the board.
func (that *GameController) Board() entity.Board {
	return that.board
}

// State - builds the render snapshot. Winner is evaluated once per call.
func (that *GameController) State() State {
	state := State{
		Player: that.player,
		Winner: that.board.Winner(),
	}

	for y := 0; y < entity.BoardSize; y++ {
		for x := 0; x < entity.BoardSize; x++ {
			state.Cells[y][x] = that.board.Get(x, y).Symbol()
		}
	}

	state.Draw = state.Winner == entity.Blank && isFull(&that.board)
	state.Status = statusLine(state)

	return state
}

// validateMove - checks if the move is valid.
func (that *GameController) validateMove(x, y int) error {
	if x < 0 || x >= entity.BoardSize || y < 0 || y >= entity.BoardSize {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCell, x, y)
	}

	if that.board.Winner() != entity.Blank {
		return apperror.ErrGameFinished
	}

	if that.board.Get(x, y) != entity.Blank {
		return apperror.ErrCellOccupied
	}

	return nil
}

func isFull(board *entity.Board) bool {
	for y := 0; y < entity.BoardSize; y++ {
		for x := 0; x < entity.BoardSize; x++ {
			if board.Get(x, y) == entity.Blank {
				return false
			}
		}
	}

	return true
}

func statusLine(state State) string {
	switch {
	case state.Winner != entity.Blank:
		return fmt.Sprintf("%s won!", state.Winner)
	case state.Draw:
		return "It's a draw"
	default:
		return fmt.Sprintf("It's %s's turn", state.Player)
	}
}
