package entity

import (
	"errors"
	"fmt"
)

// BoardSize is the length of a board side.
const BoardSize = 3

// Field is the value of a single cell on the board.
type Field int

const (
	Blank Field = iota
	Cross
	Circle
)

var ErrCellOutOfRange = errors.New("cell index out of range")

// winnerOrder is the tie-break order used when both players own a line.
var winnerOrder = [2]Field{Circle, Cross}

// Flipped returns the player who moves after that one.
func (that Field) Flipped() Field {
	if that == Cross {
		return Circle
	}
	return Cross
}

// Symbol returns the character used to draw the field.
func (that Field) Symbol() rune {
	switch that {
	case Cross:
		return 'X'
	case Circle:
		return 'O'
	default:
		return ' '
	}
}

func (that Field) String() string {
	switch that {
	case Cross:
		return "Cross"
	case Circle:
		return "Circle"
	default:
		return "Blank"
	}
}

// Board is a tic-tac-toe grid addressed by column x and row y.
type Board struct {
	cells [BoardSize][BoardSize]Field
}

// NewBoard - constructs a blank board.
func NewBoard() Board {
	return Board{}
}

// Get - returns the field at column x, row y. It panics when the cell is outside the board.
func (that *Board) Get(x, y int) Field {
	mustBeOnBoard(x, y)

	return that.cells[y][x]
}

// Set - overwrites the field at column x, row y. It panics when the cell is outside the board.
func (that *Board) Set(x, y int, value Field) {
	mustBeOnBoard(x, y)

	that.cells[y][x] = value
}

// Row - returns a copy of row i, left to right.
func (that *Board) Row(i int) [BoardSize]Field {
	var row [BoardSize]Field
	for x := range row {
		row[x] = that.Get(x, i)
	}

	return row
}

// Column - returns a copy of column i, top to bottom.
func (that *Board) Column(i int) [BoardSize]Field {
	var column [BoardSize]Field
	for y := range column {
		column[y] = that.Get(i, y)
	}

	return column
}

// Reset - sets every cell back to Blank.
func (that *Board) Reset() {
	that.cells = [BoardSize][BoardSize]Field{}
}

// Winner - returns the player owning a full row, column or diagonal, or Blank.
// Circle is checked before Cross, so Circle wins if both own a line.
func (that *Board) Winner() Field {
	for _, winner := range winnerOrder {
		for i := 0; i < BoardSize; i++ {
			if allOf(that.Row(i), winner) {
				return winner
			}
		}

		for i := 0; i < BoardSize; i++ {
			if allOf(that.Column(i), winner) {
				return winner
			}
		}

		var diagonal, antiDiagonal [BoardSize]Field
		for i := 0; i < BoardSize; i++ {
			diagonal[i] = that.Get(i, i)
			antiDiagonal[i] = that.Get(BoardSize-1-i, i)
		}

		if allOf(diagonal, winner) || allOf(antiDiagonal, winner) {
			return winner
		}
	}

	return Blank
}

func allOf(line [BoardSize]Field, value Field) bool {
	for _, field := range line {
		if field != value {
			return false
		}
	}

	return true
}

func mustBeOnBoard(x, y int) {
	if x < 0 || x >= BoardSize || y < 0 || y >= BoardSize {
		panic(fmt.Errorf("%w: (%d, %d)", ErrCellOutOfRange, x, y))
	}
}
