package entity

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(board *Board, value Field, cells ...[2]int) {
	for _, cell := range cells {
		board.Set(cell[0], cell[1], value)
	}
}

func TestField(t *testing.T) {
	t.Run("Blank is the zero value", func(t *testing.T) {
		var field Field

		assert.Equal(t, Blank, field)
	})

	t.Run("Flipped alternates players", func(t *testing.T) {
		assert.Equal(t, Circle, Cross.Flipped())
		assert.Equal(t, Cross, Circle.Flipped())
		assert.Equal(t, Cross, Blank.Flipped())
	})

	t.Run("Symbol and String", func(t *testing.T) {
		assert.Equal(t, 'X', Cross.Symbol())
		assert.Equal(t, 'O', Circle.Symbol())
		assert.Equal(t, ' ', Blank.Symbol())

		assert.Equal(t, "Cross", Cross.String())
		assert.Equal(t, "Circle", Circle.String())
		assert.Equal(t, "Blank", Blank.String())
	})
}

func TestBoard_GetSet(t *testing.T) {
	t.Run("New board is blank", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// Then: every cell should be Blank
		for y := 0; y < BoardSize; y++ {
			for x := 0; x < BoardSize; x++ {
				assert.Equal(t, Blank, board.Get(x, y))
			}
		}
	})

	t.Run("Set changes only the target cell", func(t *testing.T) {
		for y := 0; y < BoardSize; y++ {
			for x := 0; x < BoardSize; x++ {
				// Given: a new board
				board := NewBoard()

				// When: one cell is set
				board.Set(x, y, Circle)

				// Then: only that cell should hold the value
				for cy := 0; cy < BoardSize; cy++ {
					for cx := 0; cx < BoardSize; cx++ {
						expected := Blank
						if cx == x && cy == y {
							expected = Circle
						}
						require.Equal(t, expected, board.Get(cx, cy), "cell (%d, %d) after set (%d, %d)", cx, cy, x, y)
					}
				}
			}
		}
	})

	t.Run("Out of range indices panic", func(t *testing.T) {
		board := NewBoard()

		for _, cell := range [][2]int{{-1, 0}, {0, -1}, {BoardSize, 0}, {0, BoardSize}, {7, 7}} {
			assert.PanicsWithError(t, fmt.Sprintf("cell index out of range: (%d, %d)", cell[0], cell[1]), func() {
				board.Get(cell[0], cell[1])
			})
			assert.Panics(t, func() {
				board.Set(cell[0], cell[1], Cross)
			})
		}
	})
}

func TestBoard_RowColumn(t *testing.T) {
	// Given: a board with distinct values in row 0 and column 2
	board := NewBoard()
	board.Set(0, 0, Cross)
	board.Set(1, 0, Circle)
	board.Set(2, 1, Cross)
	board.Set(2, 2, Circle)

	for i := 0; i < BoardSize; i++ {
		// Then: rows and columns are copies of the expected cells
		assert.Equal(t, [BoardSize]Field{board.Get(0, i), board.Get(1, i), board.Get(2, i)}, board.Row(i))
		assert.Equal(t, [BoardSize]Field{board.Get(i, 0), board.Get(i, 1), board.Get(i, 2)}, board.Column(i))
	}

	assert.Equal(t, [BoardSize]Field{Cross, Circle, Blank}, board.Row(0))
	assert.Equal(t, [BoardSize]Field{Blank, Cross, Circle}, board.Column(2))

	// When: the returned row is modified
	row := board.Row(0)
	row[0] = Circle

	// Then: the board is unchanged
	assert.Equal(t, Cross, board.Get(0, 0))
}

func TestBoard_Reset(t *testing.T) {
	// Given: a full board
	board := NewBoard()
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			board.Set(x, y, Cross)
		}
	}

	// When: the board is reset
	board.Reset()

	// Then: it equals a new board
	assert.Equal(t, NewBoard(), board)
	assert.Equal(t, Blank, board.Winner())
}

func TestBoard_Winner(t *testing.T) {
	t.Run("Blank board has no winner", func(t *testing.T) {
		board := NewBoard()

		assert.Equal(t, Blank, board.Winner())
	})

	t.Run("Cross wins top row", func(t *testing.T) {
		board := NewBoard()
		fill(&board, Cross, [2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0})

		assert.Equal(t, Cross, board.Winner())
	})

	t.Run("Circle wins a column", func(t *testing.T) {
		board := NewBoard()
		fill(&board, Circle, [2]int{1, 0}, [2]int{1, 1}, [2]int{1, 2})

		assert.Equal(t, Circle, board.Winner())
	})

	t.Run("Circle wins main diagonal", func(t *testing.T) {
		board := NewBoard()
		fill(&board, Circle, [2]int{0, 0}, [2]int{1, 1}, [2]int{2, 2})

		assert.Equal(t, Circle, board.Winner())
	})

	t.Run("Cross wins anti-diagonal", func(t *testing.T) {
		board := NewBoard()
		fill(&board, Cross, [2]int{2, 0}, [2]int{1, 1}, [2]int{0, 2})

		assert.Equal(t, Cross, board.Winner())
	})

	t.Run("Circle wins when both players own a line", func(t *testing.T) {
		// Given: Cross owns the top row and Circle the bottom row
		board := NewBoard()
		fill(&board, Cross, [2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0})
		fill(&board, Circle, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2})

		// Then: Circle is reported
		assert.Equal(t, Circle, board.Winner())
	})

	t.Run("Full board without a line has no winner", func(t *testing.T) {
		// Given:
		//  X O X
		//  X O O
		//  O X X
		board := NewBoard()
		fill(&board, Cross, [2]int{0, 0}, [2]int{2, 0}, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 2})
		fill(&board, Circle, [2]int{1, 0}, [2]int{1, 1}, [2]int{2, 1}, [2]int{0, 2})

		assert.Equal(t, Blank, board.Winner())
	})

	t.Run("Two in a row is not a win", func(t *testing.T) {
		board := NewBoard()
		fill(&board, Cross, [2]int{0, 0}, [2]int{1, 0})
		board.Set(2, 0, Circle)

		assert.Equal(t, Blank, board.Winner())
	})
}
