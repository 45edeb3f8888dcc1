package terminal

import (
	"github.com/mattn/go-runewidth"
	"github.com/rocketscienceinc/frozentoes/internal/entity"
)

const (
	title       = "Frozen Toes"
	resetLabel  = "[ Start a new game ]"
	helpLine    = "click or arrows+enter to place, 1-9 for a cell, r to restart, q to quit"
	marginLeft  = 2
	titleRow    = 0
	statusRow   = 1
	gridTopRow  = 3
	minCellSide = 1
)

// layout maps board cells and the reset button to screen coordinates.
type layout struct {
	cellWidth  int
	cellHeight int
}

func newLayout(cellWidth, cellHeight int) layout {
	return layout{
		cellWidth:  max(cellWidth, minCellSide),
		cellHeight: max(cellHeight, minCellSide),
	}
}

// gridWidth includes the outer borders.
func (that layout) gridWidth() int {
	return entity.BoardSize*(that.cellWidth+1) + 1
}

func (that layout) gridHeight() int {
	return entity.BoardSize*(that.cellHeight+1) + 1
}

// cellOrigin returns the top-left screen position of the inside of cell (x, y).
func (that layout) cellOrigin(x, y int) (int, int) {
	return marginLeft + 1 + x*(that.cellWidth+1), gridTopRow + 1 + y*(that.cellHeight+1)
}

// cellAt returns the board cell under the screen position, if any. Borders belong to no cell.
func (that layout) cellAt(screenX, screenY int) (int, int, bool) {
	relX := screenX - marginLeft - 1
	relY := screenY - gridTopRow - 1
	if relX < 0 || relY < 0 {
		return 0, 0, false
	}

	x, innerX := relX/(that.cellWidth+1), relX%(that.cellWidth+1)
	y, innerY := relY/(that.cellHeight+1), relY%(that.cellHeight+1)
	if innerX == that.cellWidth || innerY == that.cellHeight {
		return 0, 0, false
	}

	if x >= entity.BoardSize || y >= entity.BoardSize {
		return 0, 0, false
	}

	return x, y, true
}

func (that layout) buttonRow() int {
	return gridTopRow + that.gridHeight() + 1
}

func (that layout) helpRow() int {
	return that.buttonRow() + 2
}

func (that layout) onButton(screenX, screenY int) bool {
	return screenY == that.buttonRow() &&
		screenX >= marginLeft && screenX < marginLeft+runewidth.StringWidth(resetLabel)
}
