package terminal

import (
	"fmt"

	"github.com/nsf/termbox-go"
	"github.com/rocketscienceinc/frozentoes/internal/entity"
	"github.com/rocketscienceinc/frozentoes/internal/tictactoe"
)

const (
	colorDefault = termbox.ColorDefault
	colorWinner  = termbox.ColorGreen | termbox.AttrBold
	colorCross   = termbox.ColorRed | termbox.AttrBold
	colorCircle  = termbox.ColorBlue | termbox.AttrBold
	colorBorder  = termbox.ColorWhite
	colorCursor  = termbox.AttrReverse
)

// Render - rebuilds the whole frame from the current game state.
func (that *Server) Render() error {
	state := that.game.State()

	if err := that.screen.Clear(colorDefault, colorDefault); err != nil {
		return fmt.Errorf("failed to render frame: %w", err)
	}

	drawText(that.screen, marginLeft, titleRow, title, termbox.AttrBold, colorDefault)

	statusColor := colorDefault
	if state.Winner != entity.Blank {
		statusColor = colorWinner
	}
	drawText(that.screen, marginLeft, statusRow, state.Status, statusColor, colorDefault)

	that.drawGrid()
	that.drawCells(state)

	drawText(that.screen, marginLeft, that.layout.buttonRow(), resetLabel, termbox.AttrBold, colorDefault)
	drawText(that.screen, marginLeft, that.layout.helpRow(), helpLine, colorDefault, colorDefault)

	if err := that.screen.Flush(); err != nil {
		return fmt.Errorf("failed to render frame: %w", err)
	}

	return nil
}

func (that *Server) drawGrid() {
	width, height := that.layout.gridWidth(), that.layout.gridHeight()

	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			onColumn := dx%(that.layout.cellWidth+1) == 0
			onRow := dy%(that.layout.cellHeight+1) == 0

			var ch rune
			switch {
			case onColumn && onRow:
				ch = '+'
			case onRow:
				ch = '-'
			case onColumn:
				ch = '|'
			default:
				continue
			}

			that.screen.SetCell(marginLeft+dx, gridTopRow+dy, ch, colorBorder, colorDefault)
		}
	}
}

func (that *Server) drawCells(state tictactoe.State) {
	for y := 0; y < entity.BoardSize; y++ {
		for x := 0; x < entity.BoardSize; x++ {
			bg := colorDefault
			if !state.Finished() && x == that.cursorX && y == that.cursorY {
				bg = colorCursor
			}

			left, top := that.layout.cellOrigin(x, y)
			for dy := 0; dy < that.layout.cellHeight; dy++ {
				for dx := 0; dx < that.layout.cellWidth; dx++ {
					that.screen.SetCell(left+dx, top+dy, ' ', colorDefault, bg)
				}
			}

			symbol := state.Cells[y][x]
			drawCentered(that.screen, left, that.layout.cellWidth, top+that.layout.cellHeight/2, string(symbol), symbolColor(symbol), bg)
		}
	}
}

func symbolColor(symbol rune) termbox.Attribute {
	switch symbol {
	case entity.Cross.Symbol():
		return colorCross
	case entity.Circle.Symbol():
		return colorCircle
	default:
		return colorDefault
	}
}
