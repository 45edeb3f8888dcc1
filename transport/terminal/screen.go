package terminal

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
)

// Screen is the drawing surface a frame is rendered into.
type Screen interface {
	Clear(fg, bg termbox.Attribute) error
	SetCell(x, y int, ch rune, fg, bg termbox.Attribute)
	Flush() error
}

// termboxScreen draws straight into the termbox back buffer.
type termboxScreen struct{}

func (termboxScreen) Clear(fg, bg termbox.Attribute) error {
	if err := termbox.Clear(fg, bg); err != nil {
		return fmt.Errorf("failed to clear screen: %w", err)
	}

	return nil
}

func (termboxScreen) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	termbox.SetCell(x, y, ch, fg, bg)
}

func (termboxScreen) Flush() error {
	if err := termbox.Flush(); err != nil {
		return fmt.Errorf("failed to flush screen: %w", err)
	}

	return nil
}

// drawText writes text starting at (x, y) and returns the column after it.
func drawText(screen Screen, x, y int, text string, fg, bg termbox.Attribute) int {
	for _, ch := range text {
		screen.SetCell(x, y, ch, fg, bg)
		x += runewidth.RuneWidth(ch)
	}

	return x
}

// drawCentered writes text centred in the span [left, left+width).
func drawCentered(screen Screen, left, width, y int, text string, fg, bg termbox.Attribute) {
	offset := (width - runewidth.StringWidth(text)) / 2
	if offset < 0 {
		offset = 0
	}

	drawText(screen, left+offset, y, text, fg, bg)
}
