package terminal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/nsf/termbox-go"
	"github.com/rocketscienceinc/frozentoes/internal/apperror"
	"github.com/rocketscienceinc/frozentoes/internal/config"
	"github.com/rocketscienceinc/frozentoes/internal/entity"
	"github.com/rocketscienceinc/frozentoes/internal/tictactoe"
)

var ErrEventsClosed = errors.New("event source closed")

type gameController interface {
	Place(x, y int) error
	Restart()
	State() tictactoe.State
}

type Server struct {
	logger *slog.Logger
	game   gameController
	screen Screen
	layout layout

	cursorX, cursorY int

	handlers map[termbox.EventType]func(ev termbox.Event) (bool, error)
}

func New(logger *slog.Logger, game gameController, screen Screen, conf config.Window) *Server {
	server := &Server{
		logger: logger.With("component", "terminal"),
		game:   game,
		screen: screen,
		layout: newLayout(conf.CellWidth, conf.CellHeight),

		cursorX: entity.BoardSize / 2,
		cursorY: entity.BoardSize / 2,

		handlers: make(map[termbox.EventType]func(termbox.Event) (bool, error)),
	}

	server.handlers[termbox.EventKey] = server.handleKey
	server.handlers[termbox.EventMouse] = server.handleMouse
	server.handlers[termbox.EventResize] = server.handleResize
	server.handlers[termbox.EventError] = server.handleError

	return server
}

// Start - opens the terminal window and runs it until the user closes it or ctx is canceled.
func Start(ctx context.Context, logger *slog.Logger, game gameController, conf config.Window) error {
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	defer termbox.Close()

	inputMode := termbox.InputEsc
	if !conf.DisableMouse {
		inputMode |= termbox.InputMouse
	}
	termbox.SetInputMode(inputMode)

	events := make(chan termbox.Event)
	done := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		pollEvents(events, done)
	}()

	defer func() {
		close(done)
		termbox.Interrupt()
		wg.Wait()
	}()

	return New(logger, game, termboxScreen{}, conf).Run(ctx, events)
}

// pollEvents - forwards termbox events until interrupted. Once done is closed events are
// dropped, and the loop keeps polling so termbox.Interrupt always has a receiver.
func pollEvents(events chan<- termbox.Event, done <-chan struct{}) {
	defer close(events)

	for {
		ev := termbox.PollEvent()
		if ev.Type == termbox.EventInterrupt {
			return
		}

		select {
		case events <- ev:
		case <-done:
		}
	}
}

// Run - draws the first frame, then redraws after every handled event.
func (that *Server) Run(ctx context.Context, events <-chan termbox.Event) error {
	log := that.logger.With("method", "Run")

	if err := that.Render(); err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			log.Info("context canceled, closing window")
			return nil
		case ev, ok := <-events:
			if !ok {
				return ErrEventsClosed
			}

			quit, err := that.HandleEvent(ev)
			if err != nil {
				return fmt.Errorf("failed to handle event: %w", err)
			}

			if quit {
				log.Info("window closed by user")
				return nil
			}

			if err = that.Render(); err != nil {
				return fmt.Errorf("failed to render: %w", err)
			}
		}
	}
}

// HandleEvent - dispatches a single event. It reports true when the window should close.
func (that *Server) HandleEvent(ev termbox.Event) (bool, error) {
	handler, ok := that.handlers[ev.Type]
	if !ok {
		return false, nil
	}

	return handler(ev)
}

func (that *Server) handleKey(ev termbox.Event) (bool, error) {
	switch ev.Key {
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return true, nil
	case termbox.KeyArrowLeft:
		that.moveCursor(-1, 0)
	case termbox.KeyArrowRight:
		that.moveCursor(1, 0)
	case termbox.KeyArrowUp:
		that.moveCursor(0, -1)
	case termbox.KeyArrowDown:
		that.moveCursor(0, 1)
	case termbox.KeyEnter, termbox.KeySpace:
		that.place(that.cursorX, that.cursorY)
	}

	switch {
	case ev.Ch == 'q' || ev.Ch == 'Q':
		return true, nil
	case ev.Ch == 'r' || ev.Ch == 'R':
		that.restart()
	case ev.Ch >= '1' && ev.Ch <= '9':
		index := int(ev.Ch - '1')
		that.cursorX, that.cursorY = index%entity.BoardSize, index/entity.BoardSize
		that.place(that.cursorX, that.cursorY)
	}

	return false, nil
}

func (that *Server) handleMouse(ev termbox.Event) (bool, error) {
	if ev.Key != termbox.MouseLeft {
		return false, nil
	}

	if that.layout.onButton(ev.MouseX, ev.MouseY) {
		that.restart()
		return false, nil
	}

	if x, y, ok := that.layout.cellAt(ev.MouseX, ev.MouseY); ok {
		that.cursorX, that.cursorY = x, y
		that.place(x, y)
	}

	return false, nil
}

func (that *Server) handleResize(termbox.Event) (bool, error) {
	return false, nil
}

func (that *Server) handleError(ev termbox.Event) (bool, error) {
	return false, fmt.Errorf("terminal error: %w", ev.Err)
}

// place - forwards a click to the game. Rejected clicks are logged, never shown.
func (that *Server) place(x, y int) {
	log := that.logger.With("method", "place")

	if that.game.State().Winner != entity.Blank {
		log.Debug("click ignored, game has a winner", "x", x, "y", y)
		return
	}

	if err := that.game.Place(x, y); err != nil {
		switch {
		case errors.Is(err, apperror.ErrCellOccupied), errors.Is(err, apperror.ErrGameFinished):
			log.Debug("click ignored", "x", x, "y", y, "reason", err)
		default:
			log.Error("failed to place mark", "x", x, "y", y, "error", err)
		}

		return
	}

	log.Debug("mark placed", "x", x, "y", y)
}

func (that *Server) restart() {
	that.game.Restart()
	that.logger.Info("new game started")
}

func (that *Server) moveCursor(dx, dy int) {
	that.cursorX = (that.cursorX + dx + entity.BoardSize) % entity.BoardSize
	that.cursorY = (that.cursorY + dy + entity.BoardSize) % entity.BoardSize
}
