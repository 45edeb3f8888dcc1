package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/frozentoes/internal/config"
	"github.com/rocketscienceinc/frozentoes/internal/tictactoe"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Window config.Window
	Game   *tictactoe.GameController
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,

		Window: config.Window{
			CellWidth:  7,
			CellHeight: 3,
		},
		Game: tictactoe.NewGameController(),
	}
}
