package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/frozentoes/internal/config"
	"github.com/rocketscienceinc/frozentoes/internal/tictactoe"
	"github.com/rocketscienceinc/frozentoes/transport/terminal"
)

// RunApp - runs the application until the window is closed or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameController := tictactoe.NewGameController()

	log.Info("Opening game window")
	if err := terminal.Start(ctx, logger, gameController, conf.Window); err != nil {
		return fmt.Errorf("terminal window error: %w", err)
	}

	log.Info("Game window closed")

	return nil
}
