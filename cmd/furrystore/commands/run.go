package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	backendtcell "github.com/odvcencio/furry-store/backend/tcell"
	"github.com/odvcencio/furry-store/internal/config"
	"github.com/odvcencio/furry-store/internal/counterapp"
	"github.com/odvcencio/furry-store/store"
)

func runCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the interactive counter",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closeLog, err := openLogger(cfg.LogFile)
			if err != nil {
				return err
			}
			defer closeLog()

			be, err := backendtcell.New()
			if err != nil {
				return err
			}
			app, _, err := counterapp.New(counterapp.Config{
				Backend:  be,
				Store:    store.New(),
				Palette:  cfg.Palette,
				TickRate: cfg.TickRate,
				Logger:   logger,
			})
			if err != nil {
				return err
			}
			logger.Printf("starting tick=%s palette=%v", cfg.TickRate, cfg.Palette)
			if err := app.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			logger.Printf("stopped")
			return nil
		},
	}
}

// openLogger logs to path, or discards when path is empty.
func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return log.New(f, "furrystore ", log.LstdFlags|log.Lmicroseconds), func() { _ = f.Close() }, nil
}
