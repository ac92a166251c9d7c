package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/PerkPoints_Go/internal/config"
	"github.com/osse101/PerkPoints_Go/internal/database"
	"github.com/osse101/PerkPoints_Go/internal/logger"
	"github.com/osse101/PerkPoints_Go/internal/server"
	"github.com/osse101/PerkPoints_Go/internal/session"
)

const shutdownTimeout = 5 * time.Second

// ServeCommand runs a simulation behind the debug HTTP API
type ServeCommand struct {
	cfg *config.Config
}

func (c *ServeCommand) Name() string {
	return "serve"
}

func (c *ServeCommand) Description() string {
	return "Serve the debug API and /metrics for a live simulation"
}

func (c *ServeCommand) Run(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, c.cfg.SaveDBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	sim, err := session.Start(ctx, c.cfg, database.NewSaveRepository(db))
	if err != nil {
		return err
	}

	srv := server.NewServer(c.cfg.DebugAddr, sim)
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down debug server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Stop(shutdownCtx)
}
