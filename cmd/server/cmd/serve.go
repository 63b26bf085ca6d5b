package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"carelink/internal/app/server/api"
	"carelink/internal/app/server/config"
	"carelink/internal/infrastructure/storage/postgres"
	"carelink/internal/utils/logger"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg := config.MustLoad()
		log := logger.New(cfg.Env)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		storage, err := postgres.New(ctx, cfg)
		if err != nil {
			return fmt.Errorf("init storage: %w", err)
		}
		defer storage.Close()

		srv := &http.Server{
			Addr:    cfg.Server.RunAddress,
			Handler: api.New(cfg, storage, log),
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info("server started", "address", cfg.Server.RunAddress, "env", cfg.Env)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("listen: %w", err)
			}
		case <-ctx.Done():
			log.Info("shutdown signal received")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}

		log.Info("server stopped")
		return nil
	},
}
