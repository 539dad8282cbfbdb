package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"employee-management/internal/repository"
	"employee-management/internal/server"
	"employee-management/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the projects HTTP API",
	Long: `Serve the projects HTTP API on SERVER_PORT.

SESSION_SECRET must be set. An admin account is created from ADMIN_USERNAME
and ADMIN_PASSWORD when none exists yet.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, db, err := bootstrap(ctx, false)
	if err != nil {
		return err
	}
	defer closeDB(db)
	if err := cfg.ValidateServer(); err != nil {
		return err
	}

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := server.NewRouter(cfg, server.Deps{
		Projects: service.NewProjectService(
			repository.NewProjectRepository(db),
			repository.NewEmployeeRepository(db),
		),
		Users: repository.NewUserRepository(db),
		Audit: repository.NewAuditRepository(db),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
