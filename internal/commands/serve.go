package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"breaktrack/internal/database"
	"breaktrack/internal/server"
	"breaktrack/internal/services"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var (
	servePort    string
	serveMigrate bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.close()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if serveMigrate {
			if err := database.Bootstrap(ctx, e.db, e.cfg.AdminPassword, e.log); err != nil {
				return err
			}
		}

		r, err := server.NewRouter(e.cfg, services.New(e.db), e.log)
		if err != nil {
			return err
		}

		port := e.cfg.ServerPort
		if servePort != "" {
			port = servePort
		}
		srv := &http.Server{
			Addr:              fmt.Sprintf(":%s", port),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			e.log.Info("starting server", zap.String("addr", srv.Addr), zap.String("env", e.cfg.Env))
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		e.log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		e.log.Info("server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "listen port (overrides SERVER_PORT)")
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", false, "migrate and seed the database before serving")
}
