package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"event-management-api/internal/auth"
	"event-management-api/internal/handler"
	"event-management-api/internal/health"
	"event-management-api/internal/metrics"
)

var (
	serverHost string
	serverPort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and the gRPC health endpoint",
	Long: `Start the HTTP API and the gRPC health endpoint.

Examples:
  # defaults: SQLite file events.db on :8080
  SESSION_SECRET=dev eventapi serve

  # Postgres, migrated on startup
  DATABASE_DRIVER=postgres DATABASE_URL=postgres://... eventapi serve --port 9090`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serverHost, "host", "", "listen host (overrides SERVER_HOST)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "listen port (overrides PORT)")
}

func runServer(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	if serverHost != "" {
		cfg.Server.Host = serverHost
	}
	if serverPort != 0 {
		cfg.Server.Port = serverPort
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	openCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	st, err := openStore(openCtx, cfg.Database)
	cancel()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	logger.Info().Str("driver", cfg.Database.Driver).Msg("store ready")

	m := metrics.New()
	checker := health.NewChecker(st, m)
	am := auth.NewManager(st, st, cfg.Session.Secret, cfg.Session.TTL)
	h := handler.New(st, am, m, handler.CookieConfig{
		Name:   cfg.Session.CookieName,
		Secure: cfg.Session.CookieSecure,
	})

	httpSrv := &http.Server{
		Addr: cfg.Server.Addr(),
		Handler: h.Router(handler.RouterOptions{
			Logger:         logger,
			AllowedOrigins: cfg.Server.AllowedOrigins,
			StaticDir:      cfg.Server.StaticDir,
			Health:         checker,
		}),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		logger.Info().Str("addr", httpSrv.Addr).Msg("http listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http: %w", err)
		}
	}()

	grpcSrv := health.NewGRPCServer(checker, logger)
	if addr := cfg.Server.GRPCHealthAddr(); addr != "" {
		lis, err := net.Listen("tcp", addr)
		if err != nil {
			_ = httpSrv.Close()
			return fmt.Errorf("grpc listen: %w", err)
		}
		go func() {
			logger.Info().Str("addr", addr).Msg("grpc health listening")
			if err := grpcSrv.Serve(lis); err != nil {
				errCh <- fmt.Errorf("grpc: %w", err)
			}
		}()
	}

	select {
	case <-ctx.Done():
		logger.Info().Msg("shutting down")
	case err = <-errCh:
		logger.Error().Err(err).Msg("server failed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	grpcSrv.GracefulStop()
	if serr := httpSrv.Shutdown(shutdownCtx); serr != nil {
		logger.Error().Err(serr).Msg("http shutdown")
	}
	return err
}
