package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"perfsmell/internal/api/v1/router"
	"perfsmell/internal/config"
	"perfsmell/internal/debug"
	"perfsmell/internal/log"
	"perfsmell/internal/mcptool"
	"perfsmell/internal/service"
)

const shutdownTimeout = 5 * time.Second

func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the Prometheus metrics server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(config.AppConfig)
		},
	}
}

func serve(cfg *config.Config) error {
	analyzer := service.NewAnalyzer(cfg)
	mcpServer := mcptool.NewServer(analyzer, version)

	server := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           router.New(cfg, analyzer, mcptool.NewHTTPHandler(mcpServer)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	metricsServer := &http.Server{
		Addr:              net.JoinHostPort("", cfg.MetricsPort),
		Handler:           router.NewMetricsRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Channel to listen for interrupt or terminate signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 2)

	go func() {
		log.Logger.Info("Server started", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Pprof only enabled in dev env
	var pprofServer *http.Server
	if cfg.IsDev {
		pprofServer = debug.StartPprof("localhost:6060")
	}

	go func() {
		log.Logger.Info("Metrics server started", zap.String("addr", metricsServer.Addr))
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var runErr error
	select {
	case <-stop:
		log.Logger.Info("Shutting down server gracefully")
	case runErr = <-errCh:
		log.Logger.Error("Server failed", zap.Error(runErr))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	servers := []*http.Server{server, metricsServer}
	if pprofServer != nil {
		servers = append(servers, pprofServer)
	}
	for _, srv := range servers {
		if err := srv.Shutdown(ctx); err != nil {
			log.Logger.Error("Server forced to shutdown", zap.String("addr", srv.Addr), zap.Error(err))
			runErr = errors.Join(runErr, err)
		}
	}

	if runErr == nil {
		log.Logger.Info("Server exited successfully")
	}
	return runErr
}
