package cmd

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/yuuyeah/review-and-assessment-powered-by-intelligent-documentation/internal/config"
	"github.com/yuuyeah/review-and-assessment-powered-by-intelligent-documentation/internal/observability"
	"github.com/yuuyeah/review-and-assessment-powered-by-intelligent-documentation/internal/server"
)

var (
	serverPort int
	serverHost string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP render service",
	Long: `Start the HTTP render service with graceful shutdown support.

Endpoints:
  POST /render        expand a template with a review data bundle
  GET  /health        aggregate health
  GET  /health/live   liveness probe
  GET  /health/ready  readiness probe
  GET  /version       version information

Ctrl+C (SIGINT) or SIGTERM triggers a graceful shutdown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logLevel := viper.GetString("logging.level")
		observability.InitServerLogger(appName, logLevel)

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		registry, err := loadTemplateRegistry()
		if err != nil {
			return err
		}

		observability.ServerLogger.Info("Initializing server",
			zap.String("service", appName),
			zap.String("version", versionInfo.Version),
			zap.String("host", serverHost),
			zap.Int("port", serverPort),
			zap.Int("templates", len(registry.List())))

		srv := server.New(serverHost, serverPort, registry, versionInfo.Version)

		shutdownTimeout := cfg.Server.ShutdownTimeout
		if shutdownTimeout == 0 {
			shutdownTimeout = 10 * time.Second
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errChan := make(chan error, 1)
		go func() {
			if err := srv.Start(); err != nil && err != http.ErrServerClosed {
				errChan <- err
			}
		}()

		select {
		case err := <-errChan:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			observability.ServerLogger.Error("Server shutdown failed", zap.Error(err))
			return err
		}

		observability.ServerLogger.Info("HTTP server stopped gracefully")
		_ = observability.ServerLogger.Sync()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverHost, "host", "localhost", "server host")
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 8080, "server port")

	_ = viper.BindPFlag("server.host", serveCmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
}
