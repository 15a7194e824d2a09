package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/evtol-sizing/internal/application"
	"github.com/eugenenazirov/evtol-sizing/internal/config"
	"github.com/eugenenazirov/evtol-sizing/internal/logging"
)

var signalNotify = signal.Notify

func main() {
	command, overrides, err := parseArgs(os.Args[1:])
	kingpin.FatalIfError(err, "")

	cfg, err := config.Load(overrides)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize application", zap.Error(err))
	}

	switch command {
	case serveCommand:
		if err := app.Start(); err != nil {
			logger.Fatal("failed to start server", zap.Error(err))
		}
		shutdown(app.Server(), cfg.ShutdownGracePeriod, logger)
	default:
		if err := app.Report(os.Stdout); err != nil {
			logger.Fatal("sizing failed", zap.Error(err))
		}
	}
}

func shutdown(server *http.Server, timeout time.Duration, logger *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signalNotify(quit, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
		if closeErr := server.Close(); closeErr != nil {
			logger.Error("forced close failed", zap.Error(closeErr))
		}
	}
}
