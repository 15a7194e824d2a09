package application

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/eugenenazirov/evtol-sizing/internal/api"
	"github.com/eugenenazirov/evtol-sizing/internal/config"
	"github.com/eugenenazirov/evtol-sizing/internal/report"
)

// App encapsulates the application dependencies and HTTP server.
type App struct {
	cfg     config.Config
	handler *api.Handler
	router  http.Handler
	logger  *zap.Logger
	server  *http.Server
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	handler := api.NewHandler(cfg.Inputs, api.WithLogger(logger))
	apiRouter := api.NewRouter(handler, logger,
		api.WithLogging(cfg.EnableRequestLogging),
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	return &App{
		cfg:     cfg,
		handler: handler,
		router:  apiRouter,
		logger:  logger,
		server:  NewServer(cfg, BuildRootHandler(apiRouter)),
	}, nil
}

// BuildRootHandler mounts the API under /api/ and answers 404 elsewhere.
func BuildRootHandler(apiHandler http.Handler) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/api/", apiHandler)
	mux.Handle("/", http.NotFoundHandler())
	return mux
}

// NewServer creates and configures an HTTP server from the provided configuration.
func NewServer(cfg config.Config, handler http.Handler) *http.Server {
	addr := cfg.Port
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// Report runs one sizing evaluation with the configured inputs and writes the
// summary to w. Nothing is written when any calculation fails.
func (a *App) Report(w io.Writer) error {
	in := a.cfg.Inputs

	if a.cfg.Strict {
		if err := in.Validate(); err != nil {
			return fmt.Errorf("validate inputs: %w", err)
		}
	}

	summary, err := report.Run(in)
	if err != nil {
		return err
	}

	a.logger.Debug("sizing complete",
		zap.Int("parallel", summary.Configuration.Parallel),
		zap.Int("series", summary.Configuration.Series),
		zap.Float64("weight_kg", summary.WeightKg),
		zap.Float64("cruise_kw", summary.CruisePowerKW),
		zap.Float64("vertical_kw", summary.VerticalPowerKW),
	)

	return report.Write(w, summary, a.cfg.Format)
}

// Start starts the HTTP server in a goroutine and logs the listening address.
func (a *App) Start() error {
	go func() {
		a.logger.Info("server listening", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()
	return nil
}

// Server returns the HTTP server instance for shutdown handling.
func (a *App) Server() *http.Server {
	return a.server
}
