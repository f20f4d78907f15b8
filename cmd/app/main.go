package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"coffeeshop/cmd"
	httpadapter "coffeeshop/internal/adapters/in/http"
	"coffeeshop/internal/pkg/telemetry"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	serviceName    = "coffeeshop"
	serviceVersion = "0.1.0"
)

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := newLogger(configs.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, configs, logger)
	stop()
	if err != nil {
		logger.Error("application stopped with error", "error", err)
		os.Exit(1)
	}
}

// run serves until ctx is done. Every resource it acquires is released before
// it returns.
func run(ctx context.Context, configs cmd.Config, logger *slog.Logger) error {
	shutdownCtx := context.WithoutCancel(ctx)

	shutdownTracer, err := telemetry.InitTracerProvider(ctx, configs.OTLPEndpoint, serviceName, serviceVersion)
	if err != nil {
		return fmt.Errorf("failed to initialize tracer: %w", err)
	}
	defer func() { _ = shutdownTracer(shutdownCtx) }()

	shutdownMeter, err := telemetry.InitMeterProvider(serviceName, serviceVersion)
	if err != nil {
		return fmt.Errorf("failed to initialize meter: %w", err)
	}
	defer func() { _ = shutdownMeter(shutdownCtx) }()

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Error("failed to release resources", "error", closeErr)
		}
	}()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return fmt.Errorf("failed to start jobs: %w", err)
	}
	defer jobManager.StopAll()

	e, err := newRouter(app, logger)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	return serve(ctx, e, configs.HTTPPort, logger)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func newRouter(app *cmd.CompositionRoot, logger *slog.Logger) (*echo.Echo, error) {
	metrics := httpadapter.NewMetrics(prometheus.DefaultRegisterer)
	server := httpadapter.NewServer(app.CreateHTTPHandlers(), app.Menu(), metrics, logger)
	return httpadapter.NewRouter(server, metrics, prometheus.DefaultGatherer)
}

func serve(ctx context.Context, e *echo.Echo, port string, logger *slog.Logger) error {
	server := &http.Server{
		Addr: fmt.Sprintf("0.0.0.0:%s", port),
		Handler: otelhttp.NewHandler(e, serviceName,
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return r.Method + " " + r.URL.Path
			}),
		),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting http server", "port", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	return nil
}
