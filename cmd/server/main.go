package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/investcalc/internal/calculator"
	"github.com/mmynk/investcalc/internal/config"
	"github.com/mmynk/investcalc/internal/metrics"
	"github.com/mmynk/investcalc/internal/middleware"
	"github.com/mmynk/investcalc/internal/models"
	"github.com/mmynk/investcalc/internal/service"
	"github.com/mmynk/investcalc/internal/storage/memory"
	"github.com/mmynk/investcalc/pkg/api/apiconnect"
	"github.com/mmynk/investcalc/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))

	format, err := cfg.Format()
	if err != nil {
		slog.Error("Invalid money format", "error", err)
		os.Exit(1)
	}

	results := memory.NewResultStore()
	results.Subscribe(func(records []models.YearRecord) {
		s := calculator.Summarize(records)
		slog.Debug("Projection replaced", "years", s.Years, "final_value", s.FinalValue)
	})

	tasks := memory.NewTaskStore()
	defer tasks.Close()

	m := metrics.New()
	interceptors := connect.WithInterceptors(middleware.LoggingInterceptor(), m.Interceptor())

	mux := http.NewServeMux()

	projectionPath, projectionHandler := apiconnect.NewProjectionServiceHandler(service.NewProjectionService(results, m, format), interceptors)
	mux.Handle(projectionPath, projectionHandler)

	taskPath, taskHandler := apiconnect.NewTaskServiceHandler(service.NewTaskService(tasks, m), interceptors)
	mux.Handle(taskPath, taskHandler)

	mux.Handle("GET /metrics", m.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	handler := middleware.RequestLogger(middleware.CORS(cfg.AllowedOrigin, mux))

	// Wrap with h2c for HTTP/2 without TLS
	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      h2c.NewHandler(handler, &http2.Server{}),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", server.Addr, "locale", format.Language, "currency", format.Currency)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case <-quit:
		slog.Info("Shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
	slog.Info("Server exited")
}
