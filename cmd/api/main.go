package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/factory-attendance-go/internal/config"
	appHTTP "github.com/cmlabs-hris/factory-attendance-go/internal/handler/http"
	attendanceService "github.com/cmlabs-hris/factory-attendance-go/internal/service/attendance"
	reportService "github.com/cmlabs-hris/factory-attendance-go/internal/service/report"
	workerService "github.com/cmlabs-hris/factory-attendance-go/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open record store", "store", cfg.App.StoreType, "error", err)
		os.Exit(1)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.close(closeCtx); err != nil {
			slog.Error("Failed to close record store", "error", err)
		}
	}()

	workerSvc := workerService.NewWorkerService(store.workerRepo)
	attendanceSvc := attendanceService.NewAttendanceService(store.attendanceRepo, store.workerRepo, cfg.App.BatchConcurrency)
	reportSvc := reportService.NewReportService(store.workerRepo, store.attendanceRepo)

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			AllowedOrigins: cfg.App.AllowedOrigins,
			Env:            cfg.App.Env,
			LogLevel:       cfg.SlogLevel(),
			MaxBodyBytes:   cfg.App.MaxBodyBytes,
		},
		appHTTP.NewHealthHandler(store.name, store.ping),
		appHTTP.NewWorkerHandler(workerSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewReportHandler(reportSvc),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", srv.Addr, "store", store.name)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		slog.Info("Server shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
	case err := <-errCh:
		slog.Error("Server error", "error", err)
	}
}
