package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Freskan23/vistoenmaps-api/internal/bootstrap"
	"github.com/Freskan23/vistoenmaps-api/internal/config"
	"github.com/Freskan23/vistoenmaps-api/internal/observability/logging"
	"github.com/Freskan23/vistoenmaps-api/internal/observability/metrics"
)

func main() {
	cfg := config.Load()
	logger := logging.Setup("worker", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}
	defer app.Close()

	workerMetrics := metrics.NewWorkerMetrics("worker")
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", workerMetrics.Handler())
	metricsServer := &http.Server{
		Addr:    ":" + cfg.WorkerMetricsPort,
		Handler: metricsMux,
	}
	go func() {
		logger.Info("worker metrics listening", "port", cfg.WorkerMetricsPort)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("worker metrics server error: %v", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsServer.Shutdown(shutdownCtx)
	}()

	logger.Info("worker subscribed", "subject", cfg.NATSSubject)
	err = app.Queue.SubscribeSeguimientoActualizado(ctx, func(handlerCtx context.Context, negocioID string) error {
		workerMetrics.StartEvent()
		start := time.Now()

		recalcCtx, cancel := context.WithTimeout(handlerCtx, 30*time.Second)
		defer cancel()

		recalcErr := app.StatsRepo.Recalculate(recalcCtx, negocioID)
		workerMetrics.FinishEvent("worker", time.Since(start), recalcErr)
		return recalcErr
	})
	if err != nil {
		log.Fatalf("worker subscribe error: %v", err)
	}
}
