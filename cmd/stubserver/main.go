package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/UAD-ReservationClient/internal/config"
	"github.com/m04kA/UAD-ReservationClient/internal/stubbackend"
	"github.com/m04kA/UAD-ReservationClient/pkg/logger"
	"github.com/m04kA/UAD-ReservationClient/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to configuration file")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting dining backend stub...")
	log.Info("Reservation limit per restaurant: %d", cfg.Stub.MaxReservations)

	// Инициализируем хранилище и сервер
	store := stubbackend.NewStore(cfg.Stub.MaxReservations)
	server := stubbackend.NewServer(store, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Stub.MetricsEnabled {
		collector := metrics.New("dining-stub")
		r.Use(stubbackend.MetricsMiddleware(collector))
		r.Handle(cfg.Stub.MetricsPath, promhttp.HandlerFor(collector.Registry(), promhttp.HandlerOpts{})).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Stub.MetricsPath)
	}

	server.Register(r)

	addr := fmt.Sprintf(":%d", cfg.Stub.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Stub listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Stub failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down stub...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Stub forced to shutdown: %v", err)
	}

	log.Info("Stub stopped gracefully")
}
