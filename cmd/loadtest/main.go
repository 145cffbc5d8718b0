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

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/UAD-ReservationClient/internal/config"
	"github.com/m04kA/UAD-ReservationClient/internal/integrations/diningservice"
	"github.com/m04kA/UAD-ReservationClient/internal/loadgen"
	"github.com/m04kA/UAD-ReservationClient/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to configuration file")
	metricsAddr := flag.String("metrics-addr", ":2112", "address for the prometheus endpoint during the run")
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

	log.Info("Starting load test against %s", cfg.Backend.BaseURL)

	client := diningservice.NewClient(
		cfg.Backend.BaseURL,
		time.Duration(cfg.Backend.Timeout)*time.Second,
		log,
	)

	runCfg := loadgen.Config{
		TargetVUs:    cfg.LoadTest.TargetVUs,
		RampUp:       time.Duration(cfg.LoadTest.RampUpSeconds) * time.Second,
		Steady:       time.Duration(cfg.LoadTest.SteadySeconds) * time.Second,
		RampDown:     time.Duration(cfg.LoadTest.RampDownSeconds) * time.Second,
		P95Threshold: time.Duration(cfg.LoadTest.P95ThresholdMs) * time.Millisecond,
		MaxErrorRate: cfg.LoadTest.MaxErrorRate,
	}
	runner := loadgen.NewRunner(client, log, runCfg)

	// Метрики доступны на время прогона
	metricsSrv := &http.Server{
		Addr:    *metricsAddr,
		Handler: promhttp.HandlerFor(runner.Registry(), promhttp.HandlerOpts{}),
	}
	go func() {
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Warn("Metrics endpoint failed: %v", err)
		}
	}()
	defer metricsSrv.Close()

	// Ctrl+C завершает прогон досрочно, но с подведением итогов
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summary, err := runner.Run(ctx)
	if err != nil {
		log.Fatal("Load test failed to run: %v", err)
	}

	fmt.Printf("\n=== Load test summary ===\n")
	fmt.Printf("Requests:   %d (failed %d, error rate %.4f)\n", summary.Total, summary.Failed, summary.ErrorRate)
	fmt.Printf("Latency:    p50=%v p95=%v p99=%v\n", summary.P50, summary.P95, summary.P99)
	fmt.Printf("Elapsed:    %v\n", summary.Elapsed)

	violations := summary.Violations(runCfg)
	for _, v := range violations {
		fmt.Printf("THRESHOLD VIOLATED: %s\n", v)
	}
	if len(violations) > 0 {
		os.Exit(1)
	}
}
