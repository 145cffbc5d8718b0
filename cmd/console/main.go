package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/m04kA/UAD-ReservationClient/internal/config"
	"github.com/m04kA/UAD-ReservationClient/internal/console"
	"github.com/m04kA/UAD-ReservationClient/internal/integrations/diningservice"
	"github.com/m04kA/UAD-ReservationClient/pkg/logger"
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

	log.Info("Starting UAD reservation console...")
	log.Info("Backend: %s (timeout=%ds)", cfg.Backend.BaseURL, cfg.Backend.Timeout)

	// Инициализируем клиента backend'а
	client := diningservice.NewClient(
		cfg.Backend.BaseURL,
		time.Duration(cfg.Backend.Timeout)*time.Second,
		log,
	)

	// Запускаем интерактивную оболочку
	ui := console.New(client, log, cfg.Worker.AccessSecret, os.Stdin, os.Stdout)
	ui.Run(context.Background())

	log.Info("Console session finished")
}
