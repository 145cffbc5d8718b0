package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация приложения, загружается из config.toml
// с возможностью переопределения через переменные окружения UADRC_*
type Config struct {
	Backend  BackendConfig  `toml:"backend"`
	Logs     LogsConfig     `toml:"logs"`
	Worker   WorkerConfig   `toml:"worker"`
	Stub     StubConfig     `toml:"stub"`
	LoadTest LoadTestConfig `toml:"loadtest"`
}

// BackendConfig параметры подключения к backend'у столовых
type BackendConfig struct {
	BaseURL string `toml:"base_url"` // базовый URL, включая /api
	Timeout int    `toml:"timeout"`  // таймаут HTTP-клиента в секундах
}

// LogsConfig параметры логирования
type LogsConfig struct {
	File  string `toml:"file"`  // путь к файлу логов, пусто = stderr
	Level string `toml:"level"` // debug | info | warn | error
}

// WorkerConfig параметры режима работника
type WorkerConfig struct {
	// AccessSecret статический общий секрет для входа в режим работника.
	// Это локальный барьер на стороне клиента, а не граница безопасности:
	// backend обязан независимо авторизовывать изменяющие endpoints.
	AccessSecret string `toml:"access_secret"`
}

// StubConfig параметры локальной заглушки backend'а (cmd/stubserver)
type StubConfig struct {
	Port            int    `toml:"port"`
	MetricsEnabled  bool   `toml:"metrics_enabled"`
	MetricsPath     string `toml:"metrics_path"`
	MaxReservations int    `toml:"max_reservations"` // лимит бронирований на ресторан, 0 = без лимита
}

// LoadTestConfig параметры генератора нагрузки (cmd/loadtest)
type LoadTestConfig struct {
	TargetVUs       int     `toml:"target_vus"`        // число виртуальных пользователей на плато
	RampUpSeconds   int     `toml:"ramp_up_seconds"`   // длительность разгона
	SteadySeconds   int     `toml:"steady_seconds"`    // длительность плато
	RampDownSeconds int     `toml:"ramp_down_seconds"` // длительность спада
	P95ThresholdMs  int     `toml:"p95_threshold_ms"`  // порог p95 латентности
	MaxErrorRate    float64 `toml:"max_error_rate"`    // допустимая доля ошибок (0..1)
}

// Load загружает конфигурацию из TOML-файла и применяет переопределения
// из окружения (файл .env подхватывается, если присутствует)
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to load %s: %w", path, err)
	}

	// .env не обязателен, ошибки отсутствия файла игнорируются
	_ = godotenv.Load()
	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Backend: BackendConfig{
			BaseURL: "http://localhost:8080/api",
			Timeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Worker: WorkerConfig{
			AccessSecret: "password",
		},
		Stub: StubConfig{
			Port:            8080,
			MetricsEnabled:  true,
			MetricsPath:     "/metrics",
			MaxReservations: 50,
		},
		LoadTest: LoadTestConfig{
			TargetVUs:       50,
			RampUpSeconds:   120,
			SteadySeconds:   300,
			RampDownSeconds: 120,
			P95ThresholdMs:  200,
			MaxErrorRate:    0.01,
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("UADRC_BACKEND_URL"); v != "" {
		cfg.Backend.BaseURL = v
	}
	if v := os.Getenv("UADRC_BACKEND_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Backend.Timeout = n
		}
	}
	if v := os.Getenv("UADRC_LOG_FILE"); v != "" {
		cfg.Logs.File = v
	}
	if v := os.Getenv("UADRC_LOG_LEVEL"); v != "" {
		cfg.Logs.Level = v
	}
	if v := os.Getenv("UADRC_WORKER_SECRET"); v != "" {
		cfg.Worker.AccessSecret = v
	}
	if v := os.Getenv("UADRC_STUB_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Stub.Port = n
		}
	}
}

func (c *Config) validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("config: backend.base_url is required")
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("config: backend.timeout must be positive")
	}
	if c.Worker.AccessSecret == "" {
		return fmt.Errorf("config: worker.access_secret is required")
	}
	if c.Stub.Port <= 0 || c.Stub.Port > 65535 {
		return fmt.Errorf("config: stub.port must be a valid port")
	}
	if c.LoadTest.TargetVUs <= 0 {
		return fmt.Errorf("config: loadtest.target_vus must be positive")
	}
	if c.LoadTest.MaxErrorRate < 0 || c.LoadTest.MaxErrorRate > 1 {
		return fmt.Errorf("config: loadtest.max_error_rate must be within [0, 1]")
	}
	return nil
}
