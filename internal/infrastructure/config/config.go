package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds all application configuration.
type Config struct {
	// Invoice
	ProfilePath  string          `env:"INVOICE_PROFILE"       envDefault:"invoice.yaml"`
	InputPath    string          `env:"INVOICE_INPUT"         envDefault:"daten.csv"`
	OutputPath   string          `env:"INVOICE_OUTPUT"        envDefault:"rechnung.pdf"`
	HourlyRate   decimal.Decimal `env:"INVOICE_HOURLY_RATE"   envDefault:"32"`
	NumberPrefix string          `env:"INVOICE_NUMBER_PREFIX" envDefault:"RE"`

	// Database (optional - leave empty to disable the invoice register)
	DatabaseURL      string        `env:"DATABASE_URL"       envDefault:""`
	DatabaseMaxConns int           `env:"DATABASE_MAX_CONNS" envDefault:"5"`
	DatabaseMinConns int           `env:"DATABASE_MIN_CONNS" envDefault:"1"`
	DatabaseTimeout  time.Duration `env:"DATABASE_TIMEOUT"   envDefault:"10s"`
	MigrationsPath   string        `env:"MIGRATIONS_PATH"    envDefault:"migrations"`

	// Redis (optional - leave empty to disable invoice numbering)
	RedisURL     string        `env:"REDIS_URL"     envDefault:""`
	RedisTimeout time.Duration `env:"REDIS_TIMEOUT" envDefault:"3s"`

	// HTTP Server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"30s"`
	HTTPIdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT"     envDefault:"60s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	HTTPMaxBodyBytes    int64         `env:"HTTP_MAX_BODY_BYTES"   envDefault:"1048576"`
	HTTPRateLimit       float64       `env:"HTTP_RATE_LIMIT"       envDefault:"5"`
	HTTPRateBurst       int           `env:"HTTP_RATE_BURST"       envDefault:"10"`
	IdempotencyTTL      time.Duration `env:"IDEMPOTENCY_TTL"       envDefault:"24h"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
}

// Load loads configuration from environment variables. A .env file in the
// working directory is applied first if present; variables already set in
// the environment win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.HourlyRate.IsNegative() {
		return nil, fmt.Errorf("INVOICE_HOURLY_RATE must not be negative, got %s", cfg.HourlyRate)
	}

	return cfg, nil
}
