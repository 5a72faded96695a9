package main

import (
	"context"
	"fmt"
	"io"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/iho/goinvoice/internal/adapter/pdf"
	postgresRepo "github.com/iho/goinvoice/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/goinvoice/internal/adapter/repository/redis"
	"github.com/iho/goinvoice/internal/infrastructure/config"
	"github.com/iho/goinvoice/internal/infrastructure/logger"
	"github.com/iho/goinvoice/internal/infrastructure/metrics"
	"github.com/iho/goinvoice/internal/infrastructure/postgres"
	"github.com/iho/goinvoice/internal/infrastructure/redis"
	"github.com/iho/goinvoice/internal/usecase"
)

// app carries what every subcommand shares.
type app struct {
	stdout io.Writer
	stderr io.Writer

	cfg      *config.Config
	logger   zerolog.Logger
	registry *prometheus.Registry
	metrics  *metrics.Metrics
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout: stdout,
		stderr: stderr,
		logger: zerolog.Nop(),
	}
}

// setup loads configuration and sets up logging and metrics.
func (a *app) setup() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	a.cfg = cfg
	a.logger = logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Output:  a.stderr,
		Service: "invoicegen",
	})
	a.registry = prometheus.NewRegistry()
	a.metrics = metrics.New(a.registry)

	return nil
}

// stores holds the optional backing services.
type stores struct {
	pool  *pgxpool.Pool
	redis *goredis.Client
}

func (s *stores) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.redis != nil {
		s.redis.Close()
	}
}

// openStores connects to PostgreSQL and Redis when they are configured.
func (a *app) openStores(ctx context.Context) (*stores, error) {
	s := &stores{}

	if a.cfg.DatabaseURL != "" {
		connectCtx, cancel := context.WithTimeout(ctx, a.cfg.DatabaseTimeout)
		defer cancel()

		pool, err := postgres.NewPoolWithConfig(connectCtx, postgres.PoolConfig{
			DatabaseURL:    a.cfg.DatabaseURL,
			MaxConns:       a.cfg.DatabaseMaxConns,
			MinConns:       a.cfg.DatabaseMinConns,
			ConnectTimeout: a.cfg.DatabaseTimeout,
		})
		if err != nil {
			return nil, err
		}
		s.pool = pool
		a.logger.Debug().Msg("connected to postgres")
	}

	if a.cfg.RedisURL != "" {
		client, err := redis.NewClient(ctx, redis.Config{
			URL:        a.cfg.RedisURL,
			Timeout:    a.cfg.RedisTimeout,
			ClientName: "invoicegen",
		})
		if err != nil {
			s.Close()
			return nil, err
		}
		s.redis = client
		a.logger.Debug().Msg("connected to redis")
	}

	return s, nil
}

// register returns the invoice register, or nil when no database is configured.
func (a *app) register(s *stores) *postgresRepo.InvoiceRepository {
	if s.pool == nil {
		return nil
	}
	return postgresRepo.NewInvoiceRepository(s.pool, postgresRepo.NewRetrier(a.logger))
}

func (a *app) invoiceUseCase(s *stores) *usecase.InvoiceUseCase {
	opts := []usecase.InvoiceOption{
		usecase.WithLogger(a.logger),
		usecase.WithMetrics(a.metrics),
	}

	if reg := a.register(s); reg != nil {
		opts = append(opts, usecase.WithRegister(reg))
	}
	if s.redis != nil {
		opts = append(opts, usecase.WithNumberSequence(redisRepo.NewInvoiceSequence(s.redis), a.cfg.NumberPrefix))
	}

	return usecase.NewInvoiceUseCase(pdf.NewFactory(), postgresRepo.NewULIDGenerator(), opts...)
}

// registerRuntimeCollectors adds process and Go runtime metrics for the
// long running server.
func (a *app) registerRuntimeCollectors() {
	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}
