package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpAdapter "github.com/iho/goinvoice/internal/adapter/http"
	"github.com/iho/goinvoice/internal/adapter/http/handler"
	"github.com/iho/goinvoice/internal/adapter/http/middleware"
	redisRepo "github.com/iho/goinvoice/internal/adapter/repository/redis"
	"github.com/iho/goinvoice/internal/infrastructure/config"
)

const limiterCleanupInterval = 10 * time.Minute

func newServeCmd(a *app) *cobra.Command {
	var profilePath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve invoice generation over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if profilePath == "" {
				profilePath = a.cfg.ProfilePath
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return a.serve(ctx, profilePath)
		},
	}

	cmd.Flags().StringVar(&profilePath, "profile", "", "invoice profile YAML used for every request")

	return cmd
}

func (a *app) serve(ctx context.Context, profilePath string) error {
	profile, err := config.LoadProfile(profilePath, a.cfg.HourlyRate)
	if err != nil {
		return err
	}

	s, err := a.openStores(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	a.registerRuntimeCollectors()

	rateLimiter := middleware.NewRateLimiter(a.cfg.HTTPRateLimit, a.cfg.HTTPRateBurst)
	routerCfg := httpAdapter.RouterConfig{
		InvoiceHandler: handler.NewInvoiceHandler(a.invoiceUseCase(s), profile, a.cfg.HTTPMaxBodyBytes),
		HealthHandler:  handler.NewHealthHandler(s.pool, s.redis),
		Logger:         a.logger,
		Metrics:        a.metrics,
		Gatherer:       a.registry,
		RateLimiter:    rateLimiter,
	}
	if s.redis != nil {
		routerCfg.Idempotency = middleware.NewIdempotencyMiddleware(redisRepo.NewIdempotencyStore(s.redis), a.cfg.IdempotencyTTL, a.logger)
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", a.cfg.HTTPPort),
		Handler:      httpAdapter.NewRouter(routerCfg),
		ReadTimeout:  a.cfg.HTTPReadTimeout,
		WriteTimeout: a.cfg.HTTPWriteTimeout,
		IdleTimeout:  a.cfg.HTTPIdleTimeout,
	}

	go func() {
		ticker := time.NewTicker(limiterCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				rateLimiter.CleanupLimiters(limiterCleanupInterval)
			}
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info().
			Str("port", a.cfg.HTTPPort).
			Bool("register", s.pool != nil).
			Bool("numbering", s.redis != nil).
			Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	a.logger.Info().Msg("server stopped")
	return nil
}
