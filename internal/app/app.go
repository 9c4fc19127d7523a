package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/readtrack-backend/internal/adapter/notify"
	"github.com/heartmarshall/readtrack-backend/internal/adapter/postgres"
	logrepo "github.com/heartmarshall/readtrack-backend/internal/adapter/postgres/readinglog"
	userrepo "github.com/heartmarshall/readtrack-backend/internal/adapter/postgres/user"
	violationrepo "github.com/heartmarshall/readtrack-backend/internal/adapter/postgres/violation"
	"github.com/heartmarshall/readtrack-backend/internal/auth"
	"github.com/heartmarshall/readtrack-backend/internal/config"
	"github.com/heartmarshall/readtrack-backend/internal/metrics"
	"github.com/heartmarshall/readtrack-backend/internal/service/access"
	"github.com/heartmarshall/readtrack-backend/internal/service/administration"
	"github.com/heartmarshall/readtrack-backend/internal/service/moderation"
	"github.com/heartmarshall/readtrack-backend/internal/service/readinglog"
	"github.com/heartmarshall/readtrack-backend/internal/transport/middleware"
	"github.com/heartmarshall/readtrack-backend/internal/transport/rest"
)

// Run is the application entry point. It connects to the database, builds
// the services and serves HTTP until ctx is cancelled, then shuts the
// server down gracefully.
func Run(ctx context.Context, cfg *config.Config) error {
	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		BuildAttrs(),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("notify", cfg.Notify.Enabled),
		slog.Bool("splice_on_flag", cfg.Moderation.SpliceOnFlag),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	handler, cleanup, err := Build(cfg, logger, pool)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return <-errCh
}

// Build wires repositories, services and handlers on top of pool and returns
// the root HTTP handler. cleanup stops background workers.
func Build(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) (http.Handler, func(), error) {
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		var err error
		if m, err = metrics.New(); err != nil {
			return nil, nil, fmt.Errorf("metrics: %w", err)
		}
	}

	notifier, err := newNotifier(cfg.Notify)
	if err != nil {
		return nil, nil, err
	}

	logs := logrepo.New(pool)
	violations := violationrepo.New(pool)
	users := userrepo.New(pool)
	tx := postgres.NewTxManager(pool)
	policy := access.NewPolicy(users)

	logSvc := readinglog.NewService(logger, logs, policy, tx, m)
	modSvc := moderation.NewService(logger, logs, violations, users, policy, tx, logSvc, notifier, m, cfg.Moderation)
	adminSvc := administration.NewService(logger, users, policy, tx, notifier, m, cfg.Moderation.ListLimit)

	var limiter *middleware.RateLimiter
	cleanup := func() {}
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit)
		cleanup = limiter.Stop
	}

	handler := NewRouter(cfg, logger, Handlers{
		Health:     rest.NewHealthHandler(pool, Version),
		ReadingLog: rest.NewReadingLogHandler(logSvc, logger),
		Admin:      rest.NewAdminHandler(modSvc, logger),
		Users:      rest.NewUserAdminHandler(adminSvc, logger),
	}, auth.NewJWTManagerFromConfig(cfg.Auth), m, limiter)

	return handler, cleanup, nil
}

type noticeSender interface {
	NotifyViolation(ctx context.Context, n notify.ViolationNotice) error
	NotifyAccountFrozen(ctx context.Context, n notify.AccountFrozenNotice) error
}

func newNotifier(cfg config.NotifyConfig) (noticeSender, error) {
	if !cfg.Enabled {
		return notify.Noop{}, nil
	}
	n, err := notify.NewShoutrrr(cfg)
	if err != nil {
		return nil, fmt.Errorf("notify: %w", err)
	}
	return n, nil
}
