package app

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/readtrack-backend/internal/auth"
	"github.com/heartmarshall/readtrack-backend/internal/config"
	"github.com/heartmarshall/readtrack-backend/internal/metrics"
	"github.com/heartmarshall/readtrack-backend/internal/transport/middleware"
	"github.com/heartmarshall/readtrack-backend/internal/transport/rest"
)

// apiPrefix is the base path of every authenticated endpoint.
const apiPrefix = "/api/v1"

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Health     *rest.HealthHandler
	ReadingLog *rest.ReadingLogHandler
	Admin      *rest.AdminHandler
	Users      *rest.UserAdminHandler
}

// NewRouter mounts the API, health probes and the metrics endpoint behind
// the global middleware chain. limiter may be nil to disable rate limiting.
func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	h Handlers,
	tokens *auth.JWTManager,
	m *metrics.Metrics,
	limiter *middleware.RateLimiter,
) http.Handler {
	mux := http.NewServeMux()

	api := func(pattern string, fn http.HandlerFunc) {
		method, path := splitPattern(pattern)
		route := method + " " + apiPrefix + path
		mux.Handle(route, middleware.Chain(
			middleware.Metrics(m, route),
			middleware.RequireUser,
		)(fn))
	}

	api("POST /reading-logs", h.ReadingLog.Create)
	api("GET /reading-logs", h.ReadingLog.List)
	api("GET /reading-logs/history", h.ReadingLog.History)
	api("GET /reading-logs/{id}", h.ReadingLog.Get)
	api("PUT /reading-logs/{id}", h.ReadingLog.Update)
	api("DELETE /reading-logs/{id}", h.ReadingLog.Delete)
	api("GET /admin/reading-logs", h.ReadingLog.ListAll)

	api("POST /admin/reading-logs/{id}/flag", h.Admin.Flag)
	api("GET /admin/violations", h.Admin.ListViolations)
	api("GET /admin/violations/{id}", h.Admin.GetViolation)
	api("POST /admin/violations/{id}/restore", h.Admin.Restore)
	api("PUT /violations/{id}", h.Admin.UpdateViolation)
	api("GET /users/{id}/violations", h.Admin.ListUserViolations)

	api("GET /admin/users", h.Users.List)
	api("POST /admin/users/freeze", h.Users.Freeze)
	api("POST /admin/users/unfreeze", h.Users.Unfreeze)
	api("POST /admin/users/promote", h.Users.Promote)
	api("POST /admin/users/demote", h.Users.Demote)

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	if cfg.Metrics.Enabled && m != nil {
		mux.Handle("GET "+cfg.Metrics.Path, m.Handler())
	}

	var limit middleware.Middleware
	if limiter != nil {
		limit = limiter.Limit()
	}

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Auth(tokens),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limit,
	)(mux)
}

func splitPattern(pattern string) (method, path string) {
	method, path, ok := strings.Cut(pattern, " ")
	if !ok {
		return "", pattern
	}
	return method, path
}
