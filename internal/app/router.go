package app

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/ontomap-backend/internal/auth"
	"github.com/heartmarshall/ontomap-backend/internal/config"
	"github.com/heartmarshall/ontomap-backend/internal/service/workspace"
	"github.com/heartmarshall/ontomap-backend/internal/transport/middleware"
	"github.com/heartmarshall/ontomap-backend/internal/transport/rest"
)

// newRouter assembles the HTTP handler. Probes and metrics bypass auth;
// everything under /api/ is authenticated and instrumented per route.
func newRouter(
	logger *slog.Logger,
	cfg *config.Config,
	coordinator *workspace.Service,
	pool *pgxpool.Pool,
	filesDB *sql.DB,
	reg *prometheus.Registry,
) http.Handler {
	limiter := middleware.NewRateLimiter(time.Minute)

	api := http.NewServeMux()
	rest.NewWorkspaceHandler(coordinator, logger, cfg.Files.MaxUploadBytes, limiter.Limit(cfg.Server.UploadsPerMinute)).Register(api)

	apiHandler := middleware.Chain(
		middleware.Auth(auth.NewValidator(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer), cfg.Auth.Required),
		middleware.NewHTTPMetrics(reg).Middleware(),
	)(api)

	root := http.NewServeMux()
	rest.NewHealthHandler(Version,
		rest.HealthCheck{Name: "postgres", Pinger: pool},
		rest.HealthCheck{Name: "sqlite", Pinger: rest.PingFunc(filesDB.PingContext)},
	).Register(root)
	if cfg.Metrics.Enabled {
		root.Handle("GET "+cfg.Metrics.Path, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	}
	root.Handle("/api/", apiHandler)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(root)
}
