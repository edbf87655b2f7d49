package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/heartmarshall/ontomap-backend/internal/adapter/filestore"
	"github.com/heartmarshall/ontomap-backend/internal/adapter/postgres"
	mappingrepo "github.com/heartmarshall/ontomap-backend/internal/adapter/postgres/mapping"
	ontologyrepo "github.com/heartmarshall/ontomap-backend/internal/adapter/postgres/ontology"
	prefixrepo "github.com/heartmarshall/ontomap-backend/internal/adapter/postgres/prefix"
	sourcerepo "github.com/heartmarshall/ontomap-backend/internal/adapter/postgres/source"
	workspacerepo "github.com/heartmarshall/ontomap-backend/internal/adapter/postgres/workspace"
	"github.com/heartmarshall/ontomap-backend/internal/adapter/rdfparser"
	"github.com/heartmarshall/ontomap-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/ontomap-backend/internal/config"
	"github.com/heartmarshall/ontomap-backend/internal/service/mapping"
	"github.com/heartmarshall/ontomap-backend/internal/service/ontology"
	"github.com/heartmarshall/ontomap-backend/internal/service/prefix"
	"github.com/heartmarshall/ontomap-backend/internal/service/source"
	"github.com/heartmarshall/ontomap-backend/internal/service/workspace"
)

// Run loads configuration, connects both backends, applies migrations and
// serves HTTP until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.InfoContext(ctx, "starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	applied, err := postgres.Migrate(ctx, pool)
	if err != nil {
		return fmt.Errorf("migrate postgres: %w", err)
	}
	logger.InfoContext(ctx, "postgres migrations applied", slog.Int("count", applied))

	filesDB, err := sqlite.Open(ctx, cfg.Files.SQLitePath)
	if err != nil {
		return err
	}
	defer filesDB.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	coordinator, err := newCoordinator(logger, cfg, pool, filesDB, reg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      newRouter(logger, cfg, coordinator, pool, filesDB, reg),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down", slog.String("reason", context.Cause(ctx).Error()))
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// Migrate applies the bundled migrations of both backends and exits.
func Migrate(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	start := time.Now()
	applied, err := postgres.Migrate(ctx, pool)
	if err != nil {
		return fmt.Errorf("migrate postgres: %w", err)
	}

	// Open applies the SQLite migrations.
	filesDB, err := sqlite.Open(ctx, cfg.Files.SQLitePath)
	if err != nil {
		return err
	}
	defer filesDB.Close()

	logger.InfoContext(ctx, "migrations applied",
		slog.Int("postgres", applied),
		slog.String("sqlite_path", cfg.Files.SQLitePath),
		slog.Duration("took", time.Since(start)),
	)
	return nil
}

func newCoordinator(logger *slog.Logger, cfg *config.Config, pool *pgxpool.Pool, filesDB *sql.DB, reg prometheus.Registerer) (*workspace.Service, error) {
	files, err := filestore.New(logger, cfg.Files.Dir, sqlite.NewFileRepo(filesDB), cfg.Files.CacheTTL)
	if err != nil {
		return nil, err
	}

	tx := postgres.NewTxManager(pool)

	sources := source.NewService(logger, sourcerepo.New(pool), files)
	prefixes := prefix.NewService(logger, prefixrepo.New(pool))
	ontologies := ontology.NewService(logger, ontologyrepo.New(pool), files, rdfparser.New())
	mappings := mapping.NewService(logger, mappingrepo.New(pool), tx)

	return workspace.NewService(
		logger,
		workspacerepo.New(pool),
		sources,
		prefixes,
		ontologies,
		mappings,
		files,
		tx,
		workspace.NewMetrics(reg),
		cfg.Workspace,
	), nil
}
