// Command cleanup removes stored files that no source or ontology references.
// Such orphans are left behind when a process dies between an upload and the
// commit of its transaction, or between a commit and the blob removal.
// It is intended to be invoked by an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/ontomap-backend/internal/adapter/filestore"
	"github.com/heartmarshall/ontomap-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ontomap-backend/internal/adapter/postgres/ontology"
	"github.com/heartmarshall/ontomap-backend/internal/adapter/postgres/source"
	"github.com/heartmarshall/ontomap-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/ontomap-backend/internal/app"
	"github.com/heartmarshall/ontomap-backend/internal/config"
)

func main() {
	var (
		minAge  time.Duration
		dryRun  bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:          "cleanup",
		Short:        "Remove stored files that nothing references",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			return run(ctx, minAge, dryRun)
		},
	}
	cmd.Flags().DurationVar(&minAge, "min-age", 24*time.Hour, "only files older than this are considered")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report orphans without deleting them")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "overall time limit")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, minAge time.Duration, dryRun bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		return err
	}
	defer pool.Close()

	filesDB, err := sqlite.Open(ctx, cfg.Files.SQLitePath)
	if err != nil {
		logger.Error("open file metadata", slog.String("error", err.Error()))
		return err
	}
	defer filesDB.Close()

	files, err := filestore.New(logger, cfg.Files.Dir, sqlite.NewFileRepo(filesDB), cfg.Files.CacheTTL)
	if err != nil {
		return err
	}

	s := &sweeper{
		files:     files,
		referrers: []referrer{source.New(pool), ontology.New(pool)},
		log:       logger,
		dryRun:    dryRun,
		minAge:    minAge,
		now:       time.Now,
	}

	report, err := s.sweep(ctx)
	if err != nil {
		logger.Error("cleanup failed", slog.String("error", err.Error()))
		return err
	}

	logger.Info("cleanup completed",
		slog.Int("scanned", report.Scanned),
		slog.Int("orphans", report.Orphans),
		slog.Int("deleted", report.Deleted),
		slog.Bool("dry_run", dryRun),
	)
	return nil
}
