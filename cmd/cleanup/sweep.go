package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

type fileLister interface {
	ListIDs(ctx context.Context, cutoff time.Time) ([]string, error)
	Delete(ctx context.Context, id string) error
}

// referrer lists the file ids an entity table still points at.
type referrer interface {
	ListFileIDs(ctx context.Context) ([]string, error)
}

type sweeper struct {
	files     fileLister
	referrers []referrer
	log       *slog.Logger
	dryRun    bool
	minAge    time.Duration
	now       func() time.Time
}

type sweepReport struct {
	Scanned int
	Orphans int
	Deleted int
}

// sweep deletes every file older than minAge that no referrer lists.
// A failed delete is logged and the sweep continues.
func (s *sweeper) sweep(ctx context.Context) (sweepReport, error) {
	var report sweepReport

	candidates, err := s.files.ListIDs(ctx, s.now().Add(-s.minAge))
	if err != nil {
		return report, fmt.Errorf("list files: %w", err)
	}
	report.Scanned = len(candidates)

	referenced := make(map[string]struct{})
	for _, r := range s.referrers {
		ids, err := r.ListFileIDs(ctx)
		if err != nil {
			return report, fmt.Errorf("list referenced files: %w", err)
		}
		for _, id := range ids {
			referenced[id] = struct{}{}
		}
	}

	for _, id := range candidates {
		if _, ok := referenced[id]; ok {
			continue
		}
		report.Orphans++
		if s.dryRun {
			s.log.InfoContext(ctx, "orphan file", slog.String("file_id", id))
			continue
		}
		if err := s.files.Delete(ctx, id); err != nil {
			s.log.WarnContext(ctx, "delete orphan file",
				slog.String("file_id", id), slog.String("error", err.Error()))
			continue
		}
		report.Deleted++
	}

	return report, nil
}
