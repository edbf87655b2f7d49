package workspace

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/ontomap-backend/internal/domain"
)

// AddMapping uploads the source, creates a mapping owning it and appends both
// to the workspace. The stored file is deleted again if anything fails.
func (s *Service) AddMapping(ctx context.Context, workspaceID uuid.UUID, input AddMappingInput) (*domain.Workspace, *domain.Mapping, error) {
	if err := input.Validate(); err != nil {
		return nil, nil, err
	}

	var (
		w        *domain.Workspace
		m        *domain.Mapping
		uploaded string
	)
	err := s.run(ctx, opAddMapping, func(ctx context.Context) error {
		var err error
		if w, err = s.load(ctx, workspaceID); err != nil {
			return err
		}

		src, err := s.sources.Create(ctx, input.Source)
		if err != nil {
			return err
		}
		uploaded = src.FileID

		if m, err = s.mappings.Create(ctx, input.Name, src.ID); err != nil {
			return err
		}

		w.AddMapping(m.ID, src.ID)
		w.SetMappingURIPatterns(m.ID, m.Current().URIPatterns())
		return s.save(ctx, w)
	})
	if err != nil {
		s.removeFiles(ctx, uploaded)
		return nil, nil, fmt.Errorf("add mapping: %w", err)
	}

	s.log.InfoContext(ctx, "mapping added",
		slog.String("workspace_id", workspaceID.String()),
		slog.String("mapping_id", m.ID.String()),
		slog.String("source_id", m.SourceID.String()),
	)
	return w, m, nil
}

// RemoveMapping deletes the mapping and its source, drops its URI patterns
// and re-derives the workspace union set.
func (s *Service) RemoveMapping(ctx context.Context, workspaceID, mappingID uuid.UUID) (*domain.Workspace, error) {
	var (
		w      *domain.Workspace
		fileID string
	)
	err := s.run(ctx, opRemoveMapping, func(ctx context.Context) error {
		var err error
		if w, err = s.load(ctx, workspaceID); err != nil {
			return err
		}
		if !w.HasMapping(mappingID) {
			return domain.NewNotFound(domain.KindMapping, mappingID)
		}

		m, err := s.mappings.Get(ctx, mappingID)
		if err := s.skipMissing(ctx, err); err != nil {
			return err
		}
		if m == nil {
			// Row already gone: unlink the dangling reference. Its source is unknown.
			w.RemoveMapping(mappingID, uuid.Nil)
			return s.save(ctx, w)
		}
		src, err := s.sources.Delete(ctx, m.SourceID)
		if err := s.skipMissing(ctx, err); err != nil {
			return err
		}
		if src != nil {
			fileID = src.FileID
		}
		if err := s.mappings.Delete(ctx, mappingID); err != nil {
			return err
		}

		w.RemoveMapping(mappingID, m.SourceID)
		return s.save(ctx, w)
	})
	if err != nil {
		return nil, fmt.Errorf("remove mapping: %w", err)
	}

	s.removeFiles(ctx, fileID)
	s.log.InfoContext(ctx, "mapping removed",
		slog.String("workspace_id", workspaceID.String()),
		slog.String("mapping_id", mappingID.String()),
	)
	return w, nil
}

// GetMapping returns a mapping of the workspace with its history.
func (s *Service) GetMapping(ctx context.Context, workspaceID, mappingID uuid.UUID) (*domain.Mapping, error) {
	var m *domain.Mapping
	err := s.run(ctx, opGetMapping, func(ctx context.Context) error {
		w, err := s.load(ctx, workspaceID)
		if err != nil {
			return err
		}
		if !w.HasMapping(mappingID) {
			return domain.NewNotFound(domain.KindMapping, mappingID)
		}
		m, err = s.mappings.Get(ctx, mappingID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get mapping: %w", err)
	}
	return m, nil
}

// UpdateMappingGraph appends g to the mapping history, then replaces the
// mapping's URI-pattern list and re-derives the workspace union set.
func (s *Service) UpdateMappingGraph(ctx context.Context, workspaceID, mappingID uuid.UUID, g domain.MappingGraph) (*domain.Workspace, *domain.Mapping, error) {
	var (
		w *domain.Workspace
		m *domain.Mapping
	)
	err := s.run(ctx, opUpdateGraph, func(ctx context.Context) error {
		var err error
		if w, err = s.load(ctx, workspaceID); err != nil {
			return err
		}
		if !w.HasMapping(mappingID) {
			return domain.NewNotFound(domain.KindMapping, mappingID)
		}

		if m, err = s.mappings.AppendSnapshot(ctx, mappingID, g); err != nil {
			return err
		}

		w.SetMappingURIPatterns(mappingID, m.Current().URIPatterns())
		return s.save(ctx, w)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("update mapping graph: %w", err)
	}

	s.log.InfoContext(ctx, "mapping graph updated",
		slog.String("workspace_id", workspaceID.String()),
		slog.String("mapping_id", mappingID.String()),
		slog.String("snapshot_id", m.CurrentID.String()),
		slog.Int("uri_patterns", len(w.UsedURIPatterns)),
	)
	return w, m, nil
}

// RevertMapping makes snapshotID current, discarding later snapshots, and
// re-derives the URI-pattern index from the reverted graph.
func (s *Service) RevertMapping(ctx context.Context, workspaceID, mappingID, snapshotID uuid.UUID) (*domain.Workspace, *domain.Mapping, error) {
	var (
		w *domain.Workspace
		m *domain.Mapping
	)
	err := s.run(ctx, opRevertMapping, func(ctx context.Context) error {
		var err error
		if w, err = s.load(ctx, workspaceID); err != nil {
			return err
		}
		if !w.HasMapping(mappingID) {
			return domain.NewNotFound(domain.KindMapping, mappingID)
		}

		if m, err = s.mappings.Revert(ctx, mappingID, snapshotID); err != nil {
			return err
		}

		w.SetMappingURIPatterns(mappingID, m.Current().URIPatterns())
		return s.save(ctx, w)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("revert mapping: %w", err)
	}

	s.log.InfoContext(ctx, "mapping reverted",
		slog.String("workspace_id", workspaceID.String()),
		slog.String("mapping_id", mappingID.String()),
		slog.String("snapshot_id", snapshotID.String()),
	)
	return w, m, nil
}
