package workspace

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/ontomap-backend/internal/domain"
)

// WorkspaceDetails is a workspace joined with every entity it references.
type WorkspaceDetails struct {
	Workspace  *domain.Workspace
	Sources    []*domain.Source
	Mappings   []*domain.Mapping
	Ontologies []*domain.Ontology
	Prefixes   []*domain.Prefix
}

// CreateWorkspace creates an empty workspace.
func (s *Service) CreateWorkspace(ctx context.Context, input CreateWorkspaceInput) (*domain.Workspace, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	w := domain.NewWorkspace(strings.TrimSpace(input.Name), strings.TrimSpace(input.Description), s.now())
	err := s.run(ctx, opCreateWorkspace, func(ctx context.Context) error {
		return s.workspaces.Create(ctx, w)
	})
	if err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}

	s.log.InfoContext(ctx, "workspace created", slog.String("workspace_id", w.ID.String()))
	return w, nil
}

// GetWorkspace returns a workspace without joining its entities.
func (s *Service) GetWorkspace(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	var w *domain.Workspace
	err := s.run(ctx, opGetWorkspace, func(ctx context.Context) error {
		var err error
		w, err = s.load(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

// ListWorkspaces returns all workspaces, newest first.
func (s *Service) ListWorkspaces(ctx context.Context) ([]*domain.Workspace, error) {
	var list []*domain.Workspace
	err := s.run(ctx, opListWorkspaces, func(ctx context.Context) error {
		var err error
		list, err = s.workspaces.List(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	return list, nil
}

// GetWorkspaceDetails loads a workspace and every entity it references.
// A dangling reference fails with NotFound naming the missing entity.
func (s *Service) GetWorkspaceDetails(ctx context.Context, id uuid.UUID) (*WorkspaceDetails, error) {
	var d WorkspaceDetails
	err := s.run(ctx, opWorkspaceDetails, func(ctx context.Context) error {
		w, err := s.load(ctx, id)
		if err != nil {
			return err
		}
		d.Workspace = w

		if d.Sources, err = s.sources.GetByIDs(ctx, w.SourceIDs); err != nil {
			return err
		}
		if d.Mappings, err = s.mappings.GetByIDs(ctx, w.MappingIDs); err != nil {
			return err
		}
		if d.Ontologies, err = s.ontologies.GetByIDs(ctx, w.OntologyIDs); err != nil {
			return err
		}
		d.Prefixes, err = s.prefixes.GetByIDs(ctx, w.PrefixIDs)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("workspace details: %w", err)
	}
	return &d, nil
}

// UpdateWorkspace changes the name and/or description.
func (s *Service) UpdateWorkspace(ctx context.Context, id uuid.UUID, input UpdateWorkspaceInput) (*domain.Workspace, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var w *domain.Workspace
	err := s.run(ctx, opUpdateWorkspace, func(ctx context.Context) error {
		var err error
		w, err = s.load(ctx, id)
		if err != nil {
			return err
		}
		if input.Name != nil {
			w.Name = strings.TrimSpace(*input.Name)
		}
		if input.Description != nil {
			w.Description = strings.TrimSpace(*input.Description)
		}
		return s.save(ctx, w)
	})
	if err != nil {
		return nil, fmt.Errorf("update workspace: %w", err)
	}

	s.log.InfoContext(ctx, "workspace updated", slog.String("workspace_id", id.String()))
	return w, nil
}

// DeleteWorkspace removes the workspace with its mappings, sources,
// ontologies and prefixes. Stored files are removed after commit.
func (s *Service) DeleteWorkspace(ctx context.Context, id uuid.UUID) error {
	var fileIDs []string
	err := s.run(ctx, opDeleteWorkspace, func(ctx context.Context) error {
		w, err := s.load(ctx, id)
		if err != nil {
			return err
		}

		for _, mid := range w.MappingIDs {
			if err := s.skipMissing(ctx, s.mappings.Delete(ctx, mid)); err != nil {
				return err
			}
		}
		for _, sid := range w.SourceIDs {
			src, err := s.sources.Delete(ctx, sid)
			if err := s.skipMissing(ctx, err); err != nil {
				return err
			}
			if src != nil {
				fileIDs = append(fileIDs, src.FileID)
			}
		}
		for _, oid := range w.OntologyIDs {
			o, err := s.ontologies.Delete(ctx, oid)
			if err := s.skipMissing(ctx, err); err != nil {
				return err
			}
			if o != nil {
				fileIDs = append(fileIDs, o.FileID)
			}
		}
		for _, pid := range w.PrefixIDs {
			if err := s.skipMissing(ctx, s.prefixes.Delete(ctx, pid)); err != nil {
				return err
			}
		}

		return s.workspaces.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("delete workspace: %w", err)
	}

	s.removeFiles(ctx, fileIDs...)
	s.log.InfoContext(ctx, "workspace deleted",
		slog.String("workspace_id", id.String()),
		slog.Int("files", len(fileIDs)),
	)
	return nil
}

// skipMissing treats an already deleted sub-entity as done.
func (s *Service) skipMissing(ctx context.Context, err error) error {
	if err == nil || !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	s.log.WarnContext(ctx, "cascade skipped missing entity", slog.String("error", err.Error()))
	return nil
}
