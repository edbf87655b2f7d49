package workspace

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/ontomap-backend/internal/domain"
)

// AddOntology uploads an ontology bound to prefixID, which must belong to the
// workspace and must not be bound to another ontology.
func (s *Service) AddOntology(ctx context.Context, workspaceID uuid.UUID, upload domain.OntologyUpload, prefixID uuid.UUID) (*domain.Workspace, *domain.Ontology, error) {
	var (
		w        *domain.Workspace
		o        *domain.Ontology
		uploaded string
	)
	err := s.run(ctx, opAddOntology, func(ctx context.Context) error {
		var err error
		if w, err = s.load(ctx, workspaceID); err != nil {
			return err
		}
		if err := s.ensurePrefixFree(ctx, w, prefixID, uuid.Nil); err != nil {
			return err
		}

		if o, err = s.ontologies.Upload(ctx, upload, prefixID); err != nil {
			return err
		}
		uploaded = o.FileID

		w.AddOntology(o.ID)
		return s.save(ctx, w)
	})
	if err != nil {
		s.removeFiles(ctx, uploaded)
		return nil, nil, fmt.Errorf("add ontology: %w", err)
	}

	s.log.InfoContext(ctx, "ontology added",
		slog.String("workspace_id", workspaceID.String()),
		slog.String("ontology_id", o.ID.String()),
		slog.String("prefix_id", prefixID.String()),
	)
	return w, o, nil
}

// RemoveOntology deletes the ontology. Its prefix stays in the workspace.
func (s *Service) RemoveOntology(ctx context.Context, workspaceID, ontologyID uuid.UUID) (*domain.Workspace, error) {
	var (
		w      *domain.Workspace
		fileID string
	)
	err := s.run(ctx, opRemoveOntology, func(ctx context.Context) error {
		var err error
		if w, err = s.load(ctx, workspaceID); err != nil {
			return err
		}
		if !w.HasOntology(ontologyID) {
			return domain.NewNotFound(domain.KindOntology, ontologyID)
		}

		o, err := s.ontologies.Delete(ctx, ontologyID)
		if err != nil {
			return err
		}
		fileID = o.FileID

		w.RemoveOntology(ontologyID)
		return s.save(ctx, w)
	})
	if err != nil {
		return nil, fmt.Errorf("remove ontology: %w", err)
	}

	s.removeFiles(ctx, fileID)
	s.log.InfoContext(ctx, "ontology removed",
		slog.String("workspace_id", workspaceID.String()),
		slog.String("ontology_id", ontologyID.String()),
	)
	return w, nil
}

// ReassignOntologyPrefix binds the ontology to newPrefixID. Rebinding to the
// prefix it already uses changes nothing.
func (s *Service) ReassignOntologyPrefix(ctx context.Context, workspaceID, ontologyID, newPrefixID uuid.UUID) (*domain.Workspace, *domain.Ontology, error) {
	var (
		w *domain.Workspace
		o *domain.Ontology
	)
	err := s.run(ctx, opReassignPrefix, func(ctx context.Context) error {
		var err error
		if w, err = s.load(ctx, workspaceID); err != nil {
			return err
		}
		if !w.HasOntology(ontologyID) {
			return domain.NewNotFound(domain.KindOntology, ontologyID)
		}
		if err := s.ensurePrefixFree(ctx, w, newPrefixID, ontologyID); err != nil {
			return err
		}

		found, err := s.ontologies.GetByIDs(ctx, []uuid.UUID{ontologyID})
		if err != nil {
			return err
		}
		if o = found[0]; o.PrefixID == newPrefixID {
			return nil
		}

		if o, err = s.ontologies.RebindPrefix(ctx, ontologyID, newPrefixID); err != nil {
			return err
		}
		return s.save(ctx, w)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("reassign ontology prefix: %w", err)
	}

	s.log.InfoContext(ctx, "ontology prefix reassigned",
		slog.String("workspace_id", workspaceID.String()),
		slog.String("ontology_id", ontologyID.String()),
		slog.String("prefix_id", newPrefixID.String()),
	)
	return w, o, nil
}

// ensurePrefixFree checks that prefixID belongs to w and that no ontology
// other than except is bound to it.
func (s *Service) ensurePrefixFree(ctx context.Context, w *domain.Workspace, prefixID, except uuid.UUID) error {
	if !w.HasPrefix(prefixID) {
		return domain.NewNotFound(domain.KindPrefix, prefixID)
	}

	ontologies, err := s.ontologies.GetByIDs(ctx, w.OntologyIDs)
	if err != nil {
		return err
	}
	o := boundTo(ontologies, prefixID, except)
	if o == nil {
		return nil
	}

	p, err := s.prefix(ctx, prefixID)
	if err != nil {
		return err
	}
	return &domain.PrefixAlreadyBoundError{PrefixID: prefixID, Prefix: p.Prefix, OntologyName: o.Name}
}
