package workspace

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/ontomap-backend/internal/domain"
	"github.com/heartmarshall/ontomap-backend/internal/service/prefix"
)

// AddPrefix creates a prefix in the workspace. Both the prefix token and the
// namespace URI must be unique among the workspace's prefixes; the token is
// checked first.
func (s *Service) AddPrefix(ctx context.Context, workspaceID uuid.UUID, input prefix.CreatePrefixInput) (*domain.Workspace, *domain.Prefix, error) {
	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, nil, err
	}

	var (
		w *domain.Workspace
		p *domain.Prefix
	)
	err := s.run(ctx, opAddPrefix, func(ctx context.Context) error {
		var err error
		if w, err = s.load(ctx, workspaceID); err != nil {
			return err
		}

		existing, err := s.prefixes.GetByIDs(ctx, w.PrefixIDs)
		if err != nil {
			return err
		}
		if err := checkUnique(existing, input); err != nil {
			return err
		}

		if p, err = s.prefixes.Create(ctx, input); err != nil {
			return err
		}
		w.AddPrefix(p.ID)
		return s.save(ctx, w)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("add prefix: %w", err)
	}

	s.log.InfoContext(ctx, "prefix added",
		slog.String("workspace_id", workspaceID.String()),
		slog.String("prefix_id", p.ID.String()),
		slog.String("prefix", p.Prefix),
	)
	return w, p, nil
}

// RemovePrefix deletes an unreferenced prefix. A prefix bound to an ontology
// fails with PrefixInUseError naming that ontology.
func (s *Service) RemovePrefix(ctx context.Context, workspaceID, prefixID uuid.UUID) (*domain.Workspace, error) {
	var w *domain.Workspace
	err := s.run(ctx, opRemovePrefix, func(ctx context.Context) error {
		var err error
		if w, err = s.load(ctx, workspaceID); err != nil {
			return err
		}
		if !w.HasPrefix(prefixID) {
			return domain.NewNotFound(domain.KindPrefix, prefixID)
		}

		ontologies, err := s.ontologies.GetByIDs(ctx, w.OntologyIDs)
		if err != nil {
			return err
		}
		if o := boundTo(ontologies, prefixID, uuid.Nil); o != nil {
			p, err := s.prefix(ctx, prefixID)
			if err != nil {
				return err
			}
			return &domain.PrefixInUseError{PrefixID: prefixID, Prefix: p.Prefix, OntologyName: o.Name}
		}

		if err := s.prefixes.Delete(ctx, prefixID); err != nil {
			return err
		}
		w.RemovePrefix(prefixID)
		return s.save(ctx, w)
	})
	if err != nil {
		return nil, fmt.Errorf("remove prefix: %w", err)
	}

	s.log.InfoContext(ctx, "prefix removed",
		slog.String("workspace_id", workspaceID.String()),
		slog.String("prefix_id", prefixID.String()),
	)
	return w, nil
}

// ListUnassignedPrefixes returns the workspace's prefixes no ontology is bound
// to, in workspace order.
func (s *Service) ListUnassignedPrefixes(ctx context.Context, workspaceID uuid.UUID) ([]*domain.Prefix, error) {
	var unassigned []*domain.Prefix
	err := s.run(ctx, opUnassignedPrefixes, func(ctx context.Context) error {
		w, err := s.load(ctx, workspaceID)
		if err != nil {
			return err
		}

		prefixes, err := s.prefixes.GetByIDs(ctx, w.PrefixIDs)
		if err != nil {
			return err
		}
		ontologies, err := s.ontologies.GetByIDs(ctx, w.OntologyIDs)
		if err != nil {
			return err
		}

		bound := make(map[uuid.UUID]struct{}, len(ontologies))
		for _, o := range ontologies {
			bound[o.PrefixID] = struct{}{}
		}
		unassigned = make([]*domain.Prefix, 0, len(prefixes))
		for _, p := range prefixes {
			if _, ok := bound[p.ID]; !ok {
				unassigned = append(unassigned, p)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list unassigned prefixes: %w", err)
	}
	return unassigned, nil
}

func (s *Service) prefix(ctx context.Context, id uuid.UUID) (*domain.Prefix, error) {
	found, err := s.prefixes.GetByIDs(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	return found[0], nil
}

func checkUnique(existing []*domain.Prefix, input prefix.CreatePrefixInput) error {
	for _, p := range existing {
		if p.Prefix == input.Prefix {
			return &domain.DuplicateConstraintError{Field: "prefix", Value: input.Prefix}
		}
	}
	for _, p := range existing {
		if p.URI == input.URI {
			return &domain.DuplicateConstraintError{Field: "uri", Value: input.URI}
		}
	}
	return nil
}

// boundTo returns the ontology bound to prefixID, ignoring the ontology except.
func boundTo(ontologies []*domain.Ontology, prefixID, except uuid.UUID) *domain.Ontology {
	for _, o := range ontologies {
		if o.PrefixID == prefixID && o.ID != except {
			return o
		}
	}
	return nil
}
