package workspace

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/ontomap-backend/internal/domain"
)

// SourceContent returns the stored bytes of a source of the workspace.
func (s *Service) SourceContent(ctx context.Context, workspaceID, sourceID uuid.UUID) ([]byte, error) {
	var content []byte
	err := s.run(ctx, opSourceContent, func(ctx context.Context) error {
		w, err := s.load(ctx, workspaceID)
		if err != nil {
			return err
		}
		if !w.HasSource(sourceID) {
			return domain.NewNotFound(domain.KindSource, sourceID)
		}
		content, err = s.sources.Content(ctx, sourceID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("source content: %w", err)
	}
	return content, nil
}

// OntologyContent returns the stored document of an ontology of the workspace.
func (s *Service) OntologyContent(ctx context.Context, workspaceID, ontologyID uuid.UUID) ([]byte, error) {
	var content []byte
	err := s.run(ctx, opOntologyContent, func(ctx context.Context) error {
		w, err := s.load(ctx, workspaceID)
		if err != nil {
			return err
		}
		if !w.HasOntology(ontologyID) {
			return domain.NewNotFound(domain.KindOntology, ontologyID)
		}
		content, err = s.ontologies.Content(ctx, ontologyID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("ontology content: %w", err)
	}
	return content, nil
}
