// Package ontology is the Ontology registry. Each ontology is bound to one
// prefix; the 1:1 binding across a workspace is checked by the workspace
// coordinator, which holds the sibling ontologies.
package ontology

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ontomap-backend/internal/domain"
)

type ontologyRepo interface {
	Create(ctx context.Context, o *domain.Ontology) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Ontology, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Ontology, error)
	UpdatePrefix(ctx context.Context, id, prefixID uuid.UUID, updatedAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type fileStore interface {
	Store(ctx context.Context, content []byte, name string) (*domain.FileMetadata, error)
	Fetch(ctx context.Context, id string) ([]byte, error)
	Delete(ctx context.Context, id string) error
}

type parser interface {
	Parse(content []byte, extension string) (domain.OntologyInfo, error)
}

// Service provides ontology registry operations.
type Service struct {
	ontologies ontologyRepo
	files      fileStore
	parser     parser
	log        *slog.Logger
}

// NewService creates a new Ontology service.
func NewService(log *slog.Logger, ontologies ontologyRepo, files fileStore, parser parser) *Service {
	return &Service{
		ontologies: ontologies,
		files:      files,
		parser:     parser,
		log:        log.With("service", "ontology"),
	}
}
