// Package source is the Source registry: it owns uploaded data-source
// metadata. Sources are immutable after creation and are removed only
// together with their owning mapping.
package source

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/ontomap-backend/internal/domain"
)

type sourceRepo interface {
	Create(ctx context.Context, s *domain.Source) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Source, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Source, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type fileStore interface {
	Store(ctx context.Context, content []byte, name string) (*domain.FileMetadata, error)
	Fetch(ctx context.Context, id string) ([]byte, error)
	Delete(ctx context.Context, id string) error
}

// Service provides source registry operations.
type Service struct {
	sources sourceRepo
	files   fileStore
	log     *slog.Logger
}

// NewService creates a new Source service.
func NewService(log *slog.Logger, sources sourceRepo, files fileStore) *Service {
	return &Service{
		sources: sources,
		files:   files,
		log:     log.With("service", "source"),
	}
}
