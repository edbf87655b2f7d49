// Package prefix is the Prefix registry. It validates and persists
// prefix/namespace pairs; workspace-scoped uniqueness and the
// blocked-while-referenced rule belong to the workspace coordinator.
package prefix

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/ontomap-backend/internal/domain"
)

type prefixRepo interface {
	Create(ctx context.Context, p *domain.Prefix) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Prefix, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Prefix, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service provides prefix registry operations.
type Service struct {
	prefixes prefixRepo
	log      *slog.Logger
}

// NewService creates a new Prefix service.
func NewService(log *slog.Logger, prefixes prefixRepo) *Service {
	return &Service{
		prefixes: prefixes,
		log:      log.With("service", "prefix"),
	}
}
