// Package mapping stores mappings and their bounded, linear snapshot history.
// History rules live on domain.Mapping; this package loads, mutates and saves
// with the mapping's version token.
package mapping

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ontomap-backend/internal/domain"
)

// mappingRepo defines the mapping persistence needed by the mapping service.
type mappingRepo interface {
	Create(ctx context.Context, m *domain.Mapping) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Mapping, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Mapping, error)
	Save(ctx context.Context, m *domain.Mapping) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// txManager defines the transaction manager interface needed by mapping service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the mapping version store.
type Service struct {
	log      *slog.Logger
	mappings mappingRepo
	tx       txManager
	now      func() time.Time
}

// NewService creates a new mapping service instance.
func NewService(logger *slog.Logger, mappings mappingRepo, tx txManager) *Service {
	return &Service{
		log:      logger.With("service", "mapping"),
		mappings: mappings,
		tx:       tx,
		now:      func() time.Time { return time.Now().UTC() },
	}
}
