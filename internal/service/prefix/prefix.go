package prefix

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ontomap-backend/internal/domain"
)

// Create validates and persists a new prefix.
func (s *Service) Create(ctx context.Context, input CreatePrefixInput) (*domain.Prefix, error) {
	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p := &domain.Prefix{
		ID:        uuid.New(),
		Prefix:    input.Prefix,
		URI:       input.URI,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.prefixes.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create prefix: %w", err)
	}

	s.log.InfoContext(ctx, "prefix created",
		slog.String("prefix_id", p.ID.String()),
		slog.String("prefix", p.Prefix),
		slog.String("uri", p.URI),
	)
	return p, nil
}

// Get returns a prefix by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Prefix, error) {
	p, err := s.prefixes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get prefix: %w", err)
	}
	return p, nil
}

// GetByIDs returns prefixes in the order of ids. A missing id is a NotFoundError.
func (s *Service) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Prefix, error) {
	found, err := s.prefixes.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get prefixes: %w", err)
	}
	return domain.OrderByIDs(ids, found, domain.KindPrefix, func(p *domain.Prefix) uuid.UUID { return p.ID })
}

// Delete removes a prefix unconditionally.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.prefixes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete prefix: %w", err)
	}
	s.log.InfoContext(ctx, "prefix deleted", slog.String("prefix_id", id.String()))
	return nil
}
