package mapping

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/ontomap-backend/internal/domain"
)

const maxNameLength = 200

// Create persists a new mapping for sourceID holding a single empty snapshot.
func (s *Service) Create(ctx context.Context, name string, sourceID uuid.UUID) (*domain.Mapping, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}

	m := domain.NewMapping(name, sourceID, s.now())
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.mappings.Create(ctx, m)
	})
	if err != nil {
		return nil, fmt.Errorf("create mapping: %w", err)
	}

	s.log.InfoContext(ctx, "mapping created",
		slog.String("mapping_id", m.ID.String()),
		slog.String("source_id", sourceID.String()),
	)
	return m, nil
}

// Get returns a mapping with its full history.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Mapping, error) {
	m, err := s.mappings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get mapping: %w", err)
	}
	return m, nil
}

// GetByIDs returns mappings in the order of ids. A missing id is a NotFoundError.
func (s *Service) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Mapping, error) {
	found, err := s.mappings.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get mappings: %w", err)
	}
	return domain.OrderByIDs(ids, found, domain.KindMapping, func(m *domain.Mapping) uuid.UUID { return m.ID })
}

// AppendSnapshot validates g and appends it as the new current snapshot.
// The oldest snapshot is evicted once history exceeds domain.MaxMappingHistory.
func (s *Service) AppendSnapshot(ctx context.Context, id uuid.UUID, g domain.MappingGraph) (*domain.Mapping, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	var m *domain.Mapping
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		m, err = s.mappings.GetByID(ctx, id)
		if err != nil {
			return err
		}
		m.Append(g, s.now())
		return s.mappings.Save(ctx, m)
	})
	if err != nil {
		return nil, fmt.Errorf("append snapshot: %w", err)
	}

	s.log.InfoContext(ctx, "mapping snapshot appended",
		slog.String("mapping_id", id.String()),
		slog.String("snapshot_id", m.CurrentID.String()),
		slog.Int("history", len(m.History)),
	)
	return m, nil
}

// Revert makes snapshotID current and drops every later snapshot.
func (s *Service) Revert(ctx context.Context, id, snapshotID uuid.UUID) (*domain.Mapping, error) {
	var m *domain.Mapping
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		m, err = s.mappings.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := m.Revert(snapshotID, s.now()); err != nil {
			return err
		}
		return s.mappings.Save(ctx, m)
	})
	if err != nil {
		return nil, fmt.Errorf("revert mapping: %w", err)
	}

	s.log.InfoContext(ctx, "mapping reverted",
		slog.String("mapping_id", id.String()),
		slog.String("snapshot_id", snapshotID.String()),
		slog.Int("history", len(m.History)),
	)
	return m, nil
}

// Delete removes a mapping and its history.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.mappings.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("delete mapping: %w", err)
	}

	s.log.InfoContext(ctx, "mapping deleted", slog.String("mapping_id", id.String()))
	return nil
}

func validateName(name string) error {
	if name == "" {
		return domain.NewValidationError("name", "required")
	}
	if len(name) > maxNameLength {
		return domain.NewValidationError("name", fmt.Sprintf("max %d characters", maxNameLength))
	}
	return nil
}
