// Package mapping implements the Mapping repository using PostgreSQL.
// A mapping is one row in mappings plus its history in mapping_snapshots,
// ordered by position. Save replaces the whole history under the version token.
package mapping

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/ontomap-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ontomap-backend/internal/domain"
)

const (
	table         = "mappings"
	snapshotTable = "mapping_snapshots"
)

var columns = []string{"id", "name", "source_id", "current_snapshot_id", "version", "created_at", "updated_at"}

// Repo provides mapping persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new mapping repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a mapping with its full history.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Mapping, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get mapping: %w", err)
	}

	m, err := scanMapping(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, domain.KindMapping, id)
	}

	histories, err := r.loadHistories(ctx, q, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	m.History = histories[id]

	return m, nil
}

// GetByIDs returns mappings with history for the given ids in no particular order.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Mapping, error) {
	if len(ids) == 0 {
		return []*domain.Mapping{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.Query(ctx, q, postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"id": ids}))
	if err != nil {
		return nil, fmt.Errorf("get mappings by ids: %w", err)
	}
	defer rows.Close()

	result := make([]*domain.Mapping, 0, len(ids))
	for rows.Next() {
		m, err := scanMapping(rows)
		if err != nil {
			return nil, fmt.Errorf("scan mapping: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get mappings by ids: %w", err)
	}
	rows.Close()

	histories, err := r.loadHistories(ctx, q, ids)
	if err != nil {
		return nil, err
	}
	for _, m := range result {
		m.History = histories[m.ID]
	}

	return result, nil
}

func (r *Repo) loadHistories(ctx context.Context, q postgres.Querier, ids []uuid.UUID) (map[uuid.UUID][]domain.MappingGraph, error) {
	rows, err := postgres.Query(ctx, q,
		postgres.Builder.
			Select("mapping_id", "graph").
			From(snapshotTable).
			Where(sq.Eq{"mapping_id": ids}).
			OrderBy("mapping_id", "position"),
	)
	if err != nil {
		return nil, fmt.Errorf("load snapshots: %w", err)
	}
	defer rows.Close()

	histories := make(map[uuid.UUID][]domain.MappingGraph, len(ids))
	for rows.Next() {
		var (
			mappingID uuid.UUID
			data      []byte
		)
		if err := rows.Scan(&mappingID, &data); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		g, err := decodeGraph(data)
		if err != nil {
			return nil, fmt.Errorf("mapping %s: %w", mappingID, err)
		}
		histories[mappingID] = append(histories[mappingID], g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load snapshots: %w", err)
	}

	return histories, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new mapping with its history and sets its version to 1.
// Must run inside TxManager.RunInTx so the row and its snapshots commit together.
func (r *Repo) Create(ctx context.Context, m *domain.Mapping) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(m.ID, m.Name, m.SourceID, m.CurrentID, 1, m.CreatedAt, m.UpdatedAt)
	if _, err := postgres.Exec(ctx, q, stmt); err != nil {
		return postgres.MapError(err, domain.KindMapping, m.ID)
	}

	if err := insertHistory(ctx, q, m); err != nil {
		return err
	}

	m.Version = 1
	return nil
}

// Save replaces the mapping row and its whole history if the stored version
// still equals m.Version, then increments m.Version.
// Must run inside TxManager.RunInTx.
func (r *Repo) Save(ctx context.Context, m *domain.Mapping) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder.
		Update(table).
		Set("name", m.Name).
		Set("current_snapshot_id", m.CurrentID).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", m.UpdatedAt).
		Where(sq.Eq{"id": m.ID, "version": m.Version})

	tag, err := postgres.Exec(ctx, q, stmt)
	if err != nil {
		return postgres.MapError(err, domain.KindMapping, m.ID)
	}
	if err := postgres.CheckVersion(ctx, q, table, domain.KindMapping, m.ID, m.Version, tag); err != nil {
		return err
	}

	if _, err := postgres.Exec(ctx, q, postgres.Builder.Delete(snapshotTable).Where(sq.Eq{"mapping_id": m.ID})); err != nil {
		return postgres.MapError(err, domain.KindMapping, m.ID)
	}
	if err := insertHistory(ctx, q, m); err != nil {
		return err
	}

	m.Version++
	return nil
}

// Delete removes a mapping and its snapshots. The source is removed by the caller.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := postgres.Exec(ctx, q, postgres.Builder.Delete(snapshotTable).Where(sq.Eq{"mapping_id": id})); err != nil {
		return postgres.MapError(err, domain.KindMapping, id)
	}

	tag, err := postgres.Exec(ctx, q, postgres.Builder.Delete(table).Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, domain.KindMapping, id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound(domain.KindMapping, id)
	}
	return nil
}

func insertHistory(ctx context.Context, q postgres.Querier, m *domain.Mapping) error {
	if len(m.History) == 0 {
		return nil
	}

	insert := postgres.Builder.
		Insert(snapshotTable).
		Columns("id", "mapping_id", "position", "graph", "created_at")

	for i, g := range m.History {
		data, err := encodeGraph(g)
		if err != nil {
			return err
		}
		insert = insert.Values(g.ID, m.ID, i, data, g.CreatedAt)
	}

	if _, err := postgres.Exec(ctx, q, insert); err != nil {
		return postgres.MapError(err, domain.KindSnapshot, m.ID)
	}
	return nil
}

func scanMapping(row pgx.Row) (*domain.Mapping, error) {
	var m domain.Mapping
	if err := row.Scan(&m.ID, &m.Name, &m.SourceID, &m.CurrentID, &m.Version, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	m.CreatedAt = m.CreatedAt.UTC()
	m.UpdatedAt = m.UpdatedAt.UTC()
	return &m, nil
}
