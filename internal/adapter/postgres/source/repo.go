// Package source implements the Source repository using PostgreSQL.
// Sources are immutable: the repository offers insert, reads and delete only.
package source

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/ontomap-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ontomap-backend/internal/domain"
)

const table = "sources"

var columns = []string{
	"id", "name", "description", "file_name", "file_extension", "json_path",
	"file_id", "hash", "location", "created_at",
}

// Repo provides source persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new source repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a source by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Source, error) {
	query, args, err := postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get source: %w", err)
	}

	s, err := scanSource(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, domain.KindSource, id)
	}
	return s, nil
}

// GetByIDs returns the sources with the given ids in no particular order.
// Missing ids are skipped; the caller decides whether that is an error.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Source, error) {
	if len(ids) == 0 {
		return []*domain.Source{}, nil
	}

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool),
		postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"id": ids}),
	)
	if err != nil {
		return nil, fmt.Errorf("get sources by ids: %w", err)
	}
	defer rows.Close()

	result := make([]*domain.Source, 0, len(ids))
	for rows.Next() {
		s, err := scanSource(rows)
		if err != nil {
			return nil, fmt.Errorf("scan source: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get sources by ids: %w", err)
	}
	return result, nil
}

// ListFileIDs returns the file ids referenced by any source.
func (r *Repo) ListFileIDs(ctx context.Context) ([]string, error) {
	return postgres.CollectFileIDs(ctx, postgres.QuerierFromCtx(ctx, r.pool), table)
}

// Create inserts a new source.
func (r *Repo) Create(ctx context.Context, s *domain.Source) error {
	stmt := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(s.ID, s.Name, s.Description, s.FileName, s.FileExtension, nullableText(s.JSONPath),
			s.FileID, s.Hash, s.Location, s.CreatedAt)

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), stmt); err != nil {
		return postgres.MapError(err, domain.KindSource, s.ID)
	}
	return nil
}

// Delete removes a source row. Returns a domain.NotFoundError when absent.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool),
		postgres.Builder.Delete(table).Where(sq.Eq{"id": id}),
	)
	if err != nil {
		return postgres.MapError(err, domain.KindSource, id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound(domain.KindSource, id)
	}
	return nil
}

func scanSource(row pgx.Row) (*domain.Source, error) {
	var (
		s        domain.Source
		jsonPath pgtype.Text
	)

	err := row.Scan(&s.ID, &s.Name, &s.Description, &s.FileName, &s.FileExtension, &jsonPath,
		&s.FileID, &s.Hash, &s.Location, &s.CreatedAt)
	if err != nil {
		return nil, err
	}

	if jsonPath.Valid {
		s.JSONPath = jsonPath.String
	}
	s.CreatedAt = s.CreatedAt.UTC()
	return &s, nil
}

// nullableText converts an empty string to SQL NULL.
func nullableText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}
