// Package prefix implements the Prefix repository using PostgreSQL.
// Uniqueness of prefix and uri is scoped to a workspace and enforced by the
// workspace coordinator; the table carries no unique constraints.
package prefix

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

const table = "prefixes"

var columns = []string{"id", "prefix", "uri", "created_at"}

// Repo provides prefix persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new prefix repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a prefix by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Prefix, error) {
	query, args, err := postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get prefix: %w", err)
	}

	p, err := scanPrefix(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, domain.KindPrefix, id)
	}
	return p, nil
}

// GetByIDs returns the prefixes with the given ids in no particular order.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Prefix, error) {
	if len(ids) == 0 {
		return []*domain.Prefix{}, nil
	}

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool),
		postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"id": ids}),
	)
	if err != nil {
		return nil, fmt.Errorf("get prefixes by ids: %w", err)
	}
	defer rows.Close()

	result := make([]*domain.Prefix, 0, len(ids))
	for rows.Next() {
		p, err := scanPrefix(rows)
		if err != nil {
			return nil, fmt.Errorf("scan prefix: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get prefixes by ids: %w", err)
	}
	return result, nil
}

// Create inserts a new prefix.
func (r *Repo) Create(ctx context.Context, p *domain.Prefix) error {
	stmt := postgres.Builder.Insert(table).Columns(columns...).Values(p.ID, p.Prefix, p.URI, p.CreatedAt)
	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), stmt); err != nil {
		return postgres.MapError(err, domain.KindPrefix, p.ID)
	}
	return nil
}

// Delete removes a prefix. Returns a domain.NotFoundError when absent.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool),
		postgres.Builder.Delete(table).Where(sq.Eq{"id": id}),
	)
	if err != nil {
		return postgres.MapError(err, domain.KindPrefix, id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound(domain.KindPrefix, id)
	}
	return nil
}

func scanPrefix(row pgx.Row) (*domain.Prefix, error) {
	var p domain.Prefix
	if err := row.Scan(&p.ID, &p.Prefix, &p.URI, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.CreatedAt = p.CreatedAt.UTC()
	return &p, nil
}
