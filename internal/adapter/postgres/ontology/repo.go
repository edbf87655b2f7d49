// Package ontology implements the Ontology repository using PostgreSQL.
package ontology

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/ontomap-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ontomap-backend/internal/domain"
)

const table = "ontologies"

var columns = []string{
	"id", "name", "description", "file_name", "file_extension", "file_id", "hash", "prefix_id",
	"format", "triple_count", "class_count", "property_count", "created_at", "updated_at",
}

// Repo provides ontology persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new ontology repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an ontology by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Ontology, error) {
	query, args, err := postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get ontology: %w", err)
	}

	o, err := scanOntology(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, domain.KindOntology, id)
	}
	return o, nil
}

// GetByIDs returns the ontologies with the given ids in no particular order.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Ontology, error) {
	if len(ids) == 0 {
		return []*domain.Ontology{}, nil
	}

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool),
		postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"id": ids}),
	)
	if err != nil {
		return nil, fmt.Errorf("get ontologies by ids: %w", err)
	}
	defer rows.Close()

	result := make([]*domain.Ontology, 0, len(ids))
	for rows.Next() {
		o, err := scanOntology(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ontology: %w", err)
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get ontologies by ids: %w", err)
	}
	return result, nil
}

// ListFileIDs returns the file ids referenced by any ontology.
func (r *Repo) ListFileIDs(ctx context.Context) ([]string, error) {
	return postgres.CollectFileIDs(ctx, postgres.QuerierFromCtx(ctx, r.pool), table)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new ontology.
func (r *Repo) Create(ctx context.Context, o *domain.Ontology) error {
	stmt := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(o.ID, o.Name, o.Description, o.FileName, o.FileExtension, o.FileID, o.Hash, o.PrefixID,
			o.Info.Format, o.Info.TripleCount, o.Info.ClassCount, o.Info.PropertyCount, o.CreatedAt, o.UpdatedAt)

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), stmt); err != nil {
		return postgres.MapError(err, domain.KindOntology, o.ID)
	}
	return nil
}

// UpdatePrefix rebinds the ontology to prefixID.
func (r *Repo) UpdatePrefix(ctx context.Context, id, prefixID uuid.UUID, updatedAt time.Time) error {
	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool),
		postgres.Builder.Update(table).
			Set("prefix_id", prefixID).
			Set("updated_at", updatedAt).
			Where(sq.Eq{"id": id}),
	)
	if err != nil {
		return postgres.MapError(err, domain.KindOntology, id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound(domain.KindOntology, id)
	}
	return nil
}

// Delete removes an ontology. Its prefix is not touched.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool),
		postgres.Builder.Delete(table).Where(sq.Eq{"id": id}),
	)
	if err != nil {
		return postgres.MapError(err, domain.KindOntology, id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound(domain.KindOntology, id)
	}
	return nil
}

func scanOntology(row pgx.Row) (*domain.Ontology, error) {
	var o domain.Ontology
	err := row.Scan(&o.ID, &o.Name, &o.Description, &o.FileName, &o.FileExtension, &o.FileID, &o.Hash, &o.PrefixID,
		&o.Info.Format, &o.Info.TripleCount, &o.Info.ClassCount, &o.Info.PropertyCount, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	o.CreatedAt = o.CreatedAt.UTC()
	o.UpdatedAt = o.UpdatedAt.UTC()
	return &o, nil
}
