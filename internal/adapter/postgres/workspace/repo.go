// Package workspace implements the Workspace aggregate repository using PostgreSQL.
// The aggregate's reference collections and URI-pattern index are stored as a
// single jsonb document next to the scalar columns and replaced as a whole on
// every save, guarded by the version column.
package workspace

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

const table = "workspaces"

var columns = []string{"id", "name", "description", "document", "version", "created_at", "updated_at"}

// document is the jsonb shape of the aggregate's nested collections.
type document struct {
	SourceIDs            []uuid.UUID            `json:"source_ids"`
	MappingIDs           []uuid.UUID            `json:"mapping_ids"`
	OntologyIDs          []uuid.UUID            `json:"ontology_ids"`
	PrefixIDs            []uuid.UUID            `json:"prefix_ids"`
	URIPatternsByMapping map[uuid.UUID][]string `json:"uri_patterns_by_mapping"`
	UsedURIPatterns      []string               `json:"used_uri_patterns"`
}

// Repo provides workspace persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new workspace repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the workspace aggregate.
// Returns a domain.NotFoundError if the workspace does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get workspace: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	w, err := scanWorkspace(row)
	if err != nil {
		return nil, postgres.MapError(err, domain.KindWorkspace, id)
	}
	return w, nil
}

// List returns all workspaces, newest first.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context) ([]*domain.Workspace, error) {
	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool),
		postgres.Builder.Select(columns...).From(table).OrderBy("created_at DESC", "id"),
	)
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	defer rows.Close()

	result := []*domain.Workspace{}
	for rows.Next() {
		w, err := scanWorkspace(rows)
		if err != nil {
			return nil, fmt.Errorf("scan workspace: %w", err)
		}
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new workspace and sets its version to 1.
func (r *Repo) Create(ctx context.Context, w *domain.Workspace) error {
	stmt := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(w.ID, w.Name, w.Description, toDocument(w), 1, w.CreatedAt, w.UpdatedAt)

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), stmt); err != nil {
		return postgres.MapError(err, domain.KindWorkspace, w.ID)
	}

	w.Version = 1
	return nil
}

// Save replaces the stored aggregate if its version still equals w.Version,
// then increments w.Version. A stale version yields a domain.ConflictError.
func (r *Repo) Save(ctx context.Context, w *domain.Workspace) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder.
		Update(table).
		Set("name", w.Name).
		Set("description", w.Description).
		Set("document", toDocument(w)).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", w.UpdatedAt).
		Where(sq.Eq{"id": w.ID, "version": w.Version})

	tag, err := postgres.Exec(ctx, q, stmt)
	if err != nil {
		return postgres.MapError(err, domain.KindWorkspace, w.ID)
	}
	if err := postgres.CheckVersion(ctx, q, table, domain.KindWorkspace, w.ID, w.Version, tag); err != nil {
		return err
	}

	w.Version++
	return nil
}

// Delete removes the workspace row only; owned entities are removed by the caller.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool),
		postgres.Builder.Delete(table).Where(sq.Eq{"id": id}),
	)
	if err != nil {
		return postgres.MapError(err, domain.KindWorkspace, id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound(domain.KindWorkspace, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toDocument(w *domain.Workspace) document {
	return document{
		SourceIDs:            nonNilIDs(w.SourceIDs),
		MappingIDs:           nonNilIDs(w.MappingIDs),
		OntologyIDs:          nonNilIDs(w.OntologyIDs),
		PrefixIDs:            nonNilIDs(w.PrefixIDs),
		URIPatternsByMapping: w.URIPatternsByMapping,
		UsedURIPatterns:      w.UsedURIPatterns,
	}
}

func scanWorkspace(row pgx.Row) (*domain.Workspace, error) {
	var (
		w         domain.Workspace
		doc       document
		createdAt time.Time
		updatedAt time.Time
	)

	if err := row.Scan(&w.ID, &w.Name, &w.Description, &doc, &w.Version, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	w.SourceIDs = nonNilIDs(doc.SourceIDs)
	w.MappingIDs = nonNilIDs(doc.MappingIDs)
	w.OntologyIDs = nonNilIDs(doc.OntologyIDs)
	w.PrefixIDs = nonNilIDs(doc.PrefixIDs)
	w.URIPatternsByMapping = doc.URIPatternsByMapping
	if w.URIPatternsByMapping == nil {
		w.URIPatternsByMapping = map[uuid.UUID][]string{}
	}
	w.UsedURIPatterns = doc.UsedURIPatterns
	if w.UsedURIPatterns == nil {
		w.UsedURIPatterns = []string{}
	}
	w.CreatedAt = createdAt.UTC()
	w.UpdatedAt = updatedAt.UTC()

	return &w, nil
}

func nonNilIDs(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}
