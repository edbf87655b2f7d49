package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/ontomap-backend/internal/domain"
)

const filesTable = "files"

// timeLayout is fixed-width UTC so created_at compares correctly as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

var fileColumns = []string{"uuid", "name", "stem", "suffix", "hash", "size", "created_at"}

// FileRepo stores file metadata rows. Blob bytes live elsewhere.
type FileRepo struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

// NewFileRepo creates a FileRepo over an opened database.
func NewFileRepo(db *sql.DB) *FileRepo {
	return &FileRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Question).RunWith(db),
	}
}

// Insert adds a metadata row.
func (r *FileRepo) Insert(ctx context.Context, f domain.FileMetadata) error {
	_, err := r.sb.Insert(filesTable).
		Columns(fileColumns...).
		Values(f.ID, f.Name, f.Stem, f.Suffix, f.Hash, f.Size, f.CreatedAt.UTC().Format(timeLayout)).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("insert file %s: %w", f.ID, err)
	}
	return nil
}

// Get returns the metadata row for id, or a domain.NotFoundError.
func (r *FileRepo) Get(ctx context.Context, id string) (domain.FileMetadata, error) {
	var (
		f         domain.FileMetadata
		createdAt string
	)

	err := r.sb.Select(fileColumns...).
		From(filesTable).
		Where(sq.Eq{"uuid": id}).
		QueryRowContext(ctx).
		Scan(&f.ID, &f.Name, &f.Stem, &f.Suffix, &f.Hash, &f.Size, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.FileMetadata{}, &domain.NotFoundError{Kind: domain.KindFile, ID: id}
	}
	if err != nil {
		return domain.FileMetadata{}, fmt.Errorf("get file %s: %w", id, err)
	}

	f.CreatedAt, err = time.Parse(timeLayout, createdAt)
	if err != nil {
		return domain.FileMetadata{}, fmt.Errorf("parse created_at of file %s: %w", id, err)
	}
	return f, nil
}

// Delete removes the metadata row for id, or returns a domain.NotFoundError.
func (r *FileRepo) Delete(ctx context.Context, id string) error {
	res, err := r.sb.Delete(filesTable).Where(sq.Eq{"uuid": id}).ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("delete file %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete file %s: %w", id, err)
	}
	if n == 0 {
		return &domain.NotFoundError{Kind: domain.KindFile, ID: id}
	}
	return nil
}

// ListIDs returns the ids of files created before cutoff.
func (r *FileRepo) ListIDs(ctx context.Context, cutoff time.Time) ([]string, error) {
	rows, err := r.sb.Select("uuid").
		From(filesTable).
		Where(sq.Lt{"created_at": cutoff.UTC().Format(timeLayout)}).
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan file id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
