// Package filestore keeps uploaded bytes in a local directory and their
// metadata in SQLite. Content is addressed by a random file id; the blake2b
// hash recorded at upload is re-checked on every fetch.
package filestore

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/crypto/blake2b"

	"github.com/heartmarshall/ontomap-backend/internal/domain"
)

// metadataRepo is the relational side of the store.
type metadataRepo interface {
	Insert(ctx context.Context, f domain.FileMetadata) error
	Get(ctx context.Context, id string) (domain.FileMetadata, error)
	Delete(ctx context.Context, id string) error
	ListIDs(ctx context.Context, cutoff time.Time) ([]string, error)
}

// Store is the file service.
type Store struct {
	dir   string
	repo  metadataRepo
	cache *gocache.Cache
	log   *slog.Logger
	now   func() time.Time
}

// New creates a Store rooted at dir. Metadata rows are cached for cacheTTL.
func New(logger *slog.Logger, dir string, repo metadataRepo, cacheTTL time.Duration) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create files dir: %w", err)
	}
	return &Store{
		dir:   dir,
		repo:  repo,
		cache: gocache.New(cacheTTL, 2*cacheTTL),
		log:   logger.With("service", "filestore"),
		now:   time.Now,
	}, nil
}

// Store writes content under a new file id and records its metadata.
// If the metadata insert fails the blob is removed again.
func (s *Store) Store(ctx context.Context, content []byte, name string) (*domain.FileMetadata, error) {
	stem, suffix := splitName(name)
	meta := domain.FileMetadata{
		ID:        uuid.NewString(),
		Name:      name,
		Stem:      stem,
		Suffix:    suffix,
		Hash:      Hash(content),
		Size:      int64(len(content)),
		CreatedAt: s.now().UTC(),
	}
	meta.Location = s.location(meta.ID)

	if err := writeAtomic(meta.Location, content); err != nil {
		return nil, fmt.Errorf("write file %s: %w", meta.ID, err)
	}

	if err := s.repo.Insert(ctx, meta); err != nil {
		if rmErr := os.Remove(meta.Location); rmErr != nil {
			s.log.ErrorContext(ctx, "remove blob after failed insert",
				slog.String("file_id", meta.ID), slog.String("error", rmErr.Error()))
		}
		return nil, err
	}

	s.cache.Set(meta.ID, meta, gocache.DefaultExpiration)

	s.log.InfoContext(ctx, "file stored",
		slog.String("file_id", meta.ID),
		slog.String("name", name),
		slog.Int64("size", meta.Size),
	)

	return &meta, nil
}

// Metadata returns the stored metadata of a file.
func (s *Store) Metadata(ctx context.Context, id string) (*domain.FileMetadata, error) {
	if v, ok := s.cache.Get(id); ok {
		if meta, ok := v.(domain.FileMetadata); ok {
			return &meta, nil
		}
	}

	meta, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	meta.Location = s.location(id)
	s.cache.Set(id, meta, gocache.DefaultExpiration)
	return &meta, nil
}

// Fetch returns the bytes of a file. It fails with a domain.CorruptedError if
// the content hash no longer matches the one recorded at upload.
func (s *Store) Fetch(ctx context.Context, id string) ([]byte, error) {
	meta, err := s.Metadata(ctx, id)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(meta.Location)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &domain.NotFoundError{Kind: domain.KindFile, ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", id, err)
	}

	if Hash(content) != meta.Hash {
		s.log.WarnContext(ctx, "file hash mismatch", slog.String("file_id", id))
		return nil, &domain.CorruptedError{ResourceID: id}
	}

	return content, nil
}

// Delete removes the metadata row and then the blob.
// A blob that is already gone is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(id)

	if err := os.Remove(s.location(id)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove blob %s: %w", id, err)
	}

	s.log.InfoContext(ctx, "file deleted", slog.String("file_id", id))
	return nil
}

// ListIDs returns ids of files created before cutoff.
func (s *Store) ListIDs(ctx context.Context, cutoff time.Time) ([]string, error) {
	return s.repo.ListIDs(ctx, cutoff)
}

func (s *Store) location(id string) string {
	return filepath.Join(s.dir, id)
}

// Hash returns the hex blake2b-256 digest of content.
func Hash(content []byte) string {
	sum := blake2b.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// splitName splits "data.tar.gz" into stem "data.tar" and suffix "gz".
func splitName(name string) (stem, suffix string) {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	if ext == "" || ext == base {
		return base, ""
	}
	return strings.TrimSuffix(base, ext), strings.TrimPrefix(ext, ".")
}

func writeAtomic(path string, content []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".upload-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
