package source

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ontomap-backend/internal/domain"
)

// Create stores the uploaded bytes and persists the Source metadata.
// If persisting fails the stored file is deleted again.
func (s *Service) Create(ctx context.Context, upload domain.SourceUpload) (*domain.Source, error) {
	if err := validateUpload(upload); err != nil {
		return nil, err
	}

	file, err := s.files.Store(ctx, upload.Content, upload.FileName)
	if err != nil {
		return nil, fmt.Errorf("store source file: %w", err)
	}

	src := &domain.Source{
		ID:            uuid.New(),
		Name:          strings.TrimSpace(upload.Name),
		Description:   strings.TrimSpace(upload.Description),
		FileName:      upload.FileName,
		FileExtension: extension(upload),
		JSONPath:      upload.JSONPath,
		FileID:        file.ID,
		Hash:          file.Hash,
		Location:      file.Location,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.sources.Create(ctx, src); err != nil {
		if delErr := s.files.Delete(context.WithoutCancel(ctx), file.ID); delErr != nil {
			s.log.ErrorContext(ctx, "compensate source file",
				slog.String("file_id", file.ID),
				slog.String("error", delErr.Error()),
			)
		}
		return nil, fmt.Errorf("create source: %w", err)
	}

	s.log.InfoContext(ctx, "source created",
		slog.String("source_id", src.ID.String()),
		slog.String("file_id", src.FileID),
		slog.String("name", src.Name),
	)

	return src, nil
}

// Get returns a source by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Source, error) {
	src, err := s.sources.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get source: %w", err)
	}
	return src, nil
}

// GetByIDs returns sources in the order of ids. A missing id is a NotFoundError.
func (s *Service) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Source, error) {
	found, err := s.sources.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get sources: %w", err)
	}
	return domain.OrderByIDs(ids, found, domain.KindSource, func(src *domain.Source) uuid.UUID { return src.ID })
}

// Delete removes the source metadata and returns what was removed.
// The stored file is left for the caller to remove once its transaction commits.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*domain.Source, error) {
	src, err := s.sources.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get source: %w", err)
	}
	if err := s.sources.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete source: %w", err)
	}

	s.log.InfoContext(ctx, "source deleted", slog.String("source_id", id.String()))
	return src, nil
}

// Content returns the source bytes. It fails with a CorruptedError when the
// stored file no longer matches its recorded hash.
func (s *Service) Content(ctx context.Context, id uuid.UUID) ([]byte, error) {
	src, err := s.sources.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get source: %w", err)
	}
	content, err := s.files.Fetch(ctx, src.FileID)
	if err != nil {
		return nil, fmt.Errorf("fetch source %s: %w", id, err)
	}
	return content, nil
}
