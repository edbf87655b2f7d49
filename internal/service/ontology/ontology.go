package ontology

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ontomap-backend/internal/domain"
)

// Upload parses the document, stores its bytes and persists the Ontology bound
// to prefixID. Parser failures are returned unchanged. If persisting fails the
// stored file is deleted again.
func (s *Service) Upload(ctx context.Context, upload domain.OntologyUpload, prefixID uuid.UUID) (*domain.Ontology, error) {
	if err := validateUpload(upload); err != nil {
		return nil, err
	}

	ext := extension(upload)
	info, err := s.parser.Parse(upload.Content, ext)
	if err != nil {
		return nil, err
	}

	file, err := s.files.Store(ctx, upload.Content, upload.FileName)
	if err != nil {
		return nil, fmt.Errorf("store ontology file: %w", err)
	}

	now := time.Now().UTC()
	o := &domain.Ontology{
		ID:            uuid.New(),
		Name:          strings.TrimSpace(upload.Name),
		Description:   strings.TrimSpace(upload.Description),
		FileName:      upload.FileName,
		FileExtension: ext,
		FileID:        file.ID,
		Hash:          file.Hash,
		PrefixID:      prefixID,
		Info:          info,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.ontologies.Create(ctx, o); err != nil {
		if delErr := s.files.Delete(context.WithoutCancel(ctx), file.ID); delErr != nil {
			s.log.ErrorContext(ctx, "compensate ontology file",
				slog.String("file_id", file.ID),
				slog.String("error", delErr.Error()),
			)
		}
		return nil, fmt.Errorf("create ontology: %w", err)
	}

	s.log.InfoContext(ctx, "ontology uploaded",
		slog.String("ontology_id", o.ID.String()),
		slog.String("prefix_id", prefixID.String()),
		slog.String("format", info.Format),
		slog.Int("triples", info.TripleCount),
	)
	return o, nil
}

// Get returns an ontology by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Ontology, error) {
	o, err := s.ontologies.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get ontology: %w", err)
	}
	return o, nil
}

// GetByIDs returns ontologies in the order of ids. A missing id is a NotFoundError.
func (s *Service) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Ontology, error) {
	found, err := s.ontologies.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get ontologies: %w", err)
	}
	return domain.OrderByIDs(ids, found, domain.KindOntology, func(o *domain.Ontology) uuid.UUID { return o.ID })
}

// RebindPrefix points the ontology at prefixID and returns the updated ontology.
func (s *Service) RebindPrefix(ctx context.Context, id, prefixID uuid.UUID) (*domain.Ontology, error) {
	o, err := s.ontologies.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get ontology: %w", err)
	}

	now := time.Now().UTC()
	if err := s.ontologies.UpdatePrefix(ctx, id, prefixID, now); err != nil {
		return nil, fmt.Errorf("rebind ontology prefix: %w", err)
	}

	s.log.InfoContext(ctx, "ontology prefix rebound",
		slog.String("ontology_id", id.String()),
		slog.String("old_prefix_id", o.PrefixID.String()),
		slog.String("new_prefix_id", prefixID.String()),
	)

	o.PrefixID = prefixID
	o.UpdatedAt = now
	return o, nil
}

// Delete removes the ontology metadata and returns what was removed.
// The stored file is left for the caller to remove once its transaction commits.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*domain.Ontology, error) {
	o, err := s.ontologies.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get ontology: %w", err)
	}
	if err := s.ontologies.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete ontology: %w", err)
	}

	s.log.InfoContext(ctx, "ontology deleted", slog.String("ontology_id", id.String()))
	return o, nil
}

// Content returns the ontology document bytes.
func (s *Service) Content(ctx context.Context, id uuid.UUID) ([]byte, error) {
	o, err := s.ontologies.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get ontology: %w", err)
	}
	content, err := s.files.Fetch(ctx, o.FileID)
	if err != nil {
		return nil, fmt.Errorf("fetch ontology %s: %w", id, err)
	}
	return content, nil
}

func validateUpload(u domain.OntologyUpload) error {
	var errs []domain.FieldError

	name := strings.TrimSpace(u.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	if strings.TrimSpace(u.FileName) == "" {
		errs = append(errs, domain.FieldError{Field: "file_name", Message: "required"})
	}
	if len(u.Content) == 0 {
		errs = append(errs, domain.FieldError{Field: "file", Message: "empty upload"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func extension(u domain.OntologyUpload) string {
	ext := u.FileExtension
	if ext == "" {
		ext = filepath.Ext(u.FileName)
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
