// Package workspace is the aggregate coordinator. Every mutation of a
// workspace or its sub-entities enters here: the aggregate is loaded, the
// cross-entity rules are checked, the registries are called and the aggregate
// is saved with its version token, all inside one database transaction.
package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ontomap-backend/internal/config"
	"github.com/heartmarshall/ontomap-backend/internal/domain"
	"github.com/heartmarshall/ontomap-backend/internal/service/prefix"
)

type workspaceRepo interface {
	Create(ctx context.Context, w *domain.Workspace) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error)
	List(ctx context.Context) ([]*domain.Workspace, error)
	Save(ctx context.Context, w *domain.Workspace) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type sourceRegistry interface {
	Create(ctx context.Context, upload domain.SourceUpload) (*domain.Source, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Source, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Source, error)
	Content(ctx context.Context, id uuid.UUID) ([]byte, error)
}

type prefixRegistry interface {
	Create(ctx context.Context, input prefix.CreatePrefixInput) (*domain.Prefix, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Prefix, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ontologyRegistry interface {
	Upload(ctx context.Context, upload domain.OntologyUpload, prefixID uuid.UUID) (*domain.Ontology, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Ontology, error)
	RebindPrefix(ctx context.Context, id, prefixID uuid.UUID) (*domain.Ontology, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Ontology, error)
	Content(ctx context.Context, id uuid.UUID) ([]byte, error)
}

type mappingStore interface {
	Create(ctx context.Context, name string, sourceID uuid.UUID) (*domain.Mapping, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Mapping, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Mapping, error)
	AppendSnapshot(ctx context.Context, id uuid.UUID, g domain.MappingGraph) (*domain.Mapping, error)
	Revert(ctx context.Context, id, snapshotID uuid.UUID) (*domain.Mapping, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// fileRemover deletes stored blobs once the transaction that dropped their
// metadata has committed.
type fileRemover interface {
	Delete(ctx context.Context, id string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service coordinates workspace operations.
type Service struct {
	log        *slog.Logger
	workspaces workspaceRepo
	sources    sourceRegistry
	prefixes   prefixRegistry
	ontologies ontologyRegistry
	mappings   mappingStore
	files      fileRemover
	tx         txManager
	metrics    *Metrics
	cfg        config.WorkspaceConfig
	now        func() time.Time
}

// NewService creates a new workspace coordinator. metrics may be nil.
func NewService(
	logger *slog.Logger,
	workspaces workspaceRepo,
	sources sourceRegistry,
	prefixes prefixRegistry,
	ontologies ontologyRegistry,
	mappings mappingStore,
	files fileRemover,
	tx txManager,
	metrics *Metrics,
	cfg config.WorkspaceConfig,
) *Service {
	return &Service{
		log:        logger.With("service", "workspace"),
		workspaces: workspaces,
		sources:    sources,
		prefixes:   prefixes,
		ontologies: ontologies,
		mappings:   mappings,
		files:      files,
		tx:         tx,
		metrics:    metrics,
		cfg:        cfg,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// run executes fn in a transaction bounded by the configured request timeout
// and records the outcome under op.
func (s *Service) run(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	if s.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.RequestTimeout)
		defer cancel()
	}

	start := time.Now()
	err := s.tx.RunInTx(ctx, fn)
	s.metrics.observe(op, time.Since(start), err)
	return err
}

func (s *Service) load(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	w, err := s.workspaces.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load workspace: %w", err)
	}
	return w, nil
}

func (s *Service) save(ctx context.Context, w *domain.Workspace) error {
	w.UpdatedAt = s.now()
	if err := s.workspaces.Save(ctx, w); err != nil {
		return fmt.Errorf("save workspace: %w", err)
	}
	return nil
}

// removeFiles deletes blobs whose metadata is already gone. Failures leave an
// orphan for the cleanup job and are only logged.
func (s *Service) removeFiles(ctx context.Context, ids ...string) {
	ctx = context.WithoutCancel(ctx)
	for _, id := range ids {
		if id == "" {
			continue
		}
		if err := s.files.Delete(ctx, id); err != nil {
			s.log.WarnContext(ctx, "remove stored file",
				slog.String("file_id", id),
				slog.String("error", err.Error()),
			)
		}
	}
}
