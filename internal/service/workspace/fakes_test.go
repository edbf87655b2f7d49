package workspace

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/ontomap-backend/internal/config"
	"github.com/heartmarshall/ontomap-backend/internal/domain"
	"github.com/heartmarshall/ontomap-backend/internal/service/mapping"
	"github.com/heartmarshall/ontomap-backend/internal/service/ontology"
	"github.com/heartmarshall/ontomap-backend/internal/service/prefix"
	"github.com/heartmarshall/ontomap-backend/internal/service/source"
)

// memDB is an in-memory document store. RunInTx snapshots every collection
// and restores it when fn fails, so tests observe rollback like PostgreSQL.
type memDB struct {
	workspaces map[uuid.UUID]*domain.Workspace
	sources    map[uuid.UUID]domain.Source
	prefixes   map[uuid.UUID]domain.Prefix
	ontologies map[uuid.UUID]domain.Ontology
	mappings   map[uuid.UUID]*domain.Mapping

	// failSave, when set, is returned by the next workspace Save.
	failSave error
}

type txKey struct{}

func newMemDB() *memDB {
	return &memDB{
		workspaces: map[uuid.UUID]*domain.Workspace{},
		sources:    map[uuid.UUID]domain.Source{},
		prefixes:   map[uuid.UUID]domain.Prefix{},
		ontologies: map[uuid.UUID]domain.Ontology{},
		mappings:   map[uuid.UUID]*domain.Mapping{},
	}
}

func (db *memDB) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	saved := db.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		db.restore(saved)
		return err
	}
	return nil
}

func (db *memDB) snapshot() *memDB {
	c := newMemDB()
	for id, w := range db.workspaces {
		c.workspaces[id] = cloneWorkspace(w)
	}
	for id, m := range db.mappings {
		c.mappings[id] = cloneMapping(m)
	}
	c.sources = maps.Clone(db.sources)
	c.prefixes = maps.Clone(db.prefixes)
	c.ontologies = maps.Clone(db.ontologies)
	return c
}

func (db *memDB) restore(saved *memDB) {
	db.workspaces = saved.workspaces
	db.sources = saved.sources
	db.prefixes = saved.prefixes
	db.ontologies = saved.ontologies
	db.mappings = saved.mappings
}

func cloneWorkspace(w *domain.Workspace) *domain.Workspace {
	c := *w
	c.SourceIDs = slices.Clone(w.SourceIDs)
	c.MappingIDs = slices.Clone(w.MappingIDs)
	c.OntologyIDs = slices.Clone(w.OntologyIDs)
	c.PrefixIDs = slices.Clone(w.PrefixIDs)
	c.UsedURIPatterns = slices.Clone(w.UsedURIPatterns)
	c.URIPatternsByMapping = make(map[uuid.UUID][]string, len(w.URIPatternsByMapping))
	for id, p := range w.URIPatternsByMapping {
		c.URIPatternsByMapping[id] = slices.Clone(p)
	}
	return &c
}

func cloneMapping(m *domain.Mapping) *domain.Mapping {
	c := *m
	c.History = slices.Clone(m.History)
	return &c
}

// --- workspace repo ---

type memWorkspaces struct{ db *memDB }

func (r memWorkspaces) Create(_ context.Context, w *domain.Workspace) error {
	w.Version = 1
	r.db.workspaces[w.ID] = cloneWorkspace(w)
	return nil
}

func (r memWorkspaces) GetByID(_ context.Context, id uuid.UUID) (*domain.Workspace, error) {
	w, ok := r.db.workspaces[id]
	if !ok {
		return nil, domain.NewNotFound(domain.KindWorkspace, id)
	}
	return cloneWorkspace(w), nil
}

func (r memWorkspaces) List(_ context.Context) ([]*domain.Workspace, error) {
	out := make([]*domain.Workspace, 0, len(r.db.workspaces))
	for _, w := range r.db.workspaces {
		out = append(out, cloneWorkspace(w))
	}
	return out, nil
}

func (r memWorkspaces) Save(_ context.Context, w *domain.Workspace) error {
	if err := r.db.failSave; err != nil {
		r.db.failSave = nil
		return err
	}
	stored, ok := r.db.workspaces[w.ID]
	if !ok {
		return domain.NewNotFound(domain.KindWorkspace, w.ID)
	}
	if stored.Version != w.Version {
		return &domain.ConflictError{Kind: domain.KindWorkspace, ID: w.ID, Version: w.Version}
	}
	w.Version++
	r.db.workspaces[w.ID] = cloneWorkspace(w)
	return nil
}

func (r memWorkspaces) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.db.workspaces[id]; !ok {
		return domain.NewNotFound(domain.KindWorkspace, id)
	}
	delete(r.db.workspaces, id)
	return nil
}

// --- registry repos ---

type memSources struct{ db *memDB }

func (r memSources) Create(_ context.Context, s *domain.Source) error {
	r.db.sources[s.ID] = *s
	return nil
}

func (r memSources) GetByID(_ context.Context, id uuid.UUID) (*domain.Source, error) {
	s, ok := r.db.sources[id]
	if !ok {
		return nil, domain.NewNotFound(domain.KindSource, id)
	}
	return &s, nil
}

func (r memSources) GetByIDs(_ context.Context, ids []uuid.UUID) ([]*domain.Source, error) {
	return pick(r.db.sources, ids), nil
}

func (r memSources) Delete(_ context.Context, id uuid.UUID) error {
	return drop(r.db.sources, id, domain.KindSource)
}

type memPrefixes struct{ db *memDB }

func (r memPrefixes) Create(_ context.Context, p *domain.Prefix) error {
	r.db.prefixes[p.ID] = *p
	return nil
}

func (r memPrefixes) GetByID(_ context.Context, id uuid.UUID) (*domain.Prefix, error) {
	p, ok := r.db.prefixes[id]
	if !ok {
		return nil, domain.NewNotFound(domain.KindPrefix, id)
	}
	return &p, nil
}

func (r memPrefixes) GetByIDs(_ context.Context, ids []uuid.UUID) ([]*domain.Prefix, error) {
	return pick(r.db.prefixes, ids), nil
}

func (r memPrefixes) Delete(_ context.Context, id uuid.UUID) error {
	return drop(r.db.prefixes, id, domain.KindPrefix)
}

type memOntologies struct{ db *memDB }

func (r memOntologies) Create(_ context.Context, o *domain.Ontology) error {
	r.db.ontologies[o.ID] = *o
	return nil
}

func (r memOntologies) GetByID(_ context.Context, id uuid.UUID) (*domain.Ontology, error) {
	o, ok := r.db.ontologies[id]
	if !ok {
		return nil, domain.NewNotFound(domain.KindOntology, id)
	}
	return &o, nil
}

func (r memOntologies) GetByIDs(_ context.Context, ids []uuid.UUID) ([]*domain.Ontology, error) {
	return pick(r.db.ontologies, ids), nil
}

func (r memOntologies) UpdatePrefix(_ context.Context, id, prefixID uuid.UUID, updatedAt time.Time) error {
	o, ok := r.db.ontologies[id]
	if !ok {
		return domain.NewNotFound(domain.KindOntology, id)
	}
	o.PrefixID = prefixID
	o.UpdatedAt = updatedAt
	r.db.ontologies[id] = o
	return nil
}

func (r memOntologies) Delete(_ context.Context, id uuid.UUID) error {
	return drop(r.db.ontologies, id, domain.KindOntology)
}

type memMappings struct{ db *memDB }

func (r memMappings) Create(_ context.Context, m *domain.Mapping) error {
	m.Version = 1
	r.db.mappings[m.ID] = cloneMapping(m)
	return nil
}

func (r memMappings) GetByID(_ context.Context, id uuid.UUID) (*domain.Mapping, error) {
	m, ok := r.db.mappings[id]
	if !ok {
		return nil, domain.NewNotFound(domain.KindMapping, id)
	}
	return cloneMapping(m), nil
}

func (r memMappings) GetByIDs(_ context.Context, ids []uuid.UUID) ([]*domain.Mapping, error) {
	out := make([]*domain.Mapping, 0, len(ids))
	for _, id := range ids {
		if m, ok := r.db.mappings[id]; ok {
			out = append(out, cloneMapping(m))
		}
	}
	return out, nil
}

func (r memMappings) Save(_ context.Context, m *domain.Mapping) error {
	stored, ok := r.db.mappings[m.ID]
	if !ok {
		return domain.NewNotFound(domain.KindMapping, m.ID)
	}
	if stored.Version != m.Version {
		return &domain.ConflictError{Kind: domain.KindMapping, ID: m.ID, Version: m.Version}
	}
	m.Version++
	r.db.mappings[m.ID] = cloneMapping(m)
	return nil
}

func (r memMappings) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.db.mappings[id]; !ok {
		return domain.NewNotFound(domain.KindMapping, id)
	}
	delete(r.db.mappings, id)
	return nil
}

func pick[T any](m map[uuid.UUID]T, ids []uuid.UUID) []*T {
	out := make([]*T, 0, len(ids))
	for _, id := range ids {
		if v, ok := m[id]; ok {
			out = append(out, &v)
		}
	}
	return out
}

func drop[T any](m map[uuid.UUID]T, id uuid.UUID, kind domain.EntityKind) error {
	if _, ok := m[id]; !ok {
		return domain.NewNotFound(kind, id)
	}
	delete(m, id)
	return nil
}

// --- file store and parser ---

// memFiles is a blob store outside the transaction, like the SQLite-backed store.
type memFiles struct {
	blobs map[string][]byte
	seq   int
}

func (f *memFiles) Store(_ context.Context, content []byte, name string) (*domain.FileMetadata, error) {
	f.seq++
	id := fmt.Sprintf("file-%d", f.seq)
	f.blobs[id] = slices.Clone(content)
	return &domain.FileMetadata{ID: id, Name: name, Hash: fmt.Sprintf("hash-%d", f.seq), Location: "/blobs/" + id}, nil
}

func (f *memFiles) Fetch(_ context.Context, id string) ([]byte, error) {
	b, ok := f.blobs[id]
	if !ok {
		return nil, &domain.NotFoundError{Kind: domain.KindFile, ID: id}
	}
	return b, nil
}

func (f *memFiles) Delete(_ context.Context, id string) error {
	if _, ok := f.blobs[id]; !ok {
		return &domain.NotFoundError{Kind: domain.KindFile, ID: id}
	}
	delete(f.blobs, id)
	return nil
}

var errBadTurtle = domain.NewValidationError("file", "turtle: unexpected token at line 1")

// stubParser accepts any document except one whose content is "broken".
type stubParser struct{}

func (stubParser) Parse(content []byte, extension string) (domain.OntologyInfo, error) {
	if string(content) == "broken" {
		return domain.OntologyInfo{}, errBadTurtle
	}
	return domain.OntologyInfo{Format: "turtle", TripleCount: 3, ClassCount: 1, PropertyCount: 1}, nil
}

// --- harness ---

type harness struct {
	svc     *Service
	db      *memDB
	files   *memFiles
	metrics *Metrics
}

// fataler is satisfied by *testing.T and *rapid.T.
type fataler interface {
	Helper()
	Fatalf(format string, args ...any)
}

func newHarness(t fataler) *harness {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	db := newMemDB()
	files := &memFiles{blobs: map[string][]byte{}}
	metrics := NewMetrics(prometheus.NewRegistry())

	svc := NewService(
		log,
		memWorkspaces{db},
		source.NewService(log, memSources{db}, files),
		prefix.NewService(log, memPrefixes{db}),
		ontology.NewService(log, memOntologies{db}, files, stubParser{}),
		mapping.NewService(log, memMappings{db}, db),
		files,
		db,
		metrics,
		config.WorkspaceConfig{RequestTimeout: 5 * time.Second},
	)
	return &harness{svc: svc, db: db, files: files, metrics: metrics}
}

func (h *harness) workspace(t fataler) *domain.Workspace {
	t.Helper()
	w, err := h.svc.CreateWorkspace(context.Background(), CreateWorkspaceInput{Name: "demo"})
	if err != nil {
		t.Fatalf("CreateWorkspace: %v", err)
	}
	return w
}

func (h *harness) addPrefix(t fataler, wid uuid.UUID, p, uri string) *domain.Prefix {
	t.Helper()
	_, created, err := h.svc.AddPrefix(context.Background(), wid, prefix.CreatePrefixInput{Prefix: p, URI: uri})
	if err != nil {
		t.Fatalf("AddPrefix(%s, %s): %v", p, uri, err)
	}
	return created
}

func (h *harness) addOntology(t fataler, wid uuid.UUID, name string, prefixID uuid.UUID) *domain.Ontology {
	t.Helper()
	_, o, err := h.svc.AddOntology(context.Background(), wid, ontologyUpload(name), prefixID)
	if err != nil {
		t.Fatalf("AddOntology(%s): %v", name, err)
	}
	return o
}

func (h *harness) addMapping(t fataler, wid uuid.UUID, name string) *domain.Mapping {
	t.Helper()
	_, m, err := h.svc.AddMapping(context.Background(), wid, mappingInput(name))
	if err != nil {
		t.Fatalf("AddMapping(%s): %v", name, err)
	}
	return m
}

func (h *harness) stored(t fataler, wid uuid.UUID) *domain.Workspace {
	t.Helper()
	w, ok := h.db.workspaces[wid]
	if !ok {
		t.Fatalf("workspace %s not stored", wid)
	}
	return cloneWorkspace(w)
}

func ontologyUpload(name string) domain.OntologyUpload {
	return domain.OntologyUpload{
		Name:     name,
		FileName: name + ".ttl",
		Content:  []byte("@prefix ex: <http://ex.org/> ."),
	}
}

func mappingInput(name string) AddMappingInput {
	return AddMappingInput{
		Name: name,
		Source: domain.SourceUpload{
			Name:     name + " source",
			FileName: name + ".csv",
			Content:  []byte("id\n1\n"),
		},
	}
}

func uriGraph(patterns ...string) domain.MappingGraph {
	g := domain.MappingGraph{}
	for i, p := range patterns {
		g.Nodes = append(g.Nodes, domain.Node{ID: fmt.Sprintf("n%d", i), Kind: domain.NodeKindURIRef, URIPattern: p})
	}
	g.Nodes = append(g.Nodes, domain.Node{ID: "lit", Kind: domain.NodeKindLiteral, Value: "x"})
	return g
}

var errInjected = errors.New("injected failure")
