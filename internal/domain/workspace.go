package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Workspace is the aggregate root grouping sources, mappings, ontologies and
// prefixes. Sub-entities are referenced by id; the service layer performs joins.
//
// UsedURIPatterns is derived from URIPatternsByMapping and is only ever
// recomputed, never edited directly.
type Workspace struct {
	ID                   uuid.UUID
	Name                 string
	Description          string
	SourceIDs            []uuid.UUID
	MappingIDs           []uuid.UUID
	OntologyIDs          []uuid.UUID
	PrefixIDs            []uuid.UUID
	URIPatternsByMapping map[uuid.UUID][]string
	UsedURIPatterns      []string
	Version              int64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewWorkspace creates an empty workspace.
func NewWorkspace(name, description string, now time.Time) *Workspace {
	return &Workspace{
		ID:                   uuid.New(),
		Name:                 name,
		Description:          description,
		SourceIDs:            []uuid.UUID{},
		MappingIDs:           []uuid.UUID{},
		OntologyIDs:          []uuid.UUID{},
		PrefixIDs:            []uuid.UUID{},
		URIPatternsByMapping: map[uuid.UUID][]string{},
		UsedURIPatterns:      []string{},
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// HasMapping reports whether the mapping belongs to the workspace.
func (w *Workspace) HasMapping(id uuid.UUID) bool { return slices.Contains(w.MappingIDs, id) }

// HasSource reports whether the source belongs to the workspace.
func (w *Workspace) HasSource(id uuid.UUID) bool { return slices.Contains(w.SourceIDs, id) }

// HasPrefix reports whether the prefix belongs to the workspace.
func (w *Workspace) HasPrefix(id uuid.UUID) bool { return slices.Contains(w.PrefixIDs, id) }

// HasOntology reports whether the ontology belongs to the workspace.
func (w *Workspace) HasOntology(id uuid.UUID) bool { return slices.Contains(w.OntologyIDs, id) }

// AddMapping appends a mapping and its exclusively owned source.
func (w *Workspace) AddMapping(mappingID, sourceID uuid.UUID) {
	w.MappingIDs = append(w.MappingIDs, mappingID)
	w.SourceIDs = append(w.SourceIDs, sourceID)
}

// RemoveMapping drops the mapping, its source and its URI-pattern entry,
// then re-derives the union set.
func (w *Workspace) RemoveMapping(mappingID, sourceID uuid.UUID) {
	w.MappingIDs = removeID(w.MappingIDs, mappingID)
	w.SourceIDs = removeID(w.SourceIDs, sourceID)
	delete(w.URIPatternsByMapping, mappingID)
	w.recomputeUsedURIPatterns()
}

// AddPrefix appends a prefix reference.
func (w *Workspace) AddPrefix(id uuid.UUID) { w.PrefixIDs = append(w.PrefixIDs, id) }

// RemovePrefix drops a prefix reference.
func (w *Workspace) RemovePrefix(id uuid.UUID) { w.PrefixIDs = removeID(w.PrefixIDs, id) }

// AddOntology appends an ontology reference.
func (w *Workspace) AddOntology(id uuid.UUID) { w.OntologyIDs = append(w.OntologyIDs, id) }

// RemoveOntology drops an ontology reference.
func (w *Workspace) RemoveOntology(id uuid.UUID) { w.OntologyIDs = removeID(w.OntologyIDs, id) }

// SetMappingURIPatterns replaces the pattern list of one mapping and re-derives the union set.
func (w *Workspace) SetMappingURIPatterns(mappingID uuid.UUID, patterns []string) {
	if w.URIPatternsByMapping == nil {
		w.URIPatternsByMapping = map[uuid.UUID][]string{}
	}
	w.URIPatternsByMapping[mappingID] = append([]string{}, patterns...)
	w.recomputeUsedURIPatterns()
}

func (w *Workspace) recomputeUsedURIPatterns() {
	w.UsedURIPatterns = UnionURIPatterns(w.URIPatternsByMapping)
}

// UnionURIPatterns returns the sorted, deduplicated union of all pattern lists.
func UnionURIPatterns(byMapping map[uuid.UUID][]string) []string {
	seen := make(map[string]struct{})
	union := []string{}
	for _, patterns := range byMapping {
		for _, p := range patterns {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			union = append(union, p)
		}
	}
	slices.Sort(union)
	return union
}

func removeID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	return slices.DeleteFunc(slices.Clone(ids), func(x uuid.UUID) bool { return x == id })
}
