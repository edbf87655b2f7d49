package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ontomap-backend/internal/domain"
	"github.com/heartmarshall/ontomap-backend/internal/service/workspace"
)

type workspaceResponse struct {
	ID              uuid.UUID              `json:"id"`
	Name            string                 `json:"name"`
	Description     string                 `json:"description"`
	SourceIDs       []uuid.UUID            `json:"source_ids"`
	MappingIDs      []uuid.UUID            `json:"mapping_ids"`
	OntologyIDs     []uuid.UUID            `json:"ontology_ids"`
	PrefixIDs       []uuid.UUID            `json:"prefix_ids"`
	URIPatterns     map[uuid.UUID][]string `json:"uri_patterns_by_mapping"`
	UsedURIPatterns []string               `json:"used_uri_patterns"`
	Version         int64                  `json:"version"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

type sourceResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	FileName      string    `json:"file_name"`
	FileExtension string    `json:"file_extension"`
	JSONPath      string    `json:"json_path,omitempty"`
	Hash          string    `json:"hash"`
	CreatedAt     time.Time `json:"created_at"`
}

type prefixResponse struct {
	ID        uuid.UUID `json:"id"`
	Prefix    string    `json:"prefix"`
	URI       string    `json:"uri"`
	CreatedAt time.Time `json:"created_at"`
}

type ontologyResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	FileName      string    `json:"file_name"`
	FileExtension string    `json:"file_extension"`
	Hash          string    `json:"hash"`
	PrefixID      uuid.UUID `json:"prefix_id"`
	Format        string    `json:"format"`
	TripleCount   int       `json:"triple_count"`
	ClassCount    int       `json:"class_count"`
	PropertyCount int       `json:"property_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type mappingResponse struct {
	ID        uuid.UUID             `json:"id"`
	Name      string                `json:"name"`
	SourceID  uuid.UUID             `json:"source_id"`
	CurrentID uuid.UUID             `json:"current_id"`
	Current   domain.MappingGraph   `json:"current"`
	History   []domain.MappingGraph `json:"history"`
	Version   int64                 `json:"version"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

type detailsResponse struct {
	workspaceResponse
	Sources    []sourceResponse   `json:"sources"`
	Mappings   []mappingResponse  `json:"mappings"`
	Ontologies []ontologyResponse `json:"ontologies"`
	Prefixes   []prefixResponse   `json:"prefixes"`
}

// mutationResponse pairs the updated workspace with the entity an operation touched.
type mutationResponse[T any] struct {
	Workspace workspaceResponse `json:"workspace"`
	Entity    T                 `json:"entity"`
}

func toWorkspaceResponse(w *domain.Workspace) workspaceResponse {
	return workspaceResponse{
		ID:              w.ID,
		Name:            w.Name,
		Description:     w.Description,
		SourceIDs:       w.SourceIDs,
		MappingIDs:      w.MappingIDs,
		OntologyIDs:     w.OntologyIDs,
		PrefixIDs:       w.PrefixIDs,
		URIPatterns:     w.URIPatternsByMapping,
		UsedURIPatterns: w.UsedURIPatterns,
		Version:         w.Version,
		CreatedAt:       w.CreatedAt,
		UpdatedAt:       w.UpdatedAt,
	}
}

func toSourceResponse(s *domain.Source) sourceResponse {
	return sourceResponse{
		ID:            s.ID,
		Name:          s.Name,
		Description:   s.Description,
		FileName:      s.FileName,
		FileExtension: s.FileExtension,
		JSONPath:      s.JSONPath,
		Hash:          s.Hash,
		CreatedAt:     s.CreatedAt,
	}
}

func toPrefixResponse(p *domain.Prefix) prefixResponse {
	return prefixResponse{ID: p.ID, Prefix: p.Prefix, URI: p.URI, CreatedAt: p.CreatedAt}
}

func toOntologyResponse(o *domain.Ontology) ontologyResponse {
	return ontologyResponse{
		ID:            o.ID,
		Name:          o.Name,
		Description:   o.Description,
		FileName:      o.FileName,
		FileExtension: o.FileExtension,
		Hash:          o.Hash,
		PrefixID:      o.PrefixID,
		Format:        o.Info.Format,
		TripleCount:   o.Info.TripleCount,
		ClassCount:    o.Info.ClassCount,
		PropertyCount: o.Info.PropertyCount,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func toMappingResponse(m *domain.Mapping) mappingResponse {
	return mappingResponse{
		ID:        m.ID,
		Name:      m.Name,
		SourceID:  m.SourceID,
		CurrentID: m.CurrentID,
		Current:   m.Current(),
		History:   m.History,
		Version:   m.Version,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toDetailsResponse(d *workspace.WorkspaceDetails) detailsResponse {
	return detailsResponse{
		workspaceResponse: toWorkspaceResponse(d.Workspace),
		Sources:           mapSlice(d.Sources, toSourceResponse),
		Mappings:          mapSlice(d.Mappings, toMappingResponse),
		Ontologies:        mapSlice(d.Ontologies, toOntologyResponse),
		Prefixes:          mapSlice(d.Prefixes, toPrefixResponse),
	}
}

func mapSlice[T, R any](in []T, f func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}
