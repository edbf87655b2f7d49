package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/ontomap-backend/internal/domain"
	"github.com/heartmarshall/ontomap-backend/internal/service/prefix"
	"github.com/heartmarshall/ontomap-backend/internal/service/workspace"
	"github.com/heartmarshall/ontomap-backend/internal/transport/middleware"
)

// workspaceService is the coordinator surface used by the handlers.
type workspaceService interface {
	CreateWorkspace(ctx context.Context, input workspace.CreateWorkspaceInput) (*domain.Workspace, error)
	ListWorkspaces(ctx context.Context) ([]*domain.Workspace, error)
	GetWorkspaceDetails(ctx context.Context, id uuid.UUID) (*workspace.WorkspaceDetails, error)
	UpdateWorkspace(ctx context.Context, id uuid.UUID, input workspace.UpdateWorkspaceInput) (*domain.Workspace, error)
	DeleteWorkspace(ctx context.Context, id uuid.UUID) error

	AddMapping(ctx context.Context, workspaceID uuid.UUID, input workspace.AddMappingInput) (*domain.Workspace, *domain.Mapping, error)
	GetMapping(ctx context.Context, workspaceID, mappingID uuid.UUID) (*domain.Mapping, error)
	RemoveMapping(ctx context.Context, workspaceID, mappingID uuid.UUID) (*domain.Workspace, error)
	UpdateMappingGraph(ctx context.Context, workspaceID, mappingID uuid.UUID, g domain.MappingGraph) (*domain.Workspace, *domain.Mapping, error)
	RevertMapping(ctx context.Context, workspaceID, mappingID, snapshotID uuid.UUID) (*domain.Workspace, *domain.Mapping, error)

	AddPrefix(ctx context.Context, workspaceID uuid.UUID, input prefix.CreatePrefixInput) (*domain.Workspace, *domain.Prefix, error)
	RemovePrefix(ctx context.Context, workspaceID, prefixID uuid.UUID) (*domain.Workspace, error)
	ListUnassignedPrefixes(ctx context.Context, workspaceID uuid.UUID) ([]*domain.Prefix, error)

	AddOntology(ctx context.Context, workspaceID uuid.UUID, upload domain.OntologyUpload, prefixID uuid.UUID) (*domain.Workspace, *domain.Ontology, error)
	RemoveOntology(ctx context.Context, workspaceID, ontologyID uuid.UUID) (*domain.Workspace, error)
	ReassignOntologyPrefix(ctx context.Context, workspaceID, ontologyID, newPrefixID uuid.UUID) (*domain.Workspace, *domain.Ontology, error)

	SourceContent(ctx context.Context, workspaceID, sourceID uuid.UUID) ([]byte, error)
	OntologyContent(ctx context.Context, workspaceID, ontologyID uuid.UUID) ([]byte, error)
}

// WorkspaceHandler serves the workspace REST endpoints.
type WorkspaceHandler struct {
	svc         workspaceService
	log         *slog.Logger
	maxUpload   int64
	uploadLimit middleware.Middleware
}

// NewWorkspaceHandler creates a WorkspaceHandler. Multipart bodies are capped
// at maxUpload bytes and pass through uploadLimit before parsing.
func NewWorkspaceHandler(svc workspaceService, logger *slog.Logger, maxUpload int64, uploadLimit middleware.Middleware) *WorkspaceHandler {
	if uploadLimit == nil {
		uploadLimit = middleware.Chain()
	}
	return &WorkspaceHandler{
		svc:         svc,
		log:         logger.With("handler", "workspace"),
		maxUpload:   maxUpload,
		uploadLimit: uploadLimit,
	}
}

// Register mounts the routes under /api/v1.
func (h *WorkspaceHandler) Register(mux *http.ServeMux) {
	const base = "/api/v1/workspaces"

	mux.HandleFunc("POST "+base, h.Create)
	mux.HandleFunc("GET "+base, h.List)
	mux.HandleFunc("GET "+base+"/{id}", h.Details)
	mux.HandleFunc("PATCH "+base+"/{id}", h.Update)
	mux.HandleFunc("DELETE "+base+"/{id}", h.Delete)

	mux.Handle("POST "+base+"/{id}/mappings", h.uploadLimit(http.HandlerFunc(h.AddMapping)))
	mux.HandleFunc("GET "+base+"/{id}/mappings/{mid}", h.GetMapping)
	mux.HandleFunc("DELETE "+base+"/{id}/mappings/{mid}", h.RemoveMapping)
	mux.HandleFunc("PUT "+base+"/{id}/mappings/{mid}/graph", h.UpdateMappingGraph)
	mux.HandleFunc("POST "+base+"/{id}/mappings/{mid}/revert", h.RevertMapping)

	mux.HandleFunc("POST "+base+"/{id}/prefixes", h.AddPrefix)
	mux.HandleFunc("DELETE "+base+"/{id}/prefixes/{pid}", h.RemovePrefix)
	mux.HandleFunc("GET "+base+"/{id}/prefixes/unassigned", h.UnassignedPrefixes)

	mux.Handle("POST "+base+"/{id}/ontologies", h.uploadLimit(http.HandlerFunc(h.AddOntology)))
	mux.HandleFunc("DELETE "+base+"/{id}/ontologies/{oid}", h.RemoveOntology)
	mux.HandleFunc("PUT "+base+"/{id}/ontologies/{oid}/prefix", h.ReassignOntologyPrefix)

	mux.HandleFunc("GET "+base+"/{id}/sources/{sid}/content", h.SourceContent)
	mux.HandleFunc("GET "+base+"/{id}/ontologies/{oid}/content", h.OntologyContent)
}

// Create handles POST /workspaces.
func (h *WorkspaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req workspace.CreateWorkspaceInput
	if !decodeJSON(w, r, &req) {
		return
	}

	ws, err := h.svc.CreateWorkspace(r.Context(), req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toWorkspaceResponse(ws))
}

// List handles GET /workspaces.
func (h *WorkspaceHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListWorkspaces(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSlice(list, toWorkspaceResponse))
}

// Details handles GET /workspaces/{id}.
func (h *WorkspaceHandler) Details(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	details, err := h.svc.GetWorkspaceDetails(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDetailsResponse(details))
}

// Update handles PATCH /workspaces/{id}.
func (h *WorkspaceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req workspace.UpdateWorkspaceInput
	if !decodeJSON(w, r, &req) {
		return
	}

	ws, err := h.svc.UpdateWorkspace(r.Context(), id, req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWorkspaceResponse(ws))
}

// Delete handles DELETE /workspaces/{id}.
func (h *WorkspaceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteWorkspace(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddMapping handles POST /workspaces/{id}/mappings (multipart).
// Form fields: name, file, and optionally source_name, description, json_path.
func (h *WorkspaceHandler) AddMapping(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	file, ok := h.upload(w, r)
	if !ok {
		return
	}

	sourceName := r.FormValue("source_name")
	if strings.TrimSpace(sourceName) == "" {
		sourceName = file.Name
	}

	ws, m, err := h.svc.AddMapping(r.Context(), id, workspace.AddMappingInput{
		Name: r.FormValue("name"),
		Source: domain.SourceUpload{
			Name:        sourceName,
			Description: r.FormValue("description"),
			FileName:    file.Name,
			JSONPath:    r.FormValue("json_path"),
			Content:     file.Content,
		},
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, mutationResponse[mappingResponse]{
		Workspace: toWorkspaceResponse(ws),
		Entity:    toMappingResponse(m),
	})
}

// GetMapping handles GET /workspaces/{id}/mappings/{mid}.
func (h *WorkspaceHandler) GetMapping(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	mid, ok := pathID(w, r, "mid")
	if !ok {
		return
	}

	m, err := h.svc.GetMapping(r.Context(), id, mid)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMappingResponse(m))
}

// RemoveMapping handles DELETE /workspaces/{id}/mappings/{mid}.
func (h *WorkspaceHandler) RemoveMapping(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	mid, ok := pathID(w, r, "mid")
	if !ok {
		return
	}

	ws, err := h.svc.RemoveMapping(r.Context(), id, mid)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWorkspaceResponse(ws))
}

// UpdateMappingGraph handles PUT /workspaces/{id}/mappings/{mid}/graph.
func (h *WorkspaceHandler) UpdateMappingGraph(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	mid, ok := pathID(w, r, "mid")
	if !ok {
		return
	}
	var g domain.MappingGraph
	if !decodeJSON(w, r, &g) {
		return
	}

	ws, m, err := h.svc.UpdateMappingGraph(r.Context(), id, mid, g)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mutationResponse[mappingResponse]{
		Workspace: toWorkspaceResponse(ws),
		Entity:    toMappingResponse(m),
	})
}

type revertRequest struct {
	SnapshotID uuid.UUID `json:"snapshot_id"`
}

// RevertMapping handles POST /workspaces/{id}/mappings/{mid}/revert.
func (h *WorkspaceHandler) RevertMapping(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	mid, ok := pathID(w, r, "mid")
	if !ok {
		return
	}
	var req revertRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.SnapshotID == uuid.Nil {
		handleError(h.log, w, r, domain.NewValidationError("snapshot_id", "required"))
		return
	}

	ws, m, err := h.svc.RevertMapping(r.Context(), id, mid, req.SnapshotID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mutationResponse[mappingResponse]{
		Workspace: toWorkspaceResponse(ws),
		Entity:    toMappingResponse(m),
	})
}

// AddPrefix handles POST /workspaces/{id}/prefixes.
func (h *WorkspaceHandler) AddPrefix(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req prefix.CreatePrefixInput
	if !decodeJSON(w, r, &req) {
		return
	}

	ws, p, err := h.svc.AddPrefix(r.Context(), id, req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, mutationResponse[prefixResponse]{
		Workspace: toWorkspaceResponse(ws),
		Entity:    toPrefixResponse(p),
	})
}

// RemovePrefix handles DELETE /workspaces/{id}/prefixes/{pid}.
func (h *WorkspaceHandler) RemovePrefix(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	pid, ok := pathID(w, r, "pid")
	if !ok {
		return
	}

	ws, err := h.svc.RemovePrefix(r.Context(), id, pid)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWorkspaceResponse(ws))
}

// UnassignedPrefixes handles GET /workspaces/{id}/prefixes/unassigned.
func (h *WorkspaceHandler) UnassignedPrefixes(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	list, err := h.svc.ListUnassignedPrefixes(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSlice(list, toPrefixResponse))
}

// AddOntology handles POST /workspaces/{id}/ontologies (multipart).
// Form fields: name, prefix_id, file, and optionally description.
func (h *WorkspaceHandler) AddOntology(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	file, ok := h.upload(w, r)
	if !ok {
		return
	}
	prefixID, err := uuid.Parse(r.FormValue("prefix_id"))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("prefix_id", "must be a uuid"))
		return
	}

	ws, o, err := h.svc.AddOntology(r.Context(), id, domain.OntologyUpload{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		FileName:    file.Name,
		Content:     file.Content,
	}, prefixID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, mutationResponse[ontologyResponse]{
		Workspace: toWorkspaceResponse(ws),
		Entity:    toOntologyResponse(o),
	})
}

// RemoveOntology handles DELETE /workspaces/{id}/ontologies/{oid}.
func (h *WorkspaceHandler) RemoveOntology(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	oid, ok := pathID(w, r, "oid")
	if !ok {
		return
	}

	ws, err := h.svc.RemoveOntology(r.Context(), id, oid)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWorkspaceResponse(ws))
}

type reassignPrefixRequest struct {
	PrefixID uuid.UUID `json:"prefix_id"`
}

// ReassignOntologyPrefix handles PUT /workspaces/{id}/ontologies/{oid}/prefix.
func (h *WorkspaceHandler) ReassignOntologyPrefix(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	oid, ok := pathID(w, r, "oid")
	if !ok {
		return
	}
	var req reassignPrefixRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.PrefixID == uuid.Nil {
		handleError(h.log, w, r, domain.NewValidationError("prefix_id", "required"))
		return
	}

	ws, o, err := h.svc.ReassignOntologyPrefix(r.Context(), id, oid, req.PrefixID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mutationResponse[ontologyResponse]{
		Workspace: toWorkspaceResponse(ws),
		Entity:    toOntologyResponse(o),
	})
}

// SourceContent handles GET /workspaces/{id}/sources/{sid}/content.
func (h *WorkspaceHandler) SourceContent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	sid, ok := pathID(w, r, "sid")
	if !ok {
		return
	}

	content, err := h.svc.SourceContent(r.Context(), id, sid)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeContent(w, content)
}

// OntologyContent handles GET /workspaces/{id}/ontologies/{oid}/content.
func (h *WorkspaceHandler) OntologyContent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	oid, ok := pathID(w, r, "oid")
	if !ok {
		return
	}

	content, err := h.svc.OntologyContent(r.Context(), id, oid)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeContent(w, content)
}

func (h *WorkspaceHandler) upload(w http.ResponseWriter, r *http.Request) (uploadedFile, bool) {
	file, err := readUpload(w, r, h.maxUpload)
	switch {
	case errors.Is(err, errUploadTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
		return uploadedFile{}, false
	case err != nil:
		handleError(h.log, w, r, err)
		return uploadedFile{}, false
	}
	return file, true
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "invalid id",
			Fields: []fieldResponse{{Field: name, Message: "must be a uuid"}},
		})
		return uuid.Nil, false
	}
	return id, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func writeContent(w http.ResponseWriter, content []byte) {
	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	w.Write(content) //nolint:errcheck
}
