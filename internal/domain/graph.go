package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NodeKind discriminates the two kinds of mapping graph nodes.
type NodeKind string

const (
	NodeKindURIRef  NodeKind = "uri_ref"
	NodeKindLiteral NodeKind = "literal"
)

func (k NodeKind) String() string { return string(k) }

// IsValid reports whether k is a known node kind.
func (k NodeKind) IsValid() bool {
	switch k {
	case NodeKindURIRef, NodeKindLiteral:
		return true
	}
	return false
}

// Position is the canvas location of a node in the mapping editor.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is a single vertex of a MappingGraph.
// URI nodes carry URIPattern and RDFTypes; literal nodes carry Value, Datatype and Language.
type Node struct {
	ID         string   `json:"id"`
	Kind       NodeKind `json:"kind"`
	Label      string   `json:"label,omitempty"`
	URIPattern string   `json:"uri_pattern,omitempty"`
	RDFTypes   []string `json:"rdf_types,omitempty"`
	Value      string   `json:"value,omitempty"`
	Datatype   string   `json:"datatype,omitempty"`
	Language   string   `json:"language,omitempty"`
	Position   Position `json:"position"`
}

// IsLiteral reports whether n is a literal node.
func (n Node) IsLiteral() bool {
	return n.Kind == NodeKindLiteral
}

// Edge connects two nodes with a predicate.
type Edge struct {
	ID        string `json:"id"`
	Source    string `json:"source"`
	Target    string `json:"target"`
	Predicate string `json:"predicate"`
}

// MappingGraph is an immutable snapshot of a mapping. Every edit produces a new one.
type MappingGraph struct {
	ID        uuid.UUID `json:"id"`
	Nodes     []Node    `json:"nodes"`
	Edges     []Edge    `json:"edges"`
	CreatedAt time.Time `json:"created_at"`
}

// NewEmptyGraph returns a snapshot with no nodes and no edges.
func NewEmptyGraph(now time.Time) MappingGraph {
	return MappingGraph{
		ID:        uuid.New(),
		Nodes:     []Node{},
		Edges:     []Edge{},
		CreatedAt: now,
	}
}

// URIPatterns collects the URI pattern of every non-literal node in node order.
// Duplicates are retained.
func (g MappingGraph) URIPatterns() []string {
	patterns := make([]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.IsLiteral() {
			continue
		}
		patterns = append(patterns, n.URIPattern)
	}
	return patterns
}

// Validate checks structural integrity: known node kinds, unique node ids,
// a URI pattern on every uri_ref node, and edges that reference existing nodes.
func (g MappingGraph) Validate() error {
	var errs []FieldError

	ids := make(map[string]struct{}, len(g.Nodes))
	for i, n := range g.Nodes {
		if n.ID == "" {
			errs = append(errs, FieldError{Field: fieldAt("nodes", i, "id"), Message: "required"})
			continue
		}
		if _, dup := ids[n.ID]; dup {
			errs = append(errs, FieldError{Field: fieldAt("nodes", i, "id"), Message: "duplicate node id"})
		}
		ids[n.ID] = struct{}{}
		if !n.Kind.IsValid() {
			errs = append(errs, FieldError{Field: fieldAt("nodes", i, "kind"), Message: "must be uri_ref or literal"})
		}
		if n.Kind == NodeKindURIRef && strings.TrimSpace(n.URIPattern) == "" {
			errs = append(errs, FieldError{Field: fieldAt("nodes", i, "uri_pattern"), Message: "required for uri_ref nodes"})
		}
	}

	for i, e := range g.Edges {
		if _, ok := ids[e.Source]; !ok {
			errs = append(errs, FieldError{Field: fieldAt("edges", i, "source"), Message: "unknown node"})
		}
		if _, ok := ids[e.Target]; !ok {
			errs = append(errs, FieldError{Field: fieldAt("edges", i, "target"), Message: "unknown node"})
		}
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// clone returns a deep copy so stored snapshots never alias caller slices.
func (g MappingGraph) clone() MappingGraph {
	out := g
	out.Nodes = make([]Node, len(g.Nodes))
	for i, n := range g.Nodes {
		n.RDFTypes = append([]string(nil), n.RDFTypes...)
		out.Nodes[i] = n
	}
	out.Edges = append(make([]Edge, 0, len(g.Edges)), g.Edges...)
	return out
}

func fieldAt(collection string, i int, field string) string {
	return fmt.Sprintf("%s[%d].%s", collection, i, field)
}
