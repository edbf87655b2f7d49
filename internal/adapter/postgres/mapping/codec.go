package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/golang/snappy"

	"github.com/heartmarshall/ontomap-backend/internal/domain"
)

// encodeGraph serializes a snapshot as snappy-compressed JSON.
func encodeGraph(g domain.MappingGraph) ([]byte, error) {
	raw, err := json.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("marshal graph %s: %w", g.ID, err)
	}
	return snappy.Encode(nil, raw), nil
}

func decodeGraph(data []byte) (domain.MappingGraph, error) {
	raw, err := snappy.Decode(nil, data)
	if err != nil {
		return domain.MappingGraph{}, fmt.Errorf("decompress graph: %w", err)
	}

	var g domain.MappingGraph
	if err := json.Unmarshal(raw, &g); err != nil {
		return domain.MappingGraph{}, fmt.Errorf("unmarshal graph: %w", err)
	}
	if g.Nodes == nil {
		g.Nodes = []domain.Node{}
	}
	if g.Edges == nil {
		g.Edges = []domain.Edge{}
	}
	g.CreatedAt = g.CreatedAt.UTC()
	return g, nil
}
