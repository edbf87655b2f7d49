package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxMappingHistory caps the number of snapshots a mapping keeps.
const MaxMappingHistory = 50

// Mapping is a named unit holding one Source and a bounded, linear history of
// graph snapshots. History is ordered oldest first; CurrentID always names an
// entry of History.
type Mapping struct {
	ID        uuid.UUID
	Name      string
	SourceID  uuid.UUID
	History   []MappingGraph
	CurrentID uuid.UUID
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMapping creates a mapping whose history holds a single empty snapshot.
func NewMapping(name string, sourceID uuid.UUID, now time.Time) *Mapping {
	initial := NewEmptyGraph(now)
	return &Mapping{
		ID:        uuid.New(),
		Name:      name,
		SourceID:  sourceID,
		History:   []MappingGraph{initial},
		CurrentID: initial.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Current returns the current snapshot.
// A mapping whose CurrentID is absent from History is a broken invariant and panics.
func (m *Mapping) Current() MappingGraph {
	idx := m.indexOf(m.CurrentID)
	if idx < 0 {
		panic("domain: mapping " + m.ID.String() + " current snapshot " + m.CurrentID.String() + " absent from history")
	}
	return m.History[idx]
}

// Snapshot returns the history entry with the given id.
func (m *Mapping) Snapshot(id uuid.UUID) (MappingGraph, bool) {
	idx := m.indexOf(id)
	if idx < 0 {
		return MappingGraph{}, false
	}
	return m.History[idx], true
}

// Append pushes g as the new current snapshot. A snapshot without an id gets a
// fresh one. When history exceeds MaxMappingHistory the oldest entries are evicted.
func (m *Mapping) Append(g MappingGraph, now time.Time) MappingGraph {
	snap := g.clone()
	if snap.ID == uuid.Nil || m.indexOf(snap.ID) >= 0 {
		snap.ID = uuid.New()
	}
	if snap.Nodes == nil {
		snap.Nodes = []Node{}
	}
	if snap.Edges == nil {
		snap.Edges = []Edge{}
	}
	snap.CreatedAt = now

	m.History = append(m.History, snap)
	if overflow := len(m.History) - MaxMappingHistory; overflow > 0 {
		m.History = append([]MappingGraph(nil), m.History[overflow:]...)
	}
	m.CurrentID = snap.ID
	m.UpdatedAt = now
	return snap
}

// Revert makes snapshotID current and discards every entry after it.
// Reverting to the current snapshot removes nothing.
func (m *Mapping) Revert(snapshotID uuid.UUID, now time.Time) error {
	idx := m.indexOf(snapshotID)
	if idx < 0 {
		return &SnapshotNotFoundError{MappingID: m.ID, SnapshotID: snapshotID}
	}
	m.History = m.History[:idx+1]
	m.CurrentID = snapshotID
	m.UpdatedAt = now
	return nil
}

func (m *Mapping) indexOf(id uuid.UUID) int {
	for i, s := range m.History {
		if s.ID == id {
			return i
		}
	}
	return -1
}
