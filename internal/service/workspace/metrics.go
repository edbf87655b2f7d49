package workspace

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/ontomap-backend/internal/domain"
)

// Operation names used as the "op" metric label.
const (
	opCreateWorkspace    = "create_workspace"
	opGetWorkspace       = "get_workspace"
	opListWorkspaces     = "list_workspaces"
	opWorkspaceDetails   = "workspace_details"
	opUpdateWorkspace    = "update_workspace"
	opDeleteWorkspace    = "delete_workspace"
	opAddMapping         = "add_mapping"
	opRemoveMapping      = "remove_mapping"
	opGetMapping         = "get_mapping"
	opUpdateGraph        = "update_mapping_graph"
	opRevertMapping      = "revert_mapping"
	opAddPrefix          = "add_prefix"
	opRemovePrefix       = "remove_prefix"
	opUnassignedPrefixes = "list_unassigned_prefixes"
	opAddOntology        = "add_ontology"
	opRemoveOntology     = "remove_ontology"
	opReassignPrefix     = "reassign_ontology_prefix"
	opSourceContent      = "source_content"
	opOntologyContent    = "ontology_content"
)

// Metrics holds coordinator counters and latency histograms.
type Metrics struct {
	ops      *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates coordinator metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ontomap",
			Subsystem: "workspace",
			Name:      "operations_total",
			Help:      "Workspace coordinator operations by outcome.",
		}, []string{"op", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ontomap",
			Subsystem: "workspace",
			Name:      "operation_duration_seconds",
			Help:      "Workspace coordinator operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
	}
	reg.MustRegister(m.ops, m.duration)
	return m
}

func (m *Metrics) observe(op string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.ops.WithLabelValues(op, outcome(err)).Inc()
	m.duration.WithLabelValues(op).Observe(elapsed.Seconds())
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrAlreadyExists),
		errors.Is(err, domain.ErrPrefixInUse),
		errors.Is(err, domain.ErrPrefixAlreadyBound):
		return "rejected"
	default:
		return "error"
	}
}
