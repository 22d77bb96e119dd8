package dispatcher

import (
	"sort"
	"sync"
	"time"

	"github.com/dshills/keycalc/internal/input"
)

// Metrics collects dispatch statistics.
type Metrics struct {
	mu sync.RWMutex

	// Per-kind metrics
	kinds map[input.Kind]*KindMetrics

	// Global counters
	totalDispatches uint64
	totalRejected   uint64
	totalErrors     uint64
}

// KindMetrics holds metrics for one action kind.
type KindMetrics struct {
	Kind          input.Kind
	DispatchCount uint64
	RejectCount   uint64
	ErrorCount    uint64
	LastDispatch  time.Time
}

// MetricsSnapshot is a point-in-time copy of the metrics.
type MetricsSnapshot struct {
	TotalDispatches uint64
	TotalRejected   uint64
	TotalErrors     uint64
	Kinds           []KindMetrics
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{kinds: make(map[input.Kind]*KindMetrics)}
}

// Record records the outcome of one dispatch.
func (m *Metrics) Record(kind input.Kind, rejected, failed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	km := m.kinds[kind]
	if km == nil {
		km = &KindMetrics{Kind: kind}
		m.kinds[kind] = km
	}
	km.LastDispatch = time.Now()

	m.totalDispatches++
	km.DispatchCount++
	if rejected {
		m.totalRejected++
		km.RejectCount++
	}
	if failed {
		m.totalErrors++
		km.ErrorCount++
	}
}

// Snapshot returns a copy of the metrics, kinds sorted by dispatch count.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := MetricsSnapshot{
		TotalDispatches: m.totalDispatches,
		TotalRejected:   m.totalRejected,
		TotalErrors:     m.totalErrors,
		Kinds:           make([]KindMetrics, 0, len(m.kinds)),
	}
	for _, km := range m.kinds {
		snap.Kinds = append(snap.Kinds, *km)
	}
	sort.Slice(snap.Kinds, func(i, j int) bool {
		if snap.Kinds[i].DispatchCount != snap.Kinds[j].DispatchCount {
			return snap.Kinds[i].DispatchCount > snap.Kinds[j].DispatchCount
		}
		return snap.Kinds[i].Kind < snap.Kinds[j].Kind
	})
	return snap
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.kinds = make(map[input.Kind]*KindMetrics)
	m.totalDispatches = 0
	m.totalRejected = 0
	m.totalErrors = 0
}
