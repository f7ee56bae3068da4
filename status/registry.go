// Package status keeps process-wide counters and labels that frontends and the
// server update from their loops and report on demand.
package status

import "sync/atomic"

// Label is an atomically replaced string; the zero value is empty
type Label struct {
	ptr atomic.Pointer[string]
}

// Store replaces the value
func (l *Label) Store(v string) { l.ptr.Store(&v) }

// Load returns the value
func (l *Label) Load() string {
	if p := l.ptr.Load(); p != nil {
		return *p
	}
	return ""
}

// Registry holds named counters and labels
type Registry struct {
	counters *MetricMap[atomic.Int64]
	labels   *MetricMap[Label]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		counters: NewMetricMap[atomic.Int64](),
		labels:   NewMetricMap[Label](),
	}
}

// Counter returns the counter for key
func (r *Registry) Counter(key string) *atomic.Int64 { return r.counters.Get(key) }

// Label returns the label for key
func (r *Registry) Label(key string) *Label { return r.labels.Get(key) }

// Snapshot is a point-in-time copy of every metric
type Snapshot struct {
	Counters map[string]int64  `json:"counters"`
	Labels   map[string]string `json:"labels"`
}

// Snapshot reads every metric; values registered concurrently may be missed
func (r *Registry) Snapshot() Snapshot {
	s := Snapshot{
		Counters: make(map[string]int64, r.counters.Count()),
		Labels:   make(map[string]string, r.labels.Count()),
	}
	r.counters.Range(func(k string, c *atomic.Int64) { s.Counters[k] = c.Load() })
	r.labels.Range(func(k string, l *Label) { s.Labels[k] = l.Load() })
	return s
}
