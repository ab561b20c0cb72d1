package store

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// instrumented wraps a Store with prometheus counters and latency histograms
// per operation.
type instrumented struct {
	inner Store

	ops      *prometheus.CounterVec
	errors   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// Instrument returns a Store that records operation counts, error counts and
// durations against the given registerer. The wrapped store is otherwise
// untouched; Walker support is intentionally not forwarded so the handle
// layer's portable traversal (which goes through List) stays measurable.
func Instrument(inner Store, reg prometheus.Registerer) Store {
	factory := promauto.With(reg)
	return &instrumented{
		inner: inner,
		ops: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arbor_store_ops_total",
				Help: "Total number of backing store operations",
			},
			[]string{"op"},
		),
		errors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arbor_store_errors_total",
				Help: "Total number of failed backing store operations",
			},
			[]string{"op"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "arbor_store_op_duration_seconds",
				Help:    "Backing store operation duration in seconds",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
			},
			[]string{"op"},
		),
	}
}

func (m *instrumented) observe(op string, start time.Time, err error) {
	m.ops.WithLabelValues(op).Inc()
	m.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		m.errors.WithLabelValues(op).Inc()
	}
}

func (m *instrumented) Stat(path string) Kind {
	start := time.Now()
	kind := m.inner.Stat(path)
	m.observe("stat", start, nil)
	return kind
}

func (m *instrumented) Info(path string) (Info, error) {
	start := time.Now()
	info, err := m.inner.Info(path)
	m.observe("info", start, err)
	return info, err
}

func (m *instrumented) List(path string) ([]Entry, error) {
	start := time.Now()
	entries, err := m.inner.List(path)
	m.observe("list", start, err)
	return entries, err
}

func (m *instrumented) CreateFile(path string) error {
	start := time.Now()
	err := m.inner.CreateFile(path)
	m.observe("create_file", start, err)
	return err
}

func (m *instrumented) CreateFolder(path string) error {
	start := time.Now()
	err := m.inner.CreateFolder(path)
	m.observe("create_folder", start, err)
	return err
}

func (m *instrumented) Delete(path string, recursive bool) error {
	start := time.Now()
	err := m.inner.Delete(path, recursive)
	m.observe("delete", start, err)
	return err
}

func (m *instrumented) Rename(oldPath, newPath string) error {
	start := time.Now()
	err := m.inner.Rename(oldPath, newPath)
	m.observe("rename", start, err)
	return err
}

func (m *instrumented) Move(oldPath, newPath string) error {
	start := time.Now()
	err := m.inner.Move(oldPath, newPath)
	m.observe("move", start, err)
	return err
}

func (m *instrumented) Read(path string) ([]byte, error) {
	start := time.Now()
	data, err := m.inner.Read(path)
	m.observe("read", start, err)
	return data, err
}

func (m *instrumented) Write(path string, data []byte) error {
	start := time.Now()
	err := m.inner.Write(path, data)
	m.observe("write", start, err)
	return err
}

func (m *instrumented) WorkingDir() (string, error) {
	return m.inner.WorkingDir()
}

func (m *instrumented) HomeDir() (string, bool) {
	return m.inner.HomeDir()
}

func (m *instrumented) TempDir() (string, bool) {
	return m.inner.TempDir()
}
