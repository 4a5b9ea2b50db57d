package metrics

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const namespace = "cosim"

// Status label values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Registry holds the component metrics.
type Registry struct {
	registry *prometheus.Registry

	ComponentOperationsTotal   *prometheus.CounterVec
	ComponentOperationDuration *prometheus.HistogramVec
	ComponentErrorsTotal       *prometheus.CounterVec
	ComponentSimulatedSeconds  *prometheus.GaugeVec
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a registry with all metrics initialized.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}
	r.initComponentMetrics()
	return r
}

func (r *Registry) initComponentMetrics() {
	r.ComponentOperationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "component_operations_total",
			Help:      "Total number of component contract operations",
		},
		[]string{"component", "op", "status"},
	)

	r.ComponentOperationDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "component_operation_duration_seconds",
			Help:      "Component operation wall-clock duration in seconds",
			Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1.0},
		},
		[]string{"component", "op"},
	)

	r.ComponentErrorsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "component_errors_total",
			Help:      "Component operation failures by error kind",
		},
		[]string{"component", "op", "kind"},
	)

	r.ComponentSimulatedSeconds = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "component_simulated_seconds",
			Help:      "Simulated time advanced since the last initialize or reset",
		},
		[]string{"component"},
	)
}

// GetPrometheusRegistry returns the underlying Prometheus registry.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// RecordOperation records one component operation. kind is the error kind
// label and is ignored when err is nil.
func (r *Registry) RecordOperation(component, op string, err error, kind string, duration time.Duration) {
	status := StatusSuccess
	if err != nil {
		status = StatusError
		r.ComponentErrorsTotal.WithLabelValues(component, op, kind).Inc()
	}
	r.ComponentOperationsTotal.WithLabelValues(component, op, status).Inc()
	r.ComponentOperationDuration.WithLabelValues(component, op).Observe(duration.Seconds())
}

// AdvanceSimulatedTime adds dt to the component's simulated clock.
func (r *Registry) AdvanceSimulatedTime(component string, dt float64) {
	r.ComponentSimulatedSeconds.WithLabelValues(component).Add(dt)
}

// ResetSimulatedTime zeroes the component's simulated clock.
func (r *Registry) ResetSimulatedTime(component string) {
	r.ComponentSimulatedSeconds.WithLabelValues(component).Set(0)
}

// WriteText writes every gathered metric family in the Prometheus text
// exposition format.
func (r *Registry) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
