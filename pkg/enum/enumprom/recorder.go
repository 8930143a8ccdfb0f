// Package enumprom exports enum registry events as Prometheus metrics.
package enumprom

import (
	"github.com/prometheus/client_golang/prometheus"

	"enumcore/pkg/enum"
)

// Recorder implements enum.Metrics.
type Recorder struct {
	constants   *prometheus.GaugeVec
	constructed *prometheus.CounterVec
	failures    *prometheus.CounterVec
}

var _ enum.Metrics = (*Recorder)(nil)

// New creates a recorder and registers its collectors with reg.
func New(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		constants: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "enum_constants",
			Help: "Number of constants discovered per declaring type",
		}, []string{"type"}),
		constructed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "enum_instances_constructed_total",
			Help: "Canonical enum instances constructed by declaring type",
		}, []string{"type"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "enum_lookup_failures_total",
			Help: "Failed enum lookups by declaring type and error kind",
		}, []string{"type", "kind"}),
	}
	for _, c := range []prometheus.Collector{r.constants, r.constructed, r.failures} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Install creates a recorder on reg and makes it the process-wide enum
// metrics sink.
func Install(reg prometheus.Registerer) (*Recorder, error) {
	r, err := New(reg)
	if err != nil {
		return nil, err
	}
	enum.SetMetrics(r)
	return r, nil
}

func (r *Recorder) ConstantsDiscovered(typ string, count int) {
	r.constants.WithLabelValues(typ).Set(float64(count))
}

func (r *Recorder) InstanceConstructed(typ, _ string) {
	r.constructed.WithLabelValues(typ).Inc()
}

func (r *Recorder) LookupFailed(typ string, kind enum.Kind) {
	r.failures.WithLabelValues(typ, kind.String()).Inc()
}
