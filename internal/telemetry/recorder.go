// Package telemetry counts analysis outcomes with Prometheus collectors and
// exports them in the node_exporter textfile format.
package telemetry

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/wehnelt/analysis"
)

const namespace = "wehnelt"

// Group outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeDegraded = "degraded"
	OutcomeFailed   = "failed"
)

// Recorder implements analysis.Recorder on a private Prometheus registry.
type Recorder struct {
	registry *prometheus.Registry
	groups   *prometheus.CounterVec
	failures *prometheus.CounterVec
	chi2Red  *prometheus.GaugeVec
	dSpacing *prometheus.GaugeVec
}

var _ analysis.Recorder = (*Recorder)(nil)

// NewRecorder creates a recorder with its collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		groups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "groups_total",
			Help:      "Ring-order groups processed, by outcome.",
		}, []string{"outcome"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stage_failures_total",
			Help:      "Pipeline stage failures, by stage.",
		}, []string{"stage"}),
		chi2Red: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "chi2_reduced",
			Help:      "Reduced chi-square of the weighted fit, by ring order.",
		}, []string{"n"}),
		dSpacing: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "d_spacing_meters",
			Help:      "Lattice spacing d_n, by ring order and by the fit whose slope produced it (ols is the reported d_n).",
		}, []string{"n", "fit"}),
	}
	r.registry.MustRegister(r.groups, r.failures, r.chi2Red, r.dSpacing)

	return r
}

// Registry returns the registry holding the recorder's collectors.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveGroup records the outcome of one group.
func (r *Recorder) ObserveGroup(res *analysis.GroupResult) {
	n := strconv.FormatUint(uint64(res.N), 10)

	switch {
	case len(res.Errs) == 0:
		r.groups.WithLabelValues(OutcomeOK).Inc()
	case res.DSpacing != nil:
		r.groups.WithLabelValues(OutcomeDegraded).Inc()
	default:
		r.groups.WithLabelValues(OutcomeFailed).Inc()
	}

	for _, e := range res.Errs {
		r.failures.WithLabelValues(string(e.Stage)).Inc()
	}

	if res.Weighted != nil && res.Weighted.StatsErr == nil {
		r.chi2Red.WithLabelValues(n).Set(res.Weighted.Chi2Red)
	}
	for _, d := range []*analysis.DSpacing{res.DSpacing, res.WeightedDSpacing} {
		if d != nil {
			r.dSpacing.WithLabelValues(n, d.Fit.String()).Set(d.D)
		}
	}
}

// WriteTextfile writes every collected metric to path in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}

	return nil
}
