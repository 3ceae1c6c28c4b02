// FILE: lixenwraith/sitecore/internal/metrics/prometheus_recorder.go
package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	generatorDuration *prom.HistogramVec
	generatorResults  *prom.CounterVec
	generatedPages    *prom.CounterVec
	runDuration       prom.Histogram
	pageCount         prom.Gauge
}

// NewPrometheusRecorder constructs the metrics and registers them with reg.
// A nil reg gets a private registry.
func NewPrometheusRecorder(reg prom.Registerer) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		generatorDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "sitecore",
			Name:      "generator_duration_seconds",
			Help:      "Duration of individual generator runs",
			Buckets:   prom.DefBuckets,
		}, []string{"generator"}),
		generatorResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sitecore",
			Name:      "generator_results_total",
			Help:      "Generator run counts by outcome",
		}, []string{"generator", "result"}),
		generatedPages: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sitecore",
			Name:      "generated_pages_total",
			Help:      "Pages returned by each generator",
		}, []string{"generator"}),
		runDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "sitecore",
			Name:      "pipeline_duration_seconds",
			Help:      "Total pipeline run duration",
			Buckets:   prom.DefBuckets,
		}),
		pageCount: prom.NewGauge(prom.GaugeOpts{
			Namespace: "sitecore",
			Name:      "pages",
			Help:      "Pages in the collection after the last pipeline run",
		}),
	}
	reg.MustRegister(pr.generatorDuration, pr.generatorResults, pr.generatedPages, pr.runDuration, pr.pageCount)
	return pr
}

// ObserveGeneratorDuration records one generator run duration.
func (p *PrometheusRecorder) ObserveGeneratorDuration(generator string, d time.Duration) {
	if p == nil {
		return
	}
	p.generatorDuration.WithLabelValues(generator).Observe(d.Seconds())
}

// IncGeneratorResult counts a generator outcome.
func (p *PrometheusRecorder) IncGeneratorResult(generator string, result ResultLabel) {
	if p == nil {
		return
	}
	p.generatorResults.WithLabelValues(generator, string(result)).Inc()
}

// AddGeneratedPages adds to the pages produced by a generator.
func (p *PrometheusRecorder) AddGeneratedPages(generator string, n int) {
	if p == nil {
		return
	}
	p.generatedPages.WithLabelValues(generator).Add(float64(n))
}

// ObserveRunDuration records a whole pipeline run duration.
func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.runDuration.Observe(d.Seconds())
}

// SetPageCount sets the page count after a run.
func (p *PrometheusRecorder) SetPageCount(n int) {
	if p == nil {
		return
	}
	p.pageCount.Set(float64(n))
}
