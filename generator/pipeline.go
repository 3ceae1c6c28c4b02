// FILE: lixenwraith/sitecore/generator/pipeline.go
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/sitecore/internal/metrics"
	"github.com/lixenwraith/sitecore/page"
)

type entry struct {
	name string
	gen  Generator
}

// Pipeline runs generators sequentially in the order they were added.
type Pipeline struct {
	entries  []entry
	logger   *slog.Logger
	recorder metrics.Recorder
	progress ProgressFunc
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger (default slog.Default()).
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithRecorder sets the metrics recorder (default metrics.NoopRecorder).
func WithRecorder(recorder metrics.Recorder) Option {
	return func(p *Pipeline) {
		if recorder != nil {
			p.recorder = recorder
		}
	}
}

// WithProgress sets the callback receiving every generator's progress steps.
func WithProgress(fn ProgressFunc) Option {
	return func(p *Pipeline) { p.progress = fn }
}

// NewPipeline creates an empty pipeline.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{
		logger:   slog.Default(),
		recorder: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Add appends a generator under name.
func (p *Pipeline) Add(name string, g Generator) *Pipeline {
	p.entries = append(p.entries, entry{name: name, gen: g})
	return p
}

// Names returns the generator names in run order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.entries))
	for i, e := range p.entries {
		names[i] = e.name
	}
	return names
}

// Result describes one generator's contribution to a run.
type Result struct {
	Name     string
	Produced int
	Added    int
	Replaced int
	Duration time.Duration
}

// Report summarizes a pipeline run.
type Report struct {
	RunID      string
	Generators []Result
	Duration   time.Duration
}

// Run applies every generator in order and returns the combined collection.
// The input collection is not modified. The first generator error, or a
// context cancellation between generators, aborts the run.
func (p *Pipeline) Run(ctx context.Context, pages *page.Collection) (*page.Collection, Report, error) {
	report := Report{RunID: uuid.NewString()}
	logger := p.logger.With(slog.String("run_id", report.RunID))
	start := time.Now()

	current := pages.Clone()

	for _, e := range p.entries {
		if err := ctx.Err(); err != nil {
			p.recorder.IncGeneratorResult(e.name, metrics.ResultCanceled)
			logger.Warn("Pipeline canceled", slog.String("generator", e.name), slog.String("error", err.Error()))
			return nil, report, fmt.Errorf("generator %q: %w", e.name, err)
		}

		t0 := time.Now()
		out, err := e.gen.Generate(ctx, current.Clone(), p.stepReporter(e.name))
		dur := time.Since(t0)
		p.recorder.ObserveGeneratorDuration(e.name, dur)

		if err != nil {
			p.recorder.IncGeneratorResult(e.name, metrics.ResultFailed)
			logger.Error("Generator failed", slog.String("generator", e.name), slog.String("error", err.Error()))
			return nil, report, fmt.Errorf("generator %q: %w", e.name, err)
		}

		res := Result{Name: e.name, Produced: out.Len(), Duration: dur}
		for pg := range out.All() {
			if current.Set(pg) {
				res.Replaced++
			} else {
				res.Added++
			}
		}
		report.Generators = append(report.Generators, res)

		p.recorder.IncGeneratorResult(e.name, metrics.ResultSuccess)
		p.recorder.AddGeneratedPages(e.name, res.Produced)
		logger.Debug("Generator finished",
			slog.String("generator", e.name),
			slog.Int("produced", res.Produced),
			slog.Int("added", res.Added),
			slog.Int("replaced", res.Replaced),
			slog.Float64("duration_ms", float64(dur.Microseconds())/1000))
	}

	report.Duration = time.Since(start)
	p.recorder.ObserveRunDuration(report.Duration)
	p.recorder.SetPageCount(current.Len())
	logger.Info("Pipeline finished",
		slog.Int("generators", len(p.entries)),
		slog.Int("pages_in", pages.Len()),
		slog.Int("pages_out", current.Len()),
		slog.Float64("duration_ms", float64(report.Duration.Microseconds())/1000))

	return current, report, nil
}

// stepReporter tags steps with the generator name before forwarding them.
func (p *Pipeline) stepReporter(name string) ProgressFunc {
	return func(s Step) {
		if p.progress == nil {
			return
		}
		s.Generator = name
		p.progress(s)
	}
}
