// FILE: lixenwraith/sitecore/internal/metrics/recorder.go

// Package metrics records generator pipeline observations.
//
// Components receive a Recorder and default to NoopRecorder, so metrics
// stay optional and callers never nil-check.
package metrics

import "time"

// ResultLabel enumerates generator result categories for counters.
type ResultLabel string

const (
	ResultSuccess  ResultLabel = "success"
	ResultFailed   ResultLabel = "failed"
	ResultCanceled ResultLabel = "canceled"
)

// Recorder defines observability hooks for pipeline runs.
type Recorder interface {
	ObserveGeneratorDuration(generator string, d time.Duration)
	IncGeneratorResult(generator string, result ResultLabel)
	AddGeneratedPages(generator string, n int)
	ObserveRunDuration(d time.Duration)
	SetPageCount(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveGeneratorDuration(string, time.Duration) {}
func (NoopRecorder) IncGeneratorResult(string, ResultLabel)         {}
func (NoopRecorder) AddGeneratedPages(string, int)                  {}
func (NoopRecorder) ObserveRunDuration(time.Duration)               {}
func (NoopRecorder) SetPageCount(int)                               {}
