// Package metrics provides Prometheus instrumentation for a jokebot session.
//
// Each Recorder owns a private registry; nothing is served over the network.
// At the end of a run the registry can be written to a node-exporter textfile.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder collects session counters. A nil Recorder discards everything.
type Recorder struct {
	registry *prometheus.Registry

	stepsTotal         *prometheus.CounterVec
	stepFailuresTotal  *prometheus.CounterVec
	jokesTotal         *prometheus.CounterVec
	categoryChanges    *prometheus.CounterVec
	invalidInputsTotal *prometheus.CounterVec
	sessionDuration    prometheus.Gauge
	sessionSteps       prometheus.Gauge
}

// New creates a Recorder with its own registry.
func New() *Recorder {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	return &Recorder{
		registry: registry,
		stepsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jokebot_workflow_steps_total",
				Help: "Total number of workflow steps executed",
			},
			[]string{"step"},
		),
		stepFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jokebot_workflow_step_failures_total",
				Help: "Total number of workflow steps that returned an error",
			},
			[]string{"step"},
		),
		jokesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jokebot_jokes_total",
				Help: "Total number of jokes reviewed by the critic",
			},
			[]string{"category", "verdict"}, // verdict: approved, rejected
		),
		categoryChanges: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jokebot_category_changes_total",
				Help: "Total number of category selections",
			},
			[]string{"category"},
		),
		invalidInputsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jokebot_invalid_inputs_total",
				Help: "Total number of console inputs that were coerced or rejected",
			},
			[]string{"prompt"},
		),
		sessionDuration: factory.NewGauge(prometheus.GaugeOpts{
			Name: "jokebot_session_duration_seconds",
			Help: "Wall-clock duration of the last session",
		}),
		sessionSteps: factory.NewGauge(prometheus.GaugeOpts{
			Name: "jokebot_session_steps",
			Help: "Number of steps executed by the last session",
		}),
	}
}

// StepExecuted counts one completed or failed step execution.
func (r *Recorder) StepExecuted(step string, err error) {
	if r == nil {
		return
	}
	r.stepsTotal.WithLabelValues(step).Inc()
	if err != nil {
		r.stepFailuresTotal.WithLabelValues(step).Inc()
	}
}

// JokeReviewed counts a critic verdict.
func (r *Recorder) JokeReviewed(category string, approved bool) {
	if r == nil {
		return
	}
	verdict := "rejected"
	if approved {
		verdict = "approved"
	}
	r.jokesTotal.WithLabelValues(category, verdict).Inc()
}

// CategoryChanged counts an accepted category selection.
func (r *Recorder) CategoryChanged(category string) {
	if r == nil {
		return
	}
	r.categoryChanges.WithLabelValues(category).Inc()
}

// InvalidInput counts console input that a prompt could not accept as-is.
func (r *Recorder) InvalidInput(prompt string) {
	if r == nil {
		return
	}
	r.invalidInputsTotal.WithLabelValues(prompt).Inc()
}

// SessionFinished records the session totals.
func (r *Recorder) SessionFinished(duration time.Duration, steps int) {
	if r == nil {
		return
	}
	r.sessionDuration.Set(duration.Seconds())
	r.sessionSteps.Set(float64(steps))
}

// Gatherer exposes the registry for tests and exporters.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	if r == nil {
		return prometheus.NewRegistry()
	}
	return r.registry
}

// WriteTextfile writes the registry in the Prometheus text format, atomically
// replacing path.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.Gatherer())
}
