package workflow_test

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"

	"jokebot/internal/console"
	"jokebot/internal/jokes"
	"jokebot/internal/metrics"
	"jokebot/internal/session"
	"jokebot/internal/stage"
	"jokebot/internal/steps"
	"jokebot/internal/workflow"
)

// fiftyChars is a joke long enough for the default critic threshold.
var fiftyChars = strings.Repeat("ha", 25)

type harness struct {
	script *console.Script
	rec    *metrics.Recorder
	trace  []workflow.Step
	engine *workflow.Engine
}

func newHarness(t *testing.T, src jokes.Source, opts workflow.Options, inputs ...string) *harness {
	t.Helper()
	script := console.NewScript(inputs...)
	h := newConsoleHarness(t, script, src, opts)
	h.script = script
	return h
}

// newConsoleHarness wires the real steps to con.
func newConsoleHarness(t *testing.T, con console.Console, src jokes.Source, opts workflow.Options) *harness {
	t.Helper()
	h := &harness{rec: metrics.New()}
	set := workflow.StepSet{
		Menu:     steps.NewMenu(con, h.rec),
		Writer:   steps.NewWriter(src, con, rand.New(rand.NewPCG(1, 1)), h.rec),
		Critic:   steps.NewCritic(con, steps.DefaultMinApprovedLength, h.rec),
		Category: steps.NewCategory(con, h.rec),
		Exit:     steps.NewExit(con),
	}
	opts.Metrics = h.rec
	inner := opts.Observer
	opts.Observer = func(step workflow.Step, state session.State) {
		h.trace = append(h.trace, step)
		if inner != nil {
			inner(step, state)
		}
	}
	engine, err := workflow.NewEngine(set, opts)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	h.engine = engine
	return h
}

func stubSource(text string) jokes.Source {
	return jokes.SourceFunc(func(context.Context, string, string) (string, error) {
		return text, nil
	})
}

func noopHandler() stage.Handler {
	return stage.HandlerFunc(func(context.Context, session.State) (session.Update, error) {
		return session.Update{}, nil
	})
}

func stepCount(t *testing.T, rec *metrics.Recorder, step workflow.Step) float64 {
	t.Helper()
	families, err := rec.Gatherer().Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	for _, family := range families {
		if family.GetName() != "jokebot_workflow_steps_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "step" && label.GetValue() == string(step) {
					return metric.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}
