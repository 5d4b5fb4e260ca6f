package workflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jokebot/internal/session"
	"jokebot/internal/workflow"
)

func TestRouteIsTotal(t *testing.T) {
	assert.Equal(t, workflow.StepWriter, workflow.Route(session.ChoiceNext))
	assert.Equal(t, workflow.StepCategory, workflow.Route(session.ChoiceCategory))
	assert.Equal(t, workflow.StepExit, workflow.Route(session.ChoiceQuit))
	for _, other := range []session.Choice{"", "n", "bogus", "QUIT"} {
		assert.Equal(t, workflow.StepExit, workflow.Route(other), "choice %q", other)
	}
}

func TestNextTransitions(t *testing.T) {
	state := session.Default()

	next, ok := workflow.Next(workflow.StepWriter, state)
	assert.True(t, ok)
	assert.Equal(t, workflow.StepCritic, next)

	next, ok = workflow.Next(workflow.StepCritic, state)
	assert.True(t, ok)
	assert.Equal(t, workflow.StepMenu, next)

	next, ok = workflow.Next(workflow.StepCategory, state)
	assert.True(t, ok)
	assert.Equal(t, workflow.StepMenu, next)

	state.Choice = session.ChoiceCategory
	next, ok = workflow.Next(workflow.StepMenu, state)
	assert.True(t, ok)
	assert.Equal(t, workflow.StepCategory, next)

	_, ok = workflow.Next(workflow.StepExit, state)
	assert.False(t, ok, "exit is terminal")

	_, ok = workflow.Next(workflow.Step("unknown"), state)
	assert.False(t, ok)
}
