package workflow

import "jokebot/internal/session"

// Step names a node of the workflow.
type Step string

const (
	StepMenu     Step = "menu"
	StepWriter   Step = "writer"
	StepCritic   Step = "critic"
	StepCategory Step = "category"
	StepExit     Step = "exit"
)

// Steps lists every step in declaration order.
func Steps() []Step {
	return []Step{StepMenu, StepWriter, StepCritic, StepCategory, StepExit}
}

var unconditional = map[Step]Step{
	StepWriter:   StepCritic,
	StepCritic:   StepMenu,
	StepCategory: StepMenu,
}

// Route is the branch evaluated after the menu step. Any value other than the
// three known choices routes to exit.
func Route(choice session.Choice) Step {
	switch choice {
	case session.ChoiceNext:
		return StepWriter
	case session.ChoiceCategory:
		return StepCategory
	case session.ChoiceQuit:
		return StepExit
	default:
		return StepExit
	}
}

// Next returns the step that follows current given the merged state. The
// boolean is false once current is terminal.
func Next(current Step, state session.State) (Step, bool) {
	switch current {
	case StepMenu:
		return Route(state.Choice), true
	case StepExit:
		return "", false
	}
	next, ok := unconditional[current]
	return next, ok
}
