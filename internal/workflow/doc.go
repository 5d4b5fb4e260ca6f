// Package workflow sequences the jokebot steps.
//
// The Engine owns the session state for the duration of a run. It starts at
// the menu, executes one stage.Handler at a time, merges each partial update,
// and follows the transition table until the exit step has run:
//
//	menu     -> Route(choice): writer | category | exit
//	writer   -> critic
//	critic   -> menu
//	category -> menu
//	exit     -> (halt)
//
// A configurable step bound turns a runaway loop into ErrStepLimit instead of
// a hang. Execution is strictly sequential; the only blocking points are the
// console reads inside the menu and category steps.
package workflow
