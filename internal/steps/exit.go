package steps

import (
	"context"

	"jokebot/internal/console"
	"jokebot/internal/session"
)

// Exit ends the session.
type Exit struct {
	base
}

// NewExit constructs the exit step.
func NewExit(con console.Console) *Exit {
	return &Exit{base: newBase(con, nil)}
}

// Execute prints the farewell and marks the session as quit.
func (e *Exit) Execute(context.Context, session.State) (session.Update, error) {
	e.console.PrintLine(farewellMessage)
	return session.QuitUpdate(), nil
}
