package stage

import (
	"context"
	"log/slog"

	"jokebot/internal/session"
)

// Handler describes the contract the workflow engine needs from each step.
// Execute receives a snapshot of the session state and returns the partial
// update the engine merges before moving on.
type Handler interface {
	Execute(context.Context, session.State) (session.Update, error)
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(context.Context, session.State) (session.Update, error)

// Execute calls f.
func (f HandlerFunc) Execute(ctx context.Context, state session.State) (session.Update, error) {
	return f(ctx, state)
}

// LoggerAware is implemented by handlers that accept a step-scoped logger
// before each execution.
type LoggerAware interface {
	SetLogger(*slog.Logger)
}
