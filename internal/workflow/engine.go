package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"jokebot/internal/logging"
	"jokebot/internal/metrics"
	"jokebot/internal/services"
	"jokebot/internal/session"
	"jokebot/internal/stage"
)

// DefaultMaxSteps bounds a run when Options.MaxSteps is not set.
const DefaultMaxSteps = 100

// StepSet bundles the concrete handlers the engine orchestrates.
type StepSet struct {
	Menu     stage.Handler
	Writer   stage.Handler
	Critic   stage.Handler
	Category stage.Handler
	Exit     stage.Handler
}

func (s StepSet) handlers() map[Step]stage.Handler {
	return map[Step]stage.Handler{
		StepMenu:     s.Menu,
		StepWriter:   s.Writer,
		StepCritic:   s.Critic,
		StepCategory: s.Category,
		StepExit:     s.Exit,
	}
}

// Observer is notified after every step with the merged state.
type Observer func(step Step, state session.State)

// Options tunes an Engine.
type Options struct {
	MaxSteps  int
	Logger    *slog.Logger
	Metrics   *metrics.Recorder
	SessionID string
	Observer  Observer
}

// Engine runs the step graph against a session state.
type Engine struct {
	handlers  map[Step]stage.Handler
	maxSteps  int
	logger    *slog.Logger
	metrics   *metrics.Recorder
	sessionID string
	observer  Observer
}

// NewEngine validates the step set and returns a ready engine.
func NewEngine(set StepSet, opts Options) (*Engine, error) {
	handlers := set.handlers()
	var missing []error
	for _, step := range Steps() {
		if handlers[step] == nil {
			missing = append(missing, fmt.Errorf("step %s has no handler", step))
		}
	}
	if len(missing) > 0 {
		return nil, services.Wrap(services.ErrConfiguration, "engine", "configure", "", errors.Join(missing...))
	}

	maxSteps := opts.MaxSteps
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	return &Engine{
		handlers:  handlers,
		maxSteps:  maxSteps,
		logger:    logging.NewComponentLogger(opts.Logger, "workflow"),
		metrics:   opts.Metrics,
		sessionID: opts.SessionID,
		observer:  opts.Observer,
	}, nil
}

// MaxSteps reports the configured step bound.
func (e *Engine) MaxSteps() int {
	return e.maxSteps
}

// Run executes steps from the menu until the exit step has run and returns the
// final state. On failure the state merged so far is returned with the error.
func (e *Engine) Run(ctx context.Context, initial session.State) (session.State, error) {
	state := initial
	if state.Choice == "" {
		state.Choice = session.ChoiceNext
	}
	if err := state.Validate(); err != nil {
		return state, err
	}

	ctx = services.WithSessionID(ctx, e.sessionID)
	runLogger := logging.WithContext(ctx, e.logger)
	runLogger.Info("workflow started",
		logging.String(logging.FieldEventType, "workflow_start"),
		logging.String("category", state.Category),
		logging.String("language", state.Language),
		logging.Int("max_steps", e.maxSteps),
	)

	start := time.Now()
	executed := 0
	current := StepMenu
	for {
		if err := ctx.Err(); err != nil {
			runLogger.Info("workflow interrupted", logging.Int("steps", executed))
			e.finish(runLogger, start, executed, state)
			return state, err
		}
		if executed >= e.maxSteps {
			err := services.Wrap(services.ErrStepLimit, "engine", "run",
				fmt.Sprintf("exit not reached within %d steps", e.maxSteps), nil)
			logging.ErrorWithContext(runLogger, "workflow aborted", "step_limit",
				logging.Int("steps", executed),
				logging.String("pending_step", string(current)),
				logging.String(logging.FieldErrorHint, "raise bot.max_steps or check for a routing loop"),
			)
			e.finish(runLogger, start, executed, state)
			return state, err
		}
		executed++

		update, err := e.execute(ctx, current, executed, state)
		e.metrics.StepExecuted(string(current), err)
		if err != nil {
			e.finish(runLogger, start, executed, state)
			return state, err
		}
		state.Apply(update)
		if e.observer != nil {
			e.observer(current, state)
		}

		next, ok := Next(current, state)
		if !ok {
			e.finish(runLogger, start, executed, state)
			return state, nil
		}
		current = next
	}
}

func (e *Engine) execute(ctx context.Context, step Step, index int, state session.State) (session.Update, error) {
	stepCtx := services.WithStep(ctx, string(step))
	stepCtx = services.WithStepIndex(stepCtx, index)
	stepLogger := logging.WithContext(stepCtx, e.logger)

	handler := e.handlers[step]
	if aware, ok := handler.(stage.LoggerAware); ok {
		aware.SetLogger(stepLogger)
	}

	stepStart := time.Now()
	stepLogger.Debug("step started",
		logging.String(logging.FieldEventType, "step_start"),
		logging.Int("jokes", len(state.Jokes)),
	)

	update, err := handler.Execute(stepCtx, state)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			stepLogger.Debug("step interrupted")
			return session.Update{}, err
		}
		logging.ErrorWithContext(stepLogger, "step failed", "step_failure",
			logging.String("error_message", services.Details(err).Message),
			logging.Error(err),
		)
		return session.Update{}, err
	}

	stepLogger.Debug("step completed",
		logging.String(logging.FieldEventType, "step_complete"),
		logging.Bool("update_empty", update.Empty()),
		logging.Duration("step_duration", time.Since(stepStart)),
	)
	return update, nil
}

func (e *Engine) finish(logger *slog.Logger, start time.Time, executed int, state session.State) {
	elapsed := time.Since(start)
	e.metrics.SessionFinished(elapsed, executed)
	logger.Info("workflow finished",
		logging.String(logging.FieldEventType, "workflow_complete"),
		logging.Int("steps", executed),
		logging.Int("jokes", len(state.Jokes)),
		logging.Int("approved", state.Approved()),
		logging.Bool("quit", state.Quit),
		logging.Duration("duration", elapsed),
	)
}
