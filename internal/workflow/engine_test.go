package workflow_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jokebot/internal/console"
	"jokebot/internal/jokes"
	"jokebot/internal/logging"
	"jokebot/internal/services"
	"jokebot/internal/session"
	"jokebot/internal/stage"
	"jokebot/internal/testsupport"
	"jokebot/internal/workflow"
)

func TestRunQuitImmediately(t *testing.T) {
	h := newHarness(t, stubSource(fiftyChars), workflow.Options{}, "q")

	final, err := h.engine.Run(context.Background(), session.Default())
	require.NoError(t, err)
	assert.True(t, final.Quit)
	assert.Empty(t, final.Jokes)
	assert.Equal(t, []workflow.Step{workflow.StepMenu, workflow.StepExit}, h.trace)
	assert.Equal(t, 0, h.script.Remaining())
	assert.Equal(t, 1.0, stepCount(t, h.rec, workflow.StepMenu))
	assert.Equal(t, 1.0, stepCount(t, h.rec, workflow.StepExit))
	assert.Equal(t, 0.0, stepCount(t, h.rec, workflow.StepWriter))
}

func TestRunNextNextQuit(t *testing.T) {
	h := newHarness(t, stubSource(fiftyChars), workflow.Options{}, "n", "n", "q")

	final, err := h.engine.Run(context.Background(), session.Default())
	require.NoError(t, err)
	assert.True(t, final.Quit)
	require.Len(t, final.Jokes, 2)
	for _, joke := range final.Jokes {
		assert.True(t, joke.Approved)
		assert.Equal(t, jokes.CategoryNeutral, joke.Category)
		assert.Equal(t, fiftyChars, joke.Text)
	}
	assert.Equal(t, []workflow.Step{
		workflow.StepMenu, workflow.StepWriter, workflow.StepCritic,
		workflow.StepMenu, workflow.StepWriter, workflow.StepCritic,
		workflow.StepMenu, workflow.StepExit,
	}, h.trace)
	assert.Equal(t, 2.0, stepCount(t, h.rec, workflow.StepWriter))
	assert.Equal(t, 2.0, stepCount(t, h.rec, workflow.StepCritic))
	assert.Equal(t, 3.0, stepCount(t, h.rec, workflow.StepMenu))
}

func TestRunConversationTranscript(t *testing.T) {
	h := newHarness(t, stubSource("too short"), workflow.Options{}, "n", "q")

	_, err := h.engine.Run(context.Background(), session.Default())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"\n🖋️ Writer wrote a joke in category [neutral]...",
		"🧠 Critic: This joke is too short, rejecting it.",
		"\n👋 Exiting bot. Thanks for laughing!",
	}, h.script.Lines())
}

func TestRunHistoryGrowsByOnePerWriterStep(t *testing.T) {
	var lengths []int
	writerSteps := 0
	observer := func(step workflow.Step, state session.State) {
		if step == workflow.StepWriter {
			writerSteps++
		}
		lengths = append(lengths, len(state.Jokes))
	}
	h := newHarness(t, stubSource(fiftyChars), workflow.Options{Observer: observer},
		"n", "c", "2", "n", "x", "n", "q")

	final, err := h.engine.Run(context.Background(), session.Default())
	require.NoError(t, err)
	assert.Equal(t, 4, writerSteps)
	assert.Len(t, final.Jokes, writerSteps)
	for i := 1; i < len(lengths); i++ {
		assert.GreaterOrEqual(t, lengths[i], lengths[i-1], "history must never shrink")
		assert.LessOrEqual(t, lengths[i]-lengths[i-1], 1, "history grows by at most one per step")
	}
	assert.Equal(t, jokes.CategoryAll, final.Category)
	for _, joke := range final.Jokes {
		assert.True(t, jokes.IsConcrete(joke.Category), "sentinel resolved before storage")
	}
}

func TestRunCategoryRetry(t *testing.T) {
	h := newHarness(t, stubSource(fiftyChars), workflow.Options{}, "c", "x", "5", "1", "n", "q")

	final, err := h.engine.Run(context.Background(), session.Default())
	require.NoError(t, err)
	assert.Equal(t, jokes.CategoryChuck, final.Category)
	require.Len(t, final.Jokes, 1)
	assert.Equal(t, jokes.CategoryChuck, final.Jokes[0].Category)

	lines := h.script.Lines()
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, []string{"Please enter a number.", "Invalid selection.", "✅ Category changed to chuck"}, lines[:3])
}

func TestRunInvalidMenuInputWritesJoke(t *testing.T) {
	h := newHarness(t, stubSource(fiftyChars), workflow.Options{}, "hello", "q")

	final, err := h.engine.Run(context.Background(), session.Default())
	require.NoError(t, err)
	assert.Len(t, final.Jokes, 1, "invalid input is coerced to next")
	assert.Equal(t, "Invalid input. Defaulting to 'n'.", h.script.Lines()[0])
}

func TestRunClosedInputQuits(t *testing.T) {
	h := newHarness(t, stubSource(fiftyChars), workflow.Options{}, "n")

	final, err := h.engine.Run(context.Background(), session.Default())
	require.NoError(t, err)
	assert.True(t, final.Quit)
	assert.Len(t, final.Jokes, 1)
}

func TestRunSourceFailureAbortsWithPartialState(t *testing.T) {
	calls := 0
	src := jokes.SourceFunc(func(context.Context, string, string) (string, error) {
		calls++
		if calls > 1 {
			return "", errors.New("source exhausted")
		}
		return fiftyChars, nil
	})
	h := newHarness(t, src, workflow.Options{}, "n", "n", "q")

	final, err := h.engine.Run(context.Background(), session.Default())
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrJokeSource)
	assert.False(t, final.Quit)
	require.Len(t, final.Jokes, 1, "jokes written before the failure are kept")
	assert.True(t, final.Jokes[0].Approved)
	assert.Equal(t, 1, h.script.Remaining(), "the run stops at the failing writer step")
}

func TestRunStepLimit(t *testing.T) {
	inputs := make([]string, 0, 10)
	for range 10 {
		inputs = append(inputs, "n")
	}
	h := newHarness(t, stubSource(fiftyChars), workflow.Options{MaxSteps: 5}, inputs...)
	assert.Equal(t, 5, h.engine.MaxSteps())

	final, err := h.engine.Run(context.Background(), session.Default())
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrStepLimit)
	assert.Len(t, h.trace, 5)
	assert.False(t, final.Quit)
	assert.Len(t, final.Jokes, 2)
}

func TestRunStepLimitAllowsExactFit(t *testing.T) {
	h := newHarness(t, stubSource(fiftyChars), workflow.Options{MaxSteps: 2}, "q")
	final, err := h.engine.Run(context.Background(), session.Default())
	require.NoError(t, err)
	assert.True(t, final.Quit)
}

func TestRunLoopingRouterHitsStepLimit(t *testing.T) {
	menu := stage.HandlerFunc(func(context.Context, session.State) (session.Update, error) {
		return session.ChoiceUpdate(session.ChoiceCategory), nil
	})
	engine, err := workflow.NewEngine(workflow.StepSet{
		Menu: menu, Writer: noopHandler(), Critic: noopHandler(), Category: noopHandler(), Exit: noopHandler(),
	}, workflow.Options{})
	require.NoError(t, err)

	_, err = engine.Run(context.Background(), session.Default())
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrStepLimit)
	assert.Contains(t, err.Error(), "100")
}

func TestRunUnknownChoiceRoutesToExit(t *testing.T) {
	var visited []workflow.Step
	menu := stage.HandlerFunc(func(context.Context, session.State) (session.Update, error) {
		return session.ChoiceUpdate(session.Choice("bogus")), nil
	})
	engine, err := workflow.NewEngine(workflow.StepSet{
		Menu: menu, Writer: noopHandler(), Critic: noopHandler(), Category: noopHandler(),
		Exit: stage.HandlerFunc(func(context.Context, session.State) (session.Update, error) {
			return session.QuitUpdate(), nil
		}),
	}, workflow.Options{Observer: func(step workflow.Step, _ session.State) { visited = append(visited, step) }})
	require.NoError(t, err)

	final, err := engine.Run(context.Background(), session.Default())
	require.NoError(t, err)
	assert.True(t, final.Quit)
	assert.Equal(t, []workflow.Step{workflow.StepMenu, workflow.StepExit}, visited)
}

func TestRunCancelledContext(t *testing.T) {
	h := newHarness(t, stubSource(fiftyChars), workflow.Options{}, "n", "q")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.engine.Run(ctx, session.Default())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, h.trace)
}

func TestRunCancelledContextLogsFinish(t *testing.T) {
	var logs bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Output: &logs})
	require.NoError(t, err)
	h := newHarness(t, stubSource(fiftyChars), workflow.Options{Logger: logger}, "q")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = h.engine.Run(ctx, session.Default())
	require.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, logs.String(), `"msg":"workflow interrupted"`)
	assert.Contains(t, logs.String(), `"msg":"workflow finished"`)
}

func TestRunCancelWhileWaitingForInput(t *testing.T) {
	var logs bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Output: &logs})
	require.NoError(t, err)
	in := testsupport.NewStallingInput(t, "n")
	term := console.NewTerminal(in, io.Discard)
	h := newConsoleHarness(t, term, stubSource(fiftyChars), workflow.Options{Logger: logger})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-in.Stalled()
		cancel()
	}()

	type result struct {
		state session.State
		err   error
	}
	done := make(chan result, 1)
	go func() {
		final, err := h.engine.Run(ctx, session.Default())
		done <- result{final, err}
	}()

	select {
	case res := <-done:
		require.ErrorIs(t, res.err, context.Canceled)
		assert.False(t, res.state.Quit)
		require.Len(t, res.state.Jokes, 1)
		assert.Equal(t, []workflow.Step{workflow.StepMenu, workflow.StepWriter, workflow.StepCritic}, h.trace)
		assert.Contains(t, logs.String(), `"msg":"workflow finished"`)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestRunRejectsInvalidInitialState(t *testing.T) {
	h := newHarness(t, stubSource(fiftyChars), workflow.Options{}, "q")
	_, err := h.engine.Run(context.Background(), session.New("en", "puns"))
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrValidation)
	assert.Empty(t, h.trace)
}

func TestRunDefaultsEmptyChoice(t *testing.T) {
	h := newHarness(t, stubSource(fiftyChars), workflow.Options{}, "q")
	state := session.Default()
	state.Choice = ""
	final, err := h.engine.Run(context.Background(), state)
	require.NoError(t, err)
	assert.Equal(t, session.ChoiceQuit, final.Choice)
}

func TestNewEngineRequiresEveryHandler(t *testing.T) {
	_, err := workflow.NewEngine(workflow.StepSet{Menu: noopHandler()}, workflow.Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrConfiguration)
	for _, name := range []string{"writer", "critic", "category", "exit"} {
		assert.True(t, strings.Contains(err.Error(), name), "missing %s in %q", name, err.Error())
	}
}
