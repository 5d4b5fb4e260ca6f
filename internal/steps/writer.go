package steps

import (
	"context"
	"fmt"
	"math/rand/v2"

	"jokebot/internal/console"
	"jokebot/internal/jokes"
	"jokebot/internal/logging"
	"jokebot/internal/metrics"
	"jokebot/internal/services"
	"jokebot/internal/session"
)

// Writer produces one joke for the current category.
type Writer struct {
	base
	source jokes.Source
	rng    *rand.Rand
}

// NewWriter constructs the writer step. rng picks the concrete category when
// the session is set to "all"; nil uses the process-wide random source.
func NewWriter(src jokes.Source, con console.Console, rng *rand.Rand, rec *metrics.Recorder) *Writer {
	return &Writer{base: newBase(con, rec), source: src, rng: rng}
}

// Execute fetches a joke and returns it as a new, unreviewed record. Source
// failures are returned as ErrJokeSource and end the run.
func (w *Writer) Execute(ctx context.Context, state session.State) (session.Update, error) {
	if w.source == nil {
		return session.Update{}, services.Wrap(services.ErrConfiguration, "writer", "fetch joke", "no joke source configured", nil)
	}
	category := jokes.Resolve(state.Category, w.rng)

	text, err := w.source.Fetch(ctx, state.Language, category)
	if err != nil {
		return session.Update{}, services.Wrap(services.ErrJokeSource, "writer", "fetch joke",
			fmt.Sprintf("language %q category %q", state.Language, category), err)
	}

	joke := jokes.New(text, category)
	w.console.PrintLine(fmt.Sprintf("\n🖋️ Writer wrote a joke in category [%s]...", category))
	w.logger.Debug("joke written",
		logging.String(logging.FieldEventType, "joke_written"),
		logging.String("category", category),
		logging.String("requested_category", state.Category),
		logging.Int("length", joke.Length()),
	)
	return session.JokesUpdate(joke), nil
}
