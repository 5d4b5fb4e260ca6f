package steps

import (
	"context"

	"jokebot/internal/console"
	"jokebot/internal/logging"
	"jokebot/internal/metrics"
	"jokebot/internal/session"
)

// DefaultMinApprovedLength is the shortest joke, in characters, the critic approves.
const DefaultMinApprovedLength = 40

// Critic reviews the most recent joke.
type Critic struct {
	base
	minLength int
}

// NewCritic constructs the critic step. A non-positive minLength uses
// DefaultMinApprovedLength.
func NewCritic(con console.Console, minLength int, rec *metrics.Recorder) *Critic {
	if minLength <= 0 {
		minLength = DefaultMinApprovedLength
	}
	return &Critic{base: newBase(con, rec), minLength: minLength}
}

// Approves reports the critic's verdict for a joke text of the given length.
func (c *Critic) Approves(length int) bool {
	return length >= c.minLength
}

// Execute reviews the last joke in place. An empty history is a no-op.
func (c *Critic) Execute(_ context.Context, state session.State) (session.Update, error) {
	last := state.Last()
	if last == nil {
		return session.Update{}, nil
	}

	approved := c.Approves(last.Length())
	last.Review(approved)
	if approved {
		c.console.PrintLine(criticApprovedMessage)
		c.console.PrintLine("\n🤣 " + last.Text)
	} else {
		c.console.PrintLine(criticRejectedMessage)
	}

	c.metrics.JokeReviewed(last.Category, approved)
	c.logger.Debug("joke reviewed",
		logging.String(logging.FieldEventType, "joke_reviewed"),
		logging.String("category", last.Category),
		logging.Int("length", last.Length()),
		logging.Int("min_length", c.minLength),
		logging.Bool("approved", approved),
	)
	return session.JokesUpdate(last), nil
}
