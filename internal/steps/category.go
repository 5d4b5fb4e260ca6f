package steps

import (
	"context"
	"strconv"
	"strings"

	"jokebot/internal/console"
	"jokebot/internal/jokes"
	"jokebot/internal/logging"
	"jokebot/internal/metrics"
	"jokebot/internal/services"
	"jokebot/internal/session"
)

// Category lets the user pick the category for upcoming jokes.
type Category struct {
	base
	choices []string
}

// NewCategory constructs the category step over the selectable categories.
func NewCategory(con console.Console, rec *metrics.Recorder) *Category {
	return &Category{base: newBase(con, rec), choices: jokes.Selectable()}
}

// Execute prompts until the user enters a valid index. Closed input aborts
// the run with ErrInput.
func (c *Category) Execute(ctx context.Context, _ session.State) (session.Update, error) {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return session.Update{}, err
		}
		line, err := c.console.ReadLine(ctx, CategoryPrompt)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return session.Update{}, ctxErr
			}
			return session.Update{}, services.Wrap(services.ErrInput, "category", "read selection",
				"input closed before a category was chosen", err)
		}

		index, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			c.reject(line, attempt, categoryNotNumberMessage)
			continue
		}
		if index < 0 || index >= len(c.choices) {
			c.reject(line, attempt, categoryOutOfRangeMessage)
			continue
		}

		chosen := c.choices[index]
		c.console.PrintLine("✅ Category changed to " + chosen)
		c.metrics.CategoryChanged(chosen)
		c.logger.Debug("category changed",
			logging.String(logging.FieldEventType, "category_changed"),
			logging.String("category", chosen),
			logging.Int("attempts", attempt),
		)
		return session.CategoryUpdate(chosen), nil
	}
}

func (c *Category) reject(line string, attempt int, message string) {
	c.console.PrintLine(message)
	c.metrics.InvalidInput("category")
	c.logger.Debug("category selection rejected",
		logging.String(logging.FieldEventType, "input_rejected"),
		logging.String("input", line),
		logging.Int("attempt", attempt),
	)
}
