package steps

import (
	"context"
	"errors"
	"io"

	"jokebot/internal/console"
	"jokebot/internal/logging"
	"jokebot/internal/metrics"
	"jokebot/internal/services"
	"jokebot/internal/session"
)

// Menu asks the user what to do next.
type Menu struct {
	base
}

// NewMenu constructs the menu step.
func NewMenu(con console.Console, rec *metrics.Recorder) *Menu {
	return &Menu{base: newBase(con, rec)}
}

// Execute reads one line and maps it to a Choice. Unrecognized input becomes
// ChoiceNext; closed input becomes ChoiceQuit so piped sessions end cleanly.
// A cancelled ctx interrupts the wait and is returned as is.
func (m *Menu) Execute(ctx context.Context, _ session.State) (session.Update, error) {
	line, err := m.console.ReadLine(ctx, MenuPrompt)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return session.Update{}, ctxErr
		}
		if errors.Is(err, io.EOF) {
			m.logger.Info("console input closed; quitting",
				logging.String(logging.FieldEventType, "input_closed"),
			)
			return session.ChoiceUpdate(session.ChoiceQuit), nil
		}
		return session.Update{}, services.Wrap(services.ErrInput, "menu", "read choice", "", err)
	}

	choice, ok := session.ParseChoice(line)
	if !ok {
		m.console.PrintLine(menuInvalidMessage)
		m.metrics.InvalidInput("menu")
		m.logger.Debug("menu input coerced",
			logging.String(logging.FieldEventType, "input_coerced"),
			logging.String("input", line),
			logging.String("choice", string(session.ChoiceNext)),
		)
		choice = session.ChoiceNext
	}
	return session.ChoiceUpdate(choice), nil
}
