package steps

import (
	"log/slog"

	"jokebot/internal/console"
	"jokebot/internal/logging"
	"jokebot/internal/metrics"
)

type base struct {
	console console.Console
	metrics *metrics.Recorder
	logger  *slog.Logger
}

func newBase(con console.Console, rec *metrics.Recorder) base {
	return base{console: con, metrics: rec, logger: logging.NewNop()}
}

// SetLogger implements stage.LoggerAware.
func (b *base) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = logging.NewNop()
	}
	b.logger = logger
}
