package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"jokebot/internal/config"
)

// LogFileName is the file created inside the configured log directory.
const LogFileName = "jokebot.log"

// Options describes logger construction parameters.
type Options struct {
	// Level is one of debug, info, warn, error. Empty means info.
	Level string
	// Format is console or json. Empty means console.
	Format string
	// Output receives every record. Nil means os.Stderr.
	Output io.Writer
}

// New constructs a slog logger writing to opts.Output. Debug loggers also
// report the call site.
func New(opts Options) (*slog.Logger, error) {
	var level slog.Level
	if name := strings.TrimSpace(opts.Level); name != "" {
		if err := level.UnmarshalText([]byte(name)); err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
	}
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	withSource := level <= slog.LevelDebug

	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", "console":
		return slog.New(&consoleHandler{shared: &sharedWriter{w: out}, level: level, source: withSource}), nil
	case "json":
		return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
			Level:       level,
			AddSource:   withSource,
			ReplaceAttr: jsonAttr,
		})), nil
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}
}

// NewFromConfig builds the session logger. Records always go to stderr so they
// never mix with the conversation on stdout; a configured log directory adds
// LogFileName as a second sink. The returned closer releases that file.
func NewFromConfig(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	opts := Options{Output: os.Stderr}
	if cfg == nil {
		logger, err := New(opts)
		return logger, nopCloser{}, err
	}
	opts.Level = cfg.Logging.Level
	opts.Format = cfg.Logging.Format

	var closer io.Closer = nopCloser{}
	if dir := strings.TrimSpace(cfg.Logging.Dir); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("ensure log directory: %w", err)
		}
		path := filepath.Join(dir, LogFileName)
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
		}
		opts.Output = io.MultiWriter(os.Stderr, file)
		closer = file
	}

	logger, err := New(opts)
	if err != nil {
		_ = closer.Close()
		return nil, nil, err
	}
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func jsonAttr(_ []string, attr slog.Attr) slog.Attr {
	switch attr.Key {
	case slog.TimeKey:
		attr.Key = "ts"
		attr.Value = slog.StringValue(attr.Value.Time().UTC().Format(time.RFC3339))
	case slog.LevelKey:
		attr.Value = slog.StringValue(strings.ToLower(attr.Value.String()))
	case slog.SourceKey:
		if src, ok := attr.Value.Any().(*slog.Source); ok && src != nil {
			attr.Value = slog.StringValue(filepath.Base(src.File) + ":" + strconv.Itoa(src.Line))
		}
	}
	return attr
}

type sharedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

// consoleHandler renders one line per record:
//
//	15:04:05 WARN  workflow: step failed step=writer error="boom"
//
// Attributes bound through WithAttrs are rendered once, when they are bound.
type consoleHandler struct {
	shared    *sharedWriter
	level     slog.Level
	source    bool
	prefix    string
	component string
	fields    string
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	component := h.component
	var fields strings.Builder
	fields.WriteString(h.fields)
	record.Attrs(func(attr slog.Attr) bool {
		if attr.Key == FieldComponent && h.prefix == "" {
			component = attr.Value.Resolve().String()
			return true
		}
		writeAttr(&fields, h.prefix, attr)
		return true
	})

	stamp := record.Time
	if stamp.IsZero() {
		stamp = time.Now()
	}
	var line strings.Builder
	fmt.Fprintf(&line, "%s %-5s ", stamp.Format(time.TimeOnly), record.Level.String())
	if component != "" {
		line.WriteString(component)
		line.WriteString(": ")
	}
	line.WriteString(record.Message)
	if h.source && record.PC != 0 {
		if src := record.Source(); src != nil {
			fmt.Fprintf(&line, " [%s:%d]", filepath.Base(src.File), src.Line)
		}
	}
	line.WriteString(fields.String())
	line.WriteByte('\n')

	h.shared.mu.Lock()
	defer h.shared.mu.Unlock()
	_, err := io.WriteString(h.shared.w, line.String())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	var fields strings.Builder
	fields.WriteString(h.fields)
	for _, attr := range attrs {
		if attr.Key == FieldComponent && h.prefix == "" {
			clone.component = attr.Value.Resolve().String()
			continue
		}
		writeAttr(&fields, h.prefix, attr)
	}
	clone.fields = fields.String()
	return &clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func writeAttr(b *strings.Builder, prefix string, attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	value := attr.Value.Resolve()
	key := prefix + attr.Key
	if value.Kind() == slog.KindGroup {
		if attr.Key != "" {
			key += "."
		}
		for _, member := range value.Group() {
			writeAttr(b, key, member)
		}
		return
	}
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(quoteIfNeeded(value.String()))
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsFunc(s, func(r rune) bool { return r <= ' ' || r == '=' || r == '"' }) {
		return strconv.Quote(s)
	}
	return s
}
