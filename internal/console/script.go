package console

import (
	"context"
	"io"
	"strings"
	"sync"
)

// Script is a Console that replays canned input and captures everything
// written, for tests.
type Script struct {
	mu      sync.Mutex
	inputs  []string
	prompts []string
	lines   []string
}

// NewScript returns a Script that answers successive ReadLine calls with inputs.
func NewScript(inputs ...string) *Script {
	return &Script{inputs: append([]string(nil), inputs...)}
}

// ReadLine implements Console. It returns io.EOF once the inputs run out and
// ctx.Err() without consuming input when ctx is done.
func (s *Script) ReadLine(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompts = append(s.prompts, prompt)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(s.inputs) == 0 {
		return "", io.EOF
	}
	line := s.inputs[0]
	s.inputs = s.inputs[1:]
	return line, nil
}

// PrintLine implements Console.
func (s *Script) PrintLine(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, text)
}

// Prompts returns every prompt shown so far.
func (s *Script) Prompts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.prompts...)
}

// Lines returns every line printed so far.
func (s *Script) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lines...)
}

// Output joins the printed lines the way a terminal would show them.
func (s *Script) Output() string {
	lines := s.Lines()
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// Remaining reports how many scripted inputs have not been consumed.
func (s *Script) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inputs)
}
