// Package console provides the line-oriented terminal the workflow steps talk
// through.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Console reads user input and writes conversation lines.
type Console interface {
	// ReadLine writes prompt and blocks until a line of input is available
	// or ctx is done. The returned line has its line terminator removed.
	// io.EOF is returned when the input is exhausted and ctx.Err() when the
	// wait is cancelled.
	ReadLine(ctx context.Context, prompt string) (string, error)
	// PrintLine writes text followed by a newline.
	PrintLine(text string)
}

type readResult struct {
	line string
	err  error
}

// Terminal is a Console backed by an input reader and an output writer.
//
// Reads run on a background goroutine so a cancelled ReadLine returns at
// once. The abandoned read stays pending and its line is handed to the next
// ReadLine call, so no input is lost or read twice.
type Terminal struct {
	readMu  sync.Mutex
	in      *bufio.Reader
	pending chan readResult

	outMu sync.Mutex
	out   io.Writer
}

// NewTerminal wraps the provided streams.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// ReadLine implements Console.
func (t *Terminal) ReadLine(ctx context.Context, prompt string) (string, error) {
	t.readMu.Lock()
	defer t.readMu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if prompt != "" {
		t.outMu.Lock()
		fmt.Fprint(t.out, prompt)
		t.outMu.Unlock()
	}

	if t.pending == nil {
		t.pending = make(chan readResult, 1)
		go func(results chan<- readResult) {
			line, err := t.in.ReadString('\n')
			results <- readResult{line: line, err: err}
		}(t.pending)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-t.pending:
		t.pending = nil
		if res.err != nil && !(errors.Is(res.err, io.EOF) && res.line != "") {
			return "", res.err
		}
		return strings.TrimRight(res.line, "\r\n"), nil
	}
}

// PrintLine implements Console.
func (t *Terminal) PrintLine(text string) {
	t.outMu.Lock()
	defer t.outMu.Unlock()
	fmt.Fprintln(t.out, text)
}
