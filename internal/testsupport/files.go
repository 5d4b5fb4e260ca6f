package testsupport

import (
	"io"
	"os"
	"strings"
	"sync"
	"testing"
)

// Input joins lines into a newline-terminated reader suitable for a console's
// stdin.
func Input(lines ...string) io.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

// ReadFile returns the contents of path, failing the test when it is missing.
func ReadFile(t testing.TB, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// StallingInput serves scripted lines and then blocks like an idle terminal
// until Release is called, after which it reports EOF.
type StallingInput struct {
	data    io.Reader
	stalled chan struct{}
	release chan struct{}
	once    sync.Once
	closing sync.Once
}

// NewStallingInput returns a StallingInput that stalls after lines. The input
// is released when the test finishes.
func NewStallingInput(t testing.TB, lines ...string) *StallingInput {
	t.Helper()
	in := &StallingInput{
		data:    Input(lines...),
		stalled: make(chan struct{}),
		release: make(chan struct{}),
	}
	t.Cleanup(in.Release)
	return in
}

// Read implements io.Reader.
func (s *StallingInput) Read(p []byte) (int, error) {
	n, err := s.data.Read(p)
	if n > 0 || err != io.EOF {
		return n, err
	}
	s.once.Do(func() { close(s.stalled) })
	<-s.release
	return 0, io.EOF
}

// Stalled is closed once the scripted lines are exhausted and a reader waits
// for more.
func (s *StallingInput) Stalled() <-chan struct{} {
	return s.stalled
}

// Release unblocks a stalled reader.
func (s *StallingInput) Release() {
	s.closing.Do(func() { close(s.release) })
}
