package prompt

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
)

// Source produces one raw input attempt per call. Next blocks until input
// is available, the source is exhausted (ErrSourceClosed) or ctx is done.
type Source interface {
	Next(ctx context.Context) (string, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) (string, error)

// Next calls f(ctx).
func (f SourceFunc) Next(ctx context.Context) (string, error) {
	return f(ctx)
}

type line struct {
	text string
	err  error
}

// LineSource reads newline-terminated attempts from an io.Reader. Reads run
// in a single background goroutine so that Next can return as soon as its
// context is cancelled; a line read after cancellation is kept for the next
// call. Close stops the goroutine. One blocked inside a Read of the
// underlying reader exits once that Read returns.
type LineSource struct {
	scanner *bufio.Scanner
	lines   chan line
	done    chan struct{}
	start   sync.Once
	stop    sync.Once
}

// NewLineSource returns a Source over r. Trailing "\r" is stripped so input
// typed on Windows consoles checks the same as elsewhere.
func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{
		scanner: bufio.NewScanner(r),
		lines:   make(chan line),
		done:    make(chan struct{}),
	}
}

// Close releases the reader goroutine. Next returns ErrSourceClosed
// afterwards. The underlying reader is not closed.
func (s *LineSource) Close() error {
	s.stop.Do(func() { close(s.done) })
	return nil
}

// Next returns the next line without its terminator.
func (s *LineSource) Next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	select {
	case <-s.done:
		return "", ErrSourceClosed
	default:
	}
	s.start.Do(func() { go s.read() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-s.done:
		return "", ErrSourceClosed
	case l, ok := <-s.lines:
		if !ok {
			return "", ErrSourceClosed
		}
		return l.text, l.err
	}
}

func (s *LineSource) read() {
	defer close(s.lines)
	for s.scanner.Scan() {
		if !s.send(line{text: strings.TrimSuffix(s.scanner.Text(), "\r")}) {
			return
		}
	}
	if err := s.scanner.Err(); err != nil {
		s.send(line{err: err})
	}
}

func (s *LineSource) send(l line) bool {
	select {
	case s.lines <- l:
		return true
	case <-s.done:
		return false
	}
}
