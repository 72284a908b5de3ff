// Package testutil provides logging helpers for tests.
package testutil

import (
	"context"
	"log/slog"
	"sync"
	"testing"
)

// NewTestLogger returns a debug-level logger that writes to t.Log().
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// Entry is a captured log record with its attributes flattened.
type Entry struct {
	Level   slog.Level
	Message string
	Attrs   map[string]string
}

// Capture records every log record it handles.
type Capture struct {
	mu      sync.Mutex
	entries []Entry
	attrs   []slog.Attr
	root    *Capture
}

// NewCaptureLogger returns a debug-level logger and the capture behind it.
func NewCaptureLogger() (*slog.Logger, *Capture) {
	c := &Capture{}
	c.root = c
	return slog.New(c), c
}

// Enabled implements slog.Handler.
func (c *Capture) Enabled(context.Context, slog.Level) bool { return true }

// Handle implements slog.Handler.
func (c *Capture) Handle(_ context.Context, r slog.Record) error {
	e := Entry{Level: r.Level, Message: r.Message, Attrs: make(map[string]string)}
	for _, a := range c.attrs {
		e.Attrs[a.Key] = a.Value.String()
	}
	r.Attrs(func(a slog.Attr) bool {
		e.Attrs[a.Key] = a.Value.String()
		return true
	})

	c.root.mu.Lock()
	c.root.entries = append(c.root.entries, e)
	c.root.mu.Unlock()
	return nil
}

// WithAttrs implements slog.Handler.
func (c *Capture) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Capture{
		attrs: append(append([]slog.Attr(nil), c.attrs...), attrs...),
		root:  c.root,
	}
}

// WithGroup implements slog.Handler. Groups are flattened.
func (c *Capture) WithGroup(string) slog.Handler { return c }

// Entries returns a copy of the captured records.
func (c *Capture) Entries() []Entry {
	c.root.mu.Lock()
	defer c.root.mu.Unlock()
	return append([]Entry(nil), c.root.entries...)
}

// Count returns the number of captured records at the level.
func (c *Capture) Count(level slog.Level) int {
	n := 0
	for _, e := range c.Entries() {
		if e.Level == level {
			n++
		}
	}
	return n
}

// Reset drops all captured records.
func (c *Capture) Reset() {
	c.root.mu.Lock()
	c.root.entries = nil
	c.root.mu.Unlock()
}
