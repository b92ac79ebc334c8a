package debug

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

var (
	mu      sync.RWMutex
	logger  = slog.New(slog.NewTextHandler(io.Discard, nil))
	enabled bool
)

// SetOutput sets the debug output destination. Passing nil or io.Discard
// turns logging off.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	if w == nil {
		w = io.Discard
	}
	enabled = w != io.Discard
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Log writes a formatted debug message
func Log(format string, args ...interface{}) {
	if !Enabled() {
		return
	}
	current().Debug(fmt.Sprintf(format, args...))
}

// Event writes a structured debug record; args are alternating keys and
// values as accepted by log/slog.
func Event(msg string, args ...any) {
	if !Enabled() {
		return
	}
	current().Log(context.Background(), slog.LevelDebug, msg, args...)
}

// Enabled returns true if debug logging is enabled
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}
