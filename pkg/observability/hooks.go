// Package observability provides hooks for logging and metrics around
// layout computation.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends to the core. Consumers
// register hooks at startup to receive events about layout runs.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for layout events
//   - Provide a no-op default implementation
//   - Allow registration of custom implementations at startup
//
// This approach keeps the layout engine dependency-free from observability
// frameworks while still allowing different backends.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(observability.NewLogHooks(log.Default()))
//	    // ... run application
//	}
//
// The engine calls hooks to emit events:
//
//	observability.Layout().OnLayoutStart(itemCount)
//	// ... compute layout ...
//	observability.Layout().OnLayoutComplete(itemCount, duration, err)
package observability

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// LayoutHooks receives events from the layout engine.
type LayoutHooks interface {
	// OnLayoutStart records the beginning of a layout run.
	OnLayoutStart(itemCount int)

	// OnRowCommit records a finalized row: the inclusive item index range
	// it covers and the aspect ratio of its rectangle.
	OnRowCommit(start, end int, aspectRatio float64)

	// OnLayoutComplete records the end of a layout run.
	OnLayoutComplete(itemCount int, duration time.Duration, err error)
}

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnLayoutStart(int)                          {}
func (NoopLayoutHooks) OnRowCommit(int, int, float64)              {}
func (NoopLayoutHooks) OnLayoutComplete(int, time.Duration, error) {}

// LogHooks emits layout events as structured debug logs.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks creates hooks backed by the given logger. Pass nil to use
// the default logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	if logger == nil {
		logger = log.Default()
	}
	return &LogHooks{logger: logger}
}

// NewLogger creates a logger with timestamp formatting suitable for
// LogHooks. The logger writes to w and filters messages at the given level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func (h *LogHooks) OnLayoutStart(itemCount int) {
	h.logger.Debug("layout start", "items", itemCount)
}

func (h *LogHooks) OnRowCommit(start, end int, aspectRatio float64) {
	h.logger.Debug("row commit", "start", start, "end", end, "aspect", aspectRatio)
}

func (h *LogHooks) OnLayoutComplete(itemCount int, duration time.Duration, err error) {
	if err != nil {
		h.logger.Error("layout failed", "items", itemCount, "duration", duration.Round(time.Microsecond), "err", err)
		return
	}
	h.logger.Debug("layout complete", "items", itemCount, "duration", duration.Round(time.Microsecond))
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	layoutHooks LayoutHooks = NoopLayoutHooks{}
	hooksMu     sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any layout runs.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Reset restores the no-op default hooks.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	layoutHooks = NoopLayoutHooks{}
}
