package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Replayed 42 events (3ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability Hooks
// =============================================================================

// logHooks reports pipeline events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnScroll(offset float64, direction string) {
	h.logger.Debug("scroll", "offset", offset, "direction", direction)
}

func (h *logHooks) OnRelease(direction string, target float64) {
	h.logger.Debug("release", "direction", direction, "target", target)
}

func (h *logHooks) OnTransition(from, to string) {
	h.logger.Debug("snap state", "from", from, "to", to)
}

func (h *logHooks) OnAnimationStart(from, to float64, easing string) {
	h.logger.Debug("animation start", "from", from, "to", to, "easing", easing)
}

func (h *logHooks) OnAnimationEnd(offset float64, interrupted bool) {
	h.logger.Debug("animation end", "offset", offset, "interrupted", interrupted)
}
