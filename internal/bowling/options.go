package bowling

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithLogger sets the logger used for turn diagnostics.
// Default discards all output.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger.WithPrefix("bowling")
		}
	}
}

// WithClock sets the clock used to timestamp the roll history.
// Default is the real wall clock.
func WithClock(clock quartz.Clock) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

func defaultLogger() *log.Logger {
	return log.New(io.Discard)
}
