// Package cli implements the viewlayout command-line interface.
//
// The commands build scenes declared in TOML (see package scene) and show
// the resulting constraints. The CLI is built using cobra and logs through
// charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - apply: Build a scene file and print its constraints
//   - demo: Build the embedded demo scene
//   - graph: Export a scene's constraint graph as DOT or SVG
//   - inspect: Browse a scene's constraints and toggle their activation
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. At debug
// level every layout and cache event is logged through the observability
// hooks.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with
// the elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Built demo (1.234ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Microsecond))
}
