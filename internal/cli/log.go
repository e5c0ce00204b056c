// Package cli implements the shapealign command-line interface.
//
// The CLI plays the caller of the layout engine: it reads a slide snapshot
// exported by the add-in, applies an arrangement directive or an alignment
// mode, and writes the updated snapshot back in one go. The CLI is built
// using cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - arrange: Apply an ordered directive (--directive file or --order/--mode)
//   - align: Align or distribute by current position
//   - batch: Arrange many snapshots concurrently
//   - preview: Draw a snapshot as SVG, PNG, PDF or DOT
//   - pick: Choose the alignment mode interactively
//   - label: Merge scene-analysis labels into a snapshot
//   - config: Show where the configuration lives and what it contains
//   - cache: Inspect or clear the preview render cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging; without it
// the level comes from the [log] section of the config file.
package cli

import (
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
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Arranged 12 slides (41ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
