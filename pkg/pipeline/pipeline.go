// Package pipeline runs arrangements end to end for the CLI and other callers.
//
// A run takes a slide snapshot and either an arrangement directive (ordered)
// or a bare alignment mode (unordered), resolves the canvas, calls the layout
// engine on a copy of the snapshot and returns the updated copy together with
// everything the caller should report: the resolved order, identifiers that
// matched nothing, the distribution gap, overflow and any notice.
//
// # Notices
//
// The engine signals skipped arrangements (fewer than two shapes, unknown
// mode) with coded errors. The pipeline does not fail the run for those:
// it returns a [Result] whose Notice field carries the error and whose Slide
// is an unmodified copy. Only validation failures are returned as errors.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	res, err := runner.Arrange(ctx, s, directive, pipeline.Options{})
//	if err != nil {
//	    return err
//	}
//	if res.Notice != nil {
//	    logger.Warn(errors.UserMessage(res.Notice))
//	}
//	slide.WriteFile(out, res.Slide)
//
// Many slides can be arranged concurrently with [Runner.Batch]; the engine is
// reentrant on disjoint inputs and every job works on its own copy.
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/shapealign/pkg/errors"
	"github.com/matzehuels/shapealign/pkg/layout"
	"github.com/matzehuels/shapealign/pkg/slide"
)

// =============================================================================
// Default Values
// =============================================================================

// DefaultConcurrency is the number of batch jobs run at once.
const DefaultConcurrency = 4

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures a run.
type Options struct {
	// Canvas applies when the snapshot carries none. Zero means
	// [layout.DefaultCanvas].
	Canvas layout.Canvas `json:"canvas"`

	// ForceCanvas makes Canvas win over the snapshot's own canvas.
	ForceCanvas bool `json:"force_canvas,omitempty"`

	// Strict turns a directive that matches no shape on the slide into a
	// NO_MATCHING_SHAPES error instead of an INSUFFICIENT_INPUT notice.
	Strict bool `json:"strict,omitempty"`

	// Concurrency bounds [Runner.Batch]. Zero means DefaultConcurrency.
	Concurrency int `json:"concurrency,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks the options and fills in defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Canvas.IsZero() {
		o.Canvas = layout.DefaultCanvas()
	}
	if err := o.Canvas.Validate(); err != nil {
		return err
	}
	if o.Concurrency == 0 {
		o.Concurrency = DefaultConcurrency
	}
	if o.Concurrency < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "concurrency must be positive, got %d", o.Concurrency)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// CanvasFor returns the canvas a run on s uses: the snapshot's canvas unless
// it has none or ForceCanvas is set.
func (o *Options) CanvasFor(s *slide.Slide) layout.Canvas {
	if s.Canvas != nil && !o.ForceCanvas {
		return *s.Canvas
	}
	if o.Canvas.IsZero() {
		return layout.DefaultCanvas()
	}
	return o.Canvas
}

// =============================================================================
// Results
// =============================================================================

// Result describes one run.
type Result struct {
	// RunID identifies the run in logs and hooks.
	RunID string

	// Slide is the updated snapshot. It is always a copy; the input is never
	// modified.
	Slide *slide.Slide

	Mode   layout.Mode
	Canvas layout.Canvas

	// Order lists the identifiers that were placed, in placement order.
	Order []string

	// Unresolved lists order entries that matched no shape.
	Unresolved []string

	// Skipped is an UNRESOLVED_IDENTIFIER notice when Unresolved is not
	// empty. Unlike Notice it does not stop the remaining shapes from
	// being placed.
	Skipped error

	Gap      float64
	Overflow bool

	// Notice is set when the engine skipped the arrangement. Slide is then
	// identical to the input.
	Notice error

	Stats Stats
}

// Applied reports whether any position was written.
func (r *Result) Applied() bool { return r.Notice == nil }

// Stats contains run statistics.
type Stats struct {
	ShapeCount int
	Placed     int
	Duration   time.Duration
}
