package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/shapealign/pkg/errors"
	"github.com/matzehuels/shapealign/pkg/layout"
	"github.com/matzehuels/shapealign/pkg/observability"
	"github.com/matzehuels/shapealign/pkg/slide"
)

// Runner executes arrangements.
//
// The Runner is stateless except for the logger - it doesn't store results.
// Multiple goroutines can safely use the same Runner with different inputs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Arrange applies an ordered directive to a copy of s.
func (r *Runner) Arrange(ctx context.Context, s *slide.Slide, d slide.Directive, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	if opts.Strict {
		if _, _, err := slide.FilterDirective(d, s); err != nil {
			return nil, err
		}
	}

	return r.run(ctx, s, d.Alignment, opts, func(rects []layout.Rect, mode layout.Mode, c layout.Canvas, res *Result) error {
		arr, err := layout.ArrangeOrdered(rects, d.Order, mode, c)
		res.Unresolved = arr.Unresolved
		res.Skipped = arr.Skipped()
		res.Order = arr.IDs
		res.Gap, res.Overflow = arr.Gap, arr.Overflow
		res.Stats.Placed = arr.Count
		return err
	})
}

// Align applies an unordered alignment to a copy of s. Distribute modes
// order shapes by their current position.
func (r *Runner) Align(ctx context.Context, s *slide.Slide, mode string, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	return r.run(ctx, s, mode, opts, func(rects []layout.Rect, mode layout.Mode, c layout.Canvas, res *Result) error {
		seq := layout.SortOrder(rects, mode)
		p, err := layout.Place(rects, seq, mode, c)
		if err != nil {
			return err
		}
		res.Order = idsOf(rects, seq)
		res.Gap, res.Overflow = p.Gap, p.Overflow
		res.Stats.Placed = p.Count
		return nil
	})
}

type placeFunc func(rects []layout.Rect, mode layout.Mode, c layout.Canvas, res *Result) error

// run holds the steps Arrange and Align share: parse the mode, copy the
// slide, place, write back, log and fire hooks.
func (r *Runner) run(ctx context.Context, s *slide.Slide, alignment string, opts Options, place placeFunc) (*Result, error) {
	start := time.Now()
	res := &Result{
		RunID:  uuid.NewString(),
		Slide:  s.Clone(),
		Canvas: opts.CanvasFor(s),
		Stats:  Stats{ShapeCount: len(s.Shapes)},
	}
	logger := opts.Logger.With("run", shortID(res.RunID))
	hooks := observability.Pipeline()
	hooks.OnArrangeStart(ctx, res.RunID, alignment, len(s.Shapes))

	err := r.place(res, alignment, place)
	res.Stats.Duration = time.Since(start)
	hooks.OnArrangeComplete(ctx, res.RunID, stats(res), res.Stats.Duration, err)
	if err != nil {
		logger.Error("arrangement failed", "error", err)
		return nil, fmt.Errorf("arrange: %w", err)
	}

	if res.Skipped != nil {
		logger.Warn("shapes not found on slide, skipped",
			"code", errors.GetCode(res.Skipped),
			"ids", res.Unresolved)
	}
	if res.Notice != nil {
		logger.Warn("arrangement skipped", "reason", errors.UserMessage(res.Notice))
		return res, nil
	}
	if res.Overflow {
		logger.Warn("shapes do not fit the canvas and will overlap", "gap", res.Gap)
	}
	logger.Info("arranged shapes",
		"mode", res.Mode,
		"placed", res.Stats.Placed,
		"duration", res.Stats.Duration)
	logger.Debug("canvas", "width", res.Canvas.Width, "height", res.Canvas.Height, "margin", res.Canvas.Margin)
	return res, nil
}

func (r *Runner) place(res *Result, alignment string, place placeFunc) error {
	mode, err := layout.ParseMode(alignment)
	if err != nil {
		res.Notice = err
		return nil
	}
	res.Mode = mode

	rects := res.Slide.Rects()
	if err := place(rects, mode, res.Canvas, res); err != nil {
		if errors.IsNotice(err) {
			res.Notice = err
			return nil
		}
		return err
	}
	return res.Slide.SetRects(rects)
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func stats(res *Result) observability.ArrangeStats {
	st := observability.ArrangeStats{
		Mode:       string(res.Mode),
		Placed:     res.Stats.Placed,
		Unresolved: len(res.Unresolved),
		Overflow:   res.Overflow,
	}
	if res.Notice != nil {
		st.Notice = string(errors.GetCode(res.Notice))
	}
	return st
}

func idsOf(rects []layout.Rect, seq []int) []string {
	ids := make([]string, len(seq))
	for k, i := range seq {
		ids[k] = rects[i].ID
	}
	return ids
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
