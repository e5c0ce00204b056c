package layout

import (
	"github.com/matzehuels/shapealign/pkg/errors"
)

// MinShapes is the smallest number of placements an arrangement needs.
const MinShapes = 2

// Placement summarizes a completed placement.
type Placement struct {
	Mode  Mode
	Count int // number of slots placed (duplicates in an order count twice)

	// Gap is the space between neighbours for distribute modes.
	// Negative when the shapes do not fit; see Overflow.
	Gap float64

	// Overflow is set when the shapes are larger than the usable canvas and
	// neighbours overlap. Positions are still written.
	Overflow bool

	// Line is the shared center coordinate: the aligned center for center
	// modes, or the cross-axis center when distributing with cross-axis
	// alignment. Zero otherwise.
	Line float64
}

// PlaceOption configures [Place].
type PlaceOption func(*placeConfig)

type placeConfig struct {
	crossAxis bool
}

// WithCrossAxis additionally centers every shape on the cross axis when
// distributing: a horizontal distribution puts all shapes on one row, a
// vertical distribution puts them in one column. It has no effect on the
// center modes.
func WithCrossAxis() PlaceOption {
	return func(c *placeConfig) { c.crossAxis = true }
}

// Place positions shapes[seq[0]], shapes[seq[1]], ... in that order.
//
// seq holds indices into shapes and may repeat an index; a repeated shape
// occupies every slot it appears in during the gap computation and ends up at
// its last slot. At least MinShapes distinct shapes are required. Place computes every position before writing any, and writes
// nothing when it returns an error.
func Place(shapes []Rect, seq []int, mode Mode, c Canvas, opts ...PlaceOption) (Placement, error) {
	if !mode.Valid() {
		return Placement{}, unsupportedMode(string(mode))
	}
	if err := c.Validate(); err != nil {
		return Placement{}, err
	}
	if err := ValidateShapes(shapes); err != nil {
		return Placement{}, err
	}
	for _, i := range seq {
		if i < 0 || i >= len(shapes) {
			return Placement{}, errors.New(errors.ErrCodeInvalidInput, "placement index %d out of range [0,%d)", i, len(shapes))
		}
	}
	if n := distinct(seq); n < MinShapes {
		return Placement{}, insufficient(n)
	}

	var cfg placeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	switch mode {
	case HorizontalCenter:
		return alignCenters(shapes, seq, mode, vertical), nil
	case VerticalCenter:
		return alignCenters(shapes, seq, mode, horizontal), nil
	case HorizontalDistribute:
		return distribute(shapes, seq, mode, horizontal, c, cfg.crossAxis), nil
	default: // VerticalDistribute
		return distribute(shapes, seq, mode, vertical, c, cfg.crossAxis), nil
	}
}

// alignCenters moves every shape along ax so its center sits on the mean center.
func alignCenters(shapes []Rect, seq []int, mode Mode, ax axis) Placement {
	line := meanCenter(shapes, seq, ax)
	for _, i := range seq {
		ax.setStart(&shapes[i], line-ax.size(shapes[i])/2)
	}
	return Placement{Mode: mode, Count: len(seq), Line: line}
}

// distribute lays shapes out along ax from the margin with equal gaps.
func distribute(shapes []Rect, seq []int, mode Mode, ax axis, c Canvas, crossAxis bool) Placement {
	var total float64
	for _, i := range seq {
		total += ax.size(shapes[i])
	}
	gap := (ax.usable(c) - total) / float64(len(seq)-1)

	cross := ax.other()
	var line float64
	if crossAxis {
		line = meanCenter(shapes, seq, cross)
	}

	starts := make([]float64, len(seq))
	pos := c.Margin
	for k, i := range seq {
		starts[k] = pos
		pos += ax.size(shapes[i]) + gap
	}

	for k, i := range seq {
		ax.setStart(&shapes[i], starts[k])
		if crossAxis {
			cross.setStart(&shapes[i], line-cross.size(shapes[i])/2)
		}
	}

	return Placement{
		Mode:     mode,
		Count:    len(seq),
		Gap:      gap,
		Overflow: gap < 0,
		Line:     line,
	}
}

func meanCenter(shapes []Rect, seq []int, ax axis) float64 {
	var sum float64
	for _, i := range seq {
		sum += ax.start(shapes[i]) + ax.size(shapes[i])/2
	}
	return sum / float64(len(seq))
}

// distinct counts the different shapes seq refers to.
func distinct(seq []int) int {
	seen := make(map[int]struct{}, len(seq))
	for _, i := range seq {
		seen[i] = struct{}{}
	}
	return len(seen)
}

func insufficient(n int) error {
	return errors.New(errors.ErrCodeInsufficientInput, "need at least %d shapes to arrange, got %d", MinShapes, n)
}

// axis abstracts over the horizontal (left/width) and vertical (top/height)
// dimensions so each mode is written once.
type axis int

const (
	horizontal axis = iota
	vertical
)

func (a axis) start(r Rect) float64 {
	if a == horizontal {
		return r.Left
	}
	return r.Top
}

func (a axis) size(r Rect) float64 {
	if a == horizontal {
		return r.Width
	}
	return r.Height
}

func (a axis) setStart(r *Rect, v float64) {
	if a == horizontal {
		r.Left = v
		return
	}
	r.Top = v
}

func (a axis) usable(c Canvas) float64 {
	if a == horizontal {
		return c.UsableWidth()
	}
	return c.UsableHeight()
}

func (a axis) other() axis {
	if a == horizontal {
		return vertical
	}
	return horizontal
}
