package layout

import (
	"github.com/matzehuels/shapealign/pkg/errors"
)

// Default canvas bounds: a 16:9 PowerPoint slide in points.
const (
	DefaultCanvasWidth  = 960.0
	DefaultCanvasHeight = 540.0
	DefaultMargin       = 40.0
)

// Canvas describes the drawing area shapes are distributed across.
type Canvas struct {
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
	Margin float64 `json:"margin" toml:"margin"`
}

// DefaultCanvas returns the 960x540 canvas with a 40pt margin.
func DefaultCanvas() Canvas {
	return Canvas{
		Width:  DefaultCanvasWidth,
		Height: DefaultCanvasHeight,
		Margin: DefaultMargin,
	}
}

// UsableWidth returns the width between the left and right margins.
func (c Canvas) UsableWidth() float64 { return c.Width - 2*c.Margin }

// UsableHeight returns the height between the top and bottom margins.
func (c Canvas) UsableHeight() float64 { return c.Height - 2*c.Margin }

// IsZero reports whether no field has been set.
func (c Canvas) IsZero() bool { return c == Canvas{} }

// Validate checks that the canvas has a positive size and that the margins
// leave a non-empty usable area.
func (c Canvas) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{{"canvas width", c.Width}, {"canvas height", c.Height}, {"canvas margin", c.Margin}} {
		if err := errors.ValidateSize(f.name, f.v); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidCanvas, err, "invalid canvas")
		}
	}
	if c.Width == 0 || c.Height == 0 {
		return errors.New(errors.ErrCodeInvalidCanvas, "canvas must have a positive size, got %vx%v", c.Width, c.Height)
	}
	if c.UsableWidth() <= 0 || c.UsableHeight() <= 0 {
		return errors.New(errors.ErrCodeInvalidCanvas, "margin %v leaves no usable area on a %vx%v canvas", c.Margin, c.Width, c.Height)
	}
	return nil
}
