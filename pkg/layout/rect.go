package layout

import (
	"github.com/matzehuels/shapealign/pkg/errors"
)

// Rect is a positioned, sized shape on a slide.
// Coordinates are in the host document's native unit (points for
// PowerPoint), with the origin at the top-left and Y increasing downward.
type Rect struct {
	ID     string  `json:"id"`
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the horizontal end of the rectangle.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom returns the vertical end of the rectangle.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// CenterX returns the horizontal center point of the rectangle.
func (r Rect) CenterX() float64 { return r.Left + r.Width/2 }

// CenterY returns the vertical center point of the rectangle.
func (r Rect) CenterY() float64 { return r.Top + r.Height/2 }

// Validate checks the identifier and that every numeric field is finite with
// non-negative width and height.
func (r Rect) Validate() error {
	if err := errors.ValidateShapeID(r.ID); err != nil {
		return err
	}
	if err := errors.ValidateFinite("left", r.Left); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidGeometry, err, "shape %q", r.ID)
	}
	if err := errors.ValidateFinite("top", r.Top); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidGeometry, err, "shape %q", r.ID)
	}
	if err := errors.ValidateSize("width", r.Width); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidGeometry, err, "shape %q", r.ID)
	}
	if err := errors.ValidateSize("height", r.Height); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidGeometry, err, "shape %q", r.ID)
	}
	return nil
}

// ValidateShapes validates every rectangle and rejects duplicate identifiers.
func ValidateShapes(shapes []Rect) error {
	seen := make(map[string]bool, len(shapes))
	for _, r := range shapes {
		if err := r.Validate(); err != nil {
			return err
		}
		if seen[r.ID] {
			return errors.New(errors.ErrCodeInvalidGeometry, "duplicate shape id %q", r.ID)
		}
		seen[r.ID] = true
	}
	return nil
}

// Clone returns a copy of shapes that can be modified independently.
func Clone(shapes []Rect) []Rect {
	if shapes == nil {
		return nil
	}
	out := make([]Rect, len(shapes))
	copy(out, shapes)
	return out
}
