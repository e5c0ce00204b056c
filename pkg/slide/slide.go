package slide

import (
	"github.com/matzehuels/shapealign/pkg/errors"
	"github.com/matzehuels/shapealign/pkg/layout"
)

// Shape is a rectangle on the slide plus the labels the scene analyzer gave it.
type Shape struct {
	layout.Rect
	Label       string `json:"label,omitempty"`
	Description string `json:"description,omitempty"`
}

// Slide is a snapshot of every shape on one slide.
type Slide struct {
	Shapes []Shape `json:"shapes"`

	// Canvas overrides the configured canvas when set.
	Canvas *layout.Canvas `json:"canvas,omitempty"`
}

// Validate checks every shape's geometry, identifier uniqueness and, when
// present, the canvas.
func (s *Slide) Validate() error {
	if err := layout.ValidateShapes(s.Rects()); err != nil {
		return err
	}
	if s.Canvas != nil {
		if err := s.Canvas.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Rects returns a copy of the shape geometry in slide order.
func (s *Slide) Rects() []layout.Rect {
	out := make([]layout.Rect, len(s.Shapes))
	for i, sh := range s.Shapes {
		out[i] = sh.Rect
	}
	return out
}

// SetRects copies Left and Top from rects back onto the shapes with the same
// identifier. Widths and heights are never written. Rects whose identifier is
// not on the slide are reported as NOT_FOUND and nothing is written.
func (s *Slide) SetRects(rects []layout.Rect) error {
	index := make(map[string]int, len(s.Shapes))
	for i, sh := range s.Shapes {
		index[sh.ID] = i
	}
	for _, r := range rects {
		if _, ok := index[r.ID]; !ok {
			return errors.New(errors.ErrCodeNotFound, "shape %q is not on the slide", r.ID)
		}
	}
	for _, r := range rects {
		sh := &s.Shapes[index[r.ID]]
		sh.Left = r.Left
		sh.Top = r.Top
	}
	return nil
}

// IDs returns the shape identifiers in slide order.
func (s *Slide) IDs() []string {
	ids := make([]string, len(s.Shapes))
	for i, sh := range s.Shapes {
		ids[i] = sh.ID
	}
	return ids
}

// Find returns the shape with the given identifier.
func (s *Slide) Find(id string) (Shape, bool) {
	for _, sh := range s.Shapes {
		if sh.ID == id {
			return sh, true
		}
	}
	return Shape{}, false
}

// Clone returns a deep copy of the slide.
func (s *Slide) Clone() *Slide {
	out := &Slide{Shapes: make([]Shape, len(s.Shapes))}
	copy(out.Shapes, s.Shapes)
	if s.Canvas != nil {
		c := *s.Canvas
		out.Canvas = &c
	}
	return out
}
