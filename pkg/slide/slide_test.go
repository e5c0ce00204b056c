package slide

import (
	"slices"
	"testing"

	"github.com/matzehuels/shapealign/pkg/errors"
	"github.com/matzehuels/shapealign/pkg/layout"
)

func testSlide() *Slide {
	return &Slide{Shapes: []Shape{
		{Rect: layout.Rect{ID: "a", Left: 1, Top: 2, Width: 10, Height: 20}, Label: "arrow"},
		{Rect: layout.Rect{ID: "b", Left: 3, Top: 4, Width: 30, Height: 40}},
	}}
}

func TestRectsAndSetRects(t *testing.T) {
	s := testSlide()
	rects := s.Rects()
	rects[0].Left, rects[0].Top = 100, 200
	rects[1].Width = 999

	if s.Shapes[0].Left != 1 {
		t.Fatal("Rects() must return a copy")
	}
	if err := s.SetRects(rects); err != nil {
		t.Fatalf("SetRects() error: %v", err)
	}
	if s.Shapes[0].Left != 100 || s.Shapes[0].Top != 200 {
		t.Errorf("shape a = %+v", s.Shapes[0])
	}
	if s.Shapes[1].Width != 30 {
		t.Errorf("SetRects() must not write sizes, width = %v", s.Shapes[1].Width)
	}
	if s.Shapes[0].Label != "arrow" {
		t.Errorf("label lost: %+v", s.Shapes[0])
	}
}

func TestSetRectsUnknownID(t *testing.T) {
	s := testSlide()
	err := s.SetRects([]layout.Rect{{ID: "a", Left: 50}, {ID: "zz"}})
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Fatalf("SetRects() error = %v, want NOT_FOUND", err)
	}
	if s.Shapes[0].Left != 1 {
		t.Error("SetRects() wrote positions despite failing")
	}
}

func TestFindAndIDs(t *testing.T) {
	s := testSlide()
	if !slices.Equal(s.IDs(), []string{"a", "b"}) {
		t.Errorf("IDs() = %v", s.IDs())
	}
	if sh, ok := s.Find("b"); !ok || sh.Width != 30 {
		t.Errorf("Find(b) = %+v, %v", sh, ok)
	}
	if _, ok := s.Find("c"); ok {
		t.Error("Find(c) should fail")
	}
}

func TestClone(t *testing.T) {
	s := testSlide()
	c := layout.DefaultCanvas()
	s.Canvas = &c

	cp := s.Clone()
	cp.Shapes[0].Left = 77
	cp.Canvas.Margin = 0

	if s.Shapes[0].Left != 1 || s.Canvas.Margin != layout.DefaultMargin {
		t.Error("Clone() shares state with the original")
	}
}
