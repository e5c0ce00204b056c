package layout

import (
	"cmp"
	"slices"
)

// Align arranges shapes using their current geometry to decide the sequence.
//
// Distribute modes order shapes by their leading edge (Left for horizontal,
// Top for vertical). The sort is stable, so shapes with equal edges keep
// their input order. Center modes do not depend on order.
//
// With fewer than two shapes Align returns an INSUFFICIENT_INPUT notice and
// leaves shapes untouched; an unknown mode yields UNSUPPORTED_MODE.
func Align(shapes []Rect, mode Mode, c Canvas) (Placement, error) {
	return Place(shapes, SortOrder(shapes, mode), mode, c)
}

// SortOrder returns the sequence [Align] places shapes in: indices sorted by
// leading edge for distribute modes, input order otherwise.
func SortOrder(shapes []Rect, mode Mode) []int {
	seq := make([]int, len(shapes))
	for i := range seq {
		seq[i] = i
	}

	switch mode {
	case HorizontalDistribute:
		slices.SortStableFunc(seq, func(a, b int) int {
			return cmp.Compare(shapes[a].Left, shapes[b].Left)
		})
	case VerticalDistribute:
		slices.SortStableFunc(seq, func(a, b int) int {
			return cmp.Compare(shapes[a].Top, shapes[b].Top)
		})
	}
	return seq
}
