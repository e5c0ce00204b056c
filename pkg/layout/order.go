package layout

import (
	"strings"

	"github.com/matzehuels/shapealign/pkg/errors"
)

// Resolution is the outcome of matching a caller-supplied order against the
// shapes on a slide.
type Resolution struct {
	// Seq holds indices into the shapes slice in placement order.
	// Repeated identifiers produce repeated indices.
	Seq []int

	// IDs holds the identifiers of Seq, in the same order.
	IDs []string

	// Unresolved lists order entries that matched no shape, in the order
	// they appeared. They are skipped, not fatal.
	Unresolved []string
}

// Skipped returns an UNRESOLVED_IDENTIFIER notice naming every entry that
// matched no shape, or nil when the whole order resolved.
func (r Resolution) Skipped() error {
	if len(r.Unresolved) == 0 {
		return nil
	}
	return errors.New(errors.ErrCodeUnresolvedIdentifier, "no shape with id %s", strings.Join(r.Unresolved, ", "))
}

// ResolveOrder maps identifiers to indices into shapes. It never touches
// geometry, so identifier policy can be tested and swapped independently of
// [Place].
func ResolveOrder(shapes []Rect, order []string) Resolution {
	index := make(map[string]int, len(shapes))
	for i, r := range shapes {
		if _, ok := index[r.ID]; !ok {
			index[r.ID] = i
		}
	}

	res := Resolution{
		Seq: make([]int, 0, len(order)),
		IDs: make([]string, 0, len(order)),
	}
	for _, id := range order {
		i, ok := index[id]
		if !ok {
			res.Unresolved = append(res.Unresolved, id)
			continue
		}
		res.Seq = append(res.Seq, i)
		res.IDs = append(res.IDs, id)
	}
	return res
}

// Arrangement is the combined result of [ArrangeOrdered].
type Arrangement struct {
	Placement
	Resolution
}

// ArrangeOrdered arranges shapes in the sequence given by order, ignoring
// their current positions.
//
// Identifiers in order that match no shape are skipped and reported in
// Arrangement.Unresolved. Fewer than two distinct resolved shapes yields an
// INSUFFICIENT_INPUT notice with no mutation; the returned Arrangement still
// carries the resolution so callers can report what went missing.
//
// Distribute modes also center every placed shape on the cross axis. Center
// modes behave exactly like [Align] on the resolved shapes.
func ArrangeOrdered(shapes []Rect, order []string, mode Mode, c Canvas) (Arrangement, error) {
	if !mode.Valid() {
		return Arrangement{}, unsupportedMode(string(mode))
	}

	res := ResolveOrder(shapes, order)
	p, err := Place(shapes, res.Seq, mode, c, WithCrossAxis())
	return Arrangement{Placement: p, Resolution: res}, err
}
