package slide

import (
	"fmt"
	"io"

	"github.com/matzehuels/shapealign/pkg/errors"
	"github.com/matzehuels/shapealign/pkg/layout"
)

// Directive is the arranger's instruction: which shapes, in which order, and
// how to lay them out.
type Directive struct {
	// Order lists shape identifiers, first = leftmost or topmost.
	Order []string `json:"order"`

	// Alignment is one of the [layout.Modes] strings.
	Alignment string `json:"alignment"`

	// Explanation is a human-readable summary for the user.
	Explanation string `json:"explanation,omitempty"`
}

// Mode parses the alignment. Unknown values yield an UNSUPPORTED_MODE notice.
func (d Directive) Mode() (layout.Mode, error) {
	return layout.ParseMode(d.Alignment)
}

// ReadDirective decodes a directive from r. Both fields must be present; the
// alignment value itself is checked later so an unknown mode stays a notice.
func ReadDirective(r io.Reader) (*Directive, error) {
	var d Directive
	if err := decode(r, &d); err != nil {
		return nil, err
	}
	if d.Order == nil {
		return nil, errors.New(errors.ErrCodeInvalidDirective, "directive has no \"order\" array")
	}
	if d.Alignment == "" {
		return nil, errors.New(errors.ErrCodeInvalidDirective, "directive has no \"alignment\"")
	}
	return &d, nil
}

// ReadDirectiveFile reads a directive from path.
func ReadDirectiveFile(path string) (*Directive, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := ReadDirective(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// FilterDirective returns a copy of d whose order only contains identifiers
// present on s, together with the identifiers it dropped. Repeated
// identifiers are kept. When no identifier matches it fails with
// NO_MATCHING_SHAPES.
func FilterDirective(d Directive, s *Slide) (Directive, []string, error) {
	ids := make(map[string]bool, len(s.Shapes))
	for _, sh := range s.Shapes {
		ids[sh.ID] = true
	}

	out := d
	out.Order = make([]string, 0, len(d.Order))
	var dropped []string
	for _, id := range d.Order {
		if ids[id] {
			out.Order = append(out.Order, id)
		} else {
			dropped = append(dropped, id)
		}
	}
	if len(out.Order) == 0 {
		return out, dropped, errors.New(errors.ErrCodeNoMatchingShapes, "could not match any shapes to the request")
	}
	return out, dropped, nil
}
