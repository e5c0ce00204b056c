package slide

import (
	"fmt"
	"io"

	"github.com/matzehuels/shapealign/pkg/errors"
)

// Fallbacks for shapes the scene analyzer did not label.
const (
	UnknownLabel       = "unknown shape"
	UnknownDescription = "Shape not identified"
)

// Label is one entry of the scene analyzer's output.
type Label struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type labelDoc struct {
	LabeledShapes []Label `json:"labeled_shapes"`
}

// ReadLabels decodes a scene analysis response: {"labeled_shapes": [...]}.
func ReadLabels(r io.Reader) ([]Label, error) {
	var doc labelDoc
	if err := decode(r, &doc); err != nil {
		return nil, err
	}
	for i, l := range doc.LabeledShapes {
		if l.ID == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "labeled_shapes[%d] has no id", i)
		}
	}
	return doc.LabeledShapes, nil
}

// ReadLabelsFile reads a scene analysis response from path.
func ReadLabelsFile(path string) ([]Label, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	labels, err := ReadLabels(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return labels, nil
}

// MergeLabels attaches labels to the shapes of s in place and returns the
// identifiers of labels that matched no shape. Shapes without a label get
// [UnknownLabel] and [UnknownDescription]. The geometry always comes from the
// slide, never from the labels.
func MergeLabels(s *Slide, labels []Label) (unmatched []string) {
	byID := make(map[string]Label, len(labels))
	for _, l := range labels {
		byID[l.ID] = l
	}

	seen := make(map[string]bool, len(labels))
	for i := range s.Shapes {
		sh := &s.Shapes[i]
		l, ok := byID[sh.ID]
		if !ok {
			sh.Label = UnknownLabel
			sh.Description = UnknownDescription
			continue
		}
		sh.Label = l.Label
		sh.Description = l.Description
		seen[sh.ID] = true
	}

	for _, l := range labels {
		if !seen[l.ID] {
			unmatched = append(unmatched, l.ID)
		}
	}
	return unmatched
}

// Unlabeled returns the identifiers of shapes carrying the fallback label.
func Unlabeled(s *Slide) []string {
	var ids []string
	for _, sh := range s.Shapes {
		if sh.Label == UnknownLabel {
			ids = append(ids, sh.ID)
		}
	}
	return ids
}
