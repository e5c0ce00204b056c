package preview

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/shapealign/pkg/layout"
	"github.com/matzehuels/shapealign/pkg/slide"
)

const pointsPerInch = 72.0

// minSide keeps zero-sized shapes visible.
const minSide = 0.01

// Node identifiers reserved for the frames.
const (
	canvasNode = "__canvas__"
	marginNode = "__margin__"
)

// Options configures preview generation.
type Options struct {
	// Scale multiplies every coordinate. Zero means 1.
	Scale float64

	// ShowMargin draws the usable area as a dashed frame.
	ShowMargin bool

	// ShowIDs adds the shape identifier under its label.
	ShowIDs bool
}

// ToDOT converts a slide to Graphviz DOT with every shape pinned at its
// position on canvas c.
func ToDOT(s *slide.Slide, c layout.Canvas, opts Options) string {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	p := projector{height: c.Height, scale: scale}

	var buf bytes.Buffer
	buf.WriteString("graph slide {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  notranslate=true;\n")
	buf.WriteString("  overlap=true;\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	buf.WriteString("  node [shape=box, fixedsize=true, style=filled, fillcolor=\"#dbeafe\", color=\"#1e40af\", fontname=\"Helvetica\", fontsize=10];\n")
	buf.WriteString("\n")

	frame := layout.Rect{ID: canvasNode, Width: c.Width, Height: c.Height}
	fmt.Fprintf(&buf, "  %q [%s, label=\"\", style=solid, color=\"#9ca3af\"];\n", canvasNode, p.attrs(frame))
	if opts.ShowMargin && c.Margin > 0 {
		usable := layout.Rect{ID: marginNode, Left: c.Margin, Top: c.Margin, Width: c.UsableWidth(), Height: c.UsableHeight()}
		fmt.Fprintf(&buf, "  %q [%s, label=\"\", style=dashed, color=\"#d1d5db\"];\n", marginNode, p.attrs(usable))
	}

	buf.WriteString("\n")
	for _, sh := range s.Shapes {
		fmt.Fprintf(&buf, "  %q [%s, label=%q];\n", sh.ID, p.attrs(sh.Rect), fmtLabel(sh, opts.ShowIDs))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(sh slide.Shape, showID bool) string {
	label := sh.Label
	if label == "" {
		label = sh.ID
	} else if showID {
		label += "\n" + sh.ID
	}
	return label
}

// projector maps slide points to Graphviz inches.
type projector struct {
	height float64
	scale  float64
}

func (p projector) attrs(r layout.Rect) string {
	x := r.CenterX() * p.scale / pointsPerInch
	y := (p.height - r.CenterY()) * p.scale / pointsPerInch
	w := math.Max(r.Width*p.scale/pointsPerInch, minSide)
	h := math.Max(r.Height*p.scale/pointsPerInch, minSide)
	return strings.Join([]string{
		fmt.Sprintf("pos=\"%.4f,%.4f!\"", x, y),
		fmt.Sprintf("width=%.4f", w),
		fmt.Sprintf("height=%.4f", h),
	}, ", ")
}
