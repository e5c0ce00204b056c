// Package preview draws slide snapshots with Graphviz.
//
// # Overview
//
// A preview is a picture of the canvas: a frame for the slide, a dashed
// frame for the margin, and one box per shape at its exact position and
// size. It lets a reviewer compare a snapshot before and after an
// arrangement without the host application.
//
// # Usage
//
//	dot := preview.ToDOT(s, canvas, preview.Options{ShowMargin: true})
//	svg, err := preview.RenderSVG(ctx, dot)
//
// [Render] wraps both steps and also produces PNG and PDF through
// [render.ToPNG] and [render.ToPDF]. A [Renderer] with a cache skips
// Graphviz for a DOT source it has rendered before.
//
// # DOT Format
//
// The generated graph uses the neato engine with every node pinned
// (pos="x,y!"), so Graphviz draws rather than lays out. Coordinates are
// converted from points to inches (72 per inch) and the Y axis is flipped:
// slides grow downward, Graphviz grows upward.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no Graphviz installation is needed.
//
// [render.ToPNG]: github.com/matzehuels/shapealign/pkg/render.ToPNG
// [render.ToPDF]: github.com/matzehuels/shapealign/pkg/render.ToPDF
package preview
