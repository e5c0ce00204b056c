// Package pkg provides the core libraries for shapealign slide layout.
//
// # Overview
//
// shapealign arranges the shapes of a presentation slide: it spreads them
// with equal gaps between the canvas margins, or lines up their centers.
// An arranger (a person or a language model) decides the order; these
// packages do the geometry. The pkg directory is organized as follows:
//
//  1. [layout] - Geometry (rectangles, canvas, modes, placement)
//  2. [slide] - Snapshots, directives and scene-analysis labels as JSON
//  3. [pipeline] - Orchestration (validate, arrange, write back, batch)
//  4. [render] - Previews of a snapshot as DOT, SVG, PNG or PDF
//  5. [config], [cache], [errors], [observability], [buildinfo] - Infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	slide snapshot (JSON) + directive (JSON)
//	         ↓
//	    [slide] package (decode + validate)
//	         ↓
//	    [pipeline] package (resolve order, pick canvas)
//	         ↓
//	    [layout] package (place shapes)
//	         ↓
//	    updated snapshot (JSON) / preview (SVG/PNG/PDF)
//
// # Quick Start
//
// Arrange three shapes in a given order:
//
//	import (
//	    "github.com/matzehuels/shapealign/pkg/layout"
//	)
//
//	shapes := []layout.Rect{
//	    {ID: "A", Left: 700, Width: 50, Height: 50},
//	    {ID: "B", Left: 100, Width: 50, Height: 50},
//	    {ID: "C", Left: 400, Width: 50, Height: 50},
//	}
//	arr, err := layout.ArrangeOrdered(shapes, []string{"A", "B", "C"},
//	    layout.HorizontalDistribute, layout.DefaultCanvas())
//	// shapes now sit at Left 40, 455 and 870 with a 365pt gap.
//
// Or run a whole snapshot through the pipeline:
//
//	s, _ := slide.ReadFile("slide.json")
//	d, _ := slide.ReadDirectiveFile("directive.json")
//	res, err := pipeline.NewRunner(nil).Arrange(ctx, s, *d, pipeline.Options{})
//	if err == nil && res.Applied() {
//	    _ = slide.WriteFile("slide.arranged.json", res.Slide)
//	}
//
// # Notices
//
// Fewer than two shapes, an unknown mode and an order with unknown ids are
// not failures: the pipeline reports them on [pipeline.Result] and leaves
// the slide unchanged. Use [errors.IsNotice] to tell them apart from real
// errors.
package pkg
