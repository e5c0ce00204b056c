// Package render holds output helpers shared by shapealign's renderers.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg):
//
//	svg, err := preview.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// # Slide Previews
//
// The [preview] subpackage draws a slide snapshot with Graphviz so an
// arrangement can be checked without opening the host application.
//
// [preview]: github.com/matzehuels/shapealign/pkg/render/preview
package render
