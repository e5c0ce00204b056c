// Package slide provides the JSON documents exchanged with the host
// application and the inference service.
//
// # Overview
//
// A slide snapshot is what the add-in exports before an arrangement and
// imports afterwards: every shape's identifier and geometry, optionally with
// the labels the scene analyzer attached, and optionally the canvas bounds of
// the slide:
//
//	{
//	  "shapes": [
//	    {"id": "12", "left": 500, "top": 0, "width": 50, "height": 50, "label": "email icon"},
//	    {"id": "13", "left": 10, "top": 0, "width": 50, "height": 50}
//	  ],
//	  "canvas": {"width": 960, "height": 540, "margin": 40}
//	}
//
// A directive is the arranger's structured output:
//
//	{"order": ["13", "12"], "alignment": "horizontal_distribute", "explanation": "..."}
//
// # Reading and Writing
//
// [Read] and [ReadFile] decode and validate a snapshot; [Write] and
// [WriteFile] encode one with stable indentation. [ReadDirective] and
// [ReadDirectiveFile] do the same for directives, and [ReadLabels] for the
// scene analyzer's labels.
//
// # Bridging to the Engine
//
// [Slide.Rects] extracts the geometry the layout engine works on and
// [Slide.SetRects] writes computed positions back. Only left and top are ever
// copied back; labels, descriptions and sizes are preserved.
//
// # Directive Filtering
//
// [FilterDirective] drops identifiers the slide does not contain before the
// engine sees them and fails with NO_MATCHING_SHAPES when nothing is left.
// [MergeLabels] gives every shape a label, falling back to "unknown shape".
package slide
