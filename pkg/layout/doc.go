// Package layout computes new positions for shapes on a slide.
//
// # Overview
//
// The engine takes a snapshot of positioned rectangles and an alignment
// [Mode] and rewrites the Left/Top fields in place. Width and Height are
// never touched. Every call is a pure transformation: no I/O, no package
// state, no locks. Calls on disjoint slices may run concurrently.
//
// # Modes
//
//   - [HorizontalDistribute]: spread shapes left-to-right so the first starts
//     at the canvas margin, the last ends at the opposite margin, and every
//     gap between neighbours is equal.
//   - [VerticalDistribute]: the same, top-to-bottom, on the canvas height.
//   - [HorizontalCenter]: put every shape on one horizontal line (equal
//     top + height/2, at the mean of the current centers).
//   - [VerticalCenter]: put every shape on one vertical line (equal
//     left + width/2).
//
// When the shapes are wider (or taller) than the usable canvas the gap goes
// negative and neighbours overlap. This is reported through
// [Placement.Overflow] and never clamped.
//
// # Unordered and Ordered Arrangement
//
// [Align] derives the sequence from the current geometry: distribute modes
// sort by the leading edge (stable, so ties keep input order).
//
// [ArrangeOrdered] takes the sequence from the caller, typically the order a
// language model chose from the user's instruction. It is built from two
// independent stages that are exported on their own:
//
//	res := layout.ResolveOrder(shapes, order)      // identifier policy
//	p, err := layout.Place(shapes, res.Seq, mode,  // geometry
//	    canvas, layout.WithCrossAxis())
//
// Under ordered distribution the shapes are also centered on the cross axis,
// so a left-to-right flow ends up on one row.
//
// # Canvas
//
// The usable area is described by a [Canvas] passed to every call. The
// default, [DefaultCanvas], matches a 16:9 slide in points (960 x 540) with a
// 40pt margin.
//
// # Errors
//
// Validation failures (non-finite numbers, negative sizes, duplicate ids, a
// bad canvas) are fatal and leave the input untouched. The remaining
// conditions are notices, recognizable with errors.IsNotice:
//
//   - INSUFFICIENT_INPUT: fewer than two distinct shapes to place
//   - UNSUPPORTED_MODE: the mode string is not exactly one of the four modes
//
// Identifiers in an order that match no shape are skipped and listed in
// [Resolution.Unresolved]; [Resolution.Skipped] turns them into an
// UNRESOLVED_IDENTIFIER notice while the remaining shapes are still placed.
package layout
