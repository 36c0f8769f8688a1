// Package grapher implements an interactive editor for point-based curves on
// a 2D chart.
//
// # Editing
//
// An [Editor] owns an ordered list of [Curve]s, the global [ChartParams],
// the selected curve and the interaction [Mode]. User actions map onto
// editor methods one to one: [Editor.Create] replaces all curves,
// [Editor.PointerDown], [Editor.PointerMove] and [Editor.PointerUp] add,
// delete or drag points depending on the mode, [Editor.Smooth] replaces a
// curve by a cubic spline fit and [Editor.BuildFromFormula] samples a
// formula written in the language of package expr.
//
// Errors are classified by sentinel values ([ErrValidation],
// [ErrNoSelection], [ErrFormula], [ErrSmoothing], …) that callers test with
// errors.Is. Failed operations never modify the editor.
//
// # Rendering
//
// [Render] turns curves and chart parameters into a [Scene], a
// backend-independent list of what to draw: axis bounds and ticks, the grid,
// and one x-sorted polyline per non-empty curve with its markers and legend
// entry. Package chart draws scenes on screen, into image and vector files,
// and onto paper.
//
// # Geometry
//
// The package includes the small amount of 2D geometry the editor and its
// renderers need: [Point], [Vec2], [Size], [Rect], [Line], [Path] and
// [Affine] transforms between pixel space and chart space.
package grapher
