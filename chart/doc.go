// Package chart draws a [grapher.Scene] with gonum/plot.
//
// [Build] composes the plot; [Rasterize] renders it for the interactive view
// and returns the [Viewport] that maps pointer positions back to chart
// coordinates; [Export] writes PNG, SVG or PDF through either the gonum
// backend or tdewolff/canvas; [Printer] hands a rendered PNG to the system
// print spooler.
package chart
