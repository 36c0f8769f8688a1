package main

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"github.com/sgostarter/i/l"

	"honnef.co/go/grapher"
	"honnef.co/go/grapher/chart"
	"honnef.co/go/grapher/config"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// App is the state of the main window. Everything except the results
// channel is owned by the goroutine running the event loop.
type App struct {
	window   *app.Window
	theme    *material.Theme
	logger   l.Wrapper
	cfg      config.Config
	editor   *grapher.Editor
	printer  *chart.Printer
	explorer *explorer.Explorer

	// Completions of background exports and print jobs.
	results chan result
	busy    bool

	panel widget.List

	// Chart settings.
	count      widget.Editor
	create     widget.Clickable
	chartForm  chartFields
	grid       widget.Bool
	applyChart widget.Clickable

	curveList   widget.List
	curveClicks []widget.Clickable

	// Curve settings of the selected curve, applied on request.
	label      widget.Editor
	style      grapher.Style
	color      widget.Clickable
	lineStyle  widget.Clickable
	marker     widget.Clickable
	showPoints widget.Bool
	applyCurve widget.Clickable

	mode    widget.Enum
	clear   widget.Clickable
	smooth  widget.Clickable
	formula widget.Editor
	points  widget.Editor
	build   widget.Clickable
	export  [len(chart.Formats)]widget.Clickable
	print   widget.Clickable

	view  plotView
	table widget.List
	modal modal
}

type chartFields struct {
	xLabel, yLabel widget.Editor
	xMax, yMax     widget.Editor
	stepX, stepY   widget.Editor
}

type result struct {
	msg string
	err error
}

func newApp(w *app.Window, cfg config.Config, logger l.Wrapper) (*App, error) {
	params := cfg.Chart.Params()
	ed, err := grapher.NewEditor(params, logger)
	if err != nil {
		return nil, err
	}
	if cfg.Curves > 0 {
		if err := ed.Create(cfg.Curves); err != nil {
			return nil, err
		}
	}
	popts, err := cfg.PrintOptions()
	if err != nil {
		return nil, err
	}

	w.Option(
		app.Title("Grapher"),
		app.Size(unit.Dp(cfg.Window.Width), unit.Dp(cfg.Window.Height)),
	)
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))

	a := &App{
		window:   w,
		theme:    th,
		logger:   logger.WithFields(l.StringField(l.ClsKey, "App")),
		cfg:      cfg,
		editor:   ed,
		printer:  chart.NewPrinter(logger),
		explorer: explorer.NewExplorer(w),
		results:  make(chan result, 1),
	}
	a.printer.Options = popts
	a.panel.Axis = layout.Vertical
	a.curveList.Axis = layout.Vertical
	a.table.Axis = layout.Vertical
	for _, e := range []*widget.Editor{
		&a.count, &a.chartForm.xLabel, &a.chartForm.yLabel, &a.chartForm.xMax,
		&a.chartForm.yMax, &a.chartForm.stepX, &a.chartForm.stepY,
		&a.label, &a.formula, &a.points,
	} {
		e.SingleLine = true
	}
	a.count.SetText(fmt.Sprint(max(cfg.Curves, 1)))
	a.setChartForm(params)
	a.formula.SetText(cfg.Formula.Expr)
	a.points.SetText(fmt.Sprint(cfg.Formula.Points))
	a.mode.Value = ed.Mode().String()
	a.style = grapher.DefaultStyle(0)
	a.showPoints.Value = true
	a.curveClicks = make([]widget.Clickable, ed.Len())
	a.view.dirty = true
	return a, nil
}

func (a *App) run() error {
	var ops op.Ops
	for {
		e := a.window.Event()
		a.explorer.ListenEvents(e)
		switch e := e.(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			a.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (a *App) layout(gtx C) D {
	a.collectResults()
	if !a.modal.active() {
		a.update(gtx)
	}
	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx C) D {
			return layout.Flex{}.Layout(gtx,
				layout.Rigid(a.layoutPanel),
				layout.Flexed(1, a.layoutMain),
			)
		}),
		layout.Expanded(func(gtx C) D {
			return a.modal.Layout(gtx, a.theme)
		}),
	)
}

// post delivers the outcome of a background job to the event loop.
func (a *App) post(r result) {
	a.results <- r
	a.window.Invalidate()
}

func (a *App) collectResults() {
	for {
		select {
		case r := <-a.results:
			a.busy = false
			if r.err != nil {
				a.modal.Error(r.err)
			} else if r.msg != "" {
				a.modal.Info(r.msg)
			}
		default:
			return
		}
	}
}

func (a *App) update(gtx C) {
	if a.create.Clicked(gtx) {
		a.createCurves()
	}
	toggled := a.grid.Update(gtx)
	if a.applyChart.Clicked(gtx) || toggled {
		a.applyChartSettings()
	}
	for i := range a.curveClicks {
		if a.curveClicks[i].Clicked(gtx) {
			a.selectCurve(i)
		}
	}
	if a.color.Clicked(gtx) {
		a.style.Color = next(grapher.SelectableColors, a.style.Color)
	}
	if a.lineStyle.Clicked(gtx) {
		a.style.LineStyle = next(grapher.LineStyles, a.style.LineStyle)
	}
	if a.marker.Clicked(gtx) {
		a.style.Marker = next(grapher.Markers, a.style.Marker)
	}
	a.showPoints.Update(gtx)
	if a.applyCurve.Clicked(gtx) {
		a.applyCurveSettings()
	}
	if a.mode.Update(gtx) {
		if m, err := grapher.ParseMode(a.mode.Value); err == nil {
			a.editor.SetMode(m)
		}
	}
	if a.clear.Clicked(gtx) {
		a.confirmClear()
	}
	if a.smooth.Clicked(gtx) {
		a.smoothCurve()
	}
	if a.build.Clicked(gtx) {
		a.buildFromFormula()
	}
	for i, f := range chart.Formats {
		if a.export[i].Clicked(gtx) {
			a.exportAs(f)
		}
	}
	if a.print.Clicked(gtx) {
		a.printChart()
	}
}

func next[T comparable](values []T, cur T) T {
	i := slices.Index(values, cur)
	return values[(i+1)%len(values)]
}

func (a *App) changed() {
	a.view.dirty = true
}

func (a *App) setChartForm(p grapher.ChartParams) {
	f := config.FormOf(p)
	a.chartForm.xLabel.SetText(f.XLabel)
	a.chartForm.yLabel.SetText(f.YLabel)
	a.chartForm.xMax.SetText(f.XMax)
	a.chartForm.yMax.SetText(f.YMax)
	a.chartForm.stepX.SetText(f.GridStepX)
	a.chartForm.stepY.SetText(f.GridStepY)
	a.grid.Value = f.Grid
}

func (a *App) createCurves() {
	n, err := config.ParseCount("number of curves", a.count.Text())
	if err == nil {
		err = a.editor.Create(n)
	}
	if err != nil {
		a.modal.Error(err)
		return
	}
	a.curveClicks = make([]widget.Clickable, n)
	a.changed()
}

func (a *App) applyChartSettings() {
	form := config.ChartForm{
		XLabel:    a.chartForm.xLabel.Text(),
		YLabel:    a.chartForm.yLabel.Text(),
		XMax:      a.chartForm.xMax.Text(),
		YMax:      a.chartForm.yMax.Text(),
		GridStepX: a.chartForm.stepX.Text(),
		GridStepY: a.chartForm.stepY.Text(),
		Grid:      a.grid.Value,
	}
	p, err := form.Params()
	if err == nil {
		err = a.editor.SetChart(p)
	}
	if err != nil {
		a.grid.Value = a.editor.Params().GridEnabled
		a.modal.Error(err)
		return
	}
	a.changed()
}

func (a *App) selectCurve(i int) {
	if err := a.editor.Select(i); err != nil {
		a.modal.Error(err)
		return
	}
	c, _ := a.editor.Curve(i)
	a.label.SetText(c.Label)
	a.style = c.Style
	a.showPoints.Value = c.Style.ShowPoints
}

func (a *App) applyCurveSettings() {
	st := a.style
	st.ShowPoints = a.showPoints.Value
	if err := a.editor.ApplyCurveStyle(a.label.Text(), st); err != nil {
		a.modal.Error(err)
		return
	}
	a.changed()
}

func (a *App) confirmClear() {
	i, ok := a.editor.Selected()
	if !ok {
		a.modal.Error(grapher.ErrNoSelection)
		return
	}
	c, _ := a.editor.Curve(i)
	if c.Len() == 0 {
		a.modal.Info(fmt.Sprintf("%s is already empty.", c.Label))
		return
	}
	a.modal.Confirm(fmt.Sprintf("Remove all points of %s?", c.Label), func() {
		n, err := a.editor.Clear()
		if err != nil {
			a.modal.Error(err)
			return
		}
		a.changed()
		a.modal.Info(fmt.Sprintf("Removed %d points from %s.", n, c.Label))
	})
}

func (a *App) smoothCurve() {
	if err := a.editor.Smooth(); err != nil {
		a.modal.Error(err)
		return
	}
	a.changed()
}

func (a *App) buildFromFormula() {
	n, err := config.ParseCount("number of points", a.points.Text())
	if err == nil {
		err = a.editor.BuildFromFormula(a.formula.Text(), n)
	}
	if err != nil {
		a.modal.Error(err)
		return
	}
	a.changed()
}

// background runs job off the event loop. Only one job runs at a time.
func (a *App) background(job func() result) bool {
	if a.busy {
		a.modal.Info("Another export or print job is still running.")
		return false
	}
	a.busy = true
	go func() { a.post(job()) }()
	return true
}

func (a *App) exportAs(f chart.Format) {
	if a.editor.Len() == 0 {
		a.modal.Info("There are no curves to export.")
		return
	}
	opts, err := a.cfg.ExportOptions(f)
	if err != nil {
		a.modal.Error(err)
		return
	}
	scene := a.editor.Render(a.cfg.Export.Title)
	logger := a.logger
	a.background(func() result {
		w, err := a.explorer.CreateFile(f.WithExt("chart"))
		if errors.Is(err, explorer.ErrUserDecline) {
			return result{}
		}
		if err != nil {
			return result{err: err}
		}
		err = chart.Export(w, scene, opts)
		if cerr := w.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			logger.WithFields(l.ErrorField(err), l.StringField("format", f.String())).Error("export failed")
			return result{err: err}
		}
		logger.WithFields(l.StringField("format", f.String()), l.StringField("backend", opts.Backend.String())).Info("chart exported")
		return result{msg: fmt.Sprintf("Chart exported as %s.", f)}
	})
}

func (a *App) printChart() {
	if a.editor.Len() == 0 {
		a.modal.Info("There are no curves to print.")
		return
	}
	scene := a.editor.Render(a.cfg.Export.Title)
	a.background(func() result {
		if err := a.printer.Print(context.Background(), scene); err != nil {
			return result{err: err}
		}
		return result{msg: "Chart sent to the printer."}
	})
}
