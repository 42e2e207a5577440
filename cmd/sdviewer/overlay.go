package main

import (
	"fmt"
	"image/color"
	"math"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/slothcoder21/ecs163-25s/cmd/sdviewer/uihelpers"
	"github.com/slothcoder21/ecs163-25s/src/dataset"
)

type viewKind int

const (
	viewScatter viewKind = iota
	viewParallel
)

// markOverlay sits on top of a chart image and turns pointer events into
// interaction-state operations: hover highlight + tooltip, click selection,
// and (scatter only) brush, wheel zoom and secondary-button pan. It never
// mutates the selection/filter sets itself; everything goes through the
// manager, which fans the change back out to every view.
type markOverlay struct {
	widget.BaseWidget
	state *uiState
	kind  viewKind

	mouse     fyne.Position
	hovering  bool
	hoveredID string

	// Brush rectangle in view space. hasBrush mirrors the manager's
	// brush-active flag for this view's geometry.
	brushing bool
	hasBrush bool
	brushA   fyne.Position
	brushB   fyne.Position

	panning bool
	panLast fyne.Position

	// Selection flash: a short fire-and-forget pulse on toggle.
	flashPos   fyne.Position
	flashColor color.Color
}

func newMarkOverlay(state *uiState, kind viewKind) *markOverlay {
	o := &markOverlay{state: state, kind: kind, flashColor: color.Transparent}
	o.ExtendBaseWidget(o)
	return o
}

func (o *markOverlay) chartCanvas() *canvas.Image {
	if o.kind == viewScatter {
		return o.state.scatterImgCanvas
	}
	return o.state.parallelImgCanvas
}

func (o *markOverlay) imageSize() (float32, float32) {
	c := o.chartCanvas()
	if c == nil || c.Image == nil {
		return 0, 0
	}
	b := c.Image.Bounds()
	return float32(b.Dx()), float32(b.Dy())
}

// viewToImage maps a view-space pointer position into image pixel space.
func (o *markOverlay) viewToImage(p fyne.Position) (float64, float64, bool) {
	imgW, imgH := o.imageSize()
	if imgW <= 0 || imgH <= 0 {
		return 0, 0, false
	}
	sz := o.Size()
	px, py, ok := uihelpers.ViewToImage(p.X, p.Y, imgW, imgH, sz.Width, sz.Height)
	return float64(px), float64(py), ok
}

// viewToImageClamped maps like viewToImage but clamps points in the
// letterbox onto the image edge, so a brush drag can leave the plot.
func (o *markOverlay) viewToImageClamped(p fyne.Position) (float64, float64) {
	imgW, imgH := o.imageSize()
	sz := o.Size()
	drawX, drawY, drawW, drawH, scale := uihelpers.ContainRect(imgW, imgH, sz.Width, sz.Height)
	if scale <= 0 {
		return 0, 0
	}
	x := p.X
	y := p.Y
	if x < drawX {
		x = drawX
	}
	if x > drawX+drawW {
		x = drawX + drawW
	}
	if y < drawY {
		y = drawY
	}
	if y > drawY+drawH {
		y = drawY + drawH
	}
	return float64((x - drawX) / scale), float64((y - drawY) / scale)
}

func (o *markOverlay) imageToView(px, py float64) fyne.Position {
	imgW, imgH := o.imageSize()
	sz := o.Size()
	x, y := uihelpers.ImageToView(float32(px), float32(py), imgW, imgH, sz.Width, sz.Height)
	return fyne.NewPos(x, y)
}

// hitTest finds the record under an image-space point, if any.
func (o *markOverlay) hitTest(px, py float64) (string, bool) {
	st := o.state
	if len(st.records) == 0 {
		return "", false
	}
	imgW, imgH := o.imageSize()
	if o.kind == viewScatter {
		box := scatterPlotBox(int(imgW), int(imgH))
		marks := scatterMarks(st.records, st.attackDomain, st.defenseDomain, box, st.manager.Zoom())
		if i, ok := nearestMark(marks, px, py, hitRadiusPx); ok {
			return marks[i].ID, true
		}
		return "", false
	}
	box := parallelPlotBox(int(imgW), int(imgH))
	lines := parallelPolylines(st.records, st.statDomains, box)
	if i, ok := nearestPolyline(lines, px, py, hitRadiusPx); ok {
		return lines[i].ID, true
	}
	return "", false
}

func (o *markOverlay) updateHover(p fyne.Position) {
	px, py, ok := o.viewToImage(p)
	id := ""
	if ok {
		if hit, found := o.hitTest(px, py); found {
			id = hit
		}
	}
	if id == o.hoveredID {
		return
	}
	if o.hoveredID != "" {
		o.state.manager.Unhighlight(o.hoveredID)
	}
	o.hoveredID = id
	if id != "" {
		o.state.manager.Highlight(id)
	}
}

func (o *markOverlay) clearHover() {
	if o.hoveredID != "" {
		o.state.manager.Unhighlight(o.hoveredID)
		o.hoveredID = ""
	}
}

// applyBrush recomputes the filter set from the current brush rectangle:
// exactly the records whose scaled scatter position falls inside it,
// boundaries inclusive.
func (o *markOverlay) applyBrush() {
	st := o.state
	ax, ay := o.viewToImageClamped(o.brushA)
	bx, by := o.viewToImageClamped(o.brushB)
	imgW, imgH := o.imageSize()
	box := scatterPlotBox(int(imgW), int(imgH))
	marks := scatterMarks(st.records, st.attackDomain, st.defenseDomain, box, st.manager.Zoom())
	ids := marksInRect(marks, ax, ay, bx, by)
	st.manager.SetFilter(ids, true)
}

// clearBrush drops the brush region and the filter with it.
func (o *markOverlay) clearBrush() {
	o.hasBrush = false
	o.brushing = false
	o.state.manager.SetFilter(nil, false)
}

// Tapped toggles selection for the mark under the pointer. The tap ends at
// this overlay; no ancestor sees it. A tap on empty scatter space clears an
// active brush instead.
func (o *markOverlay) Tapped(ev *fyne.PointEvent) {
	px, py, ok := o.viewToImage(ev.Position)
	if ok {
		if id, found := o.hitTest(px, py); found {
			o.state.manager.ToggleSelection(id)
			o.flashSelection(ev.Position)
			return
		}
	}
	if o.kind == viewScatter && o.state.manager.FilterActive() {
		o.clearBrush()
		o.Refresh()
	}
}

// flashSelection runs a short pulse animation at the toggle position. Fire
// and forget: it never gates further interaction.
func (o *markOverlay) flashSelection(p fyne.Position) {
	o.flashPos = p
	start := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xc0}
	end := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x00}
	anim := canvas.NewColorRGBAAnimation(start, end, canvas.DurationShort, func(c color.Color) {
		o.flashColor = c
		o.Refresh()
	})
	anim.Start()
}

// Dragged grows the brush rectangle on the scatter view and recomputes the
// filter on every change of the region.
func (o *markOverlay) Dragged(ev *fyne.DragEvent) {
	if o.kind != viewScatter || o.panning {
		return
	}
	if !o.brushing {
		o.brushing = true
		o.hasBrush = true
		o.brushA = fyne.NewPos(ev.Position.X-ev.Dragged.DX, ev.Position.Y-ev.Dragged.DY)
	}
	o.brushB = ev.Position
	o.applyBrush()
	o.Refresh()
}

func (o *markOverlay) DragEnd() {
	// The region stays active after release; only an empty tap or
	// Clear Selection removes it.
	o.brushing = false
}

// Scrolled zooms the scatter view, anchored at the cursor, factor clamped by
// the transform itself.
func (o *markOverlay) Scrolled(ev *fyne.ScrollEvent) {
	if o.kind != viewScatter {
		return
	}
	px, py, ok := o.viewToImage(ev.Position)
	if !ok {
		return
	}
	factor := math.Pow(2, float64(ev.Scrolled.DY)/240.0)
	if factor == 1 {
		return
	}
	m := o.state.manager
	m.SetZoom(m.Zoom().ScaleAt(factor, px, py))
}

// Secondary-button drag pans the zoomed scatter view.
func (o *markOverlay) MouseDown(ev *desktop.MouseEvent) {
	if o.kind == viewScatter && ev.Button == desktop.MouseButtonSecondary {
		o.panning = true
		o.panLast = ev.Position
	}
}

func (o *markOverlay) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button == desktop.MouseButtonSecondary {
		o.panning = false
	}
}

func (o *markOverlay) MouseIn(ev *desktop.MouseEvent) {
	o.hovering = true
	o.mouse = ev.Position
	o.Refresh()
}

func (o *markOverlay) MouseMoved(ev *desktop.MouseEvent) {
	o.mouse = ev.Position
	o.hovering = true
	if o.panning && o.kind == viewScatter {
		imgW, imgH := o.imageSize()
		sz := o.Size()
		_, _, _, _, scale := uihelpers.ContainRect(imgW, imgH, sz.Width, sz.Height)
		if scale > 0 {
			dx := float64((ev.Position.X - o.panLast.X) / scale)
			dy := float64((ev.Position.Y - o.panLast.Y) / scale)
			m := o.state.manager
			m.SetZoom(m.Zoom().TranslateBy(dx, dy))
		}
		o.panLast = ev.Position
		o.Refresh()
		return
	}
	o.updateHover(ev.Position)
	o.Refresh()
}

func (o *markOverlay) MouseOut() {
	o.hovering = false
	o.panning = false
	o.clearHover()
	o.Refresh()
}

// tooltipText builds the hover readout for a record.
func tooltipText(rec *dataset.Record) string {
	return fmt.Sprintf("%s\nType: %s\nAttack: %s  Defense: %s",
		rec.Name,
		rec.PrimaryType,
		formatStat(rec.Stat(dataset.StatAttack)),
		formatStat(rec.Stat(dataset.StatDefense)))
}

// formatStat keeps NaN visible rather than papering over bad input cells.
func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.0f", v)
}

func (o *markOverlay) CreateRenderer() fyne.WidgetRenderer {
	// Transparent background ensures the full hit-area receives hover events.
	bg := canvas.NewRectangle(color.RGBA{})
	brush := canvas.NewRectangle(color.NRGBA{R: 0x88, G: 0xbb, B: 0xee, A: 0x30})
	brush.StrokeColor = color.NRGBA{R: 0x88, G: 0xbb, B: 0xee, A: 0xb0}
	brush.StrokeWidth = 1
	ring := canvas.NewCircle(color.Transparent)
	ring.StrokeColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xdd}
	ring.StrokeWidth = 2
	flash := canvas.NewCircle(color.Transparent)
	flash.StrokeWidth = 3
	label := widget.NewRichText()
	label.Wrapping = fyne.TextWrapOff
	labelBG := canvas.NewRectangle(color.NRGBA{R: 0, G: 0, B: 0, A: 170})
	objs := []fyne.CanvasObject{bg, brush, ring, flash, labelBG, label}
	return &markOverlayRenderer{o: o, bg: bg, brush: brush, ring: ring, flash: flash, labelBG: labelBG, label: label, objs: objs}
}

type markOverlayRenderer struct {
	o       *markOverlay
	bg      *canvas.Rectangle
	brush   *canvas.Rectangle
	ring    *canvas.Circle
	flash   *canvas.Circle
	labelBG *canvas.Rectangle
	label   *widget.RichText
	objs    []fyne.CanvasObject
}

func (r *markOverlayRenderer) Destroy() {}

func offscreen(obj fyne.CanvasObject) {
	obj.Resize(fyne.NewSize(0, 0))
	obj.Move(fyne.NewPos(-1000, -1000))
}

func (r *markOverlayRenderer) Layout(size fyne.Size) {
	o := r.o
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))

	// Brush rectangle
	if o.kind == viewScatter && o.hasBrush && o.state.manager.FilterActive() {
		x0, y0 := o.brushA.X, o.brushA.Y
		x1, y1 := o.brushB.X, o.brushB.Y
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		if y1 < y0 {
			y0, y1 = y1, y0
		}
		r.brush.Move(fyne.NewPos(x0, y0))
		r.brush.Resize(fyne.NewSize(x1-x0, y1-y0))
	} else {
		offscreen(r.brush)
	}

	// Hover ring on the scatter mark under the pointer
	ringDone := false
	if o.kind == viewScatter && o.hoveredID != "" {
		if pos, ok := o.state.scatterMarkViewPos(o, o.hoveredID); ok {
			d := float32(o.state.pointSize*2 + 8)
			r.ring.Resize(fyne.NewSize(d, d))
			r.ring.Move(fyne.NewPos(pos.X-d/2, pos.Y-d/2))
			ringDone = true
		}
	}
	if !ringDone {
		offscreen(r.ring)
	}

	// Selection flash pulse
	if _, _, _, a := r.o.flashColor.RGBA(); a > 0 {
		r.flash.StrokeColor = r.o.flashColor
		d := float32(26)
		r.flash.Resize(fyne.NewSize(d, d))
		r.flash.Move(fyne.NewPos(o.flashPos.X-d/2, o.flashPos.Y-d/2))
	} else {
		offscreen(r.flash)
	}

	// Tooltip
	if o.hovering && o.hoveredID != "" {
		if rec, ok := o.state.recordByID[o.hoveredID]; ok {
			r.label.Segments = []widget.RichTextSegment{&widget.TextSegment{Text: tooltipText(rec)}}
			r.label.Refresh()
			pad := float32(6)
			ts := r.label.MinSize()
			bw := ts.Width + 2*pad
			bh := ts.Height + 2*pad
			tx, ty := uihelpers.ClampTooltip(o.mouse.X, o.mouse.Y, bw, bh, size.Width, size.Height)
			r.labelBG.Resize(fyne.NewSize(bw, bh))
			r.labelBG.Move(fyne.NewPos(tx, ty))
			r.label.Move(fyne.NewPos(tx+pad, ty+pad))
			return
		}
	}
	r.label.Segments = nil
	r.label.Refresh()
	offscreen(r.labelBG)
	r.label.Move(fyne.NewPos(-1000, -1000))
}

func (r *markOverlayRenderer) MinSize() fyne.Size           { return fyne.NewSize(10, 10) }
func (r *markOverlayRenderer) Objects() []fyne.CanvasObject { return r.objs }

func (r *markOverlayRenderer) Refresh() {
	r.Layout(r.o.Size())
	r.ring.StrokeColor = theme.Color(theme.ColorNameForeground)
	r.bg.Refresh()
	r.brush.Refresh()
	r.ring.Refresh()
	r.flash.Refresh()
	r.labelBG.Refresh()
	r.label.Refresh()
}

// Interface assertions: the overlay is the single entry point for pointer
// interaction on a chart.
var (
	_ desktop.Hoverable = (*markOverlay)(nil)
	_ desktop.Mouseable = (*markOverlay)(nil)
	_ fyne.Tappable     = (*markOverlay)(nil)
	_ fyne.Draggable    = (*markOverlay)(nil)
	_ fyne.Scrollable   = (*markOverlay)(nil)
)
