package main

import (
	"math"

	"github.com/slothcoder21/ecs163-25s/src/dataset"
	"github.com/slothcoder21/ecs163-25s/src/scale"
)

// Chart paddings in image pixel space, shared between rendering and overlay
// hit-testing so both sides agree on where the plot area sits.
const (
	scatterPadTop    = 14
	scatterPadLeft   = 16
	scatterPadRight  = 12
	scatterPadBottom = 28

	// Space go-chart's visible axes consume inside the padded box. Calibration
	// constants; hit-testing tolerances absorb the residual error.
	axisLeftGutterPx   = 36
	axisBottomGutterPx = 22

	parallelPadTop    = 34
	parallelPadLeft   = 30
	parallelPadRight  = 30
	parallelPadBottom = 22
)

// hitRadiusPx is the pointer pick-up distance for marks and polylines,
// in image pixel space.
const hitRadiusPx = 9

type plotBox struct {
	Left, Top, Right, Bottom float64
}

func (b plotBox) W() float64 { return b.Right - b.Left }
func (b plotBox) H() float64 { return b.Bottom - b.Top }

func (b plotBox) contains(x, y float64) bool {
	return x >= b.Left && x <= b.Right && y >= b.Top && y <= b.Bottom
}

func scatterPlotBox(w, h int) plotBox {
	return plotBox{
		Left:   scatterPadLeft + axisLeftGutterPx,
		Top:    scatterPadTop,
		Right:  float64(w) - scatterPadRight,
		Bottom: float64(h) - scatterPadBottom - axisBottomGutterPx,
	}
}

func parallelPlotBox(w, h int) plotBox {
	return plotBox{
		Left:   parallelPadLeft,
		Top:    parallelPadTop,
		Right:  float64(w) - parallelPadRight,
		Bottom: float64(h) - parallelPadBottom,
	}
}

// markPoint is one drawable mark position in image pixel space.
type markPoint struct {
	ID   string
	Rec  *dataset.Record
	X, Y float64
}

// scatterScales composes the niced attack/defense domains with the plot box
// and the current zoom transform. The returned scales map domain values
// straight to on-screen image pixels.
func scatterScales(xd, yd scale.Linear, box plotBox, zoom scale.Transform) (sx, sy scale.Linear) {
	sx = xd
	sx.R0, sx.R1 = box.Left, box.Right
	sx = zoom.RescaleX(sx)
	sy = yd
	sy.R0, sy.R1 = box.Bottom, box.Top // pixel y grows downward
	sy = zoom.RescaleY(sy)
	return sx, sy
}

// scatterMarks computes the on-screen position of every record whose attack
// and defense land inside the plot box. Records with NaN coordinates have no
// finite position and are left out, as are marks zoomed off the visible area.
func scatterMarks(records []dataset.Record, xd, yd scale.Linear, box plotBox, zoom scale.Transform) []markPoint {
	sx, sy := scatterScales(xd, yd, box, zoom)
	out := make([]markPoint, 0, len(records))
	for i := range records {
		r := &records[i]
		x := sx.Apply(r.Stat(dataset.StatAttack))
		y := sy.Apply(r.Stat(dataset.StatDefense))
		if math.IsNaN(x) || math.IsNaN(y) {
			continue
		}
		if !box.contains(x, y) {
			continue
		}
		out = append(out, markPoint{ID: r.ID, Rec: r, X: x, Y: y})
	}
	return out
}

// polyline is one record's parallel-coordinates line in image pixel space.
type polyline struct {
	ID  string
	Rec *dataset.Record
	Xs  [dataset.NumStats]float64
	Ys  [dataset.NumStats]float64
	// OK marks vertices with a finite position; NaN stats break the line.
	OK [dataset.NumStats]bool
}

// parallelAxes returns the point scale positioning the six dimension axes
// across the plot box.
func parallelAxes(box plotBox) scale.Point {
	return scale.NewPoint(dataset.DimensionNames[:], box.Left, box.Right)
}

// parallelPolylines computes every record's vertex positions, one vertex per
// stat dimension in the fixed declared order.
func parallelPolylines(records []dataset.Record, domains [dataset.NumStats]scale.Linear, box plotBox) []polyline {
	axes := parallelAxes(box)
	out := make([]polyline, 0, len(records))
	for i := range records {
		r := &records[i]
		var pl polyline
		pl.ID = r.ID
		pl.Rec = r
		for d := 0; d < dataset.NumStats; d++ {
			sd := domains[d]
			sd.R0, sd.R1 = box.Bottom, box.Top
			y := sd.Apply(r.Stat(d))
			pl.Xs[d] = axes.At(d)
			pl.Ys[d] = y
			pl.OK[d] = !math.IsNaN(y)
		}
		out = append(out, pl)
	}
	return out
}

// nearestMark finds the mark closest to (x, y) within maxDist. Ties go to the
// earlier mark, keeping the pick deterministic.
func nearestMark(marks []markPoint, x, y, maxDist float64) (int, bool) {
	best := -1
	bestD := maxDist
	for i := range marks {
		dx := marks[i].X - x
		dy := marks[i].Y - y
		d := math.Hypot(dx, dy)
		if d < bestD {
			bestD = d
			best = i
		}
	}
	return best, best >= 0
}

// marksInRect returns the ids of marks inside the rectangle spanned by two
// corner points, boundaries inclusive.
func marksInRect(marks []markPoint, x0, y0, x1, y1 float64) []string {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	ids := make([]string, 0, len(marks))
	for i := range marks {
		m := &marks[i]
		if m.X >= x0 && m.X <= x1 && m.Y >= y0 && m.Y <= y1 {
			ids = append(ids, m.ID)
		}
	}
	return ids
}

// pointSegmentDist is the distance from p to the segment a-b.
func pointSegmentDist(px, py, ax, ay, bx, by float64) float64 {
	dx := bx - ax
	dy := by - ay
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(px-ax, py-ay)
	}
	t := ((px-ax)*dx + (py-ay)*dy) / l2
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return math.Hypot(px-(ax+t*dx), py-(ay+t*dy))
}

// nearestPolyline finds the line whose nearest segment is closest to (x, y)
// within maxDist. Segments touching a NaN vertex are skipped.
func nearestPolyline(lines []polyline, x, y, maxDist float64) (int, bool) {
	best := -1
	bestD := maxDist
	for i := range lines {
		pl := &lines[i]
		for d := 0; d+1 < dataset.NumStats; d++ {
			if !pl.OK[d] || !pl.OK[d+1] {
				continue
			}
			dist := pointSegmentDist(x, y, pl.Xs[d], pl.Ys[d], pl.Xs[d+1], pl.Ys[d+1])
			if dist < bestD {
				bestD = dist
				best = i
			}
		}
	}
	return best, best >= 0
}
