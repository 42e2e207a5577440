package main

import (
	"fmt"
	"image"
	"sort"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/slothcoder21/ecs163-25s/src/dataset"
	"github.com/slothcoder21/ecs163-25s/src/vizstate"
)

// dotStyle renders points only, no connecting line.
func dotStyle(col drawing.Color, width float64) chart.Style {
	return chart.Style{
		StrokeWidth: 0,
		DotWidth:    width,
		DotColor:    col,
	}
}

var selectionHalo = drawing.Color{R: 0x20, G: 0x20, B: 0x20, A: 0xff}

// renderScatterChart draws one dot per record at (attack, defense), colored by
// primary type, with the current zoom transform composed into both axes.
// Style layering is rebuilt from interaction state on every call, so applying
// the same state twice produces the same image.
func renderScatterChart(state *uiState, w, h int) image.Image {
	if len(state.records) == 0 {
		return blank(w, h)
	}
	box := scatterPlotBox(w, h)
	sx, sy := scatterScales(state.attackDomain, state.defenseDomain, box, state.manager.Zoom())
	marks := scatterMarks(state.records, state.attackDomain, state.defenseDomain, box, state.manager.Zoom())
	if len(marks) == 0 {
		return blank(w, h)
	}

	// Visible domain window under the current zoom, for axes and ranges.
	visXMin, visXMax := sx.Invert(box.Left), sx.Invert(box.Right)
	visYMin, visYMax := sy.Invert(box.Bottom), sy.Invert(box.Top)

	// Bucket marks by derived style so each bucket becomes one series. Draw
	// order: dimmed, default, selected, hovered; later layers sit on top.
	type bucket struct {
		xs, ys []float64
	}
	dimmed := map[string]*bucket{}
	base := map[string]*bucket{}
	var selected, hovered []*dataset.Record
	addTo := func(m map[string]*bucket, ty string, x, y float64) {
		b := m[ty]
		if b == nil {
			b = &bucket{}
			m[ty] = b
		}
		b.xs = append(b.xs, x)
		b.ys = append(b.ys, y)
	}
	for i := range marks {
		m := &marks[i]
		st := state.manager.StyleFor(m.ID)
		switch {
		case st.Hovered:
			hovered = append(hovered, m.Rec)
		case st.Selected:
			selected = append(selected, m.Rec)
		case st.Opacity < 1:
			addTo(dimmed, m.Rec.PrimaryType, m.Rec.Stat(dataset.StatAttack), m.Rec.Stat(dataset.StatDefense))
		default:
			addTo(base, m.Rec.PrimaryType, m.Rec.Stat(dataset.StatAttack), m.Rec.Stat(dataset.StatDefense))
		}
	}

	dimAlpha := float64(vizstate.DimmedOpacity) * 255
	dim := uint8(dimAlpha)
	ps := state.pointSize
	var series []chart.Series
	appendTyped := func(m map[string]*bucket, alpha uint8) {
		types := make([]string, 0, len(m))
		for t := range m {
			types = append(types, t)
		}
		sort.Strings(types)
		for _, t := range types {
			b := m[t]
			col := state.palette.Color(t).WithAlpha(alpha)
			series = append(series, chart.ContinuousSeries{
				Name:    t,
				XValues: b.xs,
				YValues: b.ys,
				Style:   dotStyle(col, ps),
			})
		}
	}
	appendTyped(dimmed, dim)
	appendTyped(base, 255)
	emphasize := func(recs []*dataset.Record, extra float64) {
		// Emphasized marks are few; a halo dot under a colored dot gives the
		// distinct selection/hover stroke.
		for _, rec := range recs {
			ax := rec.Stat(dataset.StatAttack)
			def := rec.Stat(dataset.StatDefense)
			series = append(series,
				chart.ContinuousSeries{
					XValues: []float64{ax},
					YValues: []float64{def},
					Style:   dotStyle(selectionHalo, ps+extra+3),
				},
				chart.ContinuousSeries{
					XValues: []float64{ax},
					YValues: []float64{def},
					Style:   dotStyle(state.palette.Color(rec.PrimaryType), ps+extra),
				})
		}
	}
	emphasize(selected, 2)
	emphasize(hovered, 3)

	xTicks := axisTicks(visXMin, visXMax, 6)
	yTicks := axisTicks(visYMin, visYMax, 5)

	ch := chart.Chart{
		Title:      "Attack vs Defense",
		Background: chart.Style{Padding: chart.Box{Top: scatterPadTop, Left: scatterPadLeft, Right: scatterPadRight, Bottom: scatterPadBottom}},
		Width:      w,
		Height:     h,
		XAxis: chart.XAxis{
			Name:  "Attack",
			Range: &chart.ContinuousRange{Min: visXMin, Max: visXMax},
			Ticks: xTicks,
		},
		YAxis: chart.YAxis{
			Name:  "Defense",
			Range: &chart.ContinuousRange{Min: visYMin, Max: visYMax},
			Ticks: yTicks,
		},
		Series: series,
	}
	img, err := renderToImage(ch)
	if err != nil {
		fmt.Printf("[viewer] scatter render error: %v; showing blank fallback\n", err)
		return blank(w, h)
	}
	return img
}
