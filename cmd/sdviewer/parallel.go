package main

import (
	"fmt"
	"image"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/slothcoder21/ecs163-25s/src/dataset"
)

// defaultLineAlpha keeps unselected polylines translucent so 600+ overlapping
// lines stay readable.
const defaultLineAlpha = 0.35

var lineHalo = drawing.Color{R: 0x20, G: 0x20, B: 0x20, A: 0xff}

// renderParallelChart draws one polyline per record across the six stat axes,
// each axis independently scaled to its own niced domain. go-chart renders
// the lines in a unit coordinate system (axis index × normalized stat) with
// its own axes hidden; the dimension axes and labels are drawn onto the image
// afterwards so their pixel positions match the overlay's hit geometry.
func renderParallelChart(state *uiState, w, h int) image.Image {
	if len(state.records) == 0 {
		return blank(w, h)
	}
	box := parallelPlotBox(w, h)

	type layer int
	const (
		layerDimmed layer = iota
		layerBase
		layerSelected
		layerHovered
	)
	var layers [4][]chart.Series

	for ri := range state.records {
		rec := &state.records[ri]
		st := state.manager.StyleFor(rec.ID)

		// Normalized vertex per dimension; NaN stats break the line into runs.
		var runXs [][]float64
		var runYs [][]float64
		var curX, curY []float64
		for d := 0; d < dataset.NumStats; d++ {
			nd := state.statDomains[d]
			nd.R0, nd.R1 = 0, 1
			v := nd.Apply(rec.Stat(d))
			if v != v { // NaN
				if len(curX) >= 2 {
					runXs = append(runXs, curX)
					runYs = append(runYs, curY)
				}
				curX, curY = nil, nil
				continue
			}
			curX = append(curX, float64(d))
			curY = append(curY, v)
		}
		if len(curX) >= 2 {
			runXs = append(runXs, curX)
			runYs = append(runYs, curY)
		}
		if len(runXs) == 0 {
			continue
		}

		col := state.palette.Color(rec.PrimaryType)
		width := 1.0
		lay := layerBase
		switch {
		case st.Hovered:
			lay = layerHovered
			width = 3
		case st.Selected:
			lay = layerSelected
			width = 2.5
		default:
			a := defaultLineAlpha * st.Opacity
			col = col.WithAlpha(uint8(a * 255))
			if st.Opacity < 1 {
				lay = layerDimmed
			}
		}
		for i := range runXs {
			if lay == layerSelected || lay == layerHovered {
				layers[lay] = append(layers[lay], chart.ContinuousSeries{
					XValues: runXs[i],
					YValues: runYs[i],
					Style:   chart.Style{StrokeWidth: width + 1.5, StrokeColor: lineHalo},
				})
			}
			layers[lay] = append(layers[lay], chart.ContinuousSeries{
				XValues: runXs[i],
				YValues: runYs[i],
				Style:   chart.Style{StrokeWidth: width, StrokeColor: col},
			})
		}
	}

	var series []chart.Series
	for _, l := range layers {
		series = append(series, l...)
	}
	if len(series) == 0 {
		return blank(w, h)
	}

	ch := chart.Chart{
		Title:      "Stat Profiles",
		Background: chart.Style{Padding: chart.Box{Top: parallelPadTop, Left: parallelPadLeft, Right: parallelPadRight, Bottom: parallelPadBottom}},
		Width:      w,
		Height:     h,
		XAxis: chart.XAxis{
			Style: chart.Hidden(),
			Range: &chart.ContinuousRange{Min: 0, Max: float64(dataset.NumStats - 1)},
		},
		YAxis: chart.YAxis{
			Style: chart.Hidden(),
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		Series: series,
	}
	img, err := renderToImage(ch)
	if err != nil {
		fmt.Printf("[viewer] parallel render error: %v; showing blank fallback\n", err)
		return blank(w, h)
	}
	return annotateParallelAxes(img, box, state.statDomains)
}
