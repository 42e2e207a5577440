package main

import (
	"bytes"
	"image"
	"image/color"
	png "image/png"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/slothcoder21/ecs163-25s/src/scale"
)

// axisTicks converts scale ticks over [min,max] into go-chart ticks.
func axisTicks(min, max float64, n int) []chart.Tick {
	ts := scale.Linear{D0: min, D1: max}.Ticks(n)
	out := make([]chart.Tick, 0, len(ts))
	for _, t := range ts {
		out = append(out, chart.Tick{Value: t.Value, Label: t.Label})
	}
	return out
}

// blank returns a dark placeholder image used whenever a chart cannot render.
func blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 18, G: 18, B: 18, A: 255})
		}
	}
	return img
}

// renderToImage renders a chart to PNG and decodes it back for the canvas.
func renderToImage(ch chart.Chart) (image.Image, error) {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}
