package main

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/slothcoder21/ecs163-25s/src/dataset"
	"github.com/slothcoder21/ecs163-25s/src/scale"
)

var (
	axisLineColor  = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	axisLabelColor = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	axisTickColor  = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	labelShadow    = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// annotateParallelAxes draws one vertical axis per stat dimension with its
// label above and min/max tick labels, straight onto the rendered chart
// image. Axis pixel positions come from the same point scale the overlay
// hit-testing uses.
func annotateParallelAxes(img image.Image, box plotBox, domains [dataset.NumStats]scale.Linear) image.Image {
	if img == nil {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)

	axes := parallelAxes(box)
	for d := 0; d < dataset.NumStats; d++ {
		x := int(axes.At(d))
		drawVLine(rgba, x, int(box.Top), int(box.Bottom), axisLineColor)
		drawLabelCentered(rgba, dataset.DimensionNames[d], x, int(box.Top)-6, axisLabelColor)
		// Domain bounds as min/max ticks beside the axis
		drawLabelLeft(rgba, scale.FormatTick(domains[d].D1), x+3, int(box.Top)+10, axisTickColor)
		drawLabelLeft(rgba, scale.FormatTick(domains[d].D0), x+3, int(box.Bottom)-2, axisTickColor)
	}
	return rgba
}

func drawVLine(rgba *image.RGBA, x, y0, y1 int, col color.RGBA) {
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		rgba.SetRGBA(x, y, col)
	}
}

// drawLabelCentered renders small text centered on x with a one-pixel shadow
// for contrast against chart lines.
func drawLabelCentered(rgba *image.RGBA, text string, x, baseline int, col color.RGBA) {
	face := basicfont.Face7x13
	dr := &font.Drawer{Dst: rgba, Src: image.NewUniform(col), Face: face}
	tw := dr.MeasureString(text).Ceil()
	drawLabelAt(rgba, text, x-tw/2, baseline, col)
}

// drawLabelLeft renders small text with its left edge at x.
func drawLabelLeft(rgba *image.RGBA, text string, x, baseline int, col color.RGBA) {
	drawLabelAt(rgba, text, x, baseline, col)
}

func drawLabelAt(rgba *image.RGBA, text string, x, baseline int, col color.RGBA) {
	face := basicfont.Face7x13
	shadow := &font.Drawer{
		Dst:  rgba,
		Src:  image.NewUniform(labelShadow),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x + 1), Y: fixed.I(baseline + 1)},
	}
	shadow.DrawString(text)
	dr := &font.Drawer{
		Dst:  rgba,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(baseline)},
	}
	dr.DrawString(text)
}
