// Package uihelpers holds the pure geometry used by the viewer: the fixed
// dashboard partitioning, contain-fit image mapping for the interaction
// overlays, and small clamping helpers. Kept free of Fyne types so it stays
// trivially testable.
package uihelpers

// Base dashboard canvas. The layout splits are fixed fractions of whatever
// size the window currently provides; these are the defaults.
const (
	BaseCanvasWidth  = 1280
	BaseCanvasHeight = 800

	// Left partition (scatter above donut) takes 40% of the width, the
	// parallel-coordinates partition the remaining 60%. The left column is
	// split 50/50 vertically.
	LeftPartitionFrac = 0.40
	TopPartitionFrac  = 0.50
)

// Rect is a plain pixel rectangle.
type Rect struct {
	W, H int
}

// ViewRects partitions a canvas into the three chart areas: scatter (top
// left), donut (bottom left) and parallel coordinates (right). Undersized
// canvases are clamped to the base size so charts stay readable.
func ViewRects(canvasW, canvasH int) (scatter, donut, parallel Rect) {
	if canvasW < BaseCanvasWidth {
		canvasW = BaseCanvasWidth
	}
	if canvasH < BaseCanvasHeight {
		canvasH = BaseCanvasHeight
	}
	leftW := int(float64(canvasW) * LeftPartitionFrac)
	topH := int(float64(canvasH) * TopPartitionFrac)
	scatter = Rect{W: leftW, H: topH}
	donut = Rect{W: leftW, H: canvasH - topH}
	parallel = Rect{W: canvasW - leftW, H: canvasH}
	return scatter, donut, parallel
}

// ContainRect computes where an imgW×imgH image lands inside a viewW×viewH
// area under contain-fit scaling (the canvas.ImageFillContain rule): offset of
// the drawn rectangle, its size, and the uniform scale factor.
func ContainRect(imgW, imgH, viewW, viewH float32) (drawX, drawY, drawW, drawH, scale float32) {
	if imgW <= 0 || imgH <= 0 || viewW <= 0 || viewH <= 0 {
		return 0, 0, viewW, viewH, 1
	}
	sx := viewW / imgW
	sy := viewH / imgH
	scale = sx
	if sy < sx {
		scale = sy
	}
	drawW = imgW * scale
	drawH = imgH * scale
	drawX = (viewW - drawW) / 2
	drawY = (viewH - drawH) / 2
	return drawX, drawY, drawW, drawH, scale
}

// ViewToImage maps a view-space point into image pixel space given the
// contain-fit placement. The second return is false when the point lies
// outside the drawn image rectangle.
func ViewToImage(x, y, imgW, imgH, viewW, viewH float32) (float32, float32, bool) {
	drawX, drawY, drawW, drawH, scale := ContainRect(imgW, imgH, viewW, viewH)
	if scale <= 0 {
		return 0, 0, false
	}
	if x < drawX || x > drawX+drawW || y < drawY || y > drawY+drawH {
		return 0, 0, false
	}
	return (x - drawX) / scale, (y - drawY) / scale, true
}

// ImageToView is the inverse of ViewToImage for points inside the image.
func ImageToView(px, py, imgW, imgH, viewW, viewH float32) (float32, float32) {
	drawX, drawY, _, _, scale := ContainRect(imgW, imgH, viewW, viewH)
	return drawX + px*scale, drawY + py*scale
}

// ClampTooltip keeps a tooltip box of size bw×bh anchored near (x, y) inside
// a viewW×viewH area. The preferred anchor is offset to the lower right of
// the pointer.
func ClampTooltip(x, y, bw, bh, viewW, viewH float32) (float32, float32) {
	tx := x + 8
	ty := y + 8
	if tx+bw > viewW {
		tx = viewW - bw
	}
	if ty+bh > viewH {
		ty = viewH - bh
	}
	if tx < 0 {
		tx = 0
	}
	if ty < 0 {
		ty = 0
	}
	return tx, ty
}
