package uihelpers

import (
	"math"
	"testing"
)

func TestViewRects_FixedPartitionFractions(t *testing.T) {
	sc, dn, pc := ViewRects(1280, 800)
	if sc.W != 512 || sc.H != 400 {
		t.Fatalf("scatter rect: %+v", sc)
	}
	if dn.W != 512 || dn.H != 400 {
		t.Fatalf("donut rect: %+v", dn)
	}
	if pc.W != 768 || pc.H != 800 {
		t.Fatalf("parallel rect: %+v", pc)
	}
	// Partitions tile the canvas
	if sc.W+pc.W != 1280 || sc.H+dn.H != 800 {
		t.Fatalf("partitions do not tile the canvas")
	}
}

func TestViewRects_ClampsUndersizedCanvas(t *testing.T) {
	sc, _, _ := ViewRects(200, 100)
	scBase, _, _ := ViewRects(BaseCanvasWidth, BaseCanvasHeight)
	if sc != scBase {
		t.Fatalf("undersized canvas should clamp to base: %+v vs %+v", sc, scBase)
	}
}

func TestContainRect_LetterboxesAndCenters(t *testing.T) {
	// Wide view, 2:1 image: height-limited
	dx, dy, dw, dh, s := ContainRect(800, 400, 1200, 400)
	if s != 1.0 {
		t.Fatalf("scale: got %v", s)
	}
	if dh != 400 || dw != 800 {
		t.Fatalf("drawn size: %vx%v", dw, dh)
	}
	if dx != 200 || dy != 0 {
		t.Fatalf("not centered: (%v,%v)", dx, dy)
	}
}

func TestViewToImage_RoundTripInsideImage(t *testing.T) {
	imgW, imgH := float32(800), float32(400)
	viewW, viewH := float32(1000), float32(600)
	for _, p := range [][2]float32{{400, 200}, {123, 77}, {799, 399}} {
		vx, vy := ImageToView(p[0], p[1], imgW, imgH, viewW, viewH)
		px, py, ok := ViewToImage(vx, vy, imgW, imgH, viewW, viewH)
		if !ok {
			t.Fatalf("roundtrip point fell outside image: %v", p)
		}
		if math.Abs(float64(px-p[0])) > 0.01 || math.Abs(float64(py-p[1])) > 0.01 {
			t.Fatalf("roundtrip drift: got (%v,%v) want %v", px, py, p)
		}
	}
}

func TestViewToImage_OutsideDrawnRect(t *testing.T) {
	// Contain-fit of an 800x400 image in 1000x600 leaves vertical letterboxes
	if _, _, ok := ViewToImage(2, 2, 800, 400, 1000, 600); ok {
		t.Fatalf("letterbox area should not map into the image")
	}
}

func TestClampTooltip_StaysInsideView(t *testing.T) {
	cases := [][2]float32{{0, 0}, {990, 590}, {500, 300}, {-20, -20}}
	for _, c := range cases {
		tx, ty := ClampTooltip(c[0], c[1], 160, 60, 1000, 600)
		if tx < 0 || ty < 0 || tx+160 > 1000 || ty+60 > 600 {
			t.Fatalf("tooltip escaped view for anchor %v: (%v,%v)", c, tx, ty)
		}
	}
}
