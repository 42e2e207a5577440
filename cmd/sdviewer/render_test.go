package main

import (
	"bytes"
	"image"
	"image/png"
	"math"
	"testing"

	"github.com/slothcoder21/ecs163-25s/src/dataset"
	"github.com/slothcoder21/ecs163-25s/src/scale"
	"github.com/slothcoder21/ecs163-25s/src/vizstate"
)

func newTestState(t *testing.T) *uiState {
	t.Helper()
	recs := []dataset.Record{
		testRecord("Bulbasaur", "Grass", [dataset.NumStats]float64{45, 49, 49, 65, 65, 45}),
		testRecord("Charmander", "Fire", [dataset.NumStats]float64{39, 52, 43, 60, 50, 65}),
		testRecord("Squirtle", "Water", [dataset.NumStats]float64{44, 48, 65, 50, 64, 43}),
		testRecord("Mewtwo", "Psychic", [dataset.NumStats]float64{106, 110, 90, 154, 90, 130}),
	}
	recs[3].Legendary = true
	st := &uiState{
		records:   recs,
		manager:   vizstate.New(),
		palette:   dataset.BuildPalette(recs),
		pointSize: 4,
	}
	st.recordByID = make(map[string]*dataset.Record, len(recs))
	for i := range st.records {
		st.recordByID[st.records[i].ID] = &st.records[i]
	}
	for d := 0; d < dataset.NumStats; d++ {
		st.statDomains[d] = scale.NewLinear(dataset.Values(recs, d), 0, 1)
	}
	st.attackDomain = st.statDomains[dataset.StatAttack]
	st.defenseDomain = st.statDomains[dataset.StatDefense]
	return st
}

func pngBytes(t *testing.T, st *uiState, kind viewKind, w, h int) []byte {
	t.Helper()
	var img image.Image
	if kind == viewParallel {
		img = renderParallelChart(st, w, h)
	} else {
		img = renderScatterChart(st, w, h)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestRenderScatterSizeAndFallback(t *testing.T) {
	st := newTestState(t)
	img := renderScatterChart(st, 400, 300)
	b := img.Bounds()
	if b.Dx() != 400 || b.Dy() != 300 {
		t.Fatalf("scatter image %dx%d, want 400x300", b.Dx(), b.Dy())
	}
	// Empty data falls back to the blank placeholder at the requested size.
	empty := &uiState{manager: vizstate.New(), pointSize: 4}
	img = renderScatterChart(empty, 200, 100)
	b = img.Bounds()
	if b.Dx() != 200 || b.Dy() != 100 {
		t.Fatalf("blank fallback %dx%d, want 200x100", b.Dx(), b.Dy())
	}
}

func TestRenderIsPureFunctionOfState(t *testing.T) {
	st := newTestState(t)
	st.manager.ToggleSelection("Mewtwo_Psychic")
	st.manager.Highlight("Charmander_Fire")
	st.manager.SetFilter([]string{"Mewtwo_Psychic", "Squirtle_Water"}, true)

	for _, kind := range []viewKind{viewScatter, viewParallel} {
		a := pngBytes(t, st, kind, 400, 300)
		b := pngBytes(t, st, kind, 400, 300)
		if !bytes.Equal(a, b) {
			t.Fatalf("rendering the same state twice produced different images (kind %d)", kind)
		}
	}
}

func TestRenderParallelAnnotatedSize(t *testing.T) {
	st := newTestState(t)
	img := renderParallelChart(st, 600, 400)
	b := img.Bounds()
	if b.Dx() != 600 || b.Dy() != 400 {
		t.Fatalf("parallel image %dx%d, want 600x400", b.Dx(), b.Dy())
	}
}

func TestRenderDonutSize(t *testing.T) {
	st := newTestState(t)
	img := renderDonutChart(st, 300, 300)
	b := img.Bounds()
	if b.Dx() != 300 || b.Dy() != 300 {
		t.Fatalf("donut image %dx%d, want 300x300", b.Dx(), b.Dy())
	}
}

func TestAxisTicksCoverRange(t *testing.T) {
	ticks := axisTicks(0, 100, 6)
	if len(ticks) < 2 {
		t.Fatalf("got %d ticks", len(ticks))
	}
	if ticks[0].Value > 0 || ticks[len(ticks)-1].Value < 100 {
		t.Fatalf("ticks [%v, %v] do not cover [0, 100]", ticks[0].Value, ticks[len(ticks)-1].Value)
	}
	for i := 1; i < len(ticks); i++ {
		step := ticks[i].Value - ticks[i-1].Value
		ref := ticks[1].Value - ticks[0].Value
		if math.Abs(step-ref) > 1e-9 {
			t.Fatalf("uneven tick spacing: %v vs %v", step, ref)
		}
	}
}
