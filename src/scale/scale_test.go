package scale

import (
	"math"
	"testing"
)

func TestNewLinear_NicedBoundsContainExtent(t *testing.T) {
	vals := []float64{5, 49, 134, 190}
	s := NewLinear(vals, 0, 400)
	if s.D0 > 5 || s.D1 < 190 {
		t.Fatalf("niced domain [%v,%v] does not contain raw extent", s.D0, s.D1)
	}
	// Bounds land on the span's order of magnitude
	mag := math.Pow(10, math.Floor(math.Log10(s.D1-s.D0)))
	if math.Mod(s.D0, mag) != 0 || math.Mod(s.D1, mag) != 0 {
		t.Fatalf("bounds not round: [%v,%v] mag=%v", s.D0, s.D1, mag)
	}
}

func TestNewLinear_SkipsNaNValues(t *testing.T) {
	s := NewLinear([]float64{math.NaN(), 10, 20, math.NaN()}, 0, 100)
	if s.D0 > 10 || s.D1 < 20 {
		t.Fatalf("NaN values disturbed the extent: [%v,%v]", s.D0, s.D1)
	}
}

func TestNewLinear_DegenerateDomainStillValid(t *testing.T) {
	s := NewLinear([]float64{50, 50, 50}, 0, 100)
	if !(s.D1 > s.D0) {
		t.Fatalf("degenerate domain not widened: [%v,%v]", s.D0, s.D1)
	}
	px := s.Apply(50)
	if math.IsNaN(px) || math.IsInf(px, 0) {
		t.Fatalf("apply on degenerate input produced %v", px)
	}
}

func TestNewLinear_EmptyInput(t *testing.T) {
	s := NewLinear(nil, 0, 100)
	if !(s.D1 > s.D0) {
		t.Fatalf("empty input should still give a valid domain, got [%v,%v]", s.D0, s.D1)
	}
}

func TestLinear_ApplyInvertRoundTrip(t *testing.T) {
	s := Linear{D0: 0, D1: 200, R0: 40, R1: 440}
	for _, v := range []float64{0, 13, 100, 200} {
		px := s.Apply(v)
		back := s.Invert(px)
		if math.Abs(back-v) > 1e-9 {
			t.Fatalf("roundtrip %v -> %v -> %v", v, px, back)
		}
	}
	// Inverted ranges (y axes grow downward) still roundtrip
	y := Linear{D0: 0, D1: 100, R0: 300, R1: 20}
	if y.Apply(0) != 300 || y.Apply(100) != 20 {
		t.Fatalf("descending range mapping broken")
	}
}

func TestLinear_ApplyPropagatesNaN(t *testing.T) {
	s := Linear{D0: 0, D1: 100, R0: 0, R1: 100}
	if !math.IsNaN(s.Apply(math.NaN())) {
		t.Fatalf("NaN input must map to NaN, not a drawable position")
	}
}

func TestLinear_TicksPattern(t *testing.T) {
	s := Linear{D0: 0, D1: 250}
	ticks := s.Ticks(6)
	if len(ticks) < 2 {
		t.Fatalf("too few ticks: %v", ticks)
	}
	// Strictly increasing, even spacing
	step := ticks[1].Value - ticks[0].Value
	for i := 1; i < len(ticks); i++ {
		d := ticks[i].Value - ticks[i-1].Value
		if math.Abs(d-step) > 1e-6 {
			t.Fatalf("uneven tick spacing at %d: %v vs %v", i, d, step)
		}
		if ticks[i].Label == "" {
			t.Fatalf("missing label at %d", i)
		}
	}
	// Ticks cover the domain
	if ticks[0].Value > s.D0 || ticks[len(ticks)-1].Value < s.D1 {
		t.Fatalf("ticks %v do not cover domain [%v,%v]", ticks, s.D0, s.D1)
	}
}

func TestPoint_EvenSpacingAndOrder(t *testing.T) {
	names := []string{"HP", "Attack", "Defense", "Sp. Atk", "Sp. Def", "Speed"}
	p := NewPoint(names, 100, 600)
	if p.At(0) != 100 || p.At(len(names)-1) != 600 {
		t.Fatalf("endpoints misplaced: %v .. %v", p.At(0), p.At(5))
	}
	step := p.Step()
	for i := 1; i < len(names); i++ {
		if math.Abs((p.At(i)-p.At(i-1))-step) > 1e-9 {
			t.Fatalf("uneven spacing at %d", i)
		}
	}
	if x, ok := p.Apply("Defense"); !ok || x != p.At(2) {
		t.Fatalf("apply-by-name mismatch: %v %v", x, ok)
	}
	if _, ok := p.Apply("Evasion"); ok {
		t.Fatalf("unknown name should not resolve")
	}
}

func TestPoint_SingleName(t *testing.T) {
	p := NewPoint([]string{"HP"}, 0, 100)
	if p.At(0) != 50 {
		t.Fatalf("single point should sit at midpoint, got %v", p.At(0))
	}
}

func TestTransform_ScaleAtKeepsAnchorFixed(t *testing.T) {
	tr := Identity().ScaleAt(2, 300, 200)
	if tr.K != 2 {
		t.Fatalf("k: got %v", tr.K)
	}
	if math.Abs(tr.ApplyX(300)-300) > 1e-9 || math.Abs(tr.ApplyY(200)-200) > 1e-9 {
		t.Fatalf("anchor moved: (%v,%v)", tr.ApplyX(300), tr.ApplyY(200))
	}
}

func TestTransform_ClampsZoomFactor(t *testing.T) {
	tr := Identity()
	for i := 0; i < 20; i++ {
		tr = tr.ScaleAt(2, 0, 0)
	}
	if tr.K != MaxZoom {
		t.Fatalf("upper clamp: got %v", tr.K)
	}
	for i := 0; i < 40; i++ {
		tr = tr.ScaleAt(0.5, 0, 0)
	}
	if tr.K != MinZoom {
		t.Fatalf("lower clamp: got %v", tr.K)
	}
}

func TestTransform_IdentityRestoresPositions(t *testing.T) {
	base := Linear{D0: 0, D1: 100, R0: 0, R1: 500}
	tr := Identity().ScaleAt(3, 120, 80).TranslateBy(-40, 25)
	moved := tr.RescaleX(base)
	if moved.Apply(50) == base.Apply(50) {
		t.Fatalf("zoomed scale should differ from base")
	}
	// Reset to identity: positions match the base scale exactly
	restored := Identity().RescaleX(base)
	for _, v := range []float64{0, 25, 50, 100} {
		if restored.Apply(v) != base.Apply(v) {
			t.Fatalf("identity rescale changed position for %v", v)
		}
	}
}

func TestTransform_ApplyInvertRoundTrip(t *testing.T) {
	tr := Transform{K: 2.5, TX: -33, TY: 12}
	for _, px := range []float64{-10, 0, 123.45, 800} {
		if math.Abs(tr.InvertX(tr.ApplyX(px))-px) > 1e-9 {
			t.Fatalf("x roundtrip failed for %v", px)
		}
		if math.Abs(tr.InvertY(tr.ApplyY(px))-px) > 1e-9 {
			t.Fatalf("y roundtrip failed for %v", px)
		}
	}
}
