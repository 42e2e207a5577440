package main

import (
	"math"
	"strings"
	"testing"

	"github.com/slothcoder21/ecs163-25s/src/dataset"
)

func TestSplitByLegendaryCounts(t *testing.T) {
	recs := make([]dataset.Record, 0, 650)
	for i := 0; i < 585; i++ {
		recs = append(recs, dataset.Record{Legendary: false})
	}
	for i := 0; i < 65; i++ {
		recs = append(recs, dataset.Record{Legendary: true})
	}
	s := splitByLegendary(recs)
	if s.Legendary != 65 || s.Ordinary != 585 {
		t.Fatalf("split = %+v, want 65/585", s)
	}
}

func TestDonutAnglesProportional(t *testing.T) {
	s := donutSplit{Legendary: 65, Ordinary: 585}
	leg, ord := s.Angles()
	if math.Abs(leg+ord-2*math.Pi) > 1e-9 {
		t.Fatalf("angles sum to %v, want 2π", leg+ord)
	}
	// 65 of 650 is exactly a tenth of the circle.
	if math.Abs(leg-2*math.Pi/10) > 1e-9 {
		t.Fatalf("legendary angle = %v, want %v", leg, 2*math.Pi/10)
	}
	if ord/leg != 9 {
		t.Fatalf("ordinary/legendary ratio = %v, want 9", ord/leg)
	}
}

func TestDonutAnglesEmpty(t *testing.T) {
	leg, ord := donutSplit{}.Angles()
	if leg != 0 || ord != 0 {
		t.Fatalf("empty split angles = %v, %v", leg, ord)
	}
}

func TestDonutValuesLabelsAndColors(t *testing.T) {
	vals := donutValues(donutSplit{Legendary: 65, Ordinary: 585})
	if len(vals) != 2 {
		t.Fatalf("got %d wedges, want 2", len(vals))
	}
	if !strings.Contains(vals[0].Label, "Ordinary") || !strings.Contains(vals[0].Label, "585") {
		t.Fatalf("ordinary label = %q", vals[0].Label)
	}
	if !strings.Contains(vals[1].Label, "Legendary") || !strings.Contains(vals[1].Label, "65") {
		t.Fatalf("legendary label = %q", vals[1].Label)
	}
	if vals[0].Style.FillColor != dataset.OrdinaryColor {
		t.Fatalf("ordinary wedge color mismatch")
	}
	if vals[1].Style.FillColor != dataset.LegendaryColor {
		t.Fatalf("legendary wedge color mismatch")
	}
	// Zero-count wedges stay present so the census is complete.
	vals = donutValues(donutSplit{Ordinary: 10})
	if len(vals) != 2 || !strings.Contains(vals[1].Label, "(0)") {
		t.Fatalf("zero-count wedge dropped: %+v", vals)
	}
}
