// Package scale holds the pure screen-space mappings the views share: linear
// stat scales with niced domains, the point scale for the parallel axes, and
// the zoom transform for the scatter plot. Everything here is side-effect
// free; the renderers and the overlay hit-testing consume the same scales so
// drawn positions and pointer math cannot drift apart.
package scale

import (
	"math"
	"strconv"
)

// Tick is one labelled axis position in domain units.
type Tick struct {
	Value float64
	Label string
}

// Linear maps domain [D0,D1] onto pixel range [R0,R1].
type Linear struct {
	D0, D1 float64
	R0, R1 float64
}

// NewLinear builds a linear scale over the finite extent of values, niced to
// round bounds. With no finite values the domain degenerates to [0,1];
// with a single distinct value the nicing step widens it, so the scale is
// always valid.
func NewLinear(values []float64, r0, r1 float64) Linear {
	min := math.NaN()
	max := math.NaN()
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(min) || v < min {
			min = v
		}
		if math.IsNaN(max) || v > max {
			max = v
		}
	}
	if math.IsNaN(min) {
		min, max = 0, 1
	}
	s := Linear{D0: min, D1: max, R0: r0, R1: r1}
	return s.Nice()
}

// Nice expands the domain by a small margin and rounds both ends to the
// span's order of magnitude, so axis bounds land on round numbers beyond the
// raw extent. A degenerate domain is widened first.
func (s Linear) Nice() Linear {
	min, max := s.D0, s.D1
	if math.IsNaN(min) || math.IsNaN(max) {
		return s
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	pad := span * 0.05
	if pad <= 0 {
		pad = 1
	}
	a := min - pad
	b := max + pad
	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if !math.IsInf(mag, 0) && mag > 0 {
		a = math.Floor(a/mag) * mag
		b = math.Ceil(b/mag) * mag
	}
	s.D0, s.D1 = a, b
	return s
}

// Apply maps a domain value to a pixel position. NaN propagates.
func (s Linear) Apply(v float64) float64 {
	if s.D1 == s.D0 {
		return s.R0
	}
	return s.R0 + (v-s.D0)/(s.D1-s.D0)*(s.R1-s.R0)
}

// Invert maps a pixel position back to a domain value.
func (s Linear) Invert(px float64) float64 {
	if s.R1 == s.R0 {
		return s.D0
	}
	return s.D0 + (px-s.R0)/(s.R1-s.R0)*(s.D1-s.D0)
}

// Ticks generates up to about n tick marks across the domain using the
// 1, 2, 2.5, 5 step pattern.
func (s Linear) Ticks(n int) []Tick {
	min, max := s.D0, s.D1
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil(span/step) + 1
		if count < 2 {
			count = 2
		}
		diff := math.Abs(count - float64(n))
		if diff < bestScore {
			bestScore = diff
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	var out []Tick
	for v := start; v <= end+bestStep*0.5; v += bestStep {
		out = append(out, Tick{Value: round6(v), Label: FormatTick(round6(v))})
		if len(out) > n+2 {
			break
		}
	}
	if len(out) < 2 {
		out = []Tick{{Value: min, Label: FormatTick(min)}, {Value: max, Label: FormatTick(max)}}
	}
	return out
}

// FormatTick provides a compact numeric label.
func FormatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 100:
		return strconv.FormatInt(int64(math.Round(v)), 10)
	case av >= 10:
		return strconv.FormatFloat(v, 'f', 1, 64)
	case av >= 1:
		return strconv.FormatFloat(v, 'f', 2, 64)
	case av >= 0.01:
		return strconv.FormatFloat(v, 'f', 3, 64)
	default:
		return strconv.FormatFloat(v, 'f', 4, 64)
	}
}

// round6 stabilizes accumulated float steps for labels and comparisons.
func round6(v float64) float64 { return math.Round(v*1e6) / 1e6 }

// Point maps an ordered set of names to evenly spaced pixel positions across
// [R0,R1], first name at R0, last at R1.
type Point struct {
	Names  []string
	R0, R1 float64
}

// NewPoint builds a point scale over names in the given (fixed) order.
func NewPoint(names []string, r0, r1 float64) Point {
	cp := make([]string, len(names))
	copy(cp, names)
	return Point{Names: cp, R0: r0, R1: r1}
}

// Step returns the spacing between adjacent positions.
func (p Point) Step() float64 {
	if len(p.Names) < 2 {
		return 0
	}
	return (p.R1 - p.R0) / float64(len(p.Names)-1)
}

// At returns the pixel position of index i; a single-entry scale sits at the
// range midpoint.
func (p Point) At(i int) float64 {
	n := len(p.Names)
	if n == 0 || i < 0 || i >= n {
		return math.NaN()
	}
	if n == 1 {
		return (p.R0 + p.R1) / 2
	}
	return p.R0 + float64(i)*p.Step()
}

// Apply looks a name up and returns its position.
func (p Point) Apply(name string) (float64, bool) {
	for i, n := range p.Names {
		if n == name {
			return p.At(i), true
		}
	}
	return math.NaN(), false
}
