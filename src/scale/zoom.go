package scale

// Zoom factor bounds for the scatter view.
const (
	MinZoom = 0.5
	MaxZoom = 10.0
)

// Transform is a zoom/pan transform in pixel space: px' = K*px + T.
// It composes with the base scales at render time; the scales themselves are
// never mutated.
type Transform struct {
	K      float64
	TX, TY float64
}

// Identity returns the no-op transform.
func Identity() Transform { return Transform{K: 1} }

// IsIdentity reports whether the transform leaves positions unchanged.
func (t Transform) IsIdentity() bool { return t.K == 1 && t.TX == 0 && t.TY == 0 }

// ApplyX maps a base pixel x through the transform.
func (t Transform) ApplyX(px float64) float64 { return t.K*px + t.TX }

// ApplyY maps a base pixel y through the transform.
func (t Transform) ApplyY(px float64) float64 { return t.K*px + t.TY }

// InvertX maps a transformed pixel x back to base pixel space.
func (t Transform) InvertX(px float64) float64 { return (px - t.TX) / t.K }

// InvertY maps a transformed pixel y back to base pixel space.
func (t Transform) InvertY(px float64) float64 { return (px - t.TY) / t.K }

// ScaleAt multiplies the zoom factor, clamped to [MinZoom, MaxZoom], keeping
// the pixel point (cx, cy) fixed on screen.
func (t Transform) ScaleAt(factor, cx, cy float64) Transform {
	k := t.K * factor
	if k < MinZoom {
		k = MinZoom
	}
	if k > MaxZoom {
		k = MaxZoom
	}
	// Effective factor after clamping
	f := k / t.K
	return Transform{
		K:  k,
		TX: cx - f*(cx-t.TX),
		TY: cy - f*(cy-t.TY),
	}
}

// TranslateBy pans the view by a pixel delta.
func (t Transform) TranslateBy(dx, dy float64) Transform {
	t.TX += dx
	t.TY += dy
	return t
}

// RescaleX composes the transform with a horizontal scale: the domain is kept
// and the range is mapped through the transform, so Apply on the result gives
// on-screen positions directly.
func (t Transform) RescaleX(s Linear) Linear {
	s.R0 = t.ApplyX(s.R0)
	s.R1 = t.ApplyX(s.R1)
	return s
}

// RescaleY is RescaleX for the vertical axis.
func (t Transform) RescaleY(s Linear) Linear {
	s.R0 = t.ApplyY(s.R0)
	s.R1 = t.ApplyY(s.R1)
	return s
}
