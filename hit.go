package easel

import "math"

// --- Hit testing ---

// IsTouchedIn reports whether p lies over the shape's body.
//
// Each axis is tested on its own: the displacement from the anchor must point
// the same way as the extent and be no longer than it. This covers shapes
// whose extent is negative (anchor at the far corner). A zero extent matches
// only a zero displacement, so a degenerate shape is hit only along its edge.
func (s Shape) IsTouchedIn(p Vec2) bool {
	switch s.kind {
	case KindPlainBox, KindCircleBox, KindTextBox:
		d := p.Sub(s.Anchor())
		return axisTouched(d.X, s.width) && axisTouched(d.Y, s.height)
	default:
		return false
	}
}

// IsTouchedResizePoint reports whether p lies on or inside the resize handle
// circle of radius HandleRadius centered at (X+Width, Y+Height).
func (s Shape) IsTouchedResizePoint(p Vec2) bool {
	switch s.kind {
	case KindPlainBox, KindCircleBox, KindTextBox:
		d := p.Sub(s.ResizePoint())
		return d.X*d.X+d.Y*d.Y <= HandleRadius*HandleRadius
	default:
		return false
	}
}

// axisTouched is the one-axis body test: same sign, magnitude within extent.
func axisTouched(displacement, extent float64) bool {
	return sign(extent) == sign(displacement) &&
		math.Abs(displacement) <= math.Abs(extent)
}
