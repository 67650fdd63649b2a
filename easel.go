package easel

import "math"

// Vec2 is a 2D vector used for pointer positions, anchors, extents and touch
// offsets throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// CanvasPoint converts a host client coordinate into canvas-local space by
// subtracting the canvas element's own origin on screen.
func CanvasPoint(client, origin Vec2) Vec2 {
	return client.Sub(origin)
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward. Width and Height may be negative,
// in which case (X, Y) is the far corner.
type Rect struct {
	X, Y, Width, Height float64
}

// Normalize returns the same area with a non-negative Width and Height.
func (r Rect) Normalize() Rect {
	if r.Width < 0 {
		r.X += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Y += r.Height
		r.Height = -r.Height
	}
	return r
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Corner returns the corner opposite the anchor, (X+Width, Y+Height).
func (r Rect) Corner() Vec2 {
	return Vec2{r.X + r.Width, r.Y + r.Height}
}

// HandleRadius is the radius of the resize handle drawn at a shape's
// bottom-right corner and of its hit region, in device-independent units.
const HandleRadius = 5.0

// TextFontSize is the fixed font size used to draw TextBox content.
const TextFontSize = 16.0

// sign returns -1, 0 or 1 according to the sign of v.
func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// finite reports whether v is neither NaN nor infinite.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
