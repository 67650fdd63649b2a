package easel

import "image/color"

// Surface is the drawing target the renderer paints on. Rectangles may arrive
// with negative extents; implementations normalize them.
type Surface interface {
	// Clear erases the whole surface.
	Clear()
	FillRect(r Rect, c color.Color)
	// FillEllipse fills the ellipse inscribed in r.
	FillEllipse(r Rect, c color.Color)
	// StrokeDashedRect outlines r with a dashed line.
	StrokeDashedRect(r Rect, c color.Color)
	FillCircle(center Vec2, radius float64, c color.Color)
	// FillTextCentered draws s centered both ways on center at TextFontSize.
	FillTextCentered(s string, center Vec2, c color.Color)
}

// Render clears dst and paints shapes in collection order. Z-order (Index)
// only decides picks; it does not reorder painting. The shape whose id equals
// activatedID also gets a dashed selection border and its resize handle.
//
// Render never modifies shapes, and painting the same input twice produces
// the same pixels.
func Render(dst Surface, shapes []Shape, activatedID string) {
	dst.Clear()
	for _, s := range shapes {
		drawShape(dst, s, s.id != "" && s.id == activatedID)
	}
}

func drawShape(dst Surface, s Shape, activated bool) {
	b := s.Bounds()
	fill := resolveColor(s.color)

	switch s.kind {
	case KindPlainBox:
		dst.FillRect(b, fill)
	case KindCircleBox:
		dst.FillEllipse(b, fill)
	case KindTextBox:
		dst.FillRect(b, fill)
		if !s.editing && s.text != "" {
			dst.FillTextCentered(s.text, b.Center(), resolveColor(s.fontColor))
		}
	}

	if activated {
		dst.StrokeDashedRect(b, SelectionColor)
		dst.FillCircle(s.ResizePoint(), HandleRadius, SelectionColor)
	}
}
