package easel

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Dash pattern of the selection border, in pixels: on, off.
var selectionDash = []float64{4, 3}

// ImageSurface is an in-memory raster Surface backed by gg. It is used for
// headless rendering (thumbnails, tests) and by hosts that blit a finished
// frame rather than drawing directly.
type ImageSurface struct {
	dc   *gg.Context
	face font.Face
}

// NewImageSurface allocates a width x height surface, cleared to transparent.
func NewImageSurface(width, height int) (*ImageSurface, error) {
	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("easel: parse font: %w", err)
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    TextFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc := gg.NewContext(width, height)
	dc.SetFontFace(face)
	return &ImageSurface{dc: dc, face: face}, nil
}

// Image returns the surface's backing image. It is shared, not copied.
func (s *ImageSurface) Image() *image.RGBA {
	return s.dc.Image().(*image.RGBA)
}

// Clear implements Surface.
func (s *ImageSurface) Clear() {
	s.dc.SetColor(color.Transparent)
	s.dc.Clear()
}

// FillRect implements Surface.
func (s *ImageSurface) FillRect(r Rect, c color.Color) {
	r = r.Normalize()
	s.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	s.dc.SetColor(c)
	s.dc.Fill()
}

// FillEllipse implements Surface.
func (s *ImageSurface) FillEllipse(r Rect, c color.Color) {
	r = r.Normalize()
	if r.Width == 0 || r.Height == 0 {
		return
	}
	center := r.Center()
	s.dc.DrawEllipse(center.X, center.Y, r.Width/2, r.Height/2)
	s.dc.SetColor(c)
	s.dc.Fill()
}

// StrokeDashedRect implements Surface.
func (s *ImageSurface) StrokeDashedRect(r Rect, c color.Color) {
	r = r.Normalize()
	s.dc.Push()
	defer s.dc.Pop()
	s.dc.SetDash(selectionDash...)
	s.dc.SetLineWidth(1)
	s.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	s.dc.SetColor(c)
	s.dc.Stroke()
}

// FillCircle implements Surface.
func (s *ImageSurface) FillCircle(center Vec2, radius float64, c color.Color) {
	s.dc.DrawCircle(center.X, center.Y, radius)
	s.dc.SetColor(c)
	s.dc.Fill()
}

// FillTextCentered implements Surface.
func (s *ImageSurface) FillTextCentered(text string, center Vec2, c color.Color) {
	s.dc.SetColor(c)
	s.dc.DrawStringAnchored(text, center.X, center.Y, 0.5, 0.5)
}
