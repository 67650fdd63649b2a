package easel

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// ellipseSegments is the number of perimeter vertices used to approximate an
// ellipse or the resize handle disc.
const ellipseSegments = 48

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns the shared 1x1 white source image used for solid
// fills.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// EbitenSurface draws onto an Ebitengine image. Point it at a new target each
// frame with SetTarget; a sub-image can be used to confine the canvas to part
// of the window.
type EbitenSurface struct {
	// Background is what Clear fills the target with. Nil clears to
	// transparent.
	Background color.Color

	dst  *ebiten.Image
	face *text.GoTextFace

	// scratch buffers reused across fills
	verts []ebiten.Vertex
	inds  []uint16
}

// NewEbitenSurface loads the text face and returns a surface with no target.
func NewEbitenSurface() (*EbitenSurface, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("easel: failed to parse TTF data: %w", err)
	}
	return &EbitenSurface{
		face: &text.GoTextFace{Source: src, Size: TextFontSize},
	}, nil
}

// SetTarget selects the image subsequent calls draw on.
func (s *EbitenSurface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

// Face returns the text face, for hosts that draw their own overlays.
func (s *EbitenSurface) Face() *text.GoTextFace {
	return s.face
}

// Clear implements Surface.
func (s *EbitenSurface) Clear() {
	if s.Background == nil {
		s.dst.Clear()
		return
	}
	s.dst.Fill(s.Background)
}

// FillRect implements Surface.
func (s *EbitenSurface) FillRect(r Rect, c color.Color) {
	r = r.Normalize()
	if r.Width == 0 || r.Height == 0 {
		return
	}
	// Offset by the target's own origin so sub-images draw in local space.
	org := s.dst.Bounds().Min
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X+float64(org.X), r.Y+float64(org.Y))
	op.ColorScale.ScaleWithColor(c)
	s.dst.DrawImage(ensureWhitePixel(), &op)
}

// FillEllipse implements Surface.
func (s *EbitenSurface) FillEllipse(r Rect, c color.Color) {
	r = r.Normalize()
	if r.Width == 0 || r.Height == 0 {
		return
	}
	s.fillOval(r.Center(), r.Width/2, r.Height/2, c)
}

// FillCircle implements Surface.
func (s *EbitenSurface) FillCircle(center Vec2, radius float64, c color.Color) {
	s.fillOval(center, radius, radius, c)
}

// StrokeDashedRect implements Surface.
func (s *EbitenSurface) StrokeDashedRect(r Rect, c color.Color) {
	r = r.Normalize()
	org := s.dst.Bounds().Min
	o := Vec2{float64(org.X), float64(org.Y)}
	tl := Vec2{r.X, r.Y}.Add(o)
	tr := Vec2{r.X + r.Width, r.Y}.Add(o)
	br := Vec2{r.X + r.Width, r.Y + r.Height}.Add(o)
	bl := Vec2{r.X, r.Y + r.Height}.Add(o)
	s.dashedLine(tl, tr, c)
	s.dashedLine(tr, br, c)
	s.dashedLine(br, bl, c)
	s.dashedLine(bl, tl, c)
}

// FillTextCentered implements Surface.
func (s *EbitenSurface) FillTextCentered(str string, center Vec2, c color.Color) {
	org := s.dst.Bounds().Min
	op := &text.DrawOptions{}
	op.GeoM.Translate(center.X+float64(org.X), center.Y+float64(org.Y))
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(s.dst, str, s.face, op)
}

// dashedLine strokes a→b using the selectionDash on/off pattern.
func (s *EbitenSurface) dashedLine(a, b Vec2, c color.Color) {
	d := b.Sub(a)
	length := math.Hypot(d.X, d.Y)
	if length == 0 {
		return
	}
	ux, uy := d.X/length, d.Y/length
	on, off := selectionDash[0], selectionDash[1]
	for t := 0.0; t < length; t += on + off {
		end := math.Min(t+on, length)
		vector.StrokeLine(s.dst,
			float32(a.X+ux*t), float32(a.Y+uy*t),
			float32(a.X+ux*end), float32(a.Y+uy*end),
			1, c, false)
	}
}

// fillOval fills an axis-aligned ellipse with a fan-triangulated polygon.
func (s *EbitenSurface) fillOval(center Vec2, rx, ry float64, c color.Color) {
	org := s.dst.Bounds().Min
	center = center.Add(Vec2{float64(org.X), float64(org.Y)})

	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	cr := float32(nc.R) / 255
	cg := float32(nc.G) / 255
	cb := float32(nc.B) / 255
	ca := float32(nc.A) / 255

	s.verts = s.verts[:0]
	for i := 0; i < ellipseSegments; i++ {
		theta := 2 * math.Pi * float64(i) / ellipseSegments
		s.verts = append(s.verts, ebiten.Vertex{
			DstX:   float32(center.X + rx*math.Cos(theta)),
			DstY:   float32(center.Y + ry*math.Sin(theta)),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}

	// Fan triangulation: vertex 0 is the hub.
	s.inds = s.inds[:0]
	for i := 0; i < ellipseSegments-2; i++ {
		s.inds = append(s.inds, 0, uint16(i+1), uint16(i+2))
	}

	s.dst.DrawTriangles(s.verts, s.inds, ensureWhitePixel(), &ebiten.DrawTrianglesOptions{})
}
