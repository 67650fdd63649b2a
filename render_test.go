package easel

import (
	"bytes"
	"fmt"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// recordingSurface captures draw calls as strings instead of painting.
type recordingSurface struct {
	calls []string
}

func (r *recordingSurface) Clear() { r.calls = append(r.calls, "clear") }

func (r *recordingSurface) FillRect(rect Rect, c color.Color) {
	r.calls = append(r.calls, fmt.Sprintf("rect %v %v", rect, c))
}

func (r *recordingSurface) FillEllipse(rect Rect, c color.Color) {
	r.calls = append(r.calls, fmt.Sprintf("ellipse %v %v", rect, c))
}

func (r *recordingSurface) StrokeDashedRect(rect Rect, c color.Color) {
	r.calls = append(r.calls, fmt.Sprintf("dashed %v", rect))
}

func (r *recordingSurface) FillCircle(center Vec2, radius float64, c color.Color) {
	r.calls = append(r.calls, fmt.Sprintf("handle %v %v", center, radius))
}

func (r *recordingSurface) FillTextCentered(s string, center Vec2, c color.Color) {
	r.calls = append(r.calls, fmt.Sprintf("text %q %v %v", s, center, c))
}

var (
	black = color.RGBA{A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	red   = color.RGBA{R: 0xff, A: 0xff}
)

// --- Command emission ---

func TestRenderEmitsInCollectionOrder(t *testing.T) {
	shapes := []Shape{
		NewShape(KindCircleBox, "c", 0, 0, 20, 10, 9),
		NewShape(KindPlainBox, "b", 5, 5, 10, 10, 1),
	}
	var rec recordingSurface
	Render(&rec, shapes, "")

	want := []string{
		"clear",
		fmt.Sprintf("ellipse %v %v", Rect{0, 0, 20, 10}, black),
		fmt.Sprintf("rect %v %v", Rect{5, 5, 10, 10}, black),
	}
	if diff := cmp.Diff(want, rec.calls); diff != "" {
		t.Errorf("calls (-want +got):\n%s", diff)
	}
}

func TestRenderSelection(t *testing.T) {
	s := NewShape(KindPlainBox, "b", 10, 10, 30, 20, 1)
	s.SetColor("red")
	var rec recordingSurface
	Render(&rec, []Shape{s}, "b")

	want := []string{
		"clear",
		fmt.Sprintf("rect %v %v", Rect{10, 10, 30, 20}, red),
		fmt.Sprintf("dashed %v", Rect{10, 10, 30, 20}),
		fmt.Sprintf("handle %v %v", Vec2{40, 30}, HandleRadius),
	}
	if diff := cmp.Diff(want, rec.calls); diff != "" {
		t.Errorf("calls (-want +got):\n%s", diff)
	}
}

func TestRenderTextBox(t *testing.T) {
	tb := NewShape(KindTextBox, "t", 0, 0, 100, 40, 1)
	tb.SetText("hello")

	var rec recordingSurface
	Render(&rec, []Shape{tb}, "")
	want := []string{
		"clear",
		fmt.Sprintf("rect %v %v", Rect{0, 0, 100, 40}, black),
		fmt.Sprintf("text %q %v %v", "hello", Vec2{50, 20}, white),
	}
	if diff := cmp.Diff(want, rec.calls); diff != "" {
		t.Errorf("calls (-want +got):\n%s", diff)
	}

	tb.SetEditing(true)
	rec.calls = nil
	Render(&rec, []Shape{tb}, "")
	for _, c := range rec.calls {
		if c[:4] == "text" {
			t.Errorf("editing TextBox drew its text: %s", c)
		}
	}
}

func TestRenderDoesNotModifyShapes(t *testing.T) {
	shapes := []Shape{NewShape(KindTextBox, "t", 0, 0, 100, 40, 1)}
	before := append([]Shape(nil), shapes...)
	Render(&recordingSurface{}, shapes, "t")
	if diff := cmp.Diff(shapeIDs(before), shapeIDs(shapes)); diff != "" || shapes[0] != before[0] {
		t.Error("Render modified its input")
	}
}

// --- Raster surface ---

func TestImageSurfaceRedrawIsIdentical(t *testing.T) {
	ed := NewEditor()
	ed.Add(KindPlainBox, 10, 10, 60, 40, AddOptions{Color: "tomato"})
	ed.Add(KindCircleBox, 80, 10, 50, 50, AddOptions{Color: "#3cb371"})
	ed.Add(KindTextBox, 10, 70, 120, 30, AddOptions{Text: "hi"})
	ed.Click(Vec2{20, 20})

	s, err := NewImageSurface(160, 120)
	if err != nil {
		t.Fatal(err)
	}
	ed.Render(s)
	first := append([]uint8(nil), s.Image().Pix...)
	ed.Render(s)
	if !bytes.Equal(first, s.Image().Pix) {
		t.Error("second render produced different pixels")
	}
}

func TestImageSurfacePaintsFill(t *testing.T) {
	s, err := NewImageSurface(50, 50)
	if err != nil {
		t.Fatal(err)
	}
	Render(s, []Shape{func() Shape {
		b := NewShape(KindPlainBox, "b", 40, 40, -30, -30, 1)
		b.SetColor("red")
		return b
	}()}, "")

	img := s.Image()
	if got := img.RGBAAt(25, 25); got != red {
		t.Errorf("inside pixel = %v, want %v", got, red)
	}
	if got := img.RGBAAt(45, 45); got.A != 0 {
		t.Errorf("outside pixel = %v, want transparent", got)
	}
}

func TestImageSurfaceEditingHidesText(t *testing.T) {
	tb := NewShape(KindTextBox, "t", 0, 0, 120, 40, 1)
	tb.SetText("WWWW")

	s, err := NewImageSurface(120, 40)
	if err != nil {
		t.Fatal(err)
	}
	Render(s, []Shape{tb}, "")
	if !hasBrightPixel(s) {
		t.Fatal("text pixels missing")
	}

	tb.SetEditing(true)
	Render(s, []Shape{tb}, "")
	if hasBrightPixel(s) {
		t.Error("editing TextBox still shows its text")
	}
}

// hasBrightPixel reports whether any pixel is closer to white than black.
func hasBrightPixel(s *ImageSurface) bool {
	img := s.Image()
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y).R > 0x80 {
				return true
			}
		}
	}
	return false
}
