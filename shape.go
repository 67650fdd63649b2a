package easel

// Kind distinguishes the variants of a Shape. The set is closed: every switch
// over Kind in this package handles all three values.
type Kind uint8

const (
	KindPlainBox  Kind = iota // filled rectangle
	KindCircleBox             // filled ellipse inscribed in its box; extents never negative
	KindTextBox               // filled rectangle with centered text
)

// String returns the kind tag, which is also the prefix of generated ids.
func (k Kind) String() string {
	switch k {
	case KindPlainBox:
		return "box"
	case KindCircleBox:
		return "circle"
	case KindTextBox:
		return "text"
	default:
		return "unknown"
	}
}

// Default style tokens for newly created shapes.
const (
	DefaultColor     = "black"
	DefaultFontColor = "white"
)

// Shape is a single element on the drawing surface. One flat value type is
// used for every kind; kind-specific fields are ignored for kinds that do not
// own them.
//
// Shape is a value. Copying it yields an independent shape with the same
// identity, which is how updates are made: copy, change the copy, hand it
// back to the Store.
type Shape struct {
	id   string
	kind Kind

	x, y          float64
	width, height float64
	index         int
	color         string

	// TextBox only
	text      string
	fontColor string
	editing   bool
}

// NewShape builds a shape of the given kind with an explicit id and z-index.
// A CircleBox clamps negative extents to zero. Most callers go through
// Store.Add, which assigns both id and index.
func NewShape(kind Kind, id string, x, y, width, height float64, index int) Shape {
	s := Shape{
		id:     id,
		kind:   kind,
		x:      x,
		y:      y,
		index:  index,
		color:  DefaultColor,
		width:  width,
		height: height,
	}
	switch kind {
	case KindCircleBox:
		s.width = max(width, 0)
		s.height = max(height, 0)
	case KindTextBox:
		s.fontColor = DefaultFontColor
	case KindPlainBox:
	}
	return s
}

// Clone returns a value-identical copy carrying the same id.
func (s Shape) Clone() Shape { return s }

// ID returns the shape's stable identity.
func (s Shape) ID() string { return s.id }

// Kind returns the shape's variant.
func (s Shape) Kind() Kind { return s.kind }

// X returns the anchor's horizontal coordinate.
func (s Shape) X() float64 { return s.x }

// Y returns the anchor's vertical coordinate.
func (s Shape) Y() float64 { return s.y }

// Width returns the signed horizontal extent.
func (s Shape) Width() float64 { return s.width }

// Height returns the signed vertical extent.
func (s Shape) Height() float64 { return s.height }

// Index returns the z-order used to resolve picks. Higher is on top.
func (s Shape) Index() int { return s.index }

// Color returns the fill style token.
func (s Shape) Color() string { return s.color }

// Text returns the TextBox content, or "" for other kinds.
func (s Shape) Text() string { return s.text }

// FontColor returns the TextBox text color token, or "" for other kinds.
func (s Shape) FontColor() string { return s.fontColor }

// IsEditing reports whether an external text editor currently owns this
// TextBox's content. Always false for other kinds.
func (s Shape) IsEditing() bool { return s.editing }

// Bounds returns the shape's anchor and signed extent as a Rect.
func (s Shape) Bounds() Rect {
	return Rect{X: s.x, Y: s.y, Width: s.width, Height: s.height}
}

// Anchor returns (X, Y).
func (s Shape) Anchor() Vec2 { return Vec2{s.x, s.y} }

// ResizePoint returns the center of the resize handle, (X+Width, Y+Height).
func (s Shape) ResizePoint() Vec2 { return s.Bounds().Corner() }

// --- Setters ---
//
// Setters act on the receiver, which is always a caller-owned copy. They
// report whether the value was accepted.

// SetPosition moves the anchor.
func (s *Shape) SetPosition(x, y float64) {
	s.x = x
	s.y = y
}

// SetX sets the anchor's horizontal coordinate.
func (s *Shape) SetX(x float64) { s.x = x }

// SetY sets the anchor's vertical coordinate.
func (s *Shape) SetY(y float64) { s.y = y }

// SetWidth sets the horizontal extent. A CircleBox rejects negative values
// and keeps its prior width.
func (s *Shape) SetWidth(w float64) bool {
	switch s.kind {
	case KindCircleBox:
		if w < 0 {
			return false
		}
	case KindPlainBox, KindTextBox:
	}
	s.width = w
	return true
}

// SetHeight sets the vertical extent. A CircleBox rejects negative values
// and keeps its prior height.
func (s *Shape) SetHeight(h float64) bool {
	switch s.kind {
	case KindCircleBox:
		if h < 0 {
			return false
		}
	case KindPlainBox, KindTextBox:
	}
	s.height = h
	return true
}

// SetSize sets both extents independently; each axis follows the rules of
// SetWidth and SetHeight. It reports whether both were accepted.
func (s *Shape) SetSize(w, h float64) bool {
	okW := s.SetWidth(w)
	okH := s.SetHeight(h)
	return okW && okH
}

// SetColor sets the fill style token.
func (s *Shape) SetColor(c string) { s.color = c }

// SetText sets TextBox content. Other kinds ignore it.
func (s *Shape) SetText(t string) bool {
	if s.kind != KindTextBox {
		return false
	}
	s.text = t
	return true
}

// SetFontColor sets the TextBox text color token. Other kinds ignore it.
func (s *Shape) SetFontColor(c string) bool {
	if s.kind != KindTextBox {
		return false
	}
	s.fontColor = c
	return true
}

// SetEditing toggles the TextBox editing flag. Other kinds ignore it.
func (s *Shape) SetEditing(editing bool) bool {
	if s.kind != KindTextBox {
		return false
	}
	s.editing = editing
	return true
}
