package easel

import (
	"go.uber.org/zap"
)

// Editor is the interaction engine for one drawing surface. It owns the
// shape Store and the interaction State and is driven synchronously by the
// host's pointer and keyboard handlers. It is not safe for concurrent use.
//
// Every method that takes a point expects canvas-local coordinates (see
// CanvasPoint). Methods that change something report true so the host knows
// to redraw.
type Editor struct {
	store *Store
	state State
	log   *zap.Logger

	injectQueue []syntheticEvent
}

// Option configures an Editor.
type Option func(*Editor)

// WithLogger sets the logger used for gesture and edit diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.log = l
		}
	}
}

// NewEditor creates an editor over an empty store.
func NewEditor(opts ...Option) *Editor {
	e := &Editor{
		store: NewStore(),
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns the current interaction state.
func (e *Editor) State() State { return e.state }

// Shapes returns a copy of the collection in insertion (paint) order.
func (e *Editor) Shapes() []Shape { return e.store.Shapes() }

// Shape returns the shape with the given id.
func (e *Editor) Shape(id string) (Shape, bool) { return e.store.Get(id) }

// Activated returns the activated shape, if any.
func (e *Editor) Activated() (Shape, bool) {
	if e.state.ActivatedID == "" {
		return Shape{}, false
	}
	return e.store.Get(e.state.ActivatedID)
}

// Editing returns the TextBoxes whose text is currently under edit, in
// collection order. A host draws its text-input overlay over each.
func (e *Editor) Editing() []Shape {
	var out []Shape
	for _, s := range e.store.shapes {
		if s.editing {
			out = append(out, s)
		}
	}
	return out
}

// Add creates a shape with the next free z-index. See Store.Add.
func (e *Editor) Add(kind Kind, x, y, width, height float64, opts AddOptions) (Shape, error) {
	s, err := e.store.Add(kind, x, y, width, height, opts)
	if err != nil {
		return Shape{}, err
	}
	e.log.Debug("shape added",
		zap.String("id", s.id),
		zap.Stringer("kind", s.kind),
		zap.Int("index", s.index))
	return s, nil
}

// Remove deletes a shape. Removing the activated shape clears the selection
// and ends any gesture on it.
func (e *Editor) Remove(id string) error {
	if err := e.store.Remove(id); err != nil {
		return err
	}
	if e.state.ActivatedID == id {
		e.state = State{}
	}
	e.log.Debug("shape removed", zap.String("id", id))
	return nil
}

// --- Pointer input ---

// Press starts a drag or resize gesture at p. It reports whether the state
// changed.
func (e *Editor) Press(p Vec2) bool {
	prev := e.state
	e.state = Press(e.store.shapes, p, e.state)
	if e.state == prev {
		return false
	}
	e.log.Debug("gesture start",
		zap.Stringer("gesture", e.state.Gesture),
		zap.String("id", e.state.ActivatedID),
		zap.Float64("x", p.X), zap.Float64("y", p.Y))
	return true
}

// Move feeds pointer motion into the running gesture. It reports whether a
// shape changed.
func (e *Editor) Move(p Vec2) bool {
	patch, ok := Move(e.store.shapes, p, e.state)
	if !ok {
		return false
	}
	return e.apply(patch)
}

// Release ends the running gesture. It reports whether a gesture was active.
func (e *Editor) Release() bool {
	if e.state.Gesture == GestureIdle {
		return false
	}
	e.log.Debug("gesture end",
		zap.Stringer("gesture", e.state.Gesture),
		zap.String("id", e.state.ActivatedID))
	e.state = Release(e.state)
	return true
}

// Click activates the shape whose body is under p. Clicking the background
// keeps the current selection. Clicks are ignored while a drag or resize is
// running.
func (e *Editor) Click(p Vec2) bool {
	if e.state.Gesture != GestureIdle {
		return false
	}
	id, ok := Click(e.store.shapes, p)
	if !ok || id == e.state.ActivatedID {
		return false
	}
	e.state.ActivatedID = id
	return true
}

// DoubleClick activates the shape under p and, for a TextBox, puts it into
// text editing. Like Click, it is ignored mid-gesture.
func (e *Editor) DoubleClick(p Vec2) (DoubleClickResult, bool) {
	if e.state.Gesture != GestureIdle {
		return DoubleClickResult{}, false
	}
	res, ok := DoubleClick(e.store.shapes, p)
	if !ok {
		return DoubleClickResult{}, false
	}
	e.state.ActivatedID = res.ID
	e.apply(res.Patch())
	if res.EditingStarted {
		e.log.Debug("text edit start", zap.String("id", res.ID))
	}
	return res, true
}

// CommitText stores text into the TextBox id and ends its edit. It reports
// whether the shape changed.
func (e *Editor) CommitText(id, text string) bool {
	return e.apply(CommitText(id, text))
}

// EditProperty applies a property-panel edit to the activated shape. Input
// that does not parse, or that the shape rejects, leaves everything as it was.
func (e *Editor) EditProperty(prop Property, raw string) bool {
	active, ok := e.Activated()
	if !ok {
		return false
	}
	next, ok := ApplyProperty(active, prop, raw)
	if !ok {
		e.log.Debug("property edit rejected",
			zap.String("id", active.id),
			zap.Uint8("property", uint8(prop)),
			zap.String("input", raw))
		return false
	}
	if next == active {
		return false
	}
	e.store.Replace(func(s Shape) Shape {
		if s.id != next.id {
			return s
		}
		return next
	})
	return true
}

// Render repaints dst with the current shapes and selection.
func (e *Editor) Render(dst Surface) {
	Render(dst, e.store.shapes, e.state.ActivatedID)
}

func (e *Editor) apply(p Patch) bool {
	before, ok := e.store.Get(p.ID)
	if !ok {
		return false
	}
	e.store.Apply(p)
	after, _ := e.store.Get(p.ID)
	return before != after
}
