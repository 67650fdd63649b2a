package easel

// Gesture is the pointer gesture in progress. Only one can be active, so a
// drag and a resize can never overlap.
type Gesture uint8

const (
	GestureIdle     Gesture = iota // no button held, or a press that hit nothing
	GestureDragging                // moving the activated shape's anchor
	GestureResizing                // moving the activated shape's far corner
)

// String returns a lowercase name for logs.
func (g Gesture) String() string {
	switch g {
	case GestureIdle:
		return "idle"
	case GestureDragging:
		return "dragging"
	case GestureResizing:
		return "resizing"
	default:
		return "unknown"
	}
}

// State is the global interaction state: which shape is activated and which
// gesture is running. Whether a TextBox is being edited is stored on the
// shape itself, not here.
type State struct {
	ActivatedID string  // "" when nothing is activated
	Gesture     Gesture // current gesture
	Offset      Vec2    // touch offset (pointer - anchor), zero unless dragging
}

// --- Transitions ---
//
// These functions are pure: they read the shapes and the current state and
// return the next state or a patch. Nothing here mutates a shape.

// Press handles a pointer press at p.
//
// A press that hits nothing leaves st as it is. A press on the activated
// shape's resize handle starts a resize of that shape. Any other hit activates
// the picked shape and starts a drag, remembering where inside the shape the
// pointer landed so the anchor does not jump on the first move.
func Press(shapes []Shape, p Vec2, st State) State {
	picked, ok := Pick(shapes, p, PickWithHandles)
	if !ok {
		return st
	}
	if st.ActivatedID != "" {
		if active, found := findShape(shapes, st.ActivatedID); found && active.IsTouchedResizePoint(p) {
			return State{ActivatedID: st.ActivatedID, Gesture: GestureResizing}
		}
	}
	return State{
		ActivatedID: picked.id,
		Gesture:     GestureDragging,
		Offset:      p.Sub(picked.Anchor()),
	}
}

// Move handles pointer motion to p. While dragging it moves the activated
// shape's anchor to p minus the touch offset; while resizing it sets the
// extents to p minus the shape's current anchor. When idle, or when the
// activated shape is gone, there is no patch and the second result is false.
func Move(shapes []Shape, p Vec2, st State) (Patch, bool) {
	switch st.Gesture {
	case GestureDragging:
		return Patch{ID: st.ActivatedID, Op: PatchMove, Value: p.Sub(st.Offset)}, true
	case GestureResizing:
		active, ok := findShape(shapes, st.ActivatedID)
		if !ok {
			return Patch{}, false
		}
		return Patch{ID: st.ActivatedID, Op: PatchResize, Value: p.Sub(active.Anchor())}, true
	case GestureIdle:
	}
	return Patch{}, false
}

// Release ends the current gesture. The activated shape stays activated.
func Release(st State) State {
	return State{ActivatedID: st.ActivatedID, Gesture: GestureIdle}
}

// Click resolves a click at p against shape bodies. It returns the id to
// activate, or false when the click landed on the background; in that case
// the current selection is meant to stay as it is.
func Click(shapes []Shape, p Vec2) (string, bool) {
	s, ok := Pick(shapes, p, PickBody)
	if !ok {
		return "", false
	}
	return s.id, true
}

// DoubleClickResult is the outcome of a double click that hit a shape.
type DoubleClickResult struct {
	ID             string // shape to activate
	EditingStarted bool   // true when the shape is a TextBox entering edit mode
}

// Patch returns the change a double click makes to the collection: a
// PatchBeginEdit for TextBoxes, PatchNone otherwise.
func (r DoubleClickResult) Patch() Patch {
	if !r.EditingStarted {
		return Patch{ID: r.ID, Op: PatchNone}
	}
	return Patch{ID: r.ID, Op: PatchBeginEdit}
}

// DoubleClick behaves like Click and additionally starts text editing when
// the picked shape is a TextBox.
func DoubleClick(shapes []Shape, p Vec2) (DoubleClickResult, bool) {
	s, ok := Pick(shapes, p, PickBody)
	if !ok {
		return DoubleClickResult{}, false
	}
	var editing bool
	switch s.kind {
	case KindTextBox:
		editing = true
	case KindPlainBox, KindCircleBox:
	}
	return DoubleClickResult{ID: s.id, EditingStarted: editing}, true
}

// CommitText returns the patch that stores text into the TextBox id and ends
// its edit. The patch is a no-op for other kinds.
func CommitText(id, text string) Patch {
	return Patch{ID: id, Op: PatchCommitText, Text: text}
}

func findShape(shapes []Shape, id string) (Shape, bool) {
	for _, s := range shapes {
		if s.id == id {
			return s, true
		}
	}
	return Shape{}, false
}
