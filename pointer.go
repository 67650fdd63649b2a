package easel

import "time"

// doubleClickSlop is how far apart, in canvas units, two clicks may land and
// still form a double click.
const doubleClickSlop = 4.0

// pointerTracker turns sampled pointer state (position plus "button held")
// into the press / move / release / click / double-click calls the Editor
// expects, in the order a browser delivers them.
type pointerTracker struct {
	down      bool
	swallowed bool // pressed off the canvas; ignore input until release
	last      Vec2

	window       time.Duration
	lastClickAt  time.Time
	lastClickPos Vec2
	clickPending bool
}

// pointerEvent describes what a single sample produced.
type pointerEvent struct {
	pressed     bool // button went down this sample
	released    bool // button went up this sample
	doubleClick DoubleClickResult
	editing     bool // the double click started a text edit
	changed     bool // editor state or shapes changed
}

// sample is feed for a host with a toolbar above the canvas. A press that
// lands above the canvas (negative y) is swallowed, and so is everything up to
// its release, so dragging from the toolbar onto a shape starts no gesture.
func (t *pointerTracker) sample(ed *Editor, p Vec2, held bool, now time.Time) pointerEvent {
	if t.swallowed {
		if !held {
			t.swallowed = false
			t.last = p
		}
		return pointerEvent{}
	}
	if held && !t.down && p.Y < 0 {
		t.swallowed = true
		return pointerEvent{}
	}
	return t.feed(ed, p, held, now)
}

// feed processes one sample at canvas-local position p.
func (t *pointerTracker) feed(ed *Editor, p Vec2, held bool, now time.Time) pointerEvent {
	var ev pointerEvent
	switch {
	case held && !t.down:
		// Just pressed.
		t.down = true
		t.last = p
		ev.pressed = true
		ev.changed = ed.Press(p)

	case held && t.down:
		// Held down, possibly moved.
		if p != t.last {
			ev.changed = ed.Move(p)
			t.last = p
		}

	case !held && t.down:
		// Just released: release, then click, then maybe double click.
		t.down = false
		t.last = p
		ev.released = true
		ev.changed = ed.Release()
		if ed.Click(p) {
			ev.changed = true
		}
		if t.isDoubleClick(p, now) {
			t.clickPending = false
			if res, ok := ed.DoubleClick(p); ok {
				ev.doubleClick = res
				ev.editing = res.EditingStarted
				ev.changed = true
			}
		} else {
			t.clickPending = true
			t.lastClickAt = now
			t.lastClickPos = p
		}

	default:
		// Hover; the editor ignores motion without a gesture.
		t.last = p
	}
	return ev
}

func (t *pointerTracker) isDoubleClick(p Vec2, now time.Time) bool {
	if !t.clickPending || now.Sub(t.lastClickAt) > t.window {
		return false
	}
	d := p.Sub(t.lastClickPos)
	return d.X*d.X+d.Y*d.Y <= doubleClickSlop*doubleClickSlop
}
