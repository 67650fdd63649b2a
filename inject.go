package easel

// syntheticKind selects which entry point a queued event is fed through.
type syntheticKind uint8

const (
	synthPress syntheticKind = iota
	synthMove
	synthRelease
	synthClick
	synthDoubleClick
)

// syntheticEvent is a single injected pointer event in canvas-local
// coordinates.
type syntheticEvent struct {
	kind syntheticKind
	at   Vec2
}

// InjectPress queues a pointer press at (x, y). Queued events are consumed
// one per Step, or all at once by Drain.
func (e *Editor) InjectPress(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthPress, at: Vec2{x, y}})
}

// InjectMove queues a pointer move to (x, y). Use it between InjectPress and
// InjectRelease to simulate a drag or resize.
func (e *Editor) InjectMove(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthMove, at: Vec2{x, y}})
}

// InjectRelease queues a pointer release at (x, y).
func (e *Editor) InjectRelease(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthRelease, at: Vec2{x, y}})
}

// InjectClick queues the full press, release, click sequence a browser
// delivers for a single click at (x, y). Consumes three steps.
func (e *Editor) InjectClick(x, y float64) {
	e.InjectPress(x, y)
	e.InjectRelease(x, y)
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthClick, at: Vec2{x, y}})
}

// InjectDoubleClick queues two clicks followed by a double-click at (x, y).
func (e *Editor) InjectDoubleClick(x, y float64) {
	e.InjectClick(x, y)
	e.InjectClick(x, y)
	e.injectQueue = append(e.injectQueue, syntheticEvent{kind: synthDoubleClick, at: Vec2{x, y}})
}

// InjectDrag queues a full drag: a press at (fromX, fromY), steps-1 evenly
// spaced moves ending at (toX, toY), and a release there. steps below 2 is
// treated as 2.
func (e *Editor) InjectDrag(fromX, fromY, toX, toY float64, steps int) {
	if steps < 2 {
		steps = 2
	}
	e.InjectPress(fromX, fromY)
	moves := steps - 1
	for i := 1; i <= moves; i++ {
		t := float64(i) / float64(moves)
		e.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	e.InjectRelease(toX, toY)
}

// Pending returns the number of queued synthetic events.
func (e *Editor) Pending() int {
	return len(e.injectQueue)
}

// Step pops one queued event and feeds it through the matching entry point.
// It returns false when the queue was empty, so a host can fall back to real
// input for the frame. The second result reports whether state changed.
func (e *Editor) Step() (consumed, changed bool) {
	if len(e.injectQueue) == 0 {
		return false, false
	}
	evt := e.injectQueue[0]
	copy(e.injectQueue, e.injectQueue[1:])
	e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]

	switch evt.kind {
	case synthPress:
		changed = e.Press(evt.at)
	case synthMove:
		changed = e.Move(evt.at)
	case synthRelease:
		changed = e.Release()
	case synthClick:
		changed = e.Click(evt.at)
	case synthDoubleClick:
		_, changed = e.DoubleClick(evt.at)
	}
	return true, changed
}

// Drain feeds every queued event and reports whether any changed state.
func (e *Editor) Drain() bool {
	var changed bool
	for {
		consumed, c := e.Step()
		if !consumed {
			return changed
		}
		changed = changed || c
	}
}
