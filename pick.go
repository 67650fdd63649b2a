package easel

// PickMode selects which hit regions take part in a pick.
type PickMode uint8

const (
	PickBody        PickMode = iota // body only (click, double-click)
	PickWithHandles                 // body or resize handle (press)
)

// Pick resolves which shape the pointer at p landed on.
//
// Candidates are the shapes whose body (and, with PickWithHandles, whose
// resize handle) contains p. The candidate with the highest Index wins. On a
// tie the later one in shapes wins, so collection order is the secondary key.
// The second result is false when nothing was hit.
func Pick(shapes []Shape, p Vec2, mode PickMode) (Shape, bool) {
	var (
		best  Shape
		found bool
	)
	for _, s := range shapes {
		if !touched(s, p, mode) {
			continue
		}
		if !found || best.index <= s.index {
			best = s
			found = true
		}
	}
	return best, found
}

func touched(s Shape, p Vec2, mode PickMode) bool {
	if s.IsTouchedIn(p) {
		return true
	}
	return mode == PickWithHandles && s.IsTouchedResizePoint(p)
}
