package easel

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateID is returned when a caller-supplied id is already in use.
	ErrDuplicateID = errors.New("duplicate shape id")
	// ErrUnknownShape is returned when an id does not name a stored shape.
	ErrUnknownShape = errors.New("unknown shape id")
)

// AddOptions customizes a shape created by Store.Add. Zero values mean
// "use the default".
type AddOptions struct {
	ID        string // overrides the generated id
	Color     string
	Text      string // TextBox only
	FontColor string // TextBox only
}

// Store is the single source of truth for the shapes on a surface. Shapes are
// kept as owned values in insertion order; callers only ever receive copies,
// and every change goes through an updater that returns a new value.
type Store struct {
	shapes []Shape
	pos    map[string]int // id -> position in shapes
	ids    IDGenerator
}

// NewStore creates an empty store with its own id generator seeded at zero.
func NewStore() *Store {
	return &Store{pos: make(map[string]int)}
}

// Len returns the number of stored shapes.
func (st *Store) Len() int { return len(st.shapes) }

// Shapes returns a copy of the collection in insertion order.
func (st *Store) Shapes() []Shape {
	out := make([]Shape, len(st.shapes))
	copy(out, st.shapes)
	return out
}

// Get returns the shape with the given id.
func (st *Store) Get(id string) (Shape, bool) {
	i, ok := st.pos[id]
	if !ok {
		return Shape{}, false
	}
	return st.shapes[i], true
}

// NextIndex returns the index the next added shape will receive:
// one more than the highest index in the store, or 1 when empty.
func (st *Store) NextIndex() int {
	highest := 0
	for _, s := range st.shapes {
		highest = max(highest, s.index)
	}
	return highest + 1
}

// Add creates a shape of the given kind, assigns its id and index and appends
// it. An error is returned only when opts.ID is already taken.
func (st *Store) Add(kind Kind, x, y, width, height float64, opts AddOptions) (Shape, error) {
	id := opts.ID
	if id == "" {
		id = st.ids.Next(kind)
		// Caller-supplied ids may collide with the generated sequence.
		for st.has(id) {
			id = st.ids.Next(kind)
		}
	} else if st.has(id) {
		return Shape{}, fmt.Errorf("easel: add %q: %w", id, ErrDuplicateID)
	}

	s := NewShape(kind, id, x, y, width, height, st.NextIndex())
	if opts.Color != "" {
		s.SetColor(opts.Color)
	}
	if opts.Text != "" {
		s.SetText(opts.Text)
	}
	if opts.FontColor != "" {
		s.SetFontColor(opts.FontColor)
	}

	st.pos[id] = len(st.shapes)
	st.shapes = append(st.shapes, s)
	return s, nil
}

// Replace passes every stored shape through fn and stores the results. fn
// must return non-target shapes unchanged; a result whose id differs from its
// input is discarded and the input kept, so identities never move.
func (st *Store) Replace(fn func(Shape) Shape) {
	for i, s := range st.shapes {
		next := fn(s)
		if next.id != s.id || next.kind != s.kind {
			continue
		}
		st.shapes[i] = next
	}
}

// Update applies fn to the shape with the given id only.
func (st *Store) Update(id string, fn func(Shape) Shape) error {
	i, ok := st.pos[id]
	if !ok {
		return fmt.Errorf("easel: update %q: %w", id, ErrUnknownShape)
	}
	next := fn(st.shapes[i])
	if next.id == id && next.kind == st.shapes[i].kind {
		st.shapes[i] = next
	}
	return nil
}

// Apply routes a patch through Replace.
func (st *Store) Apply(p Patch) {
	st.Replace(p.Apply)
}

// Remove deletes the shape with the given id. Indices of the remaining shapes
// are left as they are.
func (st *Store) Remove(id string) error {
	i, ok := st.pos[id]
	if !ok {
		return fmt.Errorf("easel: remove %q: %w", id, ErrUnknownShape)
	}
	copy(st.shapes[i:], st.shapes[i+1:])
	st.shapes[len(st.shapes)-1] = Shape{}
	st.shapes = st.shapes[:len(st.shapes)-1]
	delete(st.pos, id)
	for j := i; j < len(st.shapes); j++ {
		st.pos[st.shapes[j].id] = j
	}
	return nil
}

func (st *Store) has(id string) bool {
	_, ok := st.pos[id]
	return ok
}
