package easel

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func shapeIDs(shapes []Shape) []string {
	ids := make([]string, len(shapes))
	for i, s := range shapes {
		ids[i] = s.ID()
	}
	return ids
}

func TestStoreAddAssignsIDsAndIndices(t *testing.T) {
	st := NewStore()
	if got := st.NextIndex(); got != 1 {
		t.Fatalf("NextIndex on empty store = %d, want 1", got)
	}

	a, _ := st.Add(KindPlainBox, 0, 0, 10, 10, AddOptions{})
	b, _ := st.Add(KindCircleBox, 0, 0, 10, 10, AddOptions{})
	c, _ := st.Add(KindTextBox, 10, 10, 150, 50, AddOptions{Text: "hi"})

	if diff := cmp.Diff([]int{1, 2, 3}, []int{a.Index(), b.Index(), c.Index()}); diff != "" {
		t.Errorf("indices (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"box-1", "circle-2", "text-3"}, shapeIDs(st.Shapes())); diff != "" {
		t.Errorf("ids (-want +got):\n%s", diff)
	}
	if c.Text() != "hi" || c.FontColor() != DefaultFontColor {
		t.Errorf("text box = %+v", c)
	}
}

func TestStoresDoNotShareIDs(t *testing.T) {
	s1, s2 := NewStore(), NewStore()
	a, _ := s1.Add(KindPlainBox, 0, 0, 1, 1, AddOptions{})
	b, _ := s2.Add(KindPlainBox, 0, 0, 1, 1, AddOptions{})
	if a.ID() != "box-1" || b.ID() != "box-1" {
		t.Errorf("ids = %q, %q, want box-1 twice", a.ID(), b.ID())
	}
}

func TestStoreAddOptions(t *testing.T) {
	st := NewStore()
	s, err := st.Add(KindPlainBox, 0, 0, 1, 1, AddOptions{ID: "custom", Color: "red"})
	if err != nil {
		t.Fatal(err)
	}
	if s.ID() != "custom" || s.Color() != "red" {
		t.Errorf("got %+v", s)
	}

	_, err = st.Add(KindPlainBox, 0, 0, 1, 1, AddOptions{ID: "custom"})
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("duplicate add err = %v, want ErrDuplicateID", err)
	}
	if st.Len() != 1 {
		t.Errorf("Len = %d after rejected add, want 1", st.Len())
	}
}

func TestStoreGeneratedIDSkipsTakenIDs(t *testing.T) {
	st := NewStore()
	if _, err := st.Add(KindPlainBox, 0, 0, 1, 1, AddOptions{ID: "box-1"}); err != nil {
		t.Fatal(err)
	}
	s, err := st.Add(KindPlainBox, 0, 0, 1, 1, AddOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if s.ID() != "box-2" {
		t.Errorf("generated id = %q, want box-2", s.ID())
	}
}

func TestStoreIndexAfterRemove(t *testing.T) {
	st := NewStore()
	st.Add(KindPlainBox, 0, 0, 1, 1, AddOptions{})
	b, _ := st.Add(KindPlainBox, 0, 0, 1, 1, AddOptions{})
	if err := st.Remove(b.ID()); err != nil {
		t.Fatal(err)
	}
	if got := st.NextIndex(); got != 2 {
		t.Errorf("NextIndex after removing the top = %d, want 2", got)
	}

	st.Add(KindPlainBox, 0, 0, 1, 1, AddOptions{})
	st.Add(KindPlainBox, 0, 0, 1, 1, AddOptions{})
	if err := st.Remove("box-1"); err != nil {
		t.Fatal(err)
	}
	s, _ := st.Add(KindPlainBox, 0, 0, 1, 1, AddOptions{})
	if s.Index() != 4 {
		t.Errorf("index after removing a lower shape = %d, want 4", s.Index())
	}
}

func TestStoreShapesReturnsCopy(t *testing.T) {
	st := NewStore()
	st.Add(KindPlainBox, 5, 5, 10, 10, AddOptions{})
	shapes := st.Shapes()
	shapes[0].SetPosition(100, 100)

	got, _ := st.Get("box-1")
	if got.X() != 5 {
		t.Errorf("stored X = %v after editing the copy, want 5", got.X())
	}
}

func TestStoreReplaceOnlyTouchesTarget(t *testing.T) {
	st := NewStore()
	st.Add(KindPlainBox, 0, 0, 10, 10, AddOptions{})
	st.Add(KindPlainBox, 20, 20, 10, 10, AddOptions{})
	before := st.Shapes()

	st.Apply(Patch{ID: "box-2", Op: PatchMove, Value: Vec2{50, 60}})

	after := st.Shapes()
	if after[0] != before[0] {
		t.Errorf("non-target changed: %+v", after[0])
	}
	if after[1].X() != 50 || after[1].Y() != 60 {
		t.Errorf("target = %+v", after[1])
	}
	if before[1].X() != 20 {
		t.Error("earlier snapshot was mutated")
	}
}

func TestStoreReplaceKeepsIdentity(t *testing.T) {
	st := NewStore()
	st.Add(KindPlainBox, 0, 0, 10, 10, AddOptions{})

	st.Replace(func(s Shape) Shape {
		return NewShape(KindPlainBox, "other", 99, 99, 1, 1, 1)
	})
	st.Replace(func(s Shape) Shape {
		return NewShape(KindTextBox, s.ID(), 99, 99, 1, 1, 1)
	})

	got, ok := st.Get("box-1")
	if !ok || got.X() != 0 || got.Kind() != KindPlainBox {
		t.Errorf("identity-breaking updates were kept: %+v", got)
	}
	if _, ok := st.Get("other"); ok {
		t.Error("new id appeared in store")
	}
}

func TestStoreUpdate(t *testing.T) {
	st := NewStore()
	st.Add(KindPlainBox, 0, 0, 10, 10, AddOptions{})
	err := st.Update("box-1", func(s Shape) Shape {
		s.SetColor("red")
		return s
	})
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := st.Get("box-1"); got.Color() != "red" {
		t.Errorf("Color = %q, want red", got.Color())
	}

	err = st.Update("missing", func(s Shape) Shape { return s })
	if !errors.Is(err, ErrUnknownShape) {
		t.Errorf("Update(missing) err = %v, want ErrUnknownShape", err)
	}
}

func TestStoreRemove(t *testing.T) {
	st := NewStore()
	st.Add(KindPlainBox, 0, 0, 1, 1, AddOptions{})
	st.Add(KindCircleBox, 0, 0, 1, 1, AddOptions{})
	st.Add(KindTextBox, 0, 0, 1, 1, AddOptions{})

	if err := st.Remove("circle-2"); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"box-1", "text-3"}, shapeIDs(st.Shapes())); diff != "" {
		t.Errorf("ids (-want +got):\n%s", diff)
	}
	if got, ok := st.Get("text-3"); !ok || got.Index() != 3 {
		t.Errorf("Get(text-3) after remove = %+v, %v", got, ok)
	}
	if err := st.Remove("circle-2"); !errors.Is(err, ErrUnknownShape) {
		t.Errorf("second Remove err = %v, want ErrUnknownShape", err)
	}
}
