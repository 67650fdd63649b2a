package easel

import "testing"

func TestPatchApplySkipsOtherIDs(t *testing.T) {
	s := NewShape(KindPlainBox, "a", 1, 2, 3, 4, 1)
	p := Patch{ID: "b", Op: PatchMove, Value: Vec2{50, 50}}
	if got := p.Apply(s); got != s {
		t.Errorf("Apply changed a non-target: %+v", got)
	}
}

func TestPatchApply(t *testing.T) {
	box := NewShape(KindPlainBox, "a", 10, 10, 100, 50, 1)
	circle := NewShape(KindCircleBox, "c", 10, 10, 40, 40, 1)
	text := NewShape(KindTextBox, "t", 10, 10, 100, 50, 1)

	t.Run("move", func(t *testing.T) {
		got := Patch{ID: "a", Op: PatchMove, Value: Vec2{70, 80}}.Apply(box)
		if got.X() != 70 || got.Y() != 80 || got.Width() != 100 {
			t.Errorf("got %+v", got)
		}
	})
	t.Run("resize negative box", func(t *testing.T) {
		got := Patch{ID: "a", Op: PatchResize, Value: Vec2{-20, -30}}.Apply(box)
		if got.Width() != -20 || got.Height() != -30 || got.X() != 10 {
			t.Errorf("got %+v", got)
		}
	})
	t.Run("resize circle per axis", func(t *testing.T) {
		got := Patch{ID: "c", Op: PatchResize, Value: Vec2{-20, 60}}.Apply(circle)
		if got.Width() != 40 || got.Height() != 60 {
			t.Errorf("extents = (%v, %v), want (40, 60)", got.Width(), got.Height())
		}
	})
	t.Run("begin edit", func(t *testing.T) {
		got := Patch{ID: "t", Op: PatchBeginEdit}.Apply(text)
		if !got.IsEditing() {
			t.Error("not editing")
		}
		if (Patch{ID: "a", Op: PatchBeginEdit}).Apply(box) != box {
			t.Error("begin edit changed a PlainBox")
		}
	})
	t.Run("commit text", func(t *testing.T) {
		editing := Patch{ID: "t", Op: PatchBeginEdit}.Apply(text)
		got := Patch{ID: "t", Op: PatchCommitText, Text: "hi"}.Apply(editing)
		if got.Text() != "hi" || got.IsEditing() {
			t.Errorf("text = %q editing = %v", got.Text(), got.IsEditing())
		}
	})
	t.Run("none", func(t *testing.T) {
		if got := (Patch{ID: "a"}).Apply(box); got != box {
			t.Errorf("got %+v", got)
		}
	})
}

func TestPatchApplyDoesNotMutateInput(t *testing.T) {
	s := NewShape(KindPlainBox, "a", 10, 10, 100, 50, 1)
	before := s
	_ = Patch{ID: "a", Op: PatchMove, Value: Vec2{0, 0}}.Apply(s)
	if s != before {
		t.Error("Apply mutated its argument")
	}
}
