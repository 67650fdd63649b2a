package easel

import "testing"

func TestPickHighestIndexWins(t *testing.T) {
	low := NewShape(KindPlainBox, "low", 0, 0, 100, 100, 1)
	high := NewShape(KindPlainBox, "high", 50, 50, 100, 100, 2)
	p := Vec2{75, 75}

	for _, order := range [][]Shape{{low, high}, {high, low}} {
		got, ok := Pick(order, p, PickBody)
		if !ok {
			t.Fatal("Pick found nothing")
		}
		if got.ID() != "high" {
			t.Errorf("Pick(%s first) = %q, want high", order[0].ID(), got.ID())
		}
	}
}

func TestPickTieGoesToLater(t *testing.T) {
	a := NewShape(KindPlainBox, "a", 0, 0, 100, 100, 1)
	b := NewShape(KindPlainBox, "b", 0, 0, 100, 100, 1)

	got, ok := Pick([]Shape{a, b}, Vec2{50, 50}, PickBody)
	if !ok || got.ID() != "b" {
		t.Errorf("Pick = (%q, %v), want b", got.ID(), ok)
	}
	got, _ = Pick([]Shape{b, a}, Vec2{50, 50}, PickBody)
	if got.ID() != "a" {
		t.Errorf("reversed Pick = %q, want a", got.ID())
	}
}

func TestPickMiss(t *testing.T) {
	shapes := []Shape{NewShape(KindPlainBox, "a", 0, 0, 10, 10, 1)}
	if _, ok := Pick(shapes, Vec2{50, 50}, PickWithHandles); ok {
		t.Error("Pick hit on the background")
	}
	if _, ok := Pick(nil, Vec2{0, 0}, PickBody); ok {
		t.Error("Pick hit in an empty collection")
	}
}

func TestPickModeHandles(t *testing.T) {
	s := NewShape(KindPlainBox, "a", 0, 0, 100, 100, 1)
	p := Vec2{104, 100}
	if _, ok := Pick([]Shape{s}, p, PickBody); ok {
		t.Error("PickBody matched a handle-only point")
	}
	if got, ok := Pick([]Shape{s}, p, PickWithHandles); !ok || got.ID() != "a" {
		t.Error("PickWithHandles missed the handle")
	}
}

func TestPickUsesIndexNotOrder(t *testing.T) {
	// The last-painted shape is underneath in pick terms when its index is lower.
	top := NewShape(KindPlainBox, "top", 0, 0, 100, 100, 5)
	painted := NewShape(KindPlainBox, "painted", 0, 0, 100, 100, 3)
	got, _ := Pick([]Shape{top, painted}, Vec2{10, 10}, PickBody)
	if got.ID() != "top" {
		t.Errorf("Pick = %q, want top", got.ID())
	}
}
