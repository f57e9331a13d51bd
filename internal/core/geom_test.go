package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 80, 24)
	inner := outer.Centered(20, 6)

	if inner.X != 30 || inner.Y != 9 {
		t.Errorf("Centered() origin = (%d, %d), expected (30, 9)", inner.X, inner.Y)
	}
	if inner.Right() != 50 || inner.Bottom() != 15 {
		t.Errorf("Centered() edges = (%d, %d), expected (50, 15)", inner.Right(), inner.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestInputFrameCounts(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionTap) {
		t.Error("empty frame should not have actions")
	}

	f.Set(ActionTap)
	f.Set(ActionTap)
	f.Set(ActionNone)

	if f.Count(ActionTap) != 2 {
		t.Errorf("Count(Tap) = %d, expected 2", f.Count(ActionTap))
	}
	if f.Has(ActionNone) {
		t.Error("ActionNone should never be recorded")
	}

	f.Clear()
	if f.Has(ActionTap) {
		t.Error("Clear should remove all actions")
	}
}
