package core

import "testing"

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewRectF(0, 0, 50, 50),
			b:        NewRectF(25, 25, 50, 50),
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        NewRectF(0, 0, 50, 50),
			b:        NewRectF(60, 0, 50, 50),
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        NewRectF(10, 550, 50, 50),
			b:        NewRectF(10, 400, 50, 50),
			expected: false,
		},
		{
			name:     "touching edges do not overlap",
			a:        NewRectF(0, 0, 50, 50),
			b:        NewRectF(50, 0, 50, 50),
			expected: false,
		},
		{
			name:     "fractional overlap",
			a:        NewRectF(10, 550, 50, 50),
			b:        NewRectF(59.8, 550, 50, 50),
			expected: true,
		},
		{
			name:     "contained box",
			a:        NewRectF(0, 0, 50, 50),
			b:        NewRectF(10, 10, 30, 30),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)
	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	f := NewRectF(850, 520, 30, 30)
	if f.Right() != 880 || f.Bottom() != 550 {
		t.Errorf("RectF edges = (%v, %v), expected (880, 550)", f.Right(), f.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 1, 10, 5},
		{0, 1, 10, 1},
		{15, 1, 10, 10},
		{1, 1, 10, 1},
		{10, 1, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestParseColor(t *testing.T) {
	if c, ok := ParseColor(" Yellow "); !ok || c != ColorYellow {
		t.Errorf("ParseColor(Yellow) = %v, %v", c, ok)
	}
	if _, ok := ParseColor("chartreuse"); ok {
		t.Error("ParseColor should reject unknown names")
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() {
		t.Error("zero frame should be empty")
	}

	f.Set(ActionNone)
	if !f.Empty() {
		t.Error("ActionNone should not be recorded")
	}

	f.Set(ActionJump)
	f.Set(ActionTogglePause)
	if !f.Has(ActionJump) || !f.Has(ActionTogglePause) {
		t.Error("frame should report set actions")
	}
	if f.Has(ActionFall) {
		t.Error("frame should not report unset actions")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear should remove all actions")
	}
}
