package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"apart horizontally", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"apart vertically", NewRect(0, 0, 10, 10), NewRect(0, 15, 10, 10), false},
		{"touching edge", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"single cell overlap", NewRect(0, 0, 10, 10), NewRect(9, 9, 10, 10), true},
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

func TestRectClip(t *testing.T) {
	bounds := NewRect(0, 0, 80, 24)

	tests := []struct {
		name     string
		r        Rect
		expected Rect
	}{
		{"inside", NewRect(5, 5, 10, 4), NewRect(5, 5, 10, 4)},
		{"left overhang", NewRect(-5, 2, 10, 4), NewRect(0, 2, 5, 4)},
		{"bottom overhang", NewRect(10, 20, 4, 10), NewRect(10, 20, 4, 4)},
		{"fully outside", NewRect(100, 2, 10, 4), Rect{}},
		{"touching right edge", NewRect(80, 2, 10, 4), Rect{}},
		{"empty input", NewRect(5, 5, 0, 4), Rect{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.r.Clip(bounds)
			if got != tc.expected {
				t.Errorf("Clip() = %+v, expected %+v", got, tc.expected)
			}
		})
	}

	if !NewRect(100, 2, 10, 4).Clip(bounds).Empty() {
		t.Error("a rect outside the bounds should clip to empty")
	}
}

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

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestGrayFromShade(t *testing.T) {
	if got := GrayFromShade(255); got != ColorBrightWhite {
		t.Errorf("GrayFromShade(255) = %d, expected bright white", got)
	}
	if got := GrayFromShade(0); got != ColorDimGray {
		t.Errorf("GrayFromShade(0) = %d, expected dim gray", got)
	}

	// Darker shades never map to a brighter ramp entry.
	prev := -1
	for shade := 255; shade >= 0; shade-- {
		idx := -1
		for i, c := range grayRamp {
			if c == GrayFromShade(uint8(shade)) {
				idx = i
			}
		}
		if idx < prev {
			t.Fatalf("shade %d mapped to ramp index %d after %d", shade, idx, prev)
		}
		prev = idx
	}
}
