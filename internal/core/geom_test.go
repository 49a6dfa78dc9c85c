package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping footprints",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(10, 10, 20, 20),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(30, 0, 20, 20),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(0, 30, 20, 20),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(20, 0, 20, 20),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 800, 600),
			b:        NewRect(5, 5, 20, 20),
			expected: true,
		},
		{
			name:     "single unit overlap",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(19, 19, 20, 20),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	arena := NewRect(0, 0, 800, 600)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 400, 300, true},
		{"origin", 0, 0, true},
		{"last column", 799, 10, true},
		{"right edge (exclusive)", 800, 10, false},
		{"bottom edge (exclusive)", 10, 600, false},
		{"left of arena", -1, 10, false},
		{"above arena", 10, -2, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := arena.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
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
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(2) != 2 {
		t.Error("Abs(2) should be 2")
	}
	if Abs(-2) != 2 {
		t.Error("Abs(-2) should be 2")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		v, from, to, expected int
	}{
		{0, 800, 78, 0},
		{400, 800, 78, 39},
		{799, 800, 78, 77},
		{20, 800, 78, 1},
		{10, 0, 78, 0}, // degenerate source range
	}

	for _, tc := range tests {
		result := Scale(tc.v, tc.from, tc.to)
		if result != tc.expected {
			t.Errorf("Scale(%d, %d, %d) = %d, expected %d", tc.v, tc.from, tc.to, result, tc.expected)
		}
	}
}
