package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 5, 5)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{10, 10, true},  // Top-left corner
		{14, 14, true},  // Bottom-right corner (inside)
		{15, 15, false}, // Just outside
		{12, 12, true},  // Center
		{9, 10, false},  // Left of rect
		{10, 9, false},  // Above rect
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(3, 4, 10, 6)

	if r.Right() != 13 {
		t.Errorf("Right() = %d, expected 13", r.Right())
	}
	if r.Bottom() != 10 {
		t.Errorf("Bottom() = %d, expected 10", r.Bottom())
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 22, 22).Inset(1)
	if r != NewRect(1, 1, 20, 20) {
		t.Errorf("Inset(1) = %+v", r)
	}

	tiny := NewRect(5, 5, 1, 1).Inset(2)
	if tiny.W != 0 || tiny.H != 0 {
		t.Errorf("Inset past zero should clamp, got %+v", tiny)
	}
}

func TestCenteredIn(t *testing.T) {
	outer := NewRect(0, 0, 80, 24)

	r := CenteredIn(outer, 40, 22)
	if r.X != 20 || r.Y != 1 {
		t.Errorf("CenteredIn = %+v, expected origin (20, 1)", r)
	}

	big := CenteredIn(outer, 100, 30)
	if big.X != 0 || big.Y != 0 {
		t.Errorf("oversized rect should pin to the corner, got %+v", big)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.lo, tt.hi, got, tt.expected)
		}
	}
}
