package core

import (
	"math"
	"testing"
)

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{"overlapping", NewRectF(0, 0, 10, 10), NewRectF(5, 5, 10, 10), true},
		{"apart horizontally", NewRectF(0, 0, 10, 10), NewRectF(15, 0, 10, 10), false},
		{"apart vertically", NewRectF(0, 0, 10, 10), NewRectF(0, 15, 10, 10), false},
		{"touching right edge", NewRectF(0, 0, 10, 10), NewRectF(10, 0, 10, 10), false},
		{"touching bottom edge", NewRectF(0, 0, 10, 10), NewRectF(0, 10, 10, 10), false},
		{"contained", NewRectF(0, 0, 20, 20), NewRectF(5, 5, 5, 5), true},
		{"fractional overlap", NewRectF(0, 0, 10, 10), NewRectF(9.5, 9.5, 10, 10), true},
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

func TestRectFEdges(t *testing.T) {
	r := NewRectF(5, 10, 20, 16)

	if r.Right() != 25 || r.Bottom() != 26 {
		t.Errorf("Right/Bottom = %v/%v, expected 25/26", r.Right(), r.Bottom())
	}
	if c := r.Center(); c != V(15, 18) {
		t.Errorf("Center() = %v, expected (15, 18)", c)
	}

	r.SetRight(100)
	if r.X != 80 {
		t.Errorf("SetRight(100) left = %v, expected 80", r.X)
	}
	r.SetBottom(50)
	if r.Y != 34 {
		t.Errorf("SetBottom(50) top = %v, expected 34", r.Y)
	}
	r.SetCenter(V(0, 0))
	if r.X != -10 || r.Y != -8 {
		t.Errorf("SetCenter(0,0) = (%v, %v), expected (-10, -8)", r.X, r.Y)
	}
}

func TestVec2(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	if got := a.Add(b); got != V(4, 2) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != V(2, 6) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(0.5); got != V(1.5, 2) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len = %v, expected 5", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot = %v, expected -5", got)
	}
	n := a.Normalize()
	if math.Abs(n.Len()-1) > 1e-9 {
		t.Errorf("Normalize length = %v, expected 1", n.Len())
	}
	if z := (Vec2{}).Normalize(); z != (Vec2{}) {
		t.Errorf("zero Normalize = %v, expected zero", z)
	}

	a.Set(7, 8)
	if a != V(7, 8) {
		t.Errorf("Set = %v", a)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
