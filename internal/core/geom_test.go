package core

import "testing"

func TestCollide(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Point
		margin   float64
		expected bool
	}{
		{
			name:     "same position",
			a:        Pt(100, 100),
			b:        Pt(100, 100),
			margin:   20,
			expected: true,
		},
		{
			name:     "inside horizontal margin",
			a:        Pt(100, 100),
			b:        Pt(119, 100),
			margin:   20,
			expected: true,
		},
		{
			name:     "exactly at margin (strict)",
			a:        Pt(100, 100),
			b:        Pt(120, 100),
			margin:   20,
			expected: false,
		},
		{
			name:     "exactly at vertical margin (strict)",
			a:        Pt(100, 100),
			b:        Pt(100, 80),
			margin:   20,
			expected: false,
		},
		{
			name:     "diagonal inside both axes",
			a:        Pt(100, 100),
			b:        Pt(85, 115),
			margin:   20,
			expected: true,
		},
		{
			name:     "close in x, far in y",
			a:        Pt(100, 100),
			b:        Pt(101, 200),
			margin:   20,
			expected: false,
		},
		{
			name:     "small shot margin",
			a:        Pt(10, 10),
			b:        Pt(14, 6),
			margin:   5,
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Collide(tc.a, tc.b, tc.margin)
			if result != tc.expected {
				t.Errorf("Collide() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := Collide(tc.b, tc.a, tc.margin)
			if resultReverse != tc.expected {
				t.Errorf("Collide() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestCollideSymmetryGrid(t *testing.T) {
	for ax := -60.0; ax <= 60; ax += 7.5 {
		for ay := -60.0; ay <= 60; ay += 7.5 {
			a := Pt(ax, ay)
			b := Pt(ay/2, ax*1.5)
			if Collide(a, b, 20) != Collide(b, a, 20) {
				t.Fatalf("Collide(%v, %v) is not symmetric", a, b)
			}
		}
	}
}

func TestVisible(t *testing.T) {
	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"center", Pt(400, 300), true},
		{"spawn row above canvas", Pt(400, -30), true},
		{"parked shot", Pt(-100, -100), false},
		{"left edge of margin (exclusive)", Pt(-40, 10), false},
		{"just inside left margin", Pt(-39, 10), true},
		{"below bottom margin", Pt(10, 640), false},
		{"just inside bottom margin", Pt(10, 639), true},
		{"past right margin", Pt(841, 10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Visible(tc.p, 800, 600, 40); got != tc.expected {
				t.Errorf("Visible(%v) = %v, expected %v", tc.p, got, tc.expected)
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

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
