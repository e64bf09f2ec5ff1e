package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectScale(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		cols     int
		rows     int
		expected Rect
	}{
		{"whole world", NewRect(0, 0, 600, 600), 60, 30, NewRect(0, 0, 60, 30)},
		{"road band", NewRect(150, 150, 300, 300), 60, 30, NewRect(15, 7, 30, 15)},
		{"vehicle never vanishes", NewRect(290, 290, 20, 20), 30, 15, NewRect(14, 7, 1, 1)},
		{"off-screen stays off-screen", NewRect(-30, 290, 20, 20), 60, 30, NewRect(-3, 14, 2, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.r.Scale(600, 600, tc.cols, tc.rows)
			if got != tc.expected {
				t.Errorf("Scale() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}
