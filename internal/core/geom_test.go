package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if r.Right() != 6 {
		t.Errorf("Right() = %d, expected 6", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom() = %d, expected 8", r.Bottom())
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(1, 1, 3, 3)

	if !r.Contains(1, 1) {
		t.Error("top-left corner should be inside")
	}
	if !r.Contains(3, 3) {
		t.Error("(3,3) should be inside")
	}
	if r.Contains(4, 1) {
		t.Error("right edge is exclusive")
	}
	if r.Contains(0, 2) {
		t.Error("(0,2) should be outside")
	}
}

func TestInEllipse(t *testing.T) {
	// Circle of radius 2 centered at (5,5).
	if !InEllipse(5, 5, 5, 5, 2, 2) {
		t.Error("center should be inside")
	}
	if !InEllipse(7, 5, 5, 5, 2, 2) {
		t.Error("point on the boundary should be inside")
	}
	if InEllipse(7, 7, 5, 5, 2, 2) {
		t.Error("corner beyond the boundary should be outside")
	}

	// Flat ellipse: wide in x, narrow in y.
	if !InEllipse(8, 5, 5, 5, 4, 1) {
		t.Error("(8,5) should be inside the 4x1 ellipse")
	}
	if InEllipse(5, 7, 5, 5, 4, 1) {
		t.Error("(5,7) should be outside the 4x1 ellipse")
	}
}

func TestInEllipseDegenerateRadii(t *testing.T) {
	if !InEllipse(5, 5, 5, 5, 0, 2) {
		t.Error("center should be inside even with a zero radius")
	}
	if InEllipse(5, 6, 5, 5, 0, 2) {
		t.Error("only the center is inside a zero-radius ellipse")
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Error("in-range value should pass through")
	}
	if Clamp(-3, 0, 10) != 0 {
		t.Error("below-range value should clamp to min")
	}
	if Clamp(15, 0, 10) != 10 {
		t.Error("above-range value should clamp to max")
	}
}

func TestClampF(t *testing.T) {
	if ClampF(0.5, 0, 1) != 0.5 {
		t.Error("in-range value should pass through")
	}
	if ClampF(-0.1, 0, 1) != 0 {
		t.Error("below-range value should clamp to min")
	}
	if ClampF(1.1, 0, 1) != 1 {
		t.Error("above-range value should clamp to max")
	}
}

func TestAbsMinMax(t *testing.T) {
	if Abs(-7) != 7 || Abs(7) != 7 {
		t.Error("Abs failed")
	}
	if Min(2, 3) != 2 || Min(3, 2) != 2 {
		t.Error("Min failed")
	}
	if Max(2, 3) != 3 || Max(3, 2) != 3 {
		t.Error("Max failed")
	}
}
