package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 10, 5)

	if r.Right() != 12 {
		t.Errorf("Right() = %d, expected 12", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom() = %d, expected 8", r.Bottom())
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 4, 4)

	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{3, 3, true},
		{4, 4, false}, // right/bottom edges are exclusive
		{-1, 0, false},
		{2, 4, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.x, c.y); got != c.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Error("Clamp should pass through in-range values")
	}
	if Clamp(-3, 0, 10) != 0 {
		t.Error("Clamp should raise values below min")
	}
	if Clamp(15, 0, 10) != 10 {
		t.Error("Clamp should lower values above max")
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 7) != 3 || Min(7, 3) != 3 {
		t.Error("Min is wrong")
	}
	if Max(3, 7) != 7 || Max(7, 3) != 7 {
		t.Error("Max is wrong")
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionPause) {
		t.Error("New frame should have no actions")
	}

	f.Set(ActionPause)
	f.Set(ActionSpeedUp)
	if !f.Has(ActionPause) || !f.Has(ActionSpeedUp) {
		t.Error("Set actions should be visible")
	}
	if f.Has(ActionReseed) {
		t.Error("Unset action should not be visible")
	}

	f.Clear()
	if f.Has(ActionPause) || f.Has(ActionSpeedUp) {
		t.Error("Clear should remove all actions")
	}
}
