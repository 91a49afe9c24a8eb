package types

import "testing"

func TestDirectionToPoint(t *testing.T) {
	for _, d := range []Direction{Up, Right, Down, Left} {
		p := d.ToPoint()
		nonzero := 0
		if p.X != 0 {
			nonzero++
		}
		if p.Y != 0 {
			nonzero++
		}
		if nonzero != 1 {
			t.Errorf("%v delta = %v, want exactly one nonzero axis", d, p)
		}
	}
	if None.ToPoint() != (Point{}) {
		t.Error("None must map to the zero delta")
	}
	if Direction(42).ToPoint() != (Point{}) {
		t.Error("unknown directions must map to the zero delta")
	}
}

func TestDirectionOpposite(t *testing.T) {
	cases := map[Direction]Direction{
		Up:    Down,
		Down:  Up,
		Left:  Right,
		Right: Left,
	}
	for d, want := range cases {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", d, got, want)
		}
	}
}

func TestGridWrap(t *testing.T) {
	g := Grid{Width: 20, Height: 20}

	cases := []struct {
		in, want Point
	}{
		{Point{X: 20, Y: 10}, Point{X: 0, Y: 10}},
		{Point{X: -1, Y: 10}, Point{X: 19, Y: 10}},
		{Point{X: 10, Y: 20}, Point{X: 10, Y: 0}},
		{Point{X: 10, Y: -1}, Point{X: 10, Y: 19}},
		{Point{X: 5, Y: 5}, Point{X: 5, Y: 5}},
		{Point{X: -21, Y: 41}, Point{X: 19, Y: 1}},
	}
	for _, c := range cases {
		if got := g.Wrap(c.in); got != c.want {
			t.Errorf("Wrap(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestGridContains(t *testing.T) {
	g := Grid{Width: 20, Height: 20}

	if !g.Contains(Point{X: 0, Y: 0}) || !g.Contains(Point{X: 19, Y: 19}) {
		t.Error("corners must be inside the grid")
	}
	for _, p := range []Point{{X: -1, Y: 0}, {X: 20, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 20}} {
		if g.Contains(p) {
			t.Errorf("Contains(%v) = true, want false", p)
		}
	}
}
