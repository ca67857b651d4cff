package core

import "testing"

func TestWrapStaysInBounds(t *testing.T) {
	for w := 1; w <= 6; w++ {
		for h := 1; h <= 6; h++ {
			s := Size{W: w, H: h}
			max := w
			if h > max {
				max = h
			}
			for x := -1; x <= max; x++ {
				for y := -1; y <= max; y++ {
					n := Coord{X: x, Y: y}.Wrap(s)
					if n.X < 0 || n.X >= w || n.Y < 0 || n.Y >= h {
						t.Fatalf("Wrap(%d,%d) on %dx%d = (%d,%d), out of bounds", x, y, w, h, n.X, n.Y)
					}
				}
			}
		}
	}
}

func TestWrapConvention(t *testing.T) {
	cases := []struct {
		v, dim, want int
	}{
		{0, 5, 0},
		{4, 5, 4},
		{5, 5, 0},
		{6, 5, 1},
		{-1, 5, 3}, // negative wrap anchors at dim-1, not dim
		{-1, 2, 0},
		{2, 2, 0},
		{-1, 1, 0},
		{1, 1, 0},
	}
	for _, c := range cases {
		if got := wrap(c.v, c.dim); got != c.want {
			t.Errorf("wrap(%d, %d) = %d, want %d", c.v, c.dim, got, c.want)
		}
	}
}

func TestMooreOffsets(t *testing.T) {
	if len(MooreOffsets) != 8 {
		t.Fatalf("got %d offsets, want 8", len(MooreOffsets))
	}
	seen := map[Coord]bool{}
	for _, d := range MooreOffsets {
		if d.X < -1 || d.X > 1 || d.Y < -1 || d.Y > 1 {
			t.Errorf("offset %+v outside the Moore neighborhood", d)
		}
		if d == (Coord{}) {
			t.Error("offset set contains the zero offset")
		}
		if seen[d] {
			t.Errorf("duplicate offset %+v", d)
		}
		seen[d] = true
	}
}
