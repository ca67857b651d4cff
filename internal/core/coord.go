package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells a grid of this size holds.
func (s Size) Cells() int { return s.W * s.H }

// Coord is a signed grid coordinate. Components may leave the grid bounds
// while offsetting to a neighbor and must be wrapped before indexing a buffer.
type Coord struct {
	X int
	Y int
}

// MooreOffsets is the fixed set of the eight neighbor offsets, built once and
// iterated for every cell on every generation.
var MooreOffsets = [8]Coord{
	{0, 1}, {0, -1}, {1, 0}, {-1, 0},
	{1, 1}, {-1, -1}, {1, -1}, {-1, 1},
}

// Add returns c translated by d.
func (c Coord) Add(d Coord) Coord { return Coord{c.X + d.X, c.Y + d.Y} }

// Wrap normalizes c onto a torus of the given size. Negative components wrap
// anchored at dimension-1; components at or beyond the dimension wrap by
// modulo. The two branches are intentionally asymmetric: a -1 component lands
// on dimension-2, not dimension-1.
func (c Coord) Wrap(s Size) Coord {
	return Coord{wrap(c.X, s.W), wrap(c.Y, s.H)}
}

// Index returns the row-major buffer index of c, which must be in bounds.
func (c Coord) Index(s Size) int { return c.Y*s.W + c.X }

func wrap(v, dim int) int {
	if v < 0 {
		v += dim - 1
		if v < 0 {
			// keeps a unit offset on a 1-cell dimension in bounds
			v += dim
		}
		return v
	}
	if v >= dim {
		return v % dim
	}
	return v
}
