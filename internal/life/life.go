// Package life implements Conway's Game of Life on a fixed-size toroidal grid.
package life

import (
	"fmt"

	"github.com/aquilax/go-perlin"

	"github.com/smeesters/conway-life/internal/core"
)

// Perlin parameters for SeedNoise. The frequency divisor spreads the noise
// field so colonies span several cells.
const (
	noiseAlpha   = 2
	noiseBeta    = 2
	noiseOctaves = 3
	noiseFreq    = 10.0
)

// Engine owns two equally sized cell buffers and advances one generation per
// call. Cells are stored row-major, one byte per cell, 0 dead and 1 alive.
// Both buffers always hold fully computed generations between calls.
type Engine struct {
	size core.Size
	cur  []uint8
	nxt  []uint8
	rng  *core.RNG
	seed int64
}

// New allocates a zero-filled engine for a w by h grid. Both dimensions must
// be at least 1.
func New(w, h int, seed int64) (*Engine, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("life: grid must be at least 1x1, got %dx%d", w, h)
	}
	s := core.Size{W: w, H: h}
	return &Engine{
		size: s,
		cur:  make([]uint8, s.Cells()),
		nxt:  make([]uint8, s.Cells()),
		rng:  core.NewRNG(seed),
		seed: seed,
	}, nil
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "life" }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return e.size }

// Cells exposes the most recently computed generation in row-major order.
// Callers must treat the slice as read-only and must not retain it across
// Advance calls, since the backing buffer changes roles on every generation.
func (e *Engine) Cells() []uint8 { return e.cur }

// Randomize reseeds every cell independently: a uniform draw in
// [0, sparseness] that lands on zero makes the cell alive, for an expected
// live fraction of 1/(sparseness+1). The same values go into both buffers so
// the state is consistent before the first Advance. Calling it again restarts
// the simulation from a fresh random pattern.
func (e *Engine) Randomize(sparseness int) {
	core.FillSparse(e.rng, e.cur, sparseness)
	copy(e.nxt, e.cur)
}

// SeedNoise reseeds both buffers from a 2D Perlin noise field: cells whose
// sample exceeds threshold start alive, which produces clustered colonies
// instead of the uniform scatter of Randomize. Each call shifts the sampling
// window so repeated reseeds yield different patterns.
func (e *Engine) SeedNoise(threshold float64) {
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, e.seed)
	ox := e.rng.Float64() * 1e3
	oy := e.rng.Float64() * 1e3
	for y := 0; y < e.size.H; y++ {
		for x := 0; x < e.size.W; x++ {
			v := uint8(0)
			if p.Noise2D(ox+float64(x)/noiseFreq, oy+float64(y)/noiseFreq) > threshold {
				v = 1
			}
			e.cur[y*e.size.W+x] = v
		}
	}
	copy(e.nxt, e.cur)
}

// Advance computes one generation. Every cell of the write buffer is derived
// from the read buffer alone, so the result is independent of visit order;
// the buffers swap roles once the pass is complete.
func (e *Engine) Advance() {
	s := e.size
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			c := core.Coord{X: x, Y: y}
			live := 0
			for _, d := range core.MooreOffsets {
				n := c.Add(d).Wrap(s)
				live += int(e.cur[n.Index(s)])
			}
			idx := c.Index(s)
			alive := e.cur[idx] == 1
			if (alive && (live == 2 || live == 3)) || (!alive && live == 3) {
				e.nxt[idx] = 1
			} else {
				e.nxt[idx] = 0
			}
		}
	}
	e.cur, e.nxt = e.nxt, e.cur
}
