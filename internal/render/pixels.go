package render

import "image/color"

// fillCellsRGBA expands binary cell values into RGBA pixels, one pixel per
// cell: the off color for dead cells, the on color for live ones.
func fillCellsRGBA(buf []byte, cells []uint8, on, off color.Color) {
	var px [2][4]byte
	for i, c := range []color.Color{off, on} {
		r, g, b, a := c.RGBA()
		px[i] = [4]byte{byte(r >> 8), byte(g >> 8), byte(b >> 8), byte(a >> 8)}
	}
	for i, c := range cells {
		p := px[0]
		if c != 0 {
			p = px[1]
		}
		copy(buf[i*4:i*4+4], p[:])
	}
}
