//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter owns a single cell-resolution image that is stretched onto the
// screen each frame, one image pixel per grid cell.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{w: w, h: h, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// Blit uploads the provided cells into the painter image and draws it scaled
// by the given per-axis factors.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.Color, scaleX, scaleY float64) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillCellsRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scaleX, scaleY)
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
