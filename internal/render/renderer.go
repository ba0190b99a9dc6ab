//go:build ebiten

package render

import (
	"city-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps an RGBA copy of the grid and uploads it only when cells
// have changed.
type GridPainter struct {
	w, h  int
	img   *ebiten.Image
	buf   []byte
	dirty bool
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Load recolours every pixel from a full state buffer.
func (gp *GridPainter) Load(cells []uint8) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, cells, CellPalette)
	gp.dirty = true
}

// Patch recolours only the changed cells.
func (gp *GridPainter) Patch(changes []core.Change) {
	if patchPaletteRGBA(gp.buf, gp.w, changes, CellPalette) > 0 {
		gp.dirty = true
	}
}

// Draw uploads pending pixels and draws the grid scaled onto dst.
func (gp *GridPainter) Draw(dst *ebiten.Image, scale int) {
	if gp.dirty {
		gp.img.WritePixels(gp.buf)
		gp.dirty = false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
