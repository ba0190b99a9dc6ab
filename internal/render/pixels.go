package render

import (
	"image/color"

	"city-ca/internal/core"
)

// CellPalette maps every CellState to its display colour.
var CellPalette = buildCellPalette()

func buildCellPalette() []color.RGBA {
	palette := make([]color.RGBA, core.NumCellStates)
	palette[core.Empty] = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	palette[core.Resource] = color.RGBA{R: 255, G: 235, B: 4, A: 255}
	palette[core.Road] = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	palette[core.Residential] = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	palette[core.Commercial] = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	palette[core.Mining] = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	return palette
}

// ColorOf returns the palette colour for s.
func ColorOf(s core.CellState) color.RGBA {
	idx := int(s)
	if idx >= len(CellPalette) {
		idx = len(CellPalette) - 1
	}
	return CellPalette[idx]
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		putRGBA(buf, i, palette[idx])
	}
}

// patchPaletteRGBA rewrites only the pixels listed in changes. Changes outside
// a w-wide buffer are skipped.
func patchPaletteRGBA(buf []byte, w int, changes []core.Change, palette []color.RGBA) int {
	if w <= 0 || len(palette) == 0 {
		return 0
	}
	h := len(buf) / 4 / w
	last := len(palette) - 1
	patched := 0
	for _, c := range changes {
		if c.X < 0 || c.X >= w || c.Y < 0 || c.Y >= h {
			continue
		}
		idx := int(c.State)
		if idx > last {
			idx = last
		}
		putRGBA(buf, c.Y*w+c.X, palette[idx])
		patched++
	}
	return patched
}

func putRGBA(buf []byte, i int, col color.RGBA) {
	base := i * 4
	buf[base+0] = col.R
	buf[base+1] = col.G
	buf[base+2] = col.B
	buf[base+3] = col.A
}
