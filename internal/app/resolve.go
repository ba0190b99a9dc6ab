package app

import "city-ca/internal/core"

// ResolveCell maps a cursor position in screen pixels to the grid cell under
// it. It reports false when the cursor is outside the grid viewport, such as
// over the HUD panel.
func ResolveCell(cursorX, cursorY, scale int, size core.Size) (core.Point, bool) {
	if scale <= 0 {
		scale = 1
	}
	if cursorX < 0 || cursorY < 0 {
		return core.Point{}, false
	}
	x := cursorX / scale
	y := cursorY / scale
	if x >= size.W || y >= size.H {
		return core.Point{}, false
	}
	return core.Point{X: x, Y: y}, true
}
