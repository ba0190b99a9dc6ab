package core

// VisitLine calls fn for every cell on the 8-connected line from (x0, y0) to
// (x1, y1), both endpoints included, in order. It is Bresenham's algorithm in
// the longest/shortest axis form, so it covers every octant with integer
// arithmetic only.
func VisitLine(x0, y0, x1, y1 int, fn func(x, y int)) {
	w := x1 - x0
	h := y1 - y0
	dx1, dy1 := sign(w), sign(h)
	dx2, dy2 := sign(w), 0

	longest := absInt(w)
	shortest := absInt(h)
	if longest <= shortest {
		longest, shortest = shortest, longest
		dx2, dy2 = 0, sign(h)
	}

	x, y := x0, y0
	numerator := longest >> 1
	for i := 0; i <= longest; i++ {
		fn(x, y)
		numerator += shortest
		if numerator >= longest {
			numerator -= longest
			x += dx1
			y += dy1
		} else {
			x += dx2
			y += dy2
		}
	}
}

// Line returns the cells VisitLine would visit.
func Line(x0, y0, x1, y1 int) []Point {
	n := max(absInt(x1-x0), absInt(y1-y0)) + 1
	pts := make([]Point, 0, n)
	VisitLine(x0, y0, x1, y1, func(x, y int) {
		pts = append(pts, Point{X: x, Y: y})
	})
	return pts
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
