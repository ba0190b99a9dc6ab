package city

import "city-ca/internal/core"

// commercialThreshold is the Road neighbour count above which any non-Road
// cell becomes Commercial.
const commercialThreshold = 4

// RoadNeighbors counts the Road cells among the 8 neighbours of (x, y).
// Neighbours are clamped to the grid like every other access, so an edge cell
// may count itself or a border cell more than once.
func RoadNeighbors(g *core.Grid, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Get(x+dx, y+dy) == core.Road {
				n++
			}
		}
	}
	return n
}

// Evaluate returns the state the rule assigns to (x, y) and whether it
// differs from the current one. Road cells are never changed.
func Evaluate(g *core.Grid, x, y int) (core.CellState, bool) {
	cur := g.Get(x, y)
	if cur == core.Road {
		return cur, false
	}
	n := RoadNeighbors(g, x, y)
	next := cur
	switch {
	case n > commercialThreshold:
		next = core.Commercial
	case n > 0:
		switch cur {
		case core.Empty:
			next = core.Residential
		case core.Resource:
			next = core.Mining
		}
	default:
		if cur.IsDerived() {
			next = core.Empty
		}
	}
	return next, next != cur
}

// FullPass applies the rule to every cell and returns the cells that changed.
// An empty result means the grid was already at its fixed point.
func FullPass(g *core.Grid) []core.Change {
	d := newDirtySet(g)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			d.evaluate(x, y)
		}
	}
	return d.changes()
}

// IncrementalPass applies the rule to the (2r+1)x(2r+1) block centred on
// (x, y) and returns the cells that changed. Only that window is revisited:
// a derived cell outside it stays stale until a later event or FullPass
// reaches it.
func IncrementalPass(g *core.Grid, x, y, radius int) []core.Change {
	d := newDirtySet(g)
	d.window(x, y, radius)
	return d.changes()
}

// dirtySet records the pre-event state of every cell it touches so the
// resulting change list holds each cell once, with its final state, and
// skips cells that ended up where they started.
type dirtySet struct {
	g      *core.Grid
	before map[int]core.CellState
	order  []int
}

func newDirtySet(g *core.Grid) *dirtySet {
	return &dirtySet{g: g, before: map[int]core.CellState{}}
}

func (d *dirtySet) set(x, y int, s core.CellState) {
	idx := d.g.Index(x, y)
	cells := d.g.Cells()
	if _, seen := d.before[idx]; !seen {
		if cells[idx] == s {
			return
		}
		d.before[idx] = cells[idx]
		d.order = append(d.order, idx)
	}
	cells[idx] = s
}

func (d *dirtySet) evaluate(x, y int) {
	if next, changed := Evaluate(d.g, x, y); changed {
		d.set(x, y, next)
	}
}

func (d *dirtySet) window(cx, cy, radius int) {
	if radius < 0 {
		radius = 0
	}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			x, y := d.g.Clamp(cx+dx, cy+dy)
			d.evaluate(x, y)
		}
	}
}

func (d *dirtySet) changes() []core.Change {
	cells := d.g.Cells()
	out := make([]core.Change, 0, len(d.order))
	for _, idx := range d.order {
		if cells[idx] == d.before[idx] {
			continue
		}
		out = append(out, core.Change{
			Point: core.Point{X: idx % d.g.W, Y: idx / d.g.W},
			State: cells[idx],
		})
	}
	return out
}
