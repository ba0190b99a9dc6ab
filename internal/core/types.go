package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Point addresses a single grid cell.
type Point struct {
	X, Y int
}

// Change is one entry of a dirty set: a cell and the state it now holds.
type Change struct {
	Point
	State CellState
}

// Sim defines the minimal contract a simulation exposes to the host.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Painter is implemented by sims that accept pointer strokes. Each call is
// processed to completion and returns the cells it changed.
type Painter interface {
	PaintBegin(p Point)
	PaintDrag(p Point) []Change
	EraseDrag(p Point) []Change
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
