package city

import (
	"fmt"

	"city-ca/internal/core"
)

var (
	_ core.Sim     = (*World)(nil)
	_ core.Painter = (*World)(nil)
)

// World owns the city grid and turns pointer strokes into grid updates. All
// methods run to completion before returning and must be called from one
// goroutine at a time.
type World struct {
	cfg  Config
	salt int64

	grid    *core.Grid
	display []uint8
	noise   []float32

	anchor    core.Point
	hasAnchor bool

	last []core.Change
}

// New returns a world with the provided dimensions using default settings.
func New(w, h int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig builds and seeds a world. It fails with
// core.ErrInvalidDimensions when either dimension is not positive.
func NewWithConfig(cfg Config) (*World, error) {
	cfg.Params.Radius = clampRadius(cfg.Params.Radius)
	salt := core.NoiseSalt(cfg.Seed)
	grid, err := core.NewGrid(cfg.Width, cfg.Height, seedFor(cfg.Params, salt))
	if err != nil {
		return nil, fmt.Errorf("city world: %w", err)
	}
	total := cfg.Width * cfg.Height
	w := &World{
		cfg:     cfg,
		salt:    salt,
		grid:    grid,
		display: make([]uint8, total),
		noise:   make([]float32, total),
	}
	w.rebuildDisplay()
	w.rebuildNoise()
	return w, nil
}

func seedFor(p Params, salt int64) core.SeedFunc {
	return core.NoiseSeed(p.NoiseScale, p.ResourceThreshold, salt)
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "city" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return w.grid.Size() }

// Cells exposes the display buffer, one CellState byte per cell.
func (w *World) Cells() []uint8 { return w.display }

// Grid exposes the underlying state grid.
func (w *World) Grid() *core.Grid { return w.grid }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// NoiseField exposes the terrain noise sample of every cell.
func (w *World) NoiseField() []float32 { return w.noise }

// LastChanges returns the dirty set produced by the most recent update.
func (w *World) LastChanges() []core.Change { return w.last }

// Snapshot lists every cell with its current state, for an initial upload.
func (w *World) Snapshot() []core.Change {
	out := make([]core.Change, 0, len(w.grid.Cells()))
	for i, s := range w.grid.Cells() {
		out = append(out, core.Change{Point: core.Point{X: i % w.grid.W, Y: i / w.grid.W}, State: s})
	}
	return out
}

// Counts returns the number of cells in each state.
func (w *World) Counts() map[core.CellState]int {
	counts := make(map[core.CellState]int, core.NumCellStates)
	for _, s := range w.grid.Cells() {
		counts[s]++
	}
	return counts
}

// Reset reseeds the terrain and forgets any stroke in progress. A zero seed
// reuses the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.cfg.Seed = effective
	w.salt = core.NoiseSalt(effective)
	w.grid.Reseed(seedFor(w.cfg.Params, w.salt))
	w.hasAnchor = false
	w.last = nil
	w.rebuildDisplay()
	w.rebuildNoise()
}

// Step re-evaluates the whole grid. Incremental passes only cover the window
// around each event, so Step is how stale cells elsewhere get corrected.
func (w *World) Step() {
	w.commit(FullPass(w.grid))
}

// PaintBegin records p as the anchor of a new stroke.
func (w *World) PaintBegin(p core.Point) {
	w.anchor = w.clamp(p)
	w.hasAnchor = true
}

// PaintDrag paints Road along the line from the anchor to p, re-evaluates
// the window around every painted cell and moves the anchor to p.
func (w *World) PaintDrag(p core.Point) []core.Change {
	p = w.clamp(p)
	from := p
	if w.hasAnchor {
		from = w.anchor
	}
	line := core.Line(from.X, from.Y, p.X, p.Y)

	d := newDirtySet(w.grid)
	for _, pt := range line {
		d.set(pt.X, pt.Y, core.Road)
	}
	for _, pt := range line {
		d.window(pt.X, pt.Y, w.cfg.Params.Radius)
	}

	w.anchor = p
	w.hasAnchor = true
	return w.commit(d.changes())
}

// EraseDrag clears the single cell at p and re-evaluates the window around it.
func (w *World) EraseDrag(p core.Point) []core.Change {
	p = w.clamp(p)
	d := newDirtySet(w.grid)
	d.set(p.X, p.Y, core.Empty)
	d.window(p.X, p.Y, w.cfg.Params.Radius)
	return w.commit(d.changes())
}

// clamp pins p to the grid so strokes from stray coordinates stay short.
func (w *World) clamp(p core.Point) core.Point {
	x, y := w.grid.Clamp(p.X, p.Y)
	return core.Point{X: x, Y: y}
}

func (w *World) commit(changes []core.Change) []core.Change {
	for _, c := range changes {
		w.display[w.grid.Index(c.X, c.Y)] = uint8(c.State)
	}
	w.last = changes
	return changes
}

func (w *World) rebuildDisplay() {
	for i, s := range w.grid.Cells() {
		w.display[i] = uint8(s)
	}
}

func (w *World) rebuildNoise() {
	for y := 0; y < w.grid.H; y++ {
		for x := 0; x < w.grid.W; x++ {
			w.noise[y*w.grid.W+x] = float32(core.NoiseSample(x, y, w.cfg.Params.NoiseScale, w.salt))
		}
	}
}

func clampRadius(r int) int {
	if r < 1 {
		return 1
	}
	if r > MaxRadius {
		return MaxRadius
	}
	return r
}

func init() {
	core.Register("city", func(cfg map[string]string) (core.Sim, error) {
		w, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return w, nil
	})
}
