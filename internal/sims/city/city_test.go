package city

import (
	"errors"
	"slices"
	"testing"

	"city-ca/internal/core"
)

// emptyWorld builds a world whose terrain is all Empty.
func emptyWorld(t *testing.T, w, h int) *World {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Params.ResourceThreshold = 0
	world, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	return world
}

func assertDisplayInSync(t *testing.T, w *World) {
	t.Helper()
	for i, s := range w.Grid().Cells() {
		if w.Cells()[i] != uint8(s) {
			t.Fatalf("display[%d]=%d but grid holds %s", i, w.Cells()[i], s)
		}
	}
}

func TestNewWithConfigRejectsBadDimensions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	if _, err := NewWithConfig(cfg); !errors.Is(err, core.ErrInvalidDimensions) {
		t.Fatalf("expected ErrInvalidDimensions, got %v", err)
	}
	if _, err := New(8, -2); !errors.Is(err, core.ErrInvalidDimensions) {
		t.Fatalf("expected ErrInvalidDimensions, got %v", err)
	}
}

func TestSingleClickConvertsOnlyNeighbourhood(t *testing.T) {
	w := emptyWorld(t, 10, 10)
	w.PaintBegin(core.Point{X: 2, Y: 2})
	changes := w.PaintDrag(core.Point{X: 2, Y: 2})

	if len(changes) != 9 {
		t.Fatalf("expected 9 changed cells, got %d", len(changes))
	}
	g := w.Grid()
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := core.Empty
			switch {
			case x == 2 && y == 2:
				want = core.Road
			case x >= 1 && x <= 3 && y >= 1 && y <= 3:
				want = core.Residential
			}
			if got := g.Get(x, y); got != want {
				t.Fatalf("cell (%d,%d)=%s, expected %s", x, y, got, want)
			}
		}
	}
	for _, c := range changes {
		if c.X < 1 || c.X > 3 || c.Y < 1 || c.Y > 3 {
			t.Fatalf("change at %v outside the 3x3 block", c.Point)
		}
	}
	assertDisplayInSync(t, w)
}

func TestPaintThenEraseReverts(t *testing.T) {
	w := emptyWorld(t, 12, 12)
	w.Grid().Set(4, 4, core.Resource)
	w.rebuildDisplay()

	w.PaintBegin(core.Point{X: 5, Y: 5})
	w.PaintDrag(core.Point{X: 5, Y: 5})

	g := w.Grid()
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			x, y := 5+dx, 5+dy
			want := core.Residential
			switch {
			case dx == 0 && dy == 0:
				want = core.Road
			case x == 4 && y == 4:
				want = core.Mining
			}
			if got := g.Get(x, y); got != want {
				t.Fatalf("after paint (%d,%d)=%s, expected %s", x, y, got, want)
			}
		}
	}

	changes := w.EraseDrag(core.Point{X: 5, Y: 5})
	if len(changes) != 9 {
		t.Fatalf("erase changed %d cells, expected 9", len(changes))
	}
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			if got := g.Get(x, y); got != core.Empty {
				t.Fatalf("after erase (%d,%d)=%s, expected empty", x, y, got)
			}
		}
	}
	assertDisplayInSync(t, w)
}

func TestPaintDragWithoutBeginPaintsSingleCell(t *testing.T) {
	w := emptyWorld(t, 8, 8)
	w.PaintDrag(core.Point{X: 6, Y: 1})
	if got := w.Grid().Count(core.Road); got != 1 {
		t.Fatalf("expected 1 road, got %d", got)
	}
	if w.Grid().Get(6, 1) != core.Road {
		t.Fatal("drag point should be painted")
	}
}

func TestPaintDragFollowsAnchor(t *testing.T) {
	w := emptyWorld(t, 16, 16)
	w.PaintBegin(core.Point{X: 1, Y: 1})
	w.PaintDrag(core.Point{X: 9, Y: 1})
	w.PaintDrag(core.Point{X: 9, Y: 7})

	g := w.Grid()
	for x := 1; x <= 9; x++ {
		if g.Get(x, 1) != core.Road {
			t.Fatalf("(%d,1) should be road", x)
		}
	}
	for y := 1; y <= 7; y++ {
		if g.Get(9, y) != core.Road {
			t.Fatalf("(9,%d) should be road", y)
		}
	}
	if got := g.Count(core.Road); got != 9+6 {
		t.Fatalf("expected 15 road cells, got %d", got)
	}

	// A fresh begin must not connect to the previous stroke.
	w.PaintBegin(core.Point{X: 3, Y: 12})
	w.PaintDrag(core.Point{X: 3, Y: 12})
	if g.Get(6, 9) == core.Road {
		t.Fatal("new stroke should not bridge from the old anchor")
	}
}

func TestOutOfRangeStrokeClampsToEdge(t *testing.T) {
	w := emptyWorld(t, 8, 8)
	w.PaintBegin(core.Point{X: -50, Y: 3})
	w.PaintDrag(core.Point{X: -1 << 30, Y: 3})
	if w.Grid().Get(0, 3) != core.Road {
		t.Fatal("stroke left of the grid should paint column 0")
	}
	if got := w.Grid().Count(core.Road); got != 1 {
		t.Fatalf("expected 1 road, got %d", got)
	}

	w.EraseDrag(core.Point{X: 0, Y: 1000})
	if w.Grid().Get(0, 7) != core.Empty {
		t.Fatal("erase below the grid should hit the last row")
	}
}

func TestFastDragLeavesNoGaps(t *testing.T) {
	w := emptyWorld(t, 64, 64)
	w.PaintBegin(core.Point{X: 3, Y: 50})
	w.PaintDrag(core.Point{X: 60, Y: 7})
	for _, p := range core.Line(3, 50, 60, 7) {
		if w.Grid().Get(p.X, p.Y) != core.Road {
			t.Fatalf("gap in stroke at %v", p)
		}
	}
}

func TestEraseIsPointOnly(t *testing.T) {
	w := emptyWorld(t, 10, 6)
	w.PaintBegin(core.Point{X: 1, Y: 2})
	w.PaintDrag(core.Point{X: 7, Y: 2})

	w.PaintBegin(core.Point{X: 2, Y: 2})
	w.EraseDrag(core.Point{X: 2, Y: 2})
	w.EraseDrag(core.Point{X: 6, Y: 2})

	g := w.Grid()
	for _, x := range []int{1, 3, 4, 5, 7} {
		if g.Get(x, 2) != core.Road {
			t.Fatalf("(%d,2) should still be road", x)
		}
	}
	for _, x := range []int{2, 6} {
		// Erased cells sit between two roads and are re-derived at once.
		if got := g.Get(x, 2); got != core.Residential {
			t.Fatalf("erased (%d,2)=%s, expected residential", x, got)
		}
	}
}

func TestEraseDerivedCellReportsNothing(t *testing.T) {
	w := emptyWorld(t, 10, 10)
	w.PaintBegin(core.Point{X: 5, Y: 5})
	w.PaintDrag(core.Point{X: 5, Y: 5})

	changes := w.EraseDrag(core.Point{X: 4, Y: 4})
	if len(changes) != 0 {
		t.Fatalf("erasing a re-derived cell reported %v", changes)
	}
	if w.Grid().Get(4, 4) != core.Residential {
		t.Fatal("(4,4) should be residential again")
	}
}

func TestDirtySetIsUniqueAndFinal(t *testing.T) {
	w := emptyWorld(t, 32, 32)
	w.PaintBegin(core.Point{X: 2, Y: 2})
	changes := w.PaintDrag(core.Point{X: 20, Y: 14})
	if len(changes) == 0 {
		t.Fatal("expected changes")
	}
	seen := map[core.Point]bool{}
	for _, c := range changes {
		if seen[c.Point] {
			t.Fatalf("duplicate change at %v", c.Point)
		}
		seen[c.Point] = true
		if got := w.Grid().Get(c.X, c.Y); got != c.State {
			t.Fatalf("change at %v says %s, grid has %s", c.Point, c.State, got)
		}
	}
	if !slices.Equal(changes, w.LastChanges()) {
		t.Fatal("LastChanges should return the latest dirty set")
	}
}

func TestEventsKeepGridAtFixedPoint(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 48
	cfg.Height = 40
	cfg.Seed = 21
	cfg.Params.NoiseScale = 6
	cfg.Params.ResourceThreshold = 0.5
	w, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}

	w.PaintBegin(core.Point{X: 1, Y: 1})
	w.PaintDrag(core.Point{X: 40, Y: 30})
	w.PaintDrag(core.Point{X: 5, Y: 35})
	w.PaintDrag(core.Point{X: 6, Y: 35})
	w.PaintDrag(core.Point{X: 6, Y: 34})
	w.PaintDrag(core.Point{X: 5, Y: 34})
	w.EraseDrag(core.Point{X: 20, Y: 15})
	w.EraseDrag(core.Point{X: 5, Y: 35})
	w.PaintBegin(core.Point{X: 47, Y: 0})
	w.PaintDrag(core.Point{X: 0, Y: 39})

	if changes := FullPass(w.Grid()); len(changes) != 0 {
		t.Fatalf("incremental updates missed %d cells: %v", len(changes), changes)
	}
	if w.Grid().Count(core.Mining) == 0 {
		t.Fatal("expected strokes across resource patches to create mining cells")
	}
	assertDisplayInSync(t, w)
}

func TestWiderRadiusCoversMoreCells(t *testing.T) {
	w := emptyWorld(t, 20, 20)
	w.Grid().Set(12, 10, core.Residential)
	w.rebuildDisplay()

	w.PaintBegin(core.Point{X: 10, Y: 10})
	w.PaintDrag(core.Point{X: 10, Y: 10})
	if w.Grid().Get(12, 10) != core.Residential {
		t.Fatal("radius 1 should not reach (12,10)")
	}

	if !w.SetIntParameter("radius", 2) {
		t.Fatal("radius should be adjustable")
	}
	w.EraseDrag(core.Point{X: 10, Y: 10})
	if w.Grid().Get(12, 10) != core.Empty {
		t.Fatal("radius 2 should revert the stale cell at (12,10)")
	}
}

func TestStepRunsFullPass(t *testing.T) {
	w := emptyWorld(t, 20, 20)
	w.Grid().Set(15, 15, core.Mining)
	w.Grid().Set(3, 3, core.Road)
	w.rebuildDisplay()

	w.Step()
	if w.Grid().Get(15, 15) != core.Empty {
		t.Fatal("Step should revert stranded derived cells")
	}
	if w.Grid().Get(2, 2) != core.Residential {
		t.Fatal("Step should derive cells next to roads")
	}
	if len(w.LastChanges()) != 9 {
		t.Fatalf("expected 9 changes, got %d", len(w.LastChanges()))
	}
	assertDisplayInSync(t, w)
}

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 40
	cfg.Height = 30
	cfg.Seed = 99
	cfg.Params.NoiseScale = 5
	w, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	initial := append([]uint8(nil), w.Cells()...)
	initialNoise := append([]float32(nil), w.NoiseField()...)
	if w.Grid().Count(core.Resource) == 0 {
		t.Fatal("expected some resource cells")
	}

	w.PaintBegin(core.Point{X: 0, Y: 0})
	w.PaintDrag(core.Point{X: 39, Y: 29})
	w.Reset(0)

	if !slices.Equal(initial, w.Cells()) {
		t.Fatal("Reset with config seed not deterministic")
	}
	if !slices.Equal(initialNoise, w.NoiseField()) {
		t.Fatal("noise field not rebuilt deterministically")
	}
	if w.LastChanges() != nil {
		t.Fatal("Reset should clear the last dirty set")
	}

	w.Reset(777)
	if slices.Equal(initial, w.Cells()) {
		t.Fatal("different seeds should produce different terrain")
	}
	if w.Config().Seed != 777 {
		t.Fatalf("expected seed 777 to be remembered, got %d", w.Config().Seed)
	}
	assertDisplayInSync(t, w)

	// The stroke anchor is gone: a drag paints only its own cell.
	w.PaintDrag(core.Point{X: 20, Y: 20})
	if got := w.Grid().Count(core.Road); got != 1 {
		t.Fatalf("expected a single road after reset, got %d", got)
	}
}

func TestSnapshotAndCounts(t *testing.T) {
	w := emptyWorld(t, 6, 4)
	w.PaintBegin(core.Point{X: 0, Y: 0})
	w.PaintDrag(core.Point{X: 5, Y: 0})

	snap := w.Snapshot()
	if len(snap) != 24 {
		t.Fatalf("snapshot has %d cells, expected 24", len(snap))
	}
	for _, c := range snap {
		if w.Grid().Get(c.X, c.Y) != c.State {
			t.Fatalf("snapshot disagrees with grid at %v", c.Point)
		}
	}

	counts := w.Counts()
	total := 0
	for _, n := range counts {
		total += n
	}
	if total != 24 {
		t.Fatalf("counts sum to %d, expected 24", total)
	}
	if counts[core.Road] != 6 || counts[core.Residential] != 6 {
		t.Fatalf("unexpected counts %v", counts)
	}
}

func TestRegistryBuildsCity(t *testing.T) {
	factory, ok := core.Sims()["city"]
	if !ok {
		t.Fatal("city sim not registered")
	}
	sim, err := factory(map[string]string{"w": "12", "h": "8"})
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	if sim.Size() != (core.Size{W: 12, H: 8}) {
		t.Fatalf("unexpected size %v", sim.Size())
	}
	if _, ok := sim.(core.Painter); !ok {
		t.Fatal("city sim should accept strokes")
	}
}
