//go:build ebiten

package app

import (
	"fmt"
	"log"
	"time"

	"city-ca/internal/core"
	"city-ca/internal/render"
	"city-ca/internal/ui"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type dirtyReporter interface {
	LastChanges() []core.Change
}

type gridProvider interface {
	Grid() *core.Grid
}

// Game adapts a core simulation to the ebiten.Game interface. Pointer input is
// resolved to grid cells and handed to the sim one event at a time.
type Game struct {
	sim     core.Sim
	brush   core.Painter
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	settle  *core.FixedStep

	scale    int
	hudWidth int
	settling bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	hudWidth := max(cfg.HUDWidth, 0)
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(sim, hudWidth),
		overlay:  ui.NewOverlay(sim, scale),
		settle:   core.NewFixedStep(cfg.SettleTPS),
		scale:    scale,
		hudWidth: hudWidth,
		seed:     cfg.Seed,
	}
	if brush, ok := sim.(core.Painter); ok {
		g.brush = brush
	}
	g.painter.Load(sim.Cells())
	g.refreshStatus()
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.painter.Load(g.sim.Cells())
	g.overlay.Clear()
	g.refreshStatus()
}

// Update handles per-frame input and applies edits to the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && g.settle.Enabled() {
		g.settling = !g.settling
		g.settle.Reset()
		g.refreshStatus()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copySnapshot()
	}

	size := g.sim.Size()
	g.hud.Update(size.W * g.scale)
	g.overlay.Update()

	cx, cy := ebiten.CursorPosition()
	p, hit := ResolveCell(cx, cy, g.scale, size)
	g.overlay.SetCursor(p, hit)
	if hit && g.brush != nil {
		g.handlePointer(p)
	}

	if g.settling && g.settle.ShouldStep() {
		g.step()
	}
	return nil
}

func (g *Game) handlePointer(p core.Point) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.brush.PaintBegin(p)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.apply(g.brush.PaintDrag(p))
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		g.apply(g.brush.EraseDrag(p))
	}
}

func (g *Game) step() {
	g.sim.Step()
	if reporter, ok := g.sim.(dirtyReporter); ok {
		g.apply(reporter.LastChanges())
		return
	}
	g.painter.Load(g.sim.Cells())
}

func (g *Game) apply(changes []core.Change) {
	if len(changes) == 0 {
		return
	}
	g.painter.Patch(changes)
	g.overlay.Flash(changes)
}

func (g *Game) copySnapshot() {
	provider, ok := g.sim.(gridProvider)
	if !ok {
		return
	}
	if err := clipboard.WriteAll(provider.Grid().String()); err != nil {
		log.Printf("copy grid snapshot: %v", err)
		return
	}
	log.Printf("copied %dx%d grid snapshot to clipboard", g.sim.Size().W, g.sim.Size().H)
}

func (g *Game) refreshStatus() {
	status := fmt.Sprintf("seed %d", g.seed)
	if g.settling {
		status += "  settling"
	}
	g.overlay.SetStatus(status)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
