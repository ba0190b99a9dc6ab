//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"math"

	"city-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type noiseProvider interface {
	NoiseField() []float32
}

// flashFrames is how long a dirty set stays outlined.
const flashFrames = 24

// Overlay draws optional debugging visuals on top of the grid: the hovered
// cell, the most recent dirty set and the terrain noise field.
type Overlay struct {
	sim   core.Sim
	scale int

	showDirty bool
	showNoise bool

	cursor    core.Point
	hasCursor bool
	status    string

	flash    []core.Change
	flashAge int

	maskImg *ebiten.Image
	maskBuf []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{sim: sim, scale: scale, showDirty: true}
}

// Update toggles overlay layers and ages the dirty flash.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showDirty = !o.showDirty
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showNoise = !o.showNoise
	}
	if o.flashAge < flashFrames {
		o.flashAge++
	}
}

// SetCursor records the hovered cell. ok is false when nothing is hovered.
func (o *Overlay) SetCursor(p core.Point, ok bool) {
	o.cursor = p
	o.hasCursor = ok
}

// SetStatus replaces the status line.
func (o *Overlay) SetStatus(s string) { o.status = s }

// Flash outlines changes for a short while.
func (o *Overlay) Flash(changes []core.Change) {
	if len(changes) == 0 {
		return
	}
	o.flash = append(o.flash[:0], changes...)
	o.flashAge = 0
}

// Clear drops any pending flash.
func (o *Overlay) Clear() {
	o.flash = o.flash[:0]
	o.flashAge = flashFrames
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}

	if o.showNoise {
		if provider, ok := o.sim.(noiseProvider); ok {
			o.drawMask(screen, provider.NoiseField(), size, color.RGBA{R: 200, G: 120, B: 30, A: 0})
		}
	}
	if o.showDirty && o.flashAge < flashFrames {
		o.drawFlash(screen)
	}
	if o.hasCursor {
		s := float32(o.scale)
		vector.StrokeRect(screen, float32(o.cursor.X)*s, float32(o.cursor.Y)*s, s, s, 1, color.RGBA{R: 255, G: 60, B: 60, A: 255}, false)
	}
	ebitenutil.DebugPrintAt(screen, o.statusLine(size), 4, 4)
}

func (o *Overlay) statusLine(size core.Size) string {
	line := o.status
	if !o.hasCursor {
		return line
	}
	cells := o.sim.Cells()
	idx := o.cursor.Y*size.W + o.cursor.X
	if idx < 0 || idx >= len(cells) {
		return line
	}
	state := core.CellState(cells[idx])
	return fmt.Sprintf("(%d,%d) %s  %s", o.cursor.X, o.cursor.Y, state, line)
}

func (o *Overlay) drawFlash(screen *ebiten.Image) {
	fade := 1 - float64(o.flashAge)/float64(flashFrames)
	alpha := uint8(math.Round(220 * fade))
	col := color.RGBA{R: 255, G: 140, B: 0, A: alpha}
	s := float32(o.scale)
	for _, c := range o.flash {
		vector.StrokeRect(screen, float32(c.X)*s, float32(c.Y)*s, s, s, 1, col, false)
	}
}

func (o *Overlay) drawMask(screen *ebiten.Image, mask []float32, size core.Size, tint color.RGBA) {
	total := size.W * size.H
	if len(mask) != total || total == 0 {
		return
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
	}
	const (
		maxAlpha      = 160.0
		glowBase      = 0.35
		glowRange     = 0.65
		intensityBias = 0.75
	)

	for i := 0; i < total; i++ {
		base := i * 4
		intensity := clamp01(float64(mask[i]))
		if intensity == 0 {
			o.maskBuf[base+0] = 0
			o.maskBuf[base+1] = 0
			o.maskBuf[base+2] = 0
			o.maskBuf[base+3] = 0
			continue
		}

		alpha := uint8(math.Round(maxAlpha * math.Pow(intensity, intensityBias)))
		glow := glowBase + glowRange*math.Sqrt(intensity)

		o.maskBuf[base+0] = scaleColorComponent(tint.R, glow)
		o.maskBuf[base+1] = scaleColorComponent(tint.G, glow)
		o.maskBuf[base+2] = scaleColorComponent(tint.B, glow)
		o.maskBuf[base+3] = alpha
	}
	o.maskImg.WritePixels(o.maskBuf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.maskImg, op)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func scaleColorComponent(value uint8, factor float64) uint8 {
	scaled := math.Round(float64(value) * factor)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
