//go:build !ebiten

package ui

import "city-ca/internal/core"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(core.Sim, int) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// SetCursor is a no-op in headless builds.
func (o *Overlay) SetCursor(core.Point, bool) {}

// SetStatus is a no-op in headless builds.
func (o *Overlay) SetStatus(string) {}

// Flash is a no-op in headless builds.
func (o *Overlay) Flash([]core.Change) {}

// Clear is a no-op in headless builds.
func (o *Overlay) Clear() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
