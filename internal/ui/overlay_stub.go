//go:build !ebiten

package ui

import "mad-coral/internal/core"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{ showDrifters bool }

// NewOverlay constructs a stub overlay.
func NewOverlay(_ core.Sim, showDrifters bool) *Overlay {
	return &Overlay{showDrifters: showDrifters}
}

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// ShowDrifters reports the initial drifter visibility.
func (o *Overlay) ShowDrifters() bool { return o.showDrifters }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, bool) {}
