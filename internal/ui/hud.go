//go:build ebiten

package ui

import (
	"image/color"

	"lattice-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD draws the run status in the top-left corner of the window.
type HUD struct {
	sim     core.Sim
	title   string
	lines   []string
	visible bool
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{sim: sim, title: buildTitle(sim), visible: true}
}

// Update toggles visibility on H and refreshes the cached lines.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.lines = []string{h.title}
		return
	}
	h.lines = Lines(h.title, provider.Parameters())
}

// Draw paints the status panel over the simulation.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible || len(h.lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	width := 0
	for _, line := range h.lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	height := len(h.lines) * lineHeight
	vector.DrawFilledRect(screen, 0, 0, float32(width+2*panelPadding), float32(height+panelPadding),
		color.RGBA{R: 16, G: 16, B: 20, A: 200}, false)
	for i, line := range h.lines {
		text.Draw(screen, line, face, panelPadding, panelPadding+i*lineHeight+labelBaseline, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
}

const (
	panelPadding  = 6
	lineHeight    = 16
	labelBaseline = 11
)
