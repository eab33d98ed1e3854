//go:build ebiten

package app

import (
	"time"

	"lattice-life/internal/core"
	"lattice-life/internal/render"
	"lattice-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	loop    *Loop
	painter *render.Painter
	hud     *ui.HUD

	width, height int
}

// New constructs a Game drawing sim onto a width by height surface.
func New(sim core.Sim, width, height int, interval time.Duration) *Game {
	return &Game{
		loop:    NewLoop(sim, core.NewFixedStep(interval)),
		painter: render.NewPainter(),
		hud:     ui.NewHUD(sim),
		width:   width,
		height:  height,
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.loop.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.loop.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.loop.Reset()
	}

	g.hud.Update()
	g.loop.Tick()
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.loop.Sim().Lattice())
	g.hud.Draw(screen)
	g.loop.Presented()
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
