package app

import "lattice-life/internal/core"

// Loop sequences the simulation against the display: a generation is only
// superseded after it has been presented and the pacer allows a step.
type Loop struct {
	sim   core.Sim
	pacer *core.FixedStep
	shown int

	paused   bool
	tickOnce bool
}

// NewLoop wraps sim with the provided pacer.
func NewLoop(sim core.Sim, pacer *core.FixedStep) *Loop {
	return &Loop{sim: sim, pacer: pacer, shown: -1}
}

// Sim returns the driven simulation.
func (l *Loop) Sim() core.Sim { return l.sim }

// Presented records that the current generation reached the screen.
func (l *Loop) Presented() { l.shown = l.sim.Generation() }

// TogglePause flips the paused state.
func (l *Loop) TogglePause() { l.paused = !l.paused }

// Paused reports whether automatic stepping is suspended.
func (l *Loop) Paused() bool { return l.paused }

// StepOnce requests a single step even while paused.
func (l *Loop) StepOnce() { l.tickOnce = true }

// Reset restores the seed and waits for it to be presented.
func (l *Loop) Reset() {
	l.sim.Reset()
	l.shown = -1
	l.tickOnce = false
}

// Tick advances the simulation when allowed and reports whether it did.
func (l *Loop) Tick() bool {
	if l.shown != l.sim.Generation() {
		return false
	}
	if l.tickOnce {
		l.tickOnce = false
		l.sim.Step()
		return true
	}
	if l.paused || !l.pacer.ShouldStep() {
		return false
	}
	l.sim.Step()
	return true
}
