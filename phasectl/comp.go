package phasectl

import (
	"github.com/signalworks/crosslight/sim"
)

// HookPosPhaseChange is a hook position that triggers on the controller
// right after its phase register changes, including changes forced by reset
// or by the catch-all recovery. The Item is a PhaseTransition.
var HookPosPhaseChange = &sim.HookPos{Name: "PhaseChange"}

// A PhaseTransition describes one change of the phase register.
type PhaseTransition struct {
	From Phase
	To   Phase

	// Tick is the number of logical ticks processed since the start of the
	// run, at the time of the transition.
	Tick uint64

	// ByReset marks transitions forced by the reset input rather than by
	// the duration counter.
	ByReset bool
}

// A TickSource provides the tick-enable pulse the controller advances on.
type TickSource interface {
	Fired() bool
}

// Comp is the phase controller. It owns the current phase and the number of
// ticks elapsed in that phase, and advances them once per logical tick.
//
// The controller must be evaluated after its tick source within the same
// cycle.
type Comp struct {
	*sim.ComponentBase

	ticks     TickSource
	durations Durations

	phase     Phase
	elapsed   uint32
	tickCount uint64
}

// Cycle evaluates one driving-clock edge. Reset takes priority over tick
// processing; a cycle without a tick pulse holds the state unchanged.
func (c *Comp) Cycle(reset bool) {
	if reset {
		c.forceInitial(true)

		return
	}

	if !c.ticks.Fired() {
		return
	}

	c.tickCount++

	if !c.phase.Valid() {
		// Catch-all recovery. The phase can only leave the defined range
		// if it was restored from outside the program.
		c.forceInitial(false)

		return
	}

	c.elapsed++
	if c.elapsed < c.durations.For(c.phase) {
		return
	}

	// The tick that completes the duration is consumed by the transition.
	// The new phase always starts with a zero counter.
	c.setPhase(c.phase.Next(), false)
}

// CurrentPhase returns the phase the controller is in.
func (c *Comp) CurrentPhase() Phase {
	return c.phase
}

// Elapsed returns the number of ticks spent in the current phase since the
// last transition.
func (c *Comp) Elapsed() uint32 {
	return c.elapsed
}

// TickCount returns the number of logical ticks processed since the start of
// the run. It is not cleared by reset.
func (c *Comp) TickCount() uint64 {
	return c.tickCount
}

// Durations returns the per-stage hold times the controller was built with.
func (c *Comp) Durations() Durations {
	return c.durations
}

// RestoreState overwrites the controller state, normalizing input that does
// not satisfy the controller's invariants: an invalid phase falls back to
// the initial state, and an elapsed count at or beyond the phase duration is
// cleared. Intended for state read from untrusted external storage.
func (c *Comp) RestoreState(phase Phase, elapsed uint32) {
	if !phase.Valid() {
		phase = WestStop
		elapsed = 0
	}

	if elapsed >= c.durations.For(phase) {
		elapsed = 0
	}

	from := c.phase
	c.phase = phase
	c.elapsed = elapsed

	if from != phase {
		c.invokeChange(from, phase, false)
	}
}

func (c *Comp) forceInitial(byReset bool) {
	if c.phase == WestStop && c.elapsed == 0 {
		return
	}

	from := c.phase
	c.phase = WestStop
	c.elapsed = 0

	if from != WestStop {
		c.invokeChange(from, WestStop, byReset)
	}
}

func (c *Comp) setPhase(to Phase, byReset bool) {
	from := c.phase
	c.phase = to
	c.elapsed = 0

	c.invokeChange(from, to, byReset)
}

func (c *Comp) invokeChange(from, to Phase, byReset bool) {
	c.InvokeHook(sim.HookCtx{
		Domain: c,
		Pos:    HookPosPhaseChange,
		Item: PhaseTransition{
			From:    from,
			To:      to,
			Tick:    c.tickCount,
			ByReset: byReset,
		},
	})
}
