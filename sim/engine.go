package sim

// A RunEndHandler is a handler that is called after a run of the engine
// completes.
type RunEndHandler interface {
	Handle(now CycleCount)
}

// An Engine drives all the registered components through driving-clock
// cycles. One call to Step is one edge of the driving clock; every component
// is evaluated exactly once per edge, in registration order.
type Engine interface {
	Hookable
	CycleTeller

	// RegisterComponent adds a component to be evaluated every cycle.
	// Components are evaluated in registration order, so a component must be
	// registered after every component whose same-cycle output it consumes.
	RegisterComponent(c Component)

	// Step evaluates a single driving-clock cycle. The reset argument is
	// ORed with the engine's reset line.
	Step(reset bool)

	// Run evaluates nCycles driving-clock cycles back to back.
	Run(nCycles uint64) error

	// Pause will pause the engine until Continue is called.
	Pause()

	// Continue will continue the paused engine.
	Continue()

	// AssertResetLine latches the reset input high. Every cycle evaluated
	// while the line is asserted sees reset.
	AssertResetLine()

	// ReleaseResetLine releases the reset input.
	ReleaseResetLine()

	// RegisterRunEndHandler registers a handler that performs some actions
	// after a run is finished.
	RegisterRunEndHandler(handler RunEndHandler)

	// Finished invokes all the registered RunEndHandlers.
	Finished()
}
