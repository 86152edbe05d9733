package phasectl

import (
	"github.com/signalworks/crosslight/sim"
)

// Builder can build phase controllers.
type Builder struct {
	ticks     TickSource
	durations Durations
}

// MakeBuilder creates a builder with the default phase durations.
func MakeBuilder() Builder {
	return Builder{
		durations: DefaultDurations,
	}
}

// WithTickSource sets the component the controller reads the tick pulse
// from.
func (b Builder) WithTickSource(ticks TickSource) Builder {
	b.ticks = ticks
	return b
}

// WithDurations sets the per-stage hold times.
func (b Builder) WithDurations(d Durations) Builder {
	b.durations = d
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.ticks == nil {
		panic("phase controller requires a tick source")
	}

	if b.durations.Stop == 0 || b.durations.Go == 0 || b.durations.Wait == 0 {
		panic("phase durations must be positive")
	}
}

// Build creates a phase controller in the initial state.
func (b Builder) Build(name string) *Comp {
	b.parametersMustBeValid()

	c := &Comp{
		ComponentBase: sim.NewComponentBase(name),
		ticks:         b.ticks,
		durations:     b.durations,
		phase:         WestStop,
	}

	return c
}
