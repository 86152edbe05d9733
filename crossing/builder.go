package crossing

import (
	"github.com/signalworks/crosslight/phasectl"
	"github.com/signalworks/crosslight/sim"
	"github.com/signalworks/crosslight/tickgen"
)

// Builder can build crossings.
type Builder struct {
	engine    sim.Engine
	divisor   uint64
	durations phasectl.Durations
}

// MakeBuilder creates a builder with default parameters: one tick per cycle
// and the default phase durations.
func MakeBuilder() Builder {
	return Builder{
		divisor:   1,
		durations: phasectl.DefaultDurations,
	}
}

// WithEngine sets the engine the crossing's components register with.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithTickDivisor sets the number of driving-clock cycles per logical tick.
func (b Builder) WithTickDivisor(divisor uint64) Builder {
	b.divisor = divisor
	return b
}

// WithDurations sets the per-stage phase hold times, in ticks.
func (b Builder) WithDurations(d phasectl.Durations) Builder {
	b.durations = d
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.engine == nil {
		panic("crossing requires an engine")
	}
}

// Build creates the crossing's components and registers them with the
// engine. The tick generator is registered first so that the controller
// sees the pulse in the cycle it fires.
func (b Builder) Build(name string) *Crossing {
	b.parametersMustBeValid()

	tickGen := tickgen.MakeBuilder().
		WithDivisor(b.divisor).
		Build(name + ".TickGen")

	controller := phasectl.MakeBuilder().
		WithTickSource(tickGen).
		WithDurations(b.durations).
		Build(name + ".Controller")

	b.engine.RegisterComponent(tickGen)
	b.engine.RegisterComponent(controller)

	return &Crossing{
		name:       name,
		TickGen:    tickGen,
		Controller: controller,
	}
}
