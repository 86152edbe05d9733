package tickgen

import (
	"github.com/signalworks/crosslight/sim"
)

// Builder can build tick generators.
type Builder struct {
	divisor uint64
}

// MakeBuilder creates a builder with default parameters. The default divisor
// of 1 fires a tick on every driving-clock cycle.
func MakeBuilder() Builder {
	return Builder{
		divisor: 1,
	}
}

// WithDivisor sets the number of driving-clock cycles per tick.
func (b Builder) WithDivisor(divisor uint64) Builder {
	b.divisor = divisor
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.divisor == 0 {
		panic("tick divisor must be a positive integer")
	}
}

// Build creates a tick generator.
func (b Builder) Build(name string) *Comp {
	b.parametersMustBeValid()

	c := &Comp{
		ComponentBase: sim.NewComponentBase(name),
		divisor:       b.divisor,
	}

	return c
}
