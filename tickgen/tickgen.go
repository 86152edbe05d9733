// Package tickgen divides the driving clock down to the logical tick rate.
// Phase durations are measured in logical ticks, so the divisor is what ties
// the controller's timing to real time. The signal timing in this repository
// was designed around a 4 Hz tick; a crossing driven by a 50 MHz clock would
// use a divisor of 12,500,000, while tests and interactive runs use 1.
package tickgen

import (
	"github.com/signalworks/crosslight/sim"
)

// Comp generates the periodic tick-enable pulse. It keeps a free-running
// counter modulo the divisor and raises the pulse for exactly one cycle
// every divisor cycles.
type Comp struct {
	*sim.ComponentBase

	divisor uint64
	count   uint64
	fired   bool
}

// Cycle advances the divider by one driving-clock edge. Reset clears the
// counter, so the next pulse fires exactly one divisor worth of cycles after
// the reset is released.
func (c *Comp) Cycle(reset bool) {
	if reset {
		c.count = 0
		c.fired = false

		return
	}

	c.count++
	if c.count < c.divisor {
		c.fired = false

		return
	}

	c.count = 0
	c.fired = true
}

// Fired reports whether the tick pulse is high in the cycle that was just
// evaluated. Consumers must be evaluated after this component within the
// same cycle.
func (c *Comp) Fired() bool {
	return c.fired
}

// Divisor returns the number of driving-clock cycles per tick.
func (c *Comp) Divisor() uint64 {
	return c.divisor
}
