// Package phasectl implements the phase controller of a two-direction
// crossing. The controller owns a six-phase cyclic state machine that is
// advanced once per logical tick and guarantees that at most one direction
// holds right-of-way at any time, with a caution window before right-of-way
// is taken away.
package phasectl

import (
	"fmt"
)

// A Phase is one state of the crossing controller. It pairs a direction with
// the stage of that direction's right-of-way window.
type Phase int

// The six phases form a fixed cycle. The west direction is served first
// after reset.
const (
	WestStop Phase = iota
	WestGo
	WestWait
	SouthStop
	SouthGo
	SouthWait
)

// NumPhases is the length of the phase cycle.
const NumPhases = 6

// Valid reports whether p is one of the six defined phases. A value outside
// the range can only come from state restored from outside the program.
func (p Phase) Valid() bool {
	return p >= WestStop && p <= SouthWait
}

// Next returns the phase that follows p in the fixed cycle.
func (p Phase) Next() Phase {
	switch p {
	case WestStop:
		return WestGo
	case WestGo:
		return WestWait
	case WestWait:
		return SouthStop
	case SouthStop:
		return SouthGo
	case SouthGo:
		return SouthWait
	case SouthWait:
		return WestStop
	default:
		return WestStop
	}
}

func (p Phase) String() string {
	switch p {
	case WestStop:
		return "WestStop"
	case WestGo:
		return "WestGo"
	case WestWait:
		return "WestWait"
	case SouthStop:
		return "SouthStop"
	case SouthGo:
		return "SouthGo"
	case SouthWait:
		return "SouthWait"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Durations sets how many logical ticks the controller holds each stage of a
// direction's right-of-way window. All three values must be positive.
type Durations struct {
	// Stop is the all-red guard time before a direction turns green.
	Stop uint32

	// Go is the green time.
	Go uint32

	// Wait is the yellow time before the green direction loses
	// right-of-way.
	Wait uint32
}

// DefaultDurations holds the timing the controller was designed with:
// 2 ticks all-red, 4 ticks green, 1 tick yellow, per direction.
var DefaultDurations = Durations{Stop: 2, Go: 4, Wait: 1}

// For returns the number of ticks phase p must be held.
func (d Durations) For(p Phase) uint32 {
	switch p {
	case WestGo, SouthGo:
		return d.Go
	case WestWait, SouthWait:
		return d.Wait
	default:
		return d.Stop
	}
}
