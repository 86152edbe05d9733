// Package lights derives the signal colors of a crossing from the
// controller phase. The mapping is a pure function of the phase, so it can
// be evaluated on every cycle or only on phase changes with the same result.
package lights

import (
	"github.com/signalworks/crosslight/phasectl"
)

// Color is the state of one signal head.
type Color int

const (
	Red Color = iota
	Yellow
	Green
)

func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Yellow:
		return "Yellow"
	case Green:
		return "Green"
	default:
		return "Unknown"
	}
}

// ForPhase maps a controller phase to the colors shown to the south and west
// directions. The mapping never shows green to both directions, and shows
// yellow to a direction only while the other direction is red. The mapping
// is total: phases outside the defined range decode to all-red, the same
// projection the controller's recovery state produces.
func ForPhase(p phasectl.Phase) (south, west Color) {
	switch p {
	case phasectl.WestGo:
		return Red, Green
	case phasectl.WestWait:
		return Red, Yellow
	case phasectl.SouthGo:
		return Green, Red
	case phasectl.SouthWait:
		return Yellow, Red
	default:
		// WestStop, SouthStop, and anything unexpected hold both
		// directions at red.
		return Red, Red
	}
}
