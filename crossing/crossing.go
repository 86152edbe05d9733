// Package crossing assembles the components of one two-direction crossing:
// a tick generator and a phase controller, wired so that the controller
// consumes the tick pulse in the cycle it is generated.
package crossing

import (
	"github.com/signalworks/crosslight/lights"
	"github.com/signalworks/crosslight/phasectl"
	"github.com/signalworks/crosslight/tickgen"
)

// A Crossing bundles the components that control one intersection.
type Crossing struct {
	name string

	TickGen    *tickgen.Comp
	Controller *phasectl.Comp
}

// Name returns the name of the crossing.
func (x *Crossing) Name() string {
	return x.name
}

// Phase returns the phase the controller is currently in.
func (x *Crossing) Phase() phasectl.Phase {
	return x.Controller.CurrentPhase()
}

// Lights returns the colors currently shown to the south and the west
// directions.
func (x *Crossing) Lights() (south, west lights.Color) {
	return lights.ForPhase(x.Controller.CurrentPhase())
}
