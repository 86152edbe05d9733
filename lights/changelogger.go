package lights

import (
	"log"

	"github.com/signalworks/crosslight/phasectl"
	"github.com/signalworks/crosslight/sim"
)

// ChangeLogger is a hook that prints every phase transition together with
// the colors the new phase shows.
type ChangeLogger struct {
	sim.LogHookBase
}

// NewChangeLogger returns a ChangeLogger that writes into the given logger.
func NewChangeLogger(logger *log.Logger) *ChangeLogger {
	h := new(ChangeLogger)
	h.Logger = logger
	return h
}

// Func writes the transition information into the logger.
func (h *ChangeLogger) Func(ctx sim.HookCtx) {
	if ctx.Pos != phasectl.HookPosPhaseChange {
		return
	}

	trans, ok := ctx.Item.(phasectl.PhaseTransition)
	if !ok {
		return
	}

	south, west := ForPhase(trans.To)

	if trans.ByReset {
		h.Logger.Printf("tick %d, %s -> %s (reset), south %s, west %s",
			trans.Tick, trans.From, trans.To, south, west)
		return
	}

	h.Logger.Printf("tick %d, %s -> %s, south %s, west %s",
		trans.Tick, trans.From, trans.To, south, west)
}
