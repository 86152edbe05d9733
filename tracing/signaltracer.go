// Package tracing records the observable behavior of a crossing into a
// database, one row per phase change, so a run can be inspected after the
// fact.
package tracing

import (
	"sync"

	"github.com/signalworks/crosslight/datarecording"
	"github.com/signalworks/crosslight/lights"
	"github.com/signalworks/crosslight/phasectl"
	"github.com/signalworks/crosslight/sim"
)

// SignalChangesTable is the table the per-change rows are written to.
const SignalChangesTable = "signal_changes"

// SessionsTable is the table that holds one row per recorded run.
const SessionsTable = "trace_sessions"

// A SignalChange is one row of the signal-change trace.
type SignalChange struct {
	Cycle   uint64
	Tick    uint64
	Phase   string
	South   string
	West    string
	ByReset bool
}

// A Session describes one recorded run.
type Session struct {
	StartCycle uint64
	EndCycle   uint64
	Changes    uint64
}

// A SignalTracer records every phase change of a crossing into a database.
// Attach it to a phase controller with AcceptHook. It also implements
// sim.RunEndHandler so the session row is written when the run finishes.
type SignalTracer struct {
	mu sync.Mutex

	cycles  sim.CycleTeller
	backend datarecording.DataRecorder

	startCycle sim.CycleCount
	changes    uint64
}

// NewSignalTracer creates a SignalTracer and creates its tables on the
// backend.
func NewSignalTracer(
	cycles sim.CycleTeller,
	backend datarecording.DataRecorder,
) *SignalTracer {
	t := &SignalTracer{
		cycles:  cycles,
		backend: backend,
	}

	t.backend.CreateTable(SignalChangesTable, SignalChange{})
	t.backend.CreateTable(SessionsTable, Session{})

	t.startCycle = cycles.CurrentCycle()

	return t
}

// Func records a phase change. It ignores every hook position other than the
// controller's phase change.
func (t *SignalTracer) Func(ctx sim.HookCtx) {
	if ctx.Pos != phasectl.HookPosPhaseChange {
		return
	}

	trans, ok := ctx.Item.(phasectl.PhaseTransition)
	if !ok {
		return
	}

	south, west := lights.ForPhase(trans.To)

	t.mu.Lock()
	defer t.mu.Unlock()

	t.changes++
	t.backend.InsertData(SignalChangesTable, SignalChange{
		Cycle:   uint64(t.cycles.CurrentCycle()),
		Tick:    trans.Tick,
		Phase:   trans.To.String(),
		South:   south.String(),
		West:    west.String(),
		ByReset: trans.ByReset,
	})
}

// Handle writes the session row and flushes the backend. It is called by the
// engine after a run finishes.
func (t *SignalTracer) Handle(now sim.CycleCount) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.backend.InsertData(SessionsTable, Session{
		StartCycle: uint64(t.startCycle),
		EndCycle:   uint64(now),
		Changes:    t.changes,
	})

	t.backend.Flush()
}
