package sim

import (
	"sync"
)

// A CycleEngine is an Engine that evaluates all registered components once
// per driving-clock cycle, one component after another.
type CycleEngine struct {
	HookableBase

	cycleLock sync.RWMutex
	cycle     CycleCount

	components []Component
	compNames  map[string]bool

	resetLock sync.RWMutex
	resetLine bool

	isPaused     bool
	isPausedLock sync.Mutex
	pauseLock    sync.Mutex

	singleRunLock sync.Mutex

	runEndHandlers []RunEndHandler
}

// NewCycleEngine creates a CycleEngine.
func NewCycleEngine() *CycleEngine {
	e := new(CycleEngine)

	e.compNames = make(map[string]bool)

	return e
}

// RegisterComponent adds a component to the end of the evaluation order.
func (e *CycleEngine) RegisterComponent(c Component) {
	if e.compNames[c.Name()] {
		panic("component " + c.Name() + " already registered")
	}

	e.components = append(e.components, c)
	e.compNames[c.Name()] = true
}

// Step evaluates a single driving-clock cycle.
func (e *CycleEngine) Step(reset bool) {
	e.pauseLock.Lock()
	defer e.pauseLock.Unlock()

	e.cycleOnce(reset || e.resetAsserted())
}

// Run evaluates nCycles driving-clock cycles back to back.
func (e *CycleEngine) Run(nCycles uint64) error {
	e.singleRunLock.Lock()
	defer e.singleRunLock.Unlock()

	for i := uint64(0); i < nCycles; i++ {
		e.pauseLock.Lock()
		e.cycleOnce(e.resetAsserted())
		e.pauseLock.Unlock()
	}

	return nil
}

func (e *CycleEngine) cycleOnce(reset bool) {
	now := e.readNow()

	hookCtx := HookCtx{
		Domain: e,
		Pos:    HookPosBeforeCycle,
		Item:   now,
	}
	e.InvokeHook(hookCtx)

	for _, c := range e.components {
		c.Cycle(reset)
	}

	hookCtx.Pos = HookPosAfterCycle
	e.InvokeHook(hookCtx)

	e.writeNow(now + 1)
}

func (e *CycleEngine) readNow() CycleCount {
	e.cycleLock.RLock()
	now := e.cycle
	e.cycleLock.RUnlock()

	return now
}

func (e *CycleEngine) writeNow(c CycleCount) {
	e.cycleLock.Lock()
	e.cycle = c
	e.cycleLock.Unlock()
}

// CurrentCycle returns the index of the cycle that the engine is evaluating.
// Between cycles, it is the index of the cycle that runs next.
func (e *CycleEngine) CurrentCycle() CycleCount {
	return e.readNow()
}

// AssertResetLine latches the reset input high.
func (e *CycleEngine) AssertResetLine() {
	e.resetLock.Lock()
	e.resetLine = true
	e.resetLock.Unlock()
}

// ReleaseResetLine releases the reset input.
func (e *CycleEngine) ReleaseResetLine() {
	e.resetLock.Lock()
	e.resetLine = false
	e.resetLock.Unlock()
}

func (e *CycleEngine) resetAsserted() bool {
	e.resetLock.RLock()
	asserted := e.resetLine
	e.resetLock.RUnlock()

	return asserted
}

// Pause prevents the CycleEngine from evaluating more cycles.
func (e *CycleEngine) Pause() {
	e.isPausedLock.Lock()
	defer e.isPausedLock.Unlock()

	if e.isPaused {
		return
	}

	e.pauseLock.Lock()
	e.isPaused = true
}

// Continue allows the CycleEngine to evaluate more cycles.
func (e *CycleEngine) Continue() {
	e.isPausedLock.Lock()
	defer e.isPausedLock.Unlock()

	if !e.isPaused {
		return
	}

	e.pauseLock.Unlock()
	e.isPaused = false
}

// RegisterRunEndHandler registers a handler that performs some actions after
// a run is finished.
func (e *CycleEngine) RegisterRunEndHandler(handler RunEndHandler) {
	e.runEndHandlers = append(e.runEndHandlers, handler)
}

// Finished should be called after a run completes. It calls all the
// registered RunEndHandlers.
func (e *CycleEngine) Finished() {
	now := e.readNow()
	for _, h := range e.runEndHandlers {
		h.Handle(now)
	}
}
