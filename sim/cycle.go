package sim

// CycleCount counts driving-clock edges since the beginning of a run.
type CycleCount uint64

// A CycleTeller can be used to get the index of the cycle that is currently
// being evaluated.
type CycleTeller interface {
	CurrentCycle() CycleCount
}
