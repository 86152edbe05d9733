package sim

// A Named object is an object that has a name.
type Named interface {
	Name() string
}

// A Component is a unit that is evaluated once per driving-clock edge.
//
// Cycle is called by the engine with the state of the reset input. A
// component must apply reset before any other state update, and it may only
// mutate its own state. Reading the same-cycle output of another component
// is allowed when that component is evaluated earlier in the cycle.
type Component interface {
	Named
	Hookable

	Cycle(reset bool)
}

// ComponentBase provides the fields and methods shared by all components.
type ComponentBase struct {
	HookableBase

	name string
}

// NewComponentBase creates a new ComponentBase.
func NewComponentBase(name string) *ComponentBase {
	c := new(ComponentBase)
	c.name = name

	return c
}

// Name returns the name of the component.
func (c *ComponentBase) Name() string {
	return c.name
}
