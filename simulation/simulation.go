// Package simulation bundles the services a controller run needs: the cycle
// engine, the trace recorder, and the optional monitoring server.
package simulation

import (
	"github.com/signalworks/crosslight/crossing"
	"github.com/signalworks/crosslight/datarecording"
	"github.com/signalworks/crosslight/monitoring"
	"github.com/signalworks/crosslight/sim"
	"github.com/signalworks/crosslight/tracing"
)

// A Simulation provides the services required to run a crossing controller.
type Simulation struct {
	id string

	engine       sim.Engine
	dataRecorder datarecording.DataRecorder
	monitor      *monitoring.Monitor
	signalTracer *tracing.SignalTracer

	components    []sim.Component
	compNameIndex map[string]int
}

// ID returns the unique ID of the simulation.
func (s *Simulation) ID() string {
	return s.id
}

// GetEngine returns the engine used in the simulation.
func (s *Simulation) GetEngine() sim.Engine {
	return s.engine
}

// GetDataRecorder returns the data recorder used in the simulation.
func (s *Simulation) GetDataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// GetMonitor returns the monitor used in the simulation. It is nil when
// monitoring is disabled.
func (s *Simulation) GetMonitor() *monitoring.Monitor {
	return s.monitor
}

// GetSignalTracer returns the tracer that records phase changes.
func (s *Simulation) GetSignalTracer() *tracing.SignalTracer {
	return s.signalTracer
}

// RegisterComponent registers a component with the simulation, making it
// visible to the monitor. It does not change the engine's evaluation order;
// components are wired to the engine by their builders.
func (s *Simulation) RegisterComponent(c sim.Component) {
	compName := c.Name()
	if _, ok := s.compNameIndex[compName]; ok {
		panic("component " + compName + " already registered")
	}

	s.components = append(s.components, c)
	s.compNameIndex[compName] = len(s.components) - 1

	if s.monitor != nil {
		s.monitor.RegisterComponent(c)
	}
}

// RegisterCrossing registers the crossing's components, attaches the signal
// tracer to its controller, and exposes its light state to the monitor.
func (s *Simulation) RegisterCrossing(x *crossing.Crossing) {
	s.RegisterComponent(x.TickGen)
	s.RegisterComponent(x.Controller)

	x.Controller.AcceptHook(s.signalTracer)

	if s.monitor != nil {
		s.monitor.RegisterCrossing(x)
	}
}

// Components returns all registered components.
func (s *Simulation) Components() []sim.Component {
	return s.components
}

// GetComponentByName returns the component with the given name.
func (s *Simulation) GetComponentByName(name string) sim.Component {
	return s.components[s.compNameIndex[name]]
}

// Terminate flushes the recorded data and closes the simulation.
func (s *Simulation) Terminate() {
	s.dataRecorder.Close()
}
