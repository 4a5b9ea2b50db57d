// Package experiment runs a single component through a scheduled,
// fixed-step simulation and collects its output traces.
//
// A run is:
//
//	Initialize, record
//	repeat Duration/Dt times:
//	    apply inputs with At <= t, Step(Dt), record
//
// Step failures come back as *dynamo.SimulationError carrying the step
// index and start time, with the component error wrapped inside, so
// errors.Is against the component and engine sentinels keeps working.
//
// # Thread Safety
//
// An Experiment must not be run concurrently with itself or with any other
// user of its component.
package experiment
