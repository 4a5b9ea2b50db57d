// Package engine defines the runtime engine boundary that simulation
// components bind to, and ships an in-process reference engine.
//
// An [Engine] is an opaque, stateful solver instance identified by a model
// name. Components only ever see the [Engine] and [Factory] interfaces:
//
//	eng, err := factory.New("SimpleThermalMVP")
//	err = eng.SetBoolVariable("heaterOn", true)
//	err = eng.Step(60)
//	temp, err := eng.GetRealVariable("temperature")
//
// The reference implementation is [Solver]: a [Model] declares named Real and
// Boolean variables, a derivative function for its continuous states, and an
// optional algebraic update for derived outputs. Solvers are built from a
// [Library], which implements [Factory].
//
// # Step Semantics
//
// Step(dt) splits dt into equal substeps no larger than the configured
// maximum and integrates them with a [dynamo.Integrator]. Algebraic outputs
// are recomputed once at the end of every successful Step, including dt == 0,
// so inputs set before a zero-length step take effect instantaneously. A step
// that produces NaN or Inf restores the pre-step values and returns
// [ErrDiverged].
//
// # Thread Safety
//
// Solvers are NOT thread-safe. A Library is safe for concurrent use.
package engine
