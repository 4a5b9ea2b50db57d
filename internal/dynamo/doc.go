// Package dynamo provides the numeric primitives shared by runtime engines.
//
// The package defines the fundamental interfaces and types for numerical
// integration of ordinary differential equations (ODEs):
//
//   - [State]: vector representing system state
//   - [Control]: exogenous inputs held constant over one step
//   - [System]: interface for ODE systems (dX/dt = f(X, u, t))
//   - [Integrator]: fixed-step numerical integrator interface
//
// Nothing in this package knows about named variables or components; the
// engine package maps names onto state vectors before integrating.
//
// # Thread Safety
//
// Integrators keep scratch buffers between calls and are NOT thread-safe.
// Give every engine its own integrator instance.
package dynamo
