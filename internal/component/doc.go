// Package component defines the contract every simulation component
// satisfies, the metadata schema a component uses to describe its signals,
// and the error taxonomy shared by all domains.
//
// A component wraps exactly one runtime engine ([engine.Engine]) and exposes
// it through [Component]:
//
//	c, _ := components.NewThermal(physics.Library())
//	_ = c.Initialize()
//	_ = c.SetBoolInput("heaterOn", true)
//	_ = c.Step(60)
//	temp, _ := c.GetOutput("temperature")
//
// Components perform no numerical work. Values pass through unchanged; the
// only logic at this layer is checking signal names and types against the
// component's own declared [Metadata] before the engine is touched.
//
// # Errors
//
// Every fallible operation returns an [*Error] whose kind is one of
// [ErrUnknownVariable], [ErrTypeMismatch] or [ErrRuntimeFailure]. Use
// errors.Is against the kind, or against the engine's own sentinel for the
// underlying cause. Nothing is retried here; recovery (usually Reset) is the
// host's decision.
//
// The single exception to strict error reporting is GetAllOutputs: it is a
// best-effort snapshot that silently omits any output whose read fails, so
// one bad signal cannot block collection of the rest.
//
// # Thread Safety
//
// A component may be handed between goroutines, but it has no internal
// locking. Calls on one instance must be externally serialized (single
// writer), for example with one mutex per component or by pinning each
// component to one worker. Concurrent unsynchronized calls have no defined
// ordering.
package component
