// Package metrics exports Prometheus instrumentation for simulation
// components.
//
// A Registry owns its own prometheus.Registry, so several can coexist in
// one process (one per test, one per CLI run). Instrument wraps any
// component.Component and records every contract operation:
//
//	cosim_component_operations_total{component,op,status}
//	cosim_component_operation_duration_seconds{component,op}
//	cosim_component_errors_total{component,op,kind}
//	cosim_component_simulated_seconds{component}
//
// # Thread Safety
//
// Registry methods are safe for concurrent use. An Instrumented component
// carries the same single-writer rule as the component it wraps.
package metrics
