// Package components holds the concrete simulation components, one type per
// physical domain:
//
//   - [Thermal]: room temperature with an on/off heater
//   - [Circuit]: switched RC circuit (electrical)
//   - [Pendulum]: damped pendulum with brake (mechanical)
//
// Each type embeds a [component.Binding] for engine forwarding and declares
// its own static metadata. New domains are added by writing a new type and
// registering a [Factory]; there is no shared base to extend.
package components
