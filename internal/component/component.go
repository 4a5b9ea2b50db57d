package component

// Component is the contract a host programs against, independent of the
// physical domain behind it.
type Component interface {
	// ComponentType returns a stable category tag. Pure.
	ComponentType() string

	// Initialize places the engine in its initial state. It must precede
	// the first Step and may be called again at any time as a full reset.
	Initialize() error

	// SetInput writes a Real signal. On failure the previous value is kept.
	SetInput(name string, value float64) error

	// SetBoolInput writes a Boolean signal. On failure the previous value
	// is kept.
	SetBoolInput(name string, value bool) error

	// GetOutput reads a Real signal as of the last successful Initialize,
	// Reset or Step. Reading never triggers recomputation.
	GetOutput(name string) (float64, error)

	// Step advances simulated time by dt >= 0. With dt == 0 only the
	// instantaneous effects of inputs already set are applied.
	Step(dt float64) error

	// Reset is equivalent to Initialize.
	Reset() error

	// GetAllOutputs reads every declared output, omitting those whose read
	// fails. It never fails.
	GetAllOutputs() map[string]float64

	// Metadata returns the static self-description. Pure.
	Metadata() Metadata
}
