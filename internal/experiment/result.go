package experiment

import (
	"math"
	"time"

	"github.com/san-kum/cosim/internal/component"
)

// Result holds the output traces of one run. Times[k] is the simulated time
// of the k-th sample and Outputs[name][k] its value; a failed read is NaN.
type Result struct {
	ID            string               `json:"id"`
	Component     string               `json:"component"`
	ComponentType string               `json:"component_type"`
	Names         []string             `json:"names"`
	Times         []float64            `json:"times"`
	Outputs       map[string][]float64 `json:"outputs"`
	Steps         int                  `json:"steps"`
	Elapsed       time.Duration        `json:"elapsed_ns"`
}

func newResult(id string, meta component.Metadata, steps int) *Result {
	r := &Result{
		ID:            id,
		Component:     meta.Name,
		ComponentType: meta.ComponentType,
		Names:         meta.OutputNames(),
		Times:         make([]float64, 0, steps+1),
		Outputs:       make(map[string][]float64, len(meta.Outputs)),
	}
	for _, name := range r.Names {
		r.Outputs[name] = make([]float64, 0, steps+1)
	}
	return r
}

func (r *Result) record(t float64, outputs map[string]float64) {
	r.Times = append(r.Times, t)
	for _, name := range r.Names {
		v, ok := outputs[name]
		if !ok {
			v = math.NaN()
		}
		r.Outputs[name] = append(r.Outputs[name], v)
	}
}

// Final returns the last recorded value of each output.
func (r *Result) Final() map[string]float64 {
	final := make(map[string]float64, len(r.Names))
	for _, name := range r.Names {
		if trace := r.Outputs[name]; len(trace) > 0 {
			final[name] = trace[len(trace)-1]
		}
	}
	return final
}

// Summary returns per-output statistics in declaration order.
func (r *Result) Summary() []OutputSummary {
	summaries := make([]OutputSummary, 0, len(r.Names))
	for _, name := range r.Names {
		s := newStats(name)
		for _, v := range r.Outputs[name] {
			s.Observe(v)
		}
		summaries = append(summaries, s.Value())
	}
	return summaries
}

// Duration is the simulated time covered by the result.
func (r *Result) Duration() float64 {
	if len(r.Times) == 0 {
		return 0
	}
	return r.Times[len(r.Times)-1]
}
