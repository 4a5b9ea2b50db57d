package experiment

import "math"

// OutputSummary describes one output trace. Missing samples are counted
// but do not contribute to Min, Max or Mean.
type OutputSummary struct {
	Name    string  `json:"name"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Mean    float64 `json:"mean"`
	Final   float64 `json:"final"`
	Samples int     `json:"samples"`
	Missing int     `json:"missing,omitempty"`
}

type stats struct {
	name    string
	min     float64
	max     float64
	sum     float64
	last    float64
	samples int
	missing int
}

func newStats(name string) *stats {
	s := &stats{name: name}
	s.Reset()
	return s
}

func (s *stats) Observe(v float64) {
	s.samples++
	s.last = v
	if math.IsNaN(v) {
		s.missing++
		return
	}
	s.min = math.Min(s.min, v)
	s.max = math.Max(s.max, v)
	s.sum += v
}

func (s *stats) Value() OutputSummary {
	out := OutputSummary{
		Name:    s.name,
		Final:   s.last,
		Samples: s.samples,
		Missing: s.missing,
	}
	if n := s.samples - s.missing; n > 0 {
		out.Min = s.min
		out.Max = s.max
		out.Mean = s.sum / float64(n)
	}
	return out
}

func (s *stats) Reset() {
	s.min = math.Inf(1)
	s.max = math.Inf(-1)
	s.sum = 0
	s.last = 0
	s.samples = 0
	s.missing = 0
}
