package experiment

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Ensemble runs independent experiments concurrently. The experiments must
// not share components.
type Ensemble struct {
	runs  []*Experiment
	limit int
}

// NewEnsemble runs at most GOMAXPROCS experiments at a time.
func NewEnsemble(runs ...*Experiment) *Ensemble {
	return &Ensemble{runs: runs, limit: runtime.GOMAXPROCS(0)}
}

// Run returns one result and one error per experiment, in input order. A
// failed run does not stop the others.
func (e *Ensemble) Run(ctx context.Context) ([]*Result, []error) {
	results := make([]*Result, len(e.runs))
	errs := make([]error, len(e.runs))

	var g errgroup.Group
	g.SetLimit(e.limit)
	for i, exp := range e.runs {
		g.Go(func() error {
			results[i], errs[i] = exp.Run(ctx)
			return nil
		})
	}
	_ = g.Wait()

	return results, errs
}
